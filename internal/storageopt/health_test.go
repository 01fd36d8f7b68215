package storageopt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHealthContext(t *testing.T) {
	t.Run("positive timeout", func(t *testing.T) {
		ctx, cancel := HealthContext(context.Background(), 2*time.Second)
		defer cancel()

		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(2*time.Second), deadline, 200*time.Millisecond)
	})

	t.Run("zero or negative timeout keeps parent", func(t *testing.T) {
		parent := context.Background()
		for _, d := range []time.Duration{0, -time.Second} {
			ctx, cancel := HealthContext(parent, d)
			cancel()
			_, ok := ctx.Deadline()
			assert.False(t, ok)
			assert.Equal(t, parent, ctx)
		}
	})

	t.Run("nil context", func(t *testing.T) {
		ctx, cancel := HealthContext(nil, 0) //nolint:staticcheck // nil ctx 归一化
		defer cancel()
		assert.NotNil(t, ctx)
	})
}
