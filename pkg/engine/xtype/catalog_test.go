package xtype

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_CreateAndGet(t *testing.T) {
	c := NewCatalog()
	inet := inetLike().WithAlias("inet")

	require.NoError(t, c.CreateType("inet", inet))

	got, err := c.GetType("INET")
	require.NoError(t, err)
	assert.True(t, got.Equal(inet))
	assert.True(t, c.HasType(" inet "))
}

func TestCatalog_Errors(t *testing.T) {
	c := NewCatalog()

	assert.ErrorIs(t, c.CreateType("", VarcharType), ErrEmptyTypeName)
	assert.ErrorIs(t, c.CreateType("   ", VarcharType), ErrEmptyTypeName)
	assert.ErrorIs(t, c.CreateType("x", LogicalType{}), ErrInvalidType)
	assert.ErrorIs(t, c.CreateType("varchar", VarcharType), ErrTypeExists)

	require.NoError(t, c.CreateType("inet", inetLike()))
	assert.ErrorIs(t, c.CreateType("Inet", inetLike()), ErrTypeExists)

	_, err := c.GetType("missing")
	assert.ErrorIs(t, err, ErrTypeNotFound)
	assert.False(t, c.HasType("missing"))
}

func TestCatalog_Builtins(t *testing.T) {
	c := NewCatalog()
	for _, name := range []string{"VARCHAR", "hugeint", "USmallInt", "integer"} {
		typ, err := c.GetType(name)
		require.NoError(t, err, name)
		assert.True(t, typ.IsValid())
	}
	assert.Empty(t, c.Types())
}

func TestCatalog_TypesSorted(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.CreateType("zeta", inetLike()))
	require.NoError(t, c.CreateType("alpha", inetLike()))

	types := c.Types()
	require.Len(t, types, 2)
	assert.Equal(t, "alpha", types[0].Name)
	assert.Equal(t, "zeta", types[1].Name)
}

func TestCatalog_Concurrent(t *testing.T) {
	c := NewCatalog()
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := fmt.Sprintf("t%d", i)
			assert.NoError(t, c.CreateType(name, inetLike()))
			assert.True(t, c.HasType(name))
		}()
	}
	wg.Wait()
	assert.Len(t, c.Types(), 32)
}
