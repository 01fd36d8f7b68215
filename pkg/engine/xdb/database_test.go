package xdb

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xinet/pkg/engine/xcast"
	"github.com/omeyang/xinet/pkg/engine/xtype"
	"github.com/omeyang/xinet/pkg/engine/xvector"
	"github.com/omeyang/xinet/pkg/observability/xmetrics"
)

// =============================================================================
// 测试辅助
// =============================================================================

var errTooLong = errors.New("too long")

// lengthCast 把字符串长度写入 USMALLINT 列，长度超过 3 时失败。
func lengthCast(source, result xvector.Vector, count int) error {
	u, err := xvector.UnifyVarchar(source, count)
	if err != nil {
		return err
	}
	out := result.(*xvector.USmallintVector)
	for i := range count {
		idx := u.Sel.Get(i)
		if !u.Validity.RowIsValid(idx) {
			out.Validity().SetInvalid(i)
			continue
		}
		if len(u.Data[idx]) > 3 {
			return errTooLong
		}
		out.Values[i] = uint16(len(u.Data[idx]))
	}
	return nil
}

type fakeExtension struct {
	name string
	load func(tx *Tx) error
}

func (e fakeExtension) Name() string      { return e.name }
func (e fakeExtension) Load(tx *Tx) error { return e.load(tx) }

func lengthExtension() fakeExtension {
	return fakeExtension{name: "length", load: func(tx *Tx) error {
		if err := tx.CreateType("len", xtype.USmallintType.WithAlias("len")); err != nil {
			return err
		}
		typ, err := tx.GetType("LEN")
		if err != nil {
			return err
		}
		return tx.RegisterCast(xtype.VarcharType, typ, lengthCast)
	}}
}

type recordingObserver struct {
	mu      sync.Mutex
	ops     []string
	results []xmetrics.Result
}

type recordingSpan struct{ o *recordingObserver }

func (o *recordingObserver) Start(ctx context.Context, opts xmetrics.SpanOptions) (context.Context, xmetrics.Span) {
	o.mu.Lock()
	o.ops = append(o.ops, opts.Component+"."+opts.Operation)
	o.mu.Unlock()
	return ctx, recordingSpan{o: o}
}

func (s recordingSpan) End(r xmetrics.Result) {
	s.o.mu.Lock()
	s.o.results = append(s.o.results, r)
	s.o.mu.Unlock()
}

// =============================================================================
// 扩展加载测试
// =============================================================================

func TestLoadExtension(t *testing.T) {
	obs := &recordingObserver{}
	db, err := Open(WithObserver(obs), WithLogger(nil), nil)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, db.LoadExtension(ctx, lengthExtension()))

	assert.Equal(t, []string{"length"}, db.Extensions())
	assert.True(t, db.Catalog().HasType("len"))
	assert.Equal(t, 1, db.Casts().Len())
	assert.Equal(t, []string{"xdb.load_extension"}, obs.ops)

	err = db.LoadExtension(ctx, lengthExtension())
	assert.ErrorIs(t, err, ErrExtensionLoaded)
}

func TestLoadExtension_FailureRollsBack(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)
	boom := errors.New("boom")

	err = db.LoadExtension(context.Background(), fakeExtension{name: "broken", load: func(tx *Tx) error {
		require.NoError(t, tx.CreateType("half", xtype.HugeintType.WithAlias("half")))
		require.NoError(t, tx.RegisterCast(xtype.VarcharType, xtype.HugeintType, lengthCast))
		return boom
	}})
	assert.ErrorIs(t, err, boom)
	assert.False(t, db.Catalog().HasType("half"))
	assert.Equal(t, 0, db.Casts().Len())
	assert.Empty(t, db.Extensions())
}

func TestLoadExtension_InvalidArgs(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)
	assert.ErrorIs(t, db.LoadExtension(context.Background(), nil), ErrNilExtension)
	assert.ErrorIs(t, db.LoadExtension(context.Background(), fakeExtension{}), ErrEmptyExtensionName)
}

// =============================================================================
// 事务测试
// =============================================================================

func TestTx_Errors(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)
	tx := db.Begin()

	assert.ErrorIs(t, tx.CreateType(" ", xtype.VarcharType), xtype.ErrEmptyTypeName)
	assert.ErrorIs(t, tx.CreateType("x", xtype.LogicalType{}), xtype.ErrInvalidType)
	assert.ErrorIs(t, tx.CreateType("varchar", xtype.VarcharType), xtype.ErrTypeExists)
	require.NoError(t, tx.CreateType("a", xtype.VarcharType.WithAlias("a")))
	assert.ErrorIs(t, tx.CreateType("A", xtype.VarcharType), xtype.ErrTypeExists)
	assert.ErrorIs(t, tx.RegisterCast(xtype.VarcharType, xtype.VarcharType, nil), xcast.ErrNilFunc)
	assert.ErrorIs(t, tx.RegisterCast(xtype.LogicalType{}, xtype.VarcharType, lengthCast), xcast.ErrInvalidType)

	require.NoError(t, tx.Commit())
	assert.ErrorIs(t, tx.Commit(), ErrTxDone)
	assert.ErrorIs(t, tx.CreateType("b", xtype.VarcharType), ErrTxDone)
	assert.ErrorIs(t, tx.RegisterCast(xtype.VarcharType, xtype.VarcharType, lengthCast), ErrTxDone)
	tx.Rollback()
}

func TestTx_CommitConflict(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)

	first := db.Begin()
	second := db.Begin()
	require.NoError(t, first.CreateType("dup", xtype.HugeintType))
	require.NoError(t, second.CreateType("other", xtype.HugeintType))
	require.NoError(t, second.CreateType("dup", xtype.HugeintType))
	require.NoError(t, second.RegisterCast(xtype.VarcharType, xtype.HugeintType, lengthCast))

	require.NoError(t, first.Commit())
	assert.ErrorIs(t, second.Commit(), xtype.ErrTypeExists)

	assert.False(t, db.Catalog().HasType("other"), "冲突的事务不应写入任何类型")
	assert.Equal(t, 0, db.Casts().Len())
}

// =============================================================================
// 转换测试
// =============================================================================

func TestCast(t *testing.T) {
	obs := &recordingObserver{}
	db, err := Open(WithObserver(obs))
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, db.LoadExtension(ctx, lengthExtension()))

	src := xvector.NewVarchar([]string{"a", "bcd", ""})
	src.SetNull(2)

	out, err := db.CastTo(ctx, src, "len", 3)
	require.NoError(t, err)
	col := out.(*xvector.USmallintVector)
	assert.Equal(t, []uint16{1, 3, 0}, col.Values)
	assert.False(t, col.Validity().RowIsValid(2))
	assert.Contains(t, obs.ops, "xdb.cast")
}

func TestCast_PartialResultOnError(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, db.LoadExtension(ctx, lengthExtension()))

	src := xvector.NewVarchar([]string{"ab", "toolong", "c"})
	out, err := db.CastTo(ctx, src, "len", 3)
	assert.ErrorIs(t, err, errTooLong)
	require.NotNil(t, out)
	col := out.(*xvector.USmallintVector)
	assert.Equal(t, uint16(2), col.Values[0])
	assert.Equal(t, uint16(0), col.Values[2])
}

func TestCast_Errors(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)
	ctx := context.Background()
	src := xvector.NewVarchar([]string{"a"})

	_, err = db.Cast(ctx, nil, xtype.HugeintType, 0)
	assert.ErrorIs(t, err, ErrNilVector)

	_, err = db.Cast(ctx, src, xtype.HugeintType, 2)
	assert.ErrorIs(t, err, xvector.ErrCountOutOfRange)

	_, err = db.Cast(ctx, src, xtype.HugeintType, 1)
	assert.ErrorIs(t, err, ErrNoCast)

	_, err = db.CastTo(ctx, src, "inet", 1)
	assert.ErrorIs(t, err, xtype.ErrTypeNotFound)
}

func TestCast_PanicPropagates(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, db.LoadExtension(ctx, fakeExtension{name: "rev", load: func(tx *Tx) error {
		return tx.RegisterCast(xtype.VarcharType, xtype.HugeintType, func(_, _ xvector.Vector, _ int) error {
			xcast.Unreachable("VARCHAR to HUGEINT cast")
			return nil
		})
	}}))

	cast := func() {
		_, _ = db.Cast(ctx, xvector.NewVarchar([]string{"x"}), xtype.HugeintType, 1)
	}
	assert.PanicsWithError(t, "INTERNAL Error: VARCHAR to HUGEINT cast", cast)

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		cast()
	}()
	err, ok := recovered.(error)
	require.True(t, ok, "panic 值应为 error")
	var internal *xcast.InternalError
	require.ErrorAs(t, err, &internal)
	assert.Equal(t, "VARCHAR to HUGEINT cast", internal.What)
}
