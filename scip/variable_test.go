package scip

import (
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableData(t *testing.T) {
	m, err := New(WithHideOutput())
	require.NoError(t, err)
	defer m.Close()

	v, err := m.AddVar(0.0, 1.0, 2.0, "x", VarTypeImplInt)
	require.NoError(t, err)

	assert.Equal(t, 0, v.Index())
	assert.Equal(t, 0.0, v.Lb())
	assert.Equal(t, 0.0, v.LbLocal())
	assert.Equal(t, 1.0, v.Ub())
	assert.Equal(t, 1.0, v.UbLocal())
	assert.Equal(t, 2.0, v.Obj())
	assert.Equal(t, "x", v.Name())
	assert.Equal(t, VarTypeImplInt, v.Type())
	assert.Equal(t, VarStatusOriginal, v.Status())

	assert.False(t, v.IsInLP())
	assert.False(t, v.IsDeleted())
	assert.False(t, v.IsTransformed())
	assert.True(t, v.IsOriginal())
	assert.False(t, v.IsNegated())
	assert.False(t, v.IsRemovable())
	assert.True(t, v.IsActive())
}

// A view shares ownership of the engine: the instance must stay alive
// as long as any view references it, even when the Model itself becomes
// unreachable.
func TestVariableKeepsEngineAlive(t *testing.T) {
	v := func() Variable {
		m, err := New(WithHideOutput())
		require.NoError(t, err)
		require.NoError(t, m.SetObjSense(Maximize))
		x, err := m.AddVar(0, math.Inf(1), 3.0, "x1", VarTypeInteger)
		require.NoError(t, err)
		return x
	}()

	runtime.GC()
	runtime.GC()

	assert.Equal(t, "x1", v.Name())
	assert.Equal(t, 3.0, v.Obj())
}

// A variable has a column only while it participates in the LP
// relaxation. Before any solve there is no relaxation, so the derived
// column must be absent.
func TestColAbsentOutsideLP(t *testing.T) {
	m, err := New(WithHideOutput())
	require.NoError(t, err)
	defer m.Close()

	x, err := m.AddVar(0, 1, 1.0, "x", VarTypeBinary)
	require.NoError(t, err)

	assert.False(t, x.IsInLP())
	_, ok := x.Col()
	assert.False(t, ok)
}

func TestVariableSolVal(t *testing.T) {
	m := minimalModel(t)
	x, err := m.AddVar(0.0, 1.0, 1.0, "x", VarTypeBinary)
	require.NoError(t, err)
	_, err = m.AddCons([]Variable{x}, []float64{1.0}, 1.0, 1.0, "cons1")
	require.NoError(t, err)

	solved, err := m.Solve()
	require.NoError(t, err)
	defer solved.Close()

	assert.Equal(t, 1.0, x.SolVal())
	assert.Equal(t, 1.0, solved.SolVal(x))
}

func TestVariableEquality(t *testing.T) {
	m, err := New(WithHideOutput())
	require.NoError(t, err)
	defer m.Close()

	x, err := m.AddVar(0, 1, 1.0, "x", VarTypeBinary)
	require.NoError(t, err)
	y, err := m.AddVar(0, 1, 1.0, "y", VarTypeBinary)
	require.NoError(t, err)

	vars := m.Vars()
	require.Len(t, vars, 2)
	// Equality is native identity, not structural likeness: x and y have
	// identical bounds and objective but are different objects.
	assert.Equal(t, x, vars[0])
	assert.Equal(t, y, vars[1])
	assert.NotEqual(t, x, y)
}

func TestUseAfterClosePanics(t *testing.T) {
	m, err := New(WithHideOutput())
	require.NoError(t, err)
	x, err := m.AddVar(0, 1, 1.0, "x", VarTypeBinary)
	require.NoError(t, err)
	m.Close()

	// Accessors that go through the engine report the stale handle
	// instead of handing a dangling pointer to native code.
	assert.Panics(t, func() { _ = x.SolVal() })
}
