package scip

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalModel creates a quiet instance with presolving and separation
// disabled, so small test problems keep their structure through the
// solve.
func minimalModel(t *testing.T) *Model {
	t.Helper()
	m, err := New(WithHideOutput())
	require.NoError(t, err)
	require.NoError(t, m.SetIntParam("presolving/maxrounds", 0))
	require.NoError(t, m.SetIntParam("separating/maxrounds", 0))
	require.NoError(t, m.SetIntParam("separating/maxroundsroot", 0))
	return m
}

// knapsackModel builds a 0/1 knapsack instance that needs actual
// branching: maximize value subject to a weight capacity.
func knapsackModel(t *testing.T, weights, values []float64, capacity float64) (*Model, []Variable) {
	t.Helper()
	require.Equal(t, len(weights), len(values))

	m, err := New(WithHideOutput())
	require.NoError(t, err)
	require.NoError(t, m.SetObjSense(Maximize))

	vars := make([]Variable, len(weights))
	for i := range weights {
		v, err := m.AddVar(0, 1, values[i], "item", VarTypeBinary)
		require.NoError(t, err)
		vars[i] = v
	}
	_, err = m.AddCons(vars, weights, -m.Infinity(), capacity, "capacity")
	require.NoError(t, err)
	return m, vars
}

func TestBoundAndObjectiveRoundTrip(t *testing.T) {
	m, err := New(WithHideOutput())
	require.NoError(t, err)
	defer m.Close()

	// Values chosen to be exactly representable and not, both must come
	// back bit-for-bit.
	x, err := m.AddVar(0.25, 0.75, 1.5, "x", VarTypeContinuous)
	require.NoError(t, err)
	y, err := m.AddVar(0.1, 0.3, 0.7, "y", VarTypeContinuous)
	require.NoError(t, err)

	assert.Equal(t, 0.25, x.Lb())
	assert.Equal(t, 0.75, x.Ub())
	assert.Equal(t, 1.5, x.Obj())
	assert.Equal(t, 0.1, y.Lb())
	assert.Equal(t, 0.3, y.Ub())
	assert.Equal(t, 0.7, y.Obj())
}

func TestVariableIndexStability(t *testing.T) {
	m, err := New(WithHideOutput())
	require.NoError(t, err)
	defer m.Close()

	x, err := m.AddVar(0, 1, 1, "x", VarTypeBinary)
	require.NoError(t, err)
	y, err := m.AddVar(0, 1, 1, "y", VarTypeBinary)
	require.NoError(t, err)
	z, err := m.AddVar(0, 1, 1, "z", VarTypeBinary)
	require.NoError(t, err)

	assert.Equal(t, 0, x.Index())
	assert.Equal(t, 1, y.Index())
	assert.Equal(t, 2, z.Index())

	// Unrelated queries must not move the indices.
	_ = y.Name()
	_ = z.Type()
	_ = m.NVars()
	assert.Equal(t, 0, x.Index())
	assert.Equal(t, 1, y.Index())
	assert.Equal(t, 2, z.Index())

	// Views of the same native object compare equal.
	assert.Equal(t, x, m.Vars()[0])
}

func TestSolveBinaryProblem(t *testing.T) {
	m := minimalModel(t)
	x, err := m.AddVar(0, 1, 1.0, "x", VarTypeBinary)
	require.NoError(t, err)
	_, err = m.AddCons([]Variable{x}, []float64{1.0}, 1.0, 1.0, "exactly_one")
	require.NoError(t, err)

	solved, err := m.Solve()
	require.NoError(t, err)
	defer solved.Close()

	assert.True(t, solved.Status().IsOptimal())
	assert.Equal(t, 1.0, x.SolVal())
	assert.InDelta(t, 1.0, solved.ObjVal(), 1e-9)

	_, ok := solved.BestSol()
	assert.True(t, ok)
}

func TestSolveConsumesModel(t *testing.T) {
	m := minimalModel(t)
	_, err := m.AddVar(0, 1, 1.0, "x", VarTypeBinary)
	require.NoError(t, err)

	solved, err := m.Solve()
	require.NoError(t, err)
	defer solved.Close()

	assert.Panics(t, func() {
		_, _ = m.AddVar(0, 1, 1.0, "y", VarTypeBinary)
	})
	// Close on the consumed Model is a no-op; the instance now belongs
	// to the SolvedModel.
	assert.NotPanics(t, m.Close)
}

func TestAddConsLengthMismatch(t *testing.T) {
	m := minimalModel(t)
	defer m.Close()
	x, err := m.AddVar(0, 1, 1.0, "x", VarTypeBinary)
	require.NoError(t, err)

	_, err = m.AddCons([]Variable{x}, []float64{1.0, 2.0}, 0, 1, "c")
	var scipErr *Error
	require.ErrorAs(t, err, &scipErr)
	assert.Equal(t, "AddCons", scipErr.Op)
}

// Native-level rejections come back as *Error carrying the engine's own
// return code.
func TestParamTypeMismatch(t *testing.T) {
	m, err := New(WithHideOutput())
	require.NoError(t, err)
	defer m.Close()

	// limits/time is a real parameter.
	err = m.SetIntParam("limits/time", 10)
	var scipErr *Error
	require.ErrorAs(t, err, &scipErr)
	assert.Equal(t, RetcodeParameterWrongType, scipErr.Code)

	err = m.SetRealParam("no/such/param", 1.0)
	require.ErrorAs(t, err, &scipErr)
	assert.Equal(t, RetcodeParameterUnknown, scipErr.Code)
}

func TestFreeTransformReSolve(t *testing.T) {
	m := minimalModel(t)
	require.NoError(t, m.SetObjSense(Maximize))
	x, err := m.AddVar(0, 1, 1.0, "x", VarTypeBinary)
	require.NoError(t, err)

	solved, err := m.Solve()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, solved.ObjVal(), 1e-9)

	// Back to the building stage: extend the problem and solve again.
	m2, err := solved.FreeTransform()
	require.NoError(t, err)
	defer m2.Close()

	y, err := m2.AddVar(0, 1, 2.0, "y", VarTypeBinary)
	require.NoError(t, err)
	_, err = m2.AddCons([]Variable{x, y}, []float64{1.0, 1.0}, -m2.Infinity(), 2.0, "cap")
	require.NoError(t, err)

	solved2, err := m2.Solve()
	require.NoError(t, err)
	defer solved2.Close()

	assert.True(t, solved2.Status().IsOptimal())
	assert.InDelta(t, 3.0, solved2.ObjVal(), 1e-9)
}

func TestInfeasibleProblem(t *testing.T) {
	m := minimalModel(t)
	x, err := m.AddVar(0, 10, 1.0, "x", VarTypeContinuous)
	require.NoError(t, err)
	_, err = m.AddCons([]Variable{x}, []float64{1.0}, 5.0, m.Infinity(), "ge5")
	require.NoError(t, err)
	_, err = m.AddCons([]Variable{x}, []float64{1.0}, -m.Infinity(), 3.0, "le3")
	require.NoError(t, err)

	solved, err := m.Solve()
	require.NoError(t, err)
	defer solved.Close()

	assert.True(t, solved.Status().IsInfeasible())
}

func TestKnapsackOptimum(t *testing.T) {
	m, _ := knapsackModel(t,
		[]float64{3, 4, 5},
		[]float64{3, 4, 5},
		7,
	)
	solved, err := m.Solve()
	require.NoError(t, err)
	defer solved.Close()

	assert.True(t, solved.Status().IsOptimal())
	assert.InDelta(t, 7.0, solved.ObjVal(), 1e-9)
	assert.InDelta(t, 7.0, solved.BestBound(), 1e-6)
}

func TestTimeLimitOption(t *testing.T) {
	m, err := New(WithHideOutput(), WithTimeLimit(3600))
	require.NoError(t, err)
	defer m.Close()
	// The option is engine configuration; nothing to observe beyond a
	// clean solve of a trivial problem.
	_, err = m.AddVar(0, 1, 1.0, "x", VarTypeBinary)
	require.NoError(t, err)
	solved, err := m.Solve()
	require.NoError(t, err)
	solved.Close()
}

func TestCloseIsIdempotent(t *testing.T) {
	m, err := New(WithHideOutput())
	require.NoError(t, err)
	m.Close()
	m.Close()
}

func TestInfinityBounds(t *testing.T) {
	m, err := New(WithHideOutput())
	require.NoError(t, err)
	defer m.Close()

	inf := m.Infinity()
	assert.True(t, inf > 0)
	assert.False(t, math.IsNaN(inf))
}
