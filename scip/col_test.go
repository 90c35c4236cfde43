package scip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// colTester inspects the LP column of the first variable at the moment
// the first LP of the root node is solved, the earliest point where a
// column is guaranteed to exist.
type colTester struct {
	t   *testing.T
	ran bool
}

func (h *colTester) Mask() EventMask {
	return EventFirstLPSolved
}

func (h *colTester) Execute(m *SolvingModel, event Event) {
	t := h.t
	h.ran = true

	assert.Equal(t, EventFirstLPSolved, event.Type())

	vars := m.Vars()
	require.NotEmpty(t, vars)
	x := vars[0]

	require.True(t, x.IsInLP())
	col, ok := x.Col()
	require.True(t, ok)

	// Index is stable across repeated queries.
	assert.Equal(t, 0, col.Index())
	assert.Equal(t, 0, col.Index())

	assert.Equal(t, 1.0, col.Obj())
	assert.Equal(t, 0.0, col.Lb())
	assert.Equal(t, 1.0, col.Ub())
	assert.Equal(t, 0.0, col.BestBound())
	assert.Equal(t, 1.0, col.PrimalSol())
	assert.Equal(t, 1.0, col.MinPrimalSol())
	assert.Equal(t, 1.0, col.MaxPrimalSol())
	assert.Equal(t, BasisStatusBasic, col.BasisStatus())
	assert.True(t, col.IsIntegral())
	assert.False(t, col.IsRemovable())
	assert.True(t, col.IsInLP())

	probindex, ok := col.VarProbindex()
	require.True(t, ok)
	assert.Equal(t, 0, probindex)

	pos, ok := col.LPPos()
	require.True(t, ok)
	assert.Equal(t, 0, pos)

	depth, ok := col.LPDepth()
	require.True(t, ok)
	assert.Equal(t, 0, depth)

	assert.Equal(t, 1, col.NNonz())
	assert.Equal(t, 1, col.NLPNonz())
	assert.Equal(t, []float64{1.0}, col.Vals())

	_, ok = col.StrongBranchingNode()
	assert.False(t, ok)
	assert.Equal(t, 0, col.NStrongBranches())
	assert.Equal(t, 0, col.Age())

	// The column's variable points back to the same native object.
	assert.Equal(t, x, col.Var())

	// Row accessors, through the column's non-zero entries.
	rows := col.Rows()
	require.Len(t, rows, 1)
	row := rows[0]
	assert.True(t, row.IsInLP())
	assert.Equal(t, 1, row.NNonz())
	assert.Equal(t, []float64{1.0}, row.Vals())
	assert.Equal(t, 1.0, row.Lhs())
	assert.Equal(t, 1.0, row.Rhs())
	assert.Equal(t, 0.0, row.Constant())
	assert.Equal(t, 0, row.Age())

	rowPos, ok := row.LPPos()
	require.True(t, ok)
	assert.Equal(t, 0, rowPos)

	cols := row.Cols()
	require.Len(t, cols, 1)
	assert.Equal(t, col, cols[0])
}

func TestColAccessorsDuringSolve(t *testing.T) {
	m := minimalModel(t)
	x, err := m.AddVar(0.0, 1.0, 1.0, "x", VarTypeBinary)
	require.NoError(t, err)

	cons, err := m.AddCons([]Variable{x}, []float64{1.0}, 1.0, 1.0, "cons1")
	require.NoError(t, err)
	require.NoError(t, m.SetConsModifiable(cons, true))

	h := &colTester{t: t}
	require.NoError(t, m.AddEventHandler(h, "col_tester"))

	solved, err := m.Solve()
	require.NoError(t, err)
	defer solved.Close()

	assert.True(t, h.ran)

	// After the solve the derived column reports the final LP state.
	col, ok := x.Col()
	if ok {
		assert.Equal(t, 1.0, col.PrimalSol())
		assert.True(t, col.IsIntegral())
	}
}
