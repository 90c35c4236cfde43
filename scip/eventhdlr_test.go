package scip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingHandler counts event deliveries and remembers their types.
type countingHandler struct {
	mask  EventMask
	types []EventMask
}

func (h *countingHandler) Mask() EventMask {
	return h.mask
}

func (h *countingHandler) Execute(_ *SolvingModel, event Event) {
	h.types = append(h.types, event.Type())
}

func TestEventMaskCombinesWithOr(t *testing.T) {
	mask := EventFirstLPSolved | EventBestSolFound

	assert.True(t, mask.Has(EventFirstLPSolved))
	assert.True(t, mask.Has(EventBestSolFound))
	assert.False(t, mask.Has(EventNodeBranched))

	assert.True(t, EventNodeSolved.Has(EventNodeFeasible))
	assert.True(t, EventNodeSolved.Has(EventNodeInfeasible))
	assert.True(t, EventSolFound.Has(EventBestSolFound))
}

func TestEventHandlerReceivesBestSol(t *testing.T) {
	m := minimalModel(t)
	x, err := m.AddVar(0, 1, 1.0, "x", VarTypeBinary)
	require.NoError(t, err)
	_, err = m.AddCons([]Variable{x}, []float64{1.0}, 1.0, 1.0, "cons1")
	require.NoError(t, err)

	h := &countingHandler{mask: EventBestSolFound}
	require.NoError(t, m.AddEventHandler(h, "best_sol_counter"))

	solved, err := m.Solve()
	require.NoError(t, err)
	defer solved.Close()

	require.NotEmpty(t, h.types)
	for _, typ := range h.types {
		assert.True(t, h.mask.Has(typ))
	}
}

func TestEventHandlerDuplicateName(t *testing.T) {
	m, err := New(WithHideOutput())
	require.NoError(t, err)
	defer m.Close()

	h := &countingHandler{mask: EventBestSolFound}
	require.NoError(t, m.AddEventHandler(h, "dup"))

	err = m.AddEventHandler(&countingHandler{mask: EventLPSolved}, "dup")
	var regErr *RegistrationError
	require.ErrorAs(t, err, &regErr)

	// Heuristics and event handlers share the plugin namespace.
	err = m.AddHeuristic(&recordingHeur{result: HeurDidNotRun}, "dup")
	require.ErrorAs(t, err, &regErr)
}

// Incumbent state is visible to handlers while the engine is inside its
// solve loop.
type incumbentProbe struct {
	t        *testing.T
	sawBound bool
}

func (h *incumbentProbe) Mask() EventMask {
	return EventBestSolFound
}

func (h *incumbentProbe) Execute(m *SolvingModel, _ Event) {
	sol, ok := m.BestSol()
	require.True(h.t, ok)
	assert.InDelta(h.t, m.ObjVal(), sol.ObjVal(), 1e-9)
	h.sawBound = true
}

func TestEventHandlerSeesIncumbent(t *testing.T) {
	m := minimalModel(t)
	require.NoError(t, m.SetObjSense(Maximize))
	x, err := m.AddVar(0, 1, 2.0, "x", VarTypeBinary)
	require.NoError(t, err)
	y, err := m.AddVar(0, 1, 3.0, "y", VarTypeBinary)
	require.NoError(t, err)
	_, err = m.AddCons([]Variable{x, y}, []float64{1.0, 1.0}, -m.Infinity(), 1.0, "cap")
	require.NoError(t, err)

	h := &incumbentProbe{t: t}
	require.NoError(t, m.AddEventHandler(h, "incumbent_probe"))

	solved, err := m.Solve()
	require.NoError(t, err)
	defer solved.Close()

	assert.True(t, h.sawBound)
	assert.InDelta(t, 3.0, solved.ObjVal(), 1e-9)
}
