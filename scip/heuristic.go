package scip

/*
#include <stdlib.h>
#include <scip/scip.h>
#include "bridge.h"
*/
import "C"
import (
	"runtime/cgo"
	"unsafe"
	"weak"
)

// Heuristic is a user-supplied primal heuristic. The engine invokes
// Execute at the points selected by the registration's timing mask,
// synchronously on the goroutine that called Solve. The model is valid
// for the duration of the call only.
//
// Execute must not block indefinitely; the entire solve stalls while it
// runs. A panic inside Execute unwinds into native frames and aborts
// the process.
type Heuristic interface {
	// Execute runs the heuristic. timing is the point in the solve loop
	// that triggered the call, nodeInfeasible reports whether the
	// current node is already proven infeasible.
	Execute(m *SolvingModel, timing HeurTiming, nodeInfeasible bool) HeurResult
}

// HeurResult is the result of a heuristic execution, reported back to
// the engine. The bridge translates it verbatim: claiming FoundSol
// without having added a solution does not create one, and the engine's
// own solution acceptance stays authoritative.
type HeurResult int

const (
	// HeurDidNotRun means the heuristic was not executed.
	HeurDidNotRun HeurResult = iota
	// HeurDelayed means the heuristic was skipped but should be called again.
	HeurDelayed
	// HeurNoSolFound means the heuristic ran but found no new solution.
	HeurNoSolFound
	// HeurFoundSol means the heuristic found a new incumbent solution.
	HeurFoundSol
)

// String returns a human-readable representation of the result.
func (r HeurResult) String() string {
	switch r {
	case HeurDelayed:
		return "Delayed"
	case HeurNoSolFound:
		return "NoSolFound"
	case HeurFoundSol:
		return "FoundSol"
	default:
		return "DidNotRun"
	}
}

func (r HeurResult) toC() C.SCIP_RESULT {
	switch r {
	case HeurDelayed:
		return C.SCIP_DELAYED
	case HeurNoSolFound:
		return C.SCIP_DIDNOTFIND
	case HeurFoundSol:
		return C.SCIP_FOUNDSOL
	default:
		return C.SCIP_DIDNOTRUN
	}
}

// HeurTiming is a set of points in the solve loop at which a heuristic
// may run. Masks combine with bitwise OR; the engine is the authority
// on the meaning of individual bits and of combinations.
type HeurTiming uint64

const (
	// HeurBeforeNode calls the heuristic before the processing of the node starts.
	HeurBeforeNode HeurTiming = 0x001
	// HeurDuringLPLoop calls the heuristic after each LP solve during the cut-and-price loop.
	HeurDuringLPLoop HeurTiming = 0x002
	// HeurAfterLPLoop calls the heuristic after the cut-and-price loop finished.
	HeurAfterLPLoop HeurTiming = 0x004
	// HeurAfterLPNode calls the heuristic after processing a node with solved LP.
	HeurAfterLPNode HeurTiming = 0x008
	// HeurAfterPseudoNode calls the heuristic after processing a node without solved LP.
	HeurAfterPseudoNode HeurTiming = 0x010
	// HeurAfterLPPlunge calls the heuristic after the last node of the plunge, if its LP was solved.
	HeurAfterLPPlunge HeurTiming = 0x020
	// HeurAfterPseudoPlunge calls the heuristic after the last node of the plunge, if its LP was not solved.
	HeurAfterPseudoPlunge HeurTiming = 0x040
	// HeurDuringPricingLoop calls the heuristic during the pricing loop.
	HeurDuringPricingLoop HeurTiming = 0x080
	// HeurBeforePresol calls the heuristic before presolving.
	HeurBeforePresol HeurTiming = 0x100
	// HeurDuringPresolLoop calls the heuristic during the presolving loop.
	HeurDuringPresolLoop HeurTiming = 0x200
	// HeurAfterPropLoop calls the heuristic after propagation before the LP solve.
	HeurAfterPropLoop HeurTiming = 0x400
)

// Has reports whether every bit of other is set in the mask.
func (t HeurTiming) Has(other HeurTiming) bool {
	return t&other == other
}

// toC narrows the mask to the native integer width. The conversion is
// the only place the raw representation crosses the boundary.
func (t HeurTiming) toC() C.SCIP_HEURTIMING {
	return C.SCIP_HEURTIMING(t)
}

// HeurOption configures the registration of a heuristic.
type HeurOption func(*heurConfig)

type heurConfig struct {
	desc        string
	dispChar    byte
	priority    int
	freq        int
	freqOffset  int
	maxDepth    int
	timing      HeurTiming
	usesSubSCIP bool
}

// WithHeurDesc sets the description shown in the engine's display.
func WithHeurDesc(desc string) HeurOption {
	return func(c *heurConfig) { c.desc = desc }
}

// WithDispChar sets the display character of the heuristic.
func WithDispChar(ch byte) HeurOption {
	return func(c *heurConfig) { c.dispChar = ch }
}

// WithPriority sets the priority of the heuristic.
func WithPriority(priority int) HeurOption {
	return func(c *heurConfig) { c.priority = priority }
}

// WithFreq sets the calling frequency of the heuristic (1 = every node).
func WithFreq(freq int) HeurOption {
	return func(c *heurConfig) { c.freq = freq }
}

// WithFreqOffset sets the frequency offset of the heuristic.
func WithFreqOffset(offset int) HeurOption {
	return func(c *heurConfig) { c.freqOffset = offset }
}

// WithMaxDepth sets the maximal tree depth at which the heuristic runs
// (-1 for no limit).
func WithMaxDepth(depth int) HeurOption {
	return func(c *heurConfig) { c.maxDepth = depth }
}

// WithHeurTiming sets the timing mask of the heuristic.
func WithHeurTiming(timing HeurTiming) HeurOption {
	return func(c *heurConfig) { c.timing = timing }
}

// WithUsesSubSCIP marks the heuristic as running a sub-SCIP instance.
func WithUsesSubSCIP() HeurOption {
	return func(c *heurConfig) { c.usesSubSCIP = true }
}

// AddHeuristic registers a primal heuristic with the engine under the
// given name. The name must be non-empty and unique per instance; a
// violation is reported as *RegistrationError. The heuristic is invoked
// during Solve at the points selected by its timing mask and released
// when the instance is freed.
func (m *Model) AddHeuristic(h Heuristic, name string, opts ...HeurOption) error {
	e := m.mustEnv()
	if name == "" {
		return &RegistrationError{Name: name, Reason: "name must not be empty"}
	}
	if e.plugins[name] {
		return &RegistrationError{Name: name, Reason: "name already registered"}
	}

	cfg := &heurConfig{
		dispChar: '?',
		priority: 10000,
		freq:     1,
		maxDepth: -1,
		timing:   HeurBeforeNode,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	reg := &heurReg{impl: h, env: weak.Make(e), name: name}
	handle := cgo.NewHandle(reg)

	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	cDesc := C.CString(cfg.desc)
	defer C.free(unsafe.Pointer(cDesc))

	var usesSubSCIP C.SCIP_Bool
	if cfg.usesSubSCIP {
		usesSubSCIP = 1
	}
	rc := Retcode(C.goscipIncludeHeur(e.scip(), cName, cDesc,
		C.char(cfg.dispChar), C.int(cfg.priority), C.int(cfg.freq),
		C.int(cfg.freqOffset), C.int(cfg.maxDepth),
		cfg.timing.toC(), usesSubSCIP, C.uintptr_t(handle)))
	if rc != RetcodeOkay {
		handle.Delete()
		return &RegistrationError{Name: name, Reason: "engine rejected registration: " + rc.String()}
	}
	e.plugins[name] = true
	return nil
}
