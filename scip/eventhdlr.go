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

// EventHandler is a user-supplied handler for engine events. The events
// selected by Mask are caught when solving starts and dropped when it
// ends; Execute is invoked synchronously for each occurrence, on the
// goroutine that called Solve. The model and event are valid for the
// duration of the call only.
type EventHandler interface {
	// Mask selects the event types the handler wants to receive.
	Mask() EventMask
	// Execute handles one event.
	Execute(m *SolvingModel, event Event)
}

// Event is a view of a native engine event, valid only inside the
// callback it was delivered to.
type Event struct {
	raw *C.SCIP_EVENT
	env *env
}

// Type returns the type of the event.
func (e Event) Type() EventMask {
	return EventMask(C.SCIPeventGetType(e.raw))
}

// EventMask is a set of engine event types. Masks combine with bitwise
// OR and are passed to the engine verbatim.
type EventMask uint64

const (
	// EventVarAdded notifies that a variable was added to the transformed problem.
	EventVarAdded EventMask = 0x00000001
	// EventVarDeleted notifies that a variable is about to be deleted.
	EventVarDeleted EventMask = 0x00000002
	// EventVarFixed notifies that a variable was fixed.
	EventVarFixed EventMask = 0x00000004
	// EventObjChanged notifies that a variable's objective coefficient changed.
	EventObjChanged EventMask = 0x00000010
	// EventGlbChanged notifies that a variable's global lower bound changed.
	EventGlbChanged EventMask = 0x00000020
	// EventGubChanged notifies that a variable's global upper bound changed.
	EventGubChanged EventMask = 0x00000040
	// EventLbTightened notifies that a variable's local lower bound was tightened.
	EventLbTightened EventMask = 0x00000080
	// EventLbRelaxed notifies that a variable's local lower bound was relaxed.
	EventLbRelaxed EventMask = 0x00000100
	// EventUbTightened notifies that a variable's local upper bound was tightened.
	EventUbTightened EventMask = 0x00000200
	// EventUbRelaxed notifies that a variable's local upper bound was relaxed.
	EventUbRelaxed EventMask = 0x00000400
	// EventNodeFocused notifies that a node was focused.
	EventNodeFocused EventMask = 0x00040000
	// EventNodeFeasible notifies that a node was proven feasible.
	EventNodeFeasible EventMask = 0x00080000
	// EventNodeInfeasible notifies that a node was proven infeasible.
	EventNodeInfeasible EventMask = 0x00100000
	// EventNodeBranched notifies that a node was branched on.
	EventNodeBranched EventMask = 0x00200000
	// EventFirstLPSolved notifies that the first LP of a node was solved.
	EventFirstLPSolved EventMask = 0x00800000
	// EventLPSolved notifies that an LP of a node was solved.
	EventLPSolved EventMask = 0x01000000
	// EventPoorSolFound notifies that a non-improving solution was found.
	EventPoorSolFound EventMask = 0x02000000
	// EventBestSolFound notifies that a new incumbent was found.
	EventBestSolFound EventMask = 0x04000000

	// EventNodeSolved is any of feasible, infeasible, or branched.
	EventNodeSolved = EventNodeFeasible | EventNodeInfeasible | EventNodeBranched
	// EventSolFound is any solution, improving or not.
	EventSolFound = EventPoorSolFound | EventBestSolFound
)

// Has reports whether every bit of other is set in the mask.
func (m EventMask) Has(other EventMask) bool {
	return m&other == other
}

// AddEventHandler registers an event handler with the engine under the
// given name. The name must be non-empty and unique per instance; a
// violation is reported as *RegistrationError. The handler is released
// when the instance is freed.
func (m *Model) AddEventHandler(h EventHandler, name string) error {
	e := m.mustEnv()
	if name == "" {
		return &RegistrationError{Name: name, Reason: "name must not be empty"}
	}
	if e.plugins[name] {
		return &RegistrationError{Name: name, Reason: "name already registered"}
	}

	reg := &eventReg{impl: h, env: weak.Make(e), name: name}
	handle := cgo.NewHandle(reg)

	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	cDesc := C.CString("")
	defer C.free(unsafe.Pointer(cDesc))

	rc := Retcode(C.goscipIncludeEventhdlr(e.scip(), cName, cDesc, C.uintptr_t(handle)))
	if rc != RetcodeOkay {
		handle.Delete()
		return &RegistrationError{Name: name, Reason: "engine rejected registration: " + rc.String()}
	}
	e.plugins[name] = true
	return nil
}
