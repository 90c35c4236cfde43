package scip

/*
#include <scip/scip.h>
#include "bridge.h"
*/
import "C"
import (
	"runtime/cgo"
	"weak"
)

// The bridge connects SCIP's extension points to registered Go plugin
// objects. At registration time a cgo.Handle to the registration record
// is stashed with the engine as the plugin's user data; the C shims in
// bridge.c recover it and call back into the exported functions below.
// Each invocation reconstructs a solving-stage session around the same
// engine instance the plugin was registered with.
//
// The record references the engine weakly. The handle table is a
// package-global map, so a strong reference there would keep the engine
// reachable forever and the finalizer could never fire. The callbacks
// only run inside Solve or SCIPfree, while the caller still holds the
// engine strongly, so the weak pointer is always live when resolved.
//
// Panics in user code are deliberately not recovered here: a panic
// unwinding through the native solve loop leaves the engine in an
// unknown state, so the runtime's abort is the correct outcome.

type heurReg struct {
	impl Heuristic
	env  weak.Pointer[env]
	name string
}

type eventReg struct {
	impl EventHandler
	env  weak.Pointer[env]
	name string
}

//export goHeurExec
func goHeurExec(data C.uintptr_t, timing C.uint, nodeInfeasible C.int) C.int {
	reg := cgo.Handle(data).Value().(*heurReg)
	m := &SolvingModel{env: reg.env.Value()}
	result := reg.impl.Execute(m, HeurTiming(timing), nodeInfeasible != 0)
	return C.int(result.toC())
}

//export goEventExec
func goEventExec(data C.uintptr_t, event *C.SCIP_EVENT) {
	reg := cgo.Handle(data).Value().(*eventReg)
	e := reg.env.Value()
	m := &SolvingModel{env: e}
	reg.impl.Execute(m, Event{raw: event, env: e})
}

//export goEventMask
func goEventMask(data C.uintptr_t) C.uint64_t {
	reg := cgo.Handle(data).Value().(*eventReg)
	return C.uint64_t(reg.impl.Mask())
}

//export goPluginFree
func goPluginFree(data C.uintptr_t) {
	cgo.Handle(data).Delete()
}
