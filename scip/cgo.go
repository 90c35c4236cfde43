// Package scip provides Go bindings for the SCIP constraint-integer
// optimization solver.
//
// SCIP is a framework for mixed-integer programming and constraint
// integer programming built around a branch-and-bound search. This
// package links against an installed libscip (via cgo) and exposes a
// safe, staged API on top of SCIP's pointer-based C interface.
//
// # Staged models
//
// A SCIP instance moves through stages, and most C calls are legal only
// in some of them. The binding mirrors the stages as distinct Go types
// so that the compiler rejects most out-of-stage calls:
//
//   - [Model] is the problem-building stage: add variables and
//     constraints, set parameters, register plugins.
//   - [SolvingModel] exists only inside plugin callbacks, while the
//     native search is running.
//   - [SolvedModel] is returned by [Model.Solve] and exposes results.
//
// # Example
//
//	model, err := scip.New(scip.WithHideOutput())
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer model.Close()
//
//	x, _ := model.AddVar(0, 1, 1.0, "x", scip.VarTypeBinary)
//	model.AddCons([]scip.Variable{x}, []float64{1.0}, 1.0, 1.0, "c")
//
//	solved, err := model.Solve()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(solved.Status(), x.SolVal())
//
// # Lifetime
//
// Entity views ([Variable], [Col], [Row], [Constraint]) keep the native
// SCIP instance alive but not the specific object they point at: SCIP
// may remove or reindex objects during presolving and search. Guard
// predicates such as [Variable.IsInLP] and the comma-ok accessors are
// the supported way to detect that; dereferencing past them is a caller
// error.
package scip

/*
#cgo LDFLAGS: -lscip
#include <stdlib.h>
#include <scip/scip.h>
#include <scip/scipdefplugins.h>
*/
import "C"
import (
	"runtime"
	"sync/atomic"
	"unsafe"
)

// Retcode is a SCIP return code. Any code other than RetcodeOkay
// indicates a failed native call.
type Retcode int

const (
	RetcodeOkay               = Retcode(C.SCIP_OKAY)
	RetcodeError              = Retcode(C.SCIP_ERROR)
	RetcodeNoMemory           = Retcode(C.SCIP_NOMEMORY)
	RetcodeReadError          = Retcode(C.SCIP_READERROR)
	RetcodeWriteError         = Retcode(C.SCIP_WRITEERROR)
	RetcodeNoFile             = Retcode(C.SCIP_NOFILE)
	RetcodeFileCreateError    = Retcode(C.SCIP_FILECREATEERROR)
	RetcodeLPError            = Retcode(C.SCIP_LPERROR)
	RetcodeNoProblem          = Retcode(C.SCIP_NOPROBLEM)
	RetcodeInvalidCall        = Retcode(C.SCIP_INVALIDCALL)
	RetcodeInvalidData        = Retcode(C.SCIP_INVALIDDATA)
	RetcodeInvalidResult      = Retcode(C.SCIP_INVALIDRESULT)
	RetcodePluginNotFound     = Retcode(C.SCIP_PLUGINNOTFOUND)
	RetcodeParameterUnknown   = Retcode(C.SCIP_PARAMETERUNKNOWN)
	RetcodeParameterWrongType = Retcode(C.SCIP_PARAMETERWRONGTYPE)
	RetcodeParameterWrongVal  = Retcode(C.SCIP_PARAMETERWRONGVAL)
	RetcodeKeyAlreadyExisting = Retcode(C.SCIP_KEYALREADYEXISTING)
	RetcodeMaxDepthLevel      = Retcode(C.SCIP_MAXDEPTHLEVEL)
	RetcodeBranchError        = Retcode(C.SCIP_BRANCHERROR)
)

// String returns a human-readable representation of the return code.
func (r Retcode) String() string {
	switch r {
	case RetcodeOkay:
		return "Okay"
	case RetcodeError:
		return "Error"
	case RetcodeNoMemory:
		return "NoMemory"
	case RetcodeReadError:
		return "ReadError"
	case RetcodeWriteError:
		return "WriteError"
	case RetcodeNoFile:
		return "NoFile"
	case RetcodeFileCreateError:
		return "FileCreateError"
	case RetcodeLPError:
		return "LPError"
	case RetcodeNoProblem:
		return "NoProblem"
	case RetcodeInvalidCall:
		return "InvalidCall"
	case RetcodeInvalidData:
		return "InvalidData"
	case RetcodeInvalidResult:
		return "InvalidResult"
	case RetcodePluginNotFound:
		return "PluginNotFound"
	case RetcodeParameterUnknown:
		return "ParameterUnknown"
	case RetcodeParameterWrongType:
		return "ParameterWrongType"
	case RetcodeParameterWrongVal:
		return "ParameterWrongVal"
	case RetcodeKeyAlreadyExisting:
		return "KeyAlreadyExisting"
	case RetcodeMaxDepthLevel:
		return "MaxDepthLevel"
	case RetcodeBranchError:
		return "BranchError"
	default:
		return "Unknown"
	}
}

// Stage is the native solve stage of a SCIP instance.
type Stage int

const (
	StageInit        = Stage(C.SCIP_STAGE_INIT)
	StageProblem     = Stage(C.SCIP_STAGE_PROBLEM)
	StageTransformed = Stage(C.SCIP_STAGE_TRANSFORMED)
	StagePresolving  = Stage(C.SCIP_STAGE_PRESOLVING)
	StagePresolved   = Stage(C.SCIP_STAGE_PRESOLVED)
	StageSolving     = Stage(C.SCIP_STAGE_SOLVING)
	StageSolved      = Stage(C.SCIP_STAGE_SOLVED)
	StageFree        = Stage(C.SCIP_STAGE_FREE)
)

// env owns the native SCIP instance. It is shared by every staged model
// and entity view derived from it; the garbage collector acts as the
// owner count and free runs exactly once, either through an explicit
// Close or through the finalizer.
type env struct {
	ptr     *C.SCIP
	freed   atomic.Bool
	plugins map[string]bool // registered plugin names
}

// newEnv creates a SCIP instance with the default plugins included and
// an empty problem installed.
func newEnv(probName string) (*env, error) {
	var ptr *C.SCIP
	if rc := Retcode(C.SCIPcreate(&ptr)); rc != RetcodeOkay || ptr == nil {
		return nil, &Error{Op: "SCIPcreate", Code: rc}
	}
	e := &env{ptr: ptr, plugins: make(map[string]bool)}
	runtime.SetFinalizer(e, (*env).free)

	if err := newError("SCIPincludeDefaultPlugins", Retcode(C.SCIPincludeDefaultPlugins(ptr))); err != nil {
		e.free()
		return nil, err
	}
	cName := C.CString(probName)
	defer C.free(unsafe.Pointer(cName))
	if err := newError("SCIPcreateProbBasic", Retcode(C.SCIPcreateProbBasic(ptr, cName))); err != nil {
		e.free()
		return nil, err
	}
	return e, nil
}

// scip returns the native pointer, panicking if the instance was freed.
// Every accessor funnels through here, so use-after-free is reported
// instead of handed to the native library.
func (e *env) scip() *C.SCIP {
	if e.ptr == nil {
		panic("scip: use of freed SCIP instance")
	}
	return e.ptr
}

// free releases the native instance. Safe to call multiple times;
// teardown happens exactly once. Plugin registrations are released by
// their native free callbacks during SCIPfree.
func (e *env) free() {
	if !e.freed.CompareAndSwap(false, true) {
		return
	}
	runtime.SetFinalizer(e, nil)
	p := e.ptr
	e.ptr = nil
	if p != nil {
		C.SCIPfree(&p)
	}
}

func (e *env) stage() Stage {
	return Stage(C.SCIPgetStage(e.scip()))
}

func (e *env) setIntParam(name string, value int) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return newError("SetIntParam", Retcode(C.SCIPsetIntParam(e.scip(), cName, C.int(value))))
}

func (e *env) setLongintParam(name string, value int64) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return newError("SetLongintParam", Retcode(C.SCIPsetLongintParam(e.scip(), cName, C.SCIP_Longint(value))))
}

func (e *env) setRealParam(name string, value float64) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return newError("SetRealParam", Retcode(C.SCIPsetRealParam(e.scip(), cName, C.SCIP_Real(value))))
}

func (e *env) setBoolParam(name string, value bool) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	var v C.SCIP_Bool
	if value {
		v = 1
	}
	return newError("SetBoolParam", Retcode(C.SCIPsetBoolParam(e.scip(), cName, v)))
}

func (e *env) setStringParam(name, value string) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	cVal := C.CString(value)
	defer C.free(unsafe.Pointer(cVal))
	return newError("SetStringParam", Retcode(C.SCIPsetStringParam(e.scip(), cName, cVal)))
}

// vars wraps the problem's current variable array. In the problem stage
// these are the original variables; during solving, the transformed
// ones.
func (e *env) vars() []Variable {
	n := int(C.SCIPgetNVars(e.scip()))
	if n == 0 {
		return nil
	}
	raw := unsafe.Slice(C.SCIPgetVars(e.scip()), n)
	out := make([]Variable, n)
	for i, v := range raw {
		out[i] = Variable{raw: v, env: e}
	}
	return out
}

func (e *env) nVars() int {
	return int(C.SCIPgetNVars(e.scip()))
}

// infinity returns the value SCIP uses to represent infinity. Bounds at
// or beyond it are treated as unbounded.
func (e *env) infinity() float64 {
	return float64(C.SCIPinfinity(e.scip()))
}
