package scip

/*
#include <stdio.h>
#include <stdlib.h>
#include <scip/scip.h>
*/
import "C"
import "unsafe"

// ObjSense is the optimization direction of the objective function.
type ObjSense int

const (
	// Minimize the objective function (SCIP's default).
	Minimize ObjSense = iota
	// Maximize the objective function.
	Maximize
)

// String returns a human-readable representation of the objective sense.
func (s ObjSense) String() string {
	if s == Maximize {
		return "Maximize"
	}
	return "Minimize"
}

func (s ObjSense) toC() C.SCIP_OBJSENSE {
	if s == Maximize {
		return C.SCIP_OBJSENSE_MAXIMIZE
	}
	return C.SCIP_OBJSENSE_MINIMIZE
}

// Model is a SCIP instance in the problem-building stage. Structural
// edits (variables, constraints, parameters, plugin registration) are
// only available here. Solve consumes the Model and returns a
// SolvedModel; using the Model afterwards panics.
type Model struct {
	env *env
}

// Option configures a Model at creation time.
type Option func(*modelConfig)

type modelConfig struct {
	probName   string
	hideOutput bool
	timeLimit  *float64
	intParams  map[string]int
	realParams map[string]float64
}

// WithProblemName sets the name of the problem instance.
func WithProblemName(name string) Option {
	return func(c *modelConfig) {
		c.probName = name
	}
}

// WithHideOutput suppresses all solver output.
func WithHideOutput() Option {
	return func(c *modelConfig) {
		c.hideOutput = true
	}
}

// WithTimeLimit sets the solve time limit in seconds.
func WithTimeLimit(seconds float64) Option {
	return func(c *modelConfig) {
		c.timeLimit = &seconds
	}
}

// WithIntParam sets an integer parameter by its SCIP name.
func WithIntParam(name string, value int) Option {
	return func(c *modelConfig) {
		c.intParams[name] = value
	}
}

// WithRealParam sets a floating-point parameter by its SCIP name.
func WithRealParam(name string, value float64) Option {
	return func(c *modelConfig) {
		c.realParams[name] = value
	}
}

// New creates a SCIP instance with the default plugins included and an
// empty problem, ready for building.
func New(opts ...Option) (*Model, error) {
	cfg := &modelConfig{
		probName:   "prob",
		intParams:  make(map[string]int),
		realParams: make(map[string]float64),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	e, err := newEnv(cfg.probName)
	if err != nil {
		return nil, err
	}
	m := &Model{env: e}

	if cfg.hideOutput {
		if err := m.HideOutput(); err != nil {
			e.free()
			return nil, err
		}
	}
	if cfg.timeLimit != nil {
		if err := m.SetTimeLimit(*cfg.timeLimit); err != nil {
			e.free()
			return nil, err
		}
	}
	for name, v := range cfg.intParams {
		if err := m.SetIntParam(name, v); err != nil {
			e.free()
			return nil, err
		}
	}
	for name, v := range cfg.realParams {
		if err := m.SetRealParam(name, v); err != nil {
			e.free()
			return nil, err
		}
	}
	return m, nil
}

// ReadProb reads a problem instance from a file using SCIP's own
// readers (format detected from the extension, e.g. .lp or .mps).
func (m *Model) ReadProb(filename string) error {
	cFilename := C.CString(filename)
	defer C.free(unsafe.Pointer(cFilename))
	return newError("ReadProb", Retcode(C.SCIPreadProb(m.mustEnv().scip(), cFilename, nil)))
}

// WriteOrigProb writes the original problem to a file.
func (m *Model) WriteOrigProb(filename string) error {
	cFilename := C.CString(filename)
	defer C.free(unsafe.Pointer(cFilename))
	return newError("WriteOrigProb", Retcode(C.SCIPwriteOrigProblem(m.mustEnv().scip(), cFilename, nil, 0)))
}

// SetObjSense sets the optimization direction.
func (m *Model) SetObjSense(sense ObjSense) error {
	return newError("SetObjSense", Retcode(C.SCIPsetObjsense(m.mustEnv().scip(), sense.toC())))
}

// AddVar adds a variable with the given bounds, objective coefficient,
// name, and type, and returns a view of it.
func (m *Model) AddVar(lb, ub, obj float64, name string, varType VarType) (Variable, error) {
	e := m.mustEnv()
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var v *C.SCIP_VAR
	rc := Retcode(C.SCIPcreateVarBasic(e.scip(), &v, cName,
		C.SCIP_Real(lb), C.SCIP_Real(ub), C.SCIP_Real(obj), varType.toC()))
	if err := newError("AddVar", rc); err != nil {
		return Variable{}, err
	}
	if err := newError("AddVar", Retcode(C.SCIPaddVar(e.scip(), v))); err != nil {
		C.SCIPreleaseVar(e.scip(), &v)
		return Variable{}, err
	}
	raw := v
	// The problem now holds its own reference; ours is released so the
	// variable's lifetime is tied to the instance, not to this call.
	if err := newError("AddVar", Retcode(C.SCIPreleaseVar(e.scip(), &v))); err != nil {
		return Variable{}, err
	}
	return Variable{raw: raw, env: e}, nil
}

// AddCons adds a linear constraint lhs <= coefs*vars <= rhs and returns
// a view of it. Use negative and positive infinity for one-sided
// constraints.
func (m *Model) AddCons(vars []Variable, coefs []float64, lhs, rhs float64, name string) (Constraint, error) {
	if len(vars) != len(coefs) {
		return Constraint{}, newErrorMsg("AddCons", "vars and coefs must have same length")
	}
	e := m.mustEnv()
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var cons *C.SCIP_CONS
	rc := Retcode(C.SCIPcreateConsBasicLinear(e.scip(), &cons, cName, 0, nil, nil,
		C.SCIP_Real(lhs), C.SCIP_Real(rhs)))
	if err := newError("AddCons", rc); err != nil {
		return Constraint{}, err
	}
	for i, v := range vars {
		rc = Retcode(C.SCIPaddCoefLinear(e.scip(), cons, v.raw, C.SCIP_Real(coefs[i])))
		if err := newError("AddCons", rc); err != nil {
			C.SCIPreleaseCons(e.scip(), &cons)
			return Constraint{}, err
		}
	}
	if err := newError("AddCons", Retcode(C.SCIPaddCons(e.scip(), cons))); err != nil {
		C.SCIPreleaseCons(e.scip(), &cons)
		return Constraint{}, err
	}
	raw := cons
	if err := newError("AddCons", Retcode(C.SCIPreleaseCons(e.scip(), &cons))); err != nil {
		return Constraint{}, err
	}
	return Constraint{raw: raw, env: e}, nil
}

// SetConsModifiable marks a constraint as modifiable, which keeps
// presolving from removing or aggregating it.
func (m *Model) SetConsModifiable(cons Constraint, modifiable bool) error {
	var v C.SCIP_Bool
	if modifiable {
		v = 1
	}
	return newError("SetConsModifiable", Retcode(C.SCIPsetConsModifiable(m.mustEnv().scip(), cons.raw, v)))
}

// HideOutput suppresses all solver output.
func (m *Model) HideOutput() error {
	return m.SetIntParam("display/verblevel", 0)
}

// SetTimeLimit sets the solve time limit in seconds.
func (m *Model) SetTimeLimit(seconds float64) error {
	return m.SetRealParam("limits/time", seconds)
}

// SetIntParam sets an integer parameter by its SCIP name.
func (m *Model) SetIntParam(name string, value int) error {
	return m.mustEnv().setIntParam(name, value)
}

// SetLongintParam sets a 64-bit integer parameter by its SCIP name.
func (m *Model) SetLongintParam(name string, value int64) error {
	return m.mustEnv().setLongintParam(name, value)
}

// SetRealParam sets a floating-point parameter by its SCIP name.
func (m *Model) SetRealParam(name string, value float64) error {
	return m.mustEnv().setRealParam(name, value)
}

// SetBoolParam sets a boolean parameter by its SCIP name.
func (m *Model) SetBoolParam(name string, value bool) error {
	return m.mustEnv().setBoolParam(name, value)
}

// SetStringParam sets a string parameter by its SCIP name.
func (m *Model) SetStringParam(name, value string) error {
	return m.mustEnv().setStringParam(name, value)
}

// NVars returns the number of variables in the problem.
func (m *Model) NVars() int {
	return m.mustEnv().nVars()
}

// Vars returns views of the problem's variables.
func (m *Model) Vars() []Variable {
	return m.mustEnv().vars()
}

// Infinity returns the value SCIP uses to represent infinity.
func (m *Model) Infinity() float64 {
	return m.mustEnv().infinity()
}

// Solve runs the native branch-and-bound search to completion and
// returns the solved model. On success the Model is consumed:
// structural edits and further calls on it panic. On failure the Model
// stays usable, so it can still be closed. Registered plugins are
// invoked by the engine during this call, on this goroutine.
func (m *Model) Solve() (*SolvedModel, error) {
	e := m.mustEnv()
	if err := newError("Solve", Retcode(C.SCIPsolve(e.scip()))); err != nil {
		return nil, err
	}
	m.env = nil
	return &SolvedModel{env: e}, nil
}

// Close releases the native instance. Safe to call multiple times.
// Entity views derived from this model must not be used afterwards.
func (m *Model) Close() {
	if m.env != nil {
		m.env.free()
		m.env = nil
	}
}

func (m *Model) mustEnv() *env {
	if m.env == nil {
		panic("scip: use of consumed or closed Model")
	}
	return m.env
}

// SolvedModel is a SCIP instance after Solve has returned. It exposes
// the results of the search; the problem is frozen until FreeTransform
// is called.
type SolvedModel struct {
	env *env
}

// Status returns the termination status of the search.
func (m *SolvedModel) Status() SolveStatus {
	return solveStatusFromC(C.SCIPgetStatus(m.mustEnv().scip()))
}

// ObjVal returns the objective value of the best solution found
// (the primal bound).
func (m *SolvedModel) ObjVal() float64 {
	return float64(C.SCIPgetPrimalbound(m.mustEnv().scip()))
}

// BestBound returns the best proven bound on the optimal objective
// value (the dual bound).
func (m *SolvedModel) BestBound() float64 {
	return float64(C.SCIPgetDualbound(m.mustEnv().scip()))
}

// BestSol returns the incumbent solution, or ok=false if the search
// found none.
func (m *SolvedModel) BestSol() (Sol, bool) {
	raw := C.SCIPgetBestSol(m.mustEnv().scip())
	if raw == nil {
		return Sol{}, false
	}
	return Sol{raw: raw, env: m.env}, true
}

// SolVal returns the value of a variable in the best solution.
func (m *SolvedModel) SolVal(v Variable) float64 {
	return float64(C.SCIPgetVarSol(m.mustEnv().scip(), v.raw))
}

// NVars returns the number of variables in the problem.
func (m *SolvedModel) NVars() int {
	return m.mustEnv().nVars()
}

// Vars returns views of the problem's variables.
func (m *SolvedModel) Vars() []Variable {
	return m.mustEnv().vars()
}

// NNodes returns the number of branch-and-bound nodes processed.
func (m *SolvedModel) NNodes() int64 {
	return int64(C.SCIPgetNNodes(m.mustEnv().scip()))
}

// WriteBestSol writes the best solution to a file.
func (m *SolvedModel) WriteBestSol(filename string) error {
	e := m.mustEnv()
	cFilename := C.CString(filename)
	defer C.free(unsafe.Pointer(cFilename))
	mode := C.CString("w")
	defer C.free(unsafe.Pointer(mode))
	f := C.fopen(cFilename, mode)
	if f == nil {
		return newErrorMsg("WriteBestSol", "cannot open file")
	}
	defer C.fclose(f)
	return newError("WriteBestSol", Retcode(C.SCIPprintBestSol(e.scip(), f, 0)))
}

// FreeTransform releases the transformed problem and the search data,
// returning the instance to the problem-building stage for
// modification and incremental re-solve. The SolvedModel is consumed.
func (m *SolvedModel) FreeTransform() (*Model, error) {
	e := m.mustEnv()
	m.env = nil
	if err := newError("FreeTransform", Retcode(C.SCIPfreeTransform(e.scip()))); err != nil {
		return nil, err
	}
	return &Model{env: e}, nil
}

// Close releases the native instance. Safe to call multiple times.
func (m *SolvedModel) Close() {
	if m.env != nil {
		m.env.free()
		m.env = nil
	}
}

func (m *SolvedModel) mustEnv() *env {
	if m.env == nil {
		panic("scip: use of consumed or closed SolvedModel")
	}
	return m.env
}

// SolvingModel is a SCIP instance in the solving stage. Values of this
// type are constructed only by the callback bridge and handed to
// plugins while the engine is inside its solve loop; they are valid for
// the duration of the callback.
type SolvingModel struct {
	env *env
}

// Vars returns views of the (transformed) problem variables.
func (m *SolvingModel) Vars() []Variable {
	return m.env.vars()
}

// NVars returns the number of variables in the transformed problem.
func (m *SolvingModel) NVars() int {
	return m.env.nVars()
}

// NNodes returns the number of branch-and-bound nodes processed so far.
func (m *SolvingModel) NNodes() int64 {
	return int64(C.SCIPgetNNodes(m.env.scip()))
}

// Depth returns the depth of the current node in the search tree.
func (m *SolvingModel) Depth() int {
	return int(C.SCIPgetDepth(m.env.scip()))
}

// ObjVal returns the objective value of the current incumbent
// (the primal bound).
func (m *SolvingModel) ObjVal() float64 {
	return float64(C.SCIPgetPrimalbound(m.env.scip()))
}

// BestBound returns the current dual bound.
func (m *SolvingModel) BestBound() float64 {
	return float64(C.SCIPgetDualbound(m.env.scip()))
}

// BestSol returns the current incumbent, or ok=false if none exists yet.
func (m *SolvingModel) BestSol() (Sol, bool) {
	raw := C.SCIPgetBestSol(m.env.scip())
	if raw == nil {
		return Sol{}, false
	}
	return Sol{raw: raw, env: m.env}, true
}

// CreateSol creates an empty primal solution, initialized to zero.
// Hand it to the engine with AddSol once its values are set.
func (m *SolvingModel) CreateSol() (*Sol, error) {
	var raw *C.SCIP_SOL
	if err := newError("CreateSol", Retcode(C.SCIPcreateSol(m.env.scip(), &raw, nil))); err != nil {
		return nil, err
	}
	return &Sol{raw: raw, env: m.env}, nil
}

// AddSol offers a solution to the engine and frees it. The engine's
// feasibility check is authoritative: a rejected solution is reported
// as an error and does not change the incumbent.
func (m *SolvingModel) AddSol(sol *Sol) error {
	if sol == nil || sol.raw == nil {
		return newErrorMsg("AddSol", "solution already added or freed")
	}
	var stored C.SCIP_Bool
	rc := Retcode(C.SCIPaddSolFree(m.env.scip(), &sol.raw, &stored))
	if err := newError("AddSol", rc); err != nil {
		return err
	}
	if stored == 0 {
		return newErrorMsg("AddSol", "solution not accepted by the engine")
	}
	return nil
}

// Interrupt asks the engine to stop the search at the next safe point.
func (m *SolvingModel) Interrupt() error {
	return newError("Interrupt", Retcode(C.SCIPinterruptSolve(m.env.scip())))
}
