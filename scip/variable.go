package scip

/*
#include <scip/scip.h>
*/
import "C"

// Variable is a view of a SCIP variable. It is cheap to copy and keeps
// the SCIP instance alive, but not the variable itself: SCIP may delete
// or reindex variables during presolving and search. Two Variable
// values compare equal (==) exactly when they reference the same native
// object.
type Variable struct {
	raw *C.SCIP_VAR
	env *env
}

// Index returns the index of the variable.
func (v Variable) Index() int {
	return int(C.SCIPvarGetIndex(v.raw))
}

// Name returns the name of the variable.
func (v Variable) Name() string {
	return C.GoString(C.SCIPvarGetName(v.raw))
}

// Obj returns the objective coefficient of the variable.
func (v Variable) Obj() float64 {
	return float64(C.SCIPvarGetObj(v.raw))
}

// Lb returns the lower bound of the variable in the current node.
func (v Variable) Lb() float64 {
	return float64(C.SCIPvarGetLbLocal(v.raw))
}

// Ub returns the upper bound of the variable in the current node.
func (v Variable) Ub() float64 {
	return float64(C.SCIPvarGetUbLocal(v.raw))
}

// LbLocal returns the local lower bound of the variable. Identical to
// Lb; kept for symmetry with the native accessor names.
func (v Variable) LbLocal() float64 {
	return float64(C.SCIPvarGetLbLocal(v.raw))
}

// UbLocal returns the local upper bound of the variable.
func (v Variable) UbLocal() float64 {
	return float64(C.SCIPvarGetUbLocal(v.raw))
}

// Type returns the type of the variable.
func (v Variable) Type() VarType {
	return varTypeFromC(C.SCIPvarGetType(v.raw))
}

// Status returns the status of the variable.
func (v Variable) Status() VarStatus {
	return varStatusFromC(C.SCIPvarGetStatus(v.raw))
}

// Col returns the LP column of the variable. A variable has a column
// only while it participates in the current LP relaxation; ok is false
// otherwise. Checking ok (or IsInLP) before using the column is the
// guard against dereferencing a column that does not exist.
func (v Variable) Col() (Col, bool) {
	if !v.IsInLP() {
		return Col{}, false
	}
	return Col{raw: C.SCIPvarGetCol(v.raw), env: v.env}, true
}

// IsInLP reports whether the variable is a column variable in the
// current LP relaxation.
func (v Variable) IsInLP() bool {
	return C.SCIPvarIsInLP(v.raw) != 0
}

// SolVal returns the solution value of the variable: the value in the
// current node's solution during solving, or in the best solution after
// the search finished.
func (v Variable) SolVal() float64 {
	return float64(C.SCIPgetVarSol(v.env.scip(), v.raw))
}

// IsDeleted reports whether the variable was deleted from the problem.
func (v Variable) IsDeleted() bool {
	return C.SCIPvarIsDeleted(v.raw) != 0
}

// IsTransformed reports whether the variable belongs to the transformed
// problem.
func (v Variable) IsTransformed() bool {
	return C.SCIPvarIsTransformed(v.raw) != 0
}

// IsOriginal reports whether the variable belongs to the original
// problem.
func (v Variable) IsOriginal() bool {
	return C.SCIPvarIsOriginal(v.raw) != 0
}

// IsNegated reports whether the variable is the negation of another
// variable.
func (v Variable) IsNegated() bool {
	return C.SCIPvarIsNegated(v.raw) != 0
}

// IsRemovable reports whether the variable's column is removable from
// the LP due to aging.
func (v Variable) IsRemovable() bool {
	return C.SCIPvarIsRemovable(v.raw) != 0
}

// IsTransFromOrig reports whether the variable is the transformed
// counterpart of an original variable.
func (v Variable) IsTransFromOrig() bool {
	return C.SCIPvarIsTransformedOrigvar(v.raw) != 0
}

// IsActive reports whether the variable is active, i.e. neither fixed
// nor aggregated.
func (v Variable) IsActive() bool {
	return C.SCIPvarIsActive(v.raw) != 0
}

// VarType is the type of a variable in an optimization problem.
type VarType int

const (
	// VarTypeContinuous is a continuous variable.
	VarTypeContinuous VarType = iota
	// VarTypeInteger is an integer variable.
	VarTypeInteger
	// VarTypeBinary is a binary variable.
	VarTypeBinary
	// VarTypeImplInt is an implicit integer variable.
	VarTypeImplInt
)

// String returns a human-readable representation of the variable type.
func (t VarType) String() string {
	switch t {
	case VarTypeContinuous:
		return "Continuous"
	case VarTypeInteger:
		return "Integer"
	case VarTypeBinary:
		return "Binary"
	case VarTypeImplInt:
		return "ImplInt"
	default:
		return "Unknown"
	}
}

func (t VarType) toC() C.SCIP_VARTYPE {
	switch t {
	case VarTypeInteger:
		return C.SCIP_VARTYPE_INTEGER
	case VarTypeBinary:
		return C.SCIP_VARTYPE_BINARY
	case VarTypeImplInt:
		return C.SCIP_VARTYPE_IMPLINT
	default:
		return C.SCIP_VARTYPE_CONTINUOUS
	}
}

func varTypeFromC(t C.SCIP_VARTYPE) VarType {
	switch t {
	case C.SCIP_VARTYPE_INTEGER:
		return VarTypeInteger
	case C.SCIP_VARTYPE_BINARY:
		return VarTypeBinary
	case C.SCIP_VARTYPE_IMPLINT:
		return VarTypeImplInt
	default:
		return VarTypeContinuous
	}
}

// VarStatus is the status of a SCIP variable.
type VarStatus int

const (
	// VarStatusOriginal is an original variable of the problem.
	VarStatusOriginal VarStatus = iota
	// VarStatusLoose is a variable not yet in the LP.
	VarStatusLoose
	// VarStatusColumn is a column variable of the LP relaxation.
	VarStatusColumn
	// VarStatusFixed is a variable fixed to a single value.
	VarStatusFixed
	// VarStatusAggregated is a variable aggregated to another one.
	VarStatusAggregated
	// VarStatusMultiAggregated is a variable aggregated to several others.
	VarStatusMultiAggregated
	// VarStatusNegated is the negation of another variable.
	VarStatusNegated
)

// String returns a human-readable representation of the variable status.
func (s VarStatus) String() string {
	switch s {
	case VarStatusOriginal:
		return "Original"
	case VarStatusLoose:
		return "Loose"
	case VarStatusColumn:
		return "Column"
	case VarStatusFixed:
		return "Fixed"
	case VarStatusAggregated:
		return "Aggregated"
	case VarStatusMultiAggregated:
		return "MultiAggregated"
	case VarStatusNegated:
		return "Negated"
	default:
		return "Unknown"
	}
}

func varStatusFromC(s C.SCIP_VARSTATUS) VarStatus {
	switch s {
	case C.SCIP_VARSTATUS_ORIGINAL:
		return VarStatusOriginal
	case C.SCIP_VARSTATUS_LOOSE:
		return VarStatusLoose
	case C.SCIP_VARSTATUS_COLUMN:
		return VarStatusColumn
	case C.SCIP_VARSTATUS_FIXED:
		return VarStatusFixed
	case C.SCIP_VARSTATUS_AGGREGATED:
		return VarStatusAggregated
	case C.SCIP_VARSTATUS_MULTAGGR:
		return VarStatusMultiAggregated
	case C.SCIP_VARSTATUS_NEGATED:
		return VarStatusNegated
	default:
		return VarStatusOriginal
	}
}

// Constraint is a view of a constraint in the problem. Like the other
// views it keeps the SCIP instance alive but not the constraint itself.
type Constraint struct {
	raw *C.SCIP_CONS
	env *env
}

// Name returns the name of the constraint.
func (c Constraint) Name() string {
	return C.GoString(C.SCIPconsGetName(c.raw))
}

// IsModifiable reports whether the constraint is marked modifiable.
func (c Constraint) IsModifiable() bool {
	return C.SCIPconsIsModifiable(c.raw) != 0
}
