package scip

/*
#include <scip/scip.h>
*/
import "C"
import "unsafe"

// Row is a view of a row in the LP relaxation. Two Row values compare
// equal (==) exactly when they reference the same native row.
type Row struct {
	raw *C.SCIP_ROW
	env *env
}

// Index returns the index of the row.
func (r Row) Index() int {
	return int(C.SCIProwGetIndex(r.raw))
}

// Name returns the name of the row.
func (r Row) Name() string {
	return C.GoString(C.SCIProwGetName(r.raw))
}

// Lhs returns the left-hand side of the row.
func (r Row) Lhs() float64 {
	return float64(C.SCIProwGetLhs(r.raw))
}

// Rhs returns the right-hand side of the row.
func (r Row) Rhs() float64 {
	return float64(C.SCIProwGetRhs(r.raw))
}

// Constant returns the constant shift of the row.
func (r Row) Constant() float64 {
	return float64(C.SCIProwGetConstant(r.raw))
}

// DualSol returns the dual LP solution value of the row.
func (r Row) DualSol() float64 {
	return float64(C.SCIProwGetDualsol(r.raw))
}

// BasisStatus returns the basis status of the row in the last LP
// solution.
func (r Row) BasisStatus() BasisStatus {
	return basisStatusFromC(C.SCIProwGetBasisStatus(r.raw))
}

// LPPos returns the position of the row in the current LP, or ok=false
// if the row is not in the LP.
func (r Row) LPPos() (int, bool) {
	pos := int(C.SCIProwGetLPPos(r.raw))
	if pos < 0 {
		return 0, false
	}
	return pos, true
}

// IsInLP reports whether the row is in the current LP.
func (r Row) IsInLP() bool {
	return C.SCIProwIsInLP(r.raw) != 0
}

// NNonz returns the number of non-zero entries in the row.
func (r Row) NNonz() int {
	return int(C.SCIProwGetNNonz(r.raw))
}

// Cols returns the columns of the row's non-zero entries. The native
// buffer is read in place; call this only while the engine is not
// mutating the LP.
func (r Row) Cols() []Col {
	n := r.NNonz()
	if n == 0 {
		return nil
	}
	raw := unsafe.Slice(C.SCIProwGetCols(r.raw), n)
	out := make([]Col, n)
	for i, c := range raw {
		out[i] = Col{raw: c, env: r.env}
	}
	return out
}

// Vals returns the coefficients of the row's non-zero entries. The same
// caveat as Cols applies.
func (r Row) Vals() []float64 {
	n := r.NNonz()
	if n == 0 {
		return nil
	}
	raw := unsafe.Slice(C.SCIProwGetVals(r.raw), n)
	out := make([]float64, n)
	for i, v := range raw {
		out[i] = float64(v)
	}
	return out
}

// Age returns the number of successive times the row was in the LP
// without being sharp at the solution.
func (r Row) Age() int {
	return int(C.SCIProwGetAge(r.raw))
}

// IsRemovable reports whether the row is removable from the LP.
func (r Row) IsRemovable() bool {
	return C.SCIProwIsRemovable(r.raw) != 0
}

// IsModifiable reports whether the row is modifiable during node
// processing.
func (r Row) IsModifiable() bool {
	return C.SCIProwIsModifiable(r.raw) != 0
}

// BasisStatus is the basis status of a column or row in an LP solution.
type BasisStatus int

const (
	// BasisStatusLower indicates the variable or row is at its lower bound.
	BasisStatusLower BasisStatus = iota
	// BasisStatusBasic indicates the variable or row is basic.
	BasisStatusBasic
	// BasisStatusUpper indicates the variable or row is at its upper bound.
	BasisStatusUpper
	// BasisStatusZero indicates the variable is free and set to zero.
	BasisStatusZero
)

// String returns a human-readable representation of the basis status.
func (s BasisStatus) String() string {
	switch s {
	case BasisStatusLower:
		return "Lower"
	case BasisStatusBasic:
		return "Basic"
	case BasisStatusUpper:
		return "Upper"
	case BasisStatusZero:
		return "Zero"
	default:
		return "Unknown"
	}
}

func basisStatusFromC(s C.SCIP_BASESTAT) BasisStatus {
	switch s {
	case C.SCIP_BASESTAT_BASIC:
		return BasisStatusBasic
	case C.SCIP_BASESTAT_UPPER:
		return BasisStatusUpper
	case C.SCIP_BASESTAT_ZERO:
		return BasisStatusZero
	default:
		return BasisStatusLower
	}
}
