package scip

/*
#include <scip/scip.h>
*/
import "C"
import "unsafe"

// Col is a view of a column in the LP relaxation. Columns exist only
// while their variable participates in the current LP; obtain one
// through Variable.Col, which performs that check. Two Col values
// compare equal (==) exactly when they reference the same native
// column.
type Col struct {
	raw *C.SCIP_COL
	env *env
}

// Index returns the index of the column.
func (c Col) Index() int {
	return int(C.SCIPcolGetIndex(c.raw))
}

// Obj returns the objective coefficient of the column.
func (c Col) Obj() float64 {
	return float64(C.SCIPcolGetObj(c.raw))
}

// Lb returns the lower bound of the column.
func (c Col) Lb() float64 {
	return float64(C.SCIPcolGetLb(c.raw))
}

// Ub returns the upper bound of the column.
func (c Col) Ub() float64 {
	return float64(C.SCIPcolGetUb(c.raw))
}

// BestBound returns the bound of the column that is better with respect
// to the objective function.
func (c Col) BestBound() float64 {
	return float64(C.SCIPcolGetBestBound(c.raw))
}

// Var returns the variable associated with the column.
func (c Col) Var() Variable {
	return Variable{raw: C.SCIPcolGetVar(c.raw), env: c.env}
}

// PrimalSol returns the primal LP solution value of the column.
func (c Col) PrimalSol() float64 {
	return float64(C.SCIPcolGetPrimsol(c.raw))
}

// MinPrimalSol returns the minimal LP solution value this column ever
// assumed.
func (c Col) MinPrimalSol() float64 {
	return float64(C.SCIPcolGetMinPrimsol(c.raw))
}

// MaxPrimalSol returns the maximal LP solution value this column ever
// assumed.
func (c Col) MaxPrimalSol() float64 {
	return float64(C.SCIPcolGetMaxPrimsol(c.raw))
}

// BasisStatus returns the basis status of the column in the last LP
// solution.
func (c Col) BasisStatus() BasisStatus {
	return basisStatusFromC(C.SCIPcolGetBasisStatus(c.raw))
}

// VarProbindex returns the problem index of the column's variable, or
// ok=false if the variable is not a member of the current problem.
func (c Col) VarProbindex() (int, bool) {
	idx := int(C.SCIPcolGetVarProbindex(c.raw))
	if idx < 0 {
		return 0, false
	}
	return idx, true
}

// IsIntegral reports whether the column is of integral type.
func (c Col) IsIntegral() bool {
	return C.SCIPcolIsIntegral(c.raw) != 0
}

// IsRemovable reports whether the column is removable from the LP.
func (c Col) IsRemovable() bool {
	return C.SCIPcolIsRemovable(c.raw) != 0
}

// LPPos returns the position of the column in the current LP, or
// ok=false if the column is not in the LP.
func (c Col) LPPos() (int, bool) {
	pos := int(C.SCIPcolGetLPPos(c.raw))
	if pos < 0 {
		return 0, false
	}
	return pos, true
}

// LPDepth returns the depth in the search tree where the column entered
// the LP, or ok=false if it is not in the LP.
func (c Col) LPDepth() (int, bool) {
	depth := int(C.SCIPcolGetLPDepth(c.raw))
	if depth < 0 {
		return 0, false
	}
	return depth, true
}

// IsInLP reports whether the column is in the current LP.
func (c Col) IsInLP() bool {
	return C.SCIPcolIsInLP(c.raw) != 0
}

// NNonz returns the number of non-zero entries in the column.
func (c Col) NNonz() int {
	return int(C.SCIPcolGetNNonz(c.raw))
}

// NLPNonz returns the number of non-zero entries that correspond to
// rows currently in the LP.
func (c Col) NLPNonz() int {
	return int(C.SCIPcolGetNLPNonz(c.raw))
}

// Rows returns the rows of the column's non-zero entries. The native
// buffer is read in place; call this only while the engine is not
// mutating the LP (from a SolvedModel or inside a plugin callback).
func (c Col) Rows() []Row {
	n := c.NNonz()
	if n == 0 {
		return nil
	}
	raw := unsafe.Slice(C.SCIPcolGetRows(c.raw), n)
	out := make([]Row, n)
	for i, r := range raw {
		out[i] = Row{raw: r, env: c.env}
	}
	return out
}

// Vals returns the coefficients of the column's non-zero entries. The
// same caveat as Rows applies.
func (c Col) Vals() []float64 {
	n := c.NNonz()
	if n == 0 {
		return nil
	}
	raw := unsafe.Slice(C.SCIPcolGetVals(c.raw), n)
	out := make([]float64, n)
	for i, v := range raw {
		out[i] = float64(v)
	}
	return out
}

// StrongBranchingNode returns the number of the last node in the
// current run where strong branching was used on this column, or
// ok=false if it never was.
func (c Col) StrongBranchingNode() (int64, bool) {
	node := int64(C.SCIPcolGetStrongbranchNode(c.raw))
	if node < 0 {
		return 0, false
	}
	return node, true
}

// NStrongBranches returns the number of times strong branching was
// applied to this column in the current run.
func (c Col) NStrongBranches() int {
	return int(C.SCIPcolGetNStrongbranchs(c.raw))
}

// Age returns the number of successive times the column was in the LP
// with solution value 0.0.
func (c Col) Age() int {
	return int(C.SCIPcolGetAge(c.raw))
}
