package scip

/*
#include <scip/scip.h>
*/
import "C"

// Sol is a primal solution. Solutions returned by BestSol are owned by
// the engine and read-only; solutions created with CreateSol are owned
// by the caller until AddSol hands them over.
type Sol struct {
	raw *C.SCIP_SOL
	env *env
}

// SetVal sets the value of a variable in the solution.
func (s *Sol) SetVal(v Variable, val float64) error {
	return newError("SetVal", Retcode(C.SCIPsetSolVal(s.env.scip(), s.raw, v.raw, C.SCIP_Real(val))))
}

// Val returns the value of a variable in the solution.
func (s *Sol) Val(v Variable) float64 {
	return float64(C.SCIPgetSolVal(s.env.scip(), s.raw, v.raw))
}

// ObjVal returns the objective value of the solution in the original
// problem space.
func (s *Sol) ObjVal() float64 {
	return float64(C.SCIPgetSolOrigObj(s.env.scip(), s.raw))
}

// SolveStatus is the termination status of a solve.
type SolveStatus int

const (
	// StatusUnknown means the solving status is not yet known.
	StatusUnknown SolveStatus = iota
	// StatusUserInterrupt means solving was interrupted by the user.
	StatusUserInterrupt
	// StatusNodeLimit means the node limit was reached.
	StatusNodeLimit
	// StatusTotalNodeLimit means the total node limit was reached.
	StatusTotalNodeLimit
	// StatusStallNodeLimit means the stalling node limit was reached.
	StatusStallNodeLimit
	// StatusTimeLimit means the time limit was reached.
	StatusTimeLimit
	// StatusMemLimit means the memory limit was reached.
	StatusMemLimit
	// StatusGapLimit means the gap limit was reached.
	StatusGapLimit
	// StatusSolLimit means the solution limit was reached.
	StatusSolLimit
	// StatusBestSolLimit means the improving-solution limit was reached.
	StatusBestSolLimit
	// StatusRestartLimit means the restart limit was reached.
	StatusRestartLimit
	// StatusOptimal means the problem was solved to optimality.
	StatusOptimal
	// StatusInfeasible means the problem is infeasible.
	StatusInfeasible
	// StatusUnbounded means the problem is unbounded.
	StatusUnbounded
	// StatusInfeasibleOrUnbounded means the problem is infeasible or unbounded.
	StatusInfeasibleOrUnbounded
)

// String returns a human-readable representation of the solve status.
func (s SolveStatus) String() string {
	switch s {
	case StatusUserInterrupt:
		return "UserInterrupt"
	case StatusNodeLimit:
		return "NodeLimit"
	case StatusTotalNodeLimit:
		return "TotalNodeLimit"
	case StatusStallNodeLimit:
		return "StallNodeLimit"
	case StatusTimeLimit:
		return "TimeLimit"
	case StatusMemLimit:
		return "MemLimit"
	case StatusGapLimit:
		return "GapLimit"
	case StatusSolLimit:
		return "SolLimit"
	case StatusBestSolLimit:
		return "BestSolLimit"
	case StatusRestartLimit:
		return "RestartLimit"
	case StatusOptimal:
		return "Optimal"
	case StatusInfeasible:
		return "Infeasible"
	case StatusUnbounded:
		return "Unbounded"
	case StatusInfeasibleOrUnbounded:
		return "InfeasibleOrUnbounded"
	default:
		return "Unknown"
	}
}

// IsOptimal reports whether the problem was solved to optimality.
func (s SolveStatus) IsOptimal() bool {
	return s == StatusOptimal
}

// IsInfeasible reports whether the problem was proven infeasible.
func (s SolveStatus) IsInfeasible() bool {
	return s == StatusInfeasible || s == StatusInfeasibleOrUnbounded
}

// IsUnbounded reports whether the problem was proven unbounded.
func (s SolveStatus) IsUnbounded() bool {
	return s == StatusUnbounded || s == StatusInfeasibleOrUnbounded
}

func solveStatusFromC(status C.SCIP_STATUS) SolveStatus {
	switch status {
	case C.SCIP_STATUS_USERINTERRUPT:
		return StatusUserInterrupt
	case C.SCIP_STATUS_NODELIMIT:
		return StatusNodeLimit
	case C.SCIP_STATUS_TOTALNODELIMIT:
		return StatusTotalNodeLimit
	case C.SCIP_STATUS_STALLNODELIMIT:
		return StatusStallNodeLimit
	case C.SCIP_STATUS_TIMELIMIT:
		return StatusTimeLimit
	case C.SCIP_STATUS_MEMLIMIT:
		return StatusMemLimit
	case C.SCIP_STATUS_GAPLIMIT:
		return StatusGapLimit
	case C.SCIP_STATUS_SOLLIMIT:
		return StatusSolLimit
	case C.SCIP_STATUS_BESTSOLLIMIT:
		return StatusBestSolLimit
	case C.SCIP_STATUS_RESTARTLIMIT:
		return StatusRestartLimit
	case C.SCIP_STATUS_OPTIMAL:
		return StatusOptimal
	case C.SCIP_STATUS_INFEASIBLE:
		return StatusInfeasible
	case C.SCIP_STATUS_UNBOUNDED:
		return StatusUnbounded
	case C.SCIP_STATUS_INFORUNBD:
		return StatusInfeasibleOrUnbounded
	default:
		return StatusUnknown
	}
}
