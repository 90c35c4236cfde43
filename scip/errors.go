package scip

import "fmt"

// Error represents a failed native SCIP call with context about which
// operation failed.
type Error struct {
	Op   string  // Operation that failed (e.g., "Solve", "SetIntParam")
	Code Retcode // SCIP return code
	Msg  string  // Additional context
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("scip: %s failed: %s", e.Op, e.Msg)
	}
	return fmt.Sprintf("scip: %s failed with retcode %s", e.Op, e.Code)
}

// newError creates a new Error if the retcode indicates failure.
// Returns nil on RetcodeOkay.
func newError(op string, code Retcode) error {
	if code == RetcodeOkay {
		return nil
	}
	return &Error{Op: op, Code: code}
}

// newErrorMsg creates a new Error with an additional message.
func newErrorMsg(op, msg string) error {
	return &Error{Op: op, Code: RetcodeError, Msg: msg}
}

// RegistrationError reports a rejected plugin registration: an empty or
// duplicate name, or a configuration the engine refused. Registration
// failures are recoverable; pick a different name or configuration and
// register again.
type RegistrationError struct {
	Name   string
	Reason string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("scip: registering %q: %s", e.Name, e.Reason)
}
