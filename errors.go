package bcl

import "errors"

// Sentinel errors returned by the cube algebra engine. None of these cross a
// goroutine boundary as a panic; they are ordinary return values.
var (
	// ErrVarCountMismatch is returned when two cubes or a cube and a list
	// disagree on variable count.
	ErrVarCountMismatch = errors.New("bcl: variable count mismatch")

	// ErrBadVarIndex is returned by SetVar when the index is out of range, and
	// by DoOneVarCofactor when the value is neither FieldZero nor FieldOne.
	ErrBadVarIndex = errors.New("bcl: variable index out of range")

	// ErrRecursionLimit is returned when IsTautology's recursion exceeds the
	// depth cap held on Context (see Context.maxTaut).
	ErrRecursionLimit = errors.New("bcl: recursion depth limit exceeded")

	// ErrEmptyOperand is returned by the bcl2slot driver step when the step
	// carries neither a bcl nor an expr operand.
	ErrEmptyOperand = errors.New("bcl: missing operand")

	// ErrUnknownCommand is returned by the scripting driver for a cmd value
	// outside the closed command vocabulary.
	ErrUnknownCommand = errors.New("bcl: unknown command")

	// ErrParse is returned by cube-textual-form parse failures
	// (Cube.SetByString). The expression parser uses expr.ErrParse instead.
	ErrParse = errors.New("bcl: parse error")
)

// ScopeError reports misuse of the Context scope stack (StartFrame/EndFrame).
// These are fatal-abort, programming-error conditions: the engine panics
// with a ScopeError rather than returning one, since a caller that
// mismatches StartFrame/EndFrame has a bug, not a recoverable failure.
type ScopeError struct {
	Op string // "overflow" or "underflow"
}

func (e ScopeError) Error() string {
	return "bcl: scope " + e.Op
}
