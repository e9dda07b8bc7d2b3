package core

import (
	"errors"
	"fmt"
	"os"
)

// Error codes. Errors with codes EMISSING, EINVALID and EINTERNAL are
// returned to clients; EINVARIANT is reserved for panics raised by Invariant.
const (
	NOERROR    int = 0
	EMISSING   int = 122 // font or configuration entry does not exist
	EINVALID   int = 123 // input violates a contract: bad index, bad size, bad name
	EINTERNAL  int = 125 // error without a code, e.g. from the OS
	EINVARIANT int = 126 // program invariant broken; never recoverable
)

var codeText = map[int]string{
	NOERROR:    "OK",
	EMISSING:   "not found",
	EINVALID:   "invalid",
	EINTERNAL:  "internal error",
	EINVARIANT: "invariant violated",
}

func errorText(ecode int) string {
	if t, ok := codeText[ecode]; ok {
		return t
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a message suitable
// for end users.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

// codedError attaches a code and a user message to a cause.
type codedError struct {
	cause error
	code  int
	msg   string
}

var _ AppError = codedError{}

func (e codedError) Unwrap() error {
	return e.cause
}

func (e codedError) Error() string {
	return fmt.Sprintf("[%d] %v", e.code, e.cause)
}

func (e codedError) ErrorCode() int {
	return e.code
}

func (e codedError) UserMessage() string {
	return e.msg
}

// WrapError wraps err, attaching an error code and a user message.
// A nil err is replaced by an error denoting the code.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return codedError{cause: err, code: code, msg: fmt.Sprintf(format, v...)}
}

// Error creates an error with an error code and a user message.
func Error(code int, format string, v ...interface{}) error {
	return WrapError(nil, code, format, v...)
}

// Code returns the code of the outermost AppError in err's chain.
// Errors without a code are EINTERNAL, a nil error is NOERROR.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	var e AppError
	if errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message of the outermost AppError in err's
// chain, or a description of err's code.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e AppError
	if errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// UserError reports an error on stderr, preferring its user message.
func UserError(err error) {
	var e AppError
	if errors.As(err, &e) {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// --- Invariants ------------------------------------------------------------

// Invariant panics with an AppError carrying code EINVARIANT.
//
// Invariant is reserved for conditions which signal a broken program state,
// e.g., a font which should have been loaded during start-up but is missing.
// Such conditions are programming errors, not bad input, and are never
// returned as errors.
func Invariant(format string, v ...interface{}) {
	panic(Error(EINVARIANT, format, v...))
}

// InvariantViolation checks if a value recovered from a panic has been
// produced by Invariant. It returns the violation as an error, or nil.
func InvariantViolation(r interface{}) error {
	if err, ok := r.(error); ok && Code(err) == EINVARIANT {
		return err
	}
	return nil
}
