package triangle

import (
	"errors"
	"fmt"
)

var (
	// ErrShaderNotFound is returned when a shader source file cannot be opened.
	ErrShaderNotFound = errors.New("shader source not found")

	// ErrEmptySource is returned when a stage is compiled from empty text.
	ErrEmptySource = errors.New("empty shader source")

	// ErrInvalidVertexData is returned for vertex data that is empty or not a
	// whole number of 3-component positions.
	ErrInvalidVertexData = errors.New("invalid vertex data")
)

// Op identifies which GPU status check failed.
type Op string

const (
	OpCompile  Op = "compile"
	OpLink     Op = "link"
	OpValidate Op = "validate"
)

// StatusError reports a failed compile, link or validate step together with
// the driver's info log.
type StatusError struct {
	Op    Op
	Stage Stage // zero for link and validate
	Log   string
	err   error
}

func (e *StatusError) Error() string {
	if e.Op == OpCompile {
		return fmt.Sprintf("%s shader %s failed: %s", e.Stage, e.Op, e.Log)
	}
	return fmt.Sprintf("shader program %s failed: %s", e.Op, e.Log)
}

func (e *StatusError) Unwrap() error { return e.err }
