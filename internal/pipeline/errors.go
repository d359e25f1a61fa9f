package pipeline

import "fmt"

// Op names the operation an OperationalError failed in.
type Op string

const (
	OpDecode Op = "decode"
	OpEncode Op = "encode"
	OpWrite  Op = "write"
)

// OperationalError marks runtime image failures (decode, encode, file
// write) as distinct from usage or palette validation errors, so the CLI
// can exit with a different status for each class.
type OperationalError struct {
	Op   Op
	Path string
	Err  error
}

func (e *OperationalError) Error() string {
	return fmt.Sprintf("failed to %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *OperationalError) Unwrap() error {
	return e.Err
}
