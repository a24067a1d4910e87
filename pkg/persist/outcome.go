package persist

import (
	"errors"
	"fmt"
)

// Failure kinds reported in an Outcome. Check them with errors.Is.
var (
	// ErrIO means the sink could not be read or written.
	ErrIO = errors.New("persist: sink i/o failed")

	// ErrEncode means the records could not be serialized.
	ErrEncode = errors.New("persist: encode failed")

	// ErrDecode means the sink content is malformed or does not match the record shape.
	ErrDecode = errors.New("persist: decode failed")
)

// SinkError describes a failed save or load.
// It unwraps to both its Kind and the underlying cause.
type SinkError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *SinkError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Outcome reports what a Save or Load did.
type Outcome struct {
	Op      string
	Path    string
	Records int  // records written or loaded
	Skipped bool // Load found no sink and left the store alone
	Err     error
}

// OK reports whether the operation succeeded (a skipped load counts as success).
func (o Outcome) OK() bool {
	return o.Err == nil
}
