package sourceid

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, matched with errors.Is.
var (
	ErrInvalidNSLC     = errors.New("invalid NSLC")
	ErrInvalidSourceID = errors.New("invalid source identifier")
	ErrEmptyNetwork    = errors.New("network must not be empty")
)

// Error describes rejected input. Kind is one of the sentinel errors.
type Error struct {
	Kind     error
	Input    string
	Problems []string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Input != "" {
		fmt.Fprintf(&b, ": %q", e.Input)
	}
	if len(e.Problems) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(e.Problems, "; "))
		b.WriteString(")")
	}
	return b.String()
}

// Unwrap returns the sentinel so errors.Is works on wrapped errors.
func (e *Error) Unwrap() error {
	return e.Kind
}

func invalidSourceID(sid string) error {
	return &Error{Kind: ErrInvalidSourceID, Input: sid}
}
