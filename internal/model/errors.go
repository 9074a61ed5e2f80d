package model

import (
	"errors"
	"fmt"
)

// ErrInvalidData matches every parse failure.
var ErrInvalidData = errors.New("invalid data")

// Kind names the field that failed validation.
type Kind int

const (
	DescriptionInvalid Kind = iota + 1
	CompletedInvalid
	DueDateInvalid
)

func (k Kind) String() string {
	switch k {
	case DescriptionInvalid:
		return "description invalid"
	case CompletedInvalid:
		return "completed invalid"
	case DueDateInvalid:
		return "due date invalid"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Reason says why a field was rejected.
type Reason int

const (
	ReasonUnspecified Reason = iota
	ReasonMissing
	ReasonWrongType
	ReasonEmpty
)

func (r Reason) String() string {
	switch r {
	case ReasonMissing:
		return "missing"
	case ReasonWrongType:
		return "wrong type"
	case ReasonEmpty:
		return "empty"
	}
	return "unspecified"
}

// Per-kind sentinels for errors.Is; they match any FieldError of the same Kind.
var (
	ErrDescriptionInvalid = &FieldError{Kind: DescriptionInvalid}
	ErrCompletedInvalid   = &FieldError{Kind: CompletedInvalid}
	ErrDueDateInvalid     = &FieldError{Kind: DueDateInvalid}
)

// FieldError reports one rejected field of a raw record.
type FieldError struct {
	Kind   Kind
	Key    string
	Reason Reason
	Want   string // expected type name
	Got    any    // offending value, nil when missing
}

func (e *FieldError) Error() string {
	switch e.Reason {
	case ReasonMissing:
		return fmt.Sprintf("%s: missing %q", e.Kind, e.Key)
	case ReasonWrongType:
		return fmt.Sprintf("%s: %q is %T, want %s", e.Kind, e.Key, e.Got, e.Want)
	case ReasonEmpty:
		return fmt.Sprintf("%s: %q is empty", e.Kind, e.Key)
	}
	return e.Kind.String()
}

// Is matches ErrInvalidData and any FieldError with the same Kind. A target
// with a Reason set must match that Reason too.
func (e *FieldError) Is(target error) bool {
	if target == ErrInvalidData {
		return true
	}
	var t *FieldError
	if !errors.As(target, &t) {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Reason == ReasonUnspecified || t.Reason == e.Reason
}

// DecodeError wraps a payload that could not be decoded into a raw record.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string        { return "decode: " + e.Err.Error() }
func (e *DecodeError) Unwrap() error        { return e.Err }
func (e *DecodeError) Is(target error) bool { return target == ErrInvalidData }

// RecordError ties a failure to its position in a batch.
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string { return fmt.Sprintf("record %d: %v", e.Index, e.Err) }
func (e *RecordError) Unwrap() error { return e.Err }
