package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// MsgRequired is the ValidationError message for an absent field.
const MsgRequired = "is required"

// Outcome sentinels, shared by local validation and backend statuses.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// Sync-layer error categories. A single error may match both a category and
// one of the status sentinels above (a 404 is ErrTransport and ErrNotFound).
var (
	// ErrTransport covers unreachable networks, non-2xx statuses and
	// malformed response envelopes.
	ErrTransport = errors.New("transport error")

	// ErrDecode means a 2xx payload could not be mapped to a domain value.
	ErrDecode = errors.New("decode error")

	// ErrSerialization means request parameters could not be encoded. No
	// network call was made.
	ErrSerialization = errors.New("serialization error")

	// ErrStorage means a local commit could not be persisted. The published
	// local state is unchanged.
	ErrStorage = errors.New("storage error")

	// ErrMissingFixture is returned by the fixture transport when no fixture
	// is registered for a request.
	ErrMissingFixture = errors.New("missing fixture")
)

// ValidationError lists the rejected fields of an input, keyed by field
// name. It matches ErrValidation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(field + ": " + e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// DecodeError names the entity and field a mapper could not interpret.
type DecodeError struct {
	Entity string
	Field  string
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s: %s", ErrDecode.Error(), e.Entity, e.Reason)
	}
	return fmt.Sprintf("%s: %s.%s: %s", ErrDecode.Error(), e.Entity, e.Field, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return ErrDecode
}

// SerializationError names the request parameter a remote could not encode.
type SerializationError struct {
	Entity string
	Field  string
	Reason string
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("%s: %s.%s: %s", ErrSerialization.Error(), e.Entity, e.Field, e.Reason)
}

func (e *SerializationError) Unwrap() error {
	return ErrSerialization
}
