// Package wire holds the JSON plumbing shared by every mapper: envelope
// unwrapping, decode error typing, and the date and money formats the
// WooCommerce API uses.
package wire

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/jsamuelsen11/storesync/internal/domain"
)

// Decode unmarshals body into v, unwrapping a {"data": ...} envelope first.
// Empty bodies and schema mismatches are reported as *domain.DecodeError
// naming entity.
func Decode(entity string, body []byte, v any) error {
	payload, err := Unwrap(entity, body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return asDecodeError(entity, err)
	}
	return nil
}

// Unwrap returns the payload inside a Jetpack-style {"data": ...} envelope,
// or body itself when there is none. Only an object whose sole key is "data"
// counts as an envelope.
func Unwrap(entity string, body []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, &domain.DecodeError{Entity: entity, Reason: "empty response"}
	}
	if trimmed[0] != '{' {
		return trimmed, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, asDecodeError(entity, err)
	}
	if data, ok := obj["data"]; ok && len(obj) == 1 {
		data = bytes.TrimSpace(data)
		if len(data) == 0 || bytes.Equal(data, []byte("null")) {
			return nil, &domain.DecodeError{Entity: entity, Field: "data", Reason: "empty envelope"}
		}
		return data, nil
	}
	return trimmed, nil
}

// Missing returns the decode error for an absent required field.
func Missing(entity, field string) error {
	return &domain.DecodeError{Entity: entity, Field: field, Reason: "missing required field"}
}

// Invalid returns the decode error for a present but unusable field.
func Invalid(entity, field string, err error) error {
	return &domain.DecodeError{Entity: entity, Field: field, Reason: err.Error()}
}

func asDecodeError(entity string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &domain.DecodeError{
			Entity: entity,
			Field:  typeErr.Field,
			Reason: fmt.Sprintf("cannot use %s as %s", typeErr.Value, typeErr.Type),
		}
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &domain.DecodeError{Entity: entity, Reason: fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset)}
	}
	return &domain.DecodeError{Entity: entity, Reason: err.Error()}
}
