package remote

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/jsamuelsen11/storesync/internal/domain"
	"github.com/jsamuelsen11/storesync/internal/network"
)

// invalidParamCode is the WooCommerce error code carrying per-field messages.
const invalidParamCode = "rest_invalid_param"

// APIError is an error reported by the backend, either with a non-2xx status
// or inside a 2xx envelope. It unwraps to domain.ErrTransport and to the
// sentinel matching its status family.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Code == "" {
		return fmt.Sprintf("%s: status %d: %s", domain.ErrTransport.Error(), e.StatusCode, msg)
	}
	return fmt.Sprintf("%s: status %d: %s (%s)", domain.ErrTransport.Error(), e.StatusCode, msg, e.Code)
}

func (e *APIError) Unwrap() []error {
	errs := []error{domain.ErrTransport}
	if family := network.StatusFamily(e.StatusCode); family != nil {
		errs = append(errs, family)
	}
	return errs
}

// wcError is the WooCommerce REST error body.
type wcError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    *struct {
		Status int               `json:"status"`
		Params map[string]string `json:"params"`
	} `json:"data"`
}

// wpcomError is the WordPress.com error body returned by the Jetpack tunnel.
type wpcomError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// wpcomStatus maps WordPress.com error codes, which arrive without a status,
// onto the HTTP status they stand for.
var wpcomStatus = map[string]int{
	"unauthorized":           http.StatusUnauthorized,
	"invalid_token":          http.StatusUnauthorized,
	"authorization_required": http.StatusForbidden,
	"unknown_blog":           http.StatusNotFound,
	"not_found":              http.StatusNotFound,
	"invalid_blog":           http.StatusNotFound,
	"rest_no_route":          http.StatusNotFound,
	"invalid_input":          http.StatusBadRequest,
	"http_request_failed":    http.StatusBadGateway,
}

// TranslateError enriches a transport failure with the error the backend put
// in the response body. Errors that are not status errors pass through.
func TranslateError(err error) error {
	var statusErr *network.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}

	apiErr := &APIError{StatusCode: statusErr.StatusCode}
	var body wcError
	if len(statusErr.Body) > 0 && json.Unmarshal(statusErr.Body, &body) == nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
		if body.Data != nil && body.Code == invalidParamCode && len(body.Data.Params) > 0 {
			return fmt.Errorf("%w: %w", apiErr, &domain.ValidationError{Fields: body.Data.Params})
		}
	}
	return apiErr
}

// CheckEnvelope inspects a 2xx body for an error object. The Jetpack tunnel
// reports backend failures with a 200 status and the error in the payload,
// either bare or inside a {"data": ...} envelope.
func CheckEnvelope(body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	if err := envelopeError(trimmed); err != nil {
		return err
	}

	var wrapped struct {
		Data json.RawMessage `json:"data"`
	}
	if json.Unmarshal(trimmed, &wrapped) == nil && len(wrapped.Data) > 0 {
		inner := bytes.TrimSpace(wrapped.Data)
		if len(inner) > 0 && inner[0] == '{' {
			return envelopeError(inner)
		}
	}
	return nil
}

func envelopeError(obj []byte) error {
	var wp wpcomError
	if json.Unmarshal(obj, &wp) == nil && wp.Error != "" && wp.Message != "" {
		status, ok := wpcomStatus[wp.Error]
		if !ok {
			status = http.StatusBadRequest
		}
		return &APIError{StatusCode: status, Code: wp.Error, Message: wp.Message}
	}

	var wc wcError
	if json.Unmarshal(obj, &wc) == nil && wc.Code != "" && wc.Message != "" && wc.Data != nil && wc.Data.Status >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: wc.Data.Status, Code: wc.Code, Message: wc.Message}
		if wc.Code == invalidParamCode && len(wc.Data.Params) > 0 {
			return fmt.Errorf("%w: %w", apiErr, &domain.ValidationError{Fields: wc.Data.Params})
		}
		return apiErr
	}
	return nil
}
