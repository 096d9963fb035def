package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/goccy/go-json"

	"github.com/jsamuelsen11/storesync/internal/domain"
)

const problemContentType = "application/problem+json"

// ErrorResponse is an RFC 9457 problem document. Code is an extension member
// naming the failure category so clients need not parse Detail.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Code     string        `json:"code"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is a single field-level validation failure.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// problemKind ties an error category to its response status. Order matters:
// the first match wins, so status sentinels sit above sync categories and a
// backend 404 stays a 404.
type problemKind struct {
	target error
	status int
	code   string
}

var problemKinds = []problemKind{
	{domain.ErrValidation, http.StatusBadRequest, "validation"},
	{domain.ErrSerialization, http.StatusBadRequest, "serialization"},
	{domain.ErrNotFound, http.StatusNotFound, "not_found"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{domain.ErrConflict, http.StatusConflict, "conflict"},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, "timeout"},
	{domain.ErrUnavailable, http.StatusBadGateway, "unavailable"},
	{domain.ErrTransport, http.StatusBadGateway, "transport"},
	{domain.ErrDecode, http.StatusBadGateway, "decode"},
	{domain.ErrStorage, http.StatusServiceUnavailable, "storage"},
}

var internalProblem = problemKind{status: http.StatusInternalServerError, code: "internal"}

func classify(err error) problemKind {
	for _, k := range problemKinds {
		if errors.Is(err, k.target) {
			return k
		}
	}
	return internalProblem
}

// NewErrorResponse builds the problem document for err. The request URI
// becomes the instance member.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	kind := classify(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(kind.status),
		Status:   kind.status,
		Code:     kind.code,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationFieldsToDetails(verr.Fields)
	}

	return resp
}

// WriteErrorResponse writes the problem document for err with its status and
// the application/problem+json content type.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.String("operation", "WriteErrorResponse"),
			slog.Any("error", encErr),
		)
	}
}

// IsServerError reports whether err maps to a 5xx response.
func IsServerError(err error) bool {
	return classify(err).status >= http.StatusInternalServerError
}

func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{
			Location: "body." + field,
			Message:  msg,
		})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return strings.Compare(a.Location, b.Location)
	})
	return details
}
