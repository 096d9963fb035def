// Package network defines the transport boundary used by remotes: a request
// addressed by namespace, method, path and parameters, and a transport that
// turns it into raw response bytes.
package network

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/storesync/internal/domain"
)

// Common API namespaces.
const (
	NamespaceWC               = "wc/v3"
	NamespaceShipmentTracking = "wc-shipment-tracking/v3"
	NamespaceConnect          = "wc/v1/connect"
)

// Request is an immutable description of one backend call.
type Request struct {
	SiteID     int64
	Method     string
	Namespace  string
	Path       string
	Parameters map[string]any
}

// Route returns "namespace/path" without surrounding slashes. Fixture
// matching and URL building both start from it.
func (r Request) Route() string {
	ns := strings.Trim(r.Namespace, "/")
	path := strings.Trim(r.Path, "/")
	if ns == "" {
		return path
	}
	return ns + "/" + path
}

// HasBody reports whether parameters travel in the request body rather than
// the query string.
func (r Request) HasBody() bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}

func (r Request) String() string {
	return fmt.Sprintf("%s %s (site %d)", r.Method, r.Route(), r.SiteID)
}

// Network performs one request per call and returns the raw response body.
// Implementations never retry.
type Network interface {
	Execute(ctx context.Context, req Request) ([]byte, error)
}

// StatusError is returned for non-2xx responses. It unwraps to
// domain.ErrTransport and to the sentinel matching its status family.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", domain.ErrTransport.Error(), e.StatusCode)
}

func (e *StatusError) Unwrap() []error {
	errs := []error{domain.ErrTransport}
	if family := StatusFamily(e.StatusCode); family != nil {
		errs = append(errs, family)
	}
	return errs
}

// StatusFamily maps an HTTP status to the matching domain sentinel, or nil for
// statuses without one.
func StatusFamily(code int) error {
	switch {
	case code == http.StatusNotFound:
		return domain.ErrNotFound
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case code == http.StatusConflict:
		return domain.ErrConflict
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return domain.ErrForbidden
	case code >= http.StatusInternalServerError:
		return domain.ErrUnavailable
	default:
		return nil
	}
}
