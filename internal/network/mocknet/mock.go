// Package mocknet provides a deterministic network.Network backed by fixture
// files. Requests are matched by the suffix of their route; unmatched requests
// fail with domain.ErrMissingFixture so incomplete test setup never passes
// silently.
package mocknet

import (
	"context"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/jsamuelsen11/storesync/internal/domain"
	"github.com/jsamuelsen11/storesync/internal/network"
	"github.com/jsamuelsen11/storesync/internal/network/mocknet/fixtures"
)

// Compile-time interface check.
var _ network.Network = (*Network)(nil)

// response is one registered outcome: a fixture file, raw bytes, or an error.
type response struct {
	fixture string
	raw     []byte
	err     error
}

// Network is a fixture-backed transport. The zero value is not usable; call New.
type Network struct {
	mu       sync.Mutex
	fixtures fs.FS
	once     map[string][]response
	always   map[string]response
	requests []network.Request
}

// New creates a fixture transport reading files from fsys. A nil fsys uses the
// embedded fixtures package.
func New(fsys fs.FS) *Network {
	if fsys == nil {
		fsys = fixtures.FS
	}
	return &Network{
		fixtures: fsys,
		once:     make(map[string][]response),
		always:   make(map[string]response),
	}
}

// SimulateResponse answers the next request whose route ends with suffix with
// the named fixture, then exhausts. Registering the same suffix again queues
// another response.
func (n *Network) SimulateResponse(suffix, fixture string) {
	n.enqueue(suffix, response{fixture: fixture})
}

// SimulateResponseAlways answers every request whose route ends with suffix
// with the named fixture.
func (n *Network) SimulateResponseAlways(suffix, fixture string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.always[normalize(suffix)] = response{fixture: fixture}
}

// SimulateRaw answers the next matching request with body verbatim.
func (n *Network) SimulateRaw(suffix string, body []byte) {
	n.enqueue(suffix, response{raw: append([]byte{}, body...)})
}

// SimulateError fails the next matching request with err.
func (n *Network) SimulateError(suffix string, err error) {
	n.enqueue(suffix, response{err: err})
}

// RemoveAll drops every registered response and recorded request.
func (n *Network) RemoveAll() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.once = make(map[string][]response)
	n.always = make(map[string]response)
	n.requests = nil
}

// Requests returns a copy of every request received so far, in arrival order.
func (n *Network) Requests() []network.Request {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]network.Request, len(n.requests))
	copy(out, n.requests)
	return out
}

// Execute records req and resolves it against the registered responses.
// Once-only registrations take precedence over always registrations; within
// each set the longest matching suffix wins.
func (n *Network) Execute(ctx context.Context, req network.Request) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, ok := n.resolve(req)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingFixture, req)
	}
	if resp.err != nil {
		return nil, resp.err
	}
	if resp.fixture == "" {
		return resp.raw, nil
	}

	body, err := fs.ReadFile(n.fixtures, resp.fixture)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q for %s: %w", domain.ErrMissingFixture, resp.fixture, req, err)
	}
	return body, nil
}

func (n *Network) enqueue(suffix string, r response) {
	n.mu.Lock()
	defer n.mu.Unlock()
	key := normalize(suffix)
	n.once[key] = append(n.once[key], r)
}

func (n *Network) resolve(req network.Request) (response, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.requests = append(n.requests, req)
	route := req.Route()

	if key, ok := longestSuffix(route, n.once); ok {
		queue := n.once[key]
		r := queue[0]
		if len(queue) == 1 {
			delete(n.once, key)
		} else {
			n.once[key] = queue[1:]
		}
		return r, true
	}

	if key, ok := longestSuffix(route, n.always); ok {
		return n.always[key], true
	}
	return response{}, false
}

func longestSuffix[V any](route string, m map[string]V) (string, bool) {
	best, found := "", false
	for key := range m {
		if matches(route, key) && (!found || len(key) > len(best)) {
			best, found = key, true
		}
	}
	return best, found
}

// matches reports whether key is a suffix of route on a path segment
// boundary, so "1/trackings" does not match "orders/11/trackings".
func matches(route, key string) bool {
	if key == "" || route == key {
		return true
	}
	return strings.HasSuffix(route, "/"+key)
}

func normalize(suffix string) string {
	return strings.Trim(suffix, "/")
}
