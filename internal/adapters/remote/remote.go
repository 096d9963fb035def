// Package remote binds the transport to the backend's endpoints. Each remote
// builds a network.Request from typed parameters, executes it once, checks the
// response envelope, and maps the body to domain values. Remotes never retry
// and never touch local storage. Per-entity DTOs and mappers live in
// subpackages (remote/shipment, remote/order, remote/refund,
// remote/shippinglabel, remote/product); shared JSON plumbing lives in
// remote/wire.
package remote

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/storesync/internal/network"
)

// Mapper turns a response body into a domain value. Mappers are pure.
type Mapper[T any] func(body []byte) (T, error)

// Remote holds what every per-domain remote shares: the transport and a
// logger for failed calls.
type Remote struct {
	network network.Network
	logger  *slog.Logger
}

// New creates a Remote executing requests on n.
func New(n network.Network, logger *slog.Logger) *Remote {
	return &Remote{network: n, logger: logger}
}

// Enqueue executes req and maps the response with mapper. Transport failures
// come back enriched with the backend's error body; mapper failures are
// returned as they are.
func Enqueue[T any](ctx context.Context, r *Remote, req network.Request, mapper Mapper[T]) (T, error) {
	var zero T

	body, err := r.execute(ctx, req)
	if err != nil {
		return zero, err
	}

	v, err := mapper(body)
	if err != nil {
		r.logger.ErrorContext(ctx, "response mapping failed",
			slog.String("request", req.String()),
			slog.Any("error", err),
		)
		return zero, fmt.Errorf("%s: %w", req, err)
	}
	return v, nil
}

// EnqueueDiscard executes req for its side effect and ignores the body.
func EnqueueDiscard(ctx context.Context, r *Remote, req network.Request) error {
	_, err := r.execute(ctx, req)
	return err
}

func (r *Remote) execute(ctx context.Context, req network.Request) ([]byte, error) {
	body, err := r.network.Execute(ctx, req)
	if err == nil {
		err = CheckEnvelope(body)
	}
	if err != nil {
		err = TranslateError(err)
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("request", req.String()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%s: %w", req, err)
	}
	return body, nil
}
