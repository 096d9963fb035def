package stores

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/storesync/internal/adapters/storage"
	"github.com/jsamuelsen11/storesync/internal/dispatch"
	"github.com/jsamuelsen11/storesync/internal/domain/refund"
	"github.com/jsamuelsen11/storesync/internal/ports"
	"github.com/jsamuelsen11/storesync/internal/stores/syncstate"
)

// Refund action kinds.
const (
	KindSynchronizeRefunds dispatch.Kind = "refund.synchronize"
	KindRetrieveRefunds    dispatch.Kind = "refund.retrieve"
)

// SynchronizeRefunds fetches one page of an order's refunds and upserts
// them. Pages are partial, so nothing is pruned.
type SynchronizeRefunds struct {
	SiteID       int64
	OrderID      int64
	PageNumber   int
	PageSize     int
	OnCompletion func(error)
}

func (SynchronizeRefunds) Kind() dispatch.Kind { return KindSynchronizeRefunds }

// RetrieveRefunds fetches the named refunds of an order and upserts them.
// With DeleteStale the order's stored refunds become exactly the ones the
// backend returned; an empty RefundIDs then clears them without a request.
type RetrieveRefunds struct {
	SiteID       int64
	OrderID      int64
	RefundIDs    []int64
	DeleteStale  bool
	OnCompletion func(error)
}

func (RetrieveRefunds) Kind() dispatch.Kind { return KindRetrieveRefunds }

// RefundStore handles the refund actions.
type RefundStore struct {
	base
	remote ports.RefundsRemote
}

// NewRefundStore wires a RefundStore.
func NewRefundStore(remote ports.RefundsRemote, st *storage.Manager, tracker *syncstate.Tracker, logger *slog.Logger) *RefundStore {
	return &RefundStore{base: newBase("refund", st, tracker, logger), remote: remote}
}

// SupportedActions implements dispatch.Processor.
func (s *RefundStore) SupportedActions() []dispatch.Kind {
	return []dispatch.Kind{KindSynchronizeRefunds, KindRetrieveRefunds}
}

// OnAction implements dispatch.Processor.
func (s *RefundStore) OnAction(ctx context.Context, action dispatch.Action) {
	switch a := action.(type) {
	case SynchronizeRefunds:
		s.synchronizeRefunds(ctx, a)
	case RetrieveRefunds:
		s.retrieveRefunds(ctx, a)
	default:
		s.logger.WarnContext(ctx, "unsupported action", slog.String("kind", string(action.Kind())))
	}
}

func (s *RefundStore) synchronizeRefunds(ctx context.Context, a SynchronizeRefunds) {
	run(&s.base, ctx, "synchronize_refunds", orderScope(a.SiteID, a.OrderID),
		func(ctx context.Context) ([]refund.Refund, error) {
			return s.remote.LoadAllRefunds(ctx, a.SiteID, a.OrderID, a.PageNumber, a.PageSize)
		},
		func(tx *storage.Tx, refunds []refund.Refund) error {
			s.logStats(ctx, storage.TableRefunds, storage.Upsert(tx.Refunds(), refunds, storage.RefundKey))
			return nil
		},
		errOnly[[]refund.Refund](a.OnCompletion),
	)
}

func (s *RefundStore) retrieveRefunds(ctx context.Context, a RetrieveRefunds) {
	run(&s.base, ctx, "retrieve_refunds", orderScope(a.SiteID, a.OrderID),
		func(ctx context.Context) ([]refund.Refund, error) {
			if len(a.RefundIDs) == 0 {
				return nil, nil
			}
			return s.remote.LoadRefunds(ctx, a.SiteID, a.OrderID, a.RefundIDs)
		},
		func(tx *storage.Tx, refunds []refund.Refund) error {
			if !a.DeleteStale {
				s.logStats(ctx, storage.TableRefunds, storage.Upsert(tx.Refunds(), refunds, storage.RefundKey))
				return nil
			}
			stats, err := storage.UpsertAndPrune(tx.Refunds(), storage.OrderScope(a.SiteID, a.OrderID), refunds, storage.RefundKey)
			if err != nil {
				return err
			}
			s.logStats(ctx, storage.TableRefunds, stats)
			return nil
		},
		errOnly[[]refund.Refund](a.OnCompletion),
	)
}
