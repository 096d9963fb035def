package stores

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/storesync/internal/adapters/storage"
	"github.com/jsamuelsen11/storesync/internal/dispatch"
	"github.com/jsamuelsen11/storesync/internal/domain/shippinglabel"
	"github.com/jsamuelsen11/storesync/internal/ports"
	"github.com/jsamuelsen11/storesync/internal/stores/syncstate"
)

// Shipping label action kinds.
const (
	KindSynchronizeShippingLabels dispatch.Kind = "shipping_label.synchronize"
	KindRefundShippingLabel       dispatch.Kind = "shipping_label.refund"
)

// SynchronizeShippingLabels makes the stored labels of an order match the
// backend's.
type SynchronizeShippingLabels struct {
	SiteID       int64
	OrderID      int64
	OnCompletion func(error)
}

func (SynchronizeShippingLabels) Kind() dispatch.Kind { return KindSynchronizeShippingLabels }

// RefundShippingLabel requests a refund and attaches it to the stored label,
// if the label has been synced.
type RefundShippingLabel struct {
	SiteID          int64
	OrderID         int64
	ShippingLabelID int64
	OnCompletion    func(shippinglabel.Refund, error)
}

func (RefundShippingLabel) Kind() dispatch.Kind { return KindRefundShippingLabel }

// ShippingLabelStore handles the shipping label actions.
type ShippingLabelStore struct {
	base
	remote ports.ShippingLabelRemote
}

// NewShippingLabelStore wires a ShippingLabelStore.
func NewShippingLabelStore(
	remote ports.ShippingLabelRemote, st *storage.Manager, tracker *syncstate.Tracker, logger *slog.Logger,
) *ShippingLabelStore {
	return &ShippingLabelStore{base: newBase("shipping_label", st, tracker, logger), remote: remote}
}

// SupportedActions implements dispatch.Processor.
func (s *ShippingLabelStore) SupportedActions() []dispatch.Kind {
	return []dispatch.Kind{KindSynchronizeShippingLabels, KindRefundShippingLabel}
}

// OnAction implements dispatch.Processor.
func (s *ShippingLabelStore) OnAction(ctx context.Context, action dispatch.Action) {
	switch a := action.(type) {
	case SynchronizeShippingLabels:
		s.synchronizeLabels(ctx, a)
	case RefundShippingLabel:
		s.refundLabel(ctx, a)
	default:
		s.logger.WarnContext(ctx, "unsupported action", slog.String("kind", string(action.Kind())))
	}
}

func (s *ShippingLabelStore) synchronizeLabels(ctx context.Context, a SynchronizeShippingLabels) {
	run(&s.base, ctx, "synchronize_shipping_labels", orderScope(a.SiteID, a.OrderID),
		func(ctx context.Context) ([]shippinglabel.Label, error) {
			return s.remote.LoadShippingLabels(ctx, a.SiteID, a.OrderID)
		},
		func(tx *storage.Tx, labels []shippinglabel.Label) error {
			stats, err := storage.UpsertAndPrune(tx.ShippingLabels(),
				storage.OrderScope(a.SiteID, a.OrderID), labels, storage.LabelKey)
			s.logStats(ctx, storage.TableShippingLabels, stats)
			return err
		},
		errOnly[[]shippinglabel.Label](a.OnCompletion),
	)
}

func (s *ShippingLabelStore) refundLabel(ctx context.Context, a RefundShippingLabel) {
	run(&s.base, ctx, "refund_shipping_label", orderScope(a.SiteID, a.OrderID),
		func(ctx context.Context) (shippinglabel.Refund, error) {
			return s.remote.RefundShippingLabel(ctx, a.SiteID, a.OrderID, a.ShippingLabelID)
		},
		func(tx *storage.Tx, r shippinglabel.Refund) error {
			rec, ok := tx.ShippingLabels().Find(storage.IntKey(a.SiteID, a.OrderID, a.ShippingLabelID))
			if !ok {
				// Not synced yet; the next label sync brings the refund along.
				return nil
			}
			label := rec.ReadOnly()
			label.Refund = &r
			rec.Update(label)
			return nil
		},
		a.OnCompletion,
	)
}
