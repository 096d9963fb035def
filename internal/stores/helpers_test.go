package stores_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/storesync/internal/adapters/remote"
	"github.com/jsamuelsen11/storesync/internal/adapters/storage"
	"github.com/jsamuelsen11/storesync/internal/dispatch"
	"github.com/jsamuelsen11/storesync/internal/network/mocknet"
	"github.com/jsamuelsen11/storesync/internal/stores"
	"github.com/jsamuelsen11/storesync/internal/stores/syncstate"
)

const (
	siteID  int64 = 123
	orderID int64 = 963
)

type waiter interface{ Wait() }

type harness struct {
	net        *mocknet.Network
	storage    *storage.Manager
	dispatcher *dispatch.Dispatcher
	waiters    []waiter
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)

	st, err := storage.New(context.Background(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	n := mocknet.New(nil)
	r := remote.New(n, logger)
	tracker := syncstate.NewTracker(logger, nil)

	shipment := stores.NewShipmentStore(remote.NewShipmentRemote(r), st, tracker, logger)
	orders := stores.NewOrderStore(remote.NewOrdersRemote(r), st, tracker, logger)
	refunds := stores.NewRefundStore(remote.NewRefundsRemote(r), st, tracker, logger)
	labels := stores.NewShippingLabelStore(remote.NewShippingLabelRemote(r), st, tracker, logger)
	products := stores.NewProductStore(remote.NewProductsRemote(r), st, tracker, logger)

	d := dispatch.New(logger, dispatch.WithStrict(true))
	for _, p := range []dispatch.Processor{shipment, orders, refunds, labels, products} {
		require.NoError(t, d.RegisterProcessor(p))
	}
	d.Seal()

	return &harness{
		net:        n,
		storage:    st,
		dispatcher: d,
		waiters:    []waiter{shipment, orders, refunds, labels, products},
	}
}

// do dispatches the action built by build and waits for its completion.
func (h *harness) do(t *testing.T, build func(done func(error)) dispatch.Action) error {
	t.Helper()
	return dispatch.Await(context.Background(), func(done func(error)) {
		require.NoError(t, h.dispatcher.Dispatch(context.Background(), build(done)))
	})
}

func (h *harness) wait() {
	for _, w := range h.waiters {
		w.Wait()
	}
}

func (h *harness) view() storage.View {
	return h.storage.View()
}
