package app_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/storesync/internal/adapters/filestore"
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

type env struct {
	net        *mocknet.Network
	storage    *storage.Manager
	dispatcher *dispatch.Dispatcher
	logger     *slog.Logger
}

func newEnv(t *testing.T) *env {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)

	st, err := storage.New(context.Background(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	n := mocknet.New(nil)
	r := remote.New(n, logger)
	tracker := syncstate.NewTracker(logger, nil)

	d := dispatch.New(logger)
	for _, p := range []dispatch.Processor{
		stores.NewShipmentStore(remote.NewShipmentRemote(r), st, tracker, logger),
		stores.NewOrderStore(remote.NewOrdersRemote(r), st, tracker, logger),
		stores.NewRefundStore(remote.NewRefundsRemote(r), st, tracker, logger),
		stores.NewShippingLabelStore(remote.NewShippingLabelRemote(r), st, tracker, logger),
		stores.NewProductStore(remote.NewProductsRemote(r), st, tracker, logger),
		stores.NewAppSettingsStore(filestore.NewMemory(), logger),
	} {
		require.NoError(t, d.RegisterProcessor(p))
	}
	d.Seal()

	return &env{net: n, storage: st, dispatcher: d, logger: logger}
}
