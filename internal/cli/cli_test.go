package cli

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/storesync/internal/container"
	"github.com/jsamuelsen11/storesync/internal/domain"
	"github.com/jsamuelsen11/storesync/internal/network/mocknet"
	"github.com/jsamuelsen11/storesync/internal/platform/config"
	"github.com/jsamuelsen11/storesync/internal/ports"
)

// fixtureOpener shares one in-memory graph between commands so a show can
// read what an earlier sync stored.
func fixtureOpener(t *testing.T, n *mocknet.Network) Opener {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageMemory
	cfg.Settings.Driver = config.SettingsMemory
	cfg.Dispatch.Strict = true
	logger := slog.New(slog.DiscardHandler)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	container.Register(injector, cfg, logger, container.Options{Network: n})
	t.Cleanup(func() { _ = container.Shutdown(injector) })

	return func(*RootOptions, io.Writer) (*Runtime, error) {
		return &Runtime{
			Orders:    do.MustInvoke[ports.OrderDetailsService](injector),
			Shipments: do.MustInvoke[ports.ShipmentService](injector),
		}, nil
	}
}

func simulateOrder() *mocknet.Network {
	n := mocknet.New(nil)
	n.SimulateResponseAlways("orders/963", "order.json")
	n.SimulateResponseAlways("orders/963/refunds", "refunds.json")
	n.SimulateResponseAlways("label/963", "shipping-labels.json")
	n.SimulateResponseAlways("orders/963/trackings", "shipment-trackings.json")
	n.SimulateResponseAlways("products", "products.json")
	return n
}

func execute(t *testing.T, open Opener, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := newRootCommand(open)
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Parallel()
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "syncctl", cmd.Use)

	for _, path := range [][]string{
		{"sync", "order"},
		{"sync", "trackings"},
		{"show", "order"},
		{"show", "trackings"},
	} {
		sub, _, err := cmd.Find(path)
		require.NoError(t, err, "command %v should exist", path)
		assert.Equal(t, path[len(path)-1], sub.Name())
		assert.NotNil(t, sub.Flags().Lookup("site"))
		assert.NotNil(t, sub.Flags().Lookup("order"))
	}

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, FormatText, formatFlag.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	t.Parallel()
	_, err := execute(t, fixtureOpener(t, mocknet.New(nil)),
		"show", "order", "--site", "123", "--order", "963", "--format", "yaml")

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestMissingOrderFlag(t *testing.T) {
	t.Parallel()
	_, err := execute(t, fixtureOpener(t, mocknet.New(nil)), "sync", "order", "--site", "123")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestSyncThenShowOrder(t *testing.T) {
	t.Parallel()
	open := fixtureOpener(t, simulateOrder())

	out, err := execute(t, open, "sync", "order", "--site", "123", "--order", "963")
	require.NoError(t, err)
	assert.Equal(t, "synced order 963 on site 123: 1 items, 1 label groups\n", out)

	out, err = execute(t, open, "show", "order", "--site", "123", "--order", "963", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			OrderID     int64 `json:"order_id"`
			Items       []any `json:"items"`
			LabelGroups []struct {
				ShippingLabelID int64 `json:"shipping_label_id"`
			} `json:"label_groups"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, int64(963), resp.Data.OrderID)
	assert.Len(t, resp.Data.Items, 1)
	require.Len(t, resp.Data.LabelGroups, 1)
	assert.Equal(t, int64(1), resp.Data.LabelGroups[0].ShippingLabelID)

	out, err = execute(t, open, "show", "order", "--site", "123", "--order", "963")
	require.NoError(t, err)
	assert.Contains(t, out, "GROUP")
	assert.Contains(t, out, "label 1 (9405500205309069374220)")
}

func TestSyncTrackingsThenShow(t *testing.T) {
	t.Parallel()
	open := fixtureOpener(t, simulateOrder())

	out, err := execute(t, open, "sync", "trackings", "--site", "123", "--order", "963")
	require.NoError(t, err)
	assert.Contains(t, out, "b1b94eb8a3b5ad1c7b1d8b3f2d1f6d9e")

	out, err = execute(t, open, "show", "trackings", "--site", "123", "--order", "963")
	require.NoError(t, err)
	assert.Contains(t, out, "TRACKING ID")
	assert.Contains(t, out, "2e7e8c0e72a7e4b4c8b0e6f1f4a8d2c1")
}

func TestShowUnsyncedOrder(t *testing.T) {
	t.Parallel()
	_, err := execute(t, fixtureOpener(t, mocknet.New(nil)), "show", "order", "--site", "123", "--order", "963")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestSyncFailureExitCode(t *testing.T) {
	t.Parallel()
	_, err := execute(t, fixtureOpener(t, mocknet.New(nil)), "sync", "order", "--site", "123", "--order", "963")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingFixture)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestWriteError(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	WriteError(buf, FormatJSON, NewExitError(ExitCommandError, "bad flags"))
	assert.JSONEq(t, `{"status":"error","error":"bad flags"}`, buf.String())

	buf.Reset()
	WriteError(buf, FormatText, NewExitError(ExitCommandError, "bad flags"))
	assert.Equal(t, "error: bad flags\n", buf.String())
}
