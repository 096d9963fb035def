package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// OrderOptions holds the flags naming one order.
type OrderOptions struct {
	*RootOptions
	SiteID  int64
	OrderID int64
}

func (o *OrderOptions) bind(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&o.SiteID, "site", 0, "site ID (required)")
	_ = cmd.MarkFlagRequired("site")
	cmd.Flags().Int64Var(&o.OrderID, "order", 0, "order ID (required)")
	_ = cmd.MarkFlagRequired("order")
}

// SyncResult is the summary printed after an order sync.
type SyncResult struct {
	SiteID      int64 `json:"site_id"`
	OrderID     int64 `json:"order_id"`
	Items       int   `json:"items"`
	LabelGroups int   `json:"label_groups"`
}

func newSyncCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Pull data from the store backend into the local store",
	}
	cmd.AddCommand(newSyncOrderCommand(rootOpts))
	cmd.AddCommand(newSyncTrackingsCommand(rootOpts))
	return cmd
}

func newSyncOrderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OrderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Sync an order with its refunds, shipping labels, trackings and products",
		Example: `  syncctl sync order --site 123 --order 963
  syncctl sync order --site 123 --order 963 --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd, opts.RootOptions, func(ctx context.Context, rt *Runtime) error {
				if err := rt.Orders.SyncOrder(ctx, opts.SiteID, opts.OrderID); err != nil {
					return WrapExitError(ExitFailure, "sync failed", err)
				}
				d, err := rt.Orders.Details(ctx, opts.SiteID, opts.OrderID)
				if err != nil {
					return WrapExitError(ExitFailure, "reading synced order", err)
				}

				res := SyncResult{
					SiteID:      opts.SiteID,
					OrderID:     opts.OrderID,
					Items:       len(d.Items),
					LabelGroups: len(d.LabelGroups),
				}
				if opts.Format == FormatJSON {
					return writeJSON(cmd.OutOrStdout(), res)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "synced order %d on site %d: %d items, %d label groups\n",
					res.OrderID, res.SiteID, res.Items, res.LabelGroups)
				return err
			})
		},
	}
	opts.bind(cmd)
	return cmd
}

func newSyncTrackingsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OrderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:     "trackings",
		Short:   "Sync the shipment trackings of an order",
		Example: `  syncctl sync trackings --site 123 --order 963`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd, opts.RootOptions, func(ctx context.Context, rt *Runtime) error {
				if err := rt.Shipments.SyncTrackings(ctx, opts.SiteID, opts.OrderID); err != nil {
					return WrapExitError(ExitFailure, "sync failed", err)
				}
				return printTrackings(ctx, cmd, opts, rt)
			})
		},
	}
	opts.bind(cmd)
	return cmd
}

// withRuntime opens a Runtime for the duration of fn.
func withRuntime(cmd *cobra.Command, opts *RootOptions, fn func(context.Context, *Runtime) error) (err error) {
	rt, err := opts.open(opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rt.Close(); cerr != nil && err == nil {
			err = WrapExitError(ExitFailure, "shutdown", cerr)
		}
	}()
	return fn(cmd.Context(), rt)
}
