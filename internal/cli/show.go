package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/storesync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/storesync/internal/app/orderdetails"
)

func newShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print what the local store holds, without contacting the backend",
	}
	cmd.AddCommand(newShowOrderCommand(rootOpts))
	cmd.AddCommand(newShowTrackingsCommand(rootOpts))
	return cmd
}

func newShowOrderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OrderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:     "order",
		Short:   "Show the aggregated details of a synced order",
		Example: `  syncctl show order --site 123 --order 963 --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd, opts.RootOptions, func(ctx context.Context, rt *Runtime) error {
				d, err := rt.Orders.Details(ctx, opts.SiteID, opts.OrderID)
				if err != nil {
					return WrapExitError(ExitFailure, "reading order", err)
				}
				if opts.Format == FormatJSON {
					return writeJSON(cmd.OutOrStdout(), dto.ToOrderDetailsResponse(opts.OrderID, &d))
				}
				return printDetails(cmd.OutOrStdout(), &d)
			})
		},
	}
	opts.bind(cmd)
	return cmd
}

func newShowTrackingsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OrderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:     "trackings",
		Short:   "Show the stored shipment trackings of an order",
		Example: `  syncctl show trackings --site 123 --order 963`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd, opts.RootOptions, func(ctx context.Context, rt *Runtime) error {
				return printTrackings(ctx, cmd, opts, rt)
			})
		},
	}
	opts.bind(cmd)
	return cmd
}

func printTrackings(ctx context.Context, cmd *cobra.Command, opts *OrderOptions, rt *Runtime) error {
	trackings, err := rt.Shipments.ListTrackings(ctx, opts.SiteID, opts.OrderID)
	if err != nil {
		return WrapExitError(ExitFailure, "reading trackings", err)
	}
	resp := dto.ToTrackingListResponse(opts.OrderID, trackings)
	if opts.Format == FormatJSON {
		return writeJSON(cmd.OutOrStdout(), resp)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TRACKING ID\tPROVIDER\tNUMBER\tSHIPPED")
	for _, t := range resp.Trackings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.TrackingID, t.Provider, t.TrackingNumber, t.DateShipped)
	}
	return tw.Flush()
}

func printDetails(w io.Writer, d *orderdetails.Details) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP\tITEM\tNAME\tQTY\tTOTAL")
	printItems(tw, "-", d.Items)
	for _, g := range d.LabelGroups {
		printItems(tw, fmt.Sprintf("label %d (%s)", g.ShippingLabelID, g.TrackingNumber), g.Items)
	}
	return tw.Flush()
}

func printItems(w io.Writer, group string, items []orderdetails.Item) {
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", group, it.ItemID, it.Name, it.Quantity, it.Total)
	}
}
