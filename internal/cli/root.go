// Package cli implements syncctl, a one-shot client of the sync stack. Each
// command builds the same dependency graph as the daemon, runs against the
// configured local store, and closes it before exiting.
package cli

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/storesync/internal/platform/config"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Profile  string
	Format   string
	Verbose  bool
	LogLevel string

	open Opener
}

// NewRootCommand creates the root command for syncctl.
func NewRootCommand() *cobra.Command {
	return newRootCommand(openRuntime)
}

func newRootCommand(open Opener) *cobra.Command {
	opts := &RootOptions{open: open}

	cmd := &cobra.Command{
		Use:   "syncctl",
		Short: "Sync and inspect store orders",
		Long: `syncctl pulls orders, refunds, shipping labels, trackings and products
from the store backend into the local store and shows what is stored.

Configuration is loaded like the daemon's: defaults, configs/base.yaml,
configs/{profile}.yaml, STORESYNC_* environment variables, then flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.Profile, "profile", "p", defaultProfile(), "configuration profile")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log to stderr")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "override log.level when verbose")

	cmd.AddCommand(newSyncCommand(opts))
	cmd.AddCommand(newShowCommand(opts))

	return cmd
}

func defaultProfile() string {
	if p := os.Getenv(config.ProfileEnv); p != "" {
		return p
	}
	return "local"
}
