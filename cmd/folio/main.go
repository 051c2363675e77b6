package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/folio/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "folio: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "folio",
		Short: "A terminal portfolio",
		Long: `folio renders a personal portfolio in the terminal.

Run without arguments to browse it locally, or use "folio serve" to let
others browse it over SSH.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/folio/config.toml)")
	flags.StringVar(&opts.ContentPath, "content", "", "portfolio YAML file (default: built-in portfolio)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/folio/prefs.toml)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newServeCmd(&opts),
		newThemeCmd(&opts),
		newLogsCmd(&opts),
	)
	return root
}

func newServeCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over SSH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Serve(cmd.Context(), *opts)
		},
	}
}

func newThemeCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [toggle]",
		Short:     "Show or toggle the saved theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			o := *opts
			o.Stdout = cmd.OutOrStdout()
			return app.Theme(o, len(args) == 1)
		},
	}
}

func newLogsCmd(opts *app.Options) *cobra.Command {
	var lines int
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the end of the log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := *opts
			o.Stdout = cmd.OutOrStdout()
			return app.Logs(o, lines)
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of lines (0 for all)")
	return cmd
}
