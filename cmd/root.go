package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func Execute(ctx context.Context) error {
	rootCmd, cleanup := newRootCmd()
	defer cleanup()

	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd() (*cobra.Command, func()) {
	var quiet bool

	rootCmd := &cobra.Command{
		Use:           "etrade",
		Short:         "E*TRADE CLI: accounts, portfolio, balances, quotes and option chains",
		Long:          "etrade signs in to the E*TRADE API once with OAuth1, stores the access token, and then lets you browse accounts and market data from an interactive menu or call the same operations as tools.",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
	}
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Disable progress spinners")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd, func() {}
	}

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runMenu(cmd, app)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app, &quiet),
		newLogoutCmd(app),
		newToolsCmd(app, &quiet),
		newConfigCmd(app),
	)

	return rootCmd, func() {
		if err := app.Close(); err != nil {
			app.logger.WithError(err).Debug("close log file")
		}
	}
}
