package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/bnema/etrade-cli/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage config.toml",
	}

	cmd.AddCommand(newConfigInitCmd(app), newConfigShowCmd(app))

	return cmd
}

func newConfigInitCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config.toml template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := filepath.Join(app.configDir, config.FileName)
			if err := config.WriteTemplate(path, config.Template(), force); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s. Fill in consumer_key and consumer_secret, or set ETRADE_CONSUMER_KEY and ETRADE_CONSUMER_SECRET.\n", path)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config.toml")

	return cmd
}

func newConfigShowCmd(app *app) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration with the consumer secret masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shown := app.cfg
			if shown.ConsumerSecret != "" {
				shown.ConsumerSecret = "********"
			}
			return out.write(cmd, shown)
		},
	}
	out.register(cmd)

	return cmd
}
