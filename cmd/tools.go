package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bnema/etrade-cli/internal/adapters/render/output"
	"github.com/bnema/etrade-cli/internal/application"
	"github.com/bnema/etrade-cli/internal/ports"
	"github.com/bnema/etrade-cli/internal/tools"
	"github.com/spf13/cobra"
)

type outputFlags struct {
	format   string
	selector string
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.format, "format", "json", "Output format: json or yaml")
	cmd.Flags().StringVar(&f.selector, "select", "", "JSONPath expression applied to the result, e.g. '$[*].accountIdKey'")
}

func (f *outputFlags) write(cmd *cobra.Command, value any) error {
	format, err := output.ParseFormat(f.format)
	if err != nil {
		return err
	}
	return output.Write(cmd.OutOrStdout(), value, format, f.selector)
}

func newToolsCmd(app *app, quiet *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List, call and serve the E*TRADE tools",
		Long:  "tools exposes the account and market operations as named tools. Tools never prompt: run `etrade login` first.",
	}

	cmd.AddCommand(newToolsListCmd(app), newToolsCallCmd(app, quiet), newToolsServeCmd(app))

	return cmd
}

func newToolsListCmd(app *app) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tool descriptors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return out.write(cmd, app.toolRegistry(cmd.ErrOrStderr()).List())
		},
	}
	out.register(cmd)

	return cmd
}

func newToolsCallCmd(app *app, quiet *bool) *cobra.Command {
	var (
		out  outputFlags
		args string
	)

	cmd := &cobra.Command{
		Use:     "call <tool>",
		Short:   "Call one tool and print its result",
		Example: `  etrade tools call get_quote --args '{"symbols":["AAPL","MSFT"]}' --select '$[*].All.lastTrade'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, positional []string) error {
			name := positional[0]
			registry := app.toolRegistry(cmd.ErrOrStderr())

			var result any
			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), fmt.Sprintf("Calling %s...", name), *quiet, func(ctx context.Context) error {
				var err error
				result, err = registry.Call(ctx, name, json.RawMessage(args))
				return err
			})
			if err != nil {
				return err
			}

			return out.write(cmd, result)
		},
	}
	out.register(cmd)
	cmd.Flags().StringVar(&args, "args", "{}", "Tool arguments as a JSON object")

	return cmd
}

func newToolsServeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve tools over stdio, one JSON request and response per line",
		Long: `serve reads requests such as {"id":1,"tool":"get_quote","arguments":{"symbols":["AAPL"]}}
from stdin and writes {"id":1,"result":...} or {"id":1,"error":{"kind":"...","message":"..."}} to stdout.
The tool name "tools/list" returns the descriptors.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := tools.NewServer(app.toolRegistry(cmd.ErrOrStderr()), app.logger)
			return server.Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// toolRegistry builds clients from the stored credential on the first call.
// Tools never run the interactive handshake.
func (a *app) toolRegistry(warnOut io.Writer) *tools.Registry {
	return tools.NewRegistry(tools.NewClients(func(ctx context.Context) (ports.AccountsAPI, ports.MarketAPI, error) {
		authorizer, err := a.authorizer()
		if err != nil {
			return nil, nil, err
		}

		provider := application.NewSessionProvider(a.store, authorizer, nil, a.logger, warnOut)
		session, err := provider.Session(ctx, true)
		if err != nil {
			return nil, nil, err
		}

		accounts, market := a.clients(session)
		return accounts, market, nil
	}))
}
