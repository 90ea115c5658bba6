package cmd

import (
	"errors"

	"github.com/bnema/etrade-cli/internal/domain"
	"github.com/bnema/etrade-cli/internal/menu"
	"github.com/spf13/cobra"
)

func runMenu(cmd *cobra.Command, app *app) error {
	input := menu.NewInput(cmd.InOrStdin(), cmd.OutOrStdout())

	provider, err := app.sessionProvider(input, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	session, err := provider.Session(cmd.Context(), false)
	if errors.Is(err, domain.ErrExitRequested) {
		return nil
	}
	if err != nil {
		return err
	}

	accounts, market := app.clients(session)
	return menu.NewNavigator(input, cmd.OutOrStdout(), accounts, market, app.logger).Run(cmd.Context())
}
