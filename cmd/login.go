package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/etrade-cli/internal/application"
	"github.com/bnema/etrade-cli/internal/domain"
	"github.com/bnema/etrade-cli/internal/menu"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app, quiet *bool) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authorize with E*TRADE and store the access token",
		Long:  "login runs the OAuth1 authorization in the browser, stores the access token, and checks it by listing accounts. A stored token is reused unless --force is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLogin(cmd, app, force, *quiet)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Authorize again even when a token is stored")

	return cmd
}

func runLogin(cmd *cobra.Command, app *app, force bool, quiet bool) error {
	input := menu.NewInput(cmd.InOrStdin(), cmd.OutOrStdout())

	provider, err := app.sessionProvider(input, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	session, created, err := provider.Login(cmd.Context(), force)
	if errors.Is(err, domain.ErrExitRequested) {
		return nil
	}
	if err != nil {
		return err
	}

	accounts, _ := app.clients(session)
	var count int
	err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Verifying session...", quiet, func(ctx context.Context) error {
		list, err := accounts.ListAccounts(ctx)
		count = len(list)
		return err
	})
	if err != nil {
		return fmt.Errorf("verify session: %w", err)
	}

	if created {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s with %d account(s). Token saved to %s\n", session.BaseURL, count, app.store.Path())
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Already logged in to %s with %d account(s). Use --force to authorize again.\n", session.BaseURL, count)
	return err
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			provider := application.NewSessionProvider(app.store, nil, nil, app.logger, cmd.ErrOrStderr())
			if err := provider.Logout(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", app.store.Path())
			return err
		},
	}
}
