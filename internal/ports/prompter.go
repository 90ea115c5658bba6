package ports

import (
	"context"

	"github.com/bnema/etrade-cli/internal/domain"
)

// Prompter collects the interactive inputs of the OAuth handshake.
type Prompter interface {
	SelectEnvironment(ctx context.Context) (domain.Environment, error)
	VerificationCode(ctx context.Context, authorizationURL string) (string, error)
}
