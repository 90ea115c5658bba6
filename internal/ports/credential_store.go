package ports

import (
	"context"

	"github.com/bnema/etrade-cli/internal/domain"
)

// CredentialStore persists the single access credential. Load reports
// ok=false when nothing usable is stored.
type CredentialStore interface {
	Load(ctx context.Context) (cred domain.Credential, ok bool, err error)
	Save(ctx context.Context, cred domain.Credential) error
	Delete(ctx context.Context) error
}
