package ports

import (
	"context"
	"net/http"

	"github.com/bnema/etrade-cli/internal/domain"
)

type RequestToken struct {
	Token  string
	Secret string
}

type AccessToken struct {
	Token  string
	Secret string
}

// Authorizer drives the OAuth1 provider and signs API traffic.
type Authorizer interface {
	RequestToken(ctx context.Context) (RequestToken, error)
	AuthorizationURL(token RequestToken) (string, error)
	AccessToken(ctx context.Context, token RequestToken, verifier string) (AccessToken, error)
	SignedClient(cred domain.Credential) (*http.Client, error)
}
