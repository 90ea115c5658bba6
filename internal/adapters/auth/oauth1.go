package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/bnema/etrade-cli/internal/domain"
	"github.com/bnema/etrade-cli/internal/ports"
	"github.com/mrjones/oauth"
)

const (
	DefaultRequestTokenURL = "https://api.etrade.com/oauth/request_token"
	DefaultAccessTokenURL  = "https://api.etrade.com/oauth/access_token"
	DefaultAuthorizeURL    = "https://us.etrade.com/e/t/etws/authorize"

	// OutOfBandCallback tells the provider to display the verifier instead of
	// redirecting.
	OutOfBandCallback = "oob"
)

var ErrMissingVerifier = errors.New("verification code is required")

type Config struct {
	ConsumerKey     string
	ConsumerSecret  string
	RequestTokenURL string
	AccessTokenURL  string
	AuthorizeURL    string
	HTTPClient      *http.Client
}

func (c Config) withDefaults() Config {
	if c.RequestTokenURL == "" {
		c.RequestTokenURL = DefaultRequestTokenURL
	}
	if c.AccessTokenURL == "" {
		c.AccessTokenURL = DefaultAccessTokenURL
	}
	if c.AuthorizeURL == "" {
		c.AuthorizeURL = DefaultAuthorizeURL
	}
	return c
}

// OAuth1Authorizer performs the out-of-band three-legged flow with
// HMAC-SHA1 signed GET requests and produces signing HTTP clients.
type OAuth1Authorizer struct {
	cfg      Config
	consumer *oauth.Consumer
}

var _ ports.Authorizer = (*OAuth1Authorizer)(nil)

func NewOAuth1Authorizer(cfg Config) (*OAuth1Authorizer, error) {
	cfg = cfg.withDefaults()
	if strings.TrimSpace(cfg.ConsumerKey) == "" {
		return nil, errors.New("consumer key is required")
	}
	if strings.TrimSpace(cfg.ConsumerSecret) == "" {
		return nil, errors.New("consumer secret is required")
	}
	if err := validateEndpoint("authorize url", cfg.AuthorizeURL); err != nil {
		return nil, err
	}

	provider := oauth.ServiceProvider{
		RequestTokenUrl:   cfg.RequestTokenURL,
		AuthorizeTokenUrl: cfg.AuthorizeURL,
		AccessTokenUrl:    cfg.AccessTokenURL,
		HttpMethod:        http.MethodGet,
	}

	var consumer *oauth.Consumer
	if cfg.HTTPClient != nil {
		consumer = oauth.NewCustomHttpClientConsumer(cfg.ConsumerKey, cfg.ConsumerSecret, provider, cfg.HTTPClient)
	} else {
		consumer = oauth.NewConsumer(cfg.ConsumerKey, cfg.ConsumerSecret, provider)
	}

	return &OAuth1Authorizer{cfg: cfg, consumer: consumer}, nil
}

func (a *OAuth1Authorizer) RequestToken(ctx context.Context) (ports.RequestToken, error) {
	if err := ctx.Err(); err != nil {
		return ports.RequestToken{}, err
	}

	token, _, err := a.consumer.GetRequestTokenAndUrl(OutOfBandCallback)
	if err != nil {
		return ports.RequestToken{}, fmt.Errorf("obtain request token: %w", err)
	}
	if token == nil || token.Token == "" {
		return ports.RequestToken{}, errors.New("request token response missing oauth_token")
	}

	return ports.RequestToken{Token: token.Token, Secret: token.Secret}, nil
}

// AuthorizationURL builds the provider's login page for a request token. The
// provider expects the consumer key and token as "key" and "token".
func (a *OAuth1Authorizer) AuthorizationURL(token ports.RequestToken) (string, error) {
	if token.Token == "" {
		return "", errors.New("request token is required")
	}

	parsed, err := url.Parse(a.cfg.AuthorizeURL)
	if err != nil {
		return "", fmt.Errorf("parse authorize url: %w", err)
	}

	q := parsed.Query()
	q.Set("key", a.cfg.ConsumerKey)
	q.Set("token", token.Token)
	parsed.RawQuery = q.Encode()

	return parsed.String(), nil
}

func (a *OAuth1Authorizer) AccessToken(ctx context.Context, token ports.RequestToken, verifier string) (ports.AccessToken, error) {
	if err := ctx.Err(); err != nil {
		return ports.AccessToken{}, err
	}

	verifier = strings.TrimSpace(verifier)
	if verifier == "" {
		return ports.AccessToken{}, ErrMissingVerifier
	}

	access, err := a.consumer.AuthorizeToken(&oauth.RequestToken{Token: token.Token, Secret: token.Secret}, verifier)
	if err != nil {
		return ports.AccessToken{}, fmt.Errorf("exchange verifier for access token: %w", err)
	}
	if access == nil || access.Token == "" || access.Secret == "" {
		return ports.AccessToken{}, errors.New("access token response missing required fields")
	}

	return ports.AccessToken{Token: access.Token, Secret: access.Secret}, nil
}

func (a *OAuth1Authorizer) SignedClient(cred domain.Credential) (*http.Client, error) {
	if !cred.Complete() {
		return nil, domain.ErrIncompleteCredential
	}

	client, err := a.consumer.MakeHttpClient(&oauth.AccessToken{
		Token:  cred.AccessToken,
		Secret: cred.AccessTokenSecret,
	})
	if err != nil {
		return nil, fmt.Errorf("build signing client: %w", err)
	}

	return client, nil
}

func validateEndpoint(name string, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s must use http or https", name)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s host is required", name)
	}
	return nil
}
