package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/etrade-cli/internal/domain"
	"github.com/bnema/etrade-cli/internal/ports"
	log "github.com/sirupsen/logrus"
)

// Environments maps the selectable API environments to their base URLs.
type Environments struct {
	SandboxBaseURL string
	LiveBaseURL    string
}

func (e Environments) BaseURL(env domain.Environment) (string, error) {
	var baseURL string
	switch env {
	case domain.EnvironmentSandbox:
		baseURL = e.SandboxBaseURL
	case domain.EnvironmentLive:
		baseURL = e.LiveBaseURL
	default:
		return "", fmt.Errorf("unknown environment %q", env)
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return "", fmt.Errorf("base url for %s environment is empty", env)
	}
	return baseURL, nil
}

// Handshake runs the interactive three-legged OAuth1 authorization. It never
// persists anything; the caller decides what to do with the credential.
type Handshake struct {
	authorizer ports.Authorizer
	prompter   ports.Prompter
	envs       Environments
	logger     log.FieldLogger
}

func NewHandshake(authorizer ports.Authorizer, prompter ports.Prompter, envs Environments, logger log.FieldLogger) *Handshake {
	if logger == nil {
		logger = log.StandardLogger()
	}

	return &Handshake{
		authorizer: authorizer,
		prompter:   prompter,
		envs:       envs,
		logger:     logger,
	}
}

// Run returns domain.ErrExitRequested unchanged when the user exits at the
// environment menu. Every other failure is an auth error.
func (h *Handshake) Run(ctx context.Context) (domain.Credential, error) {
	env, err := h.prompter.SelectEnvironment(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrExitRequested) || errors.Is(err, context.Canceled) {
			return domain.Credential{}, err
		}
		return domain.Credential{}, domain.NewAuthError("select environment", err)
	}

	baseURL, err := h.envs.BaseURL(env)
	if err != nil {
		return domain.Credential{}, domain.NewAuthError("resolve environment", err)
	}
	h.logger.WithField("environment", env).Debug("starting oauth handshake")

	requestToken, err := h.authorizer.RequestToken(ctx)
	if err != nil {
		return domain.Credential{}, domain.NewAuthError("request token step failed", err)
	}

	authorizationURL, err := h.authorizer.AuthorizationURL(requestToken)
	if err != nil {
		return domain.Credential{}, domain.NewAuthError("authorization url step failed", err)
	}

	verifier, err := h.prompter.VerificationCode(ctx, authorizationURL)
	if err != nil {
		return domain.Credential{}, domain.NewAuthError("read verification code", err)
	}

	accessToken, err := h.authorizer.AccessToken(ctx, requestToken, verifier)
	if err != nil {
		return domain.Credential{}, domain.NewAuthError("access token step failed", err)
	}

	cred := domain.Credential{
		AccessToken:       accessToken.Token,
		AccessTokenSecret: accessToken.Secret,
		BaseURL:           baseURL,
	}
	if !cred.Complete() {
		return domain.Credential{}, domain.NewAuthError("access token step failed", domain.ErrIncompleteCredential)
	}

	h.logger.WithField("base_url", baseURL).Info("oauth handshake completed")
	return cred, nil
}
