package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/bnema/etrade-cli/internal/domain"
	"github.com/bnema/etrade-cli/internal/ports"
	log "github.com/sirupsen/logrus"
)

// Session is a signing HTTP client bound to one credential for the lifetime
// of the process.
type Session struct {
	Client     *http.Client
	BaseURL    string
	Credential domain.Credential
}

type SessionProvider struct {
	store      ports.CredentialStore
	authorizer ports.Authorizer
	handshake  *Handshake
	logger     log.FieldLogger
	warnOut    io.Writer
}

func NewSessionProvider(store ports.CredentialStore, authorizer ports.Authorizer, handshake *Handshake, logger log.FieldLogger, warnOut io.Writer) *SessionProvider {
	if logger == nil {
		logger = log.StandardLogger()
	}
	if warnOut == nil {
		warnOut = io.Discard
	}

	return &SessionProvider{
		store:      store,
		authorizer: authorizer,
		handshake:  handshake,
		logger:     logger,
		warnOut:    warnOut,
	}
}

// Session replays the stored credential without any network call. With no
// stored credential a headless caller gets an auth error immediately, while an
// interactive caller goes through the handshake.
func (p *SessionProvider) Session(ctx context.Context, headless bool) (*Session, error) {
	cred, ok, err := p.load(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		return p.open(cred)
	}

	if headless {
		return nil, domain.NewAuthError("authentication required", domain.ErrNoStoredCredential)
	}

	cred, err = p.runHandshake(ctx)
	if err != nil {
		return nil, err
	}

	if err := p.store.Save(ctx, cred); err != nil {
		p.logger.WithError(err).Warn("credential not persisted")
		_, _ = fmt.Fprintf(p.warnOut, "Warning: could not save credential: %v\n", err)
	}

	return p.open(cred)
}

// Login runs the handshake and persists its result. Without force an already
// stored credential is reused; created reports whether a handshake happened.
func (p *SessionProvider) Login(ctx context.Context, force bool) (session *Session, created bool, err error) {
	if !force {
		cred, ok, err := p.load(ctx)
		if err != nil {
			return nil, false, err
		}
		if ok {
			session, err := p.open(cred)
			return session, false, err
		}
	}

	cred, err := p.runHandshake(ctx)
	if err != nil {
		return nil, false, err
	}

	if err := p.store.Save(ctx, cred); err != nil {
		return nil, false, fmt.Errorf("save credential: %w", err)
	}

	session, err = p.open(cred)
	if err != nil {
		return nil, false, err
	}
	return session, true, nil
}

func (p *SessionProvider) Logout(ctx context.Context) error {
	if err := p.store.Delete(ctx); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	p.logger.Info("stored credential removed")
	return nil
}

// load treats an unreadable token file as absent after logging it.
func (p *SessionProvider) load(ctx context.Context) (domain.Credential, bool, error) {
	cred, ok, err := p.store.Load(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return domain.Credential{}, false, err
		}
		p.logger.WithError(err).Warn("stored credential unreadable, treating as absent")
		return domain.Credential{}, false, nil
	}
	return cred, ok, nil
}

func (p *SessionProvider) runHandshake(ctx context.Context) (domain.Credential, error) {
	if p.handshake == nil {
		return domain.Credential{}, domain.NewAuthError("authentication required", domain.ErrNoStoredCredential)
	}
	return p.handshake.Run(ctx)
}

func (p *SessionProvider) open(cred domain.Credential) (*Session, error) {
	client, err := p.authorizer.SignedClient(cred)
	if err != nil {
		return nil, domain.NewAuthError("build signed session", err)
	}

	p.logger.WithField("base_url", cred.BaseURL).Debug("session ready")
	return &Session{Client: client, BaseURL: cred.BaseURL, Credential: cred}, nil
}
