package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"

	authadapter "github.com/bnema/etrade-cli/internal/adapters/auth"
	credfile "github.com/bnema/etrade-cli/internal/adapters/credentials/file"
	"github.com/bnema/etrade-cli/internal/adapters/etrade"
	"github.com/bnema/etrade-cli/internal/application"
	"github.com/bnema/etrade-cli/internal/config"
	"github.com/bnema/etrade-cli/internal/logging"
	"github.com/bnema/etrade-cli/internal/menu"
	"github.com/bnema/etrade-cli/internal/ports"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type app struct {
	cfg        config.Config
	configDir  string
	logger     log.FieldLogger
	logCloser  io.Closer
	store      *credfile.Store
	httpClient *http.Client
}

func wireApp() (*app, error) {
	configDir := envOrDefault("ETRADE_CONFIG_DIR", ".")

	cfg, err := config.Load(viper.New(), configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	return &app{
		cfg:        cfg,
		configDir:  configDir,
		logger:     logger,
		logCloser:  closer,
		store:      credfile.NewStore(cfg.TokenFile),
		httpClient: &http.Client{},
	}, nil
}

func (a *app) Close() error {
	if a == nil || a.logCloser == nil {
		return nil
	}
	return a.logCloser.Close()
}

func (a *app) authorizer() (*authadapter.OAuth1Authorizer, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}

	authorizer, err := authadapter.NewOAuth1Authorizer(authadapter.Config{
		ConsumerKey:     a.cfg.ConsumerKey,
		ConsumerSecret:  a.cfg.ConsumerSecret,
		RequestTokenURL: a.cfg.OAuth.RequestTokenURL,
		AccessTokenURL:  a.cfg.OAuth.AccessTokenURL,
		AuthorizeURL:    a.cfg.OAuth.AuthorizeURL,
		HTTPClient:      a.httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("wire oauth authorizer: %w", err)
	}
	return authorizer, nil
}

// sessionProvider shares input with the caller so prompts and menus read the
// same buffered stream.
func (a *app) sessionProvider(input *menu.Input, out io.Writer, warnOut io.Writer) (*application.SessionProvider, error) {
	authorizer, err := a.authorizer()
	if err != nil {
		return nil, err
	}

	prompter := menu.NewTerminalPrompter(input, out, a.logger)
	handshake := application.NewHandshake(authorizer, prompter, application.Environments{
		SandboxBaseURL: a.cfg.SandboxBaseURL,
		LiveBaseURL:    a.cfg.ProdBaseURL,
	}, a.logger)

	return application.NewSessionProvider(a.store, authorizer, handshake, a.logger, warnOut), nil
}

func (a *app) clients(session *application.Session) (ports.AccountsAPI, ports.MarketAPI) {
	client := etrade.NewClient(session.Client, session.BaseURL, a.cfg.ConsumerKey, a.logger)
	return etrade.NewAccountsClient(client), etrade.NewMarketClient(client)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
