package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/etrade-cli/internal/domain"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "ETRADE"
	envFile    = ".env"

	FileName = configName + "." + configType

	keyConsumerKey     = "consumer_key"
	keyConsumerSecret  = "consumer_secret"
	keySandboxBaseURL  = "sandbox_base_url"
	keyProdBaseURL     = "prod_base_url"
	keyRequestTokenURL = "oauth.request_token_url"
	keyAccessTokenURL  = "oauth.access_token_url"
	keyAuthorizeURL    = "oauth.authorize_url"
	keyTokenFile       = "token_file"
	keyLogFile         = "log_file"
	keyLogLevel        = "log_level"

	DefaultSandboxBaseURL  = "https://apisb.etrade.com"
	DefaultProdBaseURL     = "https://api.etrade.com"
	DefaultRequestTokenURL = "https://api.etrade.com/oauth/request_token"
	DefaultAccessTokenURL  = "https://api.etrade.com/oauth/access_token"
	DefaultAuthorizeURL    = "https://us.etrade.com/e/t/etws/authorize"
	DefaultTokenFile       = "tokens.json"
	DefaultLogFile         = "etrade_client.log"
	DefaultLogLevel        = "debug"
)

var ErrConfigExists = errors.New("config file already exists")

type OAuth struct {
	RequestTokenURL string `toml:"request_token_url" json:"request_token_url"`
	AccessTokenURL  string `toml:"access_token_url" json:"access_token_url"`
	AuthorizeURL    string `toml:"authorize_url" json:"authorize_url"`
}

type Config struct {
	ConsumerKey    string `toml:"consumer_key" json:"consumer_key"`
	ConsumerSecret string `toml:"consumer_secret" json:"consumer_secret"`
	SandboxBaseURL string `toml:"sandbox_base_url" json:"sandbox_base_url"`
	ProdBaseURL    string `toml:"prod_base_url" json:"prod_base_url"`
	TokenFile      string `toml:"token_file" json:"token_file"`
	LogFile        string `toml:"log_file" json:"log_file"`
	LogLevel       string `toml:"log_level" json:"log_level"`
	OAuth          OAuth  `toml:"oauth" json:"oauth"`

	// Path of the config file that was read, empty when none was found.
	Source string `toml:"-" json:"source,omitempty"`
}

// Load reads config.toml from dir, then applies an optional dir/.env and
// ETRADE_* environment variables on top. Relative file paths are resolved
// against dir.
func Load(cfg *viper.Viper, dir string) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return Config{}, fmt.Errorf("resolve config directory: %w", err)
	}

	if err := godotenv.Load(filepath.Join(absDir, envFile)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(absDir)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	setDefaults(cfg)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := Config{
		ConsumerKey:    strings.TrimSpace(cfg.GetString(keyConsumerKey)),
		ConsumerSecret: strings.TrimSpace(cfg.GetString(keyConsumerSecret)),
		SandboxBaseURL: strings.TrimSpace(cfg.GetString(keySandboxBaseURL)),
		ProdBaseURL:    strings.TrimSpace(cfg.GetString(keyProdBaseURL)),
		TokenFile:      resolvePath(absDir, cfg.GetString(keyTokenFile)),
		LogFile:        resolvePath(absDir, cfg.GetString(keyLogFile)),
		LogLevel:       strings.TrimSpace(cfg.GetString(keyLogLevel)),
		OAuth: OAuth{
			RequestTokenURL: strings.TrimSpace(cfg.GetString(keyRequestTokenURL)),
			AccessTokenURL:  strings.TrimSpace(cfg.GetString(keyAccessTokenURL)),
			AuthorizeURL:    strings.TrimSpace(cfg.GetString(keyAuthorizeURL)),
		},
		Source: cfg.ConfigFileUsed(),
	}

	return loaded, nil
}

// Validate reports missing consumer credentials. It is checked before any
// session is requested, not at load time, so version and config init work
// without credentials.
func (c Config) Validate() error {
	var missing []string
	if c.ConsumerKey == "" {
		missing = append(missing, keyConsumerKey)
	}
	if c.ConsumerSecret == "" {
		missing = append(missing, keyConsumerSecret)
	}
	if len(missing) == 0 {
		return nil
	}

	return domain.NewUsageError("config", fmt.Sprintf(
		"missing %s: set it in %s or as %s_%s",
		strings.Join(missing, " and "), FileName, envPrefix, strings.ToUpper(missing[0]),
	))
}

// Template is the config written by `config init`.
func Template() Config {
	return Config{
		SandboxBaseURL: DefaultSandboxBaseURL,
		ProdBaseURL:    DefaultProdBaseURL,
		TokenFile:      DefaultTokenFile,
		LogFile:        DefaultLogFile,
		LogLevel:       DefaultLogLevel,
		OAuth: OAuth{
			RequestTokenURL: DefaultRequestTokenURL,
			AccessTokenURL:  DefaultAccessTokenURL,
			AuthorizeURL:    DefaultAuthorizeURL,
		},
	}
}

// WriteTemplate writes cfg to path. An existing file is kept unless force is set.
func WriteTemplate(path string, cfg Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat config file: %w", err)
		}
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

func setDefaults(cfg *viper.Viper) {
	cfg.SetDefault(keyConsumerKey, "")
	cfg.SetDefault(keyConsumerSecret, "")
	cfg.SetDefault(keySandboxBaseURL, DefaultSandboxBaseURL)
	cfg.SetDefault(keyProdBaseURL, DefaultProdBaseURL)
	cfg.SetDefault(keyRequestTokenURL, DefaultRequestTokenURL)
	cfg.SetDefault(keyAccessTokenURL, DefaultAccessTokenURL)
	cfg.SetDefault(keyAuthorizeURL, DefaultAuthorizeURL)
	cfg.SetDefault(keyTokenFile, DefaultTokenFile)
	cfg.SetDefault(keyLogFile, DefaultLogFile)
	cfg.SetDefault(keyLogLevel, DefaultLogLevel)
}

func resolvePath(dir string, path string) string {
	path = strings.TrimSpace(path)
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
