package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/etrade-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(viper.New(), dir)

	require.NoError(t, err)
	assert.Empty(t, cfg.Source)
	assert.Equal(t, DefaultSandboxBaseURL, cfg.SandboxBaseURL)
	assert.Equal(t, DefaultProdBaseURL, cfg.ProdBaseURL)
	assert.Equal(t, DefaultAuthorizeURL, cfg.OAuth.AuthorizeURL)
	assert.Equal(t, filepath.Join(dir, DefaultTokenFile), cfg.TokenFile)
	assert.Equal(t, filepath.Join(dir, DefaultLogFile), cfg.LogFile)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoadReadsTomlFile(t *testing.T) {
	dir := t.TempDir()
	content := `
consumer_key = "ck"
consumer_secret = "cs"
sandbox_base_url = "http://127.0.0.1:9999"
token_file = "/var/lib/etrade/tokens.json"
log_level = "info"

[oauth]
authorize_url = "http://127.0.0.1:9999/authorize"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o600))

	cfg, err := Load(viper.New(), dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), cfg.Source)
	assert.Equal(t, "ck", cfg.ConsumerKey)
	assert.Equal(t, "cs", cfg.ConsumerSecret)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.SandboxBaseURL)
	assert.Equal(t, DefaultProdBaseURL, cfg.ProdBaseURL)
	assert.Equal(t, "/var/lib/etrade/tokens.json", cfg.TokenFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://127.0.0.1:9999/authorize", cfg.OAuth.AuthorizeURL)
	assert.Equal(t, DefaultRequestTokenURL, cfg.OAuth.RequestTokenURL)
	require.NoError(t, cfg.Validate())
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("consumer_key = \"from-file\"\n"), 0o600))
	t.Setenv("ETRADE_CONSUMER_KEY", "from-env")
	t.Setenv("ETRADE_OAUTH_ACCESS_TOKEN_URL", "http://example.test/access")

	cfg, err := Load(viper.New(), dir)

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.ConsumerKey)
	assert.Equal(t, "http://example.test/access", cfg.OAuth.AccessTokenURL)
}

func TestDotEnvIsLoaded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ETRADE_CONSUMER_SECRET=dotenv-secret\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("ETRADE_CONSUMER_SECRET") })

	cfg, err := Load(viper.New(), dir)

	require.NoError(t, err)
	assert.Equal(t, "dotenv-secret", cfg.ConsumerSecret)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("consumer_key = \n"), 0o600))

	_, err := Load(viper.New(), dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestValidateReportsMissingCredentials(t *testing.T) {
	err := Config{ConsumerSecret: "cs"}.Validate()
	require.Error(t, err)
	assert.Equal(t, domain.KindUsage, domain.KindOf(err))
	assert.Contains(t, err.Error(), "consumer_key")
	assert.Contains(t, err.Error(), "ETRADE_CONSUMER_KEY")

	err = Config{}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "consumer_key and consumer_secret")
}

func TestWriteTemplateRoundTripsThroughLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	require.NoError(t, WriteTemplate(path, Template(), false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	cfg, err := Load(viper.New(), dir)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, DefaultAccessTokenURL, cfg.OAuth.AccessTokenURL)
	assert.Equal(t, filepath.Join(dir, DefaultTokenFile), cfg.TokenFile)
}

func TestWriteTemplateKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("consumer_key = \"keep\"\n"), 0o600))

	err := WriteTemplate(path, Template(), false)
	require.ErrorIs(t, err, ErrConfigExists)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "consumer_key = \"keep\"\n", string(data))

	require.NoError(t, WriteTemplate(path, Template(), true))
	data, readErr = os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "sandbox_base_url")
}
