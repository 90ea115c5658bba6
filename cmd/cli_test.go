package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/etrade-cli/internal/adapters/etrade"
	"github.com/bnema/etrade-cli/internal/config"
	"github.com/bnema/etrade-cli/internal/domain"
	"github.com/bnema/etrade-cli/internal/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionPrintsBuildVersion(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := executeCLI(t, dir, "", "version")

	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestConfigInitWritesTemplateOnce(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := executeCLI(t, dir, "", "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ETRADE_CONSUMER_KEY")

	data, err := os.ReadFile(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "sandbox_base_url")
	assert.Contains(t, string(data), "https://apisb.etrade.com")

	_, _, err = executeCLI(t, dir, "", "config", "init")
	require.ErrorIs(t, err, config.ErrConfigExists)

	_, _, err = executeCLI(t, dir, "", "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigShowMasksSecret(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "http://127.0.0.1:1")

	stdout, _, err := executeCLI(t, dir, "", "config", "show", "--select", "$.consumer_secret")

	require.NoError(t, err)
	assert.JSONEq(t, `"********"`, stdout)
}

func TestToolsListNeedsNoCredentials(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := executeCLI(t, dir, "", "tools", "list", "--select", "$[*].name")

	require.NoError(t, err)
	var names []string
	require.NoError(t, json.Unmarshal([]byte(stdout), &names))
	assert.Equal(t, []string{
		"list_accounts", "get_portfolio", "get_balance", "list_orders",
		"get_quote", "get_option_expire_dates", "get_option_chains",
	}, names)
}

func TestToolsCallRequiresConsumerKey(t *testing.T) {
	dir := t.TempDir()

	_, _, err := executeCLI(t, dir, "", "--quiet", "tools", "call", "list_accounts")

	require.Error(t, err)
	assert.Equal(t, domain.ExitUsage, domain.ExitCode(err))
	assert.Contains(t, err.Error(), "consumer_key")
}

func TestToolsCallWithoutTokenIsAuthError(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "http://127.0.0.1:1")

	_, _, err := executeCLI(t, dir, "", "--quiet", "tools", "call", "list_accounts")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoStoredCredential)
	assert.Equal(t, domain.ExitAuth, domain.ExitCode(err))
	assert.NoFileExists(t, filepath.Join(dir, config.DefaultTokenFile))
}

func TestToolsCallQuoteWithSelect(t *testing.T) {
	dir := t.TempDir()
	server := newFakeETrade(t)
	writeConfig(t, dir, server.URL)
	writeToken(t, dir, server.URL)

	stdout, _, err := executeCLI(t, dir, "", "--quiet",
		"tools", "call", "get_quote",
		"--args", `{"symbols":["AAPL"]}`,
		"--select", "$[0].Product.symbol",
	)

	require.NoError(t, err)
	assert.JSONEq(t, `"AAPL"`, stdout)
}

func TestToolsCallSelectsFieldsAsSent(t *testing.T) {
	dir := t.TempDir()
	server := newFakeETrade(t)
	writeConfig(t, dir, server.URL)
	writeToken(t, dir, server.URL)

	stdout, _, err := executeCLI(t, dir, "", "--quiet",
		"tools", "call", "get_quote",
		"--args", `{"symbols":["AAPL"]}`,
		"--select", "$[0].All",
	)

	require.NoError(t, err)
	assert.JSONEq(t, `{"lastTrade":201.5,"changeClose":1.25,"changeClosePercentage":0.62,"totalVolume":1000,"week52High":260.1}`, stdout)

	stdout, _, err = executeCLI(t, dir, "", "--quiet",
		"tools", "call", "get_quote",
		"--args", `{"symbols":["AAPL"]}`,
		"--select", "$[0].Fundamental.eps",
	)

	require.NoError(t, err)
	assert.JSONEq(t, `6.43`, stdout)
}

func TestToolsCallRejectedArgumentExitsWithUsage(t *testing.T) {
	dir := t.TempDir()
	server := newFakeETrade(t)
	writeConfig(t, dir, server.URL)
	writeToken(t, dir, server.URL)

	_, _, err := executeCLI(t, dir, "", "--quiet",
		"tools", "call", "list_orders", "--args", `{"account_id_key":"k1","count":500}`,
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, etrade.ErrOrderCountRange)
	assert.Equal(t, domain.ExitUsage, domain.ExitCode(err))
}

func TestWiredHTTPClientUsesTransportDefaults(t *testing.T) {
	t.Setenv("ETRADE_CONFIG_DIR", t.TempDir())

	app, err := wireApp()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	require.NotNil(t, app.httpClient)
	assert.Zero(t, app.httpClient.Timeout)
}

func TestToolsCallYAMLOutput(t *testing.T) {
	dir := t.TempDir()
	server := newFakeETrade(t)
	writeConfig(t, dir, server.URL)
	writeToken(t, dir, server.URL)

	stdout, _, err := executeCLI(t, dir, "", "--quiet",
		"tools", "call", "list_accounts", "--format", "yaml", "--select", "$[*].accountIdKey",
	)

	require.NoError(t, err)
	assert.Equal(t, "- k1\n- k2\n", stdout)
}

func TestToolsCallPropagatesAPIError(t *testing.T) {
	dir := t.TempDir()
	server := newFakeETrade(t)
	writeConfig(t, dir, server.URL)
	writeToken(t, dir, server.URL)

	_, _, err := executeCLI(t, dir, "", "--quiet", "tools", "call", "get_quote", "--args", `{"symbols":["ZZZZ"]}`)

	require.Error(t, err)
	assert.Equal(t, "API Error: Invalid symbol", err.Error())
	assert.Equal(t, domain.ExitAPI, domain.ExitCode(err))
}

func TestToolsServeAnswersRequests(t *testing.T) {
	dir := t.TempDir()
	server := newFakeETrade(t)
	writeConfig(t, dir, server.URL)
	writeToken(t, dir, server.URL)

	stdin := `{"id":1,"tool":"list_accounts"}` + "\n" + `{"id":2,"tool":"get_quote","arguments":{"symbols":["ZZZZ"]}}` + "\n"
	stdout, _, err := executeCLI(t, dir, stdin, "tools", "serve")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)

	var first tools.Response
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Nil(t, first.Error)
	assert.JSONEq(t, `{"id":2,"error":{"kind":"api","message":"API Error: Invalid symbol"}}`, lines[1])
}

func TestLoginReusesStoredToken(t *testing.T) {
	dir := t.TempDir()
	server := newFakeETrade(t)
	writeConfig(t, dir, server.URL)
	writeToken(t, dir, server.URL)

	stdout, _, err := executeCLI(t, dir, "", "--quiet", "login")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Already logged in to "+server.URL+" with 2 account(s)")
}

func TestLoginExitAtEnvironmentPrompt(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "http://127.0.0.1:1")

	stdout, _, err := executeCLI(t, dir, "3\n", "--quiet", "login")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Live Consumer Key")
	assert.NoFileExists(t, filepath.Join(dir, config.DefaultTokenFile))
}

func TestLogoutRemovesToken(t *testing.T) {
	dir := t.TempDir()
	writeToken(t, dir, "http://127.0.0.1:1")
	tokenPath := filepath.Join(dir, config.DefaultTokenFile)
	require.FileExists(t, tokenPath)

	stdout, _, err := executeCLI(t, dir, "", "logout")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Removed "+tokenPath)
	assert.NoFileExists(t, tokenPath)

	_, _, err = executeCLI(t, dir, "", "logout")
	require.NoError(t, err)
}

func TestMenuShowsQuoteAndExits(t *testing.T) {
	dir := t.TempDir()
	server := newFakeETrade(t)
	writeConfig(t, dir, server.URL)
	writeToken(t, dir, server.URL)

	stdout, _, err := executeCLI(t, dir, "1\nAAPL\n5\n")

	require.NoError(t, err)
	assert.Contains(t, stdout, "MARKET QUOTES")
	assert.Contains(t, stdout, "AAPL")
}

func TestMenuPrintsAPIErrorAndContinues(t *testing.T) {
	dir := t.TempDir()
	server := newFakeETrade(t)
	writeConfig(t, dir, server.URL)
	writeToken(t, dir, server.URL)

	stdout, _, err := executeCLI(t, dir, "1\nZZZZ\n5\n")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Error: API Error: Invalid symbol")
}

func TestMenuExitBeforeLogin(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "http://127.0.0.1:1")

	_, _, err := executeCLI(t, dir, "3\n")

	require.NoError(t, err)
}

func executeCLI(t *testing.T, dir string, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("ETRADE_CONFIG_DIR", dir)
	t.Setenv("ETRADE_CONSUMER_KEY", "")
	t.Setenv("ETRADE_CONSUMER_SECRET", "")

	root, cleanup := newRootCmd()
	t.Cleanup(cleanup)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(stdout)
	root.SetErr(stderr)
	if args == nil {
		// cobra falls back to os.Args when args is nil.
		args = []string{}
	}
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, dir string, baseURL string) {
	t.Helper()

	cfg := config.Template()
	cfg.ConsumerKey = "consumer-key"
	cfg.ConsumerSecret = "consumer-secret"
	cfg.SandboxBaseURL = baseURL
	cfg.ProdBaseURL = baseURL
	cfg.OAuth = config.OAuth{
		RequestTokenURL: baseURL + "/oauth/request_token",
		AccessTokenURL:  baseURL + "/oauth/access_token",
		AuthorizeURL:    baseURL + "/authorize",
	}
	require.NoError(t, config.WriteTemplate(filepath.Join(dir, config.FileName), cfg, true))
}

func writeToken(t *testing.T, dir string, baseURL string) {
	t.Helper()

	data, err := json.Marshal(map[string]string{
		"access_token":        "access-token",
		"access_token_secret": "access-secret",
		"base_url":            baseURL,
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultTokenFile), data, 0o600))
}

func newFakeETrade(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/accounts/list.json", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, `{"AccountListResponse":{"Accounts":{"Account":[
			{"accountId":"111","accountIdKey":"k1","accountDesc":"Brokerage","institutionType":"BROKERAGE","accountStatus":"ACTIVE"},
			{"accountId":"222","accountIdKey":"k2","accountDesc":"Savings","institutionType":"BANK","accountStatus":"ACTIVE"}
		]}}}`)
	})
	mux.HandleFunc("/v1/market/quote/AAPL.json", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, `{"QuoteResponse":{"QuoteData":[{"dateTime":"15:59:00 EDT 06-20-2025","Product":{"symbol":"AAPL","securityType":"EQ"},"All":{"lastTrade":201.5,"changeClose":1.25,"changeClosePercentage":0.62,"totalVolume":1000,"week52High":260.1},"Fundamental":{"eps":6.43}}]}}`)
	})
	mux.HandleFunc("/v1/market/quote/ZZZZ.json", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, `{"QuoteResponse":{"Messages":{"Message":[{"description":"Invalid symbol","code":10033,"type":"WARNING"}]}}}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}
