package etrade

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/etrade-cli/internal/domain"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const maxResponseBytes = 8 << 20

var ErrAccountKeyRequired = errors.New("account id key is required")

// Client issues signed GET requests against one API base URL. It holds no
// mutable state and is safe for concurrent use.
type Client struct {
	http        *http.Client
	baseURL     string
	consumerKey string
	logger      log.FieldLogger
}

func NewClient(httpClient *http.Client, baseURL string, consumerKey string, logger log.FieldLogger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = log.StandardLogger()
	}

	return &Client{
		http:        httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		consumerKey: consumerKey,
		logger:      logger,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type response struct {
	status int
	body   []byte
}

func (c *Client) get(ctx context.Context, ep endpoint, path string, query url.Values, header http.Header) (response, error) {
	endpointURL := c.baseURL + path
	if len(query) > 0 {
		endpointURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpointURL, nil)
	if err != nil {
		return response{}, domain.NewTransportError(ep.name, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	logger := c.logger.WithFields(log.Fields{
		"request_id": uuid.NewString(),
		"endpoint":   ep.name,
		"method":     req.Method,
		"url":        endpointURL,
	})
	logger.Debug("api request")

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.WithError(err).Debug("api request failed")
		return response{}, domain.NewTransportError(ep.name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return response{}, domain.NewTransportError(ep.name, fmt.Errorf("read response body: %w", err))
	}

	logger.WithFields(log.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(started).String(),
	}).Debug("api response")
	logger.WithField("body", string(body)).Trace("api response body")

	return response{status: resp.StatusCode, body: body}, nil
}

func accountPath(ep endpoint, accountIDKey string, leaf string) (string, error) {
	accountIDKey = strings.TrimSpace(accountIDKey)
	if accountIDKey == "" {
		return "", domain.NewInvalidArgumentError(ep.name, ErrAccountKeyRequired)
	}
	return "/v1/accounts/" + url.PathEscape(accountIDKey) + "/" + leaf, nil
}
