// Package n9e provides a client for the N9E (Nightingale) API.
package n9e

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"inventory-tool/internal/config"
)

// Client is a client for the N9E API.
type Client struct {
	endpoint   string             // N9E API endpoint
	token      string             // Authentication token
	timeout    time.Duration      // Request timeout
	retry      config.RetryConfig // Retry configuration
	httpClient *resty.Client      // HTTP client
	logger     zerolog.Logger     // Logger
}

// NewClient creates a new N9E API client.
func NewClient(cfg *config.N9EConfig, retryCfg *config.RetryConfig, logger zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	retry := config.RetryConfig{
		MaxRetries: 3,
		BaseDelay:  1 * time.Second,
	}
	if retryCfg != nil {
		retry = *retryCfg
	}

	httpClient := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(timeout).
		SetHeader("X-User-Token", cfg.Token).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(retry.MaxRetries).
		SetRetryWaitTime(retry.BaseDelay).
		SetRetryMaxWaitTime(retry.BaseDelay * 8). // Max wait time for exponential backoff
		AddRetryCondition(retryCondition)

	return &Client{
		endpoint:   cfg.Endpoint,
		token:      cfg.Token,
		timeout:    timeout,
		retry:      retry,
		httpClient: httpClient,
		logger:     logger.With().Str("component", "n9e-client").Logger(),
	}
}

// retryCondition determines whether a request should be retried.
// Only retry on timeout, 5xx errors, or connection failures.
func retryCondition(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}

	if resp != nil && resp.StatusCode() >= 500 {
		return true
	}

	return false
}

// GetTargets retrieves the target hosts matching query from the N9E API.
// An empty query returns every target visible to the token.
func (c *Client) GetTargets(ctx context.Context, query string) ([]TargetData, error) {
	c.logger.Debug().Str("query", query).Msg("fetching targets from N9E")

	var result TargetsResponse

	queryParams := map[string]string{
		"limit": "10000", // Large limit to get all hosts
		"p":     "1",
	}
	if query != "" {
		queryParams["query"] = query
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&result).
		SetQueryParams(queryParams).
		Get("/api/n9e/targets")

	if err != nil {
		c.logger.Error().Err(err).Str("query", query).Msg("failed to fetch targets")
		return nil, fmt.Errorf("failed to fetch targets: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		c.logger.Error().
			Int("status_code", resp.StatusCode()).
			Str("body", string(resp.Body())).
			Msg("N9E API returned non-200 status")
		return nil, fmt.Errorf("N9E API returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	if result.Err != "" {
		c.logger.Error().Str("api_error", result.Err).Msg("N9E API returned error")
		return nil, fmt.Errorf("N9E API error: %s", result.Err)
	}

	c.logger.Info().
		Str("query", query).
		Int("count", len(result.Dat.List)).
		Int("total", result.Dat.Total).
		Msg("fetched targets successfully")
	return result.Dat.List, nil
}
