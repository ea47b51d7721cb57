// Package chucknorris provides a minimal client for the Chuck Norris jokes API.
package chucknorris

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the jokes collection root of the public API.
	DefaultBaseURL = "https://api.chucknorris.io/jokes"
	// DefaultTimeout bounds a single request.
	DefaultTimeout = 10 * time.Second
	// NoJokeFound is returned when the response carries no value field.
	NoJokeFound = "No joke found"

	randomPath = "/random"
	// maxBodySize caps the bytes read from a response; longer bodies fail to decode.
	maxBodySize = 1 << 20
)

// Client fetches jokes with a single bounded GET per call.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	logger  *slog.Logger
}

var errNullBody = errors.New("response body was null")

type randomJoke struct {
	Value *string `json:"value"`
}

// New returns a client. If httpClient is nil, one with DefaultTimeout is used.
func New(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    httpClient,
		logger:  logger.With("component", "chucknorris"),
	}
}

// RandomJoke fetches a random joke. A missing or null value field yields
// NoJokeFound; transport failures and bodies that are not a JSON object yield
// *FetchError.
func (c *Client) RandomJoke(ctx context.Context) (string, error) {
	c.logger.InfoContext(ctx, "fetching random joke from Chuck Norris API")
	reqURL := c.BaseURL + randomPath
	c.logger.DebugContext(ctx, "making GET request", "url", reqURL)

	body, err := c.get(ctx, reqURL)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to fetch joke", "error", err)
		return "", newTransportError(err)
	}

	var payload *randomJoke
	if err := json.Unmarshal(body, &payload); err != nil {
		c.logger.ErrorContext(ctx, "invalid JSON response", "error", err)
		return "", newInvalidResponseError(err)
	}
	if payload == nil {
		c.logger.ErrorContext(ctx, "invalid JSON response", "error", errNullBody)
		return "", newInvalidResponseError(errNullBody)
	}
	c.logger.DebugContext(ctx, "API response data", "body", string(body))

	joke := NoJokeFound
	if payload.Value != nil {
		joke = *payload.Value
	}
	c.logger.InfoContext(ctx, "successfully fetched joke", "joke", Preview(joke))
	return joke, nil
}

func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "API response status", "status", resp.StatusCode)
	c.logger.DebugContext(ctx, "API response headers", "headers", resp.Header)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s for url: %s", resp.Status, reqURL)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return body, nil
}

// Preview shortens text for log lines.
func Preview(text string) string {
	const limit = 50
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
