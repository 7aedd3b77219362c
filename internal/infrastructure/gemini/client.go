package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2/google"

	"ecoclean/internal/domain/tip"
)

// Scope is the OAuth scope used when no API key is configured
const Scope = "https://www.googleapis.com/auth/generative-language"

const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// APIError is returned for non-2xx responses
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gemini: %d %s: %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("gemini: %d", e.StatusCode)
}

// Client calls the generateContent endpoint of the Gemini REST API
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a client authenticated with an API key. When apiKey is
// empty, Google Application Default Credentials are used instead.
func NewClient(ctx context.Context, baseURL, apiKey string) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := http.DefaultClient
	if apiKey == "" {
		c, err := google.DefaultClient(ctx, Scope)
		if err != nil {
			return nil, fmt.Errorf("failed to load google credentials: %w", err)
		}
		httpClient = c
	}

	return NewClientWithHTTP(httpClient, baseURL, apiKey), nil
}

// NewClientWithHTTP creates a client on top of an existing http.Client
func NewClientWithHTTP(httpClient *http.Client, baseURL, apiKey string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

type generateRequest struct {
	Contents []tip.Content `json:"contents"`
}

type errorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate runs a single generateContent call
func (c *Client) Generate(ctx context.Context, model, prompt string) (*tip.GenerateResponse, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []tip.Content{{Role: "user", Parts: []tip.Part{{Text: prompt}}}},
	})
	if err != nil {
		return nil, err
	}

	apiURL := c.baseURL + "/v1beta/models/" + url.PathEscape(model) + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-goog-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
		var eb errorBody
		if json.Unmarshal(respBody, &eb) == nil && eb.Error.Message != "" {
			apiErr.Message = eb.Error.Message
			if eb.Error.Status != "" {
				apiErr.Status = eb.Error.Status
			}
		}
		if IsAuthError(apiErr) {
			slog.Error("Gemini rejected the configured credentials", "status", apiErr.StatusCode, "message", apiErr.Message)
		}
		return nil, apiErr
	}

	var result tip.GenerateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("gemini: failed to parse response: %w", err)
	}
	return &result, nil
}

// IsAuthError reports whether err is a rejected or missing credential
func IsAuthError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized ||
		apiErr.StatusCode == http.StatusForbidden ||
		(apiErr.StatusCode == http.StatusBadRequest && strings.Contains(apiErr.Message, "API key"))
}
