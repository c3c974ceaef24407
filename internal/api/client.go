// internal/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
)

// Client is the storefront's REST client for the backend contract: product
// listing and CRUD, and file upload. A bearer token from the persisted
// session is attached to every request when present.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
	logger     *logrus.Logger
}

// NewClient creates a new API client
func NewClient(cfg *config.Config, session *Session, logger *logrus.Logger) *Client {
	if session == nil {
		session = NewSession(cfg.Client.SessionFile)
	}
	if logger == nil {
		logger = logrus.New()
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.Client.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Client.RequestTimeout,
		},
		session: session,
		logger:  logger,
	}
}

// Session returns the client's session store
func (c *Client) Session() *Session {
	return c.session
}

// errorBody is the error payload shape the backend responds with
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do executes a JSON request against the backend. A nil out skips response
// decoding; 204 responses decode into nothing either way.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// send applies common headers, executes the request and decodes the response
func (c *Client) send(req *http.Request, out interface{}) error {
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if token := c.session.BearerToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     req.Method,
			"path":       req.URL.Path,
		}).Warn("request failed")
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.WithFields(logrus.Fields{
		"request_id":  requestID,
		"method":      req.Method,
		"path":        req.URL.Path,
		"status_code": resp.StatusCode,
		"latency":     time.Since(start),
	}).Debug("request completed")

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var body errorBody
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			if body.Message != "" {
				apiErr.Message = body.Message
			} else {
				apiErr.Message = body.Error
			}
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
