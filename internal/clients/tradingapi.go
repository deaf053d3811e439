// Package clients contains the HTTP client for the trading-automation API.
package clients

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
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// TransportError describes a connection-level failure: refused connection,
// elapsed timeout or a response body that is not valid JSON. Application
// failures reported inside a JSON payload are not transport errors.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIClient issues HTTP requests against the trading-automation API.
// Timeouts are applied per call via context, not on the underlying
// http.Client, since health probes and prompt calls need different bounds.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewAPIClient creates a client bound to the API base URL.
func NewAPIClient(baseURL string, logger *zap.Logger) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Get issues a GET request and returns the HTTP status code together with
// the raw response body. Only connection-level failures become errors, the
// status code is handed upward for the caller to interpret.
func (c *APIClient) Get(ctx context.Context, path string, timeout time.Duration) (int, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	op := "GET " + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Err: errors.Wrap(err, "create request")}
	}
	req.Header.Set("X-Request-Id", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Err: errors.Wrap(err, "read response body")}
	}

	c.logger.Debug("api request finished",
		zap.String("op", op),
		zap.Int("status", resp.StatusCode))

	return resp.StatusCode, body, nil
}

// Post issues a JSON POST request. A non-2xx status is not an error at this
// layer: the remote API encodes application failures inside the payload, so
// the body is decoded and handed upward regardless of status. Connection
// failures, timeouts and non-JSON bodies become *TransportError.
func (c *APIClient) Post(ctx context.Context, path string, header http.Header, body any, timeout time.Duration) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	op := "POST " + path

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: errors.Wrap(err, "marshal request body")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{Op: op, Err: errors.Wrap(err, "create request")}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.New().String())
	for key, values := range header {
		for _, value := range values {
			req.Header.Set(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: errors.Wrap(err, "read response body")}
	}

	if !json.Valid(respBody) {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("malformed response body (status %d)", resp.StatusCode)}
	}

	c.logger.Debug("api request finished",
		zap.String("op", op),
		zap.Int("status", resp.StatusCode),
		zap.Int("response_bytes", len(respBody)))

	return json.RawMessage(respBody), nil
}

// Health probes GET /health. It returns nil only for HTTP 200: any other
// status or a connection failure means the API is unreachable.
func (c *APIClient) Health(ctx context.Context, timeout time.Duration) error {
	status, _, err := c.Get(ctx, "/health", timeout)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("health endpoint returned status %d", status)
	}
	return nil
}
