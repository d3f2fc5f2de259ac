package repositories

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
	"time"

	"github.com/google/uuid"

	"spendtrack-client/internal/config"
	"spendtrack-client/internal/dto"
	apierrors "spendtrack-client/internal/errors"
)

// RESTClient is the shared HTTP plumbing behind every repository: request
// construction, envelope decoding and the mapping of transport, application
// and decode failures onto the client error taxonomy.
type RESTClient struct {
	baseURL      string
	sessionToken string
	userAgent    string
	httpClient   *http.Client
	logger       *slog.Logger
}

// NewRESTClient creates a REST client from the loaded configuration. A zero
// HTTP timeout means requests are bounded only by the caller's context.
func NewRESTClient(cfg *config.Config, logger *slog.Logger) *RESTClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &RESTClient{
		baseURL:      strings.TrimRight(cfg.API.BaseURL, "/"),
		sessionToken: cfg.API.SessionToken,
		userAgent:    cfg.HTTP.UserAgent,
		httpClient:   &http.Client{Timeout: cfg.HTTP.Timeout},
		logger:       logger,
	}
}

// getJSON issues a GET and decodes the envelope's data field into out.
func (c *RESTClient) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out)
}

// postJSON issues a POST with a JSON body and decodes the envelope's data
// field into out when out is non-nil.
func (c *RESTClient) postJSON(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.doJSON(ctx, http.MethodPost, path, nil, body, out)
}

// delete issues a DELETE; any 2xx answer counts as success.
func (c *RESTClient) delete(ctx context.Context, path string) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *RESTClient) doJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.sessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.sessionToken)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			"method", method,
			"path", path,
			"request_id", requestID,
			"error", err)
		if errors.Is(err, context.DeadlineExceeded) {
			return apierrors.New(apierrors.NetworkTimeout, apierrors.WithCause(err))
		}
		return apierrors.NewNetworkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierrors.NewNetworkError(err)
	}

	c.logger.Debug("backend request completed",
		"method", method,
		"path", path,
		"request_id", requestID,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apierrors.NewAPIError(resp.StatusCode, serverErrorMessage(raw))
	}

	if out == nil {
		return nil
	}

	var envelope dto.Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return apierrors.NewDecodeError(err)
	}
	if !envelope.IsSuccess() {
		return apierrors.New(apierrors.APIStatusNotSuccess, apierrors.WithHTTPStatus(resp.StatusCode))
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return apierrors.New(apierrors.DecodeInvalidData, apierrors.WithCause(err))
	}

	return nil
}

// serverErrorMessage extracts the server-provided error message from a
// failure body, or returns empty for the generic fallback.
func serverErrorMessage(raw []byte) string {
	var body dto.ErrorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Error
}
