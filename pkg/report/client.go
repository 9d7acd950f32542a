// Package report delivers harness results to the remote test endpoint.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	v1 "github.com/openstratos/probe-ci/api/v1"
	"github.com/openstratos/probe-ci/internal/models"
	harnessErrs "github.com/openstratos/probe-ci/pkg/errors"
)

type Client struct {
	endpoint   string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient substitutes the transport, used by tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send posts the finalized result exactly once.
// POST <endpoint>, HTTP Basic auth with the operator key as username and an
// empty password. Only a 200 counts as delivered; any other status fails
// with the literal status line and the verbatim response body.
func (c *Client) Send(ctx context.Context, key string, result models.TestResult) error {
	body, err := json.Marshal(v1.NewTestReportFromModel(result))
	if err != nil {
		return fmt.Errorf("failed to encode test report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build report request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(key, "")

	zap.S().Named("report").Debugw("sending test report", "endpoint", c.endpoint, "features", result.Features)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return harnessErrs.NewTransportError(c.endpoint, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	default:
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return harnessErrs.NewTransportError(c.endpoint, err)
		}
		return harnessErrs.NewUnexpectedResponseError(resp.Status, resp.StatusCode, string(raw))
	}
}
