package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"contentguard/models"

	"go.uber.org/zap"
)

// Analyzer submits content for analysis.
type Analyzer interface {
	Analyze(ctx context.Context, content string) (*models.AnalysisReport, error)
}

// AnalyzerClient posts content to the remote analysis endpoint.
type AnalyzerClient struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger
}

type ClientOption func(*AnalyzerClient)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *AnalyzerClient) { c.httpClient = hc }
}

func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *AnalyzerClient) { c.logger = logger }
}

// NewAnalyzerClient creates a client for url. A zero timeout leaves requests unbounded.
func NewAnalyzerClient(url string, timeout time.Duration, opts ...ClientOption) *AnalyzerClient {
	c := &AnalyzerClient{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *AnalyzerClient) URL() string {
	return c.url
}

// Analyze sends one request and decodes the reply. Non-2xx replies become a
// *ServerError; anything that fails before a decoded reply becomes a *TransportError.
// The content is sent as typed, without trimming.
func (c *AnalyzerClient) Analyze(ctx context.Context, content string) (*models.AnalysisReport, error) {
	body, err := json.Marshal(models.AnalysisRequest{Content: content})
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("analysis request failed", zap.String("url", c.url), zap.Error(err))
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	c.logger.Debug("analysis response",
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(respBody)),
		zap.Duration("elapsed", time.Since(start)),
	)

	// The body is decoded before the status is inspected, so an unparseable
	// failure body is a transport error rather than a server error.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var failure models.ErrorResponse
		if err := json.Unmarshal(respBody, &failure); err != nil {
			return nil, &TransportError{Err: fmt.Errorf("decode error response: %w", err)}
		}
		c.logger.Warn("analysis rejected", zap.Int("status", resp.StatusCode), zap.String("error", failure.Error))
		return nil, &ServerError{StatusCode: resp.StatusCode, Message: failure.Error}
	}

	var report models.AnalysisReport
	if err := json.Unmarshal(respBody, &report); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("decode report: %w", err)}
	}
	return &report, nil
}
