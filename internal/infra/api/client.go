// Package api is the authenticated HTTP client for the MercadoPago REST
// API. Every outbound call goes through three stages in fixed order: bearer
// token injection, request logging, response handling with a single retry
// after a 401.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"mpmcp/internal/domain"
)

// Tokens is the token cache consumed by the pipeline.
type Tokens interface {
	Acquire(ctx context.Context) (string, error)
	Clear()
}

// Request describes one outbound API call.
type Request struct {
	Method string
	URL    string
	Query  url.Values
	Body   any
	Header http.Header
}

type Client struct {
	http        *http.Client
	tokens      Tokens
	logger      *zap.Logger
	metrics     domain.Metrics
	verbose     bool
	baseURL     string
	docsBaseURL string
}

type ClientOptions struct {
	HTTPClient  *http.Client
	Metrics     domain.Metrics
	Verbose     bool
	BaseURL     string
	DocsBaseURL string
}

func NewClient(tokens Tokens, logger *zap.Logger, opts ClientOptions) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = domain.DefaultAPIBaseURL
	}
	docsBaseURL := opts.DocsBaseURL
	if docsBaseURL == "" {
		docsBaseURL = domain.DefaultDocsBaseURL
	}
	return &Client{
		http:        httpClient,
		tokens:      tokens,
		logger:      logger.Named("api"),
		metrics:     opts.Metrics,
		verbose:     opts.Verbose,
		baseURL:     baseURL,
		docsBaseURL: docsBaseURL,
	}
}

// Do executes the request. A 401 clears the token cache and re-issues the
// whole call exactly once; the attempt counter is local to this invocation
// so concurrent calls never share retry state. A 401 on the retried attempt
// is terminal.
func (c *Client) Do(ctx context.Context, req Request) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		body, err := c.doOnce(ctx, req)
		if err == nil {
			return body, nil
		}
		var apiErr *domain.APIError
		if attempt == 0 && errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			c.logger.Debug("unauthorized response, refreshing token",
				zap.String("method", req.Method),
				zap.String("url", req.URL),
			)
			c.tokens.Clear()
			if c.metrics != nil {
				c.metrics.ObserveAuthRetry()
			}
			continue
		}
		return nil, err
	}
}

// DoJSON executes the request and decodes the response body into out.
func (c *Client) DoJSON(ctx context.Context, req Request, out any) error {
	body, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return domain.E(domain.CodeInternal, "api.decode", "decode response body", err)
	}
	return nil
}

func (c *Client) doOnce(ctx context.Context, req Request) ([]byte, error) {
	token, err := c.tokens.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	target := req.URL
	if len(req.Query) > 0 {
		target = target + "?" + req.Query.Encode()
	}

	var payload []byte
	var reader io.Reader
	if req.Body != nil {
		payload, err = json.Marshal(req.Body)
		if err != nil {
			return nil, domain.E(domain.CodeInternal, "api.encode", "encode request body", err)
		}
		reader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, reader)
	if err != nil {
		return nil, domain.E(domain.CodeInternal, "api.request", "", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for key, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	if c.verbose {
		// Headers are deliberately absent: they carry the bearer token.
		c.logger.Debug("api request",
			zap.String("method", req.Method),
			zap.String("url", req.URL),
			zap.String("query", req.Query.Encode()),
			zap.ByteString("body", payload),
		)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		apiErr := &domain.APIError{Method: req.Method, URL: req.URL, Cause: err}
		c.logger.Error("api request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL),
			zap.Error(err),
		)
		return nil, apiErr
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.E(domain.CodeUnavailable, "api.read", "read response body", err)
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		if c.verbose {
			c.logger.Debug("api response",
				zap.Int("status", resp.StatusCode),
				zap.String("url", req.URL),
				zap.ByteString("body", body),
			)
		}
		return body, nil
	}

	apiErr := &domain.APIError{
		Method: req.Method,
		URL:    req.URL,
		Status: resp.StatusCode,
		Body:   string(body),
	}
	c.logger.Error("api request rejected",
		zap.String("url", req.URL),
		zap.String("method", req.Method),
		zap.Int("status", resp.StatusCode),
		zap.ByteString("body", body),
		zap.String("message", apiErr.Error()),
	)
	return nil, apiErr
}
