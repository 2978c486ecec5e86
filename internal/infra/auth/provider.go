package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"mpmcp/internal/domain"
)

const maxErrorBodyBytes = 4 << 10

// Provider exchanges client credentials for an access token at the
// identity endpoint.
type Provider struct {
	endpoint string
	creds    domain.Credentials
	client   *http.Client
	logger   *zap.Logger
	metrics  domain.Metrics
}

type ProviderOptions struct {
	HTTPClient *http.Client
	Metrics    domain.Metrics
}

func NewProvider(endpoint string, creds domain.Credentials, logger *zap.Logger, opts ProviderOptions) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := opts.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	return &Provider{
		endpoint: endpoint,
		creds:    creds,
		client:   client,
		logger:   logger.Named("auth"),
		metrics:  opts.Metrics,
	}
}

type exchangeRequest struct {
	GrantType    string `json:"grant_type"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// Exchange performs the client-credentials grant. Failures are fatal for
// the tool call that triggered them; retrying after a rejected token is the
// request pipeline's job, not the provider's.
func (p *Provider) Exchange(ctx context.Context) (domain.Token, error) {
	start := time.Now()
	token, err := p.exchange(ctx)
	if p.metrics != nil {
		p.metrics.ObserveAuthExchange(time.Since(start), err)
	}
	return token, err
}

func (p *Provider) exchange(ctx context.Context) (domain.Token, error) {
	payload, err := json.Marshal(exchangeRequest{
		GrantType:    "client_credentials",
		ClientID:     p.creds.ClientID,
		ClientSecret: p.creds.ClientSecret,
	})
	if err != nil {
		return domain.Token{}, domain.E(domain.CodeInternal, "auth.exchange", "", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return domain.Token{}, domain.E(domain.CodeInternal, "auth.exchange", "", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return domain.Token{}, domain.E(domain.CodeUnavailable, "auth.exchange", "token endpoint unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		msg := strings.TrimSpace(string(body))
		p.logger.Error("token exchange rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("body", msg),
		)
		return domain.Token{}, domain.E(domain.CodeUnauthenticated, "auth.exchange",
			fmt.Sprintf("token endpoint returned %d: %s", resp.StatusCode, msg), nil)
	}

	var token domain.Token
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return domain.Token{}, domain.E(domain.CodeUnauthenticated, "auth.exchange", "decode token response", err)
	}

	// The token value and client secret never reach the logs.
	p.logger.Debug("token exchange completed", zap.Int("expires_in", token.ExpiresIn))
	return token, nil
}
