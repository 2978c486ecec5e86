// Package auth obtains and caches OAuth access tokens for the MercadoPago
// API using the client-credentials grant.
package auth

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"mpmcp/internal/domain"
)

// Exchanger performs a client-credentials exchange.
type Exchanger interface {
	Exchange(ctx context.Context) (domain.Token, error)
}

// Store caches at most one access token. Freshness is reactive: the store
// never evicts on its own, a 401 upstream must Clear it. Concurrent
// acquirers coalesce onto a single exchange because the lock is held across
// the round trip.
type Store struct {
	mu         sync.Mutex
	exchanger  Exchanger
	logger     *zap.Logger
	token      string
	obtainedAt time.Time
}

func NewStore(exchanger Exchanger, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		exchanger: exchanger,
		logger:    logger.Named("token_store"),
	}
}

// Acquire returns the cached token, exchanging credentials first if the
// cache is empty.
func (s *Store) Acquire(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" {
		return s.token, nil
	}

	token, err := s.exchanger.Exchange(ctx)
	if err != nil {
		return "", err
	}
	if token.AccessToken == "" {
		return "", domain.E(domain.CodeUnauthenticated, "auth.acquire",
			"token exchange returned an empty access token", nil)
	}

	s.token = token.AccessToken
	s.obtainedAt = time.Now()
	s.logger.Debug("access token cached", zap.Int("expires_in", token.ExpiresIn))
	return s.token, nil
}

// Clear discards the cached token. Safe to call when nothing is cached.
func (s *Store) Clear() {
	s.mu.Lock()
	s.token = ""
	s.obtainedAt = time.Time{}
	s.mu.Unlock()
}

// ObtainedAt reports when the cached token was issued; the zero time means
// the cache is empty.
func (s *Store) ObtainedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.obtainedAt
}
