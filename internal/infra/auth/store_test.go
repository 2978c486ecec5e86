package auth

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"mpmcp/internal/domain"
)

type fakeExchanger struct {
	calls atomic.Int64
	fn    func(call int64) (domain.Token, error)
}

func (f *fakeExchanger) Exchange(context.Context) (domain.Token, error) {
	call := f.calls.Add(1)
	if f.fn == nil {
		return domain.Token{AccessToken: "token", ExpiresIn: 21600}, nil
	}
	return f.fn(call)
}

func TestStore_AcquireCachesToken(t *testing.T) {
	exchanger := &fakeExchanger{}
	store := NewStore(exchanger, nil)

	first, err := store.Acquire(context.Background())
	require.NoError(t, err)
	require.Equal(t, "token", first)

	second, err := store.Acquire(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, second)

	require.Equal(t, int64(1), exchanger.calls.Load())
}

func TestStore_ClearForcesReExchange(t *testing.T) {
	exchanger := &fakeExchanger{fn: func(call int64) (domain.Token, error) {
		if call == 1 {
			return domain.Token{AccessToken: "token-1"}, nil
		}
		return domain.Token{AccessToken: "token-2"}, nil
	}}
	store := NewStore(exchanger, nil)

	first, err := store.Acquire(context.Background())
	require.NoError(t, err)
	require.Equal(t, "token-1", first)

	store.Clear()
	require.True(t, store.ObtainedAt().IsZero())

	second, err := store.Acquire(context.Background())
	require.NoError(t, err)
	require.Equal(t, "token-2", second)
	require.Equal(t, int64(2), exchanger.calls.Load())
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	store := NewStore(&fakeExchanger{}, nil)
	store.Clear()
	store.Clear()
	require.True(t, store.ObtainedAt().IsZero())
}

func TestStore_ExchangeErrorPropagates(t *testing.T) {
	wantErr := errors.New("identity endpoint down")
	exchanger := &fakeExchanger{fn: func(int64) (domain.Token, error) {
		return domain.Token{}, wantErr
	}}
	store := NewStore(exchanger, nil)

	_, err := store.Acquire(context.Background())
	require.ErrorIs(t, err, wantErr)

	// A failed exchange must not poison the cache.
	_, err = store.Acquire(context.Background())
	require.Error(t, err)
	require.Equal(t, int64(2), exchanger.calls.Load())
}

func TestStore_EmptyAccessTokenRejected(t *testing.T) {
	exchanger := &fakeExchanger{fn: func(int64) (domain.Token, error) {
		return domain.Token{AccessToken: ""}, nil
	}}
	store := NewStore(exchanger, nil)

	_, err := store.Acquire(context.Background())
	require.Error(t, err)

	var domainErr *domain.Error
	require.True(t, errors.As(err, &domainErr))
	require.Equal(t, domain.CodeUnauthenticated, domainErr.Code)
}
