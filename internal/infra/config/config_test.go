package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"mpmcp/internal/domain"
)

func TestLoad_MissingCredentials(t *testing.T) {
	t.Setenv("CLIENT_ID", "")
	t.Setenv("CLIENT_SECRET", "")

	_, err := Load()
	require.Error(t, err)

	var domainErr *domain.Error
	require.True(t, errors.As(err, &domainErr))
	require.Equal(t, domain.CodeFailedPrecond, domainErr.Code)
}

func TestLoad_MissingSecretOnly(t *testing.T) {
	t.Setenv("CLIENT_ID", "client-id")
	t.Setenv("CLIENT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CLIENT_ID", "client-id")
	t.Setenv("CLIENT_SECRET", "client-secret")
	t.Setenv("DEBUG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "client-id", cfg.Credentials.ClientID)
	require.Equal(t, "client-secret", cfg.Credentials.ClientSecret)
	require.False(t, cfg.Verbose)
	require.Equal(t, domain.DefaultTokenURL, cfg.TokenURL)
	require.Equal(t, domain.DefaultAPIBaseURL, cfg.APIBaseURL)
	require.Equal(t, domain.DefaultDocsBaseURL, cfg.DocsBaseURL)
	require.Empty(t, cfg.MetricsAddr)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CLIENT_ID", "client-id")
	t.Setenv("CLIENT_SECRET", "client-secret")
	t.Setenv("MP_API_BASE_URL", "http://127.0.0.1:9999/")
	t.Setenv("METRICS_ADDR", "127.0.0.1:9464")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:9999", cfg.APIBaseURL)
	require.Equal(t, "127.0.0.1:9464", cfg.MetricsAddr)
}

func TestIsTruthy(t *testing.T) {
	for _, value := range []string{"1", "true", "TRUE", "yes", "anything"} {
		require.True(t, isTruthy(value), "expected %q to be truthy", value)
	}
	for _, value := range []string{"", "0", "false", "FALSE", "no", "off", "  "} {
		require.False(t, isTruthy(value), "expected %q to be falsy", value)
	}
}
