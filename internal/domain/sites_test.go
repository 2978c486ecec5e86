package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildDocumentationURL(t *testing.T) {
	require.Equal(t,
		"https://www.mercadopago.com.ar/developers/es/docs/checkout-api",
		BuildDocumentationURL("MLA", "es", "/docs/checkout-api"),
	)
	require.Equal(t,
		"https://www.mercadopago.com.br/developers/pt/docs/checkout-api",
		BuildDocumentationURL("MLB", "pt", "/docs/checkout-api"),
	)
}

func TestBuildDocumentationURL_EmptyPath(t *testing.T) {
	require.Equal(t,
		"https://www.mercadopago.com.ar/developers/es",
		BuildDocumentationURL("MLA", "es", ""),
	)
}

func TestBuildDocumentationURL_Deterministic(t *testing.T) {
	for _, lang := range DocLanguages {
		first := BuildDocumentationURL("MLC", lang, "/docs/payments")
		second := BuildDocumentationURL("MLC", lang, "/docs/payments")
		require.Equal(t, first, second)
	}
}

func TestBuildDocumentationURL_UnknownSiteFallsBack(t *testing.T) {
	require.Equal(t,
		"https://www.mercadopago.com/developers/es/docs",
		BuildDocumentationURL("XXX", "es", "/docs"),
	)
}

func TestSiteDomain_AllDeclaredSitesResolve(t *testing.T) {
	for _, siteID := range SiteIDs {
		host, ok := SiteDomain(siteID)
		require.True(t, ok, "missing domain for %s", siteID)
		require.NotEmpty(t, host)
	}
}
