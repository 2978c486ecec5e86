package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"mpmcp/internal/domain"
)

func TestCreateCustomer(t *testing.T) {
	var keys []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/customers", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		keys = append(keys, r.Header.Get("X-Idempotency-Key"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, map[string]string{"email": "buyer@example.com"}, body)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"2000147550","email":"buyer@example.com"}`))
	}))
	defer server.Close()

	client := NewClient(&fakeTokens{}, nil, ClientOptions{BaseURL: server.URL})

	customer, err := client.CreateCustomer(context.Background(), "buyer@example.com")
	require.NoError(t, err)
	require.Equal(t, domain.Customer{ID: "2000147550", Email: "buyer@example.com"}, customer)

	_, err = client.CreateCustomer(context.Background(), "buyer@example.com")
	require.NoError(t, err)

	require.Len(t, keys, 2)
	require.NotEqual(t, keys[0], keys[1], "every write carries a fresh idempotency key")
	for _, key := range keys {
		_, err := uuid.Parse(key)
		require.NoError(t, err, "idempotency key %q is not a UUID", key)
	}
}

func TestListIdentificationTypes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v1/identification_types", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":"DNI","name":"DNI","type":"number","min_length":7,"max_length":8}]`))
	}))
	defer server.Close()

	client := NewClient(&fakeTokens{}, nil, ClientOptions{BaseURL: server.URL})

	types, err := client.ListIdentificationTypes(context.Background())
	require.NoError(t, err)
	require.Equal(t, []domain.IdentificationType{
		{ID: "DNI", Name: "DNI", Type: "number", MinLength: 7, MaxLength: 8},
	}, types)
}

func TestListPaymentMethods(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/payment_methods", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":"visa","name":"Visa","payment_type_id":"credit_card","status":"active","thumbnail":"https://img.example/visa.png"}]`))
	}))
	defer server.Close()

	client := NewClient(&fakeTokens{}, nil, ClientOptions{BaseURL: server.URL})

	methods, err := client.ListPaymentMethods(context.Background())
	require.NoError(t, err)
	require.Len(t, methods, 1)
	require.Equal(t, "visa", methods[0].ID)
	require.Equal(t, "credit_card", methods[0].PaymentTypeID)
}

func TestSearchDocumentation_QueryParameters(t *testing.T) {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/search", r.URL.Path)
		got = map[string]string{
			"term":       r.URL.Query().Get("term"),
			"lang":       r.URL.Query().Get("lang"),
			"siteId":     r.URL.Query().Get("siteId"),
			"maxResults": r.URL.Query().Get("maxResults"),
		}
		_, _ = w.Write([]byte(`{"results":[{"title":"Refunds","content":"How refunds work","path":"/docs/refunds","score":0.91}]}`))
	}))
	defer server.Close()

	client := NewClient(&fakeTokens{}, nil, ClientOptions{DocsBaseURL: server.URL})

	resp, err := client.SearchDocumentation(context.Background(), domain.DocSearchQuery{
		Language:   "es",
		Term:       "refunds",
		SiteID:     "MLA",
		MaxResults: 25,
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	require.Equal(t, "Refunds", resp.Results[0].Title)

	require.Equal(t, map[string]string{
		"term":       "refunds",
		"lang":       "es",
		"siteId":     "MLA",
		"maxResults": "25",
	}, got)
}

func TestSearchDocumentation_DefaultLimit(t *testing.T) {
	var maxResults string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		maxResults = r.URL.Query().Get("maxResults")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewClient(&fakeTokens{}, nil, ClientOptions{DocsBaseURL: server.URL})

	_, err := client.SearchDocumentation(context.Background(), domain.DocSearchQuery{
		Language: "pt",
		Term:     "pix",
		SiteID:   "MLB",
	})
	require.NoError(t, err)
	require.Equal(t, "10", maxResults)
}
