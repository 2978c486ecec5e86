package gateway

import (
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"mpmcp/internal/domain"
)

const (
	toolCreateCustomer      = "create_customer"
	toolDocumentTypes       = "document_types"
	toolPaymentsMethods     = "payments_methods"
	toolSearchDocumentation = "search_documentation"
)

func createCustomerTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        toolCreateCustomer,
		Description: "Create a customer in MercadoPago from an email address",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"email": {
					Type:        "string",
					Description: "Email address of the customer to create",
				},
			},
			Required: []string{"email"},
		},
	}
}

func documentTypesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        toolDocumentTypes,
		Description: "List the identification document types accepted by MercadoPago",
		InputSchema: &jsonschema.Schema{Type: "object"},
	}
}

func paymentsMethodsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        toolPaymentsMethods,
		Description: "List the payment methods available on MercadoPago",
		InputSchema: &jsonschema.Schema{Type: "object"},
	}
}

func searchDocumentationTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        toolSearchDocumentation,
		Description: "Search the MercadoPago developer documentation",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"language": {
					Type:        "string",
					Description: "Documentation language",
					Enum:        enumValues(domain.DocLanguages),
				},
				"query": {
					Type:        "string",
					Description: "Search term",
				},
				"siteId": {
					Type:        "string",
					Description: "MercadoPago marketplace site",
					Enum:        enumValues(domain.SiteIDs),
				},
				"limit": {
					Type:        "number",
					Description: "Maximum number of results (default 10)",
					Minimum:     schemaFloat(domain.MinSearchLimit),
					Maximum:     schemaFloat(domain.MaxSearchLimit),
				},
			},
			Required: []string{"language", "query", "siteId"},
		},
	}
}

func enumValues(values []string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}

func schemaFloat(v float64) *float64 {
	return &v
}
