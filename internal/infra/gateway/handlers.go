package gateway

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"mpmcp/internal/domain"
)

// Fallback copy returned when an upstream listing call fails. The customer
// handler reuses the document-types text; that mirrors the behavior of the
// service this replaces.
const (
	msgNoDocumentTypes  = "No document types found, please try again later."
	msgNoPaymentMethods = "No payment methods found, please try again later."
)

func msgNoDocumentation(term string) string {
	return fmt.Sprintf("No documentation found for query %q. Try a different search term.", term)
}

// PaymentsAPI is the authenticated client surface the handlers call into.
type PaymentsAPI interface {
	CreateCustomer(ctx context.Context, email string) (domain.Customer, error)
	ListIdentificationTypes(ctx context.Context) ([]domain.IdentificationType, error)
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
	SearchDocumentation(ctx context.Context, query domain.DocSearchQuery) (domain.DocSearchResponse, error)
}

type handlers struct {
	api    PaymentsAPI
	logger *zap.Logger
}

func newHandlers(api PaymentsAPI, logger *zap.Logger) *handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &handlers{
		api:    api,
		logger: logger.Named("tools"),
	}
}

func (h *handlers) createCustomer(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	email := stringArg(args, "email")

	customer, err := h.api.CreateCustomer(ctx, email)
	if err != nil {
		h.logger.Error("create customer failed", zap.Error(err))
		return textResult(msgNoDocumentTypes), nil
	}
	if customer.ID == "" {
		h.logger.Error("create customer returned no identifier")
		return textResult(msgNoDocumentTypes), nil
	}
	return textResult(fmt.Sprintf("Customer created with ID %s.", customer.ID)), nil
}

func (h *handlers) documentTypes(ctx context.Context, _ map[string]any) (*mcp.CallToolResult, error) {
	types, err := h.api.ListIdentificationTypes(ctx)
	if err != nil {
		h.logger.Error("list identification types failed", zap.Error(err))
		return textResult(msgNoDocumentTypes), nil
	}
	if len(types) == 0 {
		return textResult(msgNoDocumentTypes), nil
	}

	records := make([]listingRecord, 0, len(types))
	for _, t := range types {
		records = append(records, listingRecord{Name: t.Name, ID: t.ID, Type: t.Type})
	}
	return textResult(renderListing(records)), nil
}

func (h *handlers) paymentsMethods(ctx context.Context, _ map[string]any) (*mcp.CallToolResult, error) {
	methods, err := h.api.ListPaymentMethods(ctx)
	if err != nil {
		h.logger.Error("list payment methods failed", zap.Error(err))
		return textResult(msgNoPaymentMethods), nil
	}
	if len(methods) == 0 {
		return textResult(msgNoPaymentMethods), nil
	}

	records := make([]listingRecord, 0, len(methods))
	for _, m := range methods {
		records = append(records, listingRecord{Name: m.Name, ID: m.ID, Thumbnail: m.Thumbnail})
	}
	return textResult(renderListing(records)), nil
}

// searchDocumentation lets API failures escape: the dispatcher turns them
// into an error envelope instead of a fallback text.
func (h *handlers) searchDocumentation(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
	query := domain.DocSearchQuery{
		Language:   stringArg(args, "language"),
		Term:       stringArg(args, "query"),
		SiteID:     stringArg(args, "siteId"),
		MaxResults: intArg(args, "limit"),
	}

	resp, err := h.api.SearchDocumentation(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return textResult(msgNoDocumentation(query.Term)), nil
	}
	digest := renderSearchResults(query, resp.Results)
	if digest == "" {
		return textResult(msgNoDocumentation(query.Term)), nil
	}
	return textResult(digest), nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

func intArg(args map[string]any, key string) int {
	// JSON numbers decode as float64.
	if v, ok := args[key].(float64); ok {
		return int(v)
	}
	return 0
}
