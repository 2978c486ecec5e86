// Package gateway exposes the MercadoPago tools over the Model Context
// Protocol. The MCP server and stdio transport come from the official SDK;
// everything behind them (validation, routing, envelopes) lives in the
// Dispatcher.
package gateway

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"mpmcp/internal/domain"
)

const (
	serverName    = "mercadopago-mcp"
	serverVersion = "0.1.0"
)

type Gateway struct {
	logger     *zap.Logger
	dispatcher *Dispatcher
}

type Options struct {
	Metrics domain.Metrics
}

func New(paymentsAPI PaymentsAPI, logger *zap.Logger, opts Options) (*Gateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("gateway")

	h := newHandlers(paymentsAPI, logger)
	dispatcher := NewDispatcher(logger, opts.Metrics)

	registrations := []struct {
		tool    *mcp.Tool
		handler toolFunc
	}{
		{createCustomerTool(), h.createCustomer},
		{documentTypesTool(), h.documentTypes},
		{paymentsMethodsTool(), h.paymentsMethods},
		{searchDocumentationTool(), h.searchDocumentation},
	}
	for _, reg := range registrations {
		if err := dispatcher.Register(reg.tool, reg.handler); err != nil {
			return nil, err
		}
	}

	return &Gateway{
		logger:     logger,
		dispatcher: dispatcher,
	}, nil
}

func (g *Gateway) newServer() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, &mcp.ServerOptions{
		HasTools: true,
	})
	g.dispatcher.Attach(server)
	return server
}

// Run serves tool calls on stdin/stdout until ctx is canceled.
func (g *Gateway) Run(ctx context.Context) error {
	server := g.newServer()
	g.logger.Info("gateway starting (stdio transport)")
	return server.Run(ctx, &mcp.StdioTransport{})
}
