package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"mpmcp/internal/domain"
)

// JSON-RPC error codes surfaced for rejections that must not look like
// tool results.
const (
	codeInvalidParams = -32602
	codeInternalError = -32603
)

// toolFunc executes a validated tool call.
type toolFunc func(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error)

type registeredTool struct {
	tool    *mcp.Tool
	schema  *jsonschema.Resolved
	handler toolFunc
}

// requestContext identifies one invocation for logging and latency
// measurement. The id is a process-scoped monotonic counter.
type requestContext struct {
	tool  string
	id    uint64
	start time.Time
}

// Dispatcher validates tool-call arguments against the declared schemas,
// routes to the matching handler and normalizes results into the response
// envelope. Schema or routing failures become protocol errors; failures
// escaping a handler from the API layer become error envelopes.
type Dispatcher struct {
	logger    *zap.Logger
	metrics   domain.Metrics
	requestID atomic.Uint64
	tools     map[string]*registeredTool
}

func NewDispatcher(logger *zap.Logger, metrics domain.Metrics) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		logger:  logger.Named("dispatcher"),
		metrics: metrics,
		tools:   make(map[string]*registeredTool),
	}
}

// Register resolves the tool's input schema and stores the handler.
func (d *Dispatcher) Register(tool *mcp.Tool, handler toolFunc) error {
	schema, ok := tool.InputSchema.(*jsonschema.Schema)
	if !ok {
		return domain.E(domain.CodeInternal, "gateway.register",
			fmt.Sprintf("tool %q has no declared input schema", tool.Name), nil)
	}
	resolved, err := schema.Resolve(nil)
	if err != nil {
		return domain.Wrap(domain.CodeInternal, "gateway.register", err)
	}
	d.tools[tool.Name] = &registeredTool{tool: tool, schema: resolved, handler: handler}
	return nil
}

// Attach registers every tool on the MCP server. Unknown tool names are
// rejected by the server itself with a protocol error, so the dispatcher
// only ever sees registered names.
func (d *Dispatcher) Attach(server *mcp.Server) {
	for name, rt := range d.tools {
		server.AddTool(rt.tool, d.handle(name))
	}
}

func (d *Dispatcher) handle(name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rt, ok := d.tools[name]
		if !ok {
			return nil, &jsonrpc.Error{Code: codeInternalError, Message: fmt.Sprintf("tool %q is not registered", name)}
		}

		rc := &requestContext{
			tool:  name,
			id:    d.requestID.Add(1),
			start: time.Now(),
		}

		args, err := decodeArguments(req.Params.Arguments)
		if err == nil {
			err = rt.schema.Validate(args)
		}
		if err != nil {
			d.observe(rc, domain.ToolOutcomeRejected)
			d.logger.Warn("tool arguments rejected",
				zap.String("tool", rc.tool),
				zap.Uint64("request_id", rc.id),
				zap.Error(err),
			)
			return nil, &jsonrpc.Error{Code: codeInvalidParams, Message: err.Error()}
		}

		result, err := rt.handler(ctx, args)
		if err != nil {
			d.observe(rc, domain.ToolOutcomeError)
			d.logger.Error("tool call failed",
				zap.String("tool", rc.tool),
				zap.Uint64("request_id", rc.id),
				zap.Duration("elapsed", time.Since(rc.start)),
				zap.Error(err),
			)
			if isPipelineError(err) {
				return &mcp.CallToolResult{
					IsError: true,
					Content: []mcp.Content{&mcp.TextContent{Text: "MercadoPago API error: " + errorMessage(err)}},
				}, nil
			}
			return nil, &jsonrpc.Error{Code: codeInternalError, Message: err.Error()}
		}

		d.observe(rc, domain.ToolOutcomeOK)
		d.logger.Info("tool call completed",
			zap.String("tool", rc.tool),
			zap.Uint64("request_id", rc.id),
			zap.Duration("elapsed", time.Since(rc.start)),
		)
		return result, nil
	}
}

func (d *Dispatcher) observe(rc *requestContext, outcome domain.ToolOutcome) {
	if d.metrics == nil {
		return
	}
	d.metrics.ObserveToolCall(rc.tool, outcome, time.Since(rc.start))
}

func decodeArguments(raw json.RawMessage) (map[string]any, error) {
	args := map[string]any{}
	if len(raw) == 0 {
		return args, nil
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("arguments must be a JSON object: %w", err)
	}
	return args, nil
}

// isPipelineError reports whether err originates from the API client or
// the auth layer rather than from a programming error.
func isPipelineError(err error) bool {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return true
	}
	var domainErr *domain.Error
	return errors.As(err, &domainErr)
}

func errorMessage(err error) string {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) && domainErr.Message != "" {
		return domainErr.Message
	}
	return err.Error()
}
