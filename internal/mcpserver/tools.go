package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/beanlog/cuppa/internal/advisor"
	"github.com/beanlog/cuppa/internal/palate"
	"github.com/beanlog/cuppa/internal/render"
)

// recommendInput is the argument payload of the recommend_coffee tool.
type recommendInput struct {
	Preference string `json:"preference" jsonschema:"taste preference in natural language, e.g. 고소한 맛 or fruity with floral notes"`
}

// criteriaInput is empty; show_criteria takes no arguments.
type criteriaInput struct{}

// tools holds the shared state behind the MCP tool handlers.
type tools struct {
	engine *advisor.Engine
	logger *zap.Logger
}

// newServer builds the MCP server with both tools registered.
func newServer(engine *advisor.Engine, logger *zap.Logger) *mcp.Server {
	t := &tools{engine: engine, logger: logger}
	server := mcp.NewServer(serverImpl(), nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "recommend_coffee",
		Description: "Recommends specialty coffees matching a taste preference and renders them as a Korean buying guide.",
	}, t.recommend)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "show_criteria",
		Description: "Explains the flavor classification rules behind the recommendations.",
	}, t.criteria)

	return server
}

// recommend runs the full advice pipeline and renders the outcome as
// markdown text. Domain failures (no match, unclassifiable input) come
// back as text the model can relay, not as protocol errors.
func (t *tools) recommend(ctx context.Context, req *mcp.CallToolRequest, in recommendInput) (*mcp.CallToolResult, any, error) {
	out := t.engine.Advise(ctx, in.Preference)
	t.logger.Debug("mcp tool call served",
		zap.String("tool", "recommend_coffee"),
		zap.String("outcome", string(out.Type)))
	return textResult(render.Outcome(in.Preference, out)), nil, nil
}

func (t *tools) criteria(ctx context.Context, req *mcp.CallToolRequest, in criteriaInput) (*mcp.CallToolResult, any, error) {
	return textResult(palate.CriteriaText), nil, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
