// Package mcpserver exposes the recommendation engine over the Model
// Context Protocol so agent clients can call it as a tool. It speaks
// streamable HTTP and legacy SSE when mounted on the API server, and
// stdio when launched as a subprocess.
package mcpserver

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/beanlog/cuppa/internal/advisor"
	"github.com/beanlog/cuppa/internal/plugin"
	"github.com/beanlog/cuppa/internal/version"
)

// serverName identifies this MCP server to connecting clients.
const serverName = "cuppa"

var _ plugin.RawHandlerProvider = (*Module)(nil)

// Module serves MCP clients on top of the advisor's engine.
type Module struct {
	logger  *zap.Logger
	advisor *advisor.Module
	server  *mcp.Server
	stream  http.Handler
	sse     http.Handler
}

// NewModule creates the MCP module. The advisor module must be
// registered before this one so its engine exists by Init time.
func NewModule(advisorMod *advisor.Module) *Module {
	return &Module{advisor: advisorMod}
}

func (m *Module) Name() string    { return "mcp" }
func (m *Module) Version() string { return "0.3.0" }

func (m *Module) Init(config *viper.Viper, logger *zap.Logger) error {
	m.logger = logger
	m.server = newServer(m.advisor.Engine(), logger)

	getServer := func(*http.Request) *mcp.Server { return m.server }
	m.stream = mcp.NewStreamableHTTPHandler(getServer, nil)
	m.sse = mcp.NewSSEHandler(getServer, nil)

	m.logger.Info("mcp module initialized", zap.String("server", serverName))
	return nil
}

func (m *Module) Start(ctx context.Context) error {
	m.logger.Info("mcp module started")
	return nil
}

func (m *Module) Stop() error {
	m.logger.Info("mcp module stopped")
	return nil
}

// RawHandlers mounts the MCP transports on the server root, outside
// the versioned API prefix. MCP clients expect fixed well-known paths.
func (m *Module) RawHandlers() map[string]http.Handler {
	return map[string]http.Handler{
		"/mcp":  m.stream,
		"/sse":  m.sse,
		"/sse/": m.sse,
	}
}

// ServeStdio runs the MCP server over stdin/stdout until the client
// disconnects or ctx is canceled. Used by the mcp CLI command.
func (m *Module) ServeStdio(ctx context.Context) error {
	return m.server.Run(ctx, &mcp.StdioTransport{})
}

// serverImpl describes this server in the MCP handshake. The build
// version lets clients report which build they talked to.
func serverImpl() *mcp.Implementation {
	return &mcp.Implementation{Name: serverName, Version: version.Short()}
}
