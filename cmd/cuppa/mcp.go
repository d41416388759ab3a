package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/beanlog/cuppa/internal/advisor"
	"github.com/beanlog/cuppa/internal/catalog"
	"github.com/beanlog/cuppa/internal/mcpserver"
	"github.com/beanlog/cuppa/internal/server"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the MCP tools over stdio",
	Long: `Runs the Model Context Protocol server on stdin/stdout for clients
that launch cuppa as a subprocess. The HTTP transports are served by
"cuppa serve" under /mcp and /sse.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	// Stdout belongs to the stdio transport; cliLogger keeps logs on
	// stderr or drops them.
	logger := cliLogger()
	defer logger.Sync()

	config, err := server.LoadConfig(configPath)
	if err != nil {
		return err
	}

	store := catalog.NewStore(config.GetString("catalog.path"), logger.Named("store"))
	if err := store.Load(cmd.Context()); err != nil {
		logger.Warn("initial catalog load failed", zap.Error(err))
	}

	advisorMod := advisor.NewModule(store)
	if err := advisorMod.Init(moduleConfig(config, "advisor"), logger.Named("advisor")); err != nil {
		return err
	}

	mcpMod := mcpserver.NewModule(advisorMod)
	if err := mcpMod.Init(moduleConfig(config, "mcp"), logger.Named("mcp")); err != nil {
		return err
	}

	return mcpMod.ServeStdio(cmd.Context())
}

// moduleConfig scopes a module's config section the way the registry
// does for the full server.
func moduleConfig(config *viper.Viper, name string) *viper.Viper {
	if sub := config.Sub("modules." + name); sub != nil {
		return sub
	}
	return viper.New()
}
