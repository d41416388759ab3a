package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/beanlog/cuppa/internal/advisor"
	"github.com/beanlog/cuppa/internal/catalog"
	"github.com/beanlog/cuppa/internal/mcpserver"
	"github.com/beanlog/cuppa/internal/plugin"
	"github.com/beanlog/cuppa/internal/server"
	"github.com/beanlog/cuppa/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the cuppa API server",
	Long: `Starts the HTTP server with all enabled modules: the catalog API,
the advisor API, and the MCP endpoints under /mcp and /sse.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("cuppa server starting", zap.String("version", version.Short()))

	config, err := server.LoadConfig(configPath)
	if err != nil {
		logger.Error("failed to load configuration", zap.Error(err))
		return err
	}

	store := catalog.NewStore(config.GetString("catalog.path"), logger.Named("store"))

	registry := plugin.NewRegistry(logger)

	// Registration order matters: the advisor must init before the MCP
	// module, which shares its engine.
	advisorMod := advisor.NewModule(store)
	modules := []plugin.Plugin{
		catalog.NewModule(store),
		advisorMod,
		mcpserver.NewModule(advisorMod),
	}
	for _, m := range modules {
		if err := registry.Register(m); err != nil {
			logger.Error("failed to register module", zap.Error(err))
			return err
		}
	}

	if err := registry.InitAll(config); err != nil {
		logger.Error("failed to initialize modules", zap.Error(err))
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if err := registry.StartAll(ctx); err != nil {
		logger.Error("failed to start modules", zap.Error(err))
		return err
	}

	addr := config.GetString("server.host") + ":" + config.GetString("server.port")
	if addr == ":" {
		addr = "0.0.0.0:8080"
	}
	srv := server.New(server.Config{
		Addr:      addr,
		RateLimit: config.GetFloat64("server.rate_limit"),
		RateBurst: config.GetInt("server.rate_burst"),
	}, registry, logger)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	logger.Info("cuppa server ready", zap.String("addr", addr))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	registry.StopAll()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("cuppa server stopped")
	return nil
}
