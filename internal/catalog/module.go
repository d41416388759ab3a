package catalog

import (
	"context"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/beanlog/cuppa/internal/plugin"
)

// Module wires the catalog store, the optional file watcher and the
// inspection API into the server lifecycle.
type Module struct {
	logger   *zap.Logger
	config   *viper.Viper
	store    *Store
	watcher  *Watcher
	watch    bool
	debounce time.Duration
}

// NewModule creates the catalog module over a shared store.
func NewModule(store *Store) *Module {
	return &Module{store: store}
}

func (m *Module) Name() string    { return "catalog" }
func (m *Module) Version() string { return "0.3.0" }

func (m *Module) Init(config *viper.Viper, logger *zap.Logger) error {
	m.config = config
	m.logger = logger
	m.watch = config.GetBool("watch")
	m.debounce = config.GetDuration("debounce")
	if m.debounce <= 0 {
		m.debounce = 500 * time.Millisecond
	}
	m.logger.Info("catalog module initialized",
		zap.String("path", m.store.Path()),
		zap.Bool("watch", m.watch),
	)
	return nil
}

func (m *Module) Start(ctx context.Context) error {
	// A failed initial load is not fatal: the server starts and requests
	// surface the unavailable outcome until a reload succeeds.
	if err := m.store.Load(ctx); err != nil {
		m.logger.Warn("initial catalog load failed", zap.Error(err))
	}

	if m.watch {
		w, err := NewWatcher(m.store, m.debounce, m.logger.Named("watcher"))
		if err != nil {
			return err
		}
		m.watcher = w
		m.watcher.Start(ctx)
	}

	m.logger.Info("catalog module started")
	return nil
}

func (m *Module) Stop() error {
	if m.watcher != nil {
		m.watcher.Stop()
	}
	m.logger.Info("catalog module stopped")
	return nil
}

// Health implements plugin.HealthChecker.
func (m *Module) Health(ctx context.Context) plugin.HealthStatus {
	if _, err := m.store.Snapshot(); err != nil {
		return plugin.HealthStatus{Healthy: false, Detail: "catalog not loaded"}
	}
	return plugin.HealthStatus{Healthy: true}
}
