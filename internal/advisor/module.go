package advisor

import (
	"context"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/beanlog/cuppa/internal/catalog"
	"github.com/beanlog/cuppa/internal/palate"
)

// Module exposes the recommendation engine over the REST API.
type Module struct {
	logger *zap.Logger
	store  *catalog.Store
	engine *Engine
}

// NewModule creates the advisor module over a shared catalog store.
func NewModule(store *catalog.Store) *Module {
	return &Module{store: store}
}

func (m *Module) Name() string    { return "advisor" }
func (m *Module) Version() string { return "0.3.0" }

func (m *Module) Init(config *viper.Viper, logger *zap.Logger) error {
	m.logger = logger

	timeout := config.GetDuration("timeout")
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	m.engine = NewEngine(m.store, palate.NewClassifier(palate.Default()), logger, timeout)

	m.logger.Info("advisor module initialized", zap.Duration("timeout", timeout))
	return nil
}

func (m *Module) Start(ctx context.Context) error {
	m.logger.Info("advisor module started")
	return nil
}

func (m *Module) Stop() error {
	m.logger.Info("advisor module stopped")
	return nil
}

// Engine returns the configured engine. Valid after Init; other modules
// that serve the same advice share it through this accessor.
func (m *Module) Engine() *Engine { return m.engine }
