package plugin

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/mod/semver"
)

// Registry manages the lifecycle of all registered modules.
type Registry struct {
	mu       sync.RWMutex
	plugins  map[string]Plugin
	order    []string
	disabled map[string]bool
	logger   *zap.Logger
}

// NewRegistry creates a new module registry.
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		plugins:  make(map[string]Plugin),
		disabled: make(map[string]bool),
		logger:   logger,
	}
}

// Register adds a module to the registry.
func (r *Registry) Register(p Plugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := p.Name()
	if name == "" {
		return fmt.Errorf("module has empty name")
	}
	if _, exists := r.plugins[name]; exists {
		return fmt.Errorf("module %q already registered", name)
	}
	if !semver.IsValid("v" + p.Version()) {
		return fmt.Errorf("module %q version %q is not valid semver", name, p.Version())
	}

	r.plugins[name] = p
	r.order = append(r.order, name)
	r.logger.Info("module registered", zap.String("name", name), zap.String("version", p.Version()))
	return nil
}

// InitAll initializes registered modules with their scoped
// configuration. A module explicitly disabled via modules.<name>.enabled
// is skipped here and excluded from start, stop and route collection.
func (r *Registry) InitAll(config *viper.Viper) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range r.order {
		p := r.plugins[name]

		enabledKey := "modules." + name + ".enabled"
		if config.IsSet(enabledKey) && !config.GetBool(enabledKey) {
			r.disabled[name] = true
			r.logger.Info("module disabled, skipping", zap.String("name", name))
			continue
		}

		moduleConfig := config.Sub("modules." + name)
		if moduleConfig == nil {
			moduleConfig = viper.New()
		}

		r.logger.Info("initializing module", zap.String("name", name))
		if err := p.Init(moduleConfig, r.logger.Named(name)); err != nil {
			return fmt.Errorf("failed to initialize module %q: %w", name, err)
		}
	}
	return nil
}

// StartAll starts all enabled modules in registration order.
func (r *Registry) StartAll(ctx context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.order {
		if r.disabled[name] {
			continue
		}
		r.logger.Info("starting module", zap.String("name", name))
		if err := r.plugins[name].Start(ctx); err != nil {
			return fmt.Errorf("failed to start module %q: %w", name, err)
		}
	}
	return nil
}

// StopAll stops all enabled modules in reverse registration order.
func (r *Registry) StopAll() {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.order) - 1; i >= 0; i-- {
		name := r.order[i]
		if r.disabled[name] {
			continue
		}
		r.logger.Info("stopping module", zap.String("name", name))
		if err := r.plugins[name].Stop(); err != nil {
			r.logger.Error("failed to stop module", zap.String("name", name), zap.Error(err))
		}
	}
}

// Get returns a module by name.
func (r *Registry) Get(name string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plugins[name]
	return p, ok
}

// All returns all registered modules in registration order.
func (r *Registry) All() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Plugin, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.plugins[name])
	}
	return result
}

// AllRoutes returns the REST routes of every enabled module that
// provides them, keyed by module name.
func (r *Registry) AllRoutes() map[string][]Route {
	r.mu.RLock()
	defer r.mu.RUnlock()

	routes := make(map[string][]Route)
	for _, name := range r.order {
		if r.disabled[name] {
			continue
		}
		hp, ok := r.plugins[name].(HTTPProvider)
		if !ok {
			continue
		}
		if pr := hp.Routes(); len(pr) > 0 {
			routes[name] = pr
		}
	}
	return routes
}

// RawHandlers returns the root-mux handlers of every enabled module
// that provides them. The first module to claim a pattern wins.
func (r *Registry) RawHandlers() map[string]http.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handlers := make(map[string]http.Handler)
	for _, name := range r.order {
		if r.disabled[name] {
			continue
		}
		rp, ok := r.plugins[name].(RawHandlerProvider)
		if !ok {
			continue
		}
		for pattern, h := range rp.RawHandlers() {
			if _, taken := handlers[pattern]; taken {
				r.logger.Warn("raw handler pattern already claimed",
					zap.String("module", name), zap.String("pattern", pattern))
				continue
			}
			handlers[pattern] = h
		}
	}
	return handlers
}

// Health reports the status of every enabled module that implements
// HealthChecker.
func (r *Registry) Health(ctx context.Context) map[string]HealthStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	statuses := make(map[string]HealthStatus)
	for _, name := range r.order {
		if r.disabled[name] {
			continue
		}
		if hc, ok := r.plugins[name].(HealthChecker); ok {
			statuses[name] = hc.Health(ctx)
		}
	}
	return statuses
}
