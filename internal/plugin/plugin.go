// Package plugin defines the module contract and the registry that
// drives module lifecycle: register, init with scoped config, start,
// stop in reverse order.
package plugin

import (
	"context"
	"net/http"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Route represents an HTTP route exposed by a module under the
// versioned API prefix.
type Route struct {
	Method  string
	Path    string
	Handler http.HandlerFunc
}

// Plugin defines the interface that all cuppa modules must implement.
type Plugin interface {
	// Name returns the module's unique identifier (e.g., "catalog", "advisor").
	Name() string

	// Version returns the module's semantic version.
	Version() string

	// Init initializes the module with its scoped configuration and logger.
	Init(config *viper.Viper, logger *zap.Logger) error

	// Start begins the module's background operations.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the module.
	Stop() error
}

// HTTPProvider is implemented by modules that expose REST API routes.
type HTTPProvider interface {
	Routes() []Route
}

// RawHandlerProvider is implemented by modules that mount handlers on
// the server root, outside the versioned API prefix. Speakers of
// non-REST protocols use this.
type RawHandlerProvider interface {
	RawHandlers() map[string]http.Handler
}

// HealthChecker is implemented by modules that report their health status.
type HealthChecker interface {
	Health(ctx context.Context) HealthStatus
}

// HealthStatus reports one module's health.
type HealthStatus struct {
	Healthy bool   `json:"healthy"`
	Detail  string `json:"detail,omitempty"`
}
