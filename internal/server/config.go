package server

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig loads the server configuration. An explicit path must
// exist; with no path, cuppa.yaml is searched in the working directory
// and /etc/cuppa, and defaults apply when nothing is found. Environment
// variables prefixed with CUPPA_ override file values, with dots
// replaced by underscores (CUPPA_SERVER_PORT for server.port).
func LoadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CUPPA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return v, nil
	}

	v.SetConfigName("cuppa")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/cuppa")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.rate_limit", 0)
	v.SetDefault("server.rate_burst", 20)
	v.SetDefault("catalog.path", "data/coffee.csv")
	v.SetDefault("modules.catalog.watch", false)
	v.SetDefault("modules.catalog.debounce", "500ms")
	v.SetDefault("modules.advisor.timeout", "15s")
}
