package advisor

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/beanlog/cuppa/internal/catalog"
	"github.com/beanlog/cuppa/internal/testutil"
)

func TestModuleIdentity(t *testing.T) {
	m := NewModule(catalog.NewStore("coffee.csv", testutil.Logger()))
	if m.Name() != "advisor" {
		t.Errorf("Name() = %q, want advisor", m.Name())
	}
	if m.Version() == "" {
		t.Error("Version() is empty")
	}
}

func TestModuleInitTimeout(t *testing.T) {
	m := NewModule(catalog.NewStore("coffee.csv", testutil.Logger()))
	if err := m.Init(viper.New(), testutil.Logger()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if got := m.Engine().Timeout(); got != DefaultTimeout {
		t.Errorf("Timeout() = %v, want %v default", got, DefaultTimeout)
	}

	cfg := viper.New()
	cfg.Set("timeout", "2s")
	if err := m.Init(cfg, testutil.Logger()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if got := m.Engine().Timeout(); got != 2*time.Second {
		t.Errorf("Timeout() = %v, want 2s from config", got)
	}
}

func TestModuleLifecycle(t *testing.T) {
	m := NewModule(catalog.NewStore("coffee.csv", testutil.Logger()))
	if err := m.Init(viper.New(), testutil.Logger()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := m.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
}
