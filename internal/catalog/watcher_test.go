package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/beanlog/cuppa/internal/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatcherReloadsOnChange(t *testing.T) {
	path := writeCatalog(t, []byte(oneRow))
	store := NewStore(path, testutil.Logger())
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	w, err := NewWatcher(store, 50*time.Millisecond, testutil.Logger())
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	w.Start(context.Background())
	defer w.Stop()

	if err := os.WriteFile(path, []byte(twoRows), 0o644); err != nil {
		t.Fatalf("rewrite catalog: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		if snap, err := store.Snapshot(); err == nil && len(snap.Records) == 2 {
			return
		}
		select {
		case <-deadline:
			t.Fatal("watcher did not reload after file change")
		case <-time.After(20 * time.Millisecond):
		}
	}
}

func TestWatcherReplacedFile(t *testing.T) {
	// Atomic writers create a temp file and rename it over the target,
	// which a watch on the file itself would miss.
	path := writeCatalog(t, []byte(oneRow))
	store := NewStore(path, testutil.Logger())
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	w, err := NewWatcher(store, 50*time.Millisecond, testutil.Logger())
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	w.Start(context.Background())
	defer w.Stop()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(twoRows), 0o644); err != nil {
		t.Fatalf("write replacement: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("rename replacement: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		if snap, err := store.Snapshot(); err == nil && len(snap.Records) == 2 {
			return
		}
		select {
		case <-deadline:
			t.Fatal("watcher did not reload after rename")
		case <-time.After(20 * time.Millisecond):
		}
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "coffee.csv")
	if err := os.WriteFile(path, []byte(oneRow), 0o644); err != nil {
		t.Fatalf("write catalog fixture: %v", err)
	}
	store := NewStore(path, testutil.Logger())
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	w, err := NewWatcher(store, 20*time.Millisecond, testutil.Logger())
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	w.Start(context.Background())
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("unrelated"), 0o644); err != nil {
		t.Fatalf("write unrelated file: %v", err)
	}

	time.Sleep(200 * time.Millisecond)
	if got := store.Reloads(); got != 1 {
		t.Errorf("Reloads() = %d, want 1 (unrelated file must not trigger reload)", got)
	}
}

func TestWatcherStopTerminates(t *testing.T) {
	path := writeCatalog(t, []byte(oneRow))
	store := NewStore(path, testutil.Logger())

	w, err := NewWatcher(store, 50*time.Millisecond, testutil.Logger())
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	w.Start(context.Background())

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop() did not return")
	}
}
