package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	mclog "github.com/msto63/mcalc/foundation/core/log"
)

func TestWatcher_ReportsWritesDebounced(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "program.mcl")
	other := filepath.Join(dir, "other.mcl")
	if err := os.WriteFile(target, []byte("int a = 1;\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	w, err := New(target, Options{Logger: mclog.NewNop(), Debounce: 100 * time.Millisecond})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	changed := make(chan string, 10)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(path string) {
			calls.Add(1)
			changed <- path
		})
	}()

	// A burst of writes to the watched file plus noise on a sibling
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(target, []byte("int a = 2;\n"), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		if err := os.WriteFile(other, []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case path := <-changed:
		if path != w.Path() {
			t.Errorf("onChange path = %s, want %s", path, w.Path())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	// Let any trailing timer fire, the burst must have collapsed
	time.Sleep(300 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Errorf("onChange called %d times, want 1", n)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "program.mcl")
	if err := os.WriteFile(target, nil, 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	w, err := New(target, Options{Logger: mclog.NewNop(), Debounce: 20 * time.Millisecond})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(string) { calls.Add(1) })
	}()

	if err := os.WriteFile(filepath.Join(dir, "sibling.mcl"), []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if err := <-done; err != nil {
		t.Errorf("Run() error = %v", err)
	}
	if n := calls.Load(); n != 0 {
		t.Errorf("onChange called %d times for a sibling, want 0", n)
	}
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "program.mcl"), Options{Logger: mclog.NewNop()})
	if err == nil {
		t.Error("New() expected error for missing directory")
	}
}
