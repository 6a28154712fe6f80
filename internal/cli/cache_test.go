package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/cache"
)

func TestCacheClear(t *testing.T) {
	isolate(t)
	cacheHome := os.Getenv("XDG_CACHE_HOME")
	dir := filepath.Join(cacheHome, appName)

	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, k := range []string{"a", "b"} {
		if err := fc.Set(ctx, k, []byte(k), time.Hour); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := runCLI(t, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if _, hit, _ := fc.Get(ctx, "a"); hit {
		t.Error("entries should be gone after cache clear")
	}
}

func TestGenerateFillsCache(t *testing.T) {
	isolate(t)
	dir := filepath.Join(os.Getenv("XDG_CACHE_HOME"), appName)
	out := filepath.Join(t.TempDir(), "b.svg")

	if _, err := runCLI(t, "generate", "--seed", "2", "--resolution", "40", "-o", out); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("cache directory: %v", err)
	}
	if len(entries) == 0 {
		t.Error("generate should write measurements to the cache")
	}
}

func TestCacheClearDisabled(t *testing.T) {
	isolate(t)
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("[cache]\nbackend = \"none\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := runCLI(t, "--config", cfgPath, "cache", "clear"); err != nil {
		t.Errorf("cache clear with caching disabled: %v", err)
	}
}
