package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/config"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir(config.Default())
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
	if !strings.HasSuffix(dir, appName) {
		t.Errorf("cacheDir() = %q, should end with %q", dir, appName)
	}
}

func TestCacheDirXDG(t *testing.T) {
	customCache := "/tmp/custom-cache"
	t.Setenv("XDG_CACHE_HOME", customCache)

	dir, err := cacheDir(config.Default())
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	expected := filepath.Join(customCache, appName)
	if dir != expected {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, expected)
	}
}

func TestCacheDirConfigured(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/ignored")
	cfg := config.Default()
	cfg.Cache.Dir = "/srv/mosaic-cache"

	dir, err := cacheDir(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if dir != cfg.Cache.Dir {
		t.Errorf("cacheDir() = %q, want configured %q", dir, cfg.Cache.Dir)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name         string
		base         string
		seed         uint64
		format       string
		singleBoard  bool
		singleFormat bool
		want         string
	}{
		{"default name", "", 7, "svg", true, true, "board-7.svg"},
		{"default name many", "", 8, "png", false, false, "board-8.png"},
		{"exact file", "out/my.svg", 7, "svg", true, true, "out/my.svg"},
		{"one board many formats", "out/my.svg", 7, "json", true, false, "out/my.json"},
		{"many boards", "out/run", 9, "png", false, true, "out/run-9.png"},
		{"many boards with ext", "out/run.svg", 10, "svg", false, true, "out/run-10.svg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPath(tt.base, tt.seed, tt.format, tt.singleBoard, tt.singleFormat)
			if got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMeasuredBase(t *testing.T) {
	if got := measuredBase("boards/b.json"); got != "boards/b-measured" {
		t.Errorf("measuredBase() = %q", got)
	}
	if got := measuredBase("-"); got != "measured" {
		t.Errorf("measuredBase(-) = %q", got)
	}
}

func TestParseFormats(t *testing.T) {
	if got := parseFormats(""); len(got) != 1 || got[0] != "svg" {
		t.Errorf("parseFormats(\"\") = %v", got)
	}
	got := parseFormats("svg, png,json")
	want := []string{"svg", "png", "json"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("parseFormats() = %v, want %v", got, want)
	}
}
