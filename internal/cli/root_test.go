package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/buildinfo"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/errors"
)

// isolate points the config and cache directories at temporary locations.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	want := []string{"generate", "measure", "preview", "browse", "styles", "serve", "cache", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := runCLI(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, buildinfo.Version) {
		t.Errorf("--version output %q should contain %q", out, buildinfo.Version)
	}
}

func TestGenerateWritesArtifacts(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	base := filepath.Join(dir, "board")

	_, err := runCLI(t, "generate", "--seed", "5", "--style", "voronoi",
		"--resolution", "60", "-f", "svg,json", "-o", base)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(svg, []byte("<svg")) {
		t.Errorf("svg output starts with %q", svg[:min(20, len(svg))])
	}

	data, err := os.ReadFile(base + ".json")
	if err != nil {
		t.Fatal(err)
	}
	var report struct {
		Style string  `json:"style"`
		Seed  *uint64 `json:"seed"`
	}
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatal(err)
	}
	if report.Style != "voronoi" || report.Seed == nil || *report.Seed != 5 {
		t.Errorf("report = %+v", report)
	}
}

func TestGenerateCount(t *testing.T) {
	isolate(t)
	base := filepath.Join(t.TempDir(), "run")

	if _, err := runCLI(t, "generate", "--seed", "10", "-n", "3",
		"--resolution", "40", "-f", "json", "-o", base, "--no-cache"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, seed := range []string{"10", "11", "12"} {
		if _, err := os.Stat(base + "-" + seed + ".json"); err != nil {
			t.Errorf("missing board for seed %s: %v", seed, err)
		}
	}
}

func TestGenerateThenMeasure(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	boardPath := filepath.Join(dir, "b.json")

	if _, err := runCLI(t, "generate", "--seed", "3", "--resolution", "50",
		"-f", "json", "-o", boardPath); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := runCLI(t, "measure", boardPath, "--resolution", "50",
		"-f", "png", "-o", filepath.Join(dir, "m")); err != nil {
		t.Fatalf("measure: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "m.png")); err != nil {
		t.Errorf("measure did not write the png: %v", err)
	}
}

func TestGenerateThenMeasureImage(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	base := filepath.Join(dir, "b")

	if _, err := runCLI(t, "generate", "--seed", "4", "--resolution", "50",
		"-f", "png", "-o", base, "--no-cache"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := runCLI(t, "measure", base+".png", "--resolution", "50"); err != nil {
		t.Fatalf("measure png: %v", err)
	}

	_, err := runCLI(t, "measure", base+".png", "-f", "svg")
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("err = %v, want UNSUPPORTED for rendering an image", err)
	}
}

func TestCommandErrors(t *testing.T) {
	isolate(t)
	missing := filepath.Join(t.TempDir(), "nope.json")
	missingPNG := filepath.Join(t.TempDir(), "nope.png")

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"bad format", []string{"generate", "-f", "gif"}, errors.ErrCodeInvalidFormat},
		{"bad style", []string{"generate", "--style", "cubist", "--no-cache"}, errors.ErrCodeInvalidStyle},
		{"bad count", []string{"generate", "-n", "0"}, errors.ErrCodeInvalidInput},
		{"missing board", []string{"measure", missing}, errors.ErrCodeFileNotFound},
		{"missing config", []string{"--config", missing, "styles"}, errors.ErrCodeFileNotFound},
		{"preview width", []string{"preview", "--width", "1"}, errors.ErrCodeInvalidInput},
		{"preview width too large", []string{"preview", "--width", "401"}, errors.ErrCodeInvalidInput},
		{"browse width", []string{"browse", "--width", "1"}, errors.ErrCodeInvalidInput},
		{"browse width too large", []string{"browse", "-w", "1000"}, errors.ErrCodeInvalidInput},
		{"missing image", []string{"measure", missingPNG}, errors.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestConfigFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	cfg := `
[sampler]
resolution = 30

[cache]
backend = "none"
`
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "b.json")
	if _, err := runCLI(t, "--config", cfgPath, "generate", "--seed", "1", "-f", "json", "-o", out); err != nil {
		t.Fatalf("generate: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"sx": 30`)) {
		t.Error("configured resolution should be used for measurement")
	}
}

func TestConfigFileRejectsUnknownKeys(t *testing.T) {
	isolate(t)
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("[sampler]\nresolutoin = 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := runCLI(t, "--config", cfgPath, "styles")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}

func TestCompletion(t *testing.T) {
	isolate(t)
	out, err := runCLI(t, "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "__start_mosaic") {
		t.Error("bash script should define the mosaic completion entry point")
	}

	out, err = runCLI(t, "__complete", "generate", "--style", "wav")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "wavy-stripes") || !strings.Contains(out, "wave-rings") {
		t.Errorf("style completion = %q", out)
	}

	if _, err := runCLI(t, "completion", "tcsh"); err == nil {
		t.Error("unsupported shells should be rejected")
	}
}
