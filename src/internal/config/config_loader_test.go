package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("ast:\n  max_depth: 64\n"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.AST.MaxDepth != 64 {
		t.Errorf("MaxDepth = %d, want 64", cfg.AST.MaxDepth)
	}
	if !cfg.AST.LogUnknown {
		t.Errorf("LogUnknown should keep its default")
	}
	if cfg.Spinner.Interval() != 100*time.Millisecond {
		t.Errorf("Interval = %v, want 100ms", cfg.Spinner.Interval())
	}
	if len(cfg.Spinner.Frames) != 4 {
		t.Errorf("Frames = %v, want defaults", cfg.Spinner.Frames)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	data := `
ast:
  max_depth: 0
  log_unknown: false
spinner:
  interval_ms: 250
  frames: [".", "o", "O"]
log:
  dir: /tmp/solast-logs
`
	cfg, err := ParseConfig([]byte(data))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.AST.LogUnknown {
		t.Errorf("LogUnknown = true, want false")
	}
	if got := strings.Join(cfg.Spinner.Frames, ""); got != ".oO" {
		t.Errorf("Frames = %q", got)
	}
	if cfg.Spinner.Interval() != 250*time.Millisecond {
		t.Errorf("Interval = %v", cfg.Spinner.Interval())
	}
	if cfg.Log.Dir != "/tmp/solast-logs" {
		t.Errorf("Log.Dir = %q", cfg.Log.Dir)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	cases := map[string]string{
		"negative depth":   "ast:\n  max_depth: -1\n",
		"zero interval":    "spinner:\n  interval_ms: 0\n",
		"empty frame":      "spinner:\n  frames: [\"a\", \"\"]\n",
		"malformed yaml":   "ast: [",
		"wrong field type": "ast:\n  max_depth: deep\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(data)); err == nil {
				t.Fatalf("expected error for %q", data)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("ast:\n  max_depth: 12\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.AST.MaxDepth != 12 {
		t.Errorf("MaxDepth = %d, want 12", cfg.AST.MaxDepth)
	}

	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadConfigSearchPath(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "src", "config"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "src", "config", "settings.yaml"), []byte("ast:\n  max_depth: 7\nlog:\n  dir: out\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if got := findConfigFile(); got != "src/config/settings.yaml" {
		t.Fatalf("findConfigFile = %q", got)
	}
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.AST.MaxDepth != 7 || cfg.Log.Dir != "out" {
		t.Errorf("cfg = %+v", cfg)
	}
	again, err := LoadConfig()
	if err != nil || again != cfg {
		t.Errorf("LoadConfig should return the cached config, got %p (%v)", again, err)
	}
}
