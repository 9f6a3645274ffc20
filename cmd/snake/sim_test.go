package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// writeDefaultConfig pins the config so the user's ~/.snake file cannot leak in.
func writeDefaultConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, config.DefaultYAML(), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute(%v) error = %v", args, err)
	}
	return out.String()
}

func TestSimDeterministic(t *testing.T) {
	cfgPath := writeDefaultConfig(t)
	args := []string{"sim", "--config", cfgPath, "--seed", "7", "--ticks", "40", "--script", "3:down,9:left,15:up"}

	first := execute(t, args...)
	second := execute(t, args...)
	if first != second {
		t.Errorf("sim output differs between runs:\n%s\n---\n%s", first, second)
	}

	var result struct {
		Seed     int64 `yaml:"seed"`
		Snapshot struct {
			Tick  uint64 `yaml:"tick"`
			State string `yaml:"state"`
		} `yaml:"snapshot"`
	}
	if err := yaml.Unmarshal([]byte(first), &result); err != nil {
		t.Fatalf("Unmarshal() error = %v\n%s", err, first)
	}
	if result.Seed != 7 {
		t.Errorf("seed = %d, expected 7", result.Seed)
	}
	if result.Snapshot.Tick != 40 {
		t.Errorf("tick = %d, expected 40", result.Snapshot.Tick)
	}
	if result.Snapshot.State != "playing" {
		t.Errorf("state = %q, expected playing", result.Snapshot.State)
	}
}

func TestConfigCommand(t *testing.T) {
	cfgPath := writeDefaultConfig(t)
	out := execute(t, "config", "--config", cfgPath)

	if !strings.HasPrefix(out, "# source: "+cfgPath) {
		t.Errorf("output should start with the source line, got %q", out)
	}
	if !strings.Contains(out, "initial_length: 5") {
		t.Errorf("output missing initial_length:\n%s", out)
	}
}
