package pendulum

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig invalid: %v", err)
	}
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
count: 6
speed: 2.5
seed: 99
background: "#1e1e28"
clear_each_frame: true
policy:
  rotation_speed: [10, 20]
  initial_angle: {min: 45, max: 90}
overrides:
  - node: 2
    setting: width
    value: 12
  - node: 1
    setting: clockwise
    flag: true
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Count != 6 || cfg.Seed != 99 || !cfg.ClearEachFrame {
		t.Errorf("cfg = %+v", cfg)
	}
	assertNear(t, "speed", cfg.Speed, 2.5)
	if cfg.Policy.RotationSpeed != (Range{10, 20}) {
		t.Errorf("rotation_speed = %v", cfg.Policy.RotationSpeed)
	}
	if cfg.Policy.InitialAngle != (Range{45, 90}) {
		t.Errorf("initial_angle = %v", cfg.Policy.InitialAngle)
	}
	// Keys left out keep their defaults.
	if cfg.Policy.Length != DefaultPolicy().Length {
		t.Errorf("length policy = %+v, want default", cfg.Policy.Length)
	}
	if cfg.Width != 1280 || cfg.Height != 720 {
		t.Errorf("size = %dx%d, want default", cfg.Width, cfg.Height)
	}
	if cfg.BackgroundColor() != (RGB{0x1e, 0x1e, 0x28}) {
		t.Errorf("background = %v", cfg.BackgroundColor())
	}
	if len(cfg.Overrides) != 2 || cfg.Overrides[0].Setting != SettingWidth || !cfg.Overrides[1].Flag {
		t.Errorf("overrides = %+v", cfg.Overrides)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{"negative count", "count: -1", "count"},
		{"negative speed", "speed: -2", "speed"},
		{"bad background", `background: "nope"`, "background"},
		{"bad range", "policy:\n  rotation_speed: [1, 2, 3]", "exactly 2"},
		{"reversed range", "policy:\n  initial_angle: [90, 10]", "initial_angle"},
		{"unknown setting", "overrides:\n  - node: 1\n    setting: colour", "unknown setting"},
		{"bad chance", "policy:\n  clockwise: 2", "clockwise"},
		{"bad size", "width: 0", "size"},
		{"not yaml", "count: [", "parse yaml"},
	}
	for _, tt := range tests {
		_, err := ParseConfig([]byte(tt.yaml))
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.msg) {
			t.Errorf("%s: error %q should contain %q", tt.name, err, tt.msg)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte("count: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Count != 3 {
		t.Errorf("Count = %d, want 3", cfg.Count)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file: expected error")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#fff", RGB{255, 255, 255}},
		{"#000000", RGB{0, 0, 0}},
		{"#ff8000", RGB{255, 128, 0}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseColor("red"); err == nil {
		t.Error("named color: expected error")
	}
	if got := (RGB{255, 128, 0}).Hex(); got != "#ff8000" {
		t.Errorf("Hex = %q, want #ff8000", got)
	}
}
