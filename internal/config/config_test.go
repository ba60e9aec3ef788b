package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/mixpaint/internal/canvas"
	"github.com/example/mixpaint/internal/pigment"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
export_dir = /tmp/paintings

[canvas]
buffer_size = 2048
logical_size = 512
window_width = 800
window_height = 600
brush_step = 10
color = #0000ff

[notify]
export = true
copy = false
pick = true

[theme.my_custom_theme]
Background = #111111
Foreground = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.ExportDir != "/tmp/paintings" {
		t.Errorf("Expected export_dir '/tmp/paintings', got '%s'", cfg.ExportDir)
	}
	want := Canvas{BufferSize: 2048, LogicalSize: 512, WindowWidth: 800, WindowHeight: 600, BrushStep: 10, Color: pigment.Pack(0, 0, 255, 255)}
	if cfg.Canvas != want {
		t.Errorf("canvas = %+v, want %+v", cfg.Canvas, want)
	}
	if !cfg.Notify.Export || cfg.Notify.Copy || !cfg.Notify.Pick {
		t.Errorf("notify = %+v", cfg.Notify)
	}
	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if th.Background.R != 0x11 || th.Background.G != 0x11 || th.Background.B != 0x11 {
		t.Errorf("Unexpected Background color: %+v", th.Background)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if n := len(cfg.EngineOptions()); n == 0 {
		t.Errorf("no engine options")
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"[canvas]\nbuffer_size = big\n",
		"[canvas]\ncolor = nope\n",
		"[notify]\nexport = maybe\n",
		"[theme.x]\nBackground = #12\n",
	} {
		if _, err := Parse(strings.NewReader(in)); err == nil {
			t.Errorf("Parse(%q) expected error", in)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Canvas)
	}{
		{"logical not smaller", func(c *Canvas) { c.LogicalSize = c.BufferSize }},
		{"zero buffer", func(c *Canvas) { c.BufferSize = 0 }},
		{"zero window", func(c *Canvas) { c.WindowHeight = 0 }},
		{"negative step", func(c *Canvas) { c.BrushStep = -1 }},
	}
	if err := New().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	for _, tt := range tests {
		cfg := New()
		tt.mutate(&cfg.Canvas)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
export_dir = /home/user/art

[canvas]
logical_size = 128
color = #336699

[notify]
export = true
copy = true
pick = false

[theme.custom]
Name = custom
Background = #000000
Foreground = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}
	cfg2, err := Parse(strings.NewReader(cfg.String()))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}
	if cfg.Theme != cfg2.Theme {
		t.Errorf("Theme mismatch: %q vs %q", cfg.Theme, cfg2.Theme)
	}
	if cfg.ExportDir != cfg2.ExportDir {
		t.Errorf("ExportDir mismatch: %q vs %q", cfg.ExportDir, cfg2.ExportDir)
	}
	if cfg.Canvas != cfg2.Canvas {
		t.Errorf("Canvas mismatch: %+v vs %+v", cfg.Canvas, cfg2.Canvas)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}
	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestLoaderLookup(t *testing.T) {
	home := t.TempDir()
	l := &Loader{Version: "v1.0.0", ConfigHome: home}
	if p := l.GetConfigPath(); p != "" {
		t.Fatalf("unexpected config path %q", p)
	}
	cfg, err := l.Load()
	if err != nil || cfg.Canvas.BufferSize != 1024 {
		t.Fatalf("Load defaults: %+v %v", cfg, err)
	}

	path := filepath.Join(home, "mixpaint", "config.rc")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[canvas]\nbrush_step = 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := l.GetConfigPath(); got != path {
		t.Fatalf("GetConfigPath = %q, want %q", got, path)
	}
	cfg, err = l.Load()
	if err != nil || cfg.Canvas.BrushStep != 20 {
		t.Fatalf("Load: %+v %v", cfg, err)
	}
	if l.DefaultPath() != path {
		t.Fatalf("DefaultPath = %q", l.DefaultPath())
	}

	if err := os.WriteFile(path, []byte("[canvas]\nlogical_size = 4096\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Load(); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestEngineKeepsConfiguredColor(t *testing.T) {
	cfg, err := Parse(strings.NewReader("[canvas]\ncolor = #3366ff\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	e := canvas.New(cfg.EngineOptions()...)
	if got, want := e.BaseColor(), pigment.Pack(0x33, 0x66, 0xff, 255); got != want {
		t.Fatalf("engine base color = %v, want %v", got, want)
	}
}
