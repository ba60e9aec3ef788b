package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/mixpaint/internal/canvas"
	"github.com/example/mixpaint/internal/pigment"
	"github.com/example/mixpaint/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Export bool
	Copy   bool
	Pick   bool
}

// Canvas holds the engine geometry and starting paint color.
type Canvas struct {
	BufferSize   int
	LogicalSize  int
	WindowWidth  int
	WindowHeight int
	BrushStep    int
	Color        pigment.Color
}

// Config holds the application configuration.
type Config struct {
	Theme     string
	ExportDir string
	Canvas    Canvas
	Notify    Notify
	Themes    map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme: "", // Empty allows fallback to env and the built-in theme
		Canvas: Canvas{
			BufferSize:   canvas.DefaultBufferSize,
			LogicalSize:  canvas.DefaultLogicalSize,
			WindowWidth:  canvas.DefaultWindowSize,
			WindowHeight: canvas.DefaultWindowSize,
			BrushStep:    canvas.DefaultBrushStep,
			Color:        pigment.Pack(255, 0, 0, 255),
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// Validate checks the canvas geometry.
func (c *Config) Validate() error {
	cv := c.Canvas
	switch {
	case cv.BufferSize < 1:
		return fmt.Errorf("canvas buffer_size must be positive, got %d", cv.BufferSize)
	case cv.LogicalSize < 1:
		return fmt.Errorf("canvas logical_size must be positive, got %d", cv.LogicalSize)
	case cv.LogicalSize >= cv.BufferSize:
		return fmt.Errorf("canvas logical_size (%d) must be smaller than buffer_size (%d)", cv.LogicalSize, cv.BufferSize)
	case cv.WindowWidth < 1 || cv.WindowHeight < 1:
		return fmt.Errorf("canvas window size must be positive, got %dx%d", cv.WindowWidth, cv.WindowHeight)
	case cv.BrushStep < 1:
		return fmt.Errorf("canvas brush_step must be positive, got %d", cv.BrushStep)
	}
	return nil
}

// EngineOptions converts the canvas section into engine options.
func (c *Config) EngineOptions() []canvas.Option {
	return []canvas.Option{
		canvas.WithBufferSize(c.Canvas.BufferSize),
		canvas.WithLogicalSize(c.Canvas.LogicalSize),
		canvas.WithWindowSize(c.Canvas.WindowWidth, c.Canvas.WindowHeight),
		canvas.WithBrushStep(c.Canvas.BrushStep),
		canvas.WithBaseColor(c.Canvas.Color),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.ExportDir != "" {
		fmt.Fprintf(&sb, "export_dir = %s\n", c.ExportDir)
	}
	sb.WriteString("\n")

	sb.WriteString("[canvas]\n")
	fmt.Fprintf(&sb, "buffer_size = %d\n", c.Canvas.BufferSize)
	fmt.Fprintf(&sb, "logical_size = %d\n", c.Canvas.LogicalSize)
	fmt.Fprintf(&sb, "window_width = %d\n", c.Canvas.WindowWidth)
	fmt.Fprintf(&sb, "window_height = %d\n", c.Canvas.WindowHeight)
	fmt.Fprintf(&sb, "brush_step = %d\n", c.Canvas.BrushStep)
	fmt.Fprintf(&sb, "color = %s\n", c.Canvas.Color.Hex())
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	fmt.Fprintf(&sb, "pick = %v\n", c.Notify.Pick)
	sb.WriteString("\n")

	// Sorted for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		c.Themes[name].WriteTo(&sb)
		sb.WriteString("\n")
	}

	return sb.String()
}
