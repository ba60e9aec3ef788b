package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/mixpaint/internal/canvas"
	"github.com/example/mixpaint/internal/config"
	"github.com/example/mixpaint/internal/notify"
	"github.com/example/mixpaint/internal/theme"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

type runnable interface{ Run() error }

type root struct {
	fs           *flag.FlagSet
	program      string
	stdout       io.Writer
	stderr       io.Writer
	config       *config.Config
	notifier     *notify.Notifier
	activeTheme  *theme.Theme
	configPath   string
	themeName    string
	logLevel     string
	exportAlerts bool
	copyAlerts   bool
	pickAlerts   bool
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func (r *root) subcommand(name string) *root {
	sub := *r
	sub.fs = nil
	sub.program = strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	return &sub
}

func newRoot() *root {
	r := &root{
		fs:      flag.NewFlagSet("mixpaint", flag.ContinueOnError),
		program: "mixpaint",
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	r.fs.SetOutput(r.stderr)
	r.fs.StringVar(&r.configPath, "config", os.Getenv("MIXPAINT_CONFIG"), "path to the rc configuration file")
	// Precedence: CLI > Env > Config > Default, resolved in Run.
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use (default, dark, high-contrast, or a file)")
	r.fs.StringVar(&r.logLevel, "log-level", "warn", "engine log level (debug, info, warn, error)")
	r.fs.BoolVar(&r.exportAlerts, "notify-export", false, "show a desktop notification after exporting")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", false, "show a desktop notification after copying to the clipboard")
	r.fs.BoolVar(&r.pickAlerts, "notify-pick", false, "show a desktop notification when the eyedropper picks a color")
	r.fs.Usage = usageFunc(r)
	return r
}

// loadConfig reads the rc file and lets explicitly set flags override it.
func (r *root) loadConfig() error {
	cfg, err := config.NewLoader(version, r.configPath).Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	r.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "notify-export":
			cfg.Notify.Export = r.exportAlerts
		case "notify-copy":
			cfg.Notify.Copy = r.copyAlerts
		case "notify-pick":
			cfg.Notify.Pick = r.pickAlerts
		}
	})
	r.config = cfg
	r.notifier = notify.FromConfig(cfg.Notify)
	return nil
}

func (r *root) resolveTheme() *theme.Theme {
	name := r.themeName
	if name == "" {
		name = os.Getenv("MIXPAINT_THEME")
	}
	if name == "" {
		name = r.config.Theme
	}
	loader := theme.NewLoader()
	loader.Extra = r.config.Themes
	t, err := loader.Load(name)
	if err != nil {
		if name != "" && name != "default" {
			fmt.Fprintf(r.stderr, "warning: failed to load theme '%s': %v. using default.\n", name, err)
		}
		return theme.Default()
	}
	return t
}

// engineOptions combines the [canvas] section with the active theme.
func (r *root) engineOptions() []canvas.Option {
	opts := []canvas.Option{canvas.WithBackground(r.activeTheme.CanvasBackground)}
	return append(opts, r.config.EngineOptions()...)
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if err := initLogger(r.logLevel, r.stderr); err != nil {
		return err
	}
	if err := r.loadConfig(); err != nil {
		return err
	}
	r.activeTheme = r.resolveTheme()

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "paint":
		cmd, err = parsePaintCmd(subArgs, r.subcommand(cmdName))
	case "render":
		cmd, err = parseRenderCmd(subArgs, r.subcommand(cmdName))
	case "colors":
		cmd, err = parseColorsCmd(subArgs, r.subcommand(cmdName))
	case "config":
		cmd, err = parseConfigCmd(subArgs, r.subcommand(cmdName))
	case "version":
		cmd = &versionCmd{root: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		switch {
		case errors.Is(err, flag.ErrHelp):
		case errors.As(err, &uerr):
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		default:
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
