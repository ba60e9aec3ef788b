package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/example/mixpaint/internal/appstate"
	"github.com/example/mixpaint/internal/script"
)

type paintCmd struct {
	*root
	fs         *flag.FlagSet
	scriptPath string
	output     string
	exportDir  string
	copyPicks  bool
}

func parsePaintCmd(args []string, r *root) (*paintCmd, error) {
	fs := flag.NewFlagSet("paint", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	p := &paintCmd{root: r, fs: fs}
	fs.StringVar(&p.scriptPath, "script", "", "stroke script to replay before the window opens")
	fs.StringVar(&p.output, "o", "", "export path used by Ctrl+S (extension selects the format)")
	fs.StringVar(&p.exportDir, "dir", r.config.ExportDir, "directory for timestamped exports when -o is not set")
	fs.BoolVar(&p.copyPicks, "copy-picks", false, "copy colors picked with the eyedropper to the clipboard")
	fs.Usage = usageFunc(p)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: p}
	}
	return p, nil
}

func (p *paintCmd) FlagSet() *flag.FlagSet { return p.fs }

func (p *paintCmd) options() ([]appstate.Option, error) {
	opts := []appstate.Option{
		appstate.WithTheme(p.activeTheme),
		appstate.WithEngineOptions(p.engineOptions()...),
		appstate.WithNotifier(p.notifier),
		appstate.WithExportDir(p.exportDir),
		appstate.WithOutput(p.output),
		appstate.WithCopyPicks(p.copyPicks),
	}
	if p.scriptPath != "" {
		s, err := readScript(p.scriptPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, appstate.WithScript(s))
	}
	return opts, nil
}

func (p *paintCmd) Run() error {
	opts, err := p.options()
	if err != nil {
		return err
	}
	appstate.New(opts...).Run()
	return nil
}

// readScript parses a stroke script from path, or stdin for "-".
func readScript(path string) (script.Script, error) {
	if path == pipeName {
		s, err := script.Parse(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return s, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := script.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
