package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/example/mixpaint/internal/canvas"
	"github.com/example/mixpaint/internal/render"
)

// pipeName selects stdin or stdout in place of a file.
const pipeName = "-"

type renderCmd struct {
	*root
	fs         *flag.FlagSet
	scriptPath string
	output     string
	format     string
	window     string
	thumb      int

	// isTerminal is swapped in tests.
	isTerminal func(w io.Writer) bool
}

func parseRenderCmd(args []string, r *root) (*renderCmd, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	c := &renderCmd{root: r, fs: fs, isTerminal: writerIsTerminal}
	fs.StringVar(&c.scriptPath, "script", "", "stroke script to replay (- for stdin)")
	fs.StringVar(&c.output, "o", "", "output image path (- for stdout)")
	fs.StringVar(&c.format, "format", "", "image format when writing to stdout ("+formatList()+")")
	fs.StringVar(&c.window, "window", "", "window size WxH the script coordinates refer to")
	fs.IntVar(&c.thumb, "thumb", 0, "scale the result to fit within N×N pixels")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	if c.scriptPath == "" {
		return nil, &UsageError{of: c, reason: "-script is required"}
	}
	if c.output == "" {
		return nil, &UsageError{of: c, reason: "-o is required"}
	}
	if c.scriptPath == pipeName && c.output == pipeName {
		return nil, errors.New("stdin and stdout cannot both be used")
	}
	if c.thumb < 0 {
		return nil, fmt.Errorf("invalid -thumb %d", c.thumb)
	}
	return c, nil
}

func (c *renderCmd) FlagSet() *flag.FlagSet { return c.fs }

func formatList() string {
	names := make([]string, 0, len(render.Formats()))
	for _, f := range render.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// parseWindowSize reads WxH.
func parseWindowSize(s string) (image.Point, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return image.Point{}, fmt.Errorf("window size %q: want WxH", s)
	}
	x, err := strconv.Atoi(w)
	if err != nil {
		return image.Point{}, fmt.Errorf("window size %q: %w", s, err)
	}
	y, err := strconv.Atoi(h)
	if err != nil {
		return image.Point{}, fmt.Errorf("window size %q: %w", s, err)
	}
	if x < 1 || y < 1 {
		return image.Point{}, fmt.Errorf("window size %q: must be positive", s)
	}
	return image.Pt(x, y), nil
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// paint replays the script on a fresh engine and returns the image to write.
func (c *renderCmd) paint() (image.Image, error) {
	s, err := readScript(c.scriptPath)
	if err != nil {
		return nil, err
	}
	opts := c.engineOptions()
	if c.window != "" {
		size, err := parseWindowSize(c.window)
		if err != nil {
			return nil, err
		}
		opts = append(opts, canvas.WithWindowSize(size.X, size.Y))
	}
	e := canvas.New(opts...)
	s.Replay(e)
	var img image.Image = e.Surface()
	if c.thumb > 0 {
		img = render.Thumbnail(img, c.thumb)
	}
	return img, nil
}

func (c *renderCmd) Run() error {
	img, err := c.paint()
	if err != nil {
		return err
	}
	if c.output != pipeName {
		if err := render.Save(c.output, img); err != nil {
			return err
		}
		fmt.Fprintf(c.stderr, "wrote %s\n", c.output)
		c.notifier.Export(c.output, img)
		return nil
	}

	if c.isTerminal(c.stdout) {
		return errors.New("`-` should be used with a pipe for stdout")
	}
	f := render.FormatPNG
	if c.format != "" {
		if f, err = render.ParseFormat(c.format); err != nil {
			return err
		}
	}
	return render.Encode(c.stdout, img, f)
}
