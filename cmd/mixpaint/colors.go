package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/example/mixpaint/internal/pigment"
)

type colorsCmd struct {
	*root
	fs     *flag.FlagSet
	filter string
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	cmd := &colorsCmd{root: r, fs: fs}
	fs.StringVar(&cmd.filter, "match", "", "only list names containing this text")
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) FlagSet() *flag.FlagSet { return c.fs }

func (c *colorsCmd) Run() error {
	names := make([]string, 0, len(colornames.Map))
	for name := range colornames.Map {
		if strings.Contains(name, strings.ToLower(c.filter)) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		fmt.Fprintln(c.stdout, "no matching colors")
		return nil
	}
	sort.Strings(names)
	base := c.config.Canvas.Color
	fmt.Fprintln(c.stdout, "named colors (* marks the configured paint color):")
	for _, name := range names {
		col := pigment.FromColor(colornames.Map[name])
		marker := " "
		if col == base {
			marker = "*"
		}
		r, g, b, _ := col.Channels()
		block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", r, g, b)
		fmt.Fprintf(c.stdout, "%s %-20s %s %s\n", marker, name, col.Hex(), block)
	}
	return nil
}
