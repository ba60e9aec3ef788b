// Package script replays recorded pointer and tool input against a canvas
// engine so strokes can be rendered without a window.
//
// A script has one command per line. Blank lines and text after '#' are
// ignored. Coordinates are window pixels.
//
//	window 512 512
//	brush paint|blend|eyedropper
//	size small|medium|large
//	color red | color #3366ff | color hsv 240 1 1
//	down 10 10 [primary|secondary]
//	move 40 12
//	up
//	zoom 2 256 256
//	pan 10 -4
//	reset
package script

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/example/mixpaint/internal/canvas"
	"github.com/example/mixpaint/internal/pigment"
)

// Op names a script command.
type Op string

const (
	OpWindow Op = "window"
	OpBrush  Op = "brush"
	OpSize   Op = "size"
	OpColor  Op = "color"
	OpDown   Op = "down"
	OpMove   Op = "move"
	OpUp     Op = "up"
	OpZoom   Op = "zoom"
	OpPan    Op = "pan"
	OpReset  Op = "reset"
)

// Command is one parsed line.
type Command struct {
	Op     Op
	Line   int
	Point  image.Point
	Delta  int
	Button canvas.Button
	Brush  canvas.Brush
	Size   canvas.BrushSize
	Color  pigment.Color
	HSV    *pigment.HSV
}

// Script is an ordered list of commands.
type Script []Command

// Parse reads a script.
func Parse(r io.Reader) (Script, error) {
	var out Script
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := stripComment(strings.Fields(sc.Text()))
		if len(fields) == 0 {
			continue
		}
		cmd, err := parseCommand(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		cmd.Line = line
		out = append(out, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return out, nil
}

// stripComment drops everything from the first field starting with '#',
// except a hex value given as the color argument.
func stripComment(fields []string) []string {
	for i, f := range fields {
		if !strings.HasPrefix(f, "#") {
			continue
		}
		if i == 1 && len(f) > 1 && strings.EqualFold(fields[0], string(OpColor)) {
			continue
		}
		return fields[:i]
	}
	return fields
}

func parseCommand(fields []string) (Command, error) {
	op := Op(strings.ToLower(fields[0]))
	args := fields[1:]
	cmd := Command{Op: op}
	switch op {
	case OpWindow, OpMove, OpPan:
		v, err := expectInts(args, 2, op)
		if err != nil {
			return cmd, err
		}
		cmd.Point = image.Pt(v[0], v[1])
	case OpDown:
		if len(args) == 3 {
			switch strings.ToLower(args[2]) {
			case "primary", "left":
				cmd.Button = canvas.ButtonPrimary
			case "secondary", "right":
				cmd.Button = canvas.ButtonSecondary
			default:
				return cmd, fmt.Errorf("unknown button %q", args[2])
			}
			args = args[:2]
		}
		v, err := expectInts(args, 2, op)
		if err != nil {
			return cmd, err
		}
		cmd.Point = image.Pt(v[0], v[1])
	case OpZoom:
		v, err := expectInts(args, 3, op)
		if err != nil {
			return cmd, err
		}
		cmd.Delta = v[0]
		cmd.Point = image.Pt(v[1], v[2])
	case OpUp, OpReset:
		if len(args) != 0 {
			return cmd, fmt.Errorf("%s takes no arguments", op)
		}
	case OpBrush:
		if len(args) != 1 {
			return cmd, fmt.Errorf("brush requires a name")
		}
		b, err := canvas.ParseBrush(args[0])
		if err != nil {
			return cmd, err
		}
		cmd.Brush = b
	case OpSize:
		if len(args) != 1 {
			return cmd, fmt.Errorf("size requires a name")
		}
		s, err := canvas.ParseSize(args[0])
		if err != nil {
			return cmd, err
		}
		cmd.Size = s
	case OpColor:
		return parseColor(cmd, args)
	default:
		return cmd, fmt.Errorf("unknown command %q", fields[0])
	}
	return cmd, nil
}

func parseColor(cmd Command, args []string) (Command, error) {
	if len(args) == 4 && strings.EqualFold(args[0], "hsv") {
		var v [3]float64
		for i, raw := range args[1:] {
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return cmd, fmt.Errorf("invalid number %q", raw)
			}
			v[i] = f
		}
		hsv := pigment.HSV{H: v[0], S: v[1], V: v[2]}.Normalize()
		cmd.HSV = &hsv
		cmd.Color = hsv.Color()
		return cmd, nil
	}
	if len(args) != 1 {
		return cmd, fmt.Errorf("color requires a name, #hex value or hsv H S V")
	}
	c, err := pigment.Parse(args[0])
	if err != nil {
		return cmd, err
	}
	cmd.Color = c
	return cmd, nil
}

func expectInts(args []string, n int, op Op) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires %d integer arguments", op, n)
	}
	vals := make([]int, n)
	for i, raw := range args {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", raw)
		}
		vals[i] = v
	}
	return vals, nil
}

// Apply feeds the command to the engine.
func (c Command) Apply(e *canvas.Engine) {
	switch c.Op {
	case OpWindow:
		e.Resize(c.Point.X, c.Point.Y)
	case OpBrush:
		e.SetBrush(c.Brush)
	case OpSize:
		e.SetSize(c.Size)
	case OpColor:
		if c.HSV != nil {
			e.SetColor(*c.HSV)
		} else {
			e.SetBaseColor(c.Color)
		}
	case OpDown:
		e.PointerDown(c.Point, c.Button)
	case OpMove:
		e.PointerMove(c.Point)
	case OpUp:
		e.PointerUp()
	case OpZoom:
		e.Zoom(c.Delta, c.Point)
	case OpPan:
		e.Pan(c.Point.X, c.Point.Y)
	case OpReset:
		e.Reset()
	}
}

// Replay applies every command in order, ends any gesture left open and
// flushes the engine.
func (s Script) Replay(e *canvas.Engine) {
	for _, c := range s {
		c.Apply(e)
	}
	if e.Stroking() || e.Panning() {
		e.PointerUp()
	}
	e.Flush()
}

