package theme

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseOverridesDefaults(t *testing.T) {
	th, err := Parse(strings.NewReader("Name: Test\n# comment\nbuttonactive: #112233\nCheckerDark: #01020380\nUnknown: #000000\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Name != "Test" {
		t.Errorf("Name = %q", th.Name)
	}
	if th.ButtonActive != (color.RGBA{0x11, 0x22, 0x33, 0xff}) {
		t.Errorf("ButtonActive = %v", th.ButtonActive)
	}
	if th.CheckerDark != (color.RGBA{1, 2, 3, 0x80}) {
		t.Errorf("CheckerDark = %v", th.CheckerDark)
	}
	if th.CanvasBackground != Default().CanvasBackground {
		t.Errorf("CanvasBackground lost its default")
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("Background: red\n")); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := Parse(strings.NewReader("Background: #1234\n")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestWriteToRoundTrip(t *testing.T) {
	th := Default()
	th.Name = "Copy"
	th.PickerText = color.RGBA{1, 2, 3, 4}
	var buf bytes.Buffer
	if _, err := th.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	got, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if *got != *th {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", got, th)
	}
}

func TestLoaderOrder(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mine.theme"), []byte("Name: Mine\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := &Loader{ConfigDir: dir, Extra: map[string]*Theme{"inline": {Name: "Inline"}}}
	for name, want := range map[string]string{"": "Default", "mine": "Mine", "inline": "Inline", "dark": "Dark"} {
		th, err := l.Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if th.Name != want {
			t.Errorf("Load(%q).Name = %q, want %q", name, th.Name, want)
		}
	}
	if _, err := l.Load("missing"); err == nil {
		t.Fatalf("expected error for missing theme")
	}
}

func TestAvailable(t *testing.T) {
	got := strings.Join(Available(), ",")
	if got != "dark,high-contrast" {
		t.Fatalf("Available = %s", got)
	}
}
