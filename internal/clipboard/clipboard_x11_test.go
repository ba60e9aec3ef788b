//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"bytes"
	"testing"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var testAtoms = atomSet{clipboard: 100, targets: 101, utf8: 102, textPlain: 103, png: 104}

func TestSelectionTargets(t *testing.T) {
	typ, format, data, ok := selection{text: []byte("#3366ff")}.convert(testAtoms, testAtoms.targets)
	if !ok || typ != xproto.AtomAtom || format != 32 {
		t.Fatalf("targets reply = %v %v %v", typ, format, ok)
	}
	var got []xproto.Atom
	for i := 0; i+4 <= len(data); i += 4 {
		got = append(got, xproto.Atom(xgb.Get32(data[i:])))
	}
	want := []xproto.Atom{testAtoms.targets, testAtoms.utf8, xproto.AtomString, testAtoms.textPlain}
	if len(got) != len(want) {
		t.Fatalf("targets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("targets = %v, want %v", got, want)
		}
	}
}

func TestSelectionConvert(t *testing.T) {
	text := selection{text: []byte("#3366ff")}
	if typ, _, data, ok := text.convert(testAtoms, xproto.AtomString); !ok || typ != testAtoms.utf8 || string(data) != "#3366ff" {
		t.Fatalf("text as STRING = %v %q %v", typ, data, ok)
	}
	if _, _, _, ok := text.convert(testAtoms, testAtoms.png); ok {
		t.Fatalf("text selection served image/png")
	}

	png := selection{png: []byte{0x89, 'P', 'N', 'G'}}
	if typ, format, data, ok := png.convert(testAtoms, testAtoms.png); !ok || typ != testAtoms.png || format != 8 || !bytes.Equal(data, png.png) {
		t.Fatalf("png = %v %v %v %v", typ, format, data, ok)
	}
	if _, _, _, ok := png.convert(testAtoms, testAtoms.utf8); ok {
		t.Fatalf("image selection served text")
	}
	if _, _, _, ok := (selection{}).convert(testAtoms, 999); ok {
		t.Fatalf("unknown target served")
	}
}
