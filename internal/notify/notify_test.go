package notify

import (
	"image"
	"strings"
	"testing"

	"github.com/example/mixpaint/internal/config"
	"github.com/example/mixpaint/internal/pigment"
	"github.com/example/mixpaint/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
}

func recorder(n *Notifier) *[]sent {
	var out []sent
	n.send = func(title, body string, opts platform.Options) error {
		out = append(out, sent{title, body, opts})
		return nil
	}
	return &out
}

func TestDisabledEventsAreSilent(t *testing.T) {
	n := New(DefaultPreferences())
	got := recorder(n)
	n.Copy("canvas")
	n.Pick(pigment.Pack(1, 2, 3, 255))
	n.Export("out.png", nil)
	if len(*got) != 0 {
		t.Fatalf("sent %d notifications while disabled", len(*got))
	}

	var nilNotifier *Notifier
	nilNotifier.Pick(0)
	if nilNotifier.Enabled(EventPick) {
		t.Fatalf("nil notifier reports enabled")
	}
}

func TestPickAndCopy(t *testing.T) {
	n := New(DefaultPreferences())
	got := recorder(n)
	n.Enable(EventPick, true)
	n.Enable(EventCopy, true)

	n.Pick(pigment.Pack(0, 128, 0, 255))
	n.Copy("")
	if len(*got) != 2 {
		t.Fatalf("sent %d notifications, want 2", len(*got))
	}
	if (*got)[0].body != "Picked #008000" {
		t.Errorf("pick body = %q", (*got)[0].body)
	}
	if (*got)[1].body != "Copied canvas to clipboard" {
		t.Errorf("copy body = %q", (*got)[1].body)
	}
	if (*got)[0].title != "MixPaint" || (*got)[0].opts.AppName != "MixPaint" {
		t.Errorf("title = %q app = %q", (*got)[0].title, (*got)[0].opts.AppName)
	}
}

func TestExportAttachesPreview(t *testing.T) {
	n := FromConfig(config.Notify{Export: true})
	got := recorder(n)
	n.Export("painting.png", image.NewRGBA(image.Rect(0, 0, 300, 200)))
	if len(*got) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(*got))
	}
	s := (*got)[0]
	if !strings.HasPrefix(s.body, "Exported ") || !strings.HasSuffix(s.body, "painting.png") {
		t.Errorf("body = %q", s.body)
	}
	if s.opts.IconPath == "" {
		t.Errorf("expected preview icon")
	}
}

func TestLoadPreferencesEnv(t *testing.T) {
	t.Setenv("MIXPAINT_NOTIFY_TITLE", "Studio")
	t.Setenv("MIXPAINT_NOTIFY_PICK_TEXT", "Color %s")
	p := LoadPreferences()
	if p.Title != "Studio" {
		t.Errorf("title = %q", p.Title)
	}
	n := New(p)
	if msg := n.Message(EventPick, "#FFFFFF"); msg != "Color #FFFFFF" {
		t.Errorf("message = %q", msg)
	}
	if msg := n.Message(EventExport, "a.png"); msg != "Exported a.png" {
		t.Errorf("message = %q", msg)
	}
}
