// Package notify sends desktop notifications for paint events.
package notify

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/mixpaint/internal/config"
	"github.com/example/mixpaint/internal/pigment"
	"github.com/example/mixpaint/internal/platform"
	"github.com/example/mixpaint/internal/render"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventExport fires after the canvas is written to disk.
	EventExport Event = "export"
	// EventCopy fires after the canvas or a color lands on the clipboard.
	EventCopy Event = "copy"
	// EventPick fires when the eyedropper lifts a color.
	EventPick Event = "pick"
)

// previewSize bounds the icon attached to export notifications.
const previewSize = 128

// Preferences holds the notification title and per-event message formats.
type Preferences struct {
	Title     string
	Templates map[Event]string
}

// DefaultPreferences returns the built-in messages.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: "MixPaint",
		Templates: map[Event]string{
			EventExport: "Exported %s",
			EventCopy:   "Copied %s to clipboard",
			EventPick:   "Picked %s",
		},
	}
}

// LoadPreferences applies MIXPAINT_NOTIFY_* environment overrides to the defaults.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("MIXPAINT_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	for _, ev := range []Event{EventExport, EventCopy, EventPick} {
		key := "MIXPAINT_NOTIFY_" + strings.ToUpper(string(ev)) + "_TEXT"
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			prefs.Templates[ev] = v
		}
	}
	return prefs
}

// Notifier sends OS-level notifications for the enabled events.
// A nil Notifier is valid and silent.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	send    func(title, body string, opts platform.Options) error
}

// New creates a Notifier with every event disabled.
func New(prefs Preferences) *Notifier {
	tpl := make(map[Event]string, len(prefs.Templates))
	for k, v := range prefs.Templates {
		tpl[k] = v
	}
	return &Notifier{
		prefs:   Preferences{Title: prefs.Title, Templates: tpl},
		enabled: make(map[Event]bool),
		send:    platform.Notify,
	}
}

// FromConfig creates a Notifier enabled per the [notify] section.
func FromConfig(n config.Notify) *Notifier {
	nt := New(LoadPreferences())
	nt.Enable(EventExport, n.Export)
	nt.Enable(EventCopy, n.Copy)
	nt.Enable(EventPick, n.Pick)
	return nt
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	n.enabled[event] = enabled
}

// Enabled reports whether event will produce a notification.
func (n *Notifier) Enabled(event Event) bool {
	return n != nil && n.enabled[event]
}

// Export announces a written file. When img is non-nil a thumbnail of it is
// attached as the icon.
func (n *Notifier) Export(path string, img image.Image) {
	if !n.Enabled(EventExport) {
		return
	}
	detail := strings.TrimSpace(path)
	if abs, err := filepath.Abs(path); err == nil {
		detail = abs
	}
	opts := platform.Options{}
	if img != nil {
		icon, cleanup, err := writePreview(img)
		if err != nil {
			log.Printf("notification preview: %v", err)
		} else {
			defer cleanup()
			opts.IconPath = icon
		}
	}
	n.dispatch(EventExport, detail, opts)
}

// Copy announces a clipboard write.
func (n *Notifier) Copy(detail string) {
	if !n.Enabled(EventCopy) {
		return
	}
	if strings.TrimSpace(detail) == "" {
		detail = "canvas"
	}
	n.dispatch(EventCopy, detail, platform.Options{})
}

// Pick announces an eyedropper hit.
func (n *Notifier) Pick(c pigment.Color) {
	if !n.Enabled(EventPick) {
		return
	}
	n.dispatch(EventPick, c.Hex(), platform.Options{})
}

// Message renders the body text for event without sending it.
func (n *Notifier) Message(event Event, detail string) string {
	if n == nil {
		return ""
	}
	tpl := strings.TrimSpace(n.prefs.Templates[event])
	if tpl == "" {
		return ""
	}
	if !strings.Contains(tpl, "%") {
		return tpl
	}
	return strings.TrimSpace(fmt.Sprintf(tpl, strings.TrimSpace(detail)))
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	body := n.Message(event, detail)
	if body == "" {
		return
	}
	opts.AppName = n.prefs.Title
	if err := n.send(n.prefs.Title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}

func writePreview(img image.Image) (string, func(), error) {
	f, err := os.CreateTemp("", "mixpaint-preview-*.png")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	if err := render.Encode(f, render.Thumbnail(img, previewSize), render.FormatPNG); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, err
	}
	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("remove preview: %v", err)
		}
	}
	return path, cleanup, nil
}
