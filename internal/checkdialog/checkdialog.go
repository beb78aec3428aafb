// Package checkdialog holds the logic behind the dialog that selects what and
// how to check. The widgets it drives are reached through small capability
// interfaces so the logic runs without any UI toolkit.
package checkdialog

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/Akaiko1/check-dialog/internal/settings"
	"github.com/Akaiko1/check-dialog/internal/store"
)

const (
	keyPrefix   = "CheckDialog/"
	keySize     = keyPrefix + "Size"
	keyRootPath = keyPrefix + "RootPath"
)

func toggleKey(key string) string {
	return keyPrefix + key
}

func columnKey(i int) string {
	return fmt.Sprintf("%sColumn%d", keyPrefix, i)
}

// Toggle is a checkbox.
type Toggle interface {
	Checked() bool
	SetChecked(bool)
}

// TextField is a single line text input.
type TextField interface {
	Text() string
	SetText(string)
}

// SelectionSource exposes the check state of the file tree.
type SelectionSource interface {
	CheckedPaths() []string
	RootPath() string
}

// Layout exposes window geometry. The size is an opaque blob owned by the
// implementation; column widths are copied as-is.
type Layout interface {
	Size() string
	SetSize(string)
	ColumnWidths() []float64
	SetColumnWidth(i int, width float64)
}

// Widgets are the UI parts the controller reads and writes. Toggles are keyed
// by option key; a missing toggle keeps its option at the default. Layout may
// be nil.
type Widgets struct {
	Toggles   map[string]Toggle
	Jobs      TextField
	Selection SelectionSource
	Layout    Layout
}

// Result is what the caller receives when the dialog is confirmed.
type Result struct {
	Settings settings.Settings
	RootPath string
	Paths    []string
}

// Controller moves state between the widgets and the persistent store.
type Controller struct {
	store  store.Store
	w      Widgets
	closed bool
}

// New creates a Controller. The store is owned by the caller and must
// outlive the controller.
func New(st store.Store, w Widgets) *Controller {
	if st == nil {
		st = store.NewMemory()
	}
	return &Controller{store: st, w: w}
}

// Restore applies stored toggle states and layout metrics to the widgets.
// Missing or mistyped values fall back to the built-in defaults.
func (c *Controller) Restore() {
	for _, o := range options {
		t, ok := c.w.Toggles[o.Key]
		if !ok || t == nil {
			continue
		}
		t.SetChecked(c.store.Bool(toggleKey(o.Key), o.Default()))
	}

	if l := c.w.Layout; l != nil {
		if size := c.store.String(keySize, ""); size != "" {
			l.SetSize(size)
		}
		for i := range l.ColumnWidths() {
			if w := c.store.Float(columnKey(i), -1); w >= 0 {
				l.SetColumnWidth(i, w)
			}
		}
	}
	log.Debug().Int("toggles", len(c.w.Toggles)).Msg("check dialog state restored")
}

// Persist writes toggle states, layout metrics and the current root path
// to the store. An empty root path leaves the stored one in place.
// Persist does nothing once the dialog was discarded.
func (c *Controller) Persist() {
	if c.closed {
		log.Debug().Msg("check dialog discarded; not persisting")
		return
	}

	for _, o := range options {
		t, ok := c.w.Toggles[o.Key]
		if !ok || t == nil {
			continue
		}
		c.store.SetBool(toggleKey(o.Key), t.Checked())
	}

	if l := c.w.Layout; l != nil {
		if size := l.Size(); size != "" {
			c.store.SetString(keySize, size)
		}
		for i, w := range l.ColumnWidths() {
			c.store.SetFloat(columnKey(i), w)
		}
	}

	if root := c.RootPath(); root != "" {
		c.store.SetString(keyRootPath, root)
	}
	log.Debug().Msg("check dialog state persisted")
}

// Settings builds the settings record from the current widget state.
func (c *Controller) Settings() settings.Settings {
	s := settings.Defaults()
	for _, o := range options {
		if t, ok := c.w.Toggles[o.Key]; ok && t != nil {
			*o.field(&s) = t.Checked()
		}
	}
	if c.w.Jobs != nil {
		s.Jobs = settings.ParseJobs(c.w.Jobs.Text())
	}
	return s
}

// RootPath returns the root of the file selection, or "" when there is none.
func (c *Controller) RootPath() string {
	if c.w.Selection == nil {
		return ""
	}
	return c.w.Selection.RootPath()
}

// SavedRootPath returns the root path stored by a previous session.
func (c *Controller) SavedRootPath() string {
	return c.store.String(keyRootPath, "")
}

// SelectedPaths returns the checked paths in traversal order. The slice is
// newly allocated on every call and is never nil.
func (c *Controller) SelectedPaths() []string {
	if c.w.Selection == nil {
		return []string{}
	}
	paths := slices.Clone(c.w.Selection.CheckedPaths())
	if paths == nil {
		paths = []string{}
	}
	return paths
}

// Confirm persists the dialog state and returns what the caller should check.
// After Discard it returns the current values without persisting.
func (c *Controller) Confirm() Result {
	c.Persist()
	res := Result{
		Settings: c.Settings(),
		RootPath: c.RootPath(),
		Paths:    c.SelectedPaths(),
	}
	log.Debug().Str("settings", res.Settings.String()).Int("paths", len(res.Paths)).Msg("check dialog confirmed")
	return res
}

// Discard closes the dialog without touching the store.
func (c *Controller) Discard() {
	c.closed = true
	log.Debug().Msg("check dialog discarded")
}

// Closed reports whether Discard was called.
func (c *Controller) Closed() bool {
	return c.closed
}
