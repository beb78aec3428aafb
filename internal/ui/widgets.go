package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/Akaiko1/check-dialog/internal/selection"
)

// checkToggle adapts a Fyne check box to checkdialog.Toggle.
type checkToggle struct {
	check *widget.Check
}

func (c checkToggle) Checked() bool     { return c.check.Checked }
func (c checkToggle) SetChecked(v bool) { c.check.SetChecked(v) }

// entryField adapts a Fyne entry to checkdialog.TextField.
type entryField struct {
	entry *widget.Entry
}

func (e entryField) Text() string     { return e.entry.Text }
func (e entryField) SetText(s string) { e.entry.SetText(s) }

// treeSelection exposes the currently loaded tree; it is empty until a folder is opened.
type treeSelection struct {
	tree *selection.Tree
}

func (s *treeSelection) CheckedPaths() []string {
	if s.tree == nil {
		return nil
	}
	return s.tree.CheckedPaths()
}

func (s *treeSelection) childUIDs(uid widget.TreeNodeID) []widget.TreeNodeID {
	if s.tree == nil {
		return nil
	}
	return s.tree.Children(uid)
}

func (s *treeSelection) isBranch(uid widget.TreeNodeID) bool {
	if s.tree == nil {
		return uid == ""
	}
	return s.tree.IsBranch(uid)
}

func (s *treeSelection) RootPath() string {
	if s.tree == nil {
		return ""
	}
	return s.tree.RootPath()
}

// windowLayout stores the window size as "WxH" and the split offset as the
// single column width.
type windowLayout struct {
	window fyne.Window
	split  *container.Split
}

func (l windowLayout) Size() string {
	s := l.window.Canvas().Size()
	return fmt.Sprintf("%.0fx%.0f", s.Width, s.Height)
}

// SetSize ignores anything that is not a positive "WxH" pair.
func (l windowLayout) SetSize(blob string) {
	ws, hs, ok := strings.Cut(blob, "x")
	if !ok {
		return
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(ws), 32)
	if err != nil || w <= 0 {
		return
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(hs), 32)
	if err != nil || h <= 0 {
		return
	}
	l.window.Resize(fyne.NewSize(float32(w), float32(h)))
}

func (l windowLayout) ColumnWidths() []float64 {
	return []float64{l.split.Offset}
}

func (l windowLayout) SetColumnWidth(i int, width float64) {
	if i != 0 || width < 0 || width > 1 {
		return
	}
	l.split.SetOffset(width)
}
