package ui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/Akaiko1/check-dialog/internal/checkdialog"
	"github.com/Akaiko1/check-dialog/internal/clipboard"
	"github.com/Akaiko1/check-dialog/internal/config"
	"github.com/Akaiko1/check-dialog/internal/i18n"
	"github.com/Akaiko1/check-dialog/internal/renderer"
	"github.com/Akaiko1/check-dialog/internal/selection"
	"github.com/Akaiko1/check-dialog/internal/settings"
	"github.com/Akaiko1/check-dialog/internal/store"
)

const (
	// UI Constants
	windowWidth  = 900
	windowHeight = 600
	splitOffset  = 0.6
	loadTimeout  = 30 * time.Second
)

// DoneFunc receives the dialog result. confirmed is false when the user
// dismissed the dialog; res is then empty.
type DoneFunc func(res checkdialog.Result, confirmed bool)

// CheckDialog is the window that selects what and how to check.
type CheckDialog struct {
	// Core components
	app    fyne.App
	window fyne.Window
	config *config.Config
	tr     *i18n.Translator

	// Services
	loader     *selection.Loader
	renderer   renderer.TreeRenderer
	clipboard  clipboard.ClipboardManager
	controller *checkdialog.Controller

	// UI components
	checks      map[string]*widget.Check
	jobs        *widget.Entry
	tree        *widget.Tree
	split       *container.Split
	statusLabel *widget.Label
	buttons     map[string]*widget.Button
	headings    map[string]*widget.Label

	// State - UI thread only, no synchronization needed
	selection *treeSelection
	onDone    DoneFunc
	done      bool

	cancelFunc context.CancelFunc
	loading    sync.WaitGroup
}

// NewCheckDialog builds the dialog window. The store keeps toggle states and
// layout between sessions and must outlive the dialog.
func NewCheckDialog(a fyne.App, cfg *config.Config, st store.Store) *CheckDialog {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	d := &CheckDialog{
		app:         a,
		config:      cfg,
		tr:          i18n.New(i18n.Parse(cfg.Language)),
		loader:      selection.NewLoader(cfg),
		renderer:    &renderer.CheckTreeRenderer{},
		clipboard:   clipboard.NewFyneClipboardManager(a.Clipboard()),
		checks:      make(map[string]*widget.Check),
		jobs:        widget.NewEntry(),
		selection:   &treeSelection{},
		statusLabel: widget.NewLabel(""),
		buttons:     make(map[string]*widget.Button),
		headings:    make(map[string]*widget.Label),
	}

	d.window = a.NewWindow(d.tr.T(i18n.Title))
	d.window.Resize(fyne.NewSize(windowWidth, windowHeight))
	d.window.SetContent(d.createMainContent())
	d.window.SetCloseIntercept(d.handleCancel)

	widgets := checkdialog.Widgets{
		Toggles:   make(map[string]checkdialog.Toggle, len(d.checks)),
		Jobs:      entryField{entry: d.jobs},
		Selection: d.selection,
		Layout:    windowLayout{window: d.window, split: d.split},
	}
	for key, check := range d.checks {
		widgets.Toggles[key] = checkToggle{check: check}
	}
	d.controller = checkdialog.New(st, widgets)
	return d
}

// Show restores the saved state, opens the last used folder and shows the
// window. onDone runs once, when the dialog is confirmed or dismissed.
func (d *CheckDialog) Show(onDone DoneFunc) {
	d.onDone = onDone
	d.controller.Restore()

	start := d.controller.SavedRootPath()
	if start == "" {
		start = d.config.StartPath
	}
	if start != "" {
		d.loadRootAsync(start)
	}
	d.window.Show()
}

// Window returns the dialog window.
func (d *CheckDialog) Window() fyne.Window {
	return d.window
}

// createMainContent creates the main UI content.
func (d *CheckDialog) createMainContent() fyne.CanvasObject {
	d.tree = widget.NewTree(
		d.selection.childUIDs,
		d.selection.isBranch,
		d.createTreeNode,
		d.updateTreeNode,
	)

	filesHeading := d.heading(i18n.FilesHeading)
	chooseBtn := d.button(i18n.ChooseFolder, theme.FolderOpenIcon(), d.handleChooseFolder)
	copyBtn := d.button(i18n.CopySelection, theme.ContentCopyIcon(), d.handleCopySelection)
	copyTreeBtn := d.button(i18n.CopyTree, theme.ListIcon(), d.handleCopyTree)
	files := container.NewBorder(
		container.NewVBox(filesHeading, container.NewGridWithColumns(3, chooseBtn, copyBtn, copyTreeBtn)),
		nil, nil, nil,
		d.tree,
	)

	options := container.NewVBox(d.heading(i18n.OptionsHeader))
	for _, o := range checkdialog.Options() {
		check := widget.NewCheck(d.tr.T(o.Key), nil)
		check.Checked = o.Default()
		d.checks[o.Key] = check
		options.Add(check)
	}
	d.jobs.SetText(fmt.Sprint(settings.DefaultJobs))
	options.Add(widget.NewForm(widget.NewFormItem(d.tr.T(i18n.Jobs), d.jobs)))

	d.split = container.NewHSplit(files, container.NewVScroll(options))
	d.split.Offset = splitOffset

	checkBtn := d.button(i18n.Check, theme.ConfirmIcon(), d.handleConfirm)
	checkBtn.Importance = widget.HighImportance
	cancelBtn := d.button(i18n.Cancel, theme.CancelIcon(), d.handleCancel)
	footer := container.NewBorder(nil, nil, nil, container.NewHBox(cancelBtn, checkBtn), d.statusLabel)

	return container.NewBorder(nil, footer, nil, nil, d.split)
}

func (d *CheckDialog) heading(key string) *widget.Label {
	l := widget.NewLabel(d.tr.T(key))
	l.TextStyle.Bold = true
	d.headings[key] = l
	return l
}

func (d *CheckDialog) button(key string, icon fyne.Resource, tapped func()) *widget.Button {
	b := widget.NewButtonWithIcon(d.tr.T(key), icon, tapped)
	d.buttons[key] = b
	return b
}

// SetLanguage retranslates every visible label. Persistence keys are not affected.
func (d *CheckDialog) SetLanguage(tag language.Tag) {
	d.tr = i18n.New(tag)
	d.window.SetTitle(d.tr.T(i18n.Title))
	for key, check := range d.checks {
		check.Text = d.tr.T(key)
		check.Refresh()
	}
	for key, b := range d.buttons {
		b.SetText(d.tr.T(key))
	}
	for key, l := range d.headings {
		l.SetText(d.tr.T(key))
	}
}

// createTreeNode creates a new tree node widget.
func (d *CheckDialog) createTreeNode(branch bool) fyne.CanvasObject {
	return widget.NewCheck("Item", nil)
}

// updateTreeNode binds a tree row to the check state of uid.
func (d *CheckDialog) updateTreeNode(uid widget.TreeNodeID, branch bool, obj fyne.CanvasObject) {
	check, ok := obj.(*widget.Check)
	if !ok || d.selection.tree == nil {
		return
	}
	node, ok := d.selection.tree.Node(uid)
	if !ok {
		return
	}

	name := node.Name
	if uid == d.selection.tree.RootPath() {
		name = uid // Show full path for root
	}

	check.OnChanged = nil
	check.Text = name
	check.Checked = node.State == selection.Checked
	check.Partial = node.State == selection.Partial
	check.Refresh()
	check.OnChanged = func(on bool) {
		d.setChecked(uid, on)
	}
}

func (d *CheckDialog) setChecked(path string, on bool) {
	if d.selection.tree == nil {
		return
	}
	d.selection.tree.SetChecked(path, on)
	d.tree.Refresh()
	d.updateStatus()
}

func (d *CheckDialog) updateStatus() {
	d.statusLabel.SetText(fmt.Sprintf("%s: %d", d.selection.RootPath(), len(d.controller.SelectedPaths())))
}

// handleChooseFolder lets the user pick the root of the selection tree.
func (d *CheckDialog) handleChooseFolder() {
	folderDialog := dialog.NewFolderOpen(func(folder fyne.ListableURI, err error) {
		if err != nil {
			d.showError("Folder Selection Error", err)
			return
		}
		if folder == nil {
			return // User cancelled
		}
		d.loadRootAsync(folder.Path())
	}, d.window)

	if root := d.selection.RootPath(); root != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(root)); err == nil {
			folderDialog.SetLocation(lister)
		}
	}
	folderDialog.Show()
}

// loadRootAsync scans path in the background and swaps in the new tree.
func (d *CheckDialog) loadRootAsync(path string) {
	// Cancel any ongoing operation
	if d.cancelFunc != nil {
		d.cancelFunc()
	}
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	d.cancelFunc = cancel

	d.statusLabel.SetText("Scanning: " + path)

	d.loading.Add(1)
	go func() {
		defer cancel()
		tree, err := d.loader.Load(ctx, path)

		// UI updates must use main thread dispatcher
		fyne.Do(func() {
			defer d.loading.Done()
			if d.done {
				return
			}
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				log.Warn().Err(err).Str("path", path).Msg("failed to load selection tree")
				d.statusLabel.SetText("Scan failed: " + filepath.Base(path))
				return
			}
			d.setTree(tree)
		})
	}()
}

// LoadRoot synchronously replaces the selection tree with the folder at path.
func (d *CheckDialog) LoadRoot(ctx context.Context, path string) error {
	tree, err := d.loader.Load(ctx, path)
	if err != nil {
		return err
	}
	d.setTree(tree)
	return nil
}

func (d *CheckDialog) setTree(tree *selection.Tree) {
	d.selection.tree = tree
	d.tree.Refresh()
	if root := tree.RootPath(); root != "" {
		d.tree.OpenBranch(root)
	}
	d.updateStatus()
	log.Debug().Str("root", tree.RootPath()).Int("nodes", tree.Count()).Msg("selection tree loaded")
}

func (d *CheckDialog) handleCopySelection() {
	paths := d.controller.SelectedPaths()
	if len(paths) == 0 {
		dialog.ShowInformation(d.tr.T(i18n.CopySelection), d.tr.T(i18n.NoSelection), d.window)
		return
	}
	if err := clipboard.CopyLines(d.clipboard, paths); err != nil {
		d.showError("Clipboard Error", err)
		return
	}
	d.statusLabel.SetText(d.tr.T(i18n.Copied))
}

func (d *CheckDialog) handleCopyTree() {
	if d.selection.tree == nil {
		dialog.ShowInformation(d.tr.T(i18n.CopySelection), d.tr.T(i18n.NoSelection), d.window)
		return
	}
	if err := d.clipboard.SetContent(d.renderer.RenderTree(d.selection.tree.Root())); err != nil {
		d.showError("Clipboard Error", err)
		return
	}
	d.statusLabel.SetText(d.tr.T(i18n.Copied))
}

// handleConfirm persists the dialog state and hands the result to the caller.
func (d *CheckDialog) handleConfirm() {
	if d.done {
		return
	}
	d.done = true
	res := d.controller.Confirm()
	d.finish(res, true)
}

// handleCancel closes the dialog without touching the store.
func (d *CheckDialog) handleCancel() {
	if d.done {
		return
	}
	d.done = true
	d.controller.Discard()
	d.finish(checkdialog.Result{}, false)
}

func (d *CheckDialog) finish(res checkdialog.Result, confirmed bool) {
	if d.cancelFunc != nil {
		d.cancelFunc()
	}
	d.window.Close()
	if d.onDone != nil {
		d.onDone(res, confirmed)
	}
}

// showError shows an error dialog.
func (d *CheckDialog) showError(title string, err error) {
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), d.window)
}
