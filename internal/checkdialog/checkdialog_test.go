package checkdialog

import (
	"reflect"
	"testing"

	"github.com/Akaiko1/check-dialog/internal/selection"
	"github.com/Akaiko1/check-dialog/internal/settings"
	"github.com/Akaiko1/check-dialog/internal/store"
)

type fakeToggle struct{ checked bool }

func (f *fakeToggle) Checked() bool     { return f.checked }
func (f *fakeToggle) SetChecked(v bool) { f.checked = v }

type fakeText struct{ text string }

func (f *fakeText) Text() string     { return f.text }
func (f *fakeText) SetText(s string) { f.text = s }

type fakeLayout struct {
	size    string
	columns []float64
}

func (f *fakeLayout) Size() string                    { return f.size }
func (f *fakeLayout) SetSize(s string)                { f.size = s }
func (f *fakeLayout) ColumnWidths() []float64         { return f.columns }
func (f *fakeLayout) SetColumnWidth(i int, w float64) { f.columns[i] = w }

type fakeWidgets struct {
	toggles map[string]*fakeToggle
	jobs    *fakeText
	layout  *fakeLayout
	tree    *selection.Tree
}

// newFakeWidgets sets every toggle to the given state so that restores are observable.
func newFakeWidgets(initial bool) *fakeWidgets {
	f := &fakeWidgets{
		toggles: make(map[string]*fakeToggle),
		jobs:    &fakeText{text: "1"},
		layout:  &fakeLayout{size: "640x480", columns: []float64{0.5}},
		tree:    selection.NewTree(nil),
	}
	for _, k := range Keys() {
		f.toggles[k] = &fakeToggle{checked: initial}
	}
	return f
}

func (f *fakeWidgets) widgets() Widgets {
	w := Widgets{
		Toggles:   make(map[string]Toggle, len(f.toggles)),
		Jobs:      f.jobs,
		Selection: f.tree,
		Layout:    f.layout,
	}
	for k, t := range f.toggles {
		w.Toggles[k] = t
	}
	return w
}

func TestRestore_EmptyStoreGivesDefaults(t *testing.T) {
	for _, initial := range []bool{false, true} {
		fw := newFakeWidgets(initial)
		c := New(store.NewMemory(), fw.widgets())
		c.Restore()
		if got := c.Settings(); got != settings.Defaults() {
			t.Fatalf("initial=%v: Settings() = %+v, want defaults %+v", initial, got, settings.Defaults())
		}
		if fw.layout.size != "640x480" || fw.layout.columns[0] != 0.5 {
			t.Fatalf("layout changed without stored metrics: %+v", fw.layout)
		}
	}
}

func TestRoundTrip_AllToggleCombinations(t *testing.T) {
	keys := Keys()
	for mask := 0; mask < 1<<len(keys); mask++ {
		st := store.NewMemory()

		src := newFakeWidgets(false)
		for i, k := range keys {
			src.toggles[k].checked = mask&(1<<i) != 0
		}
		src.jobs.text = "3"
		before := New(st, src.widgets())
		want := before.Settings()
		before.Persist()

		dst := newFakeWidgets(mask&1 == 0)
		dst.jobs.text = "3"
		after := New(st, dst.widgets())
		after.Restore()
		if got := after.Settings(); got != want {
			t.Fatalf("mask %09b: restored %+v, want %+v", mask, got, want)
		}
	}
}

func TestPersist_Idempotent(t *testing.T) {
	st := store.NewMemory()
	fw := newFakeWidgets(false)
	fw.toggles[KeyVerbose].checked = true
	fw.tree = selection.NewTree(&selection.Node{Path: "/proj", IsDir: true})
	c := New(st, fw.widgets())

	c.Persist()
	first := st.Snapshot()
	c.Persist()
	if second := st.Snapshot(); !reflect.DeepEqual(first, second) {
		t.Fatalf("store changed on second persist:\n%v\n%v", first, second)
	}
	if got := c.SavedRootPath(); got != "/proj" {
		t.Fatalf("SavedRootPath() = %q", got)
	}
}

func TestPersist_EmptyRootKeepsStoredRoot(t *testing.T) {
	st := store.NewMemory()
	st.SetString(keyRootPath, "/previous")
	c := New(st, newFakeWidgets(false).widgets())
	c.Persist()
	if got := c.SavedRootPath(); got != "/previous" {
		t.Fatalf("SavedRootPath() = %q", got)
	}
}

func TestRestore_MalformedValuesUseDefaults(t *testing.T) {
	st := store.NewMemory()
	st.Set(toggleKey(KeyShowAll), "no")
	st.Set(toggleKey(KeyVerbose), 1)
	st.Set(columnKey(0), "wide")
	st.Set(keySize, 42)

	fw := newFakeWidgets(false)
	c := New(st, fw.widgets())
	c.Restore()

	got := c.Settings()
	if !got.ShowAll || got.Verbose {
		t.Fatalf("malformed values not replaced by defaults: %+v", got)
	}
	if fw.layout.size != "640x480" || fw.layout.columns[0] != 0.5 {
		t.Fatalf("malformed layout applied: %+v", fw.layout)
	}
}

func TestLayout_RoundTripVerbatim(t *testing.T) {
	st := store.NewMemory()
	src := newFakeWidgets(false)
	src.layout.size = "opaque-blob"
	src.layout.columns = []float64{0.3, 120}
	New(st, src.widgets()).Persist()

	dst := newFakeWidgets(false)
	dst.layout.columns = []float64{0, 0}
	New(st, dst.widgets()).Restore()
	if dst.layout.size != "opaque-blob" {
		t.Fatalf("size = %q", dst.layout.size)
	}
	if !reflect.DeepEqual(dst.layout.columns, []float64{0.3, 120}) {
		t.Fatalf("columns = %v", dst.layout.columns)
	}
}

func TestSettings_JobsClamp(t *testing.T) {
	fw := newFakeWidgets(false)
	c := New(store.NewMemory(), fw.widgets())
	for in, want := range map[string]int{"0": 1, "-3": 1, "abc": 1, "": 1, "4": 4, "  8 ": 8} {
		fw.jobs.text = in
		if got := c.Settings().Jobs; got != want {
			t.Errorf("jobs %q: got %d, want %d", in, got, want)
		}
	}
}

func TestSettings_StableAcrossCalls(t *testing.T) {
	fw := newFakeWidgets(true)
	fw.jobs.text = "6"
	c := New(store.NewMemory(), fw.widgets())
	if a, b := c.Settings(), c.Settings(); a != b {
		t.Fatalf("records differ: %+v vs %+v", a, b)
	}
}

func TestSettings_MapsEachToggle(t *testing.T) {
	want := map[string]func(settings.Settings) bool{
		KeyShowAll:          func(s settings.Settings) bool { return s.ShowAll },
		KeyCheckCodingStyle: func(s settings.Settings) bool { return s.CheckCodingStyle },
		KeyErrorsOnly:       func(s settings.Settings) bool { return s.ErrorsOnly },
		KeyVerbose:          func(s settings.Settings) bool { return s.Verbose },
		KeyForce:            func(s settings.Settings) bool { return s.Force },
		KeyXMLOutput:        func(s settings.Settings) bool { return s.XMLOutput },
		KeyUnusedFunctions:  func(s settings.Settings) bool { return s.CheckUnusedFunctions },
		KeySecurityChecks:   func(s settings.Settings) bool { return s.SecurityChecks },
		KeyVCLChecks:        func(s settings.Settings) bool { return s.VCLChecks },
	}
	for key, get := range want {
		fw := newFakeWidgets(false)
		fw.toggles[key].checked = true
		s := New(store.NewMemory(), fw.widgets()).Settings()
		if !get(s) {
			t.Errorf("toggle %s does not map to its field: %+v", key, s)
		}
	}
}

func TestSelectedPaths(t *testing.T) {
	fw := newFakeWidgets(false)
	fw.tree = selection.NewTree(&selection.Node{
		Path: "/proj", IsDir: true,
		Children: []*selection.Node{
			{Path: "/proj/a.c"},
			{Path: "/proj/b.c"},
			{Path: "/proj/sub", IsDir: true, Children: []*selection.Node{{Path: "/proj/sub/c.c"}}},
		},
	})
	fw.tree.SetState("/proj/a.c", selection.Checked)
	fw.tree.SetState("/proj/sub", selection.Checked)
	fw.tree.SetState("/proj/sub/c.c", selection.Checked)
	c := New(store.NewMemory(), fw.widgets())

	want := []string{"/proj/a.c", "/proj/sub", "/proj/sub/c.c"}
	if got := c.SelectedPaths(); !reflect.DeepEqual(got, want) {
		t.Fatalf("SelectedPaths() = %v, want %v", got, want)
	}
	if got := c.RootPath(); got != "/proj" {
		t.Fatalf("RootPath() = %q", got)
	}
}

func TestSelectedPaths_EmptyIsValid(t *testing.T) {
	c := New(store.NewMemory(), Widgets{})
	if got := c.SelectedPaths(); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil selection, got %#v", got)
	}
	if c.RootPath() != "" {
		t.Fatalf("expected empty root")
	}
	if got := c.Settings(); got != settings.Defaults() {
		t.Fatalf("no widgets should give defaults, got %+v", got)
	}
}

func TestDiscard_LeavesStoreUntouched(t *testing.T) {
	st := store.NewMemory()
	st.SetBool(toggleKey(KeyForce), true)
	before := st.Snapshot()

	fw := newFakeWidgets(false)
	c := New(st, fw.widgets())
	c.Restore()
	fw.toggles[KeyForce].checked = false
	fw.toggles[KeyXMLOutput].checked = true
	fw.layout.size = "1x1"
	c.Discard()
	c.Persist()
	c.Confirm()

	if !c.Closed() {
		t.Fatalf("expected closed controller")
	}
	if after := st.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Fatalf("store mutated after discard:\n%v\n%v", before, after)
	}
}

func TestConfirm_PersistsAndReturnsResult(t *testing.T) {
	st := store.NewMemory()
	fw := newFakeWidgets(false)
	fw.toggles[KeySecurityChecks].checked = true
	fw.jobs.text = "2"
	fw.tree = selection.NewTree(&selection.Node{Path: "/src", IsDir: true, Children: []*selection.Node{{Path: "/src/m.c"}}})
	fw.tree.SetChecked("/src", true)

	res := New(st, fw.widgets()).Confirm()
	if !res.Settings.SecurityChecks || res.Settings.Jobs != 2 {
		t.Fatalf("unexpected settings: %+v", res.Settings)
	}
	if res.RootPath != "/src" || !reflect.DeepEqual(res.Paths, []string{"/src", "/src/m.c"}) {
		t.Fatalf("unexpected selection: %+v", res)
	}
	if !st.Bool(toggleKey(KeySecurityChecks), false) {
		t.Fatalf("confirm did not persist toggles")
	}
}

func TestOptions_DefaultsMatchSettings(t *testing.T) {
	if len(Options()) != 9 {
		t.Fatalf("expected nine options, got %d", len(Options()))
	}
	for _, o := range Options() {
		want := o.Key == KeyShowAll
		if o.Default() != want {
			t.Errorf("default of %s = %v", o.Key, o.Default())
		}
	}
}
