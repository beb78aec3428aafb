package renderer

import (
	"testing"

	"github.com/Akaiko1/check-dialog/internal/selection"
)

func TestRenderTree(t *testing.T) {
	tr := selection.NewTree(&selection.Node{
		Path: "/proj", Name: "proj", IsDir: true,
		Children: []*selection.Node{
			{Path: "/proj/a.c", Name: "a.c"},
			{Path: "/proj/sub", Name: "sub", IsDir: true, Children: []*selection.Node{
				{Path: "/proj/sub/c.c", Name: "c.c"},
			}},
			{Path: "/proj/z.c", Name: "z.c"},
		},
	})
	tr.SetChecked("/proj/sub", true)

	want := "Selection for: /proj\n" +
		"==================================================\n\n" +
		"[-] proj/\n" +
		"├── [ ] a.c\n" +
		"├── [x] sub/\n" +
		"│   └── [x] c.c\n" +
		"└── [ ] z.c\n"

	r := &CheckTreeRenderer{}
	if got := r.RenderTree(tr.Root()); got != want {
		t.Fatalf("unexpected rendering:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderTree_Nil(t *testing.T) {
	if got := (&CheckTreeRenderer{}).RenderTree(nil); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
