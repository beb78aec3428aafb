package renderer

import (
	"fmt"
	"strings"

	"github.com/Akaiko1/check-dialog/internal/selection"
)

const (
	// Tree drawing characters
	treeBranch     = "├──"
	treeLastBranch = "└──"
	treeSpacing    = "    "
	treeConnection = "│   "
)

// TreeRenderer defines the interface for rendering selection trees.
type TreeRenderer interface {
	RenderTree(root *selection.Node) string
}

// CheckTreeRenderer draws a selection tree with a check marker per node.
type CheckTreeRenderer struct{}

// RenderTree renders the tree under root as text.
func (r *CheckTreeRenderer) RenderTree(root *selection.Node) string {
	if root == nil {
		return ""
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "Selection for: %s\n", root.Path)
	builder.WriteString(strings.Repeat("=", 50) + "\n\n")

	fmt.Fprintf(&builder, "%s %s/\n", marker(root.State), root.Name)
	r.renderChildren(&builder, root, "")

	return builder.String()
}

func (r *CheckTreeRenderer) renderChildren(builder *strings.Builder, node *selection.Node, prefix string) {
	for i, child := range node.Children {
		connector, nextPrefix := treeBranch, prefix+treeConnection
		if i == len(node.Children)-1 {
			connector, nextPrefix = treeLastBranch, prefix+treeSpacing
		}

		name := child.Name
		if child.IsDir {
			name += "/"
		}
		fmt.Fprintf(builder, "%s%s %s %s\n", prefix, connector, marker(child.State), name)
		r.renderChildren(builder, child, nextPrefix)
	}
}

func marker(s selection.State) string {
	switch s {
	case selection.Checked:
		return "[x]"
	case selection.Partial:
		return "[-]"
	default:
		return "[ ]"
	}
}
