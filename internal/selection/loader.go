package selection

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Akaiko1/check-dialog/internal/config"
)

// hardDepthLimit applies even when MaxDepth is negative (unlimited).
const hardDepthLimit = 50

// Loader builds selection trees from the file system.
type Loader struct {
	config *config.Config
}

// NewLoader creates a Loader with the given configuration.
func NewLoader(cfg *config.Config) *Loader {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Loader{config: cfg}
}

// Load scans the directory at path and returns an unchecked tree rooted there.
func (l *Loader) Load(ctx context.Context, path string) (*Tree, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path %q: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path %q: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", abs)
	}

	root := &Node{Path: abs, Name: filepath.Base(abs), IsDir: true}
	if err := l.scanNode(ctx, root, 0); err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}
	return NewTree(root), nil
}

// scanNode fills in the children of a directory node, respecting depth limits and cancellation.
func (l *Loader) scanNode(ctx context.Context, node *Node, depth int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if l.config.MaxDepth >= 0 && depth > l.config.MaxDepth {
		return nil
	}
	if depth > hardDepthLimit {
		log.Warn().Int("depth", depth).Str("path", node.Path).Msg("stopping scan at depth limit")
		return nil
	}

	entries, err := os.ReadDir(node.Path)
	if err != nil {
		// Continue with partial results
		log.Warn().Err(err).Str("path", node.Path).Msg("failed to read directory")
		return nil
	}

	if !l.config.ShowHidden {
		entries = filterHidden(entries)
	}
	if l.config.SortDirs {
		sortEntries(entries)
	}
	if limit := l.config.MaxEntries; limit > 0 && len(entries) > limit {
		log.Warn().Str("path", node.Path).Int("entries", len(entries)).Int("limit", limit).Msg("truncating directory listing")
		entries = entries[:limit]
	}

	for _, entry := range entries {
		childPath := filepath.Join(node.Path, entry.Name())
		if isProblematicPath(childPath) {
			continue
		}

		child := &Node{
			Path:   childPath,
			Name:   entry.Name(),
			IsDir:  entry.IsDir(),
			Parent: node,
		}
		node.Children = append(node.Children, child)

		if child.IsDir {
			if err := l.scanNode(ctx, child, depth+1); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				log.Warn().Err(err).Str("path", childPath).Msg("error scanning subdirectory")
			}
		}
	}
	return nil
}

// isProblematicPath reports Windows system paths that usually fail with permission errors.
func isProblematicPath(path string) bool {
	problematicPaths := []string{
		"System Volume Information",
		"$Recycle.Bin",
		"$WINDOWS.~BT",
		"ProgramData\\Microsoft\\Windows Defender",
		"Windows\\System32\\config",
	}
	for _, p := range problematicPaths {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

func filterHidden(entries []os.DirEntry) []os.DirEntry {
	filtered := make([]os.DirEntry, 0, len(entries))
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), ".") {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// sortEntries puts directories first, then sorts by name.
func sortEntries(entries []os.DirEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name() < entries[j].Name()
	})
}
