package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/appskel-labs/appskel/internal/catalog"
)

// Issue is one divergence between a catalog and the tree on disk.
type Issue struct {
	Path    string // absolute path that failed the check
	Problem string // e.g. "missing", "expected directory, found file"
}

// Report holds the outcome of a verification pass.
type Report struct {
	Root   string
	OK     int
	Issues []Issue
}

// Clean reports whether every expected entry was present with the right type.
func (r *Report) Clean() bool {
	return len(r.Issues) == 0
}

// Verify walks the catalog against root without creating or modifying
// anything and records every expected entry that is missing or has the
// wrong type. One check line per entry is written to w.
func Verify(w io.Writer, root string, cat *catalog.Catalog) (*Report, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root %s: %w", root, err)
	}

	report := &Report{Root: absRoot}

	err = catalog.Walk(cat.Nodes, func(rel string, n catalog.Node) error {
		path := filepath.Join(absRoot, filepath.FromSlash(rel))
		info, statErr := os.Lstat(path)
		switch {
		case os.IsNotExist(statErr):
			report.Issues = append(report.Issues, Issue{Path: path, Problem: "missing"})
			fmt.Fprintf(w, "  [MISS] %s\n", rel)
		case statErr != nil:
			return fmt.Errorf("checking %s: %w", path, statErr)
		case n.Kind == catalog.KindDir && !info.IsDir():
			problem := "expected directory, found file"
			report.Issues = append(report.Issues, Issue{Path: path, Problem: problem})
			fmt.Fprintf(w, "  [TYPE] %s (%s)\n", rel, problem)
		case n.Kind == catalog.KindFile && info.IsDir():
			problem := "expected file, found directory"
			report.Issues = append(report.Issues, Issue{Path: path, Problem: problem})
			fmt.Fprintf(w, "  [TYPE] %s (%s)\n", rel, problem)
		default:
			report.OK++
			fmt.Fprintf(w, "  [ OK ] %s\n", rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}
