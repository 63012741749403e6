package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/appskel-labs/appskel/internal/catalog"
	"github.com/appskel-labs/appskel/internal/platform"
)

// Default permission bits for created entries.
const (
	DefaultDirPerm  os.FileMode = 0755
	DefaultFilePerm os.FileMode = 0644
)

// Options adjusts how Build realizes a catalog on disk.
type Options struct {
	// DryRun reports what would be created without touching the filesystem.
	DryRun bool

	// DirPerm and FilePerm override the default 0755/0644 modes.
	// Zero means "use the default".
	DirPerm  os.FileMode
	FilePerm os.FileMode
}

// Result holds the outcome of a completed build.
type Result struct {
	Root  string // absolute target root
	Dirs  int    // directory nodes visited
	Files int    // file nodes visited
}

// Build realizes every node of the catalog under root, creating directories
// and empty placeholder files that do not exist yet. Existing entries are
// left alone: directories are reused and files are never truncated, so
// re-running over a partially or fully built tree is safe. One progress
// line per node is written to w, parents before children. The first
// filesystem error aborts the walk; everything created before it stays on
// disk and a later run picks up from there.
func Build(w io.Writer, root string, cat *catalog.Catalog, opts Options) (*Result, error) {
	if opts.DirPerm == 0 {
		opts.DirPerm = DefaultDirPerm
	}
	if opts.FilePerm == 0 {
		opts.FilePerm = DefaultFilePerm
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root %s: %w", root, err)
	}

	if !opts.DryRun {
		if err := os.MkdirAll(absRoot, opts.DirPerm); err != nil {
			return nil, fmt.Errorf("creating root %s: %w", absRoot, err)
		}
	}

	b := &builder{w: w, opts: opts}
	result := &Result{Root: absRoot}

	err = catalog.Walk(cat.Nodes, func(rel string, n catalog.Node) error {
		path := filepath.Join(absRoot, filepath.FromSlash(rel))
		switch n.Kind {
		case catalog.KindDir:
			if err := b.ensureDir(path); err != nil {
				return err
			}
			result.Dirs++
		default:
			if err := b.touchFile(path); err != nil {
				return err
			}
			result.Files++
		}
		b.notice(n.Kind, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

type builder struct {
	w    io.Writer
	opts Options
}

// ensureDir creates path as a directory if absent. An existing directory
// is reused; anything else occupying the path is a type conflict.
func (b *builder) ensureDir(path string) error {
	info, err := os.Lstat(path)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("%s already exists and is not a directory", path)
	case os.IsNotExist(err):
		if b.opts.DryRun {
			return nil
		}
		if err := os.Mkdir(path, b.opts.DirPerm); err != nil {
			return fmt.Errorf("creating directory %s: %w", path, err)
		}
		// Mkdir is subject to the umask; apply the exact mode afterwards.
		if err := platform.Chmod(path, b.opts.DirPerm); err != nil {
			return fmt.Errorf("setting permissions on %s: %w", path, err)
		}
		return nil
	default:
		return fmt.Errorf("checking %s: %w", path, err)
	}
}

// touchFile creates an empty file at path if absent. An existing file is
// left exactly as it is, contents included; a directory occupying the path
// is a type conflict.
func (b *builder) touchFile(path string) error {
	info, err := os.Lstat(path)
	switch {
	case err == nil && info.IsDir():
		return fmt.Errorf("%s already exists and is a directory", path)
	case err == nil:
		return nil
	case os.IsNotExist(err):
		if b.opts.DryRun {
			return nil
		}
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, b.opts.FilePerm)
		if err != nil {
			return fmt.Errorf("creating file %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", path, err)
		}
		if err := platform.Chmod(path, b.opts.FilePerm); err != nil {
			return fmt.Errorf("setting permissions on %s: %w", path, err)
		}
		return nil
	default:
		return fmt.Errorf("checking %s: %w", path, err)
	}
}

// notice emits the progress line for one visited node. Dry runs switch the
// verb so the output never claims something happened.
func (b *builder) notice(kind catalog.Kind, path string) {
	if b.opts.DryRun {
		fmt.Fprintf(b.w, "Would create %s: %s\n", kind, path)
		return
	}
	fmt.Fprintf(b.w, "Created %s: %s\n", kind, path)
}
