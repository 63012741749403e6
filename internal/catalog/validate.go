package catalog

import (
	"fmt"
	"strings"
)

// Validate checks the structural invariants of the tree: every name is a
// single legal path segment, sibling names are unique within their
// directory, and file nodes carry no children. The first violation is
// returned as an error naming the offending path.
func (c *Catalog) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("catalog has no name")
	}
	if len(c.Nodes) == 0 {
		return fmt.Errorf("catalog %s describes no entries", c.Name)
	}
	return validateLevel("", c.Nodes)
}

func validateLevel(prefix string, nodes []Node) error {
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if err := validateName(n.Name); err != nil {
			return fmt.Errorf("%s: %w", join(prefix, n.Name), err)
		}
		if seen[n.Name] {
			return fmt.Errorf("%s: duplicate name in the same directory", join(prefix, n.Name))
		}
		seen[n.Name] = true

		if n.Kind == KindFile && len(n.Children) > 0 {
			return fmt.Errorf("%s: file entry cannot have children", join(prefix, n.Name))
		}
		if n.Kind == KindDir {
			if err := validateLevel(join(prefix, n.Name), n.Children); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateName requires a single relative path segment: non-empty, not a
// dot entry, and free of path separators. Catalogs express nesting through
// the tree shape, never through names.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("empty name")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid name %q", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("name %q contains a path separator", name)
	}
	return nil
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
