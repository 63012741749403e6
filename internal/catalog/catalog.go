package catalog

// DefaultName is the catalog materialized when none is configured.
const DefaultName = "flutter"

// Catalog is a named scaffold tree. Built-in catalogs are compiled into the
// binary; user catalogs come from YAML files via Load.
type Catalog struct {
	Name        string
	Description string

	// MinCLI optionally carries a semver constraint on the CLI version a
	// loaded catalog requires (e.g. ">= 0.2.0"). Empty for built-ins.
	MinCLI string

	Nodes []Node
}

// Counts returns the number of directory and file nodes in the tree.
func (c *Catalog) Counts() (dirs, files int) {
	_ = Walk(c.Nodes, func(_ string, n Node) error {
		if n.Kind == KindDir {
			dirs++
		} else {
			files++
		}
		return nil
	})
	return dirs, files
}

// builtins lists the catalogs shipped with the binary, in display order.
var builtins = []*Catalog{
	flutterCatalog,
}

// Builtins returns the catalogs compiled into the binary.
func Builtins() []*Catalog {
	out := make([]*Catalog, len(builtins))
	copy(out, builtins)
	return out
}

// Builtin looks up a shipped catalog by name.
func Builtin(name string) (*Catalog, bool) {
	for _, c := range builtins {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}
