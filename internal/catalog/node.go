package catalog

// Kind discriminates the two shapes a node takes on disk.
type Kind int

const (
	// KindDir is a directory; Children holds its declared contents.
	KindDir Kind = iota
	// KindFile is an empty placeholder file.
	KindFile
)

// String returns the kind as it appears in progress output and errors.
func (k Kind) String() string {
	switch k {
	case KindDir:
		return "directory"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Node is one named entry of a scaffold tree. Children is meaningful only
// for KindDir and is kept as a slice so siblings materialize in declared
// order, not map order.
type Node struct {
	Name     string
	Kind     Kind
	Children []Node
}

// Dir returns a directory node with the given children in order.
func Dir(name string, children ...Node) Node {
	return Node{Name: name, Kind: KindDir, Children: children}
}

// File returns an empty placeholder file node.
func File(name string) Node {
	return Node{Name: name, Kind: KindFile}
}

// Files expands a list of names into file nodes, for directories that hold
// nothing but placeholders: Dir("models", Files("a.dart", "b.dart")...).
func Files(names ...string) []Node {
	nodes := make([]Node, 0, len(names))
	for _, name := range names {
		nodes = append(nodes, File(name))
	}
	return nodes
}

// Walk visits every node depth-first in declared order, parents before
// children. rel is the slash-joined path of the node relative to the tree
// root. The walk stops at the first error and returns it.
func Walk(nodes []Node, fn func(rel string, n Node) error) error {
	return walk("", nodes, fn)
}

func walk(prefix string, nodes []Node, fn func(string, Node) error) error {
	for _, n := range nodes {
		rel := n.Name
		if prefix != "" {
			rel = prefix + "/" + n.Name
		}
		if err := fn(rel, n); err != nil {
			return err
		}
		if n.Kind == KindDir {
			if err := walk(rel, n.Children, fn); err != nil {
				return err
			}
		}
	}
	return nil
}
