package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// catalogDoc is the YAML document shape for user-supplied catalogs.
type catalogDoc struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	MinCLI      string    `yaml:"min_cli,omitempty"`
	Tree        []nodeDoc `yaml:"tree"`
}

// nodeDoc is one entry of the tree union. Exactly one of File or Dir is
// set; a dir entry carries at most one of Children or Files. The schema
// enforces the shape before decoding.
type nodeDoc struct {
	File     string    `yaml:"file,omitempty"`
	Dir      string    `yaml:"dir,omitempty"`
	Children []nodeDoc `yaml:"children,omitempty"`
	Files    []string  `yaml:"files,omitempty"`
}

// Load reads a catalog description from a YAML file, validates it against
// the embedded schema, and converts it into a Catalog.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return LoadBytes(data, path)
}

// LoadBytes parses and validates a catalog description. src names the
// origin for error messages, normally a file path.
func LoadBytes(data []byte, src string) (*Catalog, error) {
	result, err := ValidateDescription(data)
	if err != nil {
		return nil, fmt.Errorf("validating catalog %s: %w", src, err)
	}
	if !result.Valid {
		var b strings.Builder
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			fmt.Fprintf(&b, "\n  %s", msg)
		}
		return nil, fmt.Errorf("catalog %s does not match the expected format:%s", src, b.String())
	}

	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", src, err)
	}

	cat := &Catalog{
		Name:        doc.Name,
		Description: doc.Description,
		MinCLI:      doc.MinCLI,
		Nodes:       convertNodes(doc.Tree),
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", src, err)
	}
	return cat, nil
}

// convertNodes maps the decoded union entries onto catalog nodes,
// preserving declared order.
func convertNodes(docs []nodeDoc) []Node {
	nodes := make([]Node, 0, len(docs))
	for _, d := range docs {
		switch {
		case d.File != "":
			nodes = append(nodes, File(d.File))
		case len(d.Files) > 0:
			nodes = append(nodes, Dir(d.Dir, Files(d.Files...)...))
		default:
			nodes = append(nodes, Dir(d.Dir, convertNodes(d.Children)...))
		}
	}
	return nodes
}

// CheckCLI verifies that the running CLI version satisfies the catalog's
// min_cli constraint. Development builds with non-semver versions such as
// "dev" skip the check.
func (c *Catalog) CheckCLI(version string) error {
	if c.MinCLI == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(c.MinCLI)
	if err != nil {
		return fmt.Errorf("catalog %s: invalid min_cli %q: %w", c.Name, c.MinCLI, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		// Not a release build; nothing meaningful to compare against.
		return nil
	}
	if !constraint.Check(v) {
		return fmt.Errorf("catalog %s requires CLI version %s, running %s", c.Name, c.MinCLI, version)
	}
	return nil
}
