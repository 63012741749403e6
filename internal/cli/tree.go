package cli

import (
	"github.com/appskel-labs/appskel/internal/catalog"
	"github.com/ddddddO/gtree"
	"github.com/spf13/cobra"
)

var (
	treeCatalog string
	treeFrom    string
)

func init() {
	treeCmd.Flags().StringVar(&treeCatalog, "catalog", "", "Built-in catalog to render")
	treeCmd.Flags().StringVar(&treeFrom, "from", "", "Path to a catalog YAML file (overrides --catalog)")
	rootCmd.AddCommand(treeCmd)
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Render a catalog as a tree",
	Long: `Print the layout a catalog describes, without creating anything.

Example:
  appskel tree --catalog flutter`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := resolveCatalog(treeCatalog, treeFrom)
		if err != nil {
			return err
		}

		root := gtree.NewRoot(cat.Name)
		addBranches(root, cat.Nodes)
		return gtree.OutputProgrammably(cmd.OutOrStdout(), root)
	},
}

// addBranches mirrors catalog nodes onto a gtree branch, depth first.
func addBranches(parent *gtree.Node, nodes []catalog.Node) {
	for _, n := range nodes {
		child := parent.Add(n.Name)
		if n.Kind == catalog.KindDir {
			addBranches(child, n.Children)
		}
	}
}
