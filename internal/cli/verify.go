package cli

import (
	"fmt"

	"github.com/appskel-labs/appskel/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	verifyRoot    string
	verifyCatalog string
	verifyFrom    string
)

func init() {
	verifyCmd.Flags().StringVar(&verifyRoot, "root", "", "Directory to check (default: current directory)")
	verifyCmd.Flags().StringVar(&verifyCatalog, "catalog", "", "Built-in catalog to check against")
	verifyCmd.Flags().StringVar(&verifyFrom, "from", "", "Path to a catalog YAML file (overrides --catalog)")
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check a skeleton against its catalog",
	Long: `Walk a catalog and report whether every directory and placeholder file
exists on disk with the expected type. Nothing is created or modified.

Examples:
  appskel verify
  appskel verify --root ./myapp --catalog flutter`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := resolveCatalog(verifyCatalog, verifyFrom)
		if err != nil {
			return err
		}
		root, err := resolveRoot(verifyRoot)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Checking %s against catalog %q:\n", root, cat.Name)

		report, err := scaffold.Verify(out, root, cat)
		if err != nil {
			return err
		}

		total := report.OK + len(report.Issues)
		if !report.Clean() {
			fmt.Fprintf(out, "\n%d of %d entries missing or mismatched.\n", len(report.Issues), total)
			return fmt.Errorf("%s does not match catalog %q", report.Root, cat.Name)
		}

		fmt.Fprintf(out, "\nAll %d entries present.\n", total)
		return nil
	},
}
