package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/appskel-labs/appskel/internal/branding"
	"github.com/appskel-labs/appskel/internal/catalog"
	"github.com/appskel-labs/appskel/internal/config"
	"github.com/appskel-labs/appskel/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	createRoot    string
	createCatalog string
	createFrom    string
	createDryRun  bool
)

func init() {
	createCmd.Flags().StringVar(&createRoot, "root", "", "Target directory (default: current directory)")
	createCmd.Flags().StringVar(&createCatalog, "catalog", "", "Built-in catalog to materialize")
	createCmd.Flags().StringVar(&createFrom, "from", "", "Path to a catalog YAML file (overrides --catalog)")
	createCmd.Flags().BoolVar(&createDryRun, "dry-run", false, "Show what would be created without touching the filesystem")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Materialize a project skeleton",
	Long: `Create every directory and empty placeholder file a catalog describes.

Existing directories are reused and existing files are left untouched, so
re-running over a partially built or finished tree is safe.

Examples:
  appskel create
  appskel create --root ./myapp
  appskel create --catalog flutter --dry-run
  appskel create --from team-layout.yaml`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, _ []string) error {
	cat, err := resolveCatalog(createCatalog, createFrom)
	if err != nil {
		return err
	}

	root, err := resolveRoot(createRoot)
	if err != nil {
		return err
	}

	opts, err := buildOptions(createDryRun)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	result, err := scaffold.Build(out, root, cat, opts)
	if err != nil {
		return err
	}

	if opts.DryRun {
		fmt.Fprintf(out, "\nDry run: %d directories and %d files would be created under %s.\n",
			result.Dirs, result.Files, result.Root)
		return nil
	}

	fmt.Fprintln(out, "\nDirectory structure created successfully!")
	return nil
}

// ─── Helpers ───────────────────────────────────────────────────────

// resolveCatalog picks the catalog for a command: an explicit YAML file
// wins, then a built-in by name, then the configured default, then the
// shipped default.
func resolveCatalog(name, from string) (*catalog.Catalog, error) {
	if from != "" {
		cat, err := catalog.Load(from)
		if err != nil {
			return nil, err
		}
		if err := cat.CheckCLI(buildVersion); err != nil {
			return nil, err
		}
		return cat, nil
	}

	if name == "" {
		name = config.Get(config.KeyCatalog)
	}
	if name == "" {
		name = catalog.DefaultName
	}

	cat, ok := catalog.Builtin(name)
	if !ok {
		return nil, fmt.Errorf("unknown catalog %q (run '%s catalogs' to list built-ins)", name, branding.CLIName())
	}
	return cat, nil
}

// resolveRoot defaults the target to the current working directory.
func resolveRoot(root string) (string, error) {
	if root != "" {
		return root, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}

// buildOptions assembles scaffold options from config, falling back to the
// shipped defaults when a key is unset.
func buildOptions(dryRun bool) (scaffold.Options, error) {
	opts := scaffold.Options{DryRun: dryRun}

	dirPerm, err := parsePerm(config.Get(config.KeyDirPerm))
	if err != nil {
		return opts, fmt.Errorf("invalid %s: %w", config.KeyDirPerm, err)
	}
	filePerm, err := parsePerm(config.Get(config.KeyFilePerm))
	if err != nil {
		return opts, fmt.Errorf("invalid %s: %w", config.KeyFilePerm, err)
	}

	opts.DirPerm = dirPerm
	opts.FilePerm = filePerm
	return opts, nil
}

// parsePerm reads an octal mode string such as "0755" or "755". An empty
// string parses to zero, which means "use the default".
func parsePerm(s string) (os.FileMode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	mode, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing mode %q: %w", s, err)
	}
	return os.FileMode(mode), nil
}
