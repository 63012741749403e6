package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/appskel-labs/appskel/internal/catalog"
	"github.com/spf13/cobra"
)

var catalogsJSON bool

var catalogsCmd = &cobra.Command{
	Use:   "catalogs",
	Short: "List built-in catalogs",
	Long:  `List the skeleton catalogs compiled into the binary.`,
	Args:  cobra.NoArgs,
	RunE:  runCatalogs,
}

func init() {
	catalogsCmd.Flags().BoolVar(&catalogsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(catalogsCmd)
}

// catalogEntry represents one built-in catalog for display.
type catalogEntry struct {
	Name        string `json:"name"`
	Dirs        int    `json:"dirs"`
	Files       int    `json:"files"`
	Description string `json:"description"`
}

func runCatalogs(cmd *cobra.Command, args []string) error {
	var entries []catalogEntry
	for _, c := range catalog.Builtins() {
		dirs, files := c.Counts()
		entries = append(entries, catalogEntry{
			Name:        c.Name,
			Dirs:        dirs,
			Files:       files,
			Description: c.Description,
		})
	}

	if catalogsJSON {
		return printCatalogsJSON(cmd, entries)
	}
	return printCatalogsTable(cmd, entries)
}

func printCatalogsTable(cmd *cobra.Command, entries []catalogEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tDIRS\tFILES\tDESCRIPTION")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", e.Name, e.Dirs, e.Files, e.Description)
	}
	return w.Flush()
}

func printCatalogsJSON(cmd *cobra.Command, entries []catalogEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
