package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fhevm-labs/create-fhevm/internal/registry"
)

var (
	listExamplesOnly   bool
	listCategoriesOnly bool
	listJSON           bool
)

func init() {
	listCmd.Flags().BoolVar(&listExamplesOnly, "examples", false, "List examples only")
	listCmd.Flags().BoolVar(&listCategoriesOnly, "categories", false, "List categories only")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available examples and categories",
	Long:  `List every example and category in the built-in catalog, in catalog order.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	showExamples := listExamplesOnly || !listCategoriesOnly
	showCategories := listCategoriesOnly || !listExamplesOnly

	if listJSON {
		return printCatalogJSON(out, showExamples, showCategories)
	}

	if showExamples {
		writeExampleListing(out)
	}
	if showExamples && showCategories {
		fmt.Fprintln(out)
	}
	if showCategories {
		writeCategoryListing(out)
	}
	return nil
}

// writeExampleListing prints every example with its title and difficulty.
// The example and category commands reuse it for their usage guidance.
func writeExampleListing(w io.Writer) {
	fmt.Fprintln(w, "Available examples:")
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "  KEY\tTITLE\tDIFFICULTY")
	for _, ex := range registry.Examples() {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", ex.Key, ex.Title, ex.Difficulty)
	}
	tw.Flush()
}

// writeCategoryListing prints every category with its title and member count.
func writeCategoryListing(w io.Writer) {
	fmt.Fprintln(w, "Available categories:")
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "  KEY\tTITLE\tEXAMPLES")
	for _, cat := range registry.Categories() {
		fmt.Fprintf(tw, "  %s\t%s\t%d\n", cat.Key, cat.Title, len(cat.Examples))
	}
	tw.Flush()
}

func printCatalogJSON(w io.Writer, showExamples, showCategories bool) error {
	payload := struct {
		Examples   []registry.Example  `json:"examples,omitempty"`
		Categories []registry.Category `json:"categories,omitempty"`
	}{}
	if showExamples {
		payload.Examples = registry.Examples()
	}
	if showCategories {
		payload.Categories = registry.Categories()
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling catalog: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
