package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fhevm-labs/create-fhevm/internal/branding"
	"github.com/fhevm-labs/create-fhevm/internal/config"
	"github.com/fhevm-labs/create-fhevm/internal/scaffold"
)

var categoryNoGit bool

func init() {
	categoryCmd.Flags().BoolVar(&categoryNoGit, "no-git", false, "Skip git repository initialization")
	rootCmd.AddCommand(categoryCmd)
}

var categoryCmd = &cobra.Command{
	Use:   "category <key> <destination>",
	Short: "Generate a bundle project for a whole category",
	Long: `Generate one Hardhat project containing every example in a category.
Contracts and tests are nested under an examples/ subdirectory, and the
deployment script deploys all members in catalog order.

Examples:
  create-fhevm category basic ./fhevm-basics
  create-fhevm category defi ./confidential-defi --no-git`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			printCategoryUsage(cmd.ErrOrStderr())
			return fmt.Errorf("expected <key> and <destination>, got %d argument(s)", len(args))
		}
		key, dest := args[0], args[1]

		config.Load()
		s := &scaffold.Scaffolder{}
		opts := scaffold.Options{SkipGit: categoryNoGit || !config.GitInitEnabled()}

		result, err := s.Category(key, dest, opts)
		if err != nil {
			var unknownErr *scaffold.UnknownKeyError
			if errors.As(err, &unknownErr) {
				printCategoryUsage(cmd.ErrOrStderr())
			}
			return err
		}

		printScaffoldResult(cmd, result)
		printNextSteps(cmd, result.Dir)
		return nil
	},
}

func printCategoryUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s category <key> <destination>\n\n", branding.CLIName())
	writeCategoryListing(w)
}
