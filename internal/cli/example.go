package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fhevm-labs/create-fhevm/internal/branding"
	"github.com/fhevm-labs/create-fhevm/internal/config"
	"github.com/fhevm-labs/create-fhevm/internal/scaffold"
	"github.com/fhevm-labs/create-fhevm/internal/ui"
)

var exampleNoGit bool

func init() {
	exampleCmd.Flags().BoolVar(&exampleNoGit, "no-git", false, "Skip git repository initialization")
	rootCmd.AddCommand(exampleCmd)
}

var exampleCmd = &cobra.Command{
	Use:   "example <key> <destination>",
	Short: "Generate a standalone project for one example",
	Long: `Generate a self-contained Hardhat project for a single FHEVM example.
The project includes the contract stub, a test suite skeleton, a deployment
script, and all build configuration.

Examples:
  create-fhevm example fhe-counter ./fhe-counter
  create-fhevm example blind-auction ./auction --no-git`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			printExampleUsage(cmd.ErrOrStderr())
			return fmt.Errorf("expected <key> and <destination>, got %d argument(s)", len(args))
		}
		key, dest := args[0], args[1]

		config.Load()
		s := &scaffold.Scaffolder{}
		opts := scaffold.Options{SkipGit: exampleNoGit || !config.GitInitEnabled()}

		result, err := s.Example(key, dest, opts)
		if err != nil {
			var unknownErr *scaffold.UnknownKeyError
			if errors.As(err, &unknownErr) {
				printExampleUsage(cmd.ErrOrStderr())
			}
			return err
		}

		printScaffoldResult(cmd, result)
		printNextSteps(cmd, result.Dir)
		return nil
	},
}

// ─── Helpers shared with the category command ──────────────────────

func printExampleUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s example <key> <destination>\n\n", branding.CLIName())
	writeExampleListing(w)
}

func printScaffoldResult(cmd *cobra.Command, result *scaffold.Result) {
	out := cmd.OutOrStdout()
	ui.Successf(out, "Created project at %s", result.Dir)
	for _, f := range result.Files {
		ui.Plainf(out, "  %s", f)
	}
	ui.Infof(out, "Examples: %s", strings.Join(result.Keys, ", "))

	for _, w := range result.Warnings {
		ui.Warnf(cmd.ErrOrStderr(), "%s", w)
	}
}

func printNextSteps(cmd *cobra.Command, dest string) {
	out := cmd.OutOrStdout()
	ui.Plainf(out, "")
	ui.Plainf(out, "Next steps:")
	ui.Plainf(out, "  cd %s", dest)
	ui.Plainf(out, "  npm install")
	ui.Plainf(out, "  npx hardhat compile")
	ui.Plainf(out, "  npx hardhat test")
	ui.Plainf(out, "  npx hardhat run scripts/deploy.ts --network sepolia")
	ui.Plainf(out, "")
	ui.Infof(out, "FHEVM docs: %s", branding.DocsURL())
}
