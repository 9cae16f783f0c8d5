package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fhevm-labs/create-fhevm/internal/branding"
	"github.com/fhevm-labs/create-fhevm/internal/config"
	"github.com/fhevm-labs/create-fhevm/internal/updater"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` materializes self-contained FHEVM example projects from a
built-in catalog. Each generated project ships with a contract stub, a test
suite skeleton, a deployment script, and a ready-to-run Hardhat setup.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// The version command handles update checks itself.
		if cmd.Name() == "version" {
			return
		}

		// Non-blocking banner from cached version check.
		u := updater.New(buildVersion)
		u.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
