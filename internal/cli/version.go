package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fhevm-labs/create-fhevm/internal/branding"
	"github.com/fhevm-labs/create-fhevm/internal/updater"
)

var (
	versionShort bool
	versionJSON  bool
	versionCheck bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "Check GitHub for a newer release")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionCheck {
			return runVersionCheck()
		}

		if versionShort {
			fmt.Println(buildVersion)
			return nil
		}

		if versionJSON {
			info := map[string]string{
				"version": buildVersion,
				"commit":  buildCommit,
				"date":    buildDate,
				"module":  branding.GoModule(),
			}
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Printf("%s version %s (commit: %s, built: %s)\n",
			branding.CLIName(), buildVersion, buildCommit, buildDate)
		return nil
	},
}

func runVersionCheck() error {
	fmt.Fprintln(os.Stderr, "Checking for updates...")

	u := updater.New(buildVersion)
	release, err := u.CheckLatestVersion()
	if err != nil {
		return fmt.Errorf("checking for updates: %w", err)
	}

	available, err := updater.IsUpdateAvailable(buildVersion, release.Version)
	if err != nil {
		// A dev build always counts as updateable.
		if buildVersion == "dev" {
			available = true
		} else {
			return fmt.Errorf("comparing versions: %w", err)
		}
	}

	if available {
		fmt.Printf("Update available: %s -> %s\n", buildVersion, release.Version)
		fmt.Printf("    Release notes: %s\n", release.HTMLURL)
	} else {
		fmt.Printf("You are on the latest version (%s)\n", buildVersion)
	}
	return nil
}
