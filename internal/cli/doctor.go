package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fhevm-labs/create-fhevm/internal/branding"
	"github.com/fhevm-labs/create-fhevm/internal/config"
	"github.com/fhevm-labs/create-fhevm/internal/registry"
	"github.com/fhevm-labs/create-fhevm/internal/toolchain"
	"github.com/fhevm-labs/create-fhevm/internal/ui"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that generated projects can be built on this system",
	Long: `Run diagnostic checks: scaffolder catalog integrity, configuration,
and the external tools (node, npm, git) generated projects need.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		runCatalogCheck(out)
		runConfigCheck(out)
		failed := runToolchainCheck(out)

		if failed > 0 {
			return fmt.Errorf("%d toolchain check(s) failed", failed)
		}
		fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	},
}

func runCatalogCheck(w io.Writer) {
	fmt.Fprintln(w, ui.Bold("Catalog check:"))
	examples := registry.Examples()
	categories := registry.Categories()
	fmt.Fprintf(w, "  [ OK ] %d examples, %d categories\n", len(examples), len(categories))

	for _, cat := range categories {
		for _, memberKey := range cat.Examples {
			if _, ok := registry.LookupExample(memberKey); !ok {
				fmt.Fprintf(w, "  [FAIL] category %s references unknown example %q\n", cat.Key, memberKey)
			}
		}
	}
}

func runConfigCheck(w io.Writer) {
	fmt.Fprintln(w, ui.Bold("Config check:"))
	config.Load()
	fmt.Fprintf(w, "  [ OK ] config file %s\n", config.FilePath())
	if !config.GitInitEnabled() {
		fmt.Fprintf(w, "  [INFO] git initialization disabled (set %s=true to override)\n",
			branding.EnvVar("GIT_INIT"))
	}
}

// runToolchainCheck probes the external tools and returns the number of
// missing ones. Present-but-old tools are warnings, not failures.
func runToolchainCheck(w io.Writer) int {
	fmt.Fprintln(w, ui.Bold("Toolchain check:"))

	failed := 0
	for _, st := range toolchain.ProbeAll() {
		switch {
		case !st.Installed:
			fmt.Fprintf(w, "  [MISS] %s not found\n", st.Tool.Name)
			failed++
		case !st.Supported:
			fmt.Fprintf(w, "  [WARN] %s %s found at %s (want >= %s)\n",
				st.Tool.Name, st.Version, st.Path, st.Tool.MinVersion)
		case st.Version == "":
			fmt.Fprintf(w, "  [ OK ] %s found at %s (version unknown)\n", st.Tool.Name, st.Path)
		default:
			fmt.Fprintf(w, "  [ OK ] %s %s found at %s\n", st.Tool.Name, st.Version, st.Path)
		}
	}
	return failed
}
