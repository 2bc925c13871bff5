package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/propkit/propsgen/internal/generator"
)

// deriveVersion inspects build info for module version or vcs revision.
// preference order: module semantic version -> short commit hash -> "devel".
func deriveVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			return bi.Main.Version
		}
		var revision string
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				revision = s.Value
				break
			}
		}
		if len(revision) >= 12 { // short hash for readability
			return revision[:12]
		}
		if revision != "" {
			return revision
		}
	}
	return "devel"
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "propsgen",
		Short:         "Generate native prop declarations from a component schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newGenerateCmd())
	return cmd
}

func newGenerateCmd() *cobra.Command {
	var schemaPath string
	var output string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the props header for a schema document",
		RunE: func(cmd *cobra.Command, args []string) error {
			// canonical command representation for the generated banner,
			// independent of how the flags were actually spelled
			displayCmd := strings.Join([]string{
				"propsgen generate",
				"--schema=" + schemaPath,
				"--output=" + output,
			}, " ")
			cfg := generator.Config{
				Schema:  schemaPath,
				Output:  output,
				Command: displayCmd,
				Version: deriveVersion(),
			}
			return generator.Run(cfg)
		},
	}
	cmd.Flags().StringVar(&schemaPath, "schema", "schema.yaml", "Path to the component schema document")
	cmd.Flags().StringVar(&output, "output", "Props.h", "Output filename for generated declarations")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "propsgen: %v\n", err)
		os.Exit(1)
	}
}
