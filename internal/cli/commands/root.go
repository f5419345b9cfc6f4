// Package commands implements the schemaext command tree.
package commands

import (
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

var noColor bool

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "schemaext",
		Short: "Extract and render document collection schemas",
		Long: color.CyanString(`schemaext - schema extraction and rendering

schemaext walks registered collection schemas and re-renders them as a
compact prompt block, a TypeScript interface file, a GraphQL type file,
a human-readable report, or raw JSON.

Features:
  • Recursive embedded-document traversal with cycle detection
  • Depth-bounded extraction
  • Reference resolution across models
  • Include/exclude toggles for ids, defaults, validators,
    timestamps, virtuals, and indexes`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewExtractCommand())
	rootCmd.AddCommand(NewModelsCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the schemaext version, Git commit, build date, and Go version",
		Run: func(cmd *cobra.Command, args []string) {
			// Set GoVersion to actual runtime if not set at build time
			goVer := GoVersion
			if goVer == "unknown" {
				goVer = runtime.Version()
			}

			cmd.Printf("schemaext version: %s\n", Version)
			cmd.Printf("Git commit: %s\n", GitCommit)
			cmd.Printf("Build date: %s\n", BuildDate)
			cmd.Printf("Go version: %s\n", goVer)
		},
	}
}
