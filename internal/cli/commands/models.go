package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/salmankhan-prs/mongoose-schema-extractor/internal/cli/config"
	"github.com/salmankhan-prs/mongoose-schema-extractor/internal/schema"
)

var modelsFormat string

// NewModelsCommand creates the models command
func NewModelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models [definitions-file]",
		Short: "List registered models",
		Long: `List the models registered in a definitions file.

Shows a summary of each model: field count, virtual count, and whether
automatic timestamp tracking is enabled. Use 'extract' to render the
full schemas.`,
		Example: `  # List all models
  schemaext models schemas.json

  # JSON output for tooling
  schemaext models schemas.json --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runModels,
	}

	cmd.Flags().StringVar(&modelsFormat, "format", "table", "Output format: json or table")

	return cmd
}

// ModelSummary contains summary information about a registered model
type ModelSummary struct {
	Name         string `json:"name"`
	FieldCount   int    `json:"field_count"`
	VirtualCount int    `json:"virtual_count"`
	Timestamps   bool   `json:"timestamps"`
	HasSchema    bool   `json:"has_schema"`
}

func runModels(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	definitions := cfg.Definitions
	if len(args) > 0 {
		definitions = args[0]
	}
	if definitions == "" {
		return fmt.Errorf("no definitions file given (pass one as an argument or set 'definitions' in schemaext.yml)")
	}

	registry, err := loadDefinitions(definitions)
	if err != nil {
		return err
	}

	summaries := summarizeModels(registry)
	writer := cmd.OutOrStdout()

	if modelsFormat == "json" {
		return formatModelsAsJSON(summaries, writer)
	}
	return formatModelsAsTable(summaries, writer)
}

func summarizeModels(registry *schema.Registry) []ModelSummary {
	names := registry.Names()
	summaries := make([]ModelSummary, 0, len(names))
	for _, name := range names {
		m, _ := registry.Get(name)
		s := ModelSummary{Name: name, HasSchema: m.HasSchema()}
		if s.HasSchema {
			s.FieldCount = m.Schema.Len()
			s.VirtualCount = len(m.Schema.Virtuals)
			s.Timestamps = m.Schema.Timestamps.Enabled
		}
		summaries = append(summaries, s)
	}
	return summaries
}

// formatModelsAsTable formats model summaries as a human-readable table
func formatModelsAsTable(summaries []ModelSummary, writer io.Writer) error {
	if len(summaries) == 0 {
		fmt.Fprintln(writer, "No models found.")
		return nil
	}

	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	bold.Fprintf(writer, "MODELS (%d total)\n\n", len(summaries))

	for _, s := range summaries {
		fmt.Fprintf(writer, "  %-16s", s.Name)

		if !s.HasSchema {
			yellow.Fprintf(writer, "no schema (skipped by extraction)")
			fmt.Fprintln(writer)
			continue
		}

		if s.FieldCount == 1 {
			fmt.Fprintf(writer, "%d field   ", s.FieldCount)
		} else {
			fmt.Fprintf(writer, "%d fields  ", s.FieldCount)
		}

		if s.VirtualCount > 0 {
			if s.VirtualCount == 1 {
				fmt.Fprintf(writer, "%d virtual   ", s.VirtualCount)
			} else {
				fmt.Fprintf(writer, "%d virtuals  ", s.VirtualCount)
			}
		} else {
			fmt.Fprintf(writer, "-           ")
		}

		if s.Timestamps {
			green.Fprintf(writer, "✓ timestamps")
		}

		fmt.Fprintln(writer)
	}

	return nil
}

// formatModelsAsJSON formats model summaries as JSON
func formatModelsAsJSON(summaries []ModelSummary, writer io.Writer) error {
	output := struct {
		TotalCount int            `json:"total_count"`
		Models     []ModelSummary `json:"models"`
	}{
		TotalCount: len(summaries),
		Models:     summaries,
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
