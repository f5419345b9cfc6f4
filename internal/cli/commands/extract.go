package commands

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/salmankhan-prs/mongoose-schema-extractor/internal/cli/config"
	"github.com/salmankhan-prs/mongoose-schema-extractor/internal/extract"
	"github.com/salmankhan-prs/mongoose-schema-extractor/internal/render"
	"github.com/salmankhan-prs/mongoose-schema-extractor/internal/schema"
	"github.com/salmankhan-prs/mongoose-schema-extractor/internal/utils"
)

var (
	extractFormat  string
	extractInclude []string
	extractExclude []string
	extractDepth   int
	extractOut     string
	extractForce   bool
	extractVerbose bool
)

// NewExtractCommand creates the extract command
func NewExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [definitions-file]",
		Short: "Extract registered schemas and render them",
		Long: `Extract registered collection schemas and render them in the
chosen format.

The definitions file is a JSON document describing the registered models.
When the argument is omitted, the path comes from schemaext.yml. Unknown
format names fall back to raw JSON output.`,
		Example: `  # Render the compact prompt block to stdout
  schemaext extract schemas.json

  # TypeScript interfaces into a file
  schemaext extract schemas.json --format interface --out models.d.ts

  # Skip virtuals and validators, shallow walk
  schemaext extract schemas.json --exclude virtuals,validators --depth 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExtract,
	}

	cmd.Flags().StringVarP(&extractFormat, "format", "f", "", "Output format: raw, compact, human, interface, graphql")
	cmd.Flags().StringSliceVar(&extractInclude, "include", nil, "Features to include: id, defaults, validators, timestamps, virtuals, indexes")
	cmd.Flags().StringSliceVar(&extractExclude, "exclude", nil, "Features to exclude")
	cmd.Flags().IntVar(&extractDepth, "depth", 0, "Maximum nesting depth (default 10)")
	cmd.Flags().StringVarP(&extractOut, "out", "o", "", "Write output to file instead of stdout")
	cmd.Flags().BoolVar(&extractForce, "force", false, "Overwrite the output file without asking")
	cmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Verbose logging")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := newLogger(extractVerbose)
	defer logger.Sync() //nolint:errcheck

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
	logger.Info("loaded definitions",
		zap.String("path", definitions),
		zap.Int("models", registry.Count()))

	opts := resolveExtractOptions(cmd, cfg)
	schemas, err := extract.ExtractRegistry(registry, opts)
	if err != nil {
		return err
	}
	for name, ms := range schemas {
		logger.Debug("extracted model",
			zap.String("model", name),
			zap.Int("fields", len(ms.Fields)),
			zap.Bool("circular", ms.IsCircular()))
	}

	formatName := extractFormat
	if formatName == "" {
		formatName = cfg.Format
	}
	format, known := render.ParseFormat(formatName)
	if !known {
		logger.Warn("unknown format, falling back to raw",
			zap.String("format", formatName))
	}

	output := render.Render(format, schemas)

	outFile := extractOut
	if outFile == "" {
		outFile = cfg.Output.File
	}
	if outFile == "" {
		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	}

	if err := writeOutput(outFile, output, extractForce); err != nil {
		return err
	}
	color.Green("Wrote %d models to %s (%s)", len(schemas), outFile, format)
	logger.Info("output written",
		zap.String("file", outFile),
		zap.String("format", string(format)),
		zap.Int("bytes", len(output)))
	return nil
}

// resolveExtractOptions merges CLI flags over config defaults. The include
// list distinguishes "not provided" (nil, everything on) from an explicit
// empty list (only the id default survives).
func resolveExtractOptions(cmd *cobra.Command, cfg *config.Config) extract.Options {
	include := cfg.Extract.Include
	if cmd.Flags().Changed("include") {
		include = extractInclude
		if include == nil {
			include = []string{}
		}
	}

	exclude := cfg.Extract.Exclude
	if cmd.Flags().Changed("exclude") {
		exclude = extractExclude
	}

	depth := cfg.Extract.Depth
	if cmd.Flags().Changed("depth") {
		depth = extractDepth
	}

	return extract.ResolveOptions(include, exclude, depth)
}

// loadDefinitions loads one definitions file, or every .json file under a
// directory merged into a single registry.
func loadDefinitions(path string) (*schema.Registry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions: %w", err)
	}
	if !info.IsDir() {
		return schema.LoadFile(path)
	}

	files, err := utils.FindDefinitionFiles(path)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .json definition files found in %s", path)
	}

	merged := schema.NewRegistry()
	for _, file := range files {
		reg, err := schema.LoadFile(file)
		if err != nil {
			return nil, err
		}
		for _, name := range reg.Names() {
			m, _ := reg.Get(name)
			if _, err := merged.Register(name, m.Schema); err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
		}
	}
	return merged, nil
}

// writeOutput writes the rendered text, confirming before overwriting an
// existing file unless forced.
func writeOutput(path, output string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		overwrite := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("%s already exists. Overwrite?", path),
		}
		if err := survey.AskOne(prompt, &overwrite); err != nil {
			return err
		}
		if !overwrite {
			return fmt.Errorf("aborted: %s already exists", path)
		}
	}

	if err := os.WriteFile(path, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// newLogger builds the pipeline logger. Verbose mode uses the development
// config; failures degrade to a no-op logger rather than aborting.
func newLogger(verbose bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
