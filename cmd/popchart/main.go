// Package main provides the CLI entry point for popchart.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ukaji3/popchart-go/pkg/popchart"
	"github.com/ukaji3/popchart-go/pkg/popchart/models"
	"github.com/ukaji3/popchart-go/pkg/popchart/output"
)

// defaultInput is read when no input is given.
const defaultInput = "population_prospects.csv"

type options struct {
	outputPath string
	format     string
	pretty     bool
	configPath string
	sheet      string
	cellRange  string
	timeout    time.Duration
	exportXLSX string
	debug      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "popchart [input]",
		Short: "Render population projection line charts",
		Long: `popchart reads a type/year/population table (CSV, XLSX or XLS, local
or http(s)) and renders the estimate and projection series as an SVG
line chart with collision-free end-of-line labels.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(cmd.ErrOrStderr(), "popchart: ", 0)
			if err := run(cmd, args, opts, logger); err != nil {
				logger.Print(err)
				return err
			}
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.StringVar(&opts.format, "format", "", "Output format: svg, png, json (default: from output extension)")
	flags.BoolVar(&opts.pretty, "pretty", false, "Pretty-print JSON output")
	flags.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	flags.StringVar(&opts.sheet, "sheet", "", "Worksheet of an XLSX input")
	flags.StringVar(&opts.cellRange, "range", "", "Cell range of a workbook input, e.g. A1:C200")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Download timeout for URL inputs (default 30s)")
	flags.StringVar(&opts.exportXLSX, "export-xlsx", "", "Also write the plotted data and labels to this xlsx file")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug output")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, opts *options, logger *log.Logger) error {
	debugf := func(format string, v ...interface{}) {
		if opts.debug {
			logger.Printf("[DEBUG] "+format, v...)
		}
	}

	input := defaultInput
	if len(args) > 0 {
		input = args[0]
	}

	cfg, err := popchart.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if err := popchart.ApplyEnv(&cfg, nil); err != nil {
		return err
	}
	applyFlags(cmd, opts, &cfg)
	debugf("config: %+v", cfg.Source)

	format := output.FormatFromPath(opts.outputPath)
	if opts.format != "" {
		if format, err = output.ParseFormat(opts.format); err != nil {
			return err
		}
	}

	ds, err := popchart.LoadDataset(cmd.Context(), input, cfg)
	if err != nil {
		return fmt.Errorf("loading failed: %w", err)
	}
	debugf("loaded %d records from %s, categories %v", ds.Len(), ds.Source, ds.Categories())

	doc, err := popchart.RenderChart(ds, cfg)
	if err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}
	for _, w := range doc.Warnings {
		logger.Printf("warning: %s", w)
	}
	if opts.debug {
		dump := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true}
		dump.Fdump(cmd.ErrOrStderr(), doc.Labels)
	}

	var buf bytes.Buffer
	if err := output.Write(&buf, doc, format, opts.pretty); err != nil {
		return popchart.NewRenderError("encode", err)
	}
	if err := writeOutput(cmd.OutOrStdout(), opts.outputPath, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if opts.exportXLSX != "" {
		if err := exportXLSX(opts.exportXLSX, ds, doc); err != nil {
			return fmt.Errorf("failed to write xlsx export: %w", err)
		}
		debugf("exported workbook to %s", opts.exportXLSX)
	}

	if opts.outputPath != "" {
		printSummary(cmd.ErrOrStderr(), ds, doc, opts.outputPath)
	}
	return nil
}

// applyFlags lets explicitly set flags win over file and environment values.
func applyFlags(cmd *cobra.Command, opts *options, cfg *popchart.Config) {
	flags := cmd.Flags()
	if flags.Changed("sheet") {
		cfg.Source.Sheet = opts.sheet
	}
	if flags.Changed("range") {
		cfg.Source.Range = opts.cellRange
	}
	if flags.Changed("timeout") {
		cfg.Source.FetchTimeout = opts.timeout
	}
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func exportXLSX(path string, ds *models.Dataset, doc *models.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := output.ExportXLSX(f, ds, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printSummary(w io.Writer, ds *models.Dataset, doc *models.Document, path string) {
	p := message.NewPrinter(language.English)

	minPop, maxPop, _ := ds.PopulationExtent()
	minYear, maxYear, _ := ds.YearExtent()
	p.Fprintf(w, "%s: %d series, %d labels, %s-%s, population %.f-%.f thousand\n",
		path, len(doc.Series), len(doc.Labels),
		strconv.Itoa(minYear), strconv.Itoa(maxYear), minPop, maxPop)
}
