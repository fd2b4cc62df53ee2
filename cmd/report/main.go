// Command report regenerates the static-analysis deliverables from the
// metrics workbook: a styled HTML summary table, a plain Excel copy, and a
// suite of PNG charts.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/antoinemansour7/SOEN321-static-analysis/internal/charts"
	"github.com/antoinemansour7/SOEN321-static-analysis/internal/config"
	"github.com/antoinemansour7/SOEN321-static-analysis/internal/dataset"
	reperrors "github.com/antoinemansour7/SOEN321-static-analysis/internal/errors"
	"github.com/antoinemansour7/SOEN321-static-analysis/internal/exporter"
	"github.com/antoinemansour7/SOEN321-static-analysis/internal/infrastructure"
	"github.com/antoinemansour7/SOEN321-static-analysis/internal/styling"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	excelIn := flag.String("excel-in", cfg.Input.ExcelPath, "path to the source Excel workbook")
	htmlOut := flag.String("html-out", cfg.Output.HTMLPath, "where to write the styled HTML summary")
	excelOut := flag.String("excel-out", cfg.Output.ExcelPath, "where to write the plain Excel copy")
	plotsDir := flag.String("plots-dir", cfg.Output.PlotsDir, "directory for generated PNG charts")
	skipHTML := flag.Bool("skip-html", false, "skip generating HTML output")
	skipExcel := flag.Bool("skip-excel", false, "skip generating Excel output")
	skipPlots := flag.Bool("skip-plots", false, "skip generating PNG charts")
	flag.Parse()

	logger, logFile, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx := infrastructure.ContextWithRunID(context.Background())
	log := infrastructure.LoggerWithContext(ctx, logger)

	log.Info("Loading metrics workbook", "path", *excelIn)
	table, err := dataset.Load(*excelIn)
	if err != nil {
		log.Error("Failed to load workbook", "error", reperrors.UserMessage(err))
		os.Exit(1)
	}
	log.Info("Loaded metrics table",
		"columns", len(table.Columns), "rows", len(table.Rows))

	styled := styling.Style(table, cfg.Columns)

	if !*skipHTML {
		if err := exporter.WriteHTML(styled, *htmlOut); err != nil {
			log.Error("Failed to write HTML summary", "error", err)
			os.Exit(1)
		}
		log.Info("Wrote styled HTML table", "path", absPath(*htmlOut))
	}

	if !*skipExcel {
		if err := exporter.WriteExcel(table, *excelOut); err != nil {
			log.Error("Failed to write Excel copy", "error", err)
			os.Exit(1)
		}
		log.Info("Wrote Excel copy", "path", absPath(*excelOut))
	}

	if !*skipPlots {
		generator := charts.NewGenerator(log, cfg.Columns)
		paths, err := generator.Generate(table, *plotsDir)
		if err != nil {
			log.Error("Failed to generate charts", "error", err)
			os.Exit(1)
		}
		if len(paths) == 0 {
			log.Warn("Skipped chart generation, required columns were missing")
		}
	}

	if *skipHTML && *skipExcel && *skipPlots {
		log.Info("No output requested; use --html-out/--excel-out/--plots-dir to persist results")
	}
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
