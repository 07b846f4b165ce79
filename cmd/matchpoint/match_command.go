package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"matchpoint/internal/logging"
	"matchpoint/internal/match"
	"matchpoint/internal/report"
	"matchpoint/internal/roster"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var (
		refPath        string
		eventPath      string
		eventDir       string
		outputPath     string
		outputDir      string
		htmlFlag       bool
		summaryFlag    bool
		fuzzyThreshold float64
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match event roster files against a reference registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			if eventPath == "" && eventDir == "" {
				return errors.New("either --event or --event-dir must be provided")
			}
			if eventPath != "" && eventDir != "" {
				return errors.New("--event and --event-dir are mutually exclusive")
			}
			if eventPath != "" && outputPath == "" {
				return errors.New("--output is required with --event")
			}
			if eventDir != "" && outputDir == "" {
				return errors.New("--output-dir is required with --event-dir")
			}

			threshold := cfg.Matching.LastnameThreshold
			if cmd.Flags().Changed("fuzzy-threshold") {
				if fuzzyThreshold < 0 || fuzzyThreshold > 1 {
					return fmt.Errorf("fuzzy threshold %v outside [0, 1]", fuzzyThreshold)
				}
				threshold = fuzzyThreshold
			}
			html := cfg.Report.HTML
			if cmd.Flags().Changed("html") {
				html = htmlFlag
			}
			summary := cfg.Report.Summary
			if cmd.Flags().Changed("summary") {
				summary = summaryFlag
			}

			refPlayers, err := roster.ReadPlayers(refPath, logger)
			if err != nil {
				return fmt.Errorf("read reference file: %w", err)
			}
			engine := match.NewEngine(logger, threshold)

			run := matchRun{
				engine:     engine,
				refPlayers: refPlayers,
				html:       html,
				summary:    summary,
				logger:     logger,
				out:        cmd.OutOrStdout(),
			}

			if eventPath != "" {
				return run.processEvent(eventPath, outputPath)
			}
			return run.processDirectory(eventDir, outputDir, refPath)
		},
	}

	cmd.Flags().StringVar(&refPath, "ref", "", "Reference registry CSV file")
	cmd.Flags().StringVar(&eventPath, "event", "", "Event roster CSV file")
	cmd.Flags().StringVar(&eventDir, "event-dir", "", "Directory of event CSV files (batch mode)")
	cmd.Flags().StringVar(&outputPath, "output", "", "Report output path (CSV)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Report output directory (batch mode)")
	cmd.Flags().BoolVar(&htmlFlag, "html", false, "Also write an HTML report next to the CSV")
	cmd.Flags().BoolVar(&summaryFlag, "summary", false, "Print a summary table to stdout")
	cmd.Flags().Float64Var(&fuzzyThreshold, "fuzzy-threshold", match.DefaultLastnameThreshold, "Fuzzy last-name similarity threshold")
	_ = cmd.MarkFlagRequired("ref")

	return cmd
}

type matchRun struct {
	engine     *match.Engine
	refPlayers []roster.Player
	html       bool
	summary    bool
	logger     *slog.Logger
	out        io.Writer
}

func (r matchRun) processEvent(eventPath, outputPath string) error {
	eventPlayers, err := roster.ReadPlayers(eventPath, r.logger)
	if err != nil {
		return fmt.Errorf("read event file: %w", err)
	}

	results := r.engine.Match(r.refPlayers, eventPlayers)

	if err := report.WriteCSV(results, outputPath); err != nil {
		return err
	}
	r.logger.Info("csv report written",
		logging.String(logging.FieldEventFile, filepath.Base(eventPath)),
		logging.String("path", outputPath),
		logging.Int("rows", len(results)))

	if r.html {
		htmlPath := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".html"
		if err := report.WriteHTML(results, htmlPath, fileStem(eventPath)); err != nil {
			return err
		}
		r.logger.Info("html report written", logging.String("path", htmlPath))
	}

	if r.summary {
		report.WriteSummary(r.out, filepath.Base(eventPath), report.ComputeStats(results))
	}
	return nil
}

func (r matchRun) processDirectory(eventDir, outputDir, refPath string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	eventFiles, err := filepath.Glob(filepath.Join(eventDir, "*.csv"))
	if err != nil {
		return fmt.Errorf("scan event directory: %w", err)
	}

	// The reference registry often lives next to the event files; skip it.
	refAbs, err := filepath.Abs(refPath)
	if err != nil {
		return fmt.Errorf("resolve reference path: %w", err)
	}
	filtered := eventFiles[:0]
	for _, f := range eventFiles {
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("resolve event path: %w", err)
		}
		if abs != refAbs {
			filtered = append(filtered, f)
		}
	}

	if len(filtered) == 0 {
		r.logger.Warn("no event files found", logging.String("dir", eventDir))
		return nil
	}

	for _, eventPath := range filtered {
		outputPath := filepath.Join(outputDir, "report_"+fileStem(eventPath)+".csv")
		r.logger.Info("processing event file",
			logging.String(logging.FieldEventFile, filepath.Base(eventPath)))
		if err := r.processEvent(eventPath, outputPath); err != nil {
			return fmt.Errorf("process %s: %w", filepath.Base(eventPath), err)
		}
	}
	return nil
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
