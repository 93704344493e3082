package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/geoio"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/params"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/pipeline"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/store"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/validation"
)

type runOptions struct {
	input            string
	output           string
	csv              string
	pgDSN            string
	workers          int
	dropNullGeometry bool
	crs              string
}

func loadConfig(g *globalFlags) (*params.Config, error) {
	cfg, err := params.LoadOrDefault(g.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading parameters: %w", err)
	}
	return cfg, nil
}

// loadAndValidate loads the parameters and the settlements and runs every
// validation check.
func loadAndValidate(g *globalFlags, input string, opts geoio.Options) (*params.Config, *geoio.Collection, *validation.Report, error) {
	cfg, err := loadConfig(g)
	if err != nil {
		return nil, nil, nil, err
	}
	c, err := geoio.ReadFile(input, opts)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading settlements: %w", err)
	}
	rep := validation.ValidateParams(cfg)
	rep.Merge(validation.ValidateSettlements(c.Records))
	return cfg, c, rep, nil
}

func runValidate(g *globalFlags, input, crs string) error {
	_, c, rep, err := loadAndValidate(g, input, geoio.Options{CRS: crs})
	if err != nil {
		return err
	}
	fmt.Printf("%d settlements read from %s\n\n", len(c.Records), input)
	printValidationReport(os.Stdout, rep)
	return rep.Err()
}

func runPlan(g *globalFlags, opts runOptions, log *zap.Logger) error {
	cfg, c, rep, err := loadAndValidate(g, opts.input, geoio.Options{
		CRS:              opts.crs,
		DropNullGeometry: opts.dropNullGeometry,
	})
	if err != nil {
		return err
	}
	if !rep.Valid {
		printValidationReport(os.Stderr, rep)
		return rep.Err()
	}
	for _, w := range rep.Warnings {
		log.Warn(w.Message, zap.String("path", w.Path), zap.Any("value", w.Value))
	}
	if c.Skipped > 0 {
		log.Warn("features without geometry skipped", zap.Int("count", c.Skipped))
	}

	summary := pipeline.Run(c.Records, cfg, pipeline.Options{Workers: opts.workers, Logger: log})
	summary.Skipped = c.Skipped

	if err := writeOutputs(c, opts, log); err != nil {
		return err
	}

	// Keep stdout clean when it carries the GeoJSON.
	var out io.Writer = os.Stdout
	if opts.output == "-" {
		out = os.Stderr
	}
	printSummary(out, summary)
	return nil
}

func writeOutputs(c *geoio.Collection, opts runOptions, log *zap.Logger) (err error) {
	switch opts.output {
	case "":
	case "-":
		if err := geoio.Encode(os.Stdout, c); err != nil {
			return fmt.Errorf("writing GeoJSON: %w", err)
		}
	default:
		if err := geoio.WriteFile(opts.output, c); err != nil {
			return err
		}
		log.Info("GeoJSON written", zap.String("path", opts.output))
	}

	var writers []store.ResultWriter
	if opts.csv != "" {
		w, err := store.NewCSVWriter(opts.csv)
		if err != nil {
			return err
		}
		writers = append(writers, w)
	}
	if opts.pgDSN != "" {
		w, err := store.NewPostgresWriter(opts.pgDSN)
		if err != nil {
			return errors.Join(err, closeAll(writers))
		}
		writers = append(writers, w)
	}
	defer func() {
		err = errors.Join(err, closeAll(writers))
	}()

	for _, w := range writers {
		if err := w.Write(c.Records); err != nil {
			return err
		}
	}
	if len(writers) > 0 {
		log.Info("results stored", zap.Int("backends", len(writers)), zap.Int("settlements", len(c.Records)))
	}
	return nil
}

// closeAll closes every writer and joins the failures.
func closeAll(writers []store.ResultWriter) error {
	var errs []error
	for _, w := range writers {
		if err := w.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func runSummary(g *globalFlags, input string, workers int, log *zap.Logger) error {
	cfg, c, rep, err := loadAndValidate(g, input, geoio.Options{})
	if err != nil {
		return err
	}
	if !rep.Valid {
		printValidationReport(os.Stderr, rep)
		return rep.Err()
	}
	summary := pipeline.Run(c.Records, cfg, pipeline.Options{Workers: workers, Logger: log})
	printSummary(os.Stdout, summary)
	return nil
}

func runConfig(g *globalFlags) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	data, err := cfg.YAML()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
