// Package pipeline runs the demand and least-cost models over a settlement
// collection.
package pipeline

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/demand"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/lcoe"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/params"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/report"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/settlement"
)

// Options controls a pipeline run.
type Options struct {
	// Workers is the number of partitions processed concurrently. Values
	// below 2 run sequentially.
	Workers int
	Logger  *zap.Logger
}

// Run estimates demand and selects a technology for every record in place,
// then summarizes the result. Partitions share only cfg, which is read-only.
func Run(records []settlement.Record, cfg *params.Config, opts Options) *report.Summary {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()

	chunks := Partition(len(records), opts.Workers)
	if len(chunks) <= 1 {
		plan(records, cfg)
	} else {
		var g errgroup.Group
		g.SetLimit(opts.Workers)
		for _, c := range chunks {
			c := c
			part := records[c.Start:c.End]
			g.Go(func() error {
				plan(part, cfg)
				log.Debug("partition planned", zap.Int("start", c.Start), zap.Int("end", c.End))
				return nil
			})
		}
		// plan never fails; Wait only joins the partitions.
		_ = g.Wait()
	}

	elapsed := time.Since(start)
	summary := report.Summarize(records)
	log.Info("settlements planned",
		zap.Int("settlements", len(records)),
		zap.Int("partitions", max(len(chunks), 1)),
		zap.Duration("elapsed", elapsed),
		zap.Float64("per_second", throughput(len(records), elapsed)),
	)
	return summary
}

func plan(records []settlement.Record, cfg *params.Config) {
	demand.Estimate(records, cfg)
	lcoe.Select(records, cfg)
}

// Chunk is a half-open index range [Start, End).
type Chunk struct {
	Start, End int
}

// Partition splits n items into at most workers contiguous chunks of
// near-equal size.
func Partition(n, workers int) []Chunk {
	if n == 0 {
		return nil
	}
	if workers < 2 {
		return []Chunk{{0, n}}
	}
	workers = min(workers, n)
	size := (n + workers - 1) / workers

	var chunks []Chunk
	for start := 0; start < n; start += size {
		chunks = append(chunks, Chunk{start, min(start+size, n)})
	}
	return chunks
}

func throughput(n int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(n) / elapsed.Seconds()
}
