package main

import (
	"fmt"
	"io"

	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/report"
	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/validation"
)

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  [%s] %s\n", e.Level, e.Message)
			if e.Path != "" {
				fmt.Fprintf(w, "    -> %s = %v\n", e.Path, e.Value)
			}
			if e.Expected != "" {
				fmt.Fprintf(w, "    expected: %s\n", e.Expected)
			}
			if e.ConflictWith != "" {
				fmt.Fprintf(w, "    conflicts with: %s\n", e.ConflictWith)
			}
			for _, s := range e.Suggestions {
				fmt.Fprintf(w, "    * %s\n", s)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, wr := range r.Warnings {
			fmt.Fprintf(w, "  [%s] %s\n", wr.Level, wr.Message)
			if wr.Path != "" {
				fmt.Fprintf(w, "    -> %s = %v\n", wr.Path, wr.Value)
			}
			if wr.Expected != "" {
				fmt.Fprintf(w, "    expected: %s\n", wr.Expected)
			}
			for _, s := range wr.Suggestions {
				fmt.Fprintf(w, "    * %s\n", s)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printSummary(w io.Writer, s *report.Summary) {
	fmt.Fprintln(w, "Least-Cost Electrification Plan")
	fmt.Fprintln(w, "===============================")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-10s %8s %7s %12s %12s %14s %14s %10s %10s\n",
		"Tech", "Count", "Share", "Population", "Households", "Demand kWh", "Investment", "Mean LCOE", "Med LCOE")
	fmt.Fprintf(w, "%-10s %8s %7s %12s %12s %14s %14s %10s %10s\n",
		"----------", "--------", "-------", "------------", "------------", "--------------", "--------------", "----------", "----------")

	rows := append(append([]report.TechSummary{}, s.ByTech...), s.Total)
	for _, row := range rows {
		fmt.Fprintf(w, "%-10s %8d %6.1f%% %12d %12d %14s %14s %10.3f %10.3f\n",
			row.Tech,
			row.Settlements,
			100*row.Share(s.Total),
			row.Population,
			row.Households,
			formatMoney(row.DemandKWh),
			"$"+formatMoney(row.Investment.InexactFloat64()),
			row.MeanLCOE,
			row.MedianLCOE,
		)
	}

	total, perCapita := summaryTotals(s)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Total investment:  $%s\n", formatMoney(total))
	fmt.Fprintf(w, "  Per capita:        $%s\n", formatMoney(perCapita))
	if s.Skipped > 0 {
		fmt.Fprintf(w, "  Skipped features:  %d\n", s.Skipped)
	}
}

// summaryTotals returns the total and per-capita investment.
func summaryTotals(s *report.Summary) (float64, float64) {
	total := s.Total.Investment.InexactFloat64()
	perCapita := 0.0
	if s.Total.Population > 0 {
		perCapita = total / float64(s.Total.Population)
	}
	return total, perCapita
}

func formatMoney(v float64) string {
	if v >= 1_000_000_000 {
		return fmt.Sprintf("%.2fB", v/1_000_000_000)
	}
	if v >= 1_000_000 {
		return fmt.Sprintf("%.2fM", v/1_000_000)
	}
	if v >= 1_000 {
		return fmt.Sprintf("%.0fK", v/1_000)
	}
	return fmt.Sprintf("%.0f", v)
}
