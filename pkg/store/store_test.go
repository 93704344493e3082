package store

import (
	"database/sql"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/settlement"
)

var (
	_ ResultWriter = (*PostgresWriter)(nil)
	_ ResultWriter = (*CSVWriter)(nil)
)

func TestUpsertSQLPlaceholders(t *testing.T) {
	n := len(settlement.OutputColumns)
	q := upsertSQL(2)

	if !strings.Contains(q, "INSERT INTO settlement_results") {
		t.Errorf("query does not target %s:\n%s", Table, q)
	}
	if !strings.Contains(q, "ON CONFLICT (identifier) DO UPDATE SET") {
		t.Errorf("query is not an upsert:\n%s", q)
	}
	if strings.Contains(q, "identifier = EXCLUDED.identifier") {
		t.Error("primary key should not be updated")
	}
	if !strings.Contains(q, "optimal_tech = EXCLUDED.optimal_tech") {
		t.Error("expected optimal_tech to be updated on conflict")
	}
	last := "$" + strconv.Itoa(2*n) + ")"
	if !strings.Contains(q, last) {
		t.Errorf("expected final placeholder %s", last)
	}
	if strings.Contains(q, "$"+strconv.Itoa(2*n+1)) {
		t.Error("too many placeholders")
	}
}

func TestBatchArgsMatchColumns(t *testing.T) {
	batch := []settlement.Record{
		{ID: "A", Population: 10, LCOEGrid: math.Inf(1), OptimalTech: settlement.TechGrid, Investment: 1234.5678},
		{ID: "B", Population: 20, NumBuildings: 4, HasBuildings: true, OptimalTech: settlement.TechSHS},
	}
	args := batchArgs(batch)
	n := len(settlement.OutputColumns)
	if len(args) != 2*n {
		t.Fatalf("args = %d, want %d", len(args), 2*n)
	}

	index := func(col string) int {
		for i, c := range settlement.OutputColumns {
			if c == col {
				return i
			}
		}
		t.Fatalf("unknown column %s", col)
		return -1
	}
	if args[index(settlement.ColID)] != "A" || args[n+index(settlement.ColID)] != "B" {
		t.Error("identifiers out of place")
	}
	if v := args[index(settlement.ColLCOEGrid)].(sql.NullFloat64); v.Valid {
		t.Errorf("infinite lcoe should be NULL, got %+v", v)
	}
	if v := args[index(settlement.ColNumBuildings)].(sql.NullInt64); v.Valid {
		t.Errorf("absent building count should be NULL, got %+v", v)
	}
	if v := args[n+index(settlement.ColNumBuildings)].(sql.NullInt64); !v.Valid || v.Int64 != 4 {
		t.Errorf("building count = %+v, want 4", v)
	}
	if v := args[index(settlement.ColInvestment)].(decimal.NullDecimal); !v.Valid || !v.Decimal.Equal(decimal.RequireFromString("1234.57")) {
		t.Errorf("investment = %+v, want 1234.57", v)
	}
	if args[n+index(settlement.ColOptimalTech)] != "SHS" {
		t.Errorf("optimal_tech = %v, want SHS", args[n+index(settlement.ColOptimalTech)])
	}
}

func TestCreateTableSQL(t *testing.T) {
	q := createTableSQL()
	for _, want := range []string{
		"CREATE TABLE IF NOT EXISTS settlement_results",
		"identifier TEXT PRIMARY KEY",
		"population INTEGER",
		"is_urban BOOLEAN",
		"investment NUMERIC(16,2)",
		"lcoe_mg DOUBLE PRECISION",
	} {
		if !strings.Contains(q, want) {
			t.Errorf("schema missing %q:\n%s", want, q)
		}
	}
}

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "results.csv")
	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter failed: %v", err)
	}
	if err := w.Write([]settlement.Record{{ID: "A", OptimalTech: settlement.TechGrid}}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "identifier,population") {
		t.Errorf("csv = %q", string(data))
	}
}
