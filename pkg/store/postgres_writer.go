package store

import (
	"database/sql"
	"fmt"
	"math"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/BadibossPy/settlement-level-electrification-optimization-benin/pkg/settlement"
)

// Table receives one row per settlement, keyed by identifier.
const Table = "settlement_results"

const batchSize = 200

// PostgresWriter persists planned settlements to PostgreSQL.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 5; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(createTableSQL())
	return err
}

func createTableSQL() string {
	defs := make([]string, 0, len(settlement.OutputColumns)+1)
	for _, col := range settlement.OutputColumns {
		def := fmt.Sprintf("%s %s", col, sqlType(col))
		if col == settlement.ColID {
			def += " PRIMARY KEY"
		}
		defs = append(defs, def)
	}
	defs = append(defs, "updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()")
	return fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			%s
		);

		CREATE INDEX IF NOT EXISTS idx_%s_optimal_tech ON %s(optimal_tech);
	`, Table, strings.Join(defs, ",\n\t\t\t"), Table, Table)
}

func sqlType(col string) string {
	switch col {
	case settlement.ColID, settlement.ColOptimalTech:
		return "TEXT"
	case settlement.ColPopulation, settlement.ColNumBuildings, settlement.ColHouseholds,
		settlement.ColTier, settlement.ColHealthFacilities, settlement.ColEducationFacilities:
		return "INTEGER"
	case settlement.ColIsUrban, settlement.ColNightlight:
		return "BOOLEAN"
	case settlement.ColInvestment, settlement.ColCapexGrid, settlement.ColCapexMiniGrid, settlement.ColCapexSHS:
		return "NUMERIC(16,2)"
	}
	return "DOUBLE PRECISION"
}

// Write upserts every record. Existing rows with the same identifier are
// replaced.
func (pw *PostgresWriter) Write(records []settlement.Record) error {
	tx, err := pw.db.Begin()
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	for i := 0; i < len(records); i += batchSize {
		end := min(i+batchSize, len(records))
		batch := records[i:end]
		if _, err := tx.Exec(upsertSQL(len(batch)), batchArgs(batch)...); err != nil {
			tx.Rollback()
			return fmt.Errorf("postgres: insert rows %d-%d: %w", i, end, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}

func upsertSQL(rows int) string {
	cols := settlement.OutputColumns
	n := len(cols)

	valueStrings := make([]string, 0, rows)
	for r := 0; r < rows; r++ {
		ph := make([]string, n)
		for c := range ph {
			ph[c] = fmt.Sprintf("$%d", r*n+c+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(ph, ",")+")")
	}

	updates := make([]string, 0, n)
	for _, col := range cols {
		if col == settlement.ColID {
			continue
		}
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}
	updates = append(updates, "updated_at = NOW()")

	return fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES %s
		ON CONFLICT (%s) DO UPDATE SET %s
	`, Table, strings.Join(cols, ", "), strings.Join(valueStrings, ","),
		settlement.ColID, strings.Join(updates, ", "))
}

func batchArgs(batch []settlement.Record) []any {
	args := make([]any, 0, len(batch)*len(settlement.OutputColumns))
	for i := range batch {
		r := &batch[i]
		var buildings sql.NullInt64
		if r.HasBuildings {
			buildings = sql.NullInt64{Int64: int64(r.NumBuildings), Valid: true}
		}
		args = append(args,
			r.ID, r.Population, buildings, nullable(r.Latitude),
			nullable(r.RWI), r.Nightlight,
			nullable(r.DistSubstation), nullable(r.DistTransmission), nullable(r.DistRoad),
			nullable(r.DistWater), nullable(r.DistHub),
			r.HealthFacilities, r.EducationFacilities,
			r.IsUrban, r.Households, int(r.Tier),
			nullable(r.DemRes), nullable(r.DemComm), nullable(r.DemAgri), nullable(r.DemPub),
			nullable(r.ProjectedDemand), nullable(r.ProjectedPeak),
			nullable(r.LCOEGrid), nullable(r.LCOEMiniGrid), nullable(r.LCOESHS),
			money(r.CapexGrid), money(r.CapexMiniGrid), money(r.CapexSHS),
			string(r.OptimalTech), money(r.Investment),
		)
	}
	return args
}

// nullable stores non-finite values as NULL.
func nullable(v float64) sql.NullFloat64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

// money rounds a dollar amount to cents for the NUMERIC columns. Non-finite
// amounts are stored as NULL.
func money(v float64) decimal.NullDecimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(v).Round(2), Valid: true}
}

// Close closes the database handle.
func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
