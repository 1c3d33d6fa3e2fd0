package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"fdcreport/internal"
)

// DB archives completed runs and their report rows so they can be listed and
// re-exported later. It is never consulted before an API call.
type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL,
  inputPath TEXT NOT NULL,
  outputPath TEXT NOT NULL,
  foodCount INTEGER NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS report_rows (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  runId INTEGER NOT NULL,
  position INTEGER NOT NULL,
  fdcId INTEGER NOT NULL,
  description TEXT NOT NULL,
  amountsJson TEXT NOT NULL,
  UNIQUE(runId, position),
  FOREIGN KEY(runId) REFERENCES runs(id)
);
CREATE INDEX IF NOT EXISTS idx_report_rows_runId ON report_rows(runId);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) InsertRun(traceID, inputPath, outputPath string, foodCount int) (int64, error) {
	res, err := d.conn.Exec(`
INSERT INTO runs (traceId, inputPath, outputPath, foodCount) VALUES (?, ?, ?, ?)`,
		traceID, inputPath, outputPath, foodCount)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (d *DB) InsertReportRows(runID int64, rows []internal.ReportRow) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
INSERT INTO report_rows (runId, position, fdcId, description, amountsJson)
VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, row := range rows {
		amountsJSON, _ := json.Marshal(row.Amounts)
		if _, err := stmt.Exec(runID, i, row.FdcID, row.Description, string(amountsJSON)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetReportRows returns the archived rows of one run in their original
// output order.
func (d *DB) GetReportRows(runID int) ([]internal.ReportRow, error) {
	rows, err := d.conn.Query(`
SELECT fdcId, description, amountsJson
FROM report_rows
WHERE runId = ?
ORDER BY position`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.ReportRow
	for rows.Next() {
		var row internal.ReportRow
		var amountsJSON string
		if err := rows.Scan(&row.FdcID, &row.Description, &amountsJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(amountsJSON), &row.Amounts); err != nil {
			return nil, fmt.Errorf("run %d row for food %d: %w", runID, row.FdcID, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (d *DB) ListRuns(limit int) ([]internal.RunRow, error) {
	rows, err := d.conn.Query(`
SELECT id, traceId, inputPath, outputPath, foodCount, createdAt
FROM runs
ORDER BY id DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.RunRow
	for rows.Next() {
		var run internal.RunRow
		if err := rows.Scan(&run.ID, &run.TraceID, &run.InputPath, &run.OutputPath, &run.FoodCount, &run.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updatedAt=CURRENT_TIMESTAMP`,
		key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}
