package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"TrendSentry/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists scan history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			batch_id    TEXT NOT NULL,
			timestamp   INTEGER NOT NULL,
			symbol      TEXT NOT NULL,
			timeframe   TEXT NOT NULL,
			price       REAL,
			decision    TEXT,
			confidence  TEXT,
			signals     TEXT,
			rsi         REAL,
			ma20        REAL,
			ma50        REAL,
			ema12       REAL,
			ema26       REAL,
			macd_line   REAL,
			bb_upper    REAL,
			bb_middle   REAL,
			bb_lower    REAL,
			swing_count INTEGER,
			block_count INTEGER,
			reason      TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_batch ON analyses(batch_id)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_ts ON analyses(timestamp)`,

		`CREATE TABLE IF NOT EXISTS alerts (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			batch_id   TEXT NOT NULL,
			timestamp  INTEGER NOT NULL,
			symbol     TEXT NOT NULL,
			timeframe  TEXT NOT NULL,
			decision   TEXT,
			confidence TEXT,
			price      REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_alerts_batch ON alerts(batch_id)`,
		`CREATE INDEX IF NOT EXISTS idx_alerts_ts ON alerts(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordScan(batchID string, analyses []model.Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Unix()
	for _, a := range analyses {
		names := make([]string, len(a.Signals))
		for i, s := range a.Signals {
			names[i] = s.Name
		}
		ind := a.Indicators
		_, err := r.db.Exec(`INSERT INTO analyses
			(batch_id, timestamp, symbol, timeframe, price, decision, confidence, signals,
			 rsi, ma20, ma50, ema12, ema26, macd_line, bb_upper, bb_middle, bb_lower,
			 swing_count, block_count, reason)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			batchID, now, a.Symbol, a.Timeframe, a.CurrentPrice,
			string(a.Decision), string(a.Confidence), strings.Join(names, ","),
			ind.RSI.Value, ind.MA20.Value, ind.MA50.Value,
			ind.EMA12.Value, ind.EMA26.Value, ind.MACD.Line,
			ind.Bollinger.Upper, ind.Bollinger.Middle, ind.Bollinger.Lower,
			len(a.Swings), len(a.OrderBlocks), a.Reason,
		)
		if err != nil {
			return fmt.Errorf("insert analysis %s/%s: %w", a.Symbol, a.Timeframe, err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordAlerts(batchID string, alerts []model.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Unix()
	for _, al := range alerts {
		_, err := r.db.Exec(`INSERT INTO alerts
			(batch_id, timestamp, symbol, timeframe, decision, confidence, price)
			VALUES (?,?,?,?,?,?,?)`,
			batchID, now, al.Symbol, al.Timeframe,
			string(al.Analysis.Decision), string(al.Analysis.Confidence),
			al.Analysis.CurrentPrice,
		)
		if err != nil {
			return fmt.Errorf("insert alert %s/%s: %w", al.Symbol, al.Timeframe, err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
