package sink

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver

	"github.com/cwbudde/algo-spectra/dsp/grid"
	"github.com/cwbudde/algo-spectra/dsp/line"
	"github.com/cwbudde/algo-spectra/dsp/synth"
)

// ErrRunNotFound is returned by Load for unknown run IDs.
var ErrRunNotFound = errors.New("sink: run not found")

// Archive stores synthesis runs in a SQLite database, one row per run plus
// its lines and samples.
type Archive struct {
	db    *sql.DB
	newID func() string

	mu     sync.Mutex
	lastID string
}

// OpenArchive opens (or creates) the database at path and migrates the schema.
// Use ":memory:" for a transient archive.
func OpenArchive(path string) (*Archive, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sink: open sqlite db: %w", err)
	}
	if path == ":memory:" {
		// every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sink: ping sqlite db: %w", err)
	}

	a := &Archive{db: db, newID: uuid.NewString}
	if err := a.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sink: migrate archive: %w", err)
	}
	return a, nil
}

// Close closes the database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// LastID returns the ID assigned to the most recently written run.
func (a *Archive) LastID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastID
}

// Write implements Sink.
func (a *Archive) Write(ctx context.Context, res *synth.Result) error {
	if err := checkResult(res); err != nil {
		return err
	}

	id := a.newID()
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sink: begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	req, cfg := res.Request, res.Config
	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, wavelength_start, wavelength_end, resolution, line_count,
			line_width, depth_mean, depth_sigma, max_depth, grid_mode, smoothing, points, elapsed_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, req.Start, req.End, req.Resolution, req.Lines,
		cfg.LineWidth, cfg.DepthMean, cfg.DepthSigma, cfg.MaxDepth, cfg.GridMode.String(), cfg.Smoothing,
		res.Len(), res.Elapsed.Nanoseconds())
	if err != nil {
		return fmt.Errorf("sink: insert run: %w", err)
	}

	lineStmt, err := tx.PrepareContext(ctx, "INSERT INTO lines (run_id, idx, center, depth) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("sink: prepare line insert: %w", err)
	}
	defer lineStmt.Close()
	for i, l := range res.Lines {
		if _, err := lineStmt.ExecContext(ctx, id, i, l.Center, l.Depth); err != nil {
			return fmt.Errorf("sink: insert line %d: %w", i, err)
		}
	}

	sampleStmt, err := tx.PrepareContext(ctx, "INSERT INTO samples (run_id, idx, wavelength, flux) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("sink: prepare sample insert: %w", err)
	}
	defer sampleStmt.Close()
	for i, x := range res.Wavelengths {
		if _, err := sampleStmt.ExecContext(ctx, id, i, x, res.Flux[i]); err != nil {
			return fmt.Errorf("sink: insert sample %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sink: commit run: %w", err)
	}

	a.mu.Lock()
	a.lastID = id
	a.mu.Unlock()
	return nil
}

// Load reads a stored run back.
func (a *Archive) Load(ctx context.Context, id string) (*synth.Result, error) {
	var (
		res       synth.Result
		gridMode  string
		elapsedNs int64
	)
	row := a.db.QueryRowContext(ctx, `
		SELECT wavelength_start, wavelength_end, resolution, line_count,
			line_width, depth_mean, depth_sigma, max_depth, grid_mode, smoothing, elapsed_ns
		FROM runs WHERE id = ?`, id)
	err := row.Scan(&res.Request.Start, &res.Request.End, &res.Request.Resolution, &res.Request.Lines,
		&res.Config.LineWidth, &res.Config.DepthMean, &res.Config.DepthSigma, &res.Config.MaxDepth, &gridMode,
		&res.Config.Smoothing, &elapsedNs)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		return nil, fmt.Errorf("sink: load run %s: %w", id, err)
	}
	mode, err := grid.ParseMode(gridMode)
	if err != nil {
		return nil, fmt.Errorf("sink: load run %s: %w", id, err)
	}
	res.Config.GridMode = mode
	res.Elapsed = time.Duration(elapsedNs)

	lineRows, err := a.db.QueryContext(ctx, "SELECT center, depth FROM lines WHERE run_id = ? ORDER BY idx", id)
	if err != nil {
		return nil, fmt.Errorf("sink: load lines: %w", err)
	}
	defer lineRows.Close()
	res.Lines = line.Set{}
	for lineRows.Next() {
		var l line.Line
		if err := lineRows.Scan(&l.Center, &l.Depth); err != nil {
			return nil, fmt.Errorf("sink: scan line: %w", err)
		}
		res.Lines = append(res.Lines, l)
	}
	if err := lineRows.Err(); err != nil {
		return nil, fmt.Errorf("sink: iterate lines: %w", err)
	}

	sampleRows, err := a.db.QueryContext(ctx, "SELECT wavelength, flux FROM samples WHERE run_id = ? ORDER BY idx", id)
	if err != nil {
		return nil, fmt.Errorf("sink: load samples: %w", err)
	}
	defer sampleRows.Close()
	for sampleRows.Next() {
		var x, f float64
		if err := sampleRows.Scan(&x, &f); err != nil {
			return nil, fmt.Errorf("sink: scan sample: %w", err)
		}
		res.Wavelengths = append(res.Wavelengths, x)
		res.Flux = append(res.Flux, f)
	}
	if err := sampleRows.Err(); err != nil {
		return nil, fmt.Errorf("sink: iterate samples: %w", err)
	}

	return &res, nil
}

func (a *Archive) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		wavelength_start REAL NOT NULL,
		wavelength_end REAL NOT NULL,
		resolution INTEGER NOT NULL,
		line_count INTEGER NOT NULL,
		line_width REAL NOT NULL,
		depth_mean REAL NOT NULL,
		depth_sigma REAL NOT NULL,
		max_depth REAL NOT NULL,
		grid_mode TEXT NOT NULL,
		smoothing REAL NOT NULL,
		points INTEGER NOT NULL,
		elapsed_ns INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS lines (
		run_id TEXT NOT NULL,
		idx INTEGER NOT NULL,
		center REAL NOT NULL,
		depth REAL NOT NULL,
		PRIMARY KEY (run_id, idx),
		FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS samples (
		run_id TEXT NOT NULL,
		idx INTEGER NOT NULL,
		wavelength REAL NOT NULL,
		flux REAL NOT NULL,
		PRIMARY KEY (run_id, idx),
		FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
	);
	`
	_, err := a.db.Exec(query)
	return err
}
