package store

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"
	"time"
)

// Formato de archivo: {version}_{name}.up.sql y {version}_{name}.down.sql
// (ej: 0001_init.up.sql). Un down ausente hace que esa versión no se pueda
// revertir.

// SQLExecutor abstrae *sql.DB y *sql.Tx.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Migrator aplica migraciones SQL a una base de datos.
type Migrator struct {
	migrationsFS  fs.FS
	migrationsDir string
}

// NewMigrator crea un nuevo Migrator. dir es relativo a fsys ("." para la raíz).
func NewMigrator(fsys fs.FS, dir string) *Migrator {
	if dir == "" {
		dir = "."
	}
	return &Migrator{migrationsFS: fsys, migrationsDir: dir}
}

// Migration representa una migración individual.
type Migration struct {
	Version int
	Name    string
	Up      string
	Down    string
}

// MigrationResult resultado de aplicar migraciones.
type MigrationResult struct {
	Applied  []int
	Skipped  []int
	Failed   *int
	Duration time.Duration
}

var migrationFilePattern = regexp.MustCompile(`^(\d+)_(.+)\.(up|down)\.sql$`)

// ParseMigrations lee y parsea las migraciones, ordenadas por versión.
func (m *Migrator) ParseMigrations() ([]Migration, error) {
	byVersion := map[int]*Migration{}

	err := fs.WalkDir(m.migrationsFS, m.migrationsDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		matches := migrationFilePattern.FindStringSubmatch(path.Base(p))
		if matches == nil {
			return nil
		}
		version, _ := strconv.Atoi(matches[1])

		content, err := fs.ReadFile(m.migrationsFS, p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}

		mig, ok := byVersion[version]
		if !ok {
			mig = &Migration{Version: version, Name: matches[2]}
			byVersion[version] = mig
		} else if mig.Name != matches[2] {
			return fmt.Errorf("migration %d: conflicting names %q and %q", version, mig.Name, matches[2])
		}
		if matches[3] == "up" {
			mig.Up = string(content)
		} else {
			mig.Down = string(content)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]Migration, 0, len(byVersion))
	for _, mig := range byVersion {
		if mig.Up == "" {
			return nil, fmt.Errorf("migration %d_%s: missing up file", mig.Version, mig.Name)
		}
		out = append(out, *mig)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

const createMigrationsTable = `CREATE TABLE IF NOT EXISTS _migrations (
	version INT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Up aplica las migraciones pendientes en orden.
func (m *Migrator) Up(ctx context.Context, exec SQLExecutor) (*MigrationResult, error) {
	start := time.Now()
	result := &MigrationResult{}

	migrations, applied, err := m.load(ctx, exec)
	if err != nil {
		return result, err
	}

	for _, mig := range migrations {
		if applied[mig.Version] {
			result.Skipped = append(result.Skipped, mig.Version)
			continue
		}
		if _, err := exec.ExecContext(ctx, mig.Up); err != nil {
			v := mig.Version
			result.Failed = &v
			result.Duration = time.Since(start)
			return result, fmt.Errorf("applying migration %d_%s: %w", mig.Version, mig.Name, err)
		}
		if _, err := exec.ExecContext(ctx,
			"INSERT INTO _migrations (version, name) VALUES ($1, $2)",
			mig.Version, mig.Name,
		); err != nil {
			v := mig.Version
			result.Failed = &v
			result.Duration = time.Since(start)
			return result, fmt.Errorf("recording migration %d: %w", mig.Version, err)
		}
		result.Applied = append(result.Applied, mig.Version)
	}

	result.Duration = time.Since(start)
	return result, nil
}

// Down revierte las últimas steps migraciones aplicadas (steps <= 0 = 1).
func (m *Migrator) Down(ctx context.Context, exec SQLExecutor, steps int) (*MigrationResult, error) {
	if steps <= 0 {
		steps = 1
	}
	start := time.Now()
	result := &MigrationResult{}

	migrations, applied, err := m.load(ctx, exec)
	if err != nil {
		return result, err
	}

	for i := len(migrations) - 1; i >= 0 && steps > 0; i-- {
		mig := migrations[i]
		if !applied[mig.Version] {
			continue
		}
		if mig.Down == "" {
			v := mig.Version
			result.Failed = &v
			result.Duration = time.Since(start)
			return result, fmt.Errorf("migration %d_%s: no down file", mig.Version, mig.Name)
		}
		if _, err := exec.ExecContext(ctx, mig.Down); err != nil {
			v := mig.Version
			result.Failed = &v
			result.Duration = time.Since(start)
			return result, fmt.Errorf("reverting migration %d_%s: %w", mig.Version, mig.Name, err)
		}
		if _, err := exec.ExecContext(ctx, "DELETE FROM _migrations WHERE version = $1", mig.Version); err != nil {
			v := mig.Version
			result.Failed = &v
			result.Duration = time.Since(start)
			return result, fmt.Errorf("unrecording migration %d: %w", mig.Version, err)
		}
		result.Applied = append(result.Applied, mig.Version)
		steps--
	}

	result.Duration = time.Since(start)
	return result, nil
}

// HasPending verifica si hay migraciones sin aplicar.
func (m *Migrator) HasPending(ctx context.Context, exec SQLExecutor) (bool, error) {
	migrations, applied, err := m.load(ctx, exec)
	if err != nil {
		return false, err
	}
	for _, mig := range migrations {
		if !applied[mig.Version] {
			return true, nil
		}
	}
	return false, nil
}

func (m *Migrator) load(ctx context.Context, exec SQLExecutor) ([]Migration, map[int]bool, error) {
	migrations, err := m.ParseMigrations()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing migrations: %w", err)
	}
	if _, err := exec.ExecContext(ctx, createMigrationsTable); err != nil {
		return nil, nil, fmt.Errorf("creating migrations table: %w", err)
	}
	applied, err := appliedVersions(ctx, exec)
	if err != nil {
		return nil, nil, fmt.Errorf("getting applied migrations: %w", err)
	}
	return migrations, applied, nil
}

func appliedVersions(ctx context.Context, exec SQLExecutor) (map[int]bool, error) {
	rows, err := exec.QueryContext(ctx, "SELECT version FROM _migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		applied[v] = true
	}
	return applied, rows.Err()
}
