package storage

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"fightstats/models"
	"fightstats/utils"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// LoadResult summarises one full-refresh load
type LoadResult struct {
	Inserted int
	Skipped  int
}

// FighterStore keeps cleaned fighters in two tables: fighters (bio) and
// fighter_stats (one row per fighter, keyed by fighter_id).
type FighterStore struct {
	db     *sqlx.DB
	driver string
	logger *utils.Logger
}

// OpenFighterStore connects to SQLite (dsn is a file path or ":memory:") or
// Postgres (dsn is a connection URL) and pings the database.
func OpenFighterStore(ctx context.Context, driver, dsn string, logger *utils.Logger) (*FighterStore, error) {
	switch driver {
	case "sqlite":
		if !strings.Contains(dsn, "_pragma=foreign_keys") {
			sep := "?"
			if strings.Contains(dsn, "?") {
				sep = "&"
			}
			dsn += sep + "_pragma=foreign_keys(1)"
		}
	case "postgres":
	default:
		return nil, errors.Newf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open DB")
	}

	if driver == "sqlite" {
		// one connection: SQLite has a single writer and ":memory:" is per-connection
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to ping DB")
	}

	logger.Debug("Connected to %s store", driver)
	return &FighterStore{db: db, driver: driver, logger: logger}, nil
}

// EnsureSchema creates both tables if they do not exist yet
func (s *FighterStore) EnsureSchema(ctx context.Context) error {
	stmts := sqliteSchema
	if s.driver == "postgres" {
		stmts = postgresSchema
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "failed to create schema")
		}
	}
	s.logger.Debug("Tables 'fighters' and 'fighter_stats' are ready")
	return nil
}

const (
	insertFighterSQL = `
		INSERT INTO fighters (name, nickname, height_cm, reach_cm, stance, dob, weight_lbs, weight_class, url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	insertStatsSQL = `
		INSERT INTO fighter_stats (
			fighter_id, wins, losses, draws,
			sapm, slpm, str_acc, str_def,
			td_avg, td_acc, td_def, sub_avg
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
)

// Replace empties both tables and inserts every fighter with its stats row,
// all in one transaction. A row that is missing its name or URL, or that
// collides with a unique key, is skipped and logged.
func (s *FighterStore) Replace(ctx context.Context, fighters []*models.CleanedFighter) (result LoadResult, err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return result, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// children first so the foreign key never dangles
	if _, err = tx.ExecContext(ctx, "DELETE FROM fighter_stats"); err != nil {
		return result, errors.Wrap(err, "failed to clear fighter_stats")
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM fighters"); err != nil {
		return result, errors.Wrap(err, "failed to clear fighters")
	}

	insertFighter := tx.Rebind(insertFighterSQL)
	insertStats := tx.Rebind(insertStatsSQL)

	for _, f := range fighters {
		if missing := missingColumns(f); len(missing) > 0 {
			s.logger.Warn("Missing column %s for '%s', skipping", strings.Join(missing, ", "), f.Name)
			result.Skipped++
			continue
		}

		if _, err = tx.ExecContext(ctx, "SAVEPOINT fighter_row"); err != nil {
			return result, errors.Wrap(err, "failed to create savepoint")
		}

		rowErr := s.insertFighter(ctx, tx, insertFighter, insertStats, f)
		if rowErr != nil {
			if _, err = tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT fighter_row"); err != nil {
				return result, errors.Wrap(err, "failed to roll back savepoint")
			}
			if isUniqueViolation(rowErr) {
				s.logger.Warn("Skipping duplicate: %s", f.Name)
			} else {
				s.logger.Warn("Error inserting %s: %v", f.Name, rowErr)
			}
			result.Skipped++
		} else {
			result.Inserted++
		}

		if _, err = tx.ExecContext(ctx, "RELEASE SAVEPOINT fighter_row"); err != nil {
			return result, errors.Wrap(err, "failed to release savepoint")
		}
	}

	if err = tx.Commit(); err != nil {
		return result, errors.Wrap(err, "failed to commit transaction")
	}

	s.logger.Info("Loaded %d/%d fighters (%d skipped)", result.Inserted, len(fighters), result.Skipped)
	return result, nil
}

func (s *FighterStore) insertFighter(ctx context.Context, tx *sqlx.Tx, fighterSQL, statsSQL string, f *models.CleanedFighter) error {
	var weight sql.NullInt64
	if w, ok := f.WeightLbs.Get(); ok {
		weight = sql.NullInt64{Int64: int64(w), Valid: true}
	}

	var id int64
	err := tx.QueryRowxContext(ctx, fighterSQL,
		f.Name,
		nullString(f.Nickname),
		f.HeightCm,
		f.ReachCm,
		f.Stance,
		nullString(f.DOB),
		weight,
		f.WeightClass,
		f.SourceURL,
	).Scan(&id)
	if err != nil {
		return errors.Wrap(err, "insert fighter")
	}

	_, err = tx.ExecContext(ctx, statsSQL,
		id,
		f.Wins, f.Losses, f.Draws,
		f.SApM, f.SLpM, f.StrAcc, f.StrDef,
		f.TDAvg, f.TDAcc, f.TDDef, f.SubAvg,
	)
	if err != nil {
		return errors.Wrap(err, "insert fighter stats")
	}
	return nil
}

// fighterRow is the joined read model of both tables
type fighterRow struct {
	ID          int64           `db:"id"`
	Name        string          `db:"name"`
	Nickname    sql.NullString  `db:"nickname"`
	HeightCm    sql.NullFloat64 `db:"height_cm"`
	ReachCm     sql.NullFloat64 `db:"reach_cm"`
	Stance      sql.NullString  `db:"stance"`
	DOB         sql.NullString  `db:"dob"`
	WeightLbs   sql.NullInt64   `db:"weight_lbs"`
	WeightClass sql.NullString  `db:"weight_class"`
	URL         sql.NullString  `db:"url"`
	Wins        sql.NullInt64   `db:"wins"`
	Losses      sql.NullInt64   `db:"losses"`
	Draws       sql.NullInt64   `db:"draws"`
	SApM        sql.NullFloat64 `db:"sapm"`
	SLpM        sql.NullFloat64 `db:"slpm"`
	StrAcc      sql.NullFloat64 `db:"str_acc"`
	StrDef      sql.NullFloat64 `db:"str_def"`
	TDAvg       sql.NullFloat64 `db:"td_avg"`
	TDAcc       sql.NullFloat64 `db:"td_acc"`
	TDDef       sql.NullFloat64 `db:"td_def"`
	SubAvg      sql.NullFloat64 `db:"sub_avg"`
}

const selectFightersSQL = `
	SELECT
		f.id, f.name, f.nickname, f.height_cm, f.reach_cm, f.stance, f.dob,
		f.weight_lbs, f.weight_class, f.url,
		s.wins, s.losses, s.draws,
		s.sapm, s.slpm, s.str_acc, s.str_def,
		s.td_avg, s.td_acc, s.td_def, s.sub_avg
	FROM fighters f
	JOIN fighter_stats s ON f.id = s.fighter_id
	ORDER BY f.name`

// LoadFighters reads every stored fighter back, re-deriving total fights and
// win rate. Rows with no recorded fights are left out.
func (s *FighterStore) LoadFighters(ctx context.Context) ([]*models.CleanedFighter, error) {
	var rows []fighterRow
	if err := s.db.SelectContext(ctx, &rows, selectFightersSQL); err != nil {
		return nil, errors.Wrap(err, "select fighters")
	}

	out := make([]*models.CleanedFighter, 0, len(rows))
	for _, r := range rows {
		f := &models.CleanedFighter{
			ID:          r.ID,
			Name:        r.Name,
			Nickname:    r.Nickname.String,
			SourceURL:   r.URL.String,
			Stance:      r.Stance.String,
			DOB:         r.DOB.String,
			HeightCm:    r.HeightCm.Float64,
			ReachCm:     r.ReachCm.Float64,
			Wins:        int(r.Wins.Int64),
			Losses:      int(r.Losses.Int64),
			Draws:       int(r.Draws.Int64),
			SApM:        r.SApM.Float64,
			SLpM:        r.SLpM.Float64,
			StrAcc:      r.StrAcc.Float64,
			StrDef:      r.StrDef.Float64,
			TDAvg:       r.TDAvg.Float64,
			TDAcc:       r.TDAcc.Float64,
			TDDef:       r.TDDef.Float64,
			SubAvg:      r.SubAvg.Float64,
			WeightClass: r.WeightClass.String,
		}
		if r.WeightLbs.Valid {
			f.WeightLbs = models.Some(int(r.WeightLbs.Int64))
		}
		f.TotalFights = f.Wins + f.Losses + f.Draws
		if f.TotalFights < 1 {
			continue
		}
		f.WinRate = float64(f.Wins) / float64(f.TotalFights)
		out = append(out, f)
	}
	return out, nil
}

// Close closes the database connection
func (s *FighterStore) Close() {
	if s.db != nil {
		_ = s.db.Close()
	}
}

func missingColumns(f *models.CleanedFighter) []string {
	var missing []string
	if strings.TrimSpace(f.Name) == "" {
		missing = append(missing, "Name")
	}
	if strings.TrimSpace(f.SourceURL) == "" {
		missing = append(missing, "URL")
	}
	if strings.TrimSpace(f.Stance) == "" {
		missing = append(missing, "Stance")
	}
	return missing
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
