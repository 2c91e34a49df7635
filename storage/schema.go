package storage

var sqliteSchema = []string{
	`PRAGMA foreign_keys = ON`,
	`CREATE TABLE IF NOT EXISTS fighters (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		name         TEXT NOT NULL UNIQUE,
		nickname     TEXT,
		height_cm    REAL,
		reach_cm     REAL,
		stance       TEXT,
		dob          TEXT,
		weight_lbs   INTEGER,
		weight_class TEXT,
		url          TEXT UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS fighter_stats (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		fighter_id INTEGER NOT NULL UNIQUE REFERENCES fighters (id),
		wins       INTEGER,
		losses     INTEGER,
		draws      INTEGER,
		sapm       REAL,
		slpm       REAL,
		str_acc    REAL,
		str_def    REAL,
		td_avg     REAL,
		td_acc     REAL,
		td_def     REAL,
		sub_avg    REAL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_fighters_weight_class ON fighters (weight_class)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS fighters (
		id           SERIAL PRIMARY KEY,
		name         TEXT NOT NULL UNIQUE,
		nickname     TEXT,
		height_cm    DOUBLE PRECISION,
		reach_cm     DOUBLE PRECISION,
		stance       TEXT,
		dob          TEXT,
		weight_lbs   INTEGER,
		weight_class TEXT,
		url          TEXT UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS fighter_stats (
		id         SERIAL PRIMARY KEY,
		fighter_id INTEGER NOT NULL UNIQUE REFERENCES fighters (id),
		wins       INTEGER,
		losses     INTEGER,
		draws      INTEGER,
		sapm       DOUBLE PRECISION,
		slpm       DOUBLE PRECISION,
		str_acc    DOUBLE PRECISION,
		str_def    DOUBLE PRECISION,
		td_avg     DOUBLE PRECISION,
		td_acc     DOUBLE PRECISION,
		td_def     DOUBLE PRECISION,
		sub_avg    DOUBLE PRECISION
	)`,
	`CREATE INDEX IF NOT EXISTS idx_fighters_weight_class ON fighters (weight_class)`,
}
