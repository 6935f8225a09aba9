package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS learner_groups (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		start_date  TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS students (
		id          TEXT PRIMARY KEY,
		group_id    TEXT NOT NULL REFERENCES learner_groups(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		-- reference start for stall detection
		enrolled_at TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_students_group ON students(group_id)`,

	// One plan per group. Module and unit standard windows are replaced
	// wholesale on every upsert.
	`CREATE TABLE IF NOT EXISTS rollout_plans (
		group_id       TEXT PRIMARY KEY REFERENCES learner_groups(id) ON DELETE CASCADE,
		curriculum_id  TEXT NOT NULL DEFAULT '',
		start_date     TEXT NOT NULL,
		end_date       TEXT NOT NULL,
		computed_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS module_windows (
		group_id                  TEXT NOT NULL REFERENCES rollout_plans(group_id) ON DELETE CASCADE,
		seq                       INTEGER NOT NULL,
		module_code               TEXT NOT NULL,
		module_name               TEXT NOT NULL,
		credits                   INTEGER NOT NULL CHECK(credits > 0),
		start_date                TEXT NOT NULL,
		end_date                  TEXT NOT NULL,
		workplace_activity_start  TEXT NOT NULL,
		workplace_activity_end    TEXT NOT NULL,
		summative_date            TEXT NOT NULL,
		assessing_date            TEXT NOT NULL,
		PRIMARY KEY (group_id, seq)
	)`,

	`CREATE TABLE IF NOT EXISTS unit_standard_windows (
		group_id          TEXT NOT NULL,
		module_seq        INTEGER NOT NULL,
		seq               INTEGER NOT NULL,
		unit_standard_id  TEXT NOT NULL,
		title             TEXT NOT NULL DEFAULT '',
		credits           INTEGER NOT NULL CHECK(credits > 0),
		start_date        TEXT NOT NULL,
		end_date          TEXT NOT NULL,
		summative_date    TEXT NOT NULL,
		assessing_date    TEXT NOT NULL,
		duration_days     INTEGER NOT NULL,
		PRIMARY KEY (group_id, module_seq, seq),
		FOREIGN KEY (group_id, module_seq) REFERENCES module_windows(group_id, seq) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_templates (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS template_slots (
		template_id  TEXT NOT NULL REFERENCES schedule_templates(id) ON DELETE CASCADE,
		weekday      INTEGER NOT NULL CHECK(weekday BETWEEN 0 AND 6),
		seq          INTEGER NOT NULL,
		start_time   TEXT NOT NULL,
		end_time     TEXT NOT NULL,
		venue        TEXT NOT NULL,
		activity     TEXT NOT NULL DEFAULT 'lecture'
		             CHECK(activity IN ('lecture','practical','workplace','assessment')),
		PRIMARY KEY (template_id, weekday, seq)
	)`,

	`CREATE TABLE IF NOT EXISTS group_schedules (
		group_id     TEXT PRIMARY KEY REFERENCES learner_groups(id) ON DELETE CASCADE,
		template_id  TEXT NOT NULL REFERENCES schedule_templates(id),
		start_date   TEXT NOT NULL,
		end_date     TEXT
	)`,

	// A (date, start_time, venue) slot belongs to at most one group. Times
	// are zero-padded HH:MM so the unique key compares like with like.
	`CREATE TABLE IF NOT EXISTS sessions (
		id            TEXT PRIMARY KEY,
		group_id      TEXT NOT NULL REFERENCES learner_groups(id) ON DELETE CASCADE,
		date          TEXT NOT NULL,
		start_time    TEXT NOT NULL CHECK(start_time GLOB '[0-2][0-9]:[0-5][0-9]'),
		end_time      TEXT NOT NULL CHECK(end_time GLOB '[0-2][0-9]:[0-5][0-9]'),
		venue         TEXT NOT NULL,
		module_label  TEXT NOT NULL DEFAULT '',
		notes         TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL,
		UNIQUE (date, start_time, venue)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_group_date ON sessions(group_id, date)`,

	`CREATE TABLE IF NOT EXISTS assessments (
		id                TEXT PRIMARY KEY,
		student_id        TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		unit_standard_id  TEXT NOT NULL,
		type              TEXT NOT NULL DEFAULT 'SUMMATIVE'
		                  CHECK(type IN ('FORMATIVE','SUMMATIVE','WORKPLACE')),
		result            TEXT NOT NULL
		                  CHECK(result IN ('COMPETENT','NOT_YET_COMPETENT','ABSENT')),
		assessed_date     TEXT NOT NULL,
		created_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_assessments_student ON assessments(student_id)`,
}
