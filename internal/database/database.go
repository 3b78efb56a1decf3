package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func Connect() (*sql.DB, error) {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "studypath_user")
	password := getEnv("DB_PASSWORD", "studypath_password")
	dbname := getEnv("DB_NAME", "studypath")
	sslmode := getEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func Migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL,
		password VARCHAR(255) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);

	CREATE TABLE IF NOT EXISTS units (
		id                 BIGSERIAL PRIMARY KEY,
		subject            VARCHAR(100) NOT NULL,
		unit_key           VARCHAR(100) UNIQUE NOT NULL,
		unit_name          VARCHAR(255) NOT NULL,
		description        TEXT NOT NULL DEFAULT '',
		difficulty_level   INT NOT NULL CHECK (difficulty_level >= 1 AND difficulty_level <= 5),
		estimated_time     INT NOT NULL DEFAULT 45,
		prerequisite_units TEXT[],
		created_at         TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_units_subject ON units(subject, difficulty_level);

	CREATE TABLE IF NOT EXISTS user_progress (
		id                   BIGSERIAL PRIMARY KEY,
		user_id              BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		unit_id              BIGINT NOT NULL REFERENCES units(id) ON DELETE CASCADE,
		status               VARCHAR(20) NOT NULL DEFAULT 'in_progress',
		mastery_score        REAL NOT NULL DEFAULT 0 CHECK (mastery_score >= 0 AND mastery_score <= 100),
		progress_percentage  INT NOT NULL DEFAULT 0 CHECK (progress_percentage >= 0 AND progress_percentage <= 100),
		diagnostic_completed BOOLEAN NOT NULL DEFAULT FALSE,
		lecture_completed    BOOLEAN NOT NULL DEFAULT FALSE,
		practice_count       INT NOT NULL DEFAULT 0,
		correct_count        INT NOT NULL DEFAULT 0 CHECK (correct_count <= practice_count),
		last_studied_at      TIMESTAMP WITH TIME ZONE,
		mastered_at          TIMESTAMP WITH TIME ZONE,
		created_at           TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at           TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(user_id, unit_id)
	);

	CREATE INDEX IF NOT EXISTS idx_progress_user ON user_progress(user_id);
	CREATE INDEX IF NOT EXISTS idx_progress_user_status ON user_progress(user_id, status);

	CREATE TABLE IF NOT EXISTS study_sessions (
		id               BIGSERIAL PRIMARY KEY,
		user_id          BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		unit_id          BIGINT NOT NULL REFERENCES units(id) ON DELETE CASCADE,
		session_type     VARCHAR(20) NOT NULL,
		duration_seconds INT NOT NULL DEFAULT 0,
		started_at       TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		ended_at         TIMESTAMP WITH TIME ZONE
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_user ON study_sessions(user_id, started_at DESC);

	CREATE TABLE IF NOT EXISTS question_attempts (
		id                    BIGSERIAL PRIMARY KEY,
		user_id               BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		unit_id               BIGINT NOT NULL REFERENCES units(id) ON DELETE CASCADE,
		session_id            BIGINT REFERENCES study_sessions(id),
		question_type         VARCHAR(20) NOT NULL,
		question_text         TEXT NOT NULL,
		user_answer           TEXT NOT NULL,
		is_correct            BOOLEAN,
		ai_feedback           TEXT,
		weak_point_identified TEXT,
		time_spent_seconds    INT,
		created_at            TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_attempts_user_unit ON question_attempts(user_id, unit_id, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_attempts_incorrect ON question_attempts(user_id, unit_id, created_at DESC) WHERE is_correct = FALSE;
	`

	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
