package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/studypath/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListSubjects(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT subject FROM units ORDER BY subject`,
	)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	defer rows.Close()

	var subjects []string
	for rows.Next() {
		var subject string
		if err := rows.Scan(&subject); err != nil {
			return nil, fmt.Errorf("scan subject: %w", err)
		}
		subjects = append(subjects, subject)
	}
	return subjects, rows.Err()
}

const unitColumns = `id, subject, unit_key, unit_name, description, difficulty_level,
	estimated_time, COALESCE(prerequisite_units, '{}'), created_at`

func scanUnit(scan func(dest ...interface{}) error) (*models.Unit, error) {
	var u models.Unit
	var prereqs pq.StringArray
	if err := scan(&u.ID, &u.Subject, &u.UnitKey, &u.UnitName, &u.Description,
		&u.DifficultyLevel, &u.EstimatedTime, &prereqs, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.PrerequisiteUnits = []string(prereqs)
	return &u, nil
}

func (s *Store) GetUnit(ctx context.Context, unitID int64) (*models.Unit, error) {
	row := s.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM units WHERE id = $1`, unitColumns), unitID,
	)
	u, err := scanUnit(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return u, nil
}

// ListUnits returns the units of a subject (all subjects when empty),
// ordered by difficulty then name.
func (s *Store) ListUnits(ctx context.Context, subject string) ([]models.Unit, error) {
	var rows *sql.Rows
	var err error
	if subject != "" {
		rows, err = s.db.QueryContext(ctx,
			fmt.Sprintf(`SELECT %s FROM units WHERE subject = $1
			 ORDER BY difficulty_level, unit_name`, unitColumns),
			subject,
		)
	} else {
		rows, err = s.db.QueryContext(ctx,
			fmt.Sprintf(`SELECT %s FROM units ORDER BY subject, difficulty_level, unit_name`, unitColumns),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var units []models.Unit
	for rows.Next() {
		u, err := scanUnit(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		units = append(units, *u)
	}
	return units, rows.Err()
}

// UserProgressByUnit returns the user's progress rows keyed by unit ID.
func (s *Store) UserProgressByUnit(ctx context.Context, userID int64) (map[int64]*models.UserProgress, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, unit_id, status, mastery_score, progress_percentage,
		        diagnostic_completed, lecture_completed, practice_count, correct_count,
		        last_studied_at, mastered_at, created_at, updated_at
		 FROM user_progress WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("user progress: %w", err)
	}
	defer rows.Close()

	progressByUnit := make(map[int64]*models.UserProgress)
	for rows.Next() {
		var p models.UserProgress
		if err := rows.Scan(&p.ID, &p.UserID, &p.UnitID, &p.Status, &p.MasteryScore,
			&p.ProgressPercentage, &p.DiagnosticCompleted, &p.LectureCompleted,
			&p.PracticeCount, &p.CorrectCount, &p.LastStudiedAt, &p.MasteredAt,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		progressByUnit[p.UnitID] = &p
	}
	return progressByUnit, rows.Err()
}

// MasteredUnitKeys returns the unit keys this user has mastered.
func (s *Store) MasteredUnitKeys(ctx context.Context, userID int64) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT u.unit_key FROM user_progress p
		 JOIN units u ON u.id = p.unit_id
		 WHERE p.user_id = $1 AND p.status = $2`,
		userID, models.StatusMastered,
	)
	if err != nil {
		return nil, fmt.Errorf("mastered units: %w", err)
	}
	defer rows.Close()

	mastered := make(map[string]bool)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan unit key: %w", err)
		}
		mastered[key] = true
	}
	return mastered, rows.Err()
}

// InsertCustomUnit stores an AI-proposed unit under the given subject.
func (s *Store) InsertCustomUnit(ctx context.Context, subject, unitKey, unitName, description string, difficultyLevel, estimatedTime int) (*models.Unit, error) {
	row := s.db.QueryRowContext(ctx,
		fmt.Sprintf(`INSERT INTO units (subject, unit_key, unit_name, description, difficulty_level, estimated_time)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING %s`, unitColumns),
		subject, unitKey, unitName, description, difficultyLevel, estimatedTime,
	)
	u, err := scanUnit(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("insert custom unit: %w", err)
	}
	return u, nil
}
