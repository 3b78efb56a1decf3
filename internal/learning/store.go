package learning

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

// ── Units ───────────────────────────────────────────────

func (s *Store) GetUnit(ctx context.Context, unitID int64) (*models.Unit, error) {
	var u models.Unit
	var prereqs pq.StringArray
	err := s.db.QueryRowContext(ctx,
		`SELECT id, subject, unit_key, unit_name, description, difficulty_level,
		        estimated_time, COALESCE(prerequisite_units, '{}'), created_at
		 FROM units WHERE id = $1`,
		unitID,
	).Scan(&u.ID, &u.Subject, &u.UnitKey, &u.UnitName, &u.Description,
		&u.DifficultyLevel, &u.EstimatedTime, &prereqs, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get unit: %w", err)
	}
	u.PrerequisiteUnits = []string(prereqs)
	return &u, nil
}

// ── Progress ────────────────────────────────────────────

const progressColumns = `id, user_id, unit_id, status, mastery_score, progress_percentage,
	diagnostic_completed, lecture_completed, practice_count, correct_count,
	last_studied_at, mastered_at, created_at, updated_at`

func scanProgress(row *sql.Row) (*models.UserProgress, error) {
	var p models.UserProgress
	err := row.Scan(&p.ID, &p.UserID, &p.UnitID, &p.Status, &p.MasteryScore,
		&p.ProgressPercentage, &p.DiagnosticCompleted, &p.LectureCompleted,
		&p.PracticeCount, &p.CorrectCount, &p.LastStudiedAt, &p.MasteredAt,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetOrCreateProgress returns the progress row for (user, unit), creating
// it with status in_progress and zeroed counters on first access.
func (s *Store) GetOrCreateProgress(ctx context.Context, userID, unitID int64) (*models.UserProgress, error) {
	p, err := scanProgress(s.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM user_progress WHERE user_id = $1 AND unit_id = $2`, progressColumns),
		userID, unitID,
	))
	if err == nil {
		return p, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("get progress: %w", err)
	}

	p, err = scanProgress(s.db.QueryRowContext(ctx,
		fmt.Sprintf(`INSERT INTO user_progress (user_id, unit_id, status)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, unit_id) DO UPDATE SET updated_at = NOW()
		 RETURNING %s`, progressColumns),
		userID, unitID, models.StatusInProgress,
	))
	if err != nil {
		return nil, fmt.Errorf("create progress: %w", err)
	}
	return p, nil
}

func (s *Store) GetProgress(ctx context.Context, userID, unitID int64) (*models.UserProgress, error) {
	p, err := scanProgress(s.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM user_progress WHERE user_id = $1 AND unit_id = $2`, progressColumns),
		userID, unitID,
	))
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return p, nil
}

// CompleteDiagnostic marks the diagnostic phase done. The flag is monotonic
// and the milestone never lowers already-earned progress.
func (s *Store) CompleteDiagnostic(ctx context.Context, progressID int64) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE user_progress
		 SET diagnostic_completed = TRUE,
		     progress_percentage = GREATEST(progress_percentage, $1),
		     last_studied_at = NOW(), updated_at = NOW()
		 WHERE id = $2`,
		diagnosticProgress, progressID,
	)
	if err != nil {
		return fmt.Errorf("complete diagnostic: %w", err)
	}
	return nil
}

func (s *Store) CompleteLecture(ctx context.Context, progressID int64) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE user_progress
		 SET lecture_completed = TRUE,
		     progress_percentage = GREATEST(progress_percentage, $1),
		     last_studied_at = NOW(), updated_at = NOW()
		 WHERE id = $2`,
		lectureProgress, progressID,
	)
	if err != nil {
		return fmt.Errorf("complete lecture: %w", err)
	}
	return nil
}

// ApplyPracticeResult writes the recomputed aggregates after one practice
// attempt. On completion the status flips to mastered, progress is forced
// to 100 and mastered_at is stamped once (COALESCE keeps a prior stamp).
func (s *Store) ApplyPracticeResult(ctx context.Context, progressID int64, result MasteryResult, decision CompletionDecision) error {
	var err error
	if decision.Completed {
		_, err = s.db.ExecContext(ctx,
			`UPDATE user_progress
			 SET practice_count = $1, correct_count = $2, mastery_score = $3,
			     progress_percentage = 100, status = $4,
			     mastered_at = COALESCE(mastered_at, NOW()),
			     last_studied_at = NOW(), updated_at = NOW()
			 WHERE id = $5`,
			result.PracticeCount, result.CorrectCount, result.MasteryScore,
			models.StatusMastered, progressID,
		)
	} else {
		_, err = s.db.ExecContext(ctx,
			`UPDATE user_progress
			 SET practice_count = $1, correct_count = $2, mastery_score = $3,
			     progress_percentage = GREATEST(progress_percentage, $4),
			     last_studied_at = NOW(), updated_at = NOW()
			 WHERE id = $5`,
			result.PracticeCount, result.CorrectCount, result.MasteryScore,
			result.ProgressPercentage, progressID,
		)
	}
	if err != nil {
		return fmt.Errorf("apply practice result: %w", err)
	}
	return nil
}

// ── Attempts ────────────────────────────────────────────

func (s *Store) RecordAttempt(ctx context.Context, a *models.QuestionAttempt) (*models.QuestionAttempt, error) {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO question_attempts
		   (user_id, unit_id, session_id, question_type, question_text,
		    user_answer, is_correct, ai_feedback, weak_point_identified, time_spent_seconds)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at`,
		a.UserID, a.UnitID, a.SessionID, a.QuestionType, a.QuestionText,
		a.UserAnswer, a.IsCorrect, a.AIFeedback, a.WeakPointIdentified, a.TimeSpentSeconds,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}
	return a, nil
}

// RecentWeakPoints returns the weak points from the most recent incorrect
// attempts, newest first, with empty values filtered out.
func (s *Store) RecentWeakPoints(ctx context.Context, userID, unitID int64, limit int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT weak_point_identified FROM question_attempts
		 WHERE user_id = $1 AND unit_id = $2 AND is_correct = FALSE
		   AND weak_point_identified IS NOT NULL AND weak_point_identified <> ''
		 ORDER BY created_at DESC
		 LIMIT $3`,
		userID, unitID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent weak points: %w", err)
	}
	defer rows.Close()

	var weakPoints []string
	for rows.Next() {
		var wp string
		if err := rows.Scan(&wp); err != nil {
			return nil, fmt.Errorf("scan weak point: %w", err)
		}
		weakPoints = append(weakPoints, wp)
	}
	return weakPoints, rows.Err()
}

// ── Sessions ────────────────────────────────────────────

func (s *Store) StartSession(ctx context.Context, userID, unitID int64, phase models.Phase) (*models.StudySession, error) {
	var session models.StudySession
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO study_sessions (user_id, unit_id, session_type, duration_seconds)
		 VALUES ($1, $2, $3, 0)
		 RETURNING id, user_id, unit_id, session_type, duration_seconds, started_at`,
		userID, unitID, phase,
	).Scan(&session.ID, &session.UserID, &session.UnitID, &session.SessionType,
		&session.DurationSeconds, &session.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return &session, nil
}

func (s *Store) EndSession(ctx context.Context, sessionID, userID int64, durationSeconds int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE study_sessions SET duration_seconds = $1, ended_at = NOW()
		 WHERE id = $2 AND user_id = $3 AND ended_at IS NULL`,
		durationSeconds, sessionID, userID,
	)
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("end session: no open session %d", sessionID)
	}
	return nil
}
