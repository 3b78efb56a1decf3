package stats

import (
	"context"
	"database/sql"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// DashboardStats are the per-user aggregates the dashboard renders.
type DashboardStats struct {
	UnitsStarted      int             `json:"units_started"`
	UnitsMastered     int             `json:"units_mastered"`
	TotalAttempts     int             `json:"total_attempts"`
	CorrectAttempts   int             `json:"correct_attempts"`
	OverallAccuracy   float64         `json:"overall_accuracy"`
	TotalStudySeconds int             `json:"total_study_seconds"`
	AvgMasteryScore   float64         `json:"avg_mastery_score"`
	RecentActivity    []DailyActivity `json:"recent_activity"`
}

type DailyActivity struct {
	Date     string `json:"date"`
	Attempts int    `json:"attempts"`
	Correct  int    `json:"correct"`
}

func (s *Store) GetDashboardStats(ctx context.Context, userID int64) (*DashboardStats, error) {
	stats := &DashboardStats{}

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE status = 'mastered'),
		        COALESCE(AVG(mastery_score) FILTER (WHERE practice_count > 0), 0)
		 FROM user_progress WHERE user_id = $1`,
		userID,
	).Scan(&stats.UnitsStarted, &stats.UnitsMastered, &stats.AvgMasteryScore)
	if err != nil {
		return nil, fmt.Errorf("progress stats: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE is_correct)
		 FROM question_attempts WHERE user_id = $1`,
		userID,
	).Scan(&stats.TotalAttempts, &stats.CorrectAttempts)
	if err != nil {
		return nil, fmt.Errorf("attempt stats: %w", err)
	}
	if stats.TotalAttempts > 0 {
		stats.OverallAccuracy = 100 * float64(stats.CorrectAttempts) / float64(stats.TotalAttempts)
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(duration_seconds), 0) FROM study_sessions WHERE user_id = $1`,
		userID,
	).Scan(&stats.TotalStudySeconds)
	if err != nil {
		return nil, fmt.Errorf("session stats: %w", err)
	}

	activity, err := s.recentActivity(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.RecentActivity = activity

	return stats, nil
}

func (s *Store) recentActivity(ctx context.Context, userID int64) ([]DailyActivity, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT TO_CHAR(created_at::date, 'YYYY-MM-DD'),
		        COUNT(*), COUNT(*) FILTER (WHERE is_correct)
		 FROM question_attempts
		 WHERE user_id = $1 AND created_at > NOW() - INTERVAL '7 days'
		 GROUP BY created_at::date
		 ORDER BY created_at::date`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	defer rows.Close()

	activity := []DailyActivity{}
	for rows.Next() {
		var day DailyActivity
		if err := rows.Scan(&day.Date, &day.Attempts, &day.Correct); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activity = append(activity, day)
	}
	return activity, rows.Err()
}
