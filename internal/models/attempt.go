package models

import "time"

// QuestionAttempt is an immutable record of one answered question. Rows are
// append-only; creation order backs the most-recent-errors queries.
type QuestionAttempt struct {
	ID                 int64        `json:"id"`
	UserID             int64        `json:"user_id"`
	UnitID             int64        `json:"unit_id"`
	SessionID          *int64       `json:"session_id,omitempty"`
	QuestionType       QuestionType `json:"question_type"`
	QuestionText       string       `json:"question_text"`
	UserAnswer         string       `json:"user_answer"`
	IsCorrect          *bool        `json:"is_correct,omitempty"`
	AIFeedback         string       `json:"ai_feedback,omitempty"`
	WeakPointIdentified string      `json:"weak_point_identified,omitempty"`
	TimeSpentSeconds   *int         `json:"time_spent_seconds,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
}
