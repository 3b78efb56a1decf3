package models

import "time"

// UserProgress is the per-(user, unit) learning state. One row per pair.
// Counters and phase-completion flags only ever move forward; the learning
// service and completion policy are the only writers.
type UserProgress struct {
	ID                  int64      `json:"id"`
	UserID              int64      `json:"user_id"`
	UnitID              int64      `json:"unit_id"`
	Status              UnitStatus `json:"status"`
	MasteryScore        float64    `json:"mastery_score"`
	ProgressPercentage  int        `json:"progress_percentage"`
	DiagnosticCompleted bool       `json:"diagnostic_completed"`
	LectureCompleted    bool       `json:"lecture_completed"`
	PracticeCount       int        `json:"practice_count"`
	CorrectCount        int        `json:"correct_count"`
	LastStudiedAt       *time.Time `json:"last_studied_at,omitempty"`
	MasteredAt          *time.Time `json:"mastered_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type StudySession struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"user_id"`
	UnitID          int64      `json:"unit_id"`
	SessionType     Phase      `json:"session_type"`
	DurationSeconds int        `json:"duration_seconds"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
}

// ── Request Types ────────────────────────────────────────

type SubmitAnswerRequest struct {
	SessionID        int64   `json:"session_id"`
	QuestionText     string  `json:"question_text"`
	ExpectedAnswer   string  `json:"expected_answer"`
	UserAnswer       string  `json:"user_answer"`
	QuestionIndex    int     `json:"question_index"`
	QuestionTotal    int     `json:"question_total"`
	TimeSpentSeconds *int    `json:"time_spent_seconds,omitempty"`
}

type EndSessionRequest struct {
	DurationSeconds int `json:"duration_seconds"`
}

// ── Response Types ───────────────────────────────────────

// ProgressResponse is returned on unit entry: the progress row plus the
// phase the client should resume at.
type ProgressResponse struct {
	Progress   UserProgress `json:"progress"`
	EntryPhase Phase        `json:"entry_phase"`
}

// GeneratedQuestion pairs a question with its grading rubric. The rubric
// travels to the client and comes back on submit so grading needs no
// server-side question state.
type GeneratedQuestion struct {
	Question       string `json:"question"`
	ExpectedAnswer string `json:"expected_answer"`
}

type StartPhaseResponse struct {
	Phase     Phase               `json:"phase"`
	SessionID int64               `json:"session_id"`
	Questions []GeneratedQuestion `json:"questions,omitempty"`
	Slides    []string            `json:"slides,omitempty"`
	Question  *GeneratedQuestion  `json:"question,omitempty"`
}

type DiagnosticAnswerResponse struct {
	Correct             bool         `json:"correct"`
	Explanation         string       `json:"explanation"`
	WeakPoint           string       `json:"weak_point,omitempty"`
	DiagnosticCompleted bool         `json:"diagnostic_completed"`
	Progress            UserProgress `json:"progress"`
}

type PracticeAnswerResponse struct {
	Correct          bool         `json:"correct"`
	Explanation      string       `json:"explanation"`
	WeakPoint        string       `json:"weak_point,omitempty"`
	Completed        bool         `json:"completed"`
	CompletionReason string       `json:"completion_reason,omitempty"`
	Progress         UserProgress `json:"progress"`
}
