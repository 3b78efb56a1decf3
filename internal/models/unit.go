package models

import "time"

// Phase is the current activity within a unit.
type Phase string

const (
	PhaseDiagnostic Phase = "diagnostic"
	PhaseLecture    Phase = "lecture"
	PhasePractice   Phase = "practice"
	PhaseComplete   Phase = "complete"
)

var ValidPhases = map[Phase]bool{
	PhaseDiagnostic: true,
	PhaseLecture:    true,
	PhasePractice:   true,
	PhaseComplete:   true,
}

// UnitStatus tracks unit-level accessibility, decoupled from phase.
type UnitStatus string

const (
	StatusLocked     UnitStatus = "locked"
	StatusAvailable  UnitStatus = "available"
	StatusInProgress UnitStatus = "in_progress"
	StatusMastered   UnitStatus = "mastered"
)

type QuestionType string

const (
	QuestionDiagnostic QuestionType = "diagnostic"
	QuestionPractice   QuestionType = "practice"
)

// Unit is a teachable topic within a subject. Difficulty is ordinal 1-5.
type Unit struct {
	ID                int64     `json:"id"`
	Subject           string    `json:"subject"`
	UnitKey           string    `json:"unit_key"`
	UnitName          string    `json:"unit_name"`
	Description       string    `json:"description"`
	DifficultyLevel   int       `json:"difficulty_level"`
	EstimatedTime     int       `json:"estimated_time"`
	PrerequisiteUnits []string  `json:"prerequisite_units,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// UnitWithProgress pairs a catalog unit with the requesting user's state.
type UnitWithProgress struct {
	Unit
	Status             UnitStatus `json:"status"`
	ProgressPercentage int        `json:"progress_percentage"`
	MasteryScore       float64    `json:"mastery_score"`
}

// ── Request Types ────────────────────────────────────────

type CustomUnitRequest struct {
	Subject string `json:"subject"`
	Query   string `json:"query"`
}

type UnitSearchResult struct {
	Subject string `json:"subject"`
	Unit    string `json:"unit"`
	Reason  string `json:"reason"`
}

// ── Response Types ───────────────────────────────────────

type SubjectListResponse struct {
	Subjects []string `json:"subjects"`
}

type UnitListResponse struct {
	Units []UnitWithProgress `json:"units"`
	Total int                `json:"total"`
}
