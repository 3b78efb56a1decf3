package learning

import (
	"errors"

	"github.com/studypath/backend/internal/models"
)

var (
	// ErrUnitLocked rejects phase entry when prerequisites are not all mastered.
	ErrUnitLocked = errors.New("unit is locked: prerequisites not mastered")
	// ErrInvalidTransition rejects a phase that is not reachable from the
	// stored progress state. Progress is left unchanged.
	ErrInvalidTransition = errors.New("invalid phase transition")
	// ErrEvaluationFailed wraps a failed or unparseable answer evaluation.
	ErrEvaluationFailed = errors.New("answer evaluation failed")
	// ErrContentGeneration wraps a failed or unparseable content call.
	ErrContentGeneration = errors.New("content generation failed")
)

// ResolveEntryPhase returns the furthest incomplete phase for a progress
// row. Re-entry resumes here; completed phases are never restarted.
func ResolveEntryPhase(p *models.UserProgress) models.Phase {
	if p.Status == models.StatusMastered {
		return models.PhaseComplete
	}
	if !p.DiagnosticCompleted {
		return models.PhaseDiagnostic
	}
	if !p.LectureCompleted {
		return models.PhaseLecture
	}
	return models.PhasePractice
}

// ValidateTransition checks that target is reachable from the stored state.
// Entering the current entry phase is always legal (resume); moving forward
// is only legal once the preceding phase flag is set; moving backward onto
// a completed phase is rejected so earned progress is never overwritten.
func ValidateTransition(p *models.UserProgress, target models.Phase) error {
	if p.Status == models.StatusMastered {
		return ErrInvalidTransition
	}

	switch target {
	case models.PhaseDiagnostic:
		if p.DiagnosticCompleted {
			return ErrInvalidTransition
		}
		return nil
	case models.PhaseLecture:
		if !p.DiagnosticCompleted || p.LectureCompleted {
			return ErrInvalidTransition
		}
		return nil
	case models.PhasePractice:
		if !p.DiagnosticCompleted || !p.LectureCompleted {
			return ErrInvalidTransition
		}
		return nil
	default:
		return ErrInvalidTransition
	}
}

// Progress milestones stamped when a phase completes.
const (
	diagnosticProgress = 20
	lectureProgress    = 50
)
