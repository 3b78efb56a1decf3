package learning

import (
	"errors"
	"testing"

	"github.com/studypath/backend/internal/models"
)

func progressWith(diag, lecture bool, status models.UnitStatus) *models.UserProgress {
	return &models.UserProgress{
		Status:              status,
		DiagnosticCompleted: diag,
		LectureCompleted:    lecture,
	}
}

func TestResolveEntryPhase(t *testing.T) {
	tests := []struct {
		name string
		p    *models.UserProgress
		want models.Phase
	}{
		{"fresh row", progressWith(false, false, models.StatusInProgress), models.PhaseDiagnostic},
		{"diagnostic done", progressWith(true, false, models.StatusInProgress), models.PhaseLecture},
		{"lecture done", progressWith(true, true, models.StatusInProgress), models.PhasePractice},
		{"mastered", progressWith(true, true, models.StatusMastered), models.PhaseComplete},
		// A lecture flag without the diagnostic flag should not happen,
		// but the diagnostic still takes priority if it does.
		{"inconsistent flags", progressWith(false, true, models.StatusInProgress), models.PhaseDiagnostic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveEntryPhase(tt.p); got != tt.want {
				t.Errorf("ResolveEntryPhase() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name   string
		p      *models.UserProgress
		target models.Phase
		ok     bool
	}{
		{"fresh row enters diagnostic", progressWith(false, false, models.StatusInProgress), models.PhaseDiagnostic, true},
		{"fresh row cannot skip to lecture", progressWith(false, false, models.StatusInProgress), models.PhaseLecture, false},
		{"fresh row cannot skip to practice", progressWith(false, false, models.StatusInProgress), models.PhasePractice, false},
		{"completed diagnostic not restartable", progressWith(true, false, models.StatusInProgress), models.PhaseDiagnostic, false},
		{"diagnostic done unlocks lecture", progressWith(true, false, models.StatusInProgress), models.PhaseLecture, true},
		{"completed lecture not restartable", progressWith(true, true, models.StatusInProgress), models.PhaseLecture, false},
		{"lecture done unlocks practice", progressWith(true, true, models.StatusInProgress), models.PhasePractice, true},
		{"mastered unit rejects practice", progressWith(true, true, models.StatusMastered), models.PhasePractice, false},
		{"complete is not enterable", progressWith(true, true, models.StatusInProgress), models.PhaseComplete, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransition(tt.p, tt.target)
			if tt.ok && err != nil {
				t.Errorf("ValidateTransition(%q) = %v, want nil", tt.target, err)
			}
			if !tt.ok {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Errorf("ValidateTransition(%q) = %v, want ErrInvalidTransition", tt.target, err)
				}
			}
		})
	}
}

func TestValidateTransitionLeavesProgressUntouched(t *testing.T) {
	p := progressWith(true, false, models.StatusInProgress)
	before := *p
	_ = ValidateTransition(p, models.PhasePractice)
	if *p != before {
		t.Error("ValidateTransition mutated the progress row")
	}
}
