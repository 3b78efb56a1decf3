package catalog

import (
	"testing"

	"github.com/studypath/backend/internal/models"
)

func TestPrerequisitesMet(t *testing.T) {
	mastered := map[string]bool{"math-differentiation": true}

	if !PrerequisitesMet(nil, mastered) {
		t.Error("no prerequisites should always be met")
	}
	if !PrerequisitesMet([]string{"math-differentiation"}, mastered) {
		t.Error("mastered prerequisite should be met")
	}
	if PrerequisitesMet([]string{"math-differentiation", "math-sequences"}, mastered) {
		t.Error("one unmastered prerequisite should block")
	}
	if PrerequisitesMet([]string{"math-sequences"}, nil) {
		t.Error("nothing mastered should block")
	}
}

func TestStatusFor(t *testing.T) {
	mastered := map[string]bool{"chem-atoms": true}

	// No progress row: prerequisites decide.
	if got := StatusFor([]string{"chem-atoms"}, mastered, nil); got != models.StatusAvailable {
		t.Errorf("status = %q, want available", got)
	}
	if got := StatusFor([]string{"chem-mole"}, mastered, nil); got != models.StatusLocked {
		t.Errorf("status = %q, want locked", got)
	}

	// A progress row always wins.
	p := &models.UserProgress{Status: models.StatusMastered}
	if got := StatusFor([]string{"chem-mole"}, mastered, p); got != models.StatusMastered {
		t.Errorf("status = %q, want mastered", got)
	}
}
