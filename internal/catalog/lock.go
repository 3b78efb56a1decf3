package catalog

import "github.com/studypath/backend/internal/models"

// StatusFor resolves the displayed status of a unit for one user. A stored
// progress row wins; without one the unit is available only when every
// prerequisite key has been mastered.
func StatusFor(prerequisites []string, masteredKeys map[string]bool, progress *models.UserProgress) models.UnitStatus {
	if progress != nil {
		return progress.Status
	}
	if !PrerequisitesMet(prerequisites, masteredKeys) {
		return models.StatusLocked
	}
	return models.StatusAvailable
}

// PrerequisitesMet reports whether every prerequisite unit key is mastered.
// Units without prerequisites are always accessible.
func PrerequisitesMet(prerequisites []string, masteredKeys map[string]bool) bool {
	for _, key := range prerequisites {
		if !masteredKeys[key] {
			return false
		}
	}
	return true
}
