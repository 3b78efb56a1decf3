package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/studypath/backend/internal/models"
	"github.com/studypath/backend/internal/tutor"
)

// Service owns the unit catalog: listings with per-user lock state, the
// accessibility signal the learning engine consumes, and AI-assisted
// custom units and search.
type Service struct {
	store    *Store
	provider *tutor.Provider
}

func NewService(store *Store, provider *tutor.Provider) *Service {
	return &Service{store: store, provider: provider}
}

// IsUnitAccessible reports whether the user may enter the unit: every
// prerequisite must be mastered. Satisfies learning.AccessChecker.
func (s *Service) IsUnitAccessible(ctx context.Context, userID, unitID int64) (bool, error) {
	unit, err := s.store.GetUnit(ctx, unitID)
	if err != nil {
		return false, err
	}
	if len(unit.PrerequisiteUnits) == 0 {
		return true, nil
	}
	mastered, err := s.store.MasteredUnitKeys(ctx, userID)
	if err != nil {
		return false, err
	}
	return PrerequisitesMet(unit.PrerequisiteUnits, mastered), nil
}

func (s *Service) ListSubjects(ctx context.Context) ([]string, error) {
	return s.store.ListSubjects(ctx)
}

func (s *Service) GetUnit(ctx context.Context, unitID int64) (*models.Unit, error) {
	return s.store.GetUnit(ctx, unitID)
}

// ListUnitsForUser combines the catalog with the user's progress and lock
// state, the shape the study map renders from.
func (s *Service) ListUnitsForUser(ctx context.Context, userID int64, subject string) ([]models.UnitWithProgress, error) {
	units, err := s.store.ListUnits(ctx, subject)
	if err != nil {
		return nil, err
	}
	progressByUnit, err := s.store.UserProgressByUnit(ctx, userID)
	if err != nil {
		return nil, err
	}
	mastered, err := s.store.MasteredUnitKeys(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]models.UnitWithProgress, 0, len(units))
	for _, u := range units {
		progress := progressByUnit[u.ID]
		entry := models.UnitWithProgress{
			Unit:   u,
			Status: StatusFor(u.PrerequisiteUnits, mastered, progress),
		}
		if progress != nil {
			entry.ProgressPercentage = progress.ProgressPercentage
			entry.MasteryScore = progress.MasteryScore
		}
		result = append(result, entry)
	}
	return result, nil
}

// CreateCustomUnit asks the tutor to design a unit for a learner request
// and stores it in the catalog.
func (s *Service) CreateCustomUnit(ctx context.Context, userID int64, subject, query string) (*models.Unit, error) {
	proposal, err := s.provider.ProposeCustomUnit(ctx, subject, query)
	if err != nil {
		return nil, err
	}
	key := customUnitKey(subject, proposal.UnitName, userID)
	return s.store.InsertCustomUnit(ctx, subject, key, proposal.UnitName,
		proposal.Description, proposal.DifficultyLevel, proposal.EstimatedTime)
}

// SearchUnits ranks catalog subjects against a free-text query.
func (s *Service) SearchUnits(ctx context.Context, query string) ([]tutor.SearchSuggestion, error) {
	subjects, err := s.store.ListSubjects(ctx)
	if err != nil {
		return nil, err
	}
	return s.provider.SearchUnits(ctx, query, subjects)
}

// customUnitKey derives a stable-enough key for an AI-proposed unit. The
// user ID suffix keeps two learners' proposals from colliding.
func customUnitKey(subject, unitName string, userID int64) string {
	slug := func(s string) string {
		var b []byte
		for _, c := range strings.ToLower(s) {
			switch {
			case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
				b = append(b, byte(c))
			case c == ' ' || c == '-' || c == '_':
				b = append(b, '-')
			}
		}
		out := strings.Trim(string(b), "-")
		if len(out) > 24 {
			out = out[:24]
		}
		if out == "" {
			out = "custom"
		}
		return out
	}
	return fmt.Sprintf("custom-%s-%s-%d", slug(subject), slug(unitName), userID)
}
