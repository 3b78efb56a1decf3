package learning

import (
	"context"
	"fmt"
	"log"

	"github.com/studypath/backend/internal/models"
	"github.com/studypath/backend/internal/tutor"
)

// AccessChecker answers whether a user may enter a unit. The catalog owns
// prerequisite data; the engine only consumes the boolean.
type AccessChecker interface {
	IsUnitAccessible(ctx context.Context, userID, unitID int64) (bool, error)
}

const (
	defaultDiagnosticCount = 3
	weakPointLimit         = 3
)

// Service drives the diagnostic → lecture → practice → complete loop for
// one (user, unit) at a time.
type Service struct {
	store    *Store
	provider tutor.ContentProvider
	access   AccessChecker
}

func NewService(store *Store, provider tutor.ContentProvider, access AccessChecker) *Service {
	return &Service{store: store, provider: provider, access: access}
}

// GetProgress returns the progress row (creating it on first access) plus
// the phase the client should resume at.
func (s *Service) GetProgress(ctx context.Context, userID, unitID int64) (*models.ProgressResponse, error) {
	if err := s.checkAccess(ctx, userID, unitID); err != nil {
		return nil, err
	}
	progress, err := s.store.GetOrCreateProgress(ctx, userID, unitID)
	if err != nil {
		return nil, err
	}
	return &models.ProgressResponse{
		Progress:   *progress,
		EntryPhase: ResolveEntryPhase(progress),
	}, nil
}

// StartPhase validates the requested transition, opens a study session and
// generates the phase's content. Nothing about Progress changes here; the
// completion flags only move when a phase finishes.
func (s *Service) StartPhase(ctx context.Context, userID, unitID int64, phase models.Phase) (*models.StartPhaseResponse, error) {
	if err := s.checkAccess(ctx, userID, unitID); err != nil {
		return nil, err
	}

	unit, err := s.store.GetUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	progress, err := s.store.GetOrCreateProgress(ctx, userID, unitID)
	if err != nil {
		return nil, err
	}
	if err := ValidateTransition(progress, phase); err != nil {
		return nil, err
	}

	session, err := s.store.StartSession(ctx, userID, unitID, phase)
	if err != nil {
		return nil, err
	}

	resp := &models.StartPhaseResponse{Phase: phase, SessionID: session.ID}

	switch phase {
	case models.PhaseDiagnostic:
		questions, err := s.provider.GenerateDiagnosticQuestions(ctx, unit.Subject, unit.UnitName, unit.DifficultyLevel, defaultDiagnosticCount)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrContentGeneration, err)
		}
		for _, q := range questions {
			resp.Questions = append(resp.Questions, models.GeneratedQuestion{
				Question:       q.Question,
				ExpectedAnswer: q.ExpectedAnswer,
			})
		}

	case models.PhaseLecture:
		weakPoints, err := s.store.RecentWeakPoints(ctx, userID, unitID, weakPointLimit)
		if err != nil {
			log.Printf("WARN: weak point lookup failed for user %d unit %d: %v", userID, unitID, err)
			weakPoints = nil
		}
		lecture, err := s.provider.GenerateLecture(ctx, unit.Subject, unit.UnitName, unit.Description, unit.DifficultyLevel, weakPoints)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrContentGeneration, err)
		}
		resp.Slides = tutor.SplitLectureSlides(lecture)

	case models.PhasePractice:
		question, err := s.nextPracticeQuestion(ctx, userID, unit)
		if err != nil {
			return nil, err
		}
		resp.Question = question
	}

	return resp, nil
}

// NextPracticeQuestion generates a fresh practice question mid-phase (the
// practice → practice loop) without opening a new session.
func (s *Service) NextPracticeQuestion(ctx context.Context, userID, unitID int64) (*models.GeneratedQuestion, error) {
	if err := s.checkAccess(ctx, userID, unitID); err != nil {
		return nil, err
	}
	unit, err := s.store.GetUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	progress, err := s.store.GetProgress(ctx, userID, unitID)
	if err != nil {
		return nil, err
	}
	if err := ValidateTransition(progress, models.PhasePractice); err != nil {
		return nil, err
	}
	return s.nextPracticeQuestion(ctx, userID, unit)
}

func (s *Service) nextPracticeQuestion(ctx context.Context, userID int64, unit *models.Unit) (*models.GeneratedQuestion, error) {
	weakPoints, err := s.store.RecentWeakPoints(ctx, userID, unit.ID, weakPointLimit)
	if err != nil {
		log.Printf("WARN: weak point lookup failed for user %d unit %d: %v", userID, unit.ID, err)
		weakPoints = nil
	}
	question, err := s.provider.GeneratePracticeQuestion(ctx, unit.Subject, unit.UnitName, unit.DifficultyLevel, weakPoints)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentGeneration, err)
	}
	return &models.GeneratedQuestion{
		Question:       question.Question,
		ExpectedAnswer: question.ExpectedAnswer,
	}, nil
}

// SubmitDiagnosticAnswer grades one diagnostic answer and records the
// attempt. Answering the final question marks the diagnostic complete and
// moves progress to at least 20.
func (s *Service) SubmitDiagnosticAnswer(ctx context.Context, userID, unitID int64, req models.SubmitAnswerRequest) (*models.DiagnosticAnswerResponse, error) {
	if err := s.checkAccess(ctx, userID, unitID); err != nil {
		return nil, err
	}
	progress, err := s.store.GetOrCreateProgress(ctx, userID, unitID)
	if err != nil {
		return nil, err
	}
	if progress.DiagnosticCompleted || progress.Status == models.StatusMastered {
		return nil, ErrInvalidTransition
	}

	eval, err := s.provider.EvaluateAnswer(ctx, req.QuestionText, req.UserAnswer, req.ExpectedAnswer)
	if err != nil {
		// No attempt row, no progress mutation.
		return nil, fmt.Errorf("%w: %v", ErrEvaluationFailed, err)
	}

	if _, err := s.recordAttempt(ctx, userID, unitID, models.QuestionDiagnostic, req, eval); err != nil {
		return nil, err
	}

	total := req.QuestionTotal
	if total <= 0 {
		total = defaultDiagnosticCount
	}
	finished := req.QuestionIndex+1 >= total
	if finished {
		if err := s.store.CompleteDiagnostic(ctx, progress.ID); err != nil {
			return nil, err
		}
	}

	updated, err := s.store.GetProgress(ctx, userID, unitID)
	if err != nil {
		return nil, err
	}
	return &models.DiagnosticAnswerResponse{
		Correct:             eval.IsCorrect,
		Explanation:         eval.Explanation,
		WeakPoint:           eval.WeakPoint,
		DiagnosticCompleted: finished,
		Progress:            *updated,
	}, nil
}

// CompleteLecture acknowledges the last slide: marks the lecture done and
// moves progress to at least 50.
func (s *Service) CompleteLecture(ctx context.Context, userID, unitID int64) (*models.UserProgress, error) {
	if err := s.checkAccess(ctx, userID, unitID); err != nil {
		return nil, err
	}
	progress, err := s.store.GetProgress(ctx, userID, unitID)
	if err != nil {
		return nil, err
	}
	if err := ValidateTransition(progress, models.PhaseLecture); err != nil {
		return nil, err
	}
	if err := s.store.CompleteLecture(ctx, progress.ID); err != nil {
		return nil, err
	}
	return s.store.GetProgress(ctx, userID, unitID)
}

// SubmitPracticeAnswer runs the submission pipeline: evaluate, record the
// attempt, fold the result into the mastery counters and apply the
// completion rules. If evaluation fails nothing is persisted; if the
// progress write fails after the attempt write, the aggregates are stale
// by one attempt and the next successful submission carries on from the
// stored counters.
func (s *Service) SubmitPracticeAnswer(ctx context.Context, userID, unitID int64, req models.SubmitAnswerRequest) (*models.PracticeAnswerResponse, error) {
	if err := s.checkAccess(ctx, userID, unitID); err != nil {
		return nil, err
	}
	unit, err := s.store.GetUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	progress, err := s.store.GetProgress(ctx, userID, unitID)
	if err != nil {
		return nil, err
	}
	if err := ValidateTransition(progress, models.PhasePractice); err != nil {
		return nil, err
	}

	eval, err := s.provider.EvaluateAnswer(ctx, req.QuestionText, req.UserAnswer, req.ExpectedAnswer)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEvaluationFailed, err)
	}

	if _, err := s.recordAttempt(ctx, userID, unitID, models.QuestionPractice, req, eval); err != nil {
		return nil, err
	}

	result := ComputeMastery(progress.CorrectCount, progress.PracticeCount, eval.IsCorrect, progress.ProgressPercentage)
	decision := EvaluateCompletion(unit.DifficultyLevel, result.CorrectCount, result.PracticeCount, result.MasteryScore)

	if err := s.store.ApplyPracticeResult(ctx, progress.ID, result, decision); err != nil {
		return nil, err
	}

	if decision.Completed {
		log.Printf("User %d mastered unit %d (%s): %d/%d correct, score %.1f",
			userID, unitID, decision.Reason, result.CorrectCount, result.PracticeCount, result.MasteryScore)
	}

	updated, err := s.store.GetProgress(ctx, userID, unitID)
	if err != nil {
		return nil, err
	}
	return &models.PracticeAnswerResponse{
		Correct:          eval.IsCorrect,
		Explanation:      eval.Explanation,
		WeakPoint:        eval.WeakPoint,
		Completed:        decision.Completed,
		CompletionReason: string(decision.Reason),
		Progress:         *updated,
	}, nil
}

func (s *Service) EndSession(ctx context.Context, sessionID, userID int64, durationSeconds int) error {
	return s.store.EndSession(ctx, sessionID, userID, durationSeconds)
}

func (s *Service) checkAccess(ctx context.Context, userID, unitID int64) error {
	accessible, err := s.access.IsUnitAccessible(ctx, userID, unitID)
	if err != nil {
		return fmt.Errorf("check unit access: %w", err)
	}
	if !accessible {
		return ErrUnitLocked
	}
	return nil
}

func (s *Service) recordAttempt(ctx context.Context, userID, unitID int64, qType models.QuestionType, req models.SubmitAnswerRequest, eval *tutor.Evaluation) (*models.QuestionAttempt, error) {
	var sessionID *int64
	if req.SessionID > 0 {
		sessionID = &req.SessionID
	}
	isCorrect := eval.IsCorrect
	return s.store.RecordAttempt(ctx, &models.QuestionAttempt{
		UserID:              userID,
		UnitID:              unitID,
		SessionID:           sessionID,
		QuestionType:        qType,
		QuestionText:        req.QuestionText,
		UserAnswer:          req.UserAnswer,
		IsCorrect:           &isCorrect,
		AIFeedback:          eval.Explanation,
		WeakPointIdentified: eval.WeakPoint,
		TimeSpentSeconds:    req.TimeSpentSeconds,
	})
}
