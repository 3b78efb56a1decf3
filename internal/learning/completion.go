package learning

// CompletionReason names the rule that marked a unit mastered.
type CompletionReason string

const (
	ReasonPerfectStreak     CompletionReason = "perfect_streak"
	ReasonAdvancedThreshold CompletionReason = "advanced_threshold"
	ReasonStandardThreshold CompletionReason = "standard_threshold"
)

// CompletionDecision is the outcome of evaluating the mastery rules.
type CompletionDecision struct {
	Completed bool
	Reason    CompletionReason
}

// Mastery thresholds. Advanced units (difficulty 4+) accept a higher error
// bar earlier because their questions demand more per attempt; a short
// perfect run rewards confident learners before either volume threshold.
const (
	perfectStreakLength   = 5
	masteryThreshold      = 80.0
	advancedDifficultyMin = 4
	advancedMinAttempts   = 5
	standardMinAttempts   = 10
)

// EvaluateCompletion applies the mastery rules in fixed priority order.
// The first rule that matches wins.
func EvaluateCompletion(difficultyLevel, correct, total int, masteryScore float64) CompletionDecision {
	if correct >= perfectStreakLength && correct == total {
		return CompletionDecision{Completed: true, Reason: ReasonPerfectStreak}
	}
	if difficultyLevel >= advancedDifficultyMin && masteryScore >= masteryThreshold && total >= advancedMinAttempts {
		return CompletionDecision{Completed: true, Reason: ReasonAdvancedThreshold}
	}
	if masteryScore >= masteryThreshold && total >= standardMinAttempts {
		return CompletionDecision{Completed: true, Reason: ReasonStandardThreshold}
	}
	return CompletionDecision{}
}
