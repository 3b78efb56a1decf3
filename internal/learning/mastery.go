package learning

// practiceProgressFloor is the progress value carried into the practice
// phase: diagnostic (20) plus lecture (30) already completed.
const practiceProgressFloor = 50

// MasteryResult holds the recomputed aggregates after one practice attempt.
type MasteryResult struct {
	CorrectCount       int
	PracticeCount      int
	MasteryScore       float64
	ProgressPercentage int
}

// ComputeMastery folds one graded practice attempt into the stored counters.
// The mastery score is always recomputed from the full counters, never
// incremented. Progress grows by 10 points per attempt from the 50-point
// floor, capped at 100, and never regresses below the prior value.
func ComputeMastery(priorCorrect, priorTotal int, isCorrect bool, priorProgress int) MasteryResult {
	total := priorTotal + 1
	correct := priorCorrect
	if isCorrect {
		correct++
	}

	var score float64
	if total > 0 {
		score = 100 * float64(correct) / float64(total)
	}

	progress := practiceProgressFloor + total*10
	if progress > 100 {
		progress = 100
	}
	if progress < priorProgress {
		progress = priorProgress
	}

	return MasteryResult{
		CorrectCount:       correct,
		PracticeCount:      total,
		MasteryScore:       score,
		ProgressPercentage: progress,
	}
}
