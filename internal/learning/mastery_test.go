package learning

import (
	"math"
	"testing"
)

func TestComputeMasteryScore(t *testing.T) {
	// 7 correct out of 10 → 70.0
	r := ComputeMastery(6, 9, true, 0)
	if r.CorrectCount != 7 || r.PracticeCount != 10 {
		t.Fatalf("counters = %d/%d, want 7/10", r.CorrectCount, r.PracticeCount)
	}
	if math.Abs(r.MasteryScore-70.0) > 1e-9 {
		t.Errorf("MasteryScore = %f, want 70.0", r.MasteryScore)
	}
}

func TestComputeMasteryIncorrectKeepsCorrectCount(t *testing.T) {
	r := ComputeMastery(3, 4, false, 90)
	if r.CorrectCount != 3 || r.PracticeCount != 5 {
		t.Errorf("counters = %d/%d, want 3/5", r.CorrectCount, r.PracticeCount)
	}
	if math.Abs(r.MasteryScore-60.0) > 1e-9 {
		t.Errorf("MasteryScore = %f, want 60.0", r.MasteryScore)
	}
}

func TestProgressFormula(t *testing.T) {
	tests := []struct {
		priorTotal    int
		priorProgress int
		want          int
	}{
		{0, 50, 60},  // first attempt: 50 + 10
		{1, 60, 70},  // second: 50 + 20
		{4, 90, 100}, // fifth: 50 + 50, capped
		{9, 100, 100},
		{20, 100, 100}, // stays capped
	}

	for _, tt := range tests {
		r := ComputeMastery(0, tt.priorTotal, false, tt.priorProgress)
		if r.ProgressPercentage != tt.want {
			t.Errorf("ComputeMastery(total=%d, prior=%d) progress = %d, want %d",
				tt.priorTotal, tt.priorProgress, r.ProgressPercentage, tt.want)
		}
	}
}

func TestProgressNeverRegresses(t *testing.T) {
	// A prior progress above the formula value wins.
	r := ComputeMastery(0, 0, false, 95)
	if r.ProgressPercentage != 95 {
		t.Errorf("progress = %d, want 95 (prior value preserved)", r.ProgressPercentage)
	}
}

func TestMasteryMonotonicity(t *testing.T) {
	// Any answer sequence keeps counters non-decreasing, correct ≤ total,
	// and progress non-decreasing.
	answers := []bool{true, false, false, true, true, false, true, true, true, false, true}

	correct, total, progress := 0, 0, 50
	for i, ok := range answers {
		r := ComputeMastery(correct, total, ok, progress)
		if r.PracticeCount != total+1 {
			t.Fatalf("step %d: total %d, want %d", i, r.PracticeCount, total+1)
		}
		if r.CorrectCount < correct || r.CorrectCount > r.PracticeCount {
			t.Fatalf("step %d: correct %d outside [%d, %d]", i, r.CorrectCount, correct, r.PracticeCount)
		}
		if r.ProgressPercentage < progress {
			t.Fatalf("step %d: progress regressed %d → %d", i, progress, r.ProgressPercentage)
		}
		correct, total, progress = r.CorrectCount, r.PracticeCount, r.ProgressPercentage
	}
}
