package learning

import "testing"

func TestEvaluateCompletion(t *testing.T) {
	tests := []struct {
		name       string
		difficulty int
		correct    int
		total      int
		score      float64
		completed  bool
		reason     CompletionReason
	}{
		{"perfect streak of 5", 2, 5, 5, 100, true, ReasonPerfectStreak},
		{"perfect streak of 7", 3, 7, 7, 100, true, ReasonPerfectStreak},
		{"four perfect is not a streak", 2, 4, 4, 100, false, ""},
		{"advanced threshold at 80", 4, 4, 5, 80, true, ReasonAdvancedThreshold},
		{"standard threshold", 2, 8, 10, 80, true, ReasonStandardThreshold},
		{"standard needs ten attempts", 2, 8, 9, 88.9, false, ""},
		{"below score bar", 2, 7, 10, 70, false, ""},
		{"advanced unit below score bar", 5, 3, 5, 60, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateCompletion(tt.difficulty, tt.correct, tt.total, tt.score)
			if got.Completed != tt.completed {
				t.Errorf("Completed = %v, want %v", got.Completed, tt.completed)
			}
			if got.Reason != tt.reason {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.reason)
			}
		})
	}
}

func TestPerfectStreakRequiresFive(t *testing.T) {
	// 4/4 on an advanced unit: no rule fires yet.
	got := EvaluateCompletion(4, 4, 4, 100)
	if got.Completed {
		t.Errorf("4/4 should not complete, got reason %q", got.Reason)
	}
}

func TestRulePriorityOrder(t *testing.T) {
	// 10/10 on an advanced unit satisfies every rule; the perfect streak
	// must win because it is evaluated first.
	got := EvaluateCompletion(5, 10, 10, 100)
	if !got.Completed || got.Reason != ReasonPerfectStreak {
		t.Errorf("got (%v, %q), want (true, perfect_streak)", got.Completed, got.Reason)
	}

	// 8/10 at score 80 on an advanced unit matches advanced before standard.
	got = EvaluateCompletion(4, 8, 10, 80)
	if !got.Completed || got.Reason != ReasonAdvancedThreshold {
		t.Errorf("got (%v, %q), want (true, advanced_threshold)", got.Completed, got.Reason)
	}
}
