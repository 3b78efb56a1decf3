package tutor

import (
	"strings"
	"testing"
)

func TestBuildDiagnosticPrompt(t *testing.T) {
	prompt := BuildDiagnosticPrompt("Mathematics", "Quadratic Functions", 2, 3)

	required := []string{"Quadratic Functions", "3 diagnostic questions", "expected_answer", "JSON array", "easiest to hardest"}
	for _, keyword := range required {
		if !strings.Contains(prompt, keyword) {
			t.Errorf("diagnostic prompt missing keyword %q", keyword)
		}
	}
	if strings.Contains(prompt, "LaTeX notation ($") == false {
		t.Error("diagnostic prompt missing formula notation rules")
	}
}

func TestBuildLecturePromptIncludesWeakPoints(t *testing.T) {
	prompt := BuildLecturePrompt("Physics", "Waves", "Wave properties", 3, []string{"confuses frequency and period"})
	if !strings.Contains(prompt, "confuses frequency and period") {
		t.Error("lecture prompt should include the weak points")
	}
	if !strings.Contains(prompt, "## ") {
		t.Error("lecture prompt should ask for markdown headings")
	}

	// Without weak points the section is omitted entirely.
	prompt = BuildLecturePrompt("Physics", "Waves", "Wave properties", 3, nil)
	if strings.Contains(prompt, "WEAK POINTS") {
		t.Error("lecture prompt should omit the weak point section when empty")
	}
}

func TestBuildPracticePromptBiasesWeakPoints(t *testing.T) {
	prompt := BuildPracticePrompt("Chemistry", "The Mole", 2, []string{"unit conversion errors"})
	if !strings.Contains(prompt, "unit conversion errors") {
		t.Error("practice prompt should include prior weak points")
	}
	if !strings.Contains(prompt, "one practice question") {
		t.Error("practice prompt should ask for a single question")
	}
}

func TestBuildEvaluationPrompt(t *testing.T) {
	prompt := BuildEvaluationPrompt("What is 2+2?", "5", "4")

	required := []string{"What is 2+2?", "is_correct", "weak_point", "explanation"}
	for _, keyword := range required {
		if !strings.Contains(prompt, keyword) {
			t.Errorf("evaluation prompt missing keyword %q", keyword)
		}
	}
}

func TestDifficultyGuidance(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "Foundational"},
		{2, "Foundational"},
		{3, "Standard"},
		{4, "Advanced"},
		{5, "Advanced"},
	}
	for _, tt := range tests {
		if got := difficultyGuidance(tt.level); !strings.HasPrefix(got, tt.want) {
			t.Errorf("difficultyGuidance(%d) = %q, want prefix %q", tt.level, got, tt.want)
		}
	}
}
