package tutor

import (
	"strings"
	"testing"
)

func TestParseDiagnosticQuestions(t *testing.T) {
	raw := "```json\n[{\"question\":\"What is a derivative?\",\"expected_answer\":\"The instantaneous rate of change.\"},{\"question\":\"Differentiate x^2.\",\"expected_answer\":\"2x\"}]\n```"

	questions, err := ParseDiagnosticQuestions(raw)
	if err != nil {
		t.Fatalf("ParseDiagnosticQuestions returned error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if questions[0].Question != "What is a derivative?" {
		t.Errorf("unexpected first question: %q", questions[0].Question)
	}
}

func TestParseDiagnosticQuestionsWithSurroundingProse(t *testing.T) {
	raw := `Here are the questions:
[{"question":"Q1","expected_answer":"A1"}]
Let me know if you need more.`

	questions, err := ParseDiagnosticQuestions(raw)
	if err != nil {
		t.Fatalf("ParseDiagnosticQuestions returned error: %v", err)
	}
	if len(questions) != 1 || questions[0].Question != "Q1" {
		t.Errorf("unexpected result: %+v", questions)
	}
}

func TestParseDiagnosticQuestionsRejectsMalformed(t *testing.T) {
	cases := []string{
		"I could not generate questions.",
		`[{"question":"","expected_answer":"x"}]`,
		"[]",
		`[{"question":"Q1"`,
	}
	for _, raw := range cases {
		if _, err := ParseDiagnosticQuestions(raw); err == nil {
			t.Errorf("ParseDiagnosticQuestions(%q) should fail", raw)
		}
	}
}

func TestParseEvaluation(t *testing.T) {
	raw := `{"is_correct":false,"explanation":"The sign is flipped in step two.","weak_point":"Sign handling when expanding brackets"}`

	ev, err := ParseEvaluation(raw)
	if err != nil {
		t.Fatalf("ParseEvaluation returned error: %v", err)
	}
	if ev.IsCorrect {
		t.Error("IsCorrect = true, want false")
	}
	if ev.WeakPoint != "Sign handling when expanding brackets" {
		t.Errorf("unexpected weak point: %q", ev.WeakPoint)
	}
}

func TestParseEvaluationNeverDefaultsToCorrect(t *testing.T) {
	// A grading response we cannot parse must surface as an error, not
	// as a default evaluation.
	for _, raw := range []string{"oops", "{}", `{"is_correct": true}`} {
		if _, err := ParseEvaluation(raw); err == nil {
			t.Errorf("ParseEvaluation(%q) should fail", raw)
		}
	}
}

func TestParsePracticeQuestion(t *testing.T) {
	raw := "```\n{\"question\":\"Solve 2x + 3 = 11.\",\"expected_answer\":\"x = 4\"}\n```"
	q, err := ParsePracticeQuestion(raw)
	if err != nil {
		t.Fatalf("ParsePracticeQuestion returned error: %v", err)
	}
	if q.Question != "Solve 2x + 3 = 11." || q.ExpectedAnswer != "x = 4" {
		t.Errorf("unexpected result: %+v", q)
	}
}

func TestParseCustomUnitValidatesDifficulty(t *testing.T) {
	raw := `{"unit_name":"Complex Numbers","description":"Intro","difficulty_level":7,"estimated_time":60}`
	if _, err := ParseCustomUnit(raw); err == nil {
		t.Error("difficulty_level 7 should be rejected")
	}
}

func TestSplitLectureSlides(t *testing.T) {
	lecture := "## What This Unit Covers\nOne idea.\n\n## Key Points\n- a\n- b\n\n## Common Mistakes\nWatch the sign."

	slides := SplitLectureSlides(lecture)
	if len(slides) != 3 {
		t.Fatalf("got %d slides, want 3", len(slides))
	}
	if !strings.HasPrefix(slides[1], "## Key Points") {
		t.Errorf("unexpected second slide: %q", slides[1])
	}
}

func TestSplitLectureSlidesWithoutHeadings(t *testing.T) {
	slides := SplitLectureSlides("just one block of text")
	if len(slides) != 1 || slides[0] != "just one block of text" {
		t.Errorf("unexpected slides: %v", slides)
	}
}
