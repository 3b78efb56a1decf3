package tutor

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Payload types decoded from model responses.

type DiagnosticQuestion struct {
	Question       string `json:"question"`
	ExpectedAnswer string `json:"expected_answer"`
}

type PracticeQuestion struct {
	Question       string `json:"question"`
	ExpectedAnswer string `json:"expected_answer"`
}

// Evaluation is the graded judgment of one free-text answer.
type Evaluation struct {
	IsCorrect   bool   `json:"is_correct"`
	Explanation string `json:"explanation"`
	WeakPoint   string `json:"weak_point"`
}

type CustomUnitProposal struct {
	UnitName             string   `json:"unit_name"`
	Description          string   `json:"description"`
	DifficultyLevel      int      `json:"difficulty_level"`
	EstimatedTime        int      `json:"estimated_time"`
	PrerequisiteConcepts []string `json:"prerequisite_concepts"`
}

type ParseError struct {
	What string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s response: %v", e.What, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Models sometimes wrap JSON in code fences or surround it with prose.
// extractJSON strips fences, then slices from the first opening bracket of
// the expected kind to the last matching closing bracket.
func extractJSON(raw string, open, close byte) (string, error) {
	cleaned := stripCodeFences(raw)
	start := strings.IndexByte(cleaned, open)
	end := strings.LastIndexByte(cleaned, close)
	if start < 0 || end <= start {
		return "", fmt.Errorf("no JSON payload found in response")
	}
	return cleaned[start : end+1], nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}

// ParseDiagnosticQuestions decodes a diagnostic question array. A malformed
// or empty payload is a hard error, never silently defaulted.
func ParseDiagnosticQuestions(raw string) ([]DiagnosticQuestion, error) {
	payload, err := extractJSON(raw, '[', ']')
	if err != nil {
		return nil, &ParseError{What: "diagnostic", Err: err}
	}
	var questions []DiagnosticQuestion
	if err := json.Unmarshal([]byte(payload), &questions); err != nil {
		return nil, &ParseError{What: "diagnostic", Err: err}
	}
	if len(questions) == 0 {
		return nil, &ParseError{What: "diagnostic", Err: fmt.Errorf("empty question list")}
	}
	for i, q := range questions {
		if q.Question == "" || q.ExpectedAnswer == "" {
			return nil, &ParseError{What: "diagnostic", Err: fmt.Errorf("question %d missing fields", i+1)}
		}
	}
	return questions, nil
}

func ParsePracticeQuestion(raw string) (*PracticeQuestion, error) {
	payload, err := extractJSON(raw, '{', '}')
	if err != nil {
		return nil, &ParseError{What: "practice", Err: err}
	}
	var q PracticeQuestion
	if err := json.Unmarshal([]byte(payload), &q); err != nil {
		return nil, &ParseError{What: "practice", Err: err}
	}
	if q.Question == "" || q.ExpectedAnswer == "" {
		return nil, &ParseError{What: "practice", Err: fmt.Errorf("missing question or expected_answer")}
	}
	return &q, nil
}

// ParseEvaluation decodes an answer evaluation. An unparseable grading
// response must surface as an error, never default to correct.
func ParseEvaluation(raw string) (*Evaluation, error) {
	payload, err := extractJSON(raw, '{', '}')
	if err != nil {
		return nil, &ParseError{What: "evaluation", Err: err}
	}
	var ev Evaluation
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return nil, &ParseError{What: "evaluation", Err: err}
	}
	if ev.Explanation == "" {
		return nil, &ParseError{What: "evaluation", Err: fmt.Errorf("missing explanation")}
	}
	return &ev, nil
}

func ParseCustomUnit(raw string) (*CustomUnitProposal, error) {
	payload, err := extractJSON(raw, '{', '}')
	if err != nil {
		return nil, &ParseError{What: "custom unit", Err: err}
	}
	var unit CustomUnitProposal
	if err := json.Unmarshal([]byte(payload), &unit); err != nil {
		return nil, &ParseError{What: "custom unit", Err: err}
	}
	if unit.UnitName == "" {
		return nil, &ParseError{What: "custom unit", Err: fmt.Errorf("missing unit_name")}
	}
	if unit.DifficultyLevel < 1 || unit.DifficultyLevel > 5 {
		return nil, &ParseError{What: "custom unit", Err: fmt.Errorf("difficulty_level %d outside [1, 5]", unit.DifficultyLevel)}
	}
	return &unit, nil
}

// SearchSuggestion is one AI-ranked unit match for a search query.
type SearchSuggestion struct {
	Subject string `json:"subject"`
	Unit    string `json:"unit"`
	Reason  string `json:"reason"`
}

func ParseSearchSuggestions(raw string) ([]SearchSuggestion, error) {
	payload, err := extractJSON(raw, '[', ']')
	if err != nil {
		return nil, &ParseError{What: "search", Err: err}
	}
	var suggestions []SearchSuggestion
	if err := json.Unmarshal([]byte(payload), &suggestions); err != nil {
		return nil, &ParseError{What: "search", Err: err}
	}
	return suggestions, nil
}

// SplitLectureSlides breaks a markdown lecture into slides on second-level
// headings. A lecture without headings becomes a single slide.
func SplitLectureSlides(lecture string) []string {
	var slides []string
	var current strings.Builder
	for _, line := range strings.Split(lecture, "\n") {
		if strings.HasPrefix(line, "## ") && strings.TrimSpace(current.String()) != "" {
			slides = append(slides, strings.TrimSpace(current.String()))
			current.Reset()
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	if strings.TrimSpace(current.String()) != "" {
		slides = append(slides, strings.TrimSpace(current.String()))
	}
	if len(slides) == 0 {
		return []string{strings.TrimSpace(lecture)}
	}
	return slides
}
