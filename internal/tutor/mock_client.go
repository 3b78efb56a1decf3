package tutor

import (
	"context"
	"fmt"
	"strings"
)

// MockClient serves canned responses for local development. It inspects the
// prompt to decide which payload shape the caller expects.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	return &LLMResponse{
		Content:      mockContentFor(userPrompt),
		PromptTokens: 400,
		OutputTokens: 800,
	}, nil
}

func mockContentFor(userPrompt string) string {
	switch {
	case strings.Contains(userPrompt, "diagnostic questions"):
		questions := "["
		for i := 0; i < 3; i++ {
			if i > 0 {
				questions += ","
			}
			questions += fmt.Sprintf(
				`{"question":"[Mock] Diagnostic question %d: define the key term introduced in this unit.","expected_answer":"[Mock] A correct answer names the term and states its definition."}`,
				i+1)
		}
		return questions + "]"
	case strings.Contains(userPrompt, "Evaluate the student's answer"):
		return `{"is_correct":true,"explanation":"[Mock] The answer states the key idea and applies it correctly. A full answer would also mention the boundary case.","weak_point":""}`
	case strings.Contains(userPrompt, "one practice question"):
		return `{"question":"[Mock] Solve: a value doubles three times starting from 5. What is the result?","expected_answer":"[Mock] 40, via 5 x 2^3."}`
	case strings.Contains(userPrompt, "propose a new study unit"):
		return `{"unit_name":"[Mock] Custom Unit","description":"[Mock] A unit proposed from the learner's request.","difficulty_level":2,"estimated_time":45,"prerequisite_concepts":["[Mock] basics"]}`
	case strings.Contains(userPrompt, "most relevant subjects and units"):
		return `[{"subject":"Mathematics","unit":"Quadratic Functions","reason":"[Mock] Closest match to the query."}]`
	default:
		return "## [Mock] Lecture\n\nThis unit introduces one core idea.\n\n## Key Points\n\n- Point one\n- Point two\n\n## Common Mistakes\n\n- Mixing up the two definitions."
	}
}
