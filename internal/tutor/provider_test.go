package tutor

import (
	"context"
	"fmt"
	"testing"
)

func TestProviderWithMockClient(t *testing.T) {
	p := NewProviderWithClient(NewMockClient(), "mock")
	ctx := context.Background()

	questions, err := p.GenerateDiagnosticQuestions(ctx, "Mathematics", "Sequences", 3, 3)
	if err != nil {
		t.Fatalf("GenerateDiagnosticQuestions: %v", err)
	}
	if len(questions) != 3 {
		t.Errorf("got %d diagnostic questions, want 3", len(questions))
	}

	lecture, err := p.GenerateLecture(ctx, "Mathematics", "Sequences", "Arithmetic sequences", 3, nil)
	if err != nil {
		t.Fatalf("GenerateLecture: %v", err)
	}
	if len(SplitLectureSlides(lecture)) < 2 {
		t.Error("mock lecture should split into multiple slides")
	}

	question, err := p.GeneratePracticeQuestion(ctx, "Mathematics", "Sequences", 3, []string{"recurrence setup"})
	if err != nil {
		t.Fatalf("GeneratePracticeQuestion: %v", err)
	}
	if question.Question == "" || question.ExpectedAnswer == "" {
		t.Errorf("incomplete practice question: %+v", question)
	}

	eval, err := p.EvaluateAnswer(ctx, question.Question, "40", question.ExpectedAnswer)
	if err != nil {
		t.Fatalf("EvaluateAnswer: %v", err)
	}
	if eval.Explanation == "" {
		t.Error("evaluation missing explanation")
	}
}

// failingClient simulates a provider outage.
type failingClient struct{}

func (failingClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (*LLMResponse, error) {
	return nil, fmt.Errorf("upstream unavailable")
}

func TestProviderSurfacesClientErrors(t *testing.T) {
	p := NewProviderWithClient(failingClient{}, "test")
	ctx := context.Background()

	if _, err := p.EvaluateAnswer(ctx, "q", "a", "e"); err == nil {
		t.Error("EvaluateAnswer should propagate client errors")
	}
	if _, err := p.GenerateDiagnosticQuestions(ctx, "s", "u", 1, 3); err == nil {
		t.Error("GenerateDiagnosticQuestions should propagate client errors")
	}
}

// garbageClient returns unparseable content.
type garbageClient struct{}

func (garbageClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (*LLMResponse, error) {
	return &LLMResponse{Content: "I'm sorry, I can't produce JSON today."}, nil
}

func TestProviderRejectsUnparseableResponses(t *testing.T) {
	p := NewProviderWithClient(garbageClient{}, "test")
	ctx := context.Background()

	if _, err := p.EvaluateAnswer(ctx, "q", "a", "e"); err == nil {
		t.Error("unparseable evaluation must be a hard failure")
	}
	if _, err := p.GeneratePracticeQuestion(ctx, "s", "u", 1, nil); err == nil {
		t.Error("unparseable practice question must be a hard failure")
	}
}
