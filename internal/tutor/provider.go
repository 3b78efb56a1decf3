package tutor

import (
	"context"
	"fmt"
	"log"
	"os"
)

// ContentProvider is the capability the learning engine depends on. It is
// injected so tests can substitute a deterministic implementation.
type ContentProvider interface {
	GenerateDiagnosticQuestions(ctx context.Context, subject, unitName string, difficultyLevel, count int) ([]DiagnosticQuestion, error)
	GenerateLecture(ctx context.Context, subject, unitName, description string, difficultyLevel int, weakPoints []string) (string, error)
	GeneratePracticeQuestion(ctx context.Context, subject, unitName string, difficultyLevel int, weakPoints []string) (*PracticeQuestion, error)
	EvaluateAnswer(ctx context.Context, question, userAnswer, expectedAnswer string) (*Evaluation, error)
}

// Provider implements ContentProvider on top of an LLMClient.
type Provider struct {
	llm   LLMClient
	model string
}

func NewProvider() *Provider {
	var llm LLMClient
	model := "mock"

	if os.Getenv("MOCK_TUTOR") == "true" {
		llm = NewMockClient()
		log.Println("Tutor using mock content")
	} else {
		model = os.Getenv("ANTHROPIC_MODEL")
		if model == "" {
			model = "claude-sonnet-4-5-20250929"
		}
		llm = NewAPIClient(model)
		log.Println("Tutor using Anthropic API:", model)
	}

	return &Provider{llm: llm, model: model}
}

// NewProviderWithClient builds a provider around a caller-supplied client.
func NewProviderWithClient(llm LLMClient, model string) *Provider {
	return &Provider{llm: llm, model: model}
}

func (p *Provider) ModelName() string {
	return p.model
}

func (p *Provider) GenerateDiagnosticQuestions(ctx context.Context, subject, unitName string, difficultyLevel, count int) ([]DiagnosticQuestion, error) {
	resp, err := p.llm.Generate(ctx, TutorSystemPrompt(subject), BuildDiagnosticPrompt(subject, unitName, difficultyLevel, count))
	if err != nil {
		return nil, fmt.Errorf("generate diagnostic questions: %w", err)
	}
	questions, err := ParseDiagnosticQuestions(resp.Content)
	if err != nil {
		return nil, err
	}
	if len(questions) > count {
		questions = questions[:count]
	}
	return questions, nil
}

func (p *Provider) GenerateLecture(ctx context.Context, subject, unitName, description string, difficultyLevel int, weakPoints []string) (string, error) {
	resp, err := p.llm.Generate(ctx, TutorSystemPrompt(subject), BuildLecturePrompt(subject, unitName, description, difficultyLevel, weakPoints))
	if err != nil {
		return "", fmt.Errorf("generate lecture: %w", err)
	}
	if resp.Content == "" {
		return "", fmt.Errorf("generate lecture: empty response")
	}
	return resp.Content, nil
}

func (p *Provider) GeneratePracticeQuestion(ctx context.Context, subject, unitName string, difficultyLevel int, weakPoints []string) (*PracticeQuestion, error) {
	resp, err := p.llm.Generate(ctx, TutorSystemPrompt(subject), BuildPracticePrompt(subject, unitName, difficultyLevel, weakPoints))
	if err != nil {
		return nil, fmt.Errorf("generate practice question: %w", err)
	}
	return ParsePracticeQuestion(resp.Content)
}

func (p *Provider) EvaluateAnswer(ctx context.Context, question, userAnswer, expectedAnswer string) (*Evaluation, error) {
	resp, err := p.llm.Generate(ctx, TutorSystemPrompt("general"), BuildEvaluationPrompt(question, userAnswer, expectedAnswer))
	if err != nil {
		return nil, fmt.Errorf("evaluate answer: %w", err)
	}
	return ParseEvaluation(resp.Content)
}

// ProposeCustomUnit asks the model to design a unit for a learner request.
func (p *Provider) ProposeCustomUnit(ctx context.Context, subject, query string) (*CustomUnitProposal, error) {
	resp, err := p.llm.Generate(ctx, TutorSystemPrompt(subject), BuildCustomUnitPrompt(subject, query))
	if err != nil {
		return nil, fmt.Errorf("propose a new study unit: %w", err)
	}
	return ParseCustomUnit(resp.Content)
}

// SearchUnits asks the model to rank catalog subjects against a query.
func (p *Provider) SearchUnits(ctx context.Context, query string, subjects []string) ([]SearchSuggestion, error) {
	resp, err := p.llm.Generate(ctx, TutorSystemPrompt("general"), BuildSearchPrompt(query, subjects))
	if err != nil {
		return nil, fmt.Errorf("search units: %w", err)
	}
	return ParseSearchSuggestions(resp.Content)
}
