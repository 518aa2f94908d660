package aitext

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

var (
	ErrNotConfigured = errors.New("ai generator is not configured")
	ErrRateLimited   = errors.New("ai provider rate limit reached")
)

const DefaultModel = "gemini-2.5-flash"

// Generator пишет тексты вакансий
type Generator interface {
	GenerateJobDescription(ctx context.Context, title, requirements string) (string, error)
	Configured() bool
	Model() string
}

type Config struct {
	APIKey string
	Model  string
}

// GeminiGenerator - генератор на Google AI через langchaingo
type GeminiGenerator struct {
	llm   llms.Model
	model string
}

// New создает генератор. Без ключа возвращается ненастроенный генератор,
// который на каждый вызов отвечает ErrNotConfigured.
func New(ctx context.Context, cfg Config) (*GeminiGenerator, error) {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	if cfg.APIKey == "" {
		return &GeminiGenerator{model: model}, nil
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create googleai client: %w", err)
	}
	return &GeminiGenerator{llm: llm, model: model}, nil
}

// NewWithModel оборачивает готовую модель (в тестах - фейк)
func NewWithModel(llm llms.Model, model string) *GeminiGenerator {
	return &GeminiGenerator{llm: llm, model: model}
}

func (g *GeminiGenerator) Configured() bool {
	return g != nil && g.llm != nil
}

func (g *GeminiGenerator) Model() string {
	return g.model
}

// GenerateJobDescription - один вызов модели, без повторов
func (g *GeminiGenerator) GenerateJobDescription(ctx context.Context, title, requirements string) (string, error) {
	if !g.Configured() {
		return "", ErrNotConfigured
	}

	out, err := llms.GenerateFromSinglePrompt(ctx, g.llm, BuildJobDescriptionPrompt(title, requirements),
		llms.WithTemperature(0.7),
	)
	if err != nil {
		return "", classify(err)
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("model %s returned an empty description", g.model)
	}
	return out, nil
}

// BuildJobDescriptionPrompt собирает промпт для описания вакансии
func BuildJobDescriptionPrompt(title, requirements string) string {
	var b strings.Builder
	b.WriteString("You are an experienced HR specialist. Write a professional, engaging job description ")
	b.WriteString("for the position below. Structure it with short sections: About the Role, ")
	b.WriteString("Key Responsibilities, Requirements, Nice to Have and What We Offer. ")
	b.WriteString("Use plain text with simple bullet points, no markdown headings, and keep it under 500 words.\n\n")
	fmt.Fprintf(&b, "Job title: %s\n", strings.TrimSpace(title))
	fmt.Fprintf(&b, "Requirements and notes from the hiring manager:\n%s\n", strings.TrimSpace(requirements))
	return b.String()
}

func classify(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key"), strings.Contains(msg, "api_key"):
		return fmt.Errorf("%w: %v", ErrNotConfigured, err)
	case strings.Contains(msg, "quota"), strings.Contains(msg, "rate limit"),
		strings.Contains(msg, "resource_exhausted"), strings.Contains(msg, "429"):
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	default:
		return fmt.Errorf("ai generation failed: %w", err)
	}
}
