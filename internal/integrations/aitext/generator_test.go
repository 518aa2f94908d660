package aitext

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, m := range messages {
		for _, p := range m.Parts {
			if text, ok := p.(llms.TextContent); ok {
				f.prompts = append(f.prompts, text.Text)
			}
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.reply}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func TestGenerateJobDescription(t *testing.T) {
	model := &fakeModel{reply: "  About the Role\nBuild things.  "}
	g := NewWithModel(model, "test-model")

	out, err := g.GenerateJobDescription(context.Background(), "Go Developer", "3+ years of Go")
	require.NoError(t, err)
	assert.Equal(t, "About the Role\nBuild things.", out)

	require.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], "Job title: Go Developer")
	assert.Contains(t, model.prompts[0], "3+ years of Go")
}

func TestGenerateJobDescription_NotConfigured(t *testing.T) {
	g, err := New(context.Background(), Config{})
	require.NoError(t, err)
	assert.False(t, g.Configured())
	assert.Equal(t, DefaultModel, g.Model())

	_, err = g.GenerateJobDescription(context.Background(), "t", "r")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGenerateJobDescription_ErrorClasses(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"quota", errors.New("googleapi: Error 429: Resource has been exhausted (e.g. check quota)"), ErrRateLimited},
		{"bad key", errors.New("API key not valid. Please pass a valid API key."), ErrNotConfigured},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithModel(&fakeModel{err: tc.err}, "m")
			_, err := g.GenerateJobDescription(context.Background(), "t", "r")
			assert.ErrorIs(t, err, tc.want)
		})
	}

	g := NewWithModel(&fakeModel{err: errors.New("boom")}, "m")
	_, err := g.GenerateJobDescription(context.Background(), "t", "r")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRateLimited)
	assert.NotErrorIs(t, err, ErrNotConfigured)

	g = NewWithModel(&fakeModel{reply: "   "}, "m")
	_, err = g.GenerateJobDescription(context.Background(), "t", "r")
	assert.Error(t, err)
}
