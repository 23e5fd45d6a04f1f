package ai

import (
	"context"
	"testing"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilumvv/bilum/internal/settings"
	"github.com/bilumvv/bilum/pkg/cerr"
)

type staticSettings struct {
	s settings.SystemSettings
}

func (r *staticSettings) Get(ctx context.Context) (settings.SystemSettings, error) {
	return r.s, nil
}

func (r *staticSettings) Set(ctx context.Context, s settings.SystemSettings) error {
	r.s = s
	return nil
}

func TestAPIKeyPrefersStoredSetting(t *testing.T) {
	g := NewGateway(&staticSettings{s: settings.SystemSettings{APIKey: "sk-stored"}}, "sk-env", "test-model")

	key, err := g.apiKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sk-stored", key)
}

func TestAPIKeyFallsBackToEnvironment(t *testing.T) {
	g := NewGateway(&staticSettings{}, "sk-env", "test-model")

	key, err := g.apiKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sk-env", key)
}

func TestAPIKeyMissingIsError(t *testing.T) {
	g := NewGateway(&staticSettings{}, "", "test-model")

	_, err := g.apiKey(context.Background())
	require.Error(t, err)
	assert.True(t, cerr.IsCode(err, cerr.FailedPrecondition))
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"bare object", `{"score": 7, "feedback": "good"}`, `{"score": 7, "feedback": "good"}`, true},
		{"fenced", "```json\n{\"score\": 7}\n```", `{"score": 7}`, true},
		{"prose wrapped", `Here is my assessment: {"score": 3, "feedback": "weak"} Hope that helps.`, `{"score": 3, "feedback": "weak"}`, true},
		{"no object", "I cannot rate this.", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSON(tt.in)
			if !tt.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFirstTextSkipsNonTextBlocks(t *testing.T) {
	text, err := firstText([]anthropic.ContentBlockUnion{
		{Type: "tool_use"},
		{Type: "text", Text: "Em i gutpela tumas."},
	})
	require.NoError(t, err)
	assert.Equal(t, "Em i gutpela tumas.", text)
}

func TestFirstTextNoTextIsError(t *testing.T) {
	_, err := firstText(nil)
	require.Error(t, err)

	_, err = firstText([]anthropic.ContentBlockUnion{{Type: "tool_use"}})
	require.Error(t, err)
}

func TestParseValidation(t *testing.T) {
	result, err := parseValidation("Sure!\n```json\n{\"score\": 8, \"feedback\": \"Accurate and natural.\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, 8, result.Score)
	assert.Equal(t, "Accurate and natural.", result.Feedback)

	_, err = parseValidation(`{"score": "eight"}`)
	require.Error(t, err)
}
