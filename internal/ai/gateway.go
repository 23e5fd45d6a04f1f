package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/bilumvv/bilum/internal/language"
	"github.com/bilumvv/bilum/internal/settings"
	"github.com/bilumvv/bilum/pkg/cerr"
)

// DegradedSuggestion is returned when the model cannot be reached. Callers
// display it instead of handling an error.
const DegradedSuggestion = "[Translation unavailable]"

// ValidationResult is the model's quality assessment of a translation.
type ValidationResult struct {
	Score    int    `json:"score"` // 0-10
	Feedback string `json:"feedback"`
}

// Gateway wraps the text-generation service behind two operations. Service
// failures degrade to sentinel results; only a missing credential is
// surfaced as an error.
type Gateway struct {
	settings    settings.Repository
	fallbackKey string
	model       string
}

func NewGateway(settingsRepo settings.Repository, fallbackKey, model string) *Gateway {
	return &Gateway{
		settings:    settingsRepo,
		fallbackKey: fallbackKey,
		model:       model,
	}
}

// apiKey resolves the credential: the stored setting wins, the environment
// fallback is second, no key is a configuration error.
func (g *Gateway) apiKey(ctx context.Context) (string, error) {
	s, err := g.settings.Get(ctx)
	if err != nil {
		return "", err
	}
	if s.APIKey != "" {
		return s.APIKey, nil
	}
	if g.fallbackKey != "" {
		return g.fallbackKey, nil
	}
	return "", cerr.NewError(cerr.FailedPrecondition, "AI API key is missing, configure it in Settings", nil)
}

// SuggestTranslation asks the model for a translation of sentence into the
// target language. Returns DegradedSuggestion when the service fails.
func (g *Gateway) SuggestTranslation(ctx context.Context, sentence string, lang language.TargetLanguage) (string, error) {
	key, err := g.apiKey(ctx)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`Translate the following English sentence into %s (%s).
Only provide the translated text without any explanations or additional formatting.

Sentence: %q`, lang.Name, lang.Code, sentence)

	text, err := g.generate(ctx, key, prompt)
	if err != nil {
		slog.WarnContext(ctx, "translation suggestion degraded", "error", err)
		return DegradedSuggestion, nil
	}
	return strings.TrimSpace(text), nil
}

// ValidateTranslation asks the model to score a translation 0-10 with
// feedback. Returns a zero-score sentinel when the service fails or the
// response cannot be parsed.
func (g *Gateway) ValidateTranslation(ctx context.Context, original, translation string, lang language.TargetLanguage) (ValidationResult, error) {
	key, err := g.apiKey(ctx)
	if err != nil {
		return ValidationResult{}, err
	}

	prompt := fmt.Sprintf(`You are a linguistics expert in Papua New Guinea languages.
Rate the quality of the following translation from English to %s on a scale of 1-10.
Provide brief constructive feedback.

English: %q
Translation: %q

Return JSON format: { "score": number, "feedback": "string" }`, lang.Name, original, translation)

	degraded := ValidationResult{
		Score:    0,
		Feedback: "Validation service unavailable. Please check the API key in Settings.",
	}

	text, err := g.generate(ctx, key, prompt)
	if err != nil {
		slog.WarnContext(ctx, "translation validation degraded", "error", err)
		return degraded, nil
	}

	result, err := parseValidation(text)
	if err != nil {
		slog.WarnContext(ctx, "unparseable validation response", "error", err)
		return degraded, nil
	}
	return result, nil
}

func (g *Gateway) generate(ctx context.Context, key, prompt string) (string, error) {
	client := anthropic.NewClient(option.WithAPIKey(key))
	msg, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: 1024,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("model call: %w", err)
	}
	return firstText(msg.Content)
}

// firstText returns the first text content block. Responses can lead with
// non-text blocks; a response with no text at all is treated as a service
// failure so callers degrade instead of returning an empty result.
func firstText(blocks []anthropic.ContentBlockUnion) (string, error) {
	for _, block := range blocks {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("no text content in model response")
}

func parseValidation(text string) (ValidationResult, error) {
	jsonStr, err := extractJSON(text)
	if err != nil {
		return ValidationResult{}, err
	}
	var result ValidationResult
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return ValidationResult{}, fmt.Errorf("decode validation JSON: %w", err)
	}
	return result, nil
}

// extractJSON finds the first complete JSON object in a model response that
// may be wrapped in prose or markdown fences.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
