// Package gemini provides an English-to-Korean translator backed by the
// Google Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"stock_dashboard/internal/feature/stocks/usecase"
)

const (
	// DefaultModel is the Gemini model used for translations.
	DefaultModel = "gemini-2.5-flash"
)

// Translator translates company descriptions into Korean via Gemini.
type Translator struct {
	client *genai.Client
	model  string
}

// Compile-time check that Translator implements the usecase interface.
var _ usecase.Translator = (*Translator)(nil)

// NewTranslator creates a Translator using Application Default Credentials.
// The environment must provide GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT
// and GOOGLE_CLOUD_LOCATION (or GEMINI_API_KEY for the public API).
func NewTranslator(ctx context.Context) (*Translator, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Translator{client: client, model: DefaultModel}, nil
}

// TranslateToKorean returns the Korean rendering of an English text.
func (t *Translator) TranslateToKorean(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(
		"Translate the following company description into natural Korean. "+
			"Return only the translation, no preamble.\n\n%s", text)

	resp, err := t.client.Models.GenerateContent(ctx, t.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	return strings.TrimSpace(resp.Text()), nil
}
