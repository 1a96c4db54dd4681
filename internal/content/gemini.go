package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/noorjournal/noor/internal/models"
)

const geminiModel = "gemini-2.5-flash"

// GeminiClient wraps a Gemini session used by the AI resolution tiers.
// Every call is a single GenerateContent request demanding strict JSON;
// anything unparsable fails the tier, it never surfaces.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a client from an API key.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: geminiModel}, nil
}

func (g *GeminiClient) generateJSON(ctx context.Context, prompt string, out interface{}) error {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return fmt.Errorf("gemini request failed: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	// Models sometimes wrap JSON in a code fence despite the MIME type.
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), out); err != nil {
		return fmt.Errorf("gemini returned malformed JSON: %w", err)
	}
	return nil
}

// GeminiInspirationSource asks Gemini for the day's devotional pair as one
// structured request.
type GeminiInspirationSource struct {
	client *GeminiClient
}

func NewGeminiInspirationSource(client *GeminiClient) *GeminiInspirationSource {
	return &GeminiInspirationSource{client: client}
}

func (s *GeminiInspirationSource) Name() string { return "gemini" }

func (s *GeminiInspirationSource) Fetch(ctx context.Context, day string) (models.DailyInspiration, error) {
	prompt := fmt.Sprintf(`Return one authentic Quranic verse and one authentic sahih Hadith
as strict JSON with this exact shape and nothing else:
{"ayah":{"arabic":"...","urdu":"...","ref":"Surah Name 2:255"},
 "hadith":{"arabic":"...","urdu":"...","ref":"Sahih al-Bukhari 1"}}
Both must be genuine, correctly attributed texts with accurate Urdu
translations. Vary the selection; today is %s.`, day)

	var out models.DailyInspiration
	if err := s.client.generateJSON(ctx, prompt, &out); err != nil {
		return models.DailyInspiration{}, err
	}
	if out.Ayah.Empty() && out.Hadith.Empty() {
		return models.DailyInspiration{}, fmt.Errorf("gemini returned empty inspiration")
	}
	return out, nil
}

// GeminiHijriSource asks Gemini for a humanized Umm al-Qura date string.
// The local conversion below it in the chain is the source of truth; this
// tier only improves month-name formatting, so its answer is validated
// against the expected era range before use.
type GeminiHijriSource struct {
	client *GeminiClient
}

func NewGeminiHijriSource(client *GeminiClient) *GeminiHijriSource {
	return &GeminiHijriSource{client: client}
}

func (s *GeminiHijriSource) Name() string { return "gemini" }

func (s *GeminiHijriSource) Resolve(ctx context.Context, day string) (string, error) {
	prompt := fmt.Sprintf(`Convert the Gregorian date %s to the Islamic (Hijri) date using the
Umm al-Qura calendar. Return strict JSON, nothing else:
{"hijri":"<day> <month name> <year> AH"}`, day)

	var out struct {
		Hijri string `json:"hijri"`
	}
	if err := s.client.generateJSON(ctx, prompt, &out); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.Hijri) == "" {
		return "", fmt.Errorf("gemini returned empty hijri date")
	}
	return strings.TrimSpace(out.Hijri), nil
}
