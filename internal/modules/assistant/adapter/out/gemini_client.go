package out

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"google.golang.org/genai"

	"mindmate/internal/modules/assistant/domain"
	assistantout "mindmate/internal/modules/assistant/port/out"
)

const transcribeInstruction = "Перепиши дословно речь из этой аудиозаписи. Верни только текст."

type GeminiClient struct {
	client *genai.Client
	model  string
}

var (
	_ assistantout.Completer   = (*GeminiClient)(nil)
	_ assistantout.Transcriber = (*GeminiClient)(nil)
)

// GeminiConfig configures the Gemini backend. An empty BaseURL uses Google's
// public endpoint.
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) Complete(ctx context.Context, system string, turns []domain.Turn) (string, error) {
	contents := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		role := genai.Role(genai.RoleUser)
		if t.Role == domain.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(t.Content, role))
	}
	var cfg *genai.GenerateContentConfig
	if strings.TrimSpace(system) != "" {
		cfg = &genai.GenerateContentConfig{SystemInstruction: genai.NewContentFromText(system, genai.RoleUser)}
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini returned no text")
	}
	return text, nil
}

func (c *GeminiClient) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	mimeType := mime.TypeByExtension(filepath.Ext(filename))
	if mimeType == "" {
		mimeType = "audio/webm"
	}
	parts := []*genai.Part{
		genai.NewPartFromText(transcribeInstruction),
		genai.NewPartFromBytes(audio, mimeType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini transcribe: %w", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}
