package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"mindmate/internal/modules/assistant/domain"
	assistantout "mindmate/internal/modules/assistant/port/out"
)

type OpenAIConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	SpeechModel string
	Timeout     time.Duration
}

// OpenAIClient talks to an OpenAI-compatible API. BaseURL points either at
// the upstream itself or at the local /api proxy.
type OpenAIClient struct {
	baseURL     string
	apiKey      string
	model       string
	speechModel string
	httpClient  *http.Client
}

var (
	_ assistantout.Completer   = (*OpenAIClient)(nil)
	_ assistantout.Transcriber = (*OpenAIClient)(nil)
)

func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.SpeechModel == "" {
		cfg.SpeechModel = "whisper-1"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &OpenAIClient{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		speechModel: cfg.SpeechModel,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

type transcriptionResponse struct {
	Text  string    `json:"text"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
}

func (c *OpenAIClient) Complete(ctx context.Context, system string, turns []domain.Turn) (string, error) {
	messages := make([]chatMessage, 0, len(turns)+1)
	if strings.TrimSpace(system) != "" {
		messages = append(messages, chatMessage{Role: "system", Content: system})
	}
	for _, t := range turns {
		messages = append(messages, chatMessage{Role: string(t.Role), Content: t.Content})
	}
	payload, err := json.Marshal(chatRequest{Model: c.model, Messages: messages, MaxTokens: 1024, Temperature: 0.7})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return "", err
	}
	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("completion api error: %s", out.Error.Message)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("no completion returned")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

func (c *OpenAIClient) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create audio part: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("write audio part: %w", err)
	}
	_ = form.WriteField("model", c.speechModel)
	_ = form.WriteField("language", "ru")
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("close multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/audio/transcriptions", &buf)
	if err != nil {
		return "", fmt.Errorf("create transcription request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	body, err := c.do(req)
	if err != nil {
		return "", err
	}
	var out transcriptionResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode transcription response: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("transcription api error: %s", out.Error.Message)
	}
	return out.Text, nil
}

func (c *OpenAIClient) do(req *http.Request) ([]byte, error) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
