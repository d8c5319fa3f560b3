package out_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	assistantout "mindmate/internal/modules/assistant/adapter/out"
	"mindmate/internal/modules/assistant/domain"
)

func TestOpenAIClientSendsSystemPromptAndHistory(t *testing.T) {
	t.Parallel()
	var got struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			t.Errorf("missing bearer token")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"  Понимаю вас.  "}}]}`)
	}))
	defer srv.Close()

	client := assistantout.NewOpenAIClient(assistantout.OpenAIConfig{BaseURL: srv.URL + "/api/", APIKey: "sk-test"})
	text, err := client.Complete(context.Background(), "system", []domain.Turn{
		{Role: domain.RoleAssistant, Content: "Здравствуйте"},
		{Role: domain.RoleUser, Content: "Мне тревожно"},
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if text != "Понимаю вас." {
		t.Fatalf("unexpected text %q", text)
	}
	roles := make([]string, 0, len(got.Messages))
	for _, m := range got.Messages {
		roles = append(roles, m.Role)
	}
	if diff := cmp.Diff([]string{"system", "assistant", "user"}, roles); diff != "" {
		t.Fatalf("roles mismatch (-want +got):\n%s", diff)
	}
	if got.Model != "gpt-4o-mini" {
		t.Fatalf("expected default model, got %s", got.Model)
	}
}

func TestOpenAIClientReportsUpstreamFailure(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"Proxy error"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := assistantout.NewOpenAIClient(assistantout.OpenAIConfig{BaseURL: srv.URL})
	_, err := client.Complete(context.Background(), "", []domain.Turn{{Role: domain.RoleUser, Content: "hi"}})
	if err == nil || !strings.Contains(err.Error(), "status 500") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestOpenAIClientTranscribesMultipartUpload(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/transcriptions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if r.FormValue("model") != "whisper-1" {
			t.Errorf("unexpected model %q", r.FormValue("model"))
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
		} else {
			defer file.Close()
			data, _ := io.ReadAll(file)
			if string(data) != "RIFF" || header.Filename != "call.webm" {
				t.Errorf("unexpected upload %q %q", header.Filename, data)
			}
		}
		_, _ = io.WriteString(w, `{"text":"мне не спится"}`)
	}))
	defer srv.Close()

	client := assistantout.NewOpenAIClient(assistantout.OpenAIConfig{BaseURL: srv.URL})
	text, err := client.Transcribe(context.Background(), []byte("RIFF"), "call.webm")
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if text != "мне не спится" {
		t.Fatalf("unexpected transcript %q", text)
	}
}
