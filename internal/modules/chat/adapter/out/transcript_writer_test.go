package out_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	chatoutadapter "mindmate/internal/modules/chat/adapter/out"
	"mindmate/internal/modules/chat/domain"
	storedomain "mindmate/internal/modules/store/domain"
	"mindmate/internal/platform/markdown"
)

type meta struct {
	ID           string `yaml:"id"`
	UserID       string `yaml:"user_id"`
	Title        string `yaml:"title"`
	StartedAt    string `yaml:"started_at"`
	EndedAt      string `yaml:"ended_at"`
	MessageCount int    `yaml:"message_count"`
}

func transcript(id string, started time.Time) domain.Transcript {
	ended := started.Add(20 * time.Minute)
	return domain.Transcript{
		Session: domain.Session{ID: id, UserID: "user_1", Title: "Сон", StartedAt: started, EndedAt: &ended},
		Messages: []domain.Message{
			{ID: "m1", SessionID: id, Content: domain.Greeting, Role: storedomain.RoleAssistant, Timestamp: started},
			{ID: "m2", SessionID: id, Content: "  Не могу уснуть  ", Role: storedomain.RoleUser, Timestamp: started.Add(time.Minute)},
		},
	}
}

func TestWriteFilesByDateWithFrontmatter(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	started := time.Date(2026, 3, 9, 22, 15, 0, 0, time.UTC)
	w := chatoutadapter.NewMarkdownTranscriptWriter(dir)

	path, err := w.Write(context.Background(), transcript("chat_session_a", started))
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if want := filepath.Join(dir, "2026", "03", "09", "221500-сон.md"); path != want {
		t.Fatalf("path = %q, want %q", path, want)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	got := meta{}
	body, err := markdown.Split(string(raw), &got)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	want := meta{
		ID:           "chat_session_a",
		UserID:       "user_1",
		Title:        "Сон",
		StartedAt:    "2026-03-09T22:15:00.000Z",
		EndedAt:      "2026-03-09T22:35:00.000Z",
		MessageCount: 2,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("frontmatter mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(body, "**Вы** · 22:16\n\nНе могу уснуть\n") {
		t.Fatalf("unexpected body:\n%s", body)
	}
}

func TestWriteKeepsSameSessionPathAndSeparatesCollisions(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	started := time.Date(2026, 3, 9, 22, 15, 0, 0, time.UTC)
	w := chatoutadapter.NewMarkdownTranscriptWriter(dir)
	ctx := context.Background()

	first, err := w.Write(ctx, transcript("chat_session_a", started))
	if err != nil {
		t.Fatalf("write a: %v", err)
	}
	again, err := w.Write(ctx, transcript("chat_session_a", started))
	if err != nil {
		t.Fatalf("rewrite a: %v", err)
	}
	other, err := w.Write(ctx, transcript("chat_session_b", started))
	if err != nil {
		t.Fatalf("write b: %v", err)
	}

	if again != first {
		t.Fatalf("re-export moved from %q to %q", first, again)
	}
	if other == first || !strings.HasSuffix(other, "221500-сон-chat_session_b.md") {
		t.Fatalf("colliding session written to %q", other)
	}
}
