package out

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mindmate/internal/modules/chat/domain"
	chatout "mindmate/internal/modules/chat/port/out"
	storedomain "mindmate/internal/modules/store/domain"
	"mindmate/internal/platform/markdown"
	"mindmate/internal/platform/slug"
)

const transcriptSchemaVersion = 1

// MarkdownTranscriptWriter files each transcript under dir/YYYY/MM/DD.
type MarkdownTranscriptWriter struct {
	dir string
}

func NewMarkdownTranscriptWriter(dir string) *MarkdownTranscriptWriter {
	return &MarkdownTranscriptWriter{dir: dir}
}

var _ chatout.TranscriptWriter = (*MarkdownTranscriptWriter)(nil)

type transcriptMeta struct {
	SchemaVersion int    `yaml:"schema_version"`
	ID            string `yaml:"id"`
	UserID        string `yaml:"user_id"`
	Title         string `yaml:"title,omitempty"`
	StartedAt     string `yaml:"started_at"`
	EndedAt       string `yaml:"ended_at,omitempty"`
	MessageCount  int    `yaml:"message_count"`
}

func (w *MarkdownTranscriptWriter) Write(_ context.Context, transcript domain.Transcript) (string, error) {
	session := transcript.Session
	date := session.StartedAt
	dir := filepath.Join(w.dir, date.Format("2006"), date.Format("01"), date.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create transcript dir: %w", err)
	}
	title := session.Title
	if title == "" {
		title = "Чат с психологом"
	}
	path, err := transcriptPath(dir, date.Format("150405")+"-"+slug.Make(title), session.ID)
	if err != nil {
		return "", err
	}

	meta := transcriptMeta{
		SchemaVersion: transcriptSchemaVersion,
		ID:            session.ID,
		UserID:        session.UserID,
		Title:         session.Title,
		StartedAt:     storedomain.FormatTime(session.StartedAt),
		MessageCount:  len(transcript.Messages),
	}
	if session.EndedAt != nil {
		meta.EndedAt = storedomain.FormatTime(*session.EndedAt)
	}

	var body strings.Builder
	fmt.Fprintf(&body, "# %s\n", title)
	for _, m := range transcript.Messages {
		speaker := "Вы"
		if m.Role == storedomain.RoleAssistant {
			speaker = "Марк"
		}
		fmt.Fprintf(&body, "\n**%s** · %s\n\n%s\n", speaker, m.Timestamp.Format("15:04"), strings.TrimSpace(m.Content))
	}

	rendered, err := markdown.Render(meta, body.String())
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write transcript: %w", err)
	}
	return path, nil
}

// transcriptPath reuses the file of an earlier export of the same session. A
// different session that lands on the same name gets its id appended.
func transcriptPath(dir, base, sessionID string) (string, error) {
	path := filepath.Join(dir, base+".md")
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return path, nil
	case err != nil:
		return "", fmt.Errorf("read transcript: %w", err)
	}
	existing := transcriptMeta{}
	if _, err := markdown.Split(string(raw), &existing); err == nil && existing.ID == sessionID {
		return path, nil
	}
	return filepath.Join(dir, base+"-"+sessionID+".md"), nil
}
