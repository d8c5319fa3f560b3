package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"mindmate/internal/modules/meditation/domain"
	meditationout "mindmate/internal/modules/meditation/port/out"
	apperrors "mindmate/internal/platform/errors"
)

// FileActiveMeditationStore keeps the one in-progress meditation in a small
// JSON side file next to the document. Writes replace the file atomically so a
// crash mid-save leaves either the previous meditation or the new one.
type FileActiveMeditationStore struct {
	mu   sync.Mutex
	path string
}

func NewFileActiveMeditationStore(path string) *FileActiveMeditationStore {
	return &FileActiveMeditationStore{path: path}
}

var _ meditationout.ActiveStore = (*FileActiveMeditationStore)(nil)

func (s *FileActiveMeditationStore) SaveActive(_ context.Context, active domain.Active) error {
	if !startedMeditation(active) {
		return fmt.Errorf("%w: active meditation needs user, title and start", apperrors.ErrInvalidInput)
	}
	payload, err := json.MarshalIndent(active, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal active meditation: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create active meditation dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".active-meditation-*.json")
	if err != nil {
		return fmt.Errorf("create temp active meditation: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write active meditation: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close active meditation: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace active meditation: %w", err)
	}
	return nil
}

// LoadActive returns ErrNoActiveMeditation when nothing is in progress,
// including when the side file lacks the user, title or start stamp.
func (s *FileActiveMeditationStore) LoadActive(_ context.Context) (domain.Active, error) {
	s.mu.Lock()
	payload, err := os.ReadFile(s.path)
	s.mu.Unlock()
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Active{}, apperrors.ErrNoActiveMeditation
	}
	if err != nil {
		return domain.Active{}, fmt.Errorf("read active meditation: %w", err)
	}
	var active domain.Active
	if err := json.Unmarshal(payload, &active); err != nil {
		return domain.Active{}, fmt.Errorf("decode active meditation %s: %w", s.path, err)
	}
	if !startedMeditation(active) {
		return domain.Active{}, apperrors.ErrNoActiveMeditation
	}
	return active, nil
}

func (s *FileActiveMeditationStore) ClearActive(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear active meditation: %w", err)
	}
	return nil
}

func startedMeditation(a domain.Active) bool {
	return a.UserID != "" && a.Title != "" && !a.StartedAt.IsZero()
}
