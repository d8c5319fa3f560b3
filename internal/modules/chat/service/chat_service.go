package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"mindmate/internal/modules/chat/domain"
	storedomain "mindmate/internal/modules/store/domain"
	storein "mindmate/internal/modules/store/port/in"
	"mindmate/internal/platform/clock"
	apperrors "mindmate/internal/platform/errors"
	"mindmate/internal/platform/id"
)

type ChatService struct {
	clock clock.Clock
	idGen id.Generator
	docs  storein.Documents
}

func NewChatService(clock clock.Clock, idGen id.Generator, docs storein.Documents) *ChatService {
	return &ChatService{clock: clock, idGen: idGen, docs: docs}
}

func (s *ChatService) statID() string { return s.idGen.New("user_stat") }

func (s *ChatService) CreateSession(ctx context.Context, userID, title string) (domain.Session, error) {
	var out domain.Session
	err := s.docs.Update(ctx, func(doc *storedomain.Document) error {
		if _, ok := doc.Users[userID]; !ok {
			return apperrors.ErrNotFound
		}
		now := s.clock.Now()
		stamp := storedomain.FormatTime(now)
		record := storedomain.ChatSessionRecord{
			ID:        s.idGen.New("chat_session"),
			UserID:    userID,
			Title:     title,
			StartedAt: stamp,
			CreatedAt: stamp,
		}
		doc.ChatSessions[record.ID] = record
		doc.RefreshStats(userID, now, s.statID)
		out = domain.SessionFromRecord(record)
		return nil
	})
	return out, err
}

// EndSession stamps endedAt; ending an already ended session moves the stamp.
func (s *ChatService) EndSession(ctx context.Context, sessionID string) (domain.Session, error) {
	var out domain.Session
	err := s.docs.Update(ctx, func(doc *storedomain.Document) error {
		record, ok := doc.ChatSessions[sessionID]
		if !ok {
			return apperrors.ErrNotFound
		}
		now := s.clock.Now()
		record.EndedAt = storedomain.FormatTime(now)
		doc.ChatSessions[sessionID] = record
		doc.RefreshStats(record.UserID, now, s.statID)
		out = domain.SessionFromRecord(record)
		return nil
	})
	return out, err
}

// AddMessage appends to an existing session. The author must be a known user;
// the session owner's counters are refreshed along with the author's.
func (s *ChatService) AddMessage(ctx context.Context, sessionID, userID, content string, role storedomain.Role) (domain.Message, error) {
	var out domain.Message
	err := s.docs.Update(ctx, func(doc *storedomain.Document) error {
		session, ok := doc.ChatSessions[sessionID]
		if !ok {
			return apperrors.ErrNotFound
		}
		if _, ok := doc.Users[userID]; !ok {
			return fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
		}
		now := s.clock.Now()
		record := storedomain.ChatMessageRecord{
			ID:        s.idGen.New("chat_message"),
			SessionID: sessionID,
			UserID:    userID,
			Content:   content,
			Role:      role,
			Timestamp: storedomain.FormatTime(now),
		}
		doc.ChatMessages[record.ID] = record
		session.MessageCount++
		doc.ChatSessions[sessionID] = session
		if _, ok := doc.Users[session.UserID]; ok {
			doc.RefreshStats(session.UserID, now, s.statID)
		}
		if userID != session.UserID {
			doc.RefreshStats(userID, now, s.statID)
		}
		out = domain.MessageFromRecord(record)
		return nil
	})
	return out, err
}

func (s *ChatService) Session(ctx context.Context, sessionID string) (domain.Session, error) {
	var out domain.Session
	err := s.docs.Read(ctx, func(doc storedomain.Document) error {
		record, ok := doc.ChatSessions[sessionID]
		if !ok {
			return apperrors.ErrNotFound
		}
		out = domain.SessionFromRecord(record)
		return nil
	})
	return out, err
}

// Messages returns the session's messages oldest first. An unknown session
// simply has no messages.
func (s *ChatService) Messages(ctx context.Context, sessionID string) ([]domain.Message, error) {
	var records []storedomain.ChatMessageRecord
	err := s.docs.Read(ctx, func(doc storedomain.Document) error {
		for _, m := range doc.ChatMessages {
			if m.SessionID == sessionID {
				records = append(records, m)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(records, func(a, b storedomain.ChatMessageRecord) int {
		return cmp.Or(cmp.Compare(a.Timestamp, b.Timestamp), cmp.Compare(a.ID, b.ID))
	})
	out := make([]domain.Message, 0, len(records))
	for _, r := range records {
		out = append(out, domain.MessageFromRecord(r))
	}
	return out, nil
}

// UserSessions returns the newest sessions first, at most limit of them.
func (s *ChatService) UserSessions(ctx context.Context, userID string, limit int) ([]domain.Session, error) {
	var records []storedomain.ChatSessionRecord
	err := s.docs.Read(ctx, func(doc storedomain.Document) error {
		for _, r := range doc.ChatSessions {
			if r.UserID == userID {
				records = append(records, r)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(records, func(a, b storedomain.ChatSessionRecord) int {
		return cmp.Or(cmp.Compare(b.CreatedAt, a.CreatedAt), cmp.Compare(b.ID, a.ID))
	})
	if len(records) > limit {
		records = records[:limit]
	}
	out := make([]domain.Session, 0, len(records))
	for _, r := range records {
		out = append(out, domain.SessionFromRecord(r))
	}
	return out, nil
}
