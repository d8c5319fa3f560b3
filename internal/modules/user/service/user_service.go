package service

import (
	"context"
	"errors"

	storedomain "mindmate/internal/modules/store/domain"
	storein "mindmate/internal/modules/store/port/in"
	"mindmate/internal/modules/user/domain"
	"mindmate/internal/platform/clock"
	apperrors "mindmate/internal/platform/errors"
	"mindmate/internal/platform/id"
)

type UserService struct {
	clock clock.Clock
	idGen id.Generator
	docs  storein.Documents
}

func NewUserService(clock clock.Clock, idGen id.Generator, docs storein.Documents) *UserService {
	return &UserService{clock: clock, idGen: idGen, docs: docs}
}

func (s *UserService) GetByID(ctx context.Context, userID string) (domain.User, error) {
	var found domain.User
	err := s.docs.Read(ctx, func(doc storedomain.Document) error {
		record, ok := doc.Users[userID]
		if !ok {
			return apperrors.ErrNotFound
		}
		found = domain.FromRecord(record)
		return nil
	})
	return found, err
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var found domain.User
	err := s.docs.Read(ctx, func(doc storedomain.Document) error {
		record, ok := doc.UserByEmail(email)
		if !ok {
			return apperrors.ErrNotFound
		}
		found = domain.FromRecord(record)
		return nil
	})
	return found, err
}

// GetOrCreate is idempotent by email: an existing account is returned as is
// without touching the store.
func (s *UserService) GetOrCreate(ctx context.Context, email, name string) (domain.User, error) {
	existing, err := s.GetByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return domain.User{}, err
	}
	var out domain.User
	err = s.docs.Update(ctx, func(doc *storedomain.Document) error {
		if record, ok := doc.UserByEmail(email); ok {
			out = domain.FromRecord(record)
			return nil
		}
		out = s.insert(doc, email, name)
		return nil
	})
	return out, err
}

// Register creates an account and refuses a known email.
func (s *UserService) Register(ctx context.Context, email, name string) (domain.User, error) {
	var out domain.User
	err := s.docs.Update(ctx, func(doc *storedomain.Document) error {
		if _, ok := doc.UserByEmail(email); ok {
			return apperrors.ErrEmailTaken
		}
		out = s.insert(doc, email, name)
		return nil
	})
	return out, err
}

func (s *UserService) insert(doc *storedomain.Document, email, name string) domain.User {
	now := s.clock.Now()
	stamp := storedomain.FormatTime(now)
	record := storedomain.UserRecord{
		ID:        s.idGen.New("user"),
		Name:      name,
		Email:     email,
		CreatedAt: stamp,
		UpdatedAt: stamp,
	}
	doc.Users[record.ID] = record
	doc.EnsureStats(record.ID, now, func() string { return s.idGen.New("user_stat") })
	return domain.FromRecord(record)
}

// Update merges the patch and then refreshes the user's stats, even though a
// profile edit never changes activity counters.
func (s *UserService) Update(ctx context.Context, userID string, patch domain.Patch) (domain.User, error) {
	var out domain.User
	err := s.docs.Update(ctx, func(doc *storedomain.Document) error {
		record, ok := doc.Users[userID]
		if !ok {
			return apperrors.ErrNotFound
		}
		if patch.Email != nil && *patch.Email != record.Email {
			if other, taken := doc.UserByEmail(*patch.Email); taken && other.ID != userID {
				return apperrors.ErrEmailTaken
			}
			record.Email = *patch.Email
		}
		if patch.Name != nil {
			record.Name = *patch.Name
		}
		if patch.Avatar != nil {
			record.Avatar = *patch.Avatar
		}
		now := s.clock.Now()
		record.UpdatedAt = storedomain.FormatTime(now)
		doc.Users[userID] = record
		doc.RefreshStats(userID, now, func() string { return s.idGen.New("user_stat") })
		out = domain.FromRecord(record)
		return nil
	})
	return out, err
}
