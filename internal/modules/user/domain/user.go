package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	storedomain "mindmate/internal/modules/store/domain"
	apperrors "mindmate/internal/platform/errors"
)

// DefaultName is used when an account is created without a display name.
const DefaultName = "Пользователь"

type User struct {
	ID        string
	Name      string
	Email     string
	Avatar    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Patch carries the profile fields to merge; nil fields are left alone.
type Patch struct {
	Name   *string
	Email  *string
	Avatar *string
}

func (p Patch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Avatar == nil
}

func FromRecord(r storedomain.UserRecord) User {
	return User{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Avatar:    r.Avatar,
		CreatedAt: storedomain.ParseTime(r.CreatedAt),
		UpdatedAt: storedomain.ParseTime(r.UpdatedAt),
	}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", apperrors.ErrInvalidInput)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: invalid email %q", apperrors.ErrInvalidInput, email)
	}
	return nil
}
