package apperrors

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrNotFound               = errors.New("not found")
	ErrEmailTaken             = errors.New("email already registered")
	ErrIntegrity              = errors.New("data integrity fault")
	ErrNoActiveMeditation     = errors.New("no active meditation")
	ErrActiveMeditationExists = errors.New("active meditation already exists")
)
