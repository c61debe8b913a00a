package util

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailRegistered   = errors.New("email is already registered")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrRetakeNotAllowed  = errors.New("retake not allowed for this account")
	ErrQuestionNotFound  = errors.New("quiz question not found")
	ErrArchetypeNotFound = errors.New("archetype not found")
	ErrResultNotFound    = errors.New("assessment result not found")
	ErrIncompleteAnswers = errors.New("answer set does not cover the full question catalog")
)
