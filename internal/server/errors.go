// Package server provides the HTTP REST API for the ATS CV generator.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/prakash/ats-cv-generator/internal/ingestion"
	"github.com/prakash/ats-cv-generator/internal/llm"
	"github.com/prakash/ats-cv-generator/internal/optimizer"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrInvalidToken indicates a missing, malformed, or expired token
type ErrInvalidToken struct {
	Reason string
}

func (e *ErrInvalidToken) Error() string {
	return fmt.Sprintf("invalid token: %s", e.Reason)
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrProfileNotFound indicates the user has not created a profile yet
type ErrProfileNotFound struct {
	UserID uuid.UUID
}

func (e *ErrProfileNotFound) Error() string {
	return fmt.Sprintf("profile not found for user: %s", e.UserID)
}

// ErrCVNotFound indicates the generated CV does not exist or is not owned by the user
type ErrCVNotFound struct {
	CVID uuid.UUID
}

func (e *ErrCVNotFound) Error() string {
	return fmt.Sprintf("generated CV not found: %s", e.CVID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials, *ErrPasswordMismatch, *ErrInvalidToken:
		return http.StatusUnauthorized
	case *ErrUserNotFound, *ErrProfileNotFound, *ErrCVNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	}

	var extractionErr *llm.ExtractionError
	var fetchErr *ingestion.FetchError
	if errors.As(err, &extractionErr) || errors.As(err, &fetchErr) {
		return http.StatusBadGateway
	}

	var genFailure *optimizer.GenerationFailure
	if errors.As(err, &genFailure) {
		return http.StatusInternalServerError
	}

	return http.StatusInternalServerError
}
