package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/prakash/ats-cv-generator/internal/ingestion"
	"github.com/prakash/ats-cv-generator/internal/llm"
	"github.com/prakash/ats-cv-generator/internal/optimizer"
)

func TestHTTPStatus_AuthErrors(t *testing.T) {
	assert.Equal(t, http.StatusConflict, HTTPStatus(&ErrEmailAlreadyExists{Email: "a@b.com"}))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(&ErrInvalidCredentials{}))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(&ErrPasswordMismatch{}))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(&ErrInvalidToken{Reason: "expired"}))
}

func TestHTTPStatus_NotFoundErrors(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrUserNotFound{UserID: uuid.New()}))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrProfileNotFound{UserID: uuid.New()}))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrCVNotFound{CVID: uuid.New()}))
}

func TestHTTPStatus_Validation(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "email", Message: "required"}))
}

func TestHTTPStatus_UpstreamErrors(t *testing.T) {
	extraction := &llm.ExtractionError{Message: "bad payload"}
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(extraction))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(fmt.Errorf("wrapped: %w", extraction)))

	fetch := &ingestion.FetchError{URL: "https://example.com/job", Message: "HTTP status 503"}
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(fetch))
}

func TestHTTPStatus_GenerationFailure(t *testing.T) {
	failure := &optimizer.GenerationFailure{Attempts: 3}
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(failure))
}

func TestHTTPStatus_UnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(fmt.Errorf("boom")))
}
