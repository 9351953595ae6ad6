package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/prakash/ats-cv-generator/internal/server/middleware"
	"github.com/prakash/ats-cv-generator/internal/types"
)

// CVHandler handles CV generation and document HTTP requests.
type CVHandler struct {
	service *CVService
}

// NewCVHandler creates a new CVHandler.
func NewCVHandler(service *CVService) *CVHandler {
	return &CVHandler{service: service}
}

// decodeGenerateRequest reads and validates the shared generate/analyze request body.
func decodeGenerateRequest(w http.ResponseWriter, r *http.Request) (*types.GenerateCVRequest, bool) {
	var req types.GenerateCVRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if req.JobDescription == "" && req.JobURL == "" {
		writeError(w, http.StatusBadRequest, "job_description or job_url is required")
		return nil, false
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return &req, true
}

// requestUserID resolves the authenticated user, writing a 401 on failure.
func requestUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// pathCVID parses the {id} path segment.
func pathCVID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid CV ID")
		return uuid.Nil, false
	}
	return id, true
}

// Generate runs the full generation loop for the authenticated user.
func (h *CVHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	req, ok := decodeGenerateRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Generate(r.Context(), userID, req)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Analyze scores the profile against a job description without generating.
func (h *CVHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	req, ok := decodeGenerateRequest(w, r)
	if !ok {
		return
	}

	analysis, err := h.service.Analyze(r.Context(), userID, req)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

// History lists the user's generated CVs, newest first.
func (h *CVHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	cvs, err := h.service.History(r.Context(), userID, limit)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, cvs)
}

// Get returns one generated CV.
func (h *CVHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	cvID, ok := pathCVID(w, r)
	if !ok {
		return
	}

	cv, err := h.service.Get(r.Context(), userID, cvID)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, cv)
}

// GetLaTeX returns the raw LaTeX source of one generated CV.
func (h *CVHandler) GetLaTeX(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	cvID, ok := pathCVID(w, r)
	if !ok {
		return
	}

	cv, err := h.service.Get(r.Context(), userID, cvID)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/x-latex")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(cv.LaTeXCode))
}

// Delete removes one generated CV.
func (h *CVHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	cvID, ok := pathCVID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, cvID); err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CompilePDF compiles the stored LaTeX into a PDF download.
func (h *CVHandler) CompilePDF(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	cvID, ok := pathCVID(w, r)
	if !ok {
		return
	}

	pdf, err := h.service.CompilePDF(r.Context(), userID, cvID)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="cv.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// ConvertDOCX converts the stored LaTeX into a DOCX download.
func (h *CVHandler) ConvertDOCX(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	cvID, ok := pathCVID(w, r)
	if !ok {
		return
	}

	docx, err := h.service.ConvertDOCX(r.Context(), userID, cvID)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", `attachment; filename="cv.docx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(docx)
}
