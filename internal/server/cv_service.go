package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/prakash/ats-cv-generator/internal/scoring"
	"github.com/prakash/ats-cv-generator/internal/types"
)

// CVStore is the subset of database operations the CV service needs.
type CVStore interface {
	FetchProfile(ctx context.Context, userID uuid.UUID) (*types.ProfileSnapshot, error)
	SaveGeneratedCV(ctx context.Context, cv *types.GeneratedCV) (uuid.UUID, error)
	GetGeneratedCV(ctx context.Context, id, userID uuid.UUID) (*types.GeneratedCV, error)
	ListGeneratedCVs(ctx context.Context, userID uuid.UUID, limit int) ([]types.GeneratedCV, error)
	DeleteGeneratedCV(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

// KeywordExtractor pulls the structured keyword set out of a job description.
type KeywordExtractor interface {
	ExtractKeywords(ctx context.Context, jobDescription string) (*types.JDKeywordSet, error)
}

// GenerationEngine runs the generate-score-retry loop.
type GenerationEngine interface {
	Run(ctx context.Context, profile *types.ProfileSnapshot, jobDescription string, keywords *types.JDKeywordSet) (*types.GenerationAttempt, error)
}

// DocumentCompiler turns LaTeX source into binary documents.
type DocumentCompiler interface {
	CompilePDF(ctx context.Context, latexCode string) ([]byte, error)
	ConvertDOCX(ctx context.Context, latexCode string) ([]byte, error)
}

// JobFetcher resolves a job posting URL into its description text.
type JobFetcher func(ctx context.Context, jobURL string) (string, error)

// CVService orchestrates profile lookup, keyword extraction, the generation
// loop, and persistence for the CV endpoints.
type CVService struct {
	store     CVStore
	extractor KeywordExtractor
	engine    GenerationEngine
	compiler  DocumentCompiler
	fetchJob  JobFetcher
}

// NewCVService creates a new CVService with the given dependencies.
func NewCVService(store CVStore, extractor KeywordExtractor, engine GenerationEngine, compiler DocumentCompiler, fetchJob JobFetcher) *CVService {
	return &CVService{
		store:     store,
		extractor: extractor,
		engine:    engine,
		compiler:  compiler,
		fetchJob:  fetchJob,
	}
}

// resolveJobDescription returns the job description text, fetching it from the
// posting URL when one is given. The URL takes precedence.
func (s *CVService) resolveJobDescription(ctx context.Context, req *types.GenerateCVRequest) (string, error) {
	if req.JobURL != "" {
		return s.fetchJob(ctx, req.JobURL)
	}
	return req.JobDescription, nil
}

// loadProfile fetches the caller's profile or fails with a not-found error.
func (s *CVService) loadProfile(ctx context.Context, userID uuid.UUID) (*types.ProfileSnapshot, error) {
	profile, err := s.store.FetchProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		return nil, &ErrProfileNotFound{UserID: userID}
	}
	return profile, nil
}

// Generate runs the full generation loop and persists the winning attempt.
func (s *CVService) Generate(ctx context.Context, userID uuid.UUID, req *types.GenerateCVRequest) (*types.GenerateCVResponse, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	jobDescription, err := s.resolveJobDescription(ctx, req)
	if err != nil {
		return nil, err
	}

	keywords, err := s.extractor.ExtractKeywords(ctx, jobDescription)
	if err != nil {
		return nil, err
	}

	best, err := s.engine.Run(ctx, profile, jobDescription, keywords)
	if err != nil {
		return nil, err
	}

	cvID, err := s.store.SaveGeneratedCV(ctx, &types.GeneratedCV{
		UserID:         userID,
		JobDescription: jobDescription,
		AlignedSkills:  best.Analysis.AlignedSkills,
		ATSScore:       best.Analysis.Score,
		LaTeXCode:      best.LaTeXCode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist generated CV: %w", err)
	}

	return &types.GenerateCVResponse{
		CVID:      cvID,
		ATSScore:  best.Analysis.Score,
		Attempts:  best.Attempt,
		LaTeXCode: best.LaTeXCode,
		Analysis:  best.Analysis,
	}, nil
}

// Analyze scores the stored profile against a job description without
// generating or persisting anything.
func (s *CVService) Analyze(ctx context.Context, userID uuid.UUID, req *types.GenerateCVRequest) (*types.AnalysisResult, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	jobDescription, err := s.resolveJobDescription(ctx, req)
	if err != nil {
		return nil, err
	}

	keywords, err := s.extractor.ExtractKeywords(ctx, jobDescription)
	if err != nil {
		return nil, err
	}

	return scoring.Analyze(profile, jobDescription, keywords, nil), nil
}

// History returns the user's generated CVs, newest first.
func (s *CVService) History(ctx context.Context, userID uuid.UUID, limit int) ([]types.GeneratedCV, error) {
	cvs, err := s.store.ListGeneratedCVs(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list generated CVs: %w", err)
	}
	if cvs == nil {
		cvs = []types.GeneratedCV{}
	}
	return cvs, nil
}

// Get returns one generated CV owned by the user.
func (s *CVService) Get(ctx context.Context, userID, cvID uuid.UUID) (*types.GeneratedCV, error) {
	cv, err := s.store.GetGeneratedCV(ctx, cvID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get generated CV: %w", err)
	}
	if cv == nil {
		return nil, &ErrCVNotFound{CVID: cvID}
	}
	return cv, nil
}

// Delete removes one generated CV owned by the user.
func (s *CVService) Delete(ctx context.Context, userID, cvID uuid.UUID) error {
	deleted, err := s.store.DeleteGeneratedCV(ctx, cvID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete generated CV: %w", err)
	}
	if !deleted {
		return &ErrCVNotFound{CVID: cvID}
	}
	return nil
}

// CompilePDF compiles the stored LaTeX of a generated CV into a PDF.
func (s *CVService) CompilePDF(ctx context.Context, userID, cvID uuid.UUID) ([]byte, error) {
	cv, err := s.Get(ctx, userID, cvID)
	if err != nil {
		return nil, err
	}
	return s.compiler.CompilePDF(ctx, cv.LaTeXCode)
}

// ConvertDOCX converts the stored LaTeX of a generated CV into a DOCX document.
func (s *CVService) ConvertDOCX(ctx context.Context, userID, cvID uuid.UUID) ([]byte, error) {
	cv, err := s.Get(ctx, userID, cvID)
	if err != nil {
		return nil, err
	}
	return s.compiler.ConvertDOCX(ctx, cv.LaTeXCode)
}
