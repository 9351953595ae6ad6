package server

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prakash/ats-cv-generator/internal/llm"
	"github.com/prakash/ats-cv-generator/internal/types"
)

// fakeCVStore is an in-memory CVStore for service tests.
type fakeCVStore struct {
	profiles map[uuid.UUID]*types.ProfileSnapshot
	cvs      map[uuid.UUID]*types.GeneratedCV
}

func newFakeCVStore() *fakeCVStore {
	return &fakeCVStore{
		profiles: make(map[uuid.UUID]*types.ProfileSnapshot),
		cvs:      make(map[uuid.UUID]*types.GeneratedCV),
	}
}

func (f *fakeCVStore) FetchProfile(_ context.Context, userID uuid.UUID) (*types.ProfileSnapshot, error) {
	return f.profiles[userID], nil
}

func (f *fakeCVStore) UpsertProfile(_ context.Context, userID uuid.UUID, snapshot *types.ProfileSnapshot) error {
	f.profiles[userID] = snapshot
	return nil
}

func (f *fakeCVStore) SaveGeneratedCV(_ context.Context, cv *types.GeneratedCV) (uuid.UUID, error) {
	id := uuid.New()
	stored := *cv
	stored.ID = id
	f.cvs[id] = &stored
	return id, nil
}

func (f *fakeCVStore) GetGeneratedCV(_ context.Context, id, userID uuid.UUID) (*types.GeneratedCV, error) {
	cv, ok := f.cvs[id]
	if !ok || cv.UserID != userID {
		return nil, nil
	}
	return cv, nil
}

func (f *fakeCVStore) ListGeneratedCVs(_ context.Context, userID uuid.UUID, _ int) ([]types.GeneratedCV, error) {
	var out []types.GeneratedCV
	for _, cv := range f.cvs {
		if cv.UserID == userID {
			out = append(out, *cv)
		}
	}
	return out, nil
}

func (f *fakeCVStore) DeleteGeneratedCV(_ context.Context, id, userID uuid.UUID) (bool, error) {
	cv, ok := f.cvs[id]
	if !ok || cv.UserID != userID {
		return false, nil
	}
	delete(f.cvs, id)
	return true, nil
}

type fakeExtractor struct {
	keywords *types.JDKeywordSet
	err      error
}

func (f *fakeExtractor) ExtractKeywords(_ context.Context, _ string) (*types.JDKeywordSet, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.keywords, nil
}

type fakeEngine struct {
	attempt *types.GenerationAttempt
	err     error
}

func (f *fakeEngine) Run(_ context.Context, _ *types.ProfileSnapshot, _ string, _ *types.JDKeywordSet) (*types.GenerationAttempt, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.attempt, nil
}

type fakeCompiler struct {
	pdf  []byte
	docx []byte
	err  error
}

func (f *fakeCompiler) CompilePDF(_ context.Context, _ string) ([]byte, error) {
	return f.pdf, f.err
}

func (f *fakeCompiler) ConvertDOCX(_ context.Context, _ string) ([]byte, error) {
	return f.docx, f.err
}

func serviceProfile() *types.ProfileSnapshot {
	return &types.ProfileSnapshot{
		PersonalDetails: types.PersonalDetails{FullName: "Test Candidate", Email: "c@example.com"},
		Skills:          types.Skills{ProgrammingLanguages: []string{"Go", "Python"}},
		Projects: []types.Project{
			{ProjectName: "Gateway", TechStack: []string{"Go"}, BulletPoints: []string{"Built an API gateway handling real traffic"}},
		},
	}
}

func serviceAttempt() *types.GenerationAttempt {
	return &types.GenerationAttempt{
		Attempt:   2,
		LaTeXCode: "\\documentclass{article}",
		Analysis: &types.AnalysisResult{
			Score:         91,
			AlignedSkills: []string{"go", "python"},
		},
	}
}

func testCVService(store *fakeCVStore) *CVService {
	return NewCVService(
		store,
		&fakeExtractor{keywords: &types.JDKeywordSet{Skills: []string{"go"}}},
		&fakeEngine{attempt: serviceAttempt()},
		&fakeCompiler{pdf: []byte("%PDF-1.5"), docx: []byte("PK docx")},
		func(_ context.Context, _ string) (string, error) {
			return "fetched job description text", nil
		},
	)
}

func TestCVService_Generate(t *testing.T) {
	store := newFakeCVStore()
	userID := uuid.New()
	store.profiles[userID] = serviceProfile()
	svc := testCVService(store)

	resp, err := svc.Generate(context.Background(), userID, &types.GenerateCVRequest{
		JobDescription: "Backend engineer role working on Go services and PostgreSQL storage.",
	})
	require.NoError(t, err)

	assert.Equal(t, 91, resp.ATSScore)
	assert.Equal(t, 2, resp.Attempts)
	assert.NotEqual(t, uuid.Nil, resp.CVID)

	stored := store.cvs[resp.CVID]
	require.NotNil(t, stored)
	assert.Equal(t, userID, stored.UserID)
	assert.Equal(t, []string{"go", "python"}, stored.AlignedSkills)
	assert.Equal(t, "\\documentclass{article}", stored.LaTeXCode)
}

func TestCVService_Generate_NoProfile(t *testing.T) {
	svc := testCVService(newFakeCVStore())

	_, err := svc.Generate(context.Background(), uuid.New(), &types.GenerateCVRequest{
		JobDescription: "Backend engineer role working on Go services and PostgreSQL storage.",
	})
	require.Error(t, err)
	assert.IsType(t, &ErrProfileNotFound{}, err)
}

func TestCVService_Generate_URLTakesPrecedence(t *testing.T) {
	store := newFakeCVStore()
	userID := uuid.New()
	store.profiles[userID] = serviceProfile()

	fetched := false
	svc := NewCVService(
		store,
		&fakeExtractor{keywords: &types.JDKeywordSet{}},
		&fakeEngine{attempt: serviceAttempt()},
		&fakeCompiler{},
		func(_ context.Context, jobURL string) (string, error) {
			fetched = true
			assert.Equal(t, "https://example.com/job", jobURL)
			return "fetched job description", nil
		},
	)

	resp, err := svc.Generate(context.Background(), userID, &types.GenerateCVRequest{
		JobDescription: "inline text that should be ignored when a URL is set",
		JobURL:         "https://example.com/job",
	})
	require.NoError(t, err)
	assert.True(t, fetched)

	stored := store.cvs[resp.CVID]
	require.NotNil(t, stored)
	assert.Equal(t, "fetched job description", stored.JobDescription)
}

func TestCVService_Generate_ExtractionErrorPropagates(t *testing.T) {
	store := newFakeCVStore()
	userID := uuid.New()
	store.profiles[userID] = serviceProfile()

	svc := NewCVService(
		store,
		&fakeExtractor{err: &llm.ExtractionError{Message: "bad payload"}},
		&fakeEngine{attempt: serviceAttempt()},
		&fakeCompiler{},
		nil,
	)

	_, err := svc.Generate(context.Background(), userID, &types.GenerateCVRequest{
		JobDescription: "Backend engineer role working on Go services and PostgreSQL storage.",
	})
	require.Error(t, err)
	assert.Equal(t, 502, HTTPStatus(err))
	assert.Empty(t, store.cvs, "nothing should be persisted on failure")
}

func TestCVService_Analyze_DoesNotPersist(t *testing.T) {
	store := newFakeCVStore()
	userID := uuid.New()
	store.profiles[userID] = serviceProfile()
	svc := testCVService(store)

	analysis, err := svc.Analyze(context.Background(), userID, &types.GenerateCVRequest{
		JobDescription: "Backend engineer role working on Go services and PostgreSQL storage.",
	})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, analysis.Score, 0)
	assert.LessOrEqual(t, analysis.Score, 100)
	assert.Empty(t, store.cvs)
}

func TestCVService_GetAndDelete(t *testing.T) {
	store := newFakeCVStore()
	userID := uuid.New()
	store.profiles[userID] = serviceProfile()
	svc := testCVService(store)

	resp, err := svc.Generate(context.Background(), userID, &types.GenerateCVRequest{
		JobDescription: "Backend engineer role working on Go services and PostgreSQL storage.",
	})
	require.NoError(t, err)

	cv, err := svc.Get(context.Background(), userID, resp.CVID)
	require.NoError(t, err)
	assert.Equal(t, resp.CVID, cv.ID)

	// Another user cannot see or delete it
	_, err = svc.Get(context.Background(), uuid.New(), resp.CVID)
	assert.IsType(t, &ErrCVNotFound{}, err)

	require.NoError(t, svc.Delete(context.Background(), userID, resp.CVID))
	err = svc.Delete(context.Background(), userID, resp.CVID)
	assert.IsType(t, &ErrCVNotFound{}, err)
}

func TestCVService_History_EmptyIsNotNil(t *testing.T) {
	svc := testCVService(newFakeCVStore())

	cvs, err := svc.History(context.Background(), uuid.New(), 0)
	require.NoError(t, err)
	assert.NotNil(t, cvs)
	assert.Empty(t, cvs)
}

func TestCVService_CompilePDF(t *testing.T) {
	store := newFakeCVStore()
	userID := uuid.New()
	store.profiles[userID] = serviceProfile()
	svc := testCVService(store)

	resp, err := svc.Generate(context.Background(), userID, &types.GenerateCVRequest{
		JobDescription: "Backend engineer role working on Go services and PostgreSQL storage.",
	})
	require.NoError(t, err)

	pdf, err := svc.CompilePDF(context.Background(), userID, resp.CVID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.5"), pdf)

	_, err = svc.CompilePDF(context.Background(), userID, uuid.New())
	assert.IsType(t, &ErrCVNotFound{}, err)
}

func TestCVService_FetchFailurePropagates(t *testing.T) {
	store := newFakeCVStore()
	userID := uuid.New()
	store.profiles[userID] = serviceProfile()

	svc := NewCVService(
		store,
		&fakeExtractor{keywords: &types.JDKeywordSet{}},
		&fakeEngine{attempt: serviceAttempt()},
		&fakeCompiler{},
		func(_ context.Context, _ string) (string, error) {
			return "", fmt.Errorf("connection refused")
		},
	)

	_, err := svc.Generate(context.Background(), userID, &types.GenerateCVRequest{
		JobURL: "https://example.com/job",
	})
	assert.Error(t, err)
}
