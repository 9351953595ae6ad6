package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/prakash/ats-cv-generator/internal/types"
)

// DefaultHistoryLimit caps history listings when no explicit limit is given.
const DefaultHistoryLimit = 50

// SaveGeneratedCV persists a generated CV record and returns its ID
func (db *DB) SaveGeneratedCV(ctx context.Context, cv *types.GeneratedCV) (uuid.UUID, error) {
	skills, err := json.Marshal(cv.AlignedSkills)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal aligned skills: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO generated_cvs (user_id, job_description, aligned_skills, ats_score, latex_code)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		cv.UserID, cv.JobDescription, skills, cv.ATSScore, cv.LaTeXCode,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save generated CV: %w", err)
	}
	return id, nil
}

// GetGeneratedCV retrieves one generated CV owned by the given user.
// Returns nil without error when no record exists.
func (db *DB) GetGeneratedCV(ctx context.Context, id, userID uuid.UUID) (*types.GeneratedCV, error) {
	var cv types.GeneratedCV
	var skills []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, job_description, aligned_skills, ats_score, latex_code, created_at
		 FROM generated_cvs WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&cv.ID, &cv.UserID, &cv.JobDescription, &skills, &cv.ATSScore, &cv.LaTeXCode, &cv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get generated CV: %w", err)
	}

	if err := json.Unmarshal(skills, &cv.AlignedSkills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal aligned skills: %w", err)
	}
	return &cv, nil
}

// ListGeneratedCVs returns the user's generated CVs, newest first
func (db *DB) ListGeneratedCVs(ctx context.Context, userID uuid.UUID, limit int) ([]types.GeneratedCV, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, job_description, aligned_skills, ats_score, latex_code, created_at
		 FROM generated_cvs WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list generated CVs: %w", err)
	}
	defer rows.Close()

	var cvs []types.GeneratedCV
	for rows.Next() {
		var cv types.GeneratedCV
		var skills []byte
		if err := rows.Scan(&cv.ID, &cv.UserID, &cv.JobDescription, &skills, &cv.ATSScore, &cv.LaTeXCode, &cv.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan generated CV: %w", err)
		}
		if err := json.Unmarshal(skills, &cv.AlignedSkills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal aligned skills: %w", err)
		}
		cvs = append(cvs, cv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read generated CVs: %w", err)
	}
	return cvs, nil
}

// DeleteGeneratedCV removes one generated CV owned by the given user.
// Reports whether a record was deleted.
func (db *DB) DeleteGeneratedCV(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM generated_cvs WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete generated CV: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
