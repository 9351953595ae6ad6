package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/prakash/ats-cv-generator/internal/types"
)

// UpsertProfile stores the full profile snapshot for a user, replacing any
// previous snapshot.
func (db *DB) UpsertProfile(ctx context.Context, userID uuid.UUID, snapshot *types.ProfileSnapshot) error {
	jsonBytes, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO profiles (user_id, snapshot)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET snapshot = $2, updated_at = NOW()`,
		userID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// FetchProfile retrieves the profile snapshot for a user.
// Returns nil without error when no profile exists.
func (db *DB) FetchProfile(ctx context.Context, userID uuid.UUID) (*types.ProfileSnapshot, error) {
	var jsonBytes []byte
	err := db.pool.QueryRow(ctx,
		`SELECT snapshot FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&jsonBytes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	var snapshot types.ProfileSnapshot
	if err := json.Unmarshal(jsonBytes, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &snapshot, nil
}

// ProfileUpdatedAt returns when the user's profile was last written.
// Returns the zero time without error when no profile exists.
func (db *DB) ProfileUpdatedAt(ctx context.Context, userID uuid.UUID) (time.Time, error) {
	var updatedAt time.Time
	err := db.pool.QueryRow(ctx,
		`SELECT updated_at FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("failed to fetch profile timestamp: %w", err)
	}
	return updatedAt, nil
}
