package screening

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. The full result document is kept
// as JSONB alongside a few indexed columns for listing.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new screening record.
func (r *PGRepo) Create(ctx context.Context, result Result) error {
	const query = `
INSERT INTO screenings (id, job_role, status, candidate_name, candidate_email, final_score, email_sent, result, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal screening result: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		result.ID,
		result.JobRole,
		result.Status,
		result.CandidateInfo.Name,
		result.CandidateInfo.Email,
		result.FinalScore,
		result.EmailSent,
		payload,
		result.CreatedAt,
	)
	return err
}

// GetByID returns a screening result by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Result, error) {
	const query = `SELECT result FROM screenings WHERE id = $1 LIMIT 1`
	var payload []byte
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Result{}, ErrNotFound
		}
		return Result{}, err
	}
	var result Result
	if err := json.Unmarshal(payload, &result); err != nil {
		return Result{}, fmt.Errorf("decode stored screening %s: %w", id, err)
	}
	return result, nil
}

// ListRecent returns screening results newest first.
func (r *PGRepo) ListRecent(ctx context.Context, limit, offset int) ([]Result, error) {
	const query = `SELECT result FROM screenings ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]Result, 0, limit)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var result Result
		if err := json.Unmarshal(payload, &result); err != nil {
			return nil, fmt.Errorf("decode stored screening: %w", err)
		}
		results = append(results, result)
	}
	return results, rows.Err()
}
