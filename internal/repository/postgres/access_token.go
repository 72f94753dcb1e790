package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/avolkov/tokengate/internal/model"
)

var _ model.AccessTokenStore = (*AccessTokenRepository)(nil)

type AccessTokenRepository struct {
	db DB
}

func NewAccessTokenRepository(db DB) *AccessTokenRepository {
	return &AccessTokenRepository{db: db}
}

func (r *AccessTokenRepository) Create(ctx context.Context, token model.AccessToken) error {
	const query = `
        INSERT INTO access_tokens (id, token, user_id, email, role, issued_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW())
    `

	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}

	_, err := r.db.Exec(ctx, query,
		token.ID, token.Token, token.UserID, token.Email, token.Role, token.IssuedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create access token: %w", err)
	}
	return nil
}

func (r *AccessTokenRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.AccessToken, error) {
	const query = `
        SELECT id, token, user_id, email, role, issued_at, created_at
        FROM access_tokens WHERE user_id = $1
        ORDER BY issued_at DESC
    `

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list access tokens: %w", err)
	}
	defer rows.Close()

	tokens := make([]model.AccessToken, 0)
	for rows.Next() {
		var at model.AccessToken
		if err := rows.Scan(&at.ID, &at.Token, &at.UserID, &at.Email, &at.Role, &at.IssuedAt, &at.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan access token: %w", err)
		}
		tokens = append(tokens, at)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read access tokens: %w", err)
	}

	return tokens, nil
}
