package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// PostgresStore keeps sessions in the sessions table created by
// database.Migrate.
type PostgresStore struct {
	pool   *pgxpool.Pool
	ttl    time.Duration
	logger zerolog.Logger
}

// NewPostgresStore creates a store backed by pool.
func NewPostgresStore(pool *pgxpool.Pool, ttl time.Duration, logger zerolog.Logger) *PostgresStore {
	return &PostgresStore{
		pool:   pool,
		ttl:    ttl,
		logger: logger.With().Str("store", "postgres").Logger(),
	}
}

func (p *PostgresStore) Get(ctx context.Context, id string) (*model.Session, error) {
	if !ValidID(id) {
		return nil, ErrNotFound
	}

	var raw []byte
	err := p.pool.QueryRow(ctx,
		"SELECT data FROM sessions WHERE id = $1 AND expires_at > now()",
		id,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		p.logger.Error().Err(err).Str("session_id", id).Msg("failed to query session")
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	var s model.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &s, nil
}

func (p *PostgresStore) Save(ctx context.Context, s *model.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	_, err = p.pool.Exec(ctx, `
		INSERT INTO sessions (id, data, expires_at, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (id) DO UPDATE
		SET data = EXCLUDED.data, expires_at = EXCLUDED.expires_at, updated_at = now()`,
		s.ID, raw, expiry(time.Now(), p.ttl),
	)
	if err != nil {
		p.logger.Error().Err(err).Str("session_id", s.ID).Msg("failed to save session")
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (p *PostgresStore) Delete(ctx context.Context, id string) error {
	if !ValidID(id) {
		return nil
	}
	if _, err := p.pool.Exec(ctx, "DELETE FROM sessions WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// PurgeExpired removes expired rows and returns how many were deleted.
func (p *PostgresStore) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := p.pool.Exec(ctx, "DELETE FROM sessions WHERE expires_at <= now()")
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
