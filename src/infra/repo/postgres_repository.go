// Package repo contains the PostgreSQL implementation of the repository
// ports defined in src/core/ports.
package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"survivordraft/src/core/domain"
	"survivordraft/src/core/ports"
	"survivordraft/src/infra/db"
)

// PostgresRepository implements ports.DraftRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

var _ ports.DraftRepository = (*PostgresRepository)(nil)

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// Users

func (r *PostgresRepository) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	const q = `
		INSERT INTO users (username)
		VALUES ($1)
		RETURNING id, username, created_at
	`
	var u domain.User
	err := r.pool.QueryRow(ctx, q, username).Scan(&u.ID, &u.Username, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("username already taken")
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	const q = `
		SELECT id, username, created_at
		FROM users
		WHERE LOWER(username) = LOWER($1)
	`
	var u domain.User
	if err := r.pool.QueryRow(ctx, q, username).Scan(&u.ID, &u.Username, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) ListUsernames(ctx context.Context) ([]string, error) {
	const q = `
		SELECT username
		FROM users
		ORDER BY username
	`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usernames []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		usernames = append(usernames, name)
	}
	return usernames, rows.Err()
}

// Castaways

const castawayColumns = `
	player_name, tribe, actual_rank, is_final_three, is_winner,
	photo_url, seasons_played, age, hometown, occupation
`

func scanCastaway(row pgx.Row) (*domain.Castaway, error) {
	var c domain.Castaway
	err := row.Scan(
		&c.PlayerName, &c.Tribe, &c.ActualRank, &c.IsFinalThree, &c.IsWinner,
		&c.PhotoURL, &c.SeasonsPlayed, &c.Age, &c.Hometown, &c.Occupation,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) ListCastaways(ctx context.Context) ([]domain.Castaway, error) {
	q := `
		SELECT ` + castawayColumns + `
		FROM castaways
		ORDER BY player_name
	`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var castaways []domain.Castaway
	for rows.Next() {
		c, err := scanCastaway(rows)
		if err != nil {
			return nil, err
		}
		castaways = append(castaways, *c)
	}
	return castaways, rows.Err()
}

func (r *PostgresRepository) GetCastaway(ctx context.Context, playerName string) (*domain.Castaway, error) {
	q := `
		SELECT ` + castawayColumns + `
		FROM castaways
		WHERE player_name = $1
	`
	c, err := scanCastaway(r.pool.QueryRow(ctx, q, playerName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("castaway")
		}
		return nil, err
	}
	return c, nil
}

func (r *PostgresRepository) UpdateOutcome(ctx context.Context, playerName string, update ports.OutcomeUpdate) (*domain.Castaway, error) {
	q := `
		UPDATE castaways
		SET actual_rank    = COALESCE($2, actual_rank),
		    is_final_three = COALESCE($3, is_final_three),
		    is_winner      = COALESCE($4, is_winner)
		WHERE player_name = $1
		RETURNING ` + castawayColumns

	c, err := scanCastaway(r.pool.QueryRow(ctx, q, playerName,
		update.ActualRank, update.IsFinalThree, update.IsWinner))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("castaway")
		}
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("elimination rank already taken")
		}
		return nil, err
	}
	return c, nil
}

// Predictions

func (r *PostgresRepository) ListPredictions(ctx context.Context) ([]domain.Prediction, error) {
	const q = `
		SELECT username, player_name, predicted_rank
		FROM predictions
		ORDER BY username, player_name
	`
	return r.queryPredictions(ctx, q)
}

func (r *PostgresRepository) ListPredictionsByUser(ctx context.Context, username string) ([]domain.Prediction, error) {
	const q = `
		SELECT username, player_name, predicted_rank
		FROM predictions
		WHERE username = $1
		ORDER BY player_name
	`
	return r.queryPredictions(ctx, q, username)
}

func (r *PostgresRepository) queryPredictions(ctx context.Context, q string, args ...any) ([]domain.Prediction, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var predictions []domain.Prediction
	for rows.Next() {
		var p domain.Prediction
		if err := rows.Scan(&p.Username, &p.PlayerName, &p.PredictedRank); err != nil {
			return nil, err
		}
		predictions = append(predictions, p)
	}
	return predictions, rows.Err()
}

// ReplacePredictions deletes the user's current set and inserts the new one
// in a single transaction, so concurrent readers never see the intermediate
// empty state and saves by the same user cannot interleave partially.
func (r *PostgresRepository) ReplacePredictions(ctx context.Context, username string, predictions []domain.Prediction) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(ctx, `DELETE FROM predictions WHERE username = $1`, username); err != nil {
		return err
	}

	const insert = `
		INSERT INTO predictions (username, player_name, predicted_rank)
		VALUES ($1, $2, $3)
	`
	for _, p := range predictions {
		if _, err := tx.Exec(ctx, insert, username, p.PlayerName, p.PredictedRank); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
