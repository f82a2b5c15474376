// Package tweet implements the Tweet repository using PostgreSQL.
package tweet

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/twitter-backend/internal/adapter/postgres"
	"github.com/heartmarshall/twitter-backend/internal/domain"
)

const returning = "RETURNING id, user_id, tweet, created_at"

// Repo provides tweet persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tweet repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a tweet by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Tweet, error) {
	query, args, err := postgres.Builder.
		Select("id", "user_id", "tweet", "created_at").
		From("tweets").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	t, err := scanTweet(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "tweet", id)
	}
	return t, nil
}

// Create inserts a tweet for t.UserID.
func (r *Repo) Create(ctx context.Context, t *domain.Tweet) (*domain.Tweet, error) {
	query, args, err := postgres.Builder.
		Insert("tweets").
		Columns("user_id", "tweet").
		Values(t.UserID, t.Text).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	created, err := scanTweet(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "tweet", 0)
	}
	return created, nil
}

// UpdateText replaces the text of a tweet. A missing tweet yields domain.ErrNotFound.
func (r *Repo) UpdateText(ctx context.Context, id int64, text string) (*domain.Tweet, error) {
	query, args, err := postgres.Builder.
		Update("tweets").
		Set("tweet", text).
		Where(sq.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	t, err := scanTweet(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "tweet", id)
	}
	return t, nil
}

// Delete removes a tweet. A missing tweet yields domain.ErrNotFound.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query, args, err := postgres.Builder.Delete("tweets").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "tweet", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "tweet", id)
	}
	return nil
}

// ListByUser returns the tweets of userID, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID int64) ([]domain.Tweet, error) {
	query, args, err := postgres.Builder.
		Select("id", "user_id", "tweet", "created_at").
		From("tweets").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "tweet", 0)
	}
	defer rows.Close()

	tweets := make([]domain.Tweet, 0)
	for rows.Next() {
		t, err := scanTweet(rows)
		if err != nil {
			return nil, postgres.MapError(err, "tweet", 0)
		}
		tweets = append(tweets, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "tweet", 0)
	}
	return tweets, nil
}

func scanTweet(row pgx.Row) (*domain.Tweet, error) {
	var t domain.Tweet
	if err := row.Scan(&t.ID, &t.UserID, &t.Text, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
