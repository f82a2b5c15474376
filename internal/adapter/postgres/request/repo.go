// Package request implements persistence of moderation approval requests.
package request

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/twitter-backend/internal/adapter/postgres"
	"github.com/heartmarshall/twitter-backend/internal/domain"
)

var tables = map[domain.RequestKind]string{
	domain.RequestTweetCreate: "tweet_create_requests",
	domain.RequestTweetUpdate: "tweet_update_requests",
	domain.RequestTweetDelete: "tweet_delete_requests",
	domain.RequestUserUpdate:  "user_update_requests",
}

// stateColumns are selected first by every query so scanState can read them.
var stateColumns = []string{"r.id", "r.admin_id", "a.username", "r.responded", "r.action_granted", "r.created_at"}

// Repo provides approval request persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new request repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

// CreateTweetCreate stores a pending request to post a tweet for req.UserID.
func (r *Repo) CreateTweetCreate(ctx context.Context, req *domain.CreateTweetRequest) (int64, error) {
	return r.insert(ctx, domain.RequestTweetCreate,
		[]string{"admin_id", "user_id", "tweet"},
		req.AdminID, req.UserID, req.Tweet)
}

// CreateTweetUpdate stores a pending request to replace the text of req.TweetID.
func (r *Repo) CreateTweetUpdate(ctx context.Context, req *domain.UpdateTweetRequest) (int64, error) {
	return r.insert(ctx, domain.RequestTweetUpdate,
		[]string{"admin_id", "tweet_id", "new_tweet"},
		req.AdminID, req.TweetID, req.NewTweet)
}

// CreateTweetDelete stores a pending request to remove req.TweetID.
func (r *Repo) CreateTweetDelete(ctx context.Context, req *domain.DeleteTweetRequest) (int64, error) {
	return r.insert(ctx, domain.RequestTweetDelete,
		[]string{"admin_id", "tweet_id"},
		req.AdminID, req.TweetID)
}

// CreateUserUpdate stores a pending request to overwrite profile fields of req.UserID.
func (r *Repo) CreateUserUpdate(ctx context.Context, req *domain.UpdateUserRequest) (int64, error) {
	return r.insert(ctx, domain.RequestUserUpdate,
		[]string{"admin_id", "user_id", "new_first_name", "new_last_name", "new_bio"},
		req.AdminID, req.UserID, req.Changes.FirstName, req.Changes.LastName, req.Changes.Bio)
}

func (r *Repo) insert(ctx context.Context, kind domain.RequestKind, cols []string, values ...any) (int64, error) {
	query, args, err := postgres.Builder.
		Insert(tables[kind]).
		Columns(cols...).
		Values(values...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, kind.String(), 0)
	}
	return id, nil
}

// ---------------------------------------------------------------------------
// Get
// ---------------------------------------------------------------------------

// GetTweetCreate returns one tweet creation request.
func (r *Repo) GetTweetCreate(ctx context.Context, id int64) (*domain.CreateTweetRequest, error) {
	return getOne(ctx, r, domain.RequestTweetCreate, createSelect().Where(sq.Eq{"r.id": id}), id, scanCreate)
}

// GetTweetUpdate returns one tweet update request.
func (r *Repo) GetTweetUpdate(ctx context.Context, id int64) (*domain.UpdateTweetRequest, error) {
	return getOne(ctx, r, domain.RequestTweetUpdate, updateSelect().Where(sq.Eq{"r.id": id}), id, scanUpdate)
}

// GetTweetDelete returns one tweet deletion request.
func (r *Repo) GetTweetDelete(ctx context.Context, id int64) (*domain.DeleteTweetRequest, error) {
	return getOne(ctx, r, domain.RequestTweetDelete, deleteSelect().Where(sq.Eq{"r.id": id}), id, scanDelete)
}

// GetUserUpdate returns one profile update request.
func (r *Repo) GetUserUpdate(ctx context.Context, id int64) (*domain.UpdateUserRequest, error) {
	return getOne(ctx, r, domain.RequestUserUpdate, userSelect().Where(sq.Eq{"r.id": id}), id, scanUser)
}

// ---------------------------------------------------------------------------
// List pending
// ---------------------------------------------------------------------------

// ListPendingTweetCreates returns unresolved tweet creation requests, oldest first.
func (r *Repo) ListPendingTweetCreates(ctx context.Context) ([]domain.CreateTweetRequest, error) {
	return listPending(ctx, r, domain.RequestTweetCreate, createSelect(), scanCreate)
}

// ListPendingTweetUpdates returns unresolved tweet update requests, oldest first.
func (r *Repo) ListPendingTweetUpdates(ctx context.Context) ([]domain.UpdateTweetRequest, error) {
	return listPending(ctx, r, domain.RequestTweetUpdate, updateSelect(), scanUpdate)
}

// ListPendingTweetDeletes returns unresolved tweet deletion requests, oldest first.
func (r *Repo) ListPendingTweetDeletes(ctx context.Context) ([]domain.DeleteTweetRequest, error) {
	return listPending(ctx, r, domain.RequestTweetDelete, deleteSelect(), scanDelete)
}

// ListPendingUserUpdates returns unresolved profile update requests, oldest first.
func (r *Repo) ListPendingUserUpdates(ctx context.Context) ([]domain.UpdateUserRequest, error) {
	return listPending(ctx, r, domain.RequestUserUpdate, userSelect(), scanUser)
}

// ---------------------------------------------------------------------------
// Resolve
// ---------------------------------------------------------------------------

// MarkResolved records the decision on a pending request. The update only
// matches pending rows, so a request answered concurrently yields
// domain.ErrAlreadyResolved and a missing one domain.ErrNotFound.
func (r *Repo) MarkResolved(ctx context.Context, kind domain.RequestKind, id int64, granted bool) error {
	if !kind.IsValid() {
		return fmt.Errorf("unknown request kind %q", kind)
	}
	table := tables[kind]

	query, args, err := postgres.Builder.
		Update(table).
		Set("responded", true).
		Set("action_granted", granted).
		Where(sq.Eq{"id": id, "responded": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, kind.String(), id)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	existsQuery := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)", table)
	if err := q.QueryRow(ctx, existsQuery, id).Scan(&exists); err != nil {
		return postgres.MapError(err, kind.String(), id)
	}
	if !exists {
		return postgres.MapError(pgx.ErrNoRows, kind.String(), id)
	}
	return fmt.Errorf("%s %d: %w", kind, id, domain.ErrAlreadyResolved)
}

// ---------------------------------------------------------------------------
// Query builders and scanners
// ---------------------------------------------------------------------------

func baseSelect(kind domain.RequestKind, extra ...string) sq.SelectBuilder {
	return postgres.Builder.
		Select(append(append([]string{}, stateColumns...), extra...)...).
		From(tables[kind] + " r").
		Join("users a ON a.id = r.admin_id")
}

func createSelect() sq.SelectBuilder {
	return baseSelect(domain.RequestTweetCreate, "r.user_id", "u.username", "r.tweet").
		Join("users u ON u.id = r.user_id")
}

func updateSelect() sq.SelectBuilder {
	return baseSelect(domain.RequestTweetUpdate, "r.tweet_id", "r.new_tweet", "COALESCE(t.tweet, '')", "COALESCE(o.username, '')").
		LeftJoin("tweets t ON t.id = r.tweet_id").
		LeftJoin("users o ON o.id = t.user_id")
}

func deleteSelect() sq.SelectBuilder {
	return baseSelect(domain.RequestTweetDelete, "r.tweet_id", "COALESCE(t.tweet, '')", "COALESCE(o.username, '')").
		LeftJoin("tweets t ON t.id = r.tweet_id").
		LeftJoin("users o ON o.id = t.user_id")
}

func userSelect() sq.SelectBuilder {
	return baseSelect(domain.RequestUserUpdate,
		"r.user_id", "u.username",
		"r.new_first_name", "r.new_last_name", "r.new_bio",
		"u.first_name", "u.last_name", "u.bio",
	).Join("users u ON u.id = r.user_id")
}

func stateDest(s *domain.RequestState) []any {
	return []any{&s.ID, &s.AdminID, &s.AdminUsername, &s.Responded, &s.ActionGranted, &s.CreatedAt}
}

func scanCreate(row pgx.Row) (domain.CreateTweetRequest, error) {
	var req domain.CreateTweetRequest
	dest := append(stateDest(&req.RequestState), &req.UserID, &req.Username, &req.Tweet)
	err := row.Scan(dest...)
	return req, err
}

func scanUpdate(row pgx.Row) (domain.UpdateTweetRequest, error) {
	var req domain.UpdateTweetRequest
	dest := append(stateDest(&req.RequestState), &req.TweetID, &req.NewTweet, &req.OldTweet, &req.OwnerUsername)
	err := row.Scan(dest...)
	return req, err
}

func scanDelete(row pgx.Row) (domain.DeleteTweetRequest, error) {
	var req domain.DeleteTweetRequest
	dest := append(stateDest(&req.RequestState), &req.TweetID, &req.Tweet, &req.OwnerUsername)
	err := row.Scan(dest...)
	return req, err
}

func scanUser(row pgx.Row) (domain.UpdateUserRequest, error) {
	var req domain.UpdateUserRequest
	dest := append(stateDest(&req.RequestState),
		&req.UserID, &req.Username,
		&req.Changes.FirstName, &req.Changes.LastName, &req.Changes.Bio,
		&req.Current.FirstName, &req.Current.LastName, &req.Current.Bio,
	)
	err := row.Scan(dest...)
	return req, err
}

func getOne[T any](
	ctx context.Context,
	r *Repo,
	kind domain.RequestKind,
	b sq.SelectBuilder,
	id int64,
	scan func(pgx.Row) (T, error),
) (*T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	v, err := scan(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, kind.String(), id)
	}
	return &v, nil
}

func listPending[T any](
	ctx context.Context,
	r *Repo,
	kind domain.RequestKind,
	b sq.SelectBuilder,
	scan func(pgx.Row) (T, error),
) ([]T, error) {
	query, args, err := b.Where(sq.Eq{"r.responded": false}).OrderBy("r.created_at", "r.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, kind.String(), 0)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, postgres.MapError(err, kind.String(), 0)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, kind.String(), 0)
	}
	return out, nil
}
