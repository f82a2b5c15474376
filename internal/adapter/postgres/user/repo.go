// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/twitter-backend/internal/adapter/postgres"
	"github.com/heartmarshall/twitter-backend/internal/domain"
)

var columns = []string{
	"id", "username", "email", "password_hash", "first_name", "last_name",
	"bio", "is_staff", "is_superuser", "created_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"username": username}, 0)
}

func (r *Repo) getOne(ctx context.Context, where sq.Sqlizer, id int64) (*domain.User, error) {
	query, args, err := postgres.Builder.Select(columns...).From("users").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// Create inserts a new user and returns the persisted domain.User.
// A duplicate username or email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Insert("users").
		Columns("username", "email", "password_hash", "first_name", "last_name", "bio", "is_staff", "is_superuser").
		Values(u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Bio, u.IsStaff, u.IsSuperuser).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	created, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}
	return created, nil
}

// UpdateProfile overwrites the non-empty fields of changes and returns the updated user.
func (r *Repo) UpdateProfile(ctx context.Context, id int64, changes domain.ProfileChanges) (*domain.User, error) {
	set := map[string]any{}
	if changes.FirstName != "" {
		set["first_name"] = changes.FirstName
	}
	if changes.LastName != "" {
		set["last_name"] = changes.LastName
	}
	if changes.Bio != "" {
		set["bio"] = changes.Bio
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	query, args, err := postgres.Builder.
		Update("users").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// ListNonPrivileged returns every user that is neither staff nor superuser, ordered by id.
func (r *Repo) ListNonPrivileged(ctx context.Context) ([]domain.User, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From("users").
		Where(sq.Eq{"is_staff": false, "is_superuser": false}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, postgres.MapError(err, "user", 0)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}
	return users, nil
}

// SetPrivileges sets the staff and superuser flags of the named user.
func (r *Repo) SetPrivileges(ctx context.Context, username string, staff, superuser bool) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Update("users").
		Set("is_staff", staff).
		Set("is_superuser", superuser).
		Where(sq.Eq{"username": username}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.Bio, &u.IsStaff, &u.IsSuperuser, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
