package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/twitter-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a plain user with a unique username and email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, false, false)
}

// SeedAdmin inserts a staff user.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, true, false)
}

// SeedSuperAdmin inserts a superuser.
func SeedSuperAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, true, true)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, staff, superuser bool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	u := domain.User{
		Username:     "user-" + suffix,
		Email:        "user-" + suffix + "@example.com",
		PasswordHash: "x",
		FirstName:    "First " + suffix,
		LastName:     "Last " + suffix,
		IsStaff:      staff,
		IsSuperuser:  superuser,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (username, email, password_hash, first_name, last_name, is_staff, is_superuser)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.IsStaff, u.IsSuperuser,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return u
}

// SeedTweet inserts a tweet owned by userID.
func SeedTweet(t *testing.T, pool *pgxpool.Pool, userID int64, text string) domain.Tweet {
	t.Helper()

	tw := domain.Tweet{UserID: userID, Text: text}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO tweets (user_id, tweet) VALUES ($1, $2) RETURNING id, created_at`,
		userID, text,
	).Scan(&tw.ID, &tw.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTweet insert: %v", err)
	}

	return tw
}
