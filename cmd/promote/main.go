// Command promote sets the admin and super-admin flags of a user by username.
// It is used to bootstrap the first super-admin, who can then create further
// privileged accounts through the API.
//
// Usage:
//
//	promote --username=alice --role=superadmin
//
// Role is one of user, admin, superadmin. Reads the same configuration as the
// server (CONFIG_PATH or environment variables).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/twitter-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/twitter-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/twitter-backend/internal/app"
	"github.com/heartmarshall/twitter-backend/internal/config"
	"github.com/heartmarshall/twitter-backend/internal/domain"
)

func main() {
	username := flag.String("username", "", "username of the account to change")
	role := flag.String("role", "superadmin", "target role: user, admin or superadmin")
	flag.Parse()

	if *username == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --username=alice [--role=superadmin]")
		os.Exit(2)
	}

	staff, superuser, err := flagsFor(*role)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(*username, staff, superuser); err != nil {
		fmt.Fprintf(os.Stderr, "promote: %v\n", err)
		os.Exit(1)
	}
}

func flagsFor(role string) (staff, superuser bool, err error) {
	switch role {
	case "user":
		return false, false, nil
	case "admin":
		return true, false, nil
	case "superadmin":
		return true, true, nil
	default:
		return false, false, fmt.Errorf("unknown role %q", role)
	}
}

func run(username string, staff, superuser bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	u, err := userrepo.New(pool).SetPrivileges(ctx, username, staff, superuser)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no user named %q", username)
	}
	if err != nil {
		return fmt.Errorf("set privileges: %w", err)
	}

	logger.Info("privileges updated",
		slog.String("username", u.Username),
		slog.String("tier", u.Tier().String()),
	)
	return nil
}
