package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if strings.TrimSpace(c.Redis.Addr) == "" {
		return fmt.Errorf("redis.addr is required")
	}

	if err := c.AuditLog.validate(); err != nil {
		return fmt.Errorf("audit_log: %w", err)
	}

	return nil
}

func (a *AuditLogConfig) validate() error {
	if strings.TrimSpace(a.Path) == "" {
		return fmt.Errorf("path is required")
	}
	if a.QueueSize <= 0 {
		return fmt.Errorf("queue_size must be > 0 (got %d)", a.QueueSize)
	}
	if a.MaxSizeMB <= 0 {
		return fmt.Errorf("max_size_mb must be > 0 (got %d)", a.MaxSizeMB)
	}
	if a.MaxBackups < 0 || a.MaxAgeDays < 0 {
		return fmt.Errorf("max_backups and max_age_days must be >= 0")
	}
	return nil
}

// SplitList splits a comma-separated setting into trimmed, non-empty items.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
