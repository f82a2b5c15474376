// Package policy enforces tier-based access rules on the actor of a request.
package policy

import (
	"context"
	"slices"

	"github.com/heartmarshall/twitter-backend/internal/domain"
	"github.com/heartmarshall/twitter-backend/pkg/ctxutil"
)

// RequireTier returns the actor when its tier is one of tiers.
// Any other tier, anonymous included, yields domain.ErrForbidden.
func RequireTier(ctx context.Context, tiers ...domain.Tier) (domain.Actor, error) {
	actor, _ := ctxutil.ActorFromCtx(ctx)
	if !slices.Contains(tiers, actor.Tier) {
		return actor, domain.ErrForbidden
	}
	return actor, nil
}

// RequireAtLeast returns the actor when its tier is min or above.
func RequireAtLeast(ctx context.Context, min domain.Tier) (domain.Actor, error) {
	actor, _ := ctxutil.ActorFromCtx(ctx)
	if !actor.Tier.AtLeast(min) {
		return actor, domain.ErrForbidden
	}
	return actor, nil
}

// CanViewUser reports whether an admin-or-above actor may act on target
// through the admin views: the target must be a different, non-privileged user.
func CanViewUser(actor domain.Actor, target *domain.User) bool {
	return actor.Tier.IsPrivileged() && target.ID != actor.UserID && !target.Tier().IsPrivileged()
}
