package domain

// Tier is the access level of an actor. Tiers are ordered:
// anonymous < user < admin < super admin.
type Tier int

const (
	TierAnonymous Tier = iota
	TierUser
	TierAdmin
	TierSuperAdmin
)

// TierOf maps the stored privilege flags of u to a tier.
// The superuser flag takes precedence over the staff flag.
func TierOf(u *User) Tier {
	switch {
	case u == nil:
		return TierAnonymous
	case u.IsSuperuser:
		return TierSuperAdmin
	case u.IsStaff:
		return TierAdmin
	default:
		return TierUser
	}
}

// AtLeast reports whether t is min or above.
func (t Tier) AtLeast(min Tier) bool {
	return t >= min
}

// IsPrivileged reports whether t is admin or super admin.
func (t Tier) IsPrivileged() bool {
	return t >= TierAdmin
}

func (t Tier) String() string {
	switch t {
	case TierAnonymous:
		return "anonymous"
	case TierUser:
		return "user"
	case TierAdmin:
		return "admin"
	case TierSuperAdmin:
		return "super_admin"
	default:
		return "unknown"
	}
}
