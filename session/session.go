package session

import "context"

// Role is the caller's authorization role as issued by the identity provider.
type Role string

const (
	// RoleUser is an ordinary authenticated account.
	RoleUser Role = "USER"
	// RoleSuperAdmin can manage other accounts.
	RoleSuperAdmin Role = "SUPERADMIN"
)

// PremiumPackage is the subscription tier attached to an account.
type PremiumPackage string

const (
	// PackageFree is an exported constant used by goCertify APIs.
	PackageFree PremiumPackage = "FREEPLAN"
	// PackageSilver is an exported constant used by goCertify APIs.
	PackageSilver PremiumPackage = "SILVER"
	// PackageGold is an exported constant used by goCertify APIs.
	PackageGold PremiumPackage = "GOLD"
	// PackagePlatinum is an exported constant used by goCertify APIs.
	PackagePlatinum PremiumPackage = "PLATINUM"
)

// Session is the resolved caller identity for the lifetime of one request.
// It is created once per request by a [Scope], never mutated afterwards, and
// never persisted by this layer — persistence belongs to the external
// identity provider.
type Session struct {
	UserID         string
	Email          string
	Role           Role
	EmailVerified  bool
	Premium        bool
	PremiumPackage PremiumPackage

	// Token is the bearer credential forwarded verbatim to the backend API.
	Token string
}

// Provider performs the real upstream identity lookup from an ambient
// request credential (a session cookie or Authorization header value).
// Implementations must treat "no valid identity" as (nil, nil); an error is
// reserved for lookups the caller might want to log, and is still mapped to
// a nil session by [Scope].
type Provider interface {
	Resolve(ctx context.Context, credential string) (*Session, error)
}

// ProviderFunc adapts a function to the [Provider] interface.
type ProviderFunc func(ctx context.Context, credential string) (*Session, error)

// Resolve calls f.
func (f ProviderFunc) Resolve(ctx context.Context, credential string) (*Session, error) {
	return f(ctx, credential)
}
