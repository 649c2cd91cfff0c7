package session

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrSigningKeyRequired is returned by [NewJWTProvider] for an empty key.
var ErrSigningKeyRequired = errors.New("jwt signing key required")

type sessionClaims struct {
	Email          string `json:"email"`
	Role           string `json:"role"`
	EmailVerified  bool   `json:"email_verified"`
	Premium        bool   `json:"premium"`
	PremiumPackage string `json:"premium_package"`
	jwt.RegisteredClaims
}

// JWTProvider resolves identities from an HS256-signed session token minted
// by the identity provider. The raw compact token doubles as the bearer
// credential forwarded to the backend API.
type JWTProvider struct {
	key    []byte
	parser *jwt.Parser
}

// NewJWTProvider creates a JWTProvider verifying with the given shared key.
func NewJWTProvider(key []byte) (*JWTProvider, error) {
	if len(key) == 0 {
		return nil, ErrSigningKeyRequired
	}

	return &JWTProvider{
		key: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{"HS256"}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// Resolve verifies the token and maps its claims to a [Session]. Signature,
// expiry, and malformed-token failures are returned as errors; [Scope]
// collapses them into the uniform nil-session signal.
func (p *JWTProvider) Resolve(_ context.Context, credential string) (*Session, error) {
	claims := &sessionClaims{}

	token, err := p.parser.ParseWithClaims(credential, claims, func(*jwt.Token) (any, error) {
		return p.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}

	role := Role(claims.Role)
	if role != RoleUser && role != RoleSuperAdmin {
		role = RoleUser
	}

	pkg := PremiumPackage(claims.PremiumPackage)
	if pkg == "" {
		pkg = PackageFree
	}

	return &Session{
		UserID:         claims.Subject,
		Email:          claims.Email,
		Role:           role,
		EmailVerified:  claims.EmailVerified,
		Premium:        claims.Premium,
		PremiumPackage: pkg,
		Token:          credential,
	}, nil
}
