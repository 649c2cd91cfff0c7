package middleware

import "strings"

// RouteClass is the gate's three-way classification of a request path.
type RouteClass uint8

const (
	// RoutePublic requires nothing and redirects nowhere.
	RoutePublic RouteClass = iota
	// RouteProtected requires a resolved session.
	RouteProtected
	// RouteAuth is a sign-in style page that bounces authenticated users
	// back to the dashboard.
	RouteAuth
)

// String renders the class name for logs and tests.
func (c RouteClass) String() string {
	switch c {
	case RouteProtected:
		return "protected"
	case RouteAuth:
		return "auth"
	}
	return "public"
}

// DefaultProtectedPrefixes covers the authenticated application surface.
func DefaultProtectedPrefixes() []string {
	return []string{"/dashboard", "/admin", "/profile", "/events"}
}

// DefaultAuthPrefixes covers the credential entry pages. Verification
// links are deliberately absent: a user clicks them from email while
// already signed in, and bouncing to the dashboard would break the flow.
func DefaultAuthPrefixes() []string {
	return []string{
		"/auth/sign-in",
		"/auth/sign-up",
		"/auth/forgot-password",
		"/auth/reset-password",
	}
}

// Classifier maps request paths onto a [RouteClass]. Protected prefixes
// win over auth prefixes, and anything matching neither list is public.
type Classifier struct {
	protected []string
	auth      []string
}

// NewClassifier creates a Classifier over the given prefix lists. nil
// selects the default list; an explicit empty slice disables that class.
func NewClassifier(protected, auth []string) *Classifier {
	if protected == nil {
		protected = DefaultProtectedPrefixes()
	}
	if auth == nil {
		auth = DefaultAuthPrefixes()
	}
	return &Classifier{
		protected: protected,
		auth:      auth,
	}
}

// Classify reports the class of path.
func (c *Classifier) Classify(path string) RouteClass {
	if c == nil {
		return RoutePublic
	}
	if matchesAny(path, c.protected) {
		return RouteProtected
	}
	if matchesAny(path, c.auth) {
		return RouteAuth
	}
	return RoutePublic
}

// matchesAny is segment-aware: "/events" matches "/events" and
// "/events/abc" but not "/eventsfeed".
func matchesAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
