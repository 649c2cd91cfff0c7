package middleware

import (
	"net/http"

	goCertify "github.com/MrEthical07/goCertify"
)

// GateConfig carries the two redirect targets of the route gate.
type GateConfig struct {
	// SignInPath receives anonymous visitors of protected routes.
	SignInPath string

	// DashboardPath receives authenticated visitors of auth routes.
	DashboardPath string
}

func (c GateConfig) withDefaults() GateConfig {
	if c.SignInPath == "" {
		c.SignInPath = "/auth/sign-in"
	}
	if c.DashboardPath == "" {
		c.DashboardPath = "/dashboard"
	}
	return c
}

// Gate enforces the route contract: protected routes redirect anonymous
// requests to the sign-in page, auth routes redirect authenticated
// requests to the dashboard, public routes always pass. It must be
// mounted inside [WithSession] — the session scope comes from the
// request context.
func Gate(classifier *Classifier, cfg GateConfig) func(http.Handler) http.Handler {
	if classifier == nil {
		classifier = NewClassifier(nil, nil)
	}
	cfg = cfg.withDefaults()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch classifier.Classify(r.URL.Path) {
			case RouteProtected:
				if !authenticated(r) {
					http.Redirect(w, r, cfg.SignInPath, http.StatusFound)
					return
				}
			case RouteAuth:
				if authenticated(r) {
					http.Redirect(w, r, cfg.DashboardPath, http.StatusFound)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func authenticated(r *http.Request) bool {
	scope, ok := goCertify.SessionScopeFromContext(r.Context())
	if !ok {
		return false
	}
	return scope.Get(r.Context()) != nil
}
