package goCertify

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// certPrefixRule enforces the certificate code prefix shape: a path-like
// segment ending in "/" and not starting with one, e.g. "SMN/VII/". The
// prefix is concatenated with the running suffix number to form each
// participant's certificate code.
func certPrefixRule(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	if v == "" {
		return false
	}
	return strings.HasSuffix(v, "/") && !strings.HasPrefix(v, "/")
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// registration only fails for an empty tag name
	_ = v.RegisterValidation("certprefix", certPrefixRule)

	return v
}
