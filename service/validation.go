package service

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-z0-9_]{3,30}$`)
	walletPattern   = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	phonePattern    = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func validEmail(field, email string) error {
	if email == "" {
		return invalid(field, "is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return invalid(field, "must be a valid email address")
	}
	return nil
}

func validPassword(field, password string) error {
	if len(password) < 8 {
		return invalid(field, "must be at least 8 characters")
	}
	// bcrypt ignores everything past 72 bytes.
	if len(password) > 72 {
		return invalid(field, "must be at most 72 bytes")
	}
	return nil
}

func validLength(field, value string, min, max int) error {
	n := utf8.RuneCountInString(strings.TrimSpace(value))
	switch {
	case n < min && min == 1:
		return invalid(field, "is required")
	case n < min:
		return invalid(field, "must be at least %d characters", min)
	case max > 0 && n > max:
		return invalid(field, "must be at most %d characters", max)
	}
	return nil
}

func validURL(field, raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return invalid(field, "must be a valid URL")
	}
	return nil
}

func oneOf(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return invalid(field, "must be one of %s", strings.Join(allowed, ", "))
}

// firstError returns the first non-nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
