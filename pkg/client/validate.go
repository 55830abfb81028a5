package client

import (
	"errors"
	"regexp"
)

// Validation errors returned by mutation methods before any request is
// issued. The same rules run server-side; rejecting here saves the
// round trip and gives forms a field-level error to show.
var (
	ErrInvalidEmail    = errors.New("email is not a valid email address")
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
	ErrInvalidPrice    = errors.New("price must be non-negative")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func validDuration(minutes int) bool {
	return minutes > 0
}

func validPrice(price float64) bool {
	return price >= 0
}
