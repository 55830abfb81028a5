package validate

import "regexp"

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email checks the address against a simple format regex.
func Email(email string) bool {
	return emailRegex.MatchString(email)
}

// Duration requires a positive number of minutes.
func Duration(minutes int) bool {
	return minutes > 0
}

// Price requires a non-negative amount.
func Price(price float64) bool {
	return price >= 0
}
