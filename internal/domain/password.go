package domain

import "regexp"

var (
	passwordAllowed = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]{6,12}$`)
	passwordLower   = regexp.MustCompile(`[a-z]`)
	passwordUpper   = regexp.MustCompile(`[A-Z]`)
	passwordDigit   = regexp.MustCompile(`\d`)
)

// Password is a plaintext password that satisfies the complexity rules.
// It is only held long enough to derive a hash and is never persisted.
type Password struct {
	plain string
}

// NewPassword checks that raw is 6-12 characters drawn from letters, digits
// and @$!%*?&, with at least one lowercase letter, one uppercase letter and
// one digit.
func NewPassword(raw string) (Password, error) {
	if !passwordAllowed.MatchString(raw) ||
		!passwordLower.MatchString(raw) ||
		!passwordUpper.MatchString(raw) ||
		!passwordDigit.MatchString(raw) {
		return Password{}, invalidPassword()
	}
	return Password{plain: raw}, nil
}

// String returns the plaintext.
func (p Password) String() string {
	return p.plain
}
