package domain

import "regexp"

// RE2 \s omits \v and non-ASCII spaces; \p{Z} and U+FEFF cover the rest.
var emailPattern = regexp.MustCompile(`^[^\s\p{Z}\v\x{FEFF}@]+@[^\s\p{Z}\v\x{FEFF}@]+\.[^\s\p{Z}\v\x{FEFF}@]+$`)

// Email is a syntactically valid email address.
type Email struct {
	address string
}

// NewEmail validates raw against the local@domain.tld shape.
func NewEmail(raw string) (Email, error) {
	if !emailPattern.MatchString(raw) {
		return Email{}, invalidEmail(raw)
	}
	return Email{address: raw}, nil
}

func (e Email) String() string {
	return e.address
}
