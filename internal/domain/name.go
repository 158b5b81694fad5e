package domain

import "unicode/utf8"

const (
	nameMinLength = 3
	nameMaxLength = 64
)

// Name is a person's first and last name.
type Name struct {
	first string
	last  string
}

// NewName requires both parts to be between 3 and 64 characters.
func NewName(first, last string) (Name, error) {
	if !lengthBetween(first, nameMinLength, nameMaxLength) ||
		!lengthBetween(last, nameMinLength, nameMaxLength) {
		return Name{}, invalidName(first, last)
	}
	return Name{first: first, last: last}, nil
}

// First returns the first name.
func (n Name) First() string { return n.first }

// Last returns the last name.
func (n Name) Last() string { return n.last }

// String joins both parts with a space.
func (n Name) String() string {
	return n.first + " " + n.last
}

func lengthBetween(s string, minLen, maxLen int) bool {
	n := utf8.RuneCountInString(s)
	return n >= minLen && n <= maxLen
}
