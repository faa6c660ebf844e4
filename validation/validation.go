package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SpecialCharacters is the fixed punctuation set a password must draw at
// least one character from.
const SpecialCharacters = `!@#$%^&*(),.?":{}|<>`

// Validators return an empty string when the value is acceptable, otherwise
// the message to surface in the field->message error map. They are invoked
// explicitly at the API boundary before any mutation is applied.

func Email(email string) string {
	if email == "" {
		return "This field is required."
	}
	if !strings.Contains(email, "@") {
		return "Provided email is not valid."
	}
	return ""
}

func Password(password string) string {
	if msg := LoginPassword(password); msg != "" {
		return msg
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(SpecialCharacters, r):
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return "Password must contain at least one uppercase letter."
	case !hasLower:
		return "Password must contain at least one lowercase letter."
	case !hasDigit:
		return "Password must contain at least one digit."
	case !hasSpecial:
		return "Password must contain at least one special character."
	}
	return ""
}

// LoginPassword checks only the shape of a password presented at login.
// The complexity rules in Password apply when an account is created, not
// when it is used: a stored password predates any rule change, and a wrong
// guess must fail as a credential mismatch, not as malformed input.
func LoginPassword(password string) string {
	if password == "" {
		return "This field is required."
	}
	if utf8.RuneCountInString(password) < 6 {
		return "Password must be at least 6 characters long."
	}
	return ""
}

func ReviewContent(content string) string {
	if utf8.RuneCountInString(content) < 10 {
		return "Content must have at least 10 characters."
	}
	return ""
}

func ReviewRating(rating float64) string {
	if rating < 0 || rating > 5 {
		return "Rating must be between 0 and 5."
	}
	return ""
}
