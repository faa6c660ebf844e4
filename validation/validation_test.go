package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"valid address", "a@b.com", true},
		{"bare at sign still passes", "@", true},
		{"missing at sign", "ab.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Email(tt.email)
			if tt.valid {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		message  string
	}{
		{"all classes present", "Abcdef1!", ""},
		{"missing uppercase", "abcdef1!", "Password must contain at least one uppercase letter."},
		{"missing lowercase", "ABCDEF1!", "Password must contain at least one lowercase letter."},
		{"missing digit", "Abcdefg!", "Password must contain at least one digit."},
		{"missing special character", "Abcdefg1", "Password must contain at least one special character."},
		{"too short", "Ab1!", "Password must be at least 6 characters long."},
		{"length counts characters not bytes", "Aa1!é", "Password must be at least 6 characters long."},
		{"multibyte letters count once each", "Ñbcde1!", ""},
		{"empty", "", "This field is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, Password(tt.password))
		})
	}
}

func TestPasswordAcceptsEverySpecialCharacter(t *testing.T) {
	for _, r := range SpecialCharacters {
		assert.Empty(t, Password("Abcdef1"+string(r)), "special character %q should satisfy the rule", r)
	}
}

func TestLoginPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		message  string
	}{
		{"no complexity rules at login", "abcdefgh", ""},
		{"minimum length", "abcdef", ""},
		{"too short", "abc", "Password must be at least 6 characters long."},
		{"too short despite byte length", "ééééé", "Password must be at least 6 characters long."},
		{"empty", "", "This field is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, LoginPassword(tt.password))
		})
	}
}

func TestReviewContent(t *testing.T) {
	assert.Empty(t, ReviewContent("Great food!!"))
	assert.Empty(t, ReviewContent("exactly 10"))
	assert.Empty(t, ReviewContent("éééééééééé"))
	assert.Equal(t, "Content must have at least 10 characters.", ReviewContent("too short"))
	assert.Equal(t, "Content must have at least 10 characters.", ReviewContent("ééééé"))
	assert.NotEmpty(t, ReviewContent(""))
}

func TestReviewRating(t *testing.T) {
	for _, rating := range []float64{0, 2.5, 4.5, 5} {
		assert.Empty(t, ReviewRating(rating), "rating %v should be valid", rating)
	}
	for _, rating := range []float64{-0.1, -1, 5.1, 6, 100} {
		assert.Equal(t, "Rating must be between 0 and 5.", ReviewRating(rating), "rating %v should be rejected", rating)
	}
}
