package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stayhub/models"
)

func TestValidName(t *testing.T) {
	name, ok := validName("  Jordan Lee  ")
	assert.True(t, ok)
	assert.Equal(t, "Jordan Lee", name)

	_, ok = validName("Jo")
	assert.False(t, ok)
	_, ok = validName("   ")
	assert.False(t, ok)
}

func TestValidAge(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"18", true},
		{"100", true},
		{"29", true},
		{"17", false},
		{"101", false},
		{"0", false},
		{"abc", false},
	}
	for _, tc := range cases {
		_, ok := validAge(tc.input)
		assert.Equal(t, tc.want, ok, "age %q", tc.input)
	}
}

func TestValidPhone(t *testing.T) {
	_, ok := validPhone("+1 555-123-4567")
	assert.True(t, ok)
	_, ok = validPhone("5551234567")
	assert.True(t, ok)
	_, ok = validPhone("12345")
	assert.False(t, ok)
	_, ok = validPhone("call me maybe")
	assert.False(t, ok)
}

func TestValidEmailLowercases(t *testing.T) {
	email, ok := validEmail("  Jordan@Example.COM ")
	assert.True(t, ok)
	assert.Equal(t, "jordan@example.com", email)

	_, ok = validEmail("not-an-email")
	assert.False(t, ok)
	_, ok = validEmail("a b@example.com")
	assert.False(t, ok)
	_, ok = validEmail("jordan@example")
	assert.False(t, ok)
}

func TestValidStayDuration(t *testing.T) {
	for input, want := range map[string]bool{
		"1":  true,
		"24": true,
		"0":  false,
		"25": false,
		"x":  false,
	} {
		_, ok := validStayDuration(input)
		assert.Equal(t, want, ok, "duration %q", input)
	}
}

func TestValidRating(t *testing.T) {
	for input, want := range map[string]bool{
		"1": true,
		"5": true,
		"4": true,
		"0": false,
		"7": false,
		"x": false,
	} {
		_, ok := validRating(input)
		assert.Equal(t, want, ok, "rating %q", input)
	}
}

func TestParseLocation(t *testing.T) {
	loc, ok := parseLocation("A, 2, Near Gate, 12 Main St")
	assert.True(t, ok)
	assert.Equal(t, models.RoomLocation{
		Building: "A",
		Floor:    2,
		Landmark: "Near Gate",
		Address:  "12 Main St",
	}, loc)

	// Trailing fields are rejoined into the address.
	loc, ok = parseLocation("B, 3, Park, 4 Side Rd, Uptown, 560001")
	assert.True(t, ok)
	assert.Equal(t, "4 Side Rd, Uptown, 560001", loc.Address)

	// A non-numeric floor defaults to 1.
	loc, ok = parseLocation("C, ground, Mall, 9 High St")
	assert.True(t, ok)
	assert.Equal(t, 1, loc.Floor)

	_, ok = parseLocation("A, 2, Near Gate")
	assert.False(t, ok)
}

func TestParseAmenities(t *testing.T) {
	assert.Equal(t, []string{"WiFi", "AC", "Geyser"}, parseAmenities("WiFi, AC , Geyser"))
	assert.Equal(t, []string{"WiFi"}, parseAmenities("WiFi, , ,"))
	assert.Nil(t, parseAmenities(" , ,"))
}
