package bot

import (
	"regexp"
	"strconv"
	"strings"

	"stayhub/models"
)

var (
	phoneRe = regexp.MustCompile(`^\+?[\d\s-]{10,}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func validName(s string) (string, bool) {
	name := strings.TrimSpace(s)
	return name, len(name) >= 3
}

func validAge(s string) (int, bool) {
	age, err := strconv.Atoi(strings.TrimSpace(s))
	return age, err == nil && age >= 18 && age <= 100
}

func validPhone(s string) (string, bool) {
	phone := strings.TrimSpace(s)
	return phone, phoneRe.MatchString(phone)
}

// validEmail lower-cases before matching so the stored address is canonical.
func validEmail(s string) (string, bool) {
	email := strings.ToLower(strings.TrimSpace(s))
	return email, emailRe.MatchString(email)
}

func validAddress(s string) (string, bool) {
	address := strings.TrimSpace(s)
	return address, len(address) >= 10
}

func validStayDuration(s string) (int, bool) {
	months, err := strconv.Atoi(strings.TrimSpace(s))
	return months, err == nil && months >= 1 && months <= 24
}

func validPrice(s string) (int, bool) {
	price, err := strconv.Atoi(strings.TrimSpace(s))
	return price, err == nil && price > 0
}

func validRating(s string) (int, bool) {
	rating, err := strconv.Atoi(strings.TrimSpace(s))
	return rating, err == nil && rating >= 1 && rating <= 5
}

func validFeedbackBody(s string) (string, bool) {
	body := strings.TrimSpace(s)
	return body, len(body) >= 10
}

// parseLocation splits "Building, Floor, Landmark, Address..." into a
// RoomLocation. At least four comma-separated fields are required; trailing
// fields are rejoined into the address. A non-numeric floor defaults to 1.
func parseLocation(s string) (models.RoomLocation, bool) {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 4 {
		return models.RoomLocation{}, false
	}
	floor, err := strconv.Atoi(parts[1])
	if err != nil {
		floor = 1
	}
	return models.RoomLocation{
		Building: parts[0],
		Floor:    floor,
		Landmark: parts[2],
		Address:  strings.Join(parts[3:], ", "),
	}, true
}

// parseAmenities splits on commas, trims each entry and drops empty ones.
func parseAmenities(s string) []string {
	var amenities []string
	for _, part := range strings.Split(s, ",") {
		if item := strings.TrimSpace(part); item != "" {
			amenities = append(amenities, item)
		}
	}
	return amenities
}
