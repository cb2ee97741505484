package bot

import (
	"fmt"
	"strings"

	"stayhub/models"
)

func formatRoomMessage(room models.Room) string {
	amenities := strings.Join(room.Amenities, ", ")
	if amenities == "" {
		amenities = "None"
	}
	return fmt.Sprintf(
		"Room Number: %s\nType: %s\nPrice: ₹%d\nLocation: %s, Floor %d\nAmenities: %s\n\n",
		room.RoomNumber, room.Type, room.Price,
		room.Location.Building, room.Location.Floor, amenities,
	)
}

func formatRoomList(header string, rooms []models.Room) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	for _, room := range rooms {
		b.WriteString(formatRoomMessage(room))
	}
	return b.String()
}

func formatUserDetails(u *models.User) string {
	return fmt.Sprintf(
		"Name: %s\nAge: %d\nPhone: %s\nEmail: %s\nAddress: %s\nStay Duration: %d months",
		u.Name, u.Age, u.Phone, u.Email, u.Address, u.StayDuration,
	)
}

func formatFeedbackMessage(fb models.Feedback) string {
	return fmt.Sprintf(
		"📝 Feedback:\n\nUser: %s\nRating: %d/5\nFeedback: %s\n\n",
		fb.Name, fb.Rating, fb.Feedback,
	)
}

func formatBookingLine(room models.Room) string {
	occupant := "N/A"
	if room.Occupant != nil {
		occupant = room.Occupant.Name
	}
	status := room.Status
	if status == "" {
		status = "N/A"
	}
	return fmt.Sprintf("Room Number: %s\nUser: %s\nStatus: %s\n\n", room.RoomNumber, occupant, status)
}
