package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stayhub/bot/client"
	"stayhub/models"
)

// bookingStep handles the single booking step: a room number. The caller must
// be registered; the backend reports room-not-found, not-registered and
// already-booked as distinct statuses and the flow ends either way.
func (e *Engine) bookingStep(ctx context.Context, sess *models.Session, from Sender, message string) ([]Reply, error) {
	roomNumber := strings.TrimSpace(message)
	if roomNumber == "" {
		return []Reply{text("Please enter a valid room number.")}, nil
	}
	sess.ResetFlow()

	user, err := e.api.GetUser(ctx, from.ID)
	if errors.Is(err, client.ErrNotFound) {
		return []Reply{text("❌ Please register first using /register command before booking a room.")}, nil
	}
	if err != nil {
		return []Reply{text("❌ Error booking room. Please try again later.")}, nil
	}

	_, err = e.api.CreateBooking(ctx, from.ID, roomNumber, user)
	switch {
	case errors.Is(err, client.ErrNotFound):
		return []Reply{text("❌ Room not found or not available.")}, nil
	case errors.Is(err, client.ErrUnauthorized):
		return []Reply{text("❌ Please register first using /register command.")}, nil
	case errors.Is(err, client.ErrConflict):
		return []Reply{text("❌ Room is already booked.")}, nil
	case err != nil:
		return []Reply{text("❌ Error booking room. Please try again later.")}, nil
	}

	return []Reply{text(fmt.Sprintf(
		"✅ Room %s booked successfully!\n\nUse /mybookings to view your booking details.",
		roomNumber,
	))}, nil
}
