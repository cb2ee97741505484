package bot

import (
	"context"
	"errors"
	"strings"

	"stayhub/bot/client"
	"stayhub/models"
)

// Room creation runs photos-first: the add_room action opens the photo
// sub-flow, /done uploads the accumulated photos and hands their references
// to the detail steps, and the amenities step submits the complete room.

func (e *Engine) addRoomAction(sess *models.Session) []Reply {
	sess.Step = StepAddRoomPhotos
	sess.RoomData = models.RoomDraft{}
	return []Reply{text("Send room photos (up to 5), then type /done when finished.")}
}

// doneCommand closes the photo sub-flow. Outside it, /done is a no-op.
// With no photos accumulated it rejects and stays on the step, so repeating
// /done keeps yielding the same rejection. An upload failure also keeps the
// step so the admin can retry without losing the photos.
func (e *Engine) doneCommand(ctx context.Context, sess *models.Session) ([]Reply, error) {
	if sess.Step != StepAddRoomPhotos {
		return nil, nil
	}
	if len(sess.RoomData.Images) == 0 {
		return []Reply{text("No photos uploaded. Please send at least one photo.")}, nil
	}

	urls, err := e.api.UploadRoomPhotos(ctx, sess.RoomData.Images)
	if err != nil {
		return []Reply{text("❌ Failed to upload photos. Please try again.")}, nil
	}

	sess.RoomData.ImageURLs = urls
	sess.RoomData.Images = nil
	sess.Step = StepAddRoomNumber
	return []Reply{text("✅ Photos uploaded successfully! Now enter the room number:")}, nil
}

func (e *Engine) roomCreationStep(ctx context.Context, sess *models.Session, message string) ([]Reply, error) {
	switch sess.Step {
	case StepAddRoomNumber:
		roomNumber := strings.TrimSpace(message)
		if roomNumber == "" {
			return []Reply{text("Please enter a valid room number.")}, nil
		}
		sess.RoomData.RoomNumber = roomNumber
		sess.Step = StepAddRoomType
		return []Reply{{
			Text:     "Room type:",
			Keyboard: [][]string{{models.RoomTypeSingle, models.RoomTypeDouble, models.RoomTypeShared}},
		}}, nil

	case StepAddRoomType:
		if !models.ValidRoomType(message) {
			return []Reply{text("Please select a valid room type.")}, nil
		}
		sess.RoomData.Type = message
		sess.Step = StepAddRoomPrice
		return []Reply{text("Monthly price (numbers only):")}, nil

	case StepAddRoomPrice:
		price, ok := validPrice(message)
		if !ok {
			return []Reply{text("Please enter a valid positive number for price.")}, nil
		}
		sess.RoomData.Price = price
		sess.Step = StepAddRoomLocation
		return []Reply{text("Enter location details in format:\nBuilding, Floor, Landmark, Address")}, nil

	case StepAddRoomLocation:
		location, ok := parseLocation(message)
		if !ok {
			return []Reply{text("Please provide all location details in the correct format.")}, nil
		}
		sess.RoomData.Location = location
		sess.Step = StepAddRoomAmenities
		return []Reply{text("Enter amenities separated by commas (e.g., WiFi, AC, Geyser):")}, nil

	case StepAddRoomAmenities:
		amenities := parseAmenities(message)
		if len(amenities) == 0 {
			return []Reply{text("Please enter at least one amenity.")}, nil
		}
		sess.RoomData.Amenities = amenities
		return e.submitRoom(ctx, sess)
	}
	return nil, nil
}

func (e *Engine) submitRoom(ctx context.Context, sess *models.Session) ([]Reply, error) {
	draft := sess.RoomData
	sess.ResetFlow()

	room, err := e.api.CreateRoom(ctx, draft)
	if errors.Is(err, client.ErrConflict) {
		return []Reply{text("❌ A room with this number already exists.")}, nil
	}
	if err != nil {
		return []Reply{text("❌ Error adding room. Please try again later.")}, nil
	}

	return []Reply{text("✅ Room added successfully!\n\n" + formatRoomMessage(*room))}, nil
}
