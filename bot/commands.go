package bot

import (
	"context"

	"stayhub/models"
)

const (
	registerBannerURL   = "https://i.ibb.co/Kj12wVhV/Screenshot-27.jpg"
	adminPanelBannerURL = "https://i.ibb.co/QFhYM45y/Screenshot-2025-02-14-015235.png"
)

func (e *Engine) startCommand(from Sender) []Reply {
	if e.isAdmin(from.ID) {
		return []Reply{text(
			"👋 Welcome to the Room Booking Bot!\n\n" +
				"This is the Admin Panel. What would you like to do?\n\n" +
				"Here are some commands you can use:\n" +
				"/search - Search for available rooms\n" +
				"/book - Book a room\n" +
				"/mybookings - View your bookings\n" +
				"/help - Get help\n\n" +
				"🔑 Admin Commands:\n" +
				"/admin - Access Admin Panel",
		)}
	}
	return []Reply{text(
		"👋 Welcome to the Room Booking Bot!\n\n" +
			"Here are some commands you can use:\n" +
			"/register - Register as a new user\n" +
			"/search - Search for available rooms\n" +
			"/book - Book a room\n" +
			"/mybookings - View your bookings\n" +
			"/help - Get help",
	)}
}

func (e *Engine) helpCommand(from Sender) []Reply {
	if e.isAdmin(from.ID) {
		return []Reply{text(
			"🤖 Bot Commands:\n\n" +
				"/start - Start the bot\n" +
				"/search - Search for available rooms\n" +
				"/book - Book a room\n" +
				"/mybookings - View your bookings\n" +
				"/help - Get help\n" +
				"/admin - Access Admin Panel",
		)}
	}
	return []Reply{text(
		"🤖 Bot Commands:\n\n" +
			"/start - Start the bot\n" +
			"/register - Register as a new user\n" +
			"/search - Search for available rooms\n" +
			"/book - Book a room\n" +
			"/mybookings - View your bookings\n" +
			"/help - Get help",
	)}
}

func (e *Engine) registerCommand(sess *models.Session) []Reply {
	sess.Step = StepRegisterName
	sess.UserData = models.UserDraft{}
	return []Reply{
		{Text: "📝 Register New User", Photos: []string{registerBannerURL}},
		text("Please enter your full name:"),
	}
}

func (e *Engine) searchCommand(ctx context.Context) ([]Reply, error) {
	rooms, err := e.api.ListRooms(ctx)
	if err != nil {
		return []Reply{text("❌ Error fetching rooms. Please try again later.")}, nil
	}
	if len(rooms) == 0 {
		return []Reply{text("No rooms available at the moment.")}, nil
	}
	return []Reply{text(formatRoomList("🏨 Available Rooms:", rooms))}, nil
}

func (e *Engine) bookCommand(sess *models.Session) []Reply {
	sess.Step = StepBookRoomNumber
	return []Reply{text("Enter the room number you want to book:")}
}

func (e *Engine) myBookingsCommand(ctx context.Context, from Sender) ([]Reply, error) {
	bookings, err := e.api.ListUserBookings(ctx, from.ID)
	if err != nil {
		return []Reply{text("❌ Error fetching your bookings. Please try again later.")}, nil
	}
	if len(bookings) == 0 {
		return []Reply{text("You have no bookings.")}, nil
	}
	return []Reply{text(formatRoomList("📅 Your Bookings:", bookings))}, nil
}

func (e *Engine) feedbackCommand(sess *models.Session) []Reply {
	sess.Step = StepFeedbackRating
	return []Reply{text("Please rate your experience (1 to 5):")}
}

func (e *Engine) adminCommand(from Sender) []Reply {
	if !e.isAdmin(from.ID) {
		return []Reply{text(errUnauthorizedMsg)}
	}
	return []Reply{{
		Text:   "🔑 Admin Panel",
		Photos: []string{adminPanelBannerURL},
		Inline: [][]Button{
			{{Text: "➕ Add Room", Data: "add_room"}},
			{{Text: "🏨 View Rooms", Data: "view_rooms"}},
			{{Text: "👥 Users", Data: "manage_users"}},
			{{Text: "📅 Show Bookings", Data: "show_bookings"}},
		},
	}}
}

func (e *Engine) sendPhotosCommand() []Reply {
	return []Reply{{
		Text:   "🔑 Admin Panel",
		Photos: []string{adminPanelBannerURL, registerBannerURL},
	}}
}
