package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"stayhub/bot/client"
	"stayhub/models"
)

// adminCallback routes inline-button taps from the admin panel. The caller is
// already known to be an admin.
func (e *Engine) adminCallback(ctx context.Context, sess *models.Session, data string) ([]Reply, error) {
	switch data {
	case "add_room":
		return e.addRoomAction(sess), nil
	case "view_rooms":
		return e.searchCommand(ctx)
	case "manage_users":
		return e.manageUsersAction(ctx)
	case "show_bookings":
		return e.showBookingsAction(), nil
	case "pending_bookings":
		return e.bookingsByStatusAction(ctx, models.BookingStatusPending, "📝 Pending Bookings:")
	case "completed_bookings":
		return e.bookingsByStatusAction(ctx, models.BookingStatusCompleted, "✅ Completed Bookings:")
	case "cancelled_bookings":
		return e.bookingsByStatusAction(ctx, models.BookingStatusCancelled, "❌ Cancelled Bookings:")
	case "view_user":
		sess.Step = StepViewUserDetails
		return []Reply{text("Enter user ID to view details:")}, nil
	case "remove_user":
		sess.Step = StepRemoveUser
		return []Reply{text("Enter user ID to remove:")}, nil
	case "next_feedback":
		return e.pageFeedback(sess, 1), nil
	case "prev_feedback":
		return e.pageFeedback(sess, -1), nil
	}
	if id, ok := strings.CutPrefix(data, "delete_feedback_"); ok {
		return e.deleteFeedbackAction(ctx, sess, id)
	}
	if id, ok := strings.CutPrefix(data, "update_feedback_"); ok {
		return e.updateFeedbackAction(sess, id), nil
	}
	return nil, nil
}

func (e *Engine) manageUsersAction(ctx context.Context) ([]Reply, error) {
	users, err := e.api.ListUsers(ctx)
	if err != nil {
		return []Reply{text("❌ Error fetching users. Please try again later.")}, nil
	}
	if len(users) == 0 {
		return []Reply{text("No registered users found.")}, nil
	}

	var b strings.Builder
	b.WriteString("👥 Registered Users:\n\n")
	for _, u := range users {
		fmt.Fprintf(&b, "ID: %d\nName: %s\nPhone: %s\nEmail: %s\nStay Duration: %d months\n\n",
			u.UserID, u.Name, u.Phone, u.Email, u.StayDuration)
	}

	return []Reply{
		text(b.String()),
		{
			Text: "Select an action:",
			Inline: [][]Button{
				{{Text: "👤 View User Details", Data: "view_user"}},
				{{Text: "❌ Remove User", Data: "remove_user"}},
			},
		},
	}, nil
}

func (e *Engine) showBookingsAction() []Reply {
	return []Reply{{
		Text: "📅 Bookings Menu",
		Inline: [][]Button{
			{{Text: "📝 Pending Bookings", Data: "pending_bookings"}},
			{{Text: "✅ Completed Bookings", Data: "completed_bookings"}},
			{{Text: "❌ Cancelled Bookings", Data: "cancelled_bookings"}},
		},
	}}
}

func (e *Engine) bookingsByStatusAction(ctx context.Context, status, header string) ([]Reply, error) {
	bookings, err := e.api.ListBookingsByStatus(ctx, status)
	if err != nil {
		return []Reply{text(fmt.Sprintf("❌ Error fetching %s bookings. Please try again later.", status))}, nil
	}
	if len(bookings) == 0 {
		return []Reply{text(fmt.Sprintf("No %s bookings found.", status))}, nil
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	for _, room := range bookings {
		b.WriteString(formatBookingLine(room))
	}
	return []Reply{text(b.String())}, nil
}

func (e *Engine) viewUserStep(ctx context.Context, sess *models.Session, message string) ([]Reply, error) {
	userID, err := strconv.ParseInt(strings.TrimSpace(message), 10, 64)
	if err != nil {
		return []Reply{text("Please enter a valid user ID.")}, nil
	}
	sess.ResetFlow()

	user, err := e.api.GetUser(ctx, userID)
	if errors.Is(err, client.ErrNotFound) {
		return []Reply{text("❌ User not found.")}, nil
	}
	if err != nil {
		return []Reply{text("❌ Error fetching user details. Please try again later.")}, nil
	}
	return []Reply{text("👤 User Details:\n\n" + formatUserDetails(user))}, nil
}

func (e *Engine) removeUserStep(ctx context.Context, sess *models.Session, message string) ([]Reply, error) {
	userID, err := strconv.ParseInt(strings.TrimSpace(message), 10, 64)
	if err != nil {
		return []Reply{text("Please enter a valid user ID.")}, nil
	}
	sess.ResetFlow()

	err = e.api.DeleteUser(ctx, userID)
	if errors.Is(err, client.ErrNotFound) {
		return []Reply{text("❌ User not found.")}, nil
	}
	if err != nil {
		return []Reply{text("❌ Error removing user. Please try again later.")}, nil
	}
	return []Reply{text(fmt.Sprintf("✅ User %d removed successfully.", userID))}, nil
}
