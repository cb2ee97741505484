package bot

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"stayhub/bot/client"
	"stayhub/bot/session"
	"stayhub/models"
	"stayhub/utils"
)

const (
	errGenericMsg      = "❌ An error occurred. Please try again."
	errUnauthorizedMsg = "❌ Unauthorized"
)

// Sender identifies the end-user behind an inbound message.
type Sender struct {
	ID        int64
	FirstName string
	LastName  string
}

// Engine drives the step-based conversation flows. It is transport-agnostic:
// the delivery adapter feeds it commands, texts, callbacks and photo paths,
// and renders the replies it returns.
type Engine struct {
	api      client.API
	sessions session.Store
	admins   map[int64]bool
}

// NewEngine creates an Engine. adminIDs are the chat identifiers allowed to
// use the admin surface.
func NewEngine(api client.API, sessions session.Store, adminIDs []int64) *Engine {
	admins := make(map[int64]bool, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = true
	}
	return &Engine{api: api, sessions: sessions, admins: admins}
}

func (e *Engine) isAdmin(userID int64) bool {
	return e.admins[userID]
}

type stepHandler func(ctx context.Context, sess *models.Session) ([]Reply, error)

// run loads the sender's session, dispatches fn and saves the session back.
// Any error or panic resets the session to idle and yields a generic failure
// reply, so a session can never stay wedged on a broken step.
func (e *Engine) run(ctx context.Context, userID int64, fn stepHandler) []Reply {
	logger := utils.GetLogger()

	sess, err := e.sessions.Get(ctx, userID)
	if err != nil {
		logger.Error("Failed to load session", zap.Int64("userId", userID), zap.Error(err))
		return []Reply{text(errGenericMsg)}
	}

	replies, err := dispatch(ctx, sess, fn)
	if err != nil {
		logger.Error("Conversation step failed",
			zap.Int64("userId", userID), zap.String("step", sess.Step), zap.Error(err))
		sess.ResetFlow()
		replies = []Reply{text(errGenericMsg)}
	}

	if err := e.sessions.Save(ctx, sess); err != nil {
		logger.Error("Failed to save session", zap.Int64("userId", userID), zap.Error(err))
	}
	return replies
}

func dispatch(ctx context.Context, sess *models.Session, fn stepHandler) (replies []Reply, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("step handler panic: %v", r)
		}
	}()
	return fn(ctx, sess)
}

// HandleCommand processes a slash command (name without the leading slash).
func (e *Engine) HandleCommand(ctx context.Context, from Sender, command string) []Reply {
	return e.run(ctx, from.ID, func(ctx context.Context, sess *models.Session) ([]Reply, error) {
		switch command {
		case "start":
			return e.startCommand(from), nil
		case "help":
			return e.helpCommand(from), nil
		case "register":
			return e.registerCommand(sess), nil
		case "search":
			return e.searchCommand(ctx)
		case "book":
			return e.bookCommand(sess), nil
		case "mybookings":
			return e.myBookingsCommand(ctx, from)
		case "feedback":
			return e.feedbackCommand(sess), nil
		case "admin":
			return e.adminCommand(from), nil
		case "done":
			if !e.isAdmin(from.ID) {
				return []Reply{text(errUnauthorizedMsg)}, nil
			}
			return e.doneCommand(ctx, sess)
		case "sendphotos":
			if !e.isAdmin(from.ID) {
				return []Reply{text(errUnauthorizedMsg)}, nil
			}
			return e.sendPhotosCommand(), nil
		case "view_feedback":
			if !e.isAdmin(from.ID) {
				return []Reply{text(errUnauthorizedMsg)}, nil
			}
			return e.viewFeedbackCommand(ctx, sess)
		}
		return nil, nil
	})
}

// HandleText processes a plain text message against the session's current step.
func (e *Engine) HandleText(ctx context.Context, from Sender, message string) []Reply {
	return e.run(ctx, from.ID, func(ctx context.Context, sess *models.Session) ([]Reply, error) {
		switch sess.Step {
		case StepRegisterName, StepRegisterAge, StepRegisterPhone,
			StepRegisterEmail, StepRegisterAddress, StepRegisterStayDuration:
			return e.registrationStep(ctx, sess, from, message)
		case StepBookRoomNumber:
			return e.bookingStep(ctx, sess, from, message)
		case StepAddRoomNumber, StepAddRoomType, StepAddRoomPrice,
			StepAddRoomLocation, StepAddRoomAmenities:
			return e.roomCreationStep(ctx, sess, message)
		case StepFeedbackRating, StepFeedbackMessage:
			return e.feedbackStep(ctx, sess, from, message)
		case StepUpdateFeedback:
			return e.updateFeedbackStep(ctx, sess, message)
		case StepViewUserDetails:
			return e.viewUserStep(ctx, sess, message)
		case StepRemoveUser:
			return e.removeUserStep(ctx, sess, message)
		}
		return nil, nil
	})
}

// HandleCallback processes an inline-button tap by its callback payload.
func (e *Engine) HandleCallback(ctx context.Context, from Sender, data string) []Reply {
	if !e.isAdmin(from.ID) {
		return []Reply{text(errUnauthorizedMsg)}
	}
	return e.run(ctx, from.ID, func(ctx context.Context, sess *models.Session) ([]Reply, error) {
		return e.adminCallback(ctx, sess, data)
	})
}

// HandlePhoto processes a photo the adapter has already downloaded to
// localPath. Photos are only meaningful inside the room photo sub-flow.
func (e *Engine) HandlePhoto(ctx context.Context, from Sender, localPath string) []Reply {
	if !e.isAdmin(from.ID) {
		return []Reply{text("❌ Access denied! Admins only.")}
	}
	return e.run(ctx, from.ID, func(ctx context.Context, sess *models.Session) ([]Reply, error) {
		if sess.Step != StepAddRoomPhotos {
			return []Reply{text("Please follow the steps correctly. Enter room details first.")}, nil
		}
		sess.RoomData.Images = append(sess.RoomData.Images, localPath)
		return []Reply{text("📸 Photo added! Send more or type /done when finished.")}, nil
	})
}
