package bot

import (
	"context"
	"errors"
	"fmt"

	"stayhub/bot/client"
	"stayhub/models"
)

// registrationStep advances the linear registration flow by one answer. A
// failed validation re-prompts without moving the step. The final step resets
// the session to idle before calling the backend, so the flow cannot be
// resubmitted whatever the call outcome.
func (e *Engine) registrationStep(ctx context.Context, sess *models.Session, from Sender, message string) ([]Reply, error) {
	switch sess.Step {
	case StepRegisterName:
		name, ok := validName(message)
		if !ok {
			return []Reply{text("Please enter a valid name (at least 3 characters).")}, nil
		}
		sess.UserData.Name = name
		sess.Step = StepRegisterAge
		return []Reply{text("Please enter your age:")}, nil

	case StepRegisterAge:
		age, ok := validAge(message)
		if !ok {
			return []Reply{text("Please enter a valid age (18-100).")}, nil
		}
		sess.UserData.Age = age
		sess.Step = StepRegisterPhone
		return []Reply{text("Please enter your phone number:")}, nil

	case StepRegisterPhone:
		phone, ok := validPhone(message)
		if !ok {
			return []Reply{text("Please enter a valid phone number (at least 10 digits).")}, nil
		}
		sess.UserData.Phone = phone
		sess.Step = StepRegisterEmail
		return []Reply{text("Please enter your email address:")}, nil

	case StepRegisterEmail:
		email, ok := validEmail(message)
		if !ok {
			return []Reply{text("Please enter a valid email address.")}, nil
		}
		sess.UserData.Email = email
		sess.Step = StepRegisterAddress
		return []Reply{text("Please enter your current address:")}, nil

	case StepRegisterAddress:
		address, ok := validAddress(message)
		if !ok {
			return []Reply{text("Please enter a valid address (at least 10 characters).")}, nil
		}
		sess.UserData.Address = address
		sess.Step = StepRegisterStayDuration
		return []Reply{text("Please enter your intended stay duration (in months):")}, nil

	case StepRegisterStayDuration:
		months, ok := validStayDuration(message)
		if !ok {
			return []Reply{text("Please enter a valid duration (1-24 months).")}, nil
		}
		sess.UserData.StayDuration = months
		return e.submitRegistration(ctx, sess, from)
	}
	return nil, nil
}

func (e *Engine) submitRegistration(ctx context.Context, sess *models.Session, from Sender) ([]Reply, error) {
	draft := sess.UserData
	sess.ResetFlow()

	user, err := e.api.RegisterUser(ctx, models.User{
		UserID:       from.ID,
		Name:         draft.Name,
		Age:          draft.Age,
		Phone:        draft.Phone,
		Email:        draft.Email,
		Address:      draft.Address,
		StayDuration: draft.StayDuration,
	})
	if errors.Is(err, client.ErrConflict) {
		return []Reply{text("❌ You are already registered, or this email is already in use.")}, nil
	}
	if err != nil {
		return []Reply{text("❌ Registration failed. Please try again later.")}, nil
	}

	return []Reply{text(fmt.Sprintf(
		"✅ Registration successful!\n\n%s\n\nYou can now use /book to book a room!",
		formatUserDetails(user),
	))}, nil
}
