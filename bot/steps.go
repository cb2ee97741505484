package bot

// Step tags. A session's Step field holds exactly one of these (or empty for
// idle) and alone decides how the next inbound message is interpreted.
const (
	StepRegisterName         = "register_name"
	StepRegisterAge          = "register_age"
	StepRegisterPhone        = "register_phone"
	StepRegisterEmail        = "register_email"
	StepRegisterAddress      = "register_address"
	StepRegisterStayDuration = "register_stayDuration"

	StepBookRoomNumber = "book_room_number"

	StepAddRoomPhotos    = "add_room_photos"
	StepAddRoomNumber    = "add_room_number"
	StepAddRoomType      = "add_room_type"
	StepAddRoomPrice     = "add_room_price"
	StepAddRoomLocation  = "add_room_location"
	StepAddRoomAmenities = "add_room_amenities"

	StepFeedbackRating  = "feedback_rating"
	StepFeedbackMessage = "feedback_message"
	StepUpdateFeedback  = "update_feedback"

	StepViewUserDetails = "view_user_details"
	StepRemoveUser      = "remove_user"
)
