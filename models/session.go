package models

// UserDraft accumulates registration answers across steps.
type UserDraft struct {
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	StayDuration int    `json:"stayDuration"`
}

// RoomDraft accumulates room-creation answers across steps. Images holds
// local paths of downloaded photos; ImageURLs holds the persisted references
// returned by the photo upload call.
type RoomDraft struct {
	RoomNumber string       `json:"roomNumber"`
	Type       string       `json:"type"`
	Price      int          `json:"price"`
	Location   RoomLocation `json:"location"`
	Amenities  []string     `json:"amenities"`
	Images     []string     `json:"images"`
	ImageURLs  []string     `json:"imageUrls"`
}

// FeedbackDraft accumulates feedback answers across steps.
type FeedbackDraft struct {
	Rating int `json:"rating"`
}

// Session is the per-user conversation state. Step alone determines which
// draft fields are meaningful. An empty Step means the session is idle.
type Session struct {
	UserID        int64         `json:"userId"`
	Step          string        `json:"step"`
	UserData      UserDraft     `json:"userData"`
	RoomData      RoomDraft     `json:"roomData"`
	FeedbackData  FeedbackDraft `json:"feedbackData"`
	FeedbackID    string        `json:"feedbackId"`
	Feedbacks     []Feedback    `json:"feedbacks"`
	FeedbackIndex int           `json:"feedbackIndex"`
}

// ResetFlow clears the step and all in-progress draft data, returning the
// session to idle. Loaded feedback pages are kept so pagination keeps working.
func (s *Session) ResetFlow() {
	s.Step = ""
	s.UserData = UserDraft{}
	s.RoomData = RoomDraft{}
	s.FeedbackData = FeedbackDraft{}
	s.FeedbackID = ""
}
