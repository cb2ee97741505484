package bot

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/bot/client"
	"stayhub/bot/session"
	"stayhub/models"
)

const (
	testUserID  int64 = 42
	testAdminID int64 = 99
)

// fakeAPI is an in-memory stand-in for the booking backend.
type fakeAPI struct {
	users       map[int64]*models.User
	registerErr error
	registered  []models.User

	bookErr error
	booked  []string

	uploadErr    error
	photoURLs    []string
	uploaded     [][]string
	createdRooms []models.RoomDraft

	feedbacks         []models.Feedback
	submittedFeedback []models.Feedback
	updatedFeedback   map[string]string
	deletedFeedback   []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		users:           make(map[int64]*models.User),
		updatedFeedback: make(map[string]string),
	}
}

func (f *fakeAPI) RegisterUser(_ context.Context, u models.User) (*models.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	f.registered = append(f.registered, u)
	f.users[u.UserID] = &u
	return &u, nil
}

func (f *fakeAPI) GetUser(_ context.Context, userID int64) (*models.User, error) {
	if u, ok := f.users[userID]; ok {
		return u, nil
	}
	return nil, client.ErrNotFound
}

func (f *fakeAPI) ListUsers(_ context.Context) ([]models.User, error) {
	var users []models.User
	for _, u := range f.users {
		users = append(users, *u)
	}
	return users, nil
}

func (f *fakeAPI) DeleteUser(_ context.Context, userID int64) error {
	if _, ok := f.users[userID]; !ok {
		return client.ErrNotFound
	}
	delete(f.users, userID)
	return nil
}

func (f *fakeAPI) ListRooms(_ context.Context) ([]models.Room, error) {
	return nil, nil
}

func (f *fakeAPI) CreateRoom(_ context.Context, draft models.RoomDraft) (*models.Room, error) {
	f.createdRooms = append(f.createdRooms, draft)
	return &models.Room{
		RoomNumber: draft.RoomNumber,
		Type:       draft.Type,
		Price:      draft.Price,
		Location:   draft.Location,
		Amenities:  draft.Amenities,
		Images:     draft.ImageURLs,
	}, nil
}

func (f *fakeAPI) UploadRoomPhotos(_ context.Context, paths []string) ([]string, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.uploaded = append(f.uploaded, paths)
	return f.photoURLs, nil
}

func (f *fakeAPI) CreateBooking(_ context.Context, _ int64, roomNumber string, _ *models.User) (*models.Room, error) {
	if f.bookErr != nil {
		return nil, f.bookErr
	}
	f.booked = append(f.booked, roomNumber)
	return &models.Room{RoomNumber: roomNumber, IsOccupied: true}, nil
}

func (f *fakeAPI) ListUserBookings(_ context.Context, _ int64) ([]models.Room, error) {
	return nil, nil
}

func (f *fakeAPI) ListBookingsByStatus(_ context.Context, _ string) ([]models.Room, error) {
	return nil, nil
}

func (f *fakeAPI) SubmitFeedback(_ context.Context, fb models.Feedback) error {
	f.submittedFeedback = append(f.submittedFeedback, fb)
	return nil
}

func (f *fakeAPI) ListFeedback(_ context.Context) ([]models.Feedback, error) {
	return f.feedbacks, nil
}

func (f *fakeAPI) UpdateFeedback(_ context.Context, id, body string) error {
	f.updatedFeedback[id] = body
	return nil
}

func (f *fakeAPI) DeleteFeedback(_ context.Context, id string) error {
	f.deletedFeedback = append(f.deletedFeedback, id)
	return nil
}

func newTestEngine(api client.API) (*Engine, session.Store) {
	store := session.NewMemoryStore()
	return NewEngine(api, store, []int64{testAdminID}), store
}

func currentStep(t *testing.T, store session.Store, userID int64) string {
	t.Helper()
	sess, err := store.Get(context.Background(), userID)
	require.NoError(t, err)
	return sess.Step
}

func TestRegistrationFlow(t *testing.T) {
	api := newFakeAPI()
	engine, store := newTestEngine(api)
	ctx := context.Background()
	from := Sender{ID: testUserID, FirstName: "Jordan"}

	replies := engine.HandleCommand(ctx, from, "register")
	require.Len(t, replies, 2)
	assert.Contains(t, replies[1].Text, "full name")

	steps := []struct {
		input      string
		nextPrompt string
	}{
		{"Jordan Lee", "age"},
		{"29", "phone"},
		{"+1 555-123-4567", "email"},
		{"jordan@example.com", "address"},
		{"12 Oak Street Springfield", "stay duration"},
	}
	for _, s := range steps {
		replies = engine.HandleText(ctx, from, s.input)
		require.Len(t, replies, 1)
		assert.Contains(t, replies[0].Text, s.nextPrompt)
	}

	replies = engine.HandleText(ctx, from, "6")
	require.Len(t, replies, 1)
	for _, echoed := range []string{
		"Jordan Lee", "29", "+1 555-123-4567",
		"jordan@example.com", "12 Oak Street Springfield", "6 months",
	} {
		assert.Contains(t, replies[0].Text, echoed)
	}

	require.Len(t, api.registered, 1)
	assert.Equal(t, testUserID, api.registered[0].UserID)
	assert.Equal(t, "jordan@example.com", api.registered[0].Email)
	assert.Empty(t, currentStep(t, store, testUserID))
}

func TestRegistrationRejectsOutOfRangeWithoutAdvancing(t *testing.T) {
	engine, store := newTestEngine(newFakeAPI())
	ctx := context.Background()
	from := Sender{ID: testUserID}

	engine.HandleCommand(ctx, from, "register")
	engine.HandleText(ctx, from, "Jordan Lee")

	replies := engine.HandleText(ctx, from, "17")
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "valid age")
	assert.Equal(t, StepRegisterAge, currentStep(t, store, testUserID))

	replies = engine.HandleText(ctx, from, "101")
	assert.Contains(t, replies[0].Text, "valid age")
	assert.Equal(t, StepRegisterAge, currentStep(t, store, testUserID))
}

func TestRegistrationConflictReply(t *testing.T) {
	api := newFakeAPI()
	api.registerErr = client.ErrConflict
	engine, store := newTestEngine(api)
	ctx := context.Background()
	from := Sender{ID: testUserID}

	engine.HandleCommand(ctx, from, "register")
	for _, input := range []string{
		"Jordan Lee", "29", "+1 555-123-4567",
		"jordan@example.com", "12 Oak Street Springfield",
	} {
		engine.HandleText(ctx, from, input)
	}
	replies := engine.HandleText(ctx, from, "6")
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "already")
	assert.Empty(t, currentStep(t, store, testUserID))
}

func TestBookingRequiresRegistration(t *testing.T) {
	engine, store := newTestEngine(newFakeAPI())
	ctx := context.Background()
	from := Sender{ID: testUserID}

	engine.HandleCommand(ctx, from, "book")
	replies := engine.HandleText(ctx, from, "101")
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "register first")
	assert.Empty(t, currentStep(t, store, testUserID))
}

func TestBookingErrorReplies(t *testing.T) {
	cases := []struct {
		name    string
		bookErr error
		want    string
	}{
		{"room missing", client.ErrNotFound, "Room not found"},
		{"already booked", client.ErrConflict, "already booked"},
		{"backend down", fmt.Errorf("boom"), "Error booking room"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := newFakeAPI()
			api.users[testUserID] = &models.User{UserID: testUserID, Name: "Jordan Lee"}
			api.bookErr = tc.bookErr
			engine, store := newTestEngine(api)
			ctx := context.Background()
			from := Sender{ID: testUserID}

			engine.HandleCommand(ctx, from, "book")
			replies := engine.HandleText(ctx, from, "101")
			require.Len(t, replies, 1)
			assert.Contains(t, replies[0].Text, tc.want)
			assert.Empty(t, currentStep(t, store, testUserID))
		})
	}
}

func TestBookingSuccess(t *testing.T) {
	api := newFakeAPI()
	api.users[testUserID] = &models.User{UserID: testUserID, Name: "Jordan Lee"}
	engine, store := newTestEngine(api)
	ctx := context.Background()
	from := Sender{ID: testUserID}

	engine.HandleCommand(ctx, from, "book")
	replies := engine.HandleText(ctx, from, " 101 ")
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "Room 101 booked successfully")
	assert.Equal(t, []string{"101"}, api.booked)
	assert.Empty(t, currentStep(t, store, testUserID))
}

func TestDoneWithoutPhotosRejectsRepeatedly(t *testing.T) {
	engine, store := newTestEngine(newFakeAPI())
	ctx := context.Background()
	admin := Sender{ID: testAdminID}

	engine.HandleCallback(ctx, admin, "add_room")
	assert.Equal(t, StepAddRoomPhotos, currentStep(t, store, testAdminID))

	for i := 0; i < 2; i++ {
		replies := engine.HandleCommand(ctx, admin, "done")
		require.Len(t, replies, 1)
		assert.Equal(t, "No photos uploaded. Please send at least one photo.", replies[0].Text)
		assert.Equal(t, StepAddRoomPhotos, currentStep(t, store, testAdminID))
	}
}

func TestDoneOutsidePhotoFlowIsNoOp(t *testing.T) {
	engine, _ := newTestEngine(newFakeAPI())
	replies := engine.HandleCommand(context.Background(), Sender{ID: testAdminID}, "done")
	assert.Empty(t, replies)
}

func TestRoomCreationFlow(t *testing.T) {
	api := newFakeAPI()
	api.photoURLs = []string{"/uploads/a.jpg", "/uploads/b.jpg"}
	engine, store := newTestEngine(api)
	ctx := context.Background()
	admin := Sender{ID: testAdminID}

	engine.HandleCallback(ctx, admin, "add_room")
	engine.HandlePhoto(ctx, admin, "/tmp/photo1.jpg")
	engine.HandlePhoto(ctx, admin, "/tmp/photo2.jpg")

	replies := engine.HandleCommand(ctx, admin, "done")
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "Photos uploaded successfully")
	require.Len(t, api.uploaded, 1)
	assert.Equal(t, []string{"/tmp/photo1.jpg", "/tmp/photo2.jpg"}, api.uploaded[0])
	assert.Equal(t, StepAddRoomNumber, currentStep(t, store, testAdminID))

	engine.HandleText(ctx, admin, "101")
	engine.HandleText(ctx, admin, "Single")
	engine.HandleText(ctx, admin, "500")
	engine.HandleText(ctx, admin, "A, 2, Near Gate, 12 Main St")
	replies = engine.HandleText(ctx, admin, "WiFi, AC")
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "Room added successfully")

	require.Len(t, api.createdRooms, 1)
	created := api.createdRooms[0]
	assert.Equal(t, "101", created.RoomNumber)
	assert.Equal(t, models.RoomTypeSingle, created.Type)
	assert.Equal(t, 500, created.Price)
	assert.Equal(t, []string{"WiFi", "AC"}, created.Amenities)
	assert.Equal(t, []string{"/uploads/a.jpg", "/uploads/b.jpg"}, created.ImageURLs)
	assert.Empty(t, currentStep(t, store, testAdminID))
}

func TestUploadFailureKeepsPhotoStep(t *testing.T) {
	api := newFakeAPI()
	api.uploadErr = fmt.Errorf("storage down")
	engine, store := newTestEngine(api)
	ctx := context.Background()
	admin := Sender{ID: testAdminID}

	engine.HandleCallback(ctx, admin, "add_room")
	engine.HandlePhoto(ctx, admin, "/tmp/photo1.jpg")

	replies := engine.HandleCommand(ctx, admin, "done")
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "Failed to upload photos")
	assert.Equal(t, StepAddRoomPhotos, currentStep(t, store, testAdminID))

	// The photos are still there for a retry.
	sess, err := store.Get(ctx, testAdminID)
	require.NoError(t, err)
	assert.Equal(t, []string{"/tmp/photo1.jpg"}, sess.RoomData.Images)
}

func TestRoomTypeRejectsFreeText(t *testing.T) {
	engine, store := newTestEngine(newFakeAPI())
	ctx := context.Background()
	admin := Sender{ID: testAdminID}

	sess, err := store.Get(ctx, testAdminID)
	require.NoError(t, err)
	sess.Step = StepAddRoomType
	require.NoError(t, store.Save(ctx, sess))

	replies := engine.HandleText(ctx, admin, "Penthouse")
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "valid room type")
	assert.Equal(t, StepAddRoomType, currentStep(t, store, testAdminID))
}

func TestFeedbackRatingBounds(t *testing.T) {
	engine, store := newTestEngine(newFakeAPI())
	ctx := context.Background()
	from := Sender{ID: testUserID}

	engine.HandleCommand(ctx, from, "feedback")

	replies := engine.HandleText(ctx, from, "7")
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "between 1 and 5")
	assert.Equal(t, StepFeedbackRating, currentStep(t, store, testUserID))

	replies = engine.HandleText(ctx, from, "4")
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "share your feedback")
	assert.Equal(t, StepFeedbackMessage, currentStep(t, store, testUserID))
}

func TestFeedbackSubmission(t *testing.T) {
	api := newFakeAPI()
	engine, store := newTestEngine(api)
	ctx := context.Background()
	from := Sender{ID: testUserID, FirstName: "Jordan", LastName: "Lee"}

	engine.HandleCommand(ctx, from, "feedback")
	engine.HandleText(ctx, from, "4")
	replies := engine.HandleText(ctx, from, "Great place, would stay again")
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "Thank you")

	require.Len(t, api.submittedFeedback, 1)
	fb := api.submittedFeedback[0]
	assert.Equal(t, testUserID, fb.UserID)
	assert.Equal(t, "Jordan Lee", fb.Name)
	assert.Equal(t, 4, fb.Rating)
	assert.Empty(t, currentStep(t, store, testUserID))
}

func TestFeedbackPaginationIsCircular(t *testing.T) {
	api := newFakeAPI()
	api.feedbacks = []models.Feedback{
		{ID: "f1", Name: "A", Rating: 5, Feedback: "first entry here"},
		{ID: "f2", Name: "B", Rating: 4, Feedback: "second entry here"},
		{ID: "f3", Name: "C", Rating: 3, Feedback: "third entry here"},
	}
	engine, store := newTestEngine(api)
	ctx := context.Background()
	admin := Sender{ID: testAdminID}

	replies := engine.HandleCommand(ctx, admin, "view_feedback")
	require.Len(t, replies, 1)
	first := replies[0].Text
	assert.Contains(t, first, "first entry here")

	// N next taps walk the full circle back to the first entry.
	for i := 0; i < len(api.feedbacks); i++ {
		replies = engine.HandleCallback(ctx, admin, "next_feedback")
		require.Len(t, replies, 1)
		assert.True(t, replies[0].Edit)
	}
	assert.Equal(t, first, replies[0].Text)

	// Previous from index 0 wraps to the last entry.
	replies = engine.HandleCallback(ctx, admin, "prev_feedback")
	assert.Contains(t, replies[0].Text, "third entry here")

	sess, err := store.Get(ctx, testAdminID)
	require.NoError(t, err)
	assert.Equal(t, 2, sess.FeedbackIndex)
}

func TestPaginationWithoutLoadedList(t *testing.T) {
	engine, _ := newTestEngine(newFakeAPI())
	replies := engine.HandleCallback(context.Background(), Sender{ID: testAdminID}, "next_feedback")
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "/view_feedback")
}

func TestUpdateFeedbackFlow(t *testing.T) {
	api := newFakeAPI()
	engine, store := newTestEngine(api)
	ctx := context.Background()
	admin := Sender{ID: testAdminID}

	replies := engine.HandleCallback(ctx, admin, "update_feedback_f2")
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "updated feedback")
	assert.Equal(t, StepUpdateFeedback, currentStep(t, store, testAdminID))

	replies = engine.HandleText(ctx, admin, "too short")
	assert.Contains(t, replies[0].Text, "at least 10 characters")

	replies = engine.HandleText(ctx, admin, "much better than before")
	assert.Contains(t, replies[0].Text, "updated successfully")
	assert.Equal(t, "much better than before", api.updatedFeedback["f2"])
	assert.Empty(t, currentStep(t, store, testAdminID))
}

func TestAdminSurfaceRejectsNonAdmins(t *testing.T) {
	engine, _ := newTestEngine(newFakeAPI())
	ctx := context.Background()
	from := Sender{ID: testUserID}

	replies := engine.HandleCommand(ctx, from, "admin")
	require.Len(t, replies, 1)
	assert.Equal(t, errUnauthorizedMsg, replies[0].Text)

	replies = engine.HandleCallback(ctx, from, "add_room")
	require.Len(t, replies, 1)
	assert.Equal(t, errUnauthorizedMsg, replies[0].Text)

	replies = engine.HandleCommand(ctx, from, "view_feedback")
	require.Len(t, replies, 1)
	assert.Equal(t, errUnauthorizedMsg, replies[0].Text)
}

// panicAPI blows up on user lookup to exercise the recovery path.
type panicAPI struct {
	*fakeAPI
}

func (p *panicAPI) GetUser(context.Context, int64) (*models.User, error) {
	panic("lookup exploded")
}

func TestPanicResetsSessionToIdle(t *testing.T) {
	engine, store := newTestEngine(&panicAPI{newFakeAPI()})
	ctx := context.Background()
	from := Sender{ID: testUserID}

	engine.HandleCommand(ctx, from, "book")
	replies := engine.HandleText(ctx, from, "101")
	require.Len(t, replies, 1)
	assert.Equal(t, errGenericMsg, replies[0].Text)
	assert.Empty(t, currentStep(t, store, testUserID))
}
