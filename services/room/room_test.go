package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"stayhub/models"
)

// fakeRoomRepo mimics the conditional-write semantics of the Mongo repo: Book
// only matches a vacant room, Release only an occupied one, and both report
// mongo.ErrNoDocuments when nothing matched.
type fakeRoomRepo struct {
	rooms map[string]*models.Room
}

func newFakeRoomRepo(rooms ...*models.Room) *fakeRoomRepo {
	repo := &fakeRoomRepo{rooms: make(map[string]*models.Room)}
	for _, r := range rooms {
		repo.rooms[r.RoomNumber] = r
	}
	return repo
}

func (f *fakeRoomRepo) Create(room *models.Room) error {
	f.rooms[room.RoomNumber] = room
	return nil
}

func (f *fakeRoomRepo) GetByNumber(roomNumber string) (*models.Room, error) {
	if r, ok := f.rooms[roomNumber]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeRoomRepo) GetAll() ([]models.Room, error) {
	var all []models.Room
	for _, r := range f.rooms {
		all = append(all, *r)
	}
	return all, nil
}

func (f *fakeRoomRepo) GetByOccupant(userID int64) ([]models.Room, error) {
	var out []models.Room
	for _, r := range f.rooms {
		if r.IsOccupied && r.OccupantID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) GetOccupied() ([]models.Room, error) {
	var out []models.Room
	for _, r := range f.rooms {
		if r.IsOccupied {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) GetByStatus(status string) ([]models.Room, error) {
	var out []models.Room
	for _, r := range f.rooms {
		if r.Status == status {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) Book(roomNumber string, occupantID int64) (*models.Room, error) {
	r, ok := f.rooms[roomNumber]
	if !ok || r.IsOccupied {
		return nil, mongo.ErrNoDocuments
	}
	r.IsOccupied = true
	r.OccupantID = occupantID
	copied := *r
	return &copied, nil
}

func (f *fakeRoomRepo) Release(roomNumber string) (*models.Room, error) {
	r, ok := f.rooms[roomNumber]
	if !ok || !r.IsOccupied {
		return nil, mongo.ErrNoDocuments
	}
	r.IsOccupied = false
	r.OccupantID = 0
	copied := *r
	return &copied, nil
}

func TestBookRoomOnlyFirstCallerWins(t *testing.T) {
	svc := &DefaultRoomService{Repo: newFakeRoomRepo(&models.Room{RoomNumber: "101"})}

	booked, err := svc.BookRoom("101", 42)
	require.NoError(t, err)
	assert.True(t, booked.IsOccupied)
	assert.Equal(t, int64(42), booked.OccupantID)

	_, err = svc.BookRoom("101", 43)
	assert.ErrorIs(t, err, ErrRoomOccupied)
}

func TestBookRoomMissingRoom(t *testing.T) {
	svc := &DefaultRoomService{Repo: newFakeRoomRepo()}
	_, err := svc.BookRoom("999", 42)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestReleaseRoom(t *testing.T) {
	repo := newFakeRoomRepo(&models.Room{RoomNumber: "101", IsOccupied: true, OccupantID: 42})
	svc := &DefaultRoomService{Repo: repo}

	released, err := svc.ReleaseRoom("101")
	require.NoError(t, err)
	assert.False(t, released.IsOccupied)

	// A second checkout finds the room already vacant.
	_, err = svc.ReleaseRoom("101")
	assert.ErrorIs(t, err, ErrRoomVacant)

	_, err = svc.ReleaseRoom("999")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestBookThenReleaseThenRebook(t *testing.T) {
	svc := &DefaultRoomService{Repo: newFakeRoomRepo(&models.Room{RoomNumber: "101"})}

	_, err := svc.BookRoom("101", 42)
	require.NoError(t, err)
	_, err = svc.ReleaseRoom("101")
	require.NoError(t, err)

	booked, err := svc.BookRoom("101", 43)
	require.NoError(t, err)
	assert.Equal(t, int64(43), booked.OccupantID)
}

func TestCreateRoomRejectsDuplicateNumber(t *testing.T) {
	svc := &DefaultRoomService{Repo: newFakeRoomRepo(&models.Room{RoomNumber: "101"})}
	_, err := svc.CreateRoom(models.Room{RoomNumber: "101", Type: models.RoomTypeSingle, Price: 500})
	assert.ErrorIs(t, err, ErrRoomNumberTaken)
}

func TestListByStatusValidation(t *testing.T) {
	repo := newFakeRoomRepo(&models.Room{RoomNumber: "101", Status: models.BookingStatusPending})
	svc := &DefaultRoomService{Repo: repo}

	rooms, err := svc.ListByStatus(models.BookingStatusPending)
	require.NoError(t, err)
	assert.Len(t, rooms, 1)

	_, err = svc.ListByStatus("archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
