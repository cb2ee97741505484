package room

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	roomRepo "stayhub/database/repository/room"
	"stayhub/models"
	"stayhub/utils"
)

const (
	roomsCacheKey = "cache:rooms"
	roomsCacheTTL = 30 * time.Second
)

// DefaultRoomService is the production implementation of RoomService. When
// Cache is set, full room listings are cached briefly and invalidated on any
// write.
type DefaultRoomService struct {
	Repo  roomRepo.RoomRepository
	Cache *redis.Client
}

// CreateRoom persists a new room. The room number is unique.
func (s *DefaultRoomService) CreateRoom(r models.Room) (*models.Room, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByNumber(r.RoomNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing room: %w", err)
	}
	if existing != nil {
		return nil, ErrRoomNumberTaken
	}

	if err := s.Repo.Create(&r); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrRoomNumberTaken
		}
		logger.Error("Failed to create room", zap.String("roomNumber", r.RoomNumber), zap.Error(err))
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	logger.Info("Room created", zap.String("roomNumber", r.RoomNumber), zap.String("type", r.Type))
	s.invalidateListing()
	return &r, nil
}

// ListRooms returns all rooms with occupant references resolved.
func (s *DefaultRoomService) ListRooms() ([]models.Room, error) {
	if s.Cache != nil {
		if data, err := s.Cache.Get(context.Background(), roomsCacheKey).Result(); err == nil {
			var rooms []models.Room
			if json.Unmarshal([]byte(data), &rooms) == nil {
				return rooms, nil
			}
		}
	}

	rooms, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}

	if s.Cache != nil && len(rooms) > 0 {
		if b, err := json.Marshal(rooms); err == nil {
			s.Cache.Set(context.Background(), roomsCacheKey, b, roomsCacheTTL)
		}
	}
	return rooms, nil
}

// invalidateListing drops the cached room listing after a write.
func (s *DefaultRoomService) invalidateListing() {
	if s.Cache != nil {
		s.Cache.Del(context.Background(), roomsCacheKey)
	}
}

// BookRoom claims a vacant room for the given user. The occupancy check and
// the occupant write happen in one conditional update at the storage layer.
func (s *DefaultRoomService) BookRoom(roomNumber string, userID int64) (*models.Room, error) {
	logger := utils.GetLogger()

	booked, err := s.Repo.Book(roomNumber, userID)
	if err == nil {
		logger.Info("Room booked", zap.String("roomNumber", roomNumber), zap.Int64("userID", userID))
		s.invalidateListing()
		return booked, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	// The conditional write matched nothing: the room is either missing or
	// already occupied. Disambiguate for the caller.
	existing, gerr := s.Repo.GetByNumber(roomNumber)
	if gerr != nil {
		return nil, gerr
	}
	if existing == nil {
		return nil, ErrRoomNotFound
	}
	return nil, ErrRoomOccupied
}

// ReleaseRoom vacates an occupied room.
func (s *DefaultRoomService) ReleaseRoom(roomNumber string) (*models.Room, error) {
	released, err := s.Repo.Release(roomNumber)
	if err == nil {
		utils.GetLogger().Info("Room released", zap.String("roomNumber", roomNumber))
		s.invalidateListing()
		return released, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	existing, gerr := s.Repo.GetByNumber(roomNumber)
	if gerr != nil {
		return nil, gerr
	}
	if existing == nil {
		return nil, ErrRoomNotFound
	}
	return nil, ErrRoomVacant
}

// ListUserBookings returns the rooms currently occupied by a user.
func (s *DefaultRoomService) ListUserBookings(userID int64) ([]models.Room, error) {
	return s.Repo.GetByOccupant(userID)
}

// ListOccupied returns all occupied rooms.
func (s *DefaultRoomService) ListOccupied() ([]models.Room, error) {
	return s.Repo.GetOccupied()
}

// ListByStatus returns rooms filtered by booking status.
func (s *DefaultRoomService) ListByStatus(status string) ([]models.Room, error) {
	if !models.ValidBookingStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.Repo.GetByStatus(status)
}
