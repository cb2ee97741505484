package roomRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stayhub/database"
	"stayhub/models"
)

// MongoRoomRepo implements RoomRepository using MongoDB.
type MongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo creates a new instance of RoomRepository using MongoDB.
func NewMongoRoomRepo() RoomRepository {
	coll := database.DB().Collection("rooms")
	repo := &MongoRoomRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new room document.
func (r *MongoRoomRepo) Create(room *models.Room) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, room); err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// GetByNumber retrieves a room by its number. Returns (nil, nil) when absent.
func (r *MongoRoomRepo) GetByNumber(roomNumber string) (*models.Room, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var room models.Room
	if err := r.coll.FindOne(ctx, bson.M{"roomNumber": roomNumber}).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch room %s: %w", roomNumber, err)
	}
	return &room, nil
}

// findResolved runs a match + occupant $lookup pipeline and decodes the result.
func (r *MongoRoomRepo) findResolved(filter bson.M) ([]models.Room, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "currentOccupant",
			"foreignField": "userId",
			"as":           "occupant",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$occupant",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	for cursor.Next(ctx) {
		var room models.Room
		if err := cursor.Decode(&room); err != nil {
			return nil, fmt.Errorf("failed to decode room: %w", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// GetAll retrieves all rooms with occupant references resolved.
func (r *MongoRoomRepo) GetAll() ([]models.Room, error) {
	return r.findResolved(bson.M{})
}

// GetByOccupant retrieves all rooms currently occupied by the given user.
func (r *MongoRoomRepo) GetByOccupant(userID int64) ([]models.Room, error) {
	return r.findResolved(bson.M{"currentOccupant": userID, "isOccupied": true})
}

// GetOccupied retrieves all occupied rooms with occupants resolved.
func (r *MongoRoomRepo) GetOccupied() ([]models.Room, error) {
	return r.findResolved(bson.M{"isOccupied": true})
}

// GetByStatus retrieves rooms whose booking status matches.
func (r *MongoRoomRepo) GetByStatus(status string) ([]models.Room, error) {
	return r.findResolved(bson.M{"status": status})
}

// Book sets the occupant on a vacant room. The vacancy check and the write
// are one conditional update, so at most one caller can claim a room.
func (r *MongoRoomRepo) Book(roomNumber string, occupantID int64) (*models.Room, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"roomNumber": roomNumber, "isOccupied": false}
	update := bson.M{"$set": bson.M{
		"isOccupied":      true,
		"currentOccupant": occupantID,
		"updatedAt":       time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var room models.Room
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, mongo.ErrNoDocuments
		}
		return nil, fmt.Errorf("failed to book room %s: %w", roomNumber, err)
	}
	return &room, nil
}

// Release clears the occupant of an occupied room.
func (r *MongoRoomRepo) Release(roomNumber string) (*models.Room, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"roomNumber": roomNumber, "isOccupied": true}
	update := bson.M{
		"$set":   bson.M{"isOccupied": false, "updatedAt": time.Now()},
		"$unset": bson.M{"currentOccupant": ""},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var room models.Room
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, mongo.ErrNoDocuments
		}
		return nil, fmt.Errorf("failed to release room %s: %w", roomNumber, err)
	}
	return &room, nil
}
