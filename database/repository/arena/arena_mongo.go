package arenaRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arenabook/database"
	"arenabook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no arena matches the given ID.
var ErrNotFound = errors.New("arena not found")

// MongoArenaRepo implements ArenaRepository using MongoDB.
type MongoArenaRepo struct {
	coll *mongo.Collection
}

// NewMongoArenaRepo constructs a new instance of MongoArenaRepo.
func NewMongoArenaRepo() ArenaRepository {
	return &MongoArenaRepo{
		coll: database.DB().Collection("arenas"),
	}
}

// Create persists a new arena document.
func (repo *MongoArenaRepo) Create(ctx context.Context, arena *models.Arena) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, arena); err != nil {
		return fmt.Errorf("error creating arena: %w", err)
	}
	return nil
}

// GetByID retrieves an arena document by ID.
func (repo *MongoArenaRepo) GetByID(ctx context.Context, arenaID string) (*models.Arena, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var arena models.Arena
	if err := repo.coll.FindOne(ctx, bson.M{"id": arenaID}).Decode(&arena); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching arena with id %s: %w", arenaID, err)
	}
	return &arena, nil
}

// UpdateFields applies a partial update to an arena document.
func (repo *MongoArenaRepo) UpdateFields(ctx context.Context, arenaID string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updated_at"] = time.Now().UTC()
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": arenaID}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("error updating arena %s: %w", arenaID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
