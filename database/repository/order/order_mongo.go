package orderRepo

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

// ErrNotFound is returned when no order matches the given ID.
var ErrNotFound = errors.New("order not found")

// MongoOrderRepo implements OrderRepository using MongoDB.
type MongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo constructs a new instance of MongoOrderRepo.
func NewMongoOrderRepo() OrderRepository {
	return &MongoOrderRepo{
		coll: database.DB().Collection("orders"),
	}
}

// Create persists a new order document.
func (repo *MongoOrderRepo) Create(ctx context.Context, order *models.Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("error creating order: %w", err)
	}
	return nil
}

// GetByID retrieves an order by its ID.
func (repo *MongoOrderRepo) GetByID(ctx context.Context, orderID string) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var order models.Order
	if err := repo.coll.FindOne(ctx, bson.M{"id": orderID}).Decode(&order); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching order with id %s: %w", orderID, err)
	}
	return &order, nil
}

// SetCheckoutSession records the checkout session id and expiry on an order.
func (repo *MongoOrderRepo) SetCheckoutSession(ctx context.Context, orderID, sessionID string, expiresAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"payment_session_id": sessionID,
		"session_expires_at": expiresAt,
		"updated_at":         time.Now().UTC(),
	}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": orderID}, update)
	if err != nil {
		return fmt.Errorf("error recording checkout session for order %s: %w", orderID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkExpired moves a still-pending order to expired. The status filter makes
// the write a no-op when a completed event already won the race.
func (repo *MongoOrderRepo) MarkExpired(ctx context.Context, orderID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": orderID, "status": models.OrderStatusPending}
	update := bson.M{"$set": bson.M{
		"status":     models.OrderStatusExpired,
		"updated_at": time.Now().UTC(),
	}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("error expiring order %s: %w", orderID, err)
	}
	return res.ModifiedCount > 0, nil
}

// MarkCancelled moves a paid order to cancelled.
func (repo *MongoOrderRepo) MarkCancelled(ctx context.Context, orderID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": orderID, "status": models.OrderStatusPaid}
	update := bson.M{"$set": bson.M{
		"status":     models.OrderStatusCancelled,
		"updated_at": time.Now().UTC(),
	}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error cancelling order %s: %w", orderID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
