package orderRepo

import (
	"context"
	"fmt"
	"time"

	"arenabook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListPaidByArena returns all paid orders for an arena, sorted by start time.
func (repo *MongoOrderRepo) ListPaidByArena(ctx context.Context, arenaID string) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"arena_id": arenaID, "status": models.OrderStatusPaid}
	return repo.list(ctx, filter)
}

// ListPaidByUser returns all paid orders belonging to a user, sorted by start time.
func (repo *MongoOrderRepo) ListPaidByUser(ctx context.Context, userID string) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID, "status": models.OrderStatusPaid}
	return repo.list(ctx, filter)
}

func (repo *MongoOrderRepo) list(ctx context.Context, filter bson.M) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	for cursor.Next(ctx) {
		var o models.Order
		if err := cursor.Decode(&o); err != nil {
			return nil, fmt.Errorf("error decoding order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return orders, nil
}

// paidOverlapFilter matches paid orders on the same arena whose interval
// intersects [start, end), excluding the order itself.
func paidOverlapFilter(arenaID, excludeOrderID string, start, end time.Time) bson.M {
	return bson.M{
		"arena_id":   arenaID,
		"id":         bson.M{"$ne": excludeOrderID},
		"status":     models.OrderStatusPaid,
		"start_time": bson.M{"$lt": end},
		"end_time":   bson.M{"$gt": start},
	}
}
