package orderRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arenabook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MarkPaid finalizes payment for an order inside a single transaction.
//
// The status read, the overlap re-check and the write all happen in the same
// session, so two completed events for overlapping intervals cannot both reach
// paid: the second one observes the first and is moved to rejected instead.
func (repo *MongoOrderRepo) MarkPaid(ctx context.Context, orderID, paymentIntentID string, paidAt time.Time) (*models.Order, bool, error) {
	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, false, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var (
		order   models.Order
		applied bool
	)

	txnFn := func(sc mongo.SessionContext) error {
		if err := repo.coll.FindOne(sc, bson.M{"id": orderID}).Decode(&order); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return ErrNotFound
			}
			return fmt.Errorf("fetch order failed: %w", err)
		}

		// Redelivered event for an order that already reached a post-payment
		// state: acknowledge without mutation.
		if order.Status == models.OrderStatusPaid || order.Status == models.OrderStatusRejected {
			return nil
		}

		overlapping, err := repo.coll.CountDocuments(sc,
			paidOverlapFilter(order.ArenaID, order.ID, order.StartTime, order.EndTime))
		if err != nil {
			return fmt.Errorf("overlap re-check failed: %w", err)
		}

		now := time.Now().UTC()
		var update bson.M
		if overlapping > 0 {
			order.Status = models.OrderStatusRejected
			order.PaymentIntentID = paymentIntentID
			update = bson.M{"$set": bson.M{
				"status":            models.OrderStatusRejected,
				"payment_intent_id": paymentIntentID,
				"updated_at":        now,
			}}
		} else {
			order.Status = models.OrderStatusPaid
			order.PaymentIntentID = paymentIntentID
			order.PaidAt = paidAt
			applied = true
			update = bson.M{"$set": bson.M{
				"status":            models.OrderStatusPaid,
				"payment_intent_id": paymentIntentID,
				"paid_at":           paidAt,
				"updated_at":        now,
			}}
		}
		order.UpdatedAt = now

		if _, err := repo.coll.UpdateOne(sc, bson.M{"id": order.ID}, update); err != nil {
			return fmt.Errorf("payment finalization write failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, fmt.Errorf("payment transaction failed: %w", err)
	}

	return &order, applied, nil
}
