package auditRepo

import (
	"context"
	"time"

	"glowdesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Record inserts a new audit event and returns its ID.
func (r *mongoAuditRepo) Record(ctx context.Context, event models.AuditEvent) (string, error) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	_, err := r.coll.InsertOne(ctx, event)
	if err != nil {
		return "", err
	}
	return event.ID, nil
}

// GetByStylistID fetches all audit events recorded for one stylist.
func (r *mongoAuditRepo) GetByStylistID(ctx context.Context, stylistID models.ID) ([]models.AuditEvent, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"stylistId": stylistID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.AuditEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetByKind fetches the most recent events of one kind, newest first.
func (r *mongoAuditRepo) GetByKind(ctx context.Context, kind string, limit int64) ([]models.AuditEvent, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"kind": kind}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.AuditEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
