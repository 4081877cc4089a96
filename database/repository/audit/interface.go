package auditRepo

import (
	"context"

	"glowdesk/database"
	"glowdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AuditRepository stores the structured diagnostic events emitted by the
// fail-soft paths of the reconciliation core.
type AuditRepository interface {
	Record(ctx context.Context, event models.AuditEvent) (string, error)
	GetByStylistID(ctx context.Context, stylistID models.ID) ([]models.AuditEvent, error)
	GetByKind(ctx context.Context, kind string, limit int64) ([]models.AuditEvent, error)
}

type mongoAuditRepo struct {
	coll *mongo.Collection
}

// NewMongoAuditRepo returns a new AuditRepository instance using MongoDB.
func NewMongoAuditRepo() AuditRepository {
	return &mongoAuditRepo{
		coll: database.Database().Collection("audit_events"),
	}
}
