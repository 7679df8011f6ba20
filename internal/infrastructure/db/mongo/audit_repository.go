package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskvault/todo-service/internal/core/domain"
)

const auditCollection = "audit_events"

// MongoAuditRepository is an append-only store for the security audit trail.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEvent struct {
	Action   string `bson:"action"`
	Username string `bson:"username"`
	UserID   int64  `bson:"user_id,omitempty"`
	Outcome  string `bson:"outcome"`
	Detail   string `bson:"detail,omitempty"`
	At       int64  `bson:"at"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	doc := mongoAuditEvent{
		Action:   event.Action,
		Username: event.Username,
		UserID:   event.UserID,
		Outcome:  event.Outcome,
		Detail:   event.Detail,
		At:       event.At.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
