package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/homestay/booking-gate/internal/core/domain"
	"github.com/homestay/booking-gate/internal/core/ports"
)

const sessionEventCollection = "session_events"

// SessionEventRepository appends session transitions to an audit collection.
type SessionEventRepository struct {
	coll *mongo.Collection
}

// NewSessionEventRepository creates a new SessionEventRepository.
func NewSessionEventRepository(db *mongo.Database) ports.SessionEventRepository {
	return &SessionEventRepository{coll: db.Collection(sessionEventCollection)}
}

// InsertSessionEvent persists one event.
func (r *SessionEventRepository) InsertSessionEvent(ctx context.Context, event domain.SessionEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"kind":        string(event.Kind),
		"email":       event.Email,
		"at":          event.At.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if event.UserID != "" {
		doc["user_id"] = event.UserID
		doc["role"] = string(event.Role)
	}

	_, err := r.coll.InsertOne(ctx, doc)
	return err
}
