// Package audit provides sinks for the login audit trail.
package audit

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/staffdir/user-directory/internal/core/ports"
)

const eventsCollection = "auth_events"

// MongoSink persists audit events to the auth_events collection.
type MongoSink struct {
	db *mongo.Database
}

func NewMongoSink(db *mongo.Database) *MongoSink {
	return &MongoSink{db: db}
}

func (s *MongoSink) Record(ctx context.Context, event ports.AuthEventInput) error {
	doc := bson.M{
		"username":    event.Username,
		"outcome":     event.Outcome,
		"remote_ip":   event.RemoteIP,
		"timestamp":   event.Timestamp.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if event.UserID != 0 {
		doc["user_id"] = event.UserID
	}

	_, err := s.db.Collection(eventsCollection).InsertOne(ctx, doc)
	return err
}
