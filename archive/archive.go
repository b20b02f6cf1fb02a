// Package archive mirrors timeline events into MongoDB for durable audit
// history. The in-memory store stays authoritative; a failed insert is logged
// and dropped, never surfaced to the caller.
package archive

import (
	"context"
	"log"
	"time"

	"civicadmin-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// TimelineArchive writes appended timeline events to a Mongo collection.
type TimelineArchive struct {
	collection *mongo.Collection
}

// NewTimelineArchive wraps the given collection.
func NewTimelineArchive(collection *mongo.Collection) *TimelineArchive {
	return &TimelineArchive{collection: collection}
}

// RecordEvent inserts one audit document. Implements store.Archiver.
func (a *TimelineArchive) RecordEvent(issueID string, event models.TimelineEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	doc := bson.M{
		"issue":       issueID,
		"eventId":     event.ID,
		"type":        event.Type,
		"timestamp":   event.Timestamp,
		"user":        event.User,
		"description": event.Description,
	}

	if _, err := a.collection.InsertOne(ctx, doc); err != nil {
		log.Println("Failed to archive timeline event:", err)
	}
}
