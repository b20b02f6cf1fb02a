package store

import (
	"time"

	"civicadmin-be/models"

	"github.com/google/uuid"
)

// newTimelineEvent builds the next append-only audit entry for an issue.
// IDs only need to be unique within one issue's timeline.
func newTimelineEvent(eventType models.TimelineEventType, actor, description string) models.TimelineEvent {
	return models.TimelineEvent{
		ID:          "tl-" + uuid.NewString(),
		Type:        eventType,
		Timestamp:   time.Now(),
		User:        actor,
		Description: description,
	}
}

func newCommentID() string {
	return "c-" + uuid.NewString()
}

// eventTypeForStatus maps a status transition to its timeline event type.
// "assigned" records as a department assignment; everything else is identity.
func eventTypeForStatus(status models.IssueStatus) models.TimelineEventType {
	if status == models.StatusAssigned {
		return models.EventDepartmentAssigned
	}
	return models.TimelineEventType(status)
}
