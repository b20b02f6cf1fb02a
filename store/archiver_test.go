package store

import (
	"testing"
	"time"

	"civicadmin-be/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingArchiver struct {
	events chan models.TimelineEvent
}

func (a *capturingArchiver) RecordEvent(issueID string, event models.TimelineEvent) {
	a.events <- event
}

func TestArchiverReceivesAppendedEvents(t *testing.T) {
	s := NewIssueStore(SeedIssues())
	archiver := &capturingArchiver{events: make(chan models.TimelineEvent, 1)}
	s.SetArchiver(archiver)

	updated, err := s.UpdateStatus("ISS-2025-003", models.StatusInProgress, nil, nil, adminUser())
	require.NoError(t, err)

	select {
	case event := <-archiver.events:
		assert.Equal(t, updated.Timeline[len(updated.Timeline)-1].ID, event.ID)
		assert.Equal(t, models.EventInProgress, event.Type)
	case <-time.After(time.Second):
		t.Fatal("archiver never received the event")
	}
}

func TestCommentsDoNotReachArchiver(t *testing.T) {
	s := NewIssueStore(SeedIssues())
	archiver := &capturingArchiver{events: make(chan models.TimelineEvent, 1)}
	s.SetArchiver(archiver)

	_, err := s.AddComment("ISS-2025-001", "On my way", waterUser())
	require.NoError(t, err)

	select {
	case <-archiver.events:
		t.Fatal("comments must not produce timeline events")
	case <-time.After(50 * time.Millisecond):
	}
}
