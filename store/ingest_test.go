package store

import (
	"testing"
	"time"

	"civicadmin-be/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestNormalizesReports(t *testing.T) {
	s := NewIssueStore(nil)

	added := s.Ingest([]ExternalReport{
		{Title: "Broken divider", Description: "Divider collapsed near bus stop", Image: "https://example.com/divider.jpg"},
		{Title: "Open manhole", Description: "Uncovered manhole on service lane"},
	})
	require.Equal(t, 2, added)

	issues := s.ListForRole(adminUser())
	require.Len(t, issues, 2)

	for _, issue := range issues {
		assert.NotEmpty(t, issue.ID)
		assert.Equal(t, models.CategoryRoads, issue.Category)
		assert.Equal(t, models.PriorityLow, issue.Priority)
		assert.Equal(t, models.StatusNew, issue.Status)
		assert.WithinDuration(t, time.Now(), issue.ReportedDate, time.Minute)

		// The timeline always starts with exactly one created event.
		require.Len(t, issue.Timeline, 1)
		assert.Equal(t, models.EventCreated, issue.Timeline[0].Type)
		assert.Equal(t, "Citizen", issue.Timeline[0].User)

		assert.Empty(t, issue.Comments)
	}

	assert.Equal(t, []string{"https://example.com/divider.jpg"}, issues[0].Photos)
	assert.Empty(t, issues[1].Photos)
}

func TestIngestedIssuesAreMutable(t *testing.T) {
	s := NewIssueStore(SeedIssues())

	s.Ingest([]ExternalReport{{Title: "Cracked pavement", Description: "Pavement cracked outside school"}})
	issues := s.ListForRole(adminUser())
	id := issues[len(issues)-1].ID

	updated, err := s.UpdateStatus(id, models.StatusAssigned, nil, str("Public Works"), adminUser())
	require.NoError(t, err)
	assert.Len(t, updated.Timeline, 2)
	assert.Equal(t, models.EventCreated, updated.Timeline[0].Type)
	assert.Equal(t, models.EventDepartmentAssigned, updated.Timeline[1].Type)
}

func TestSeedIssuesStartWithCreatedEvent(t *testing.T) {
	for _, issue := range SeedIssues() {
		require.NotEmpty(t, issue.Timeline, issue.ID)
		assert.Equal(t, models.EventCreated, issue.Timeline[0].Type, issue.ID)
	}
}

func TestStaffDirectory(t *testing.T) {
	staff, err := NewStaffDirectory(SeedStaff())
	require.NoError(t, err)

	user, ok := staff.ByEmail("water@municipal.gov.in")
	require.True(t, ok)
	assert.Equal(t, models.RoleWaterDept, user.Role)
	assert.True(t, user.ComparePassword("water123"))
	assert.False(t, user.ComparePassword("wrong"))

	byID, ok := staff.ByID(user.ID)
	require.True(t, ok)
	assert.Equal(t, user.Email, byID.Email)

	_, ok = staff.ByEmail("nobody@municipal.gov.in")
	assert.False(t, ok)
}
