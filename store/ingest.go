package store

import (
	"fmt"
	"math/rand"
	"time"

	"civicadmin-be/models"
)

// ExternalReport is the raw shape delivered by the citizen intake service.
type ExternalReport struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// Ingest normalizes external citizen reports into canonical issues at the
// store's write boundary and appends them to the collection. Each ingested
// issue starts with defaults (roads category, low priority, new status) and a
// timeline seeded with exactly one "created" event attributed to the citizen.
// Returns the number of issues added.
func (s *IssueStore) Ingest(reports []ExternalReport) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range reports {
		issue := normalizeReport(r)
		s.index[issue.ID] = len(s.issues)
		s.issues = append(s.issues, issue)
	}
	return len(reports)
}

func normalizeReport(r ExternalReport) models.Issue {
	now := time.Now()

	photos := []string{}
	if r.Image != "" {
		photos = append(photos, r.Image)
	}

	return models.Issue{
		ID:           newIssueID(now),
		Title:        r.Title,
		Description:  r.Description,
		Category:     models.CategoryRoads,
		Priority:     models.PriorityLow,
		Status:       models.StatusNew,
		ReportedBy:   "anonymous@email.com",
		ReportedDate: now,
		Location: models.Location{
			Address: "Not specified",
			Ward:    "Ward 0",
			Sector:  "Sector 0",
		},
		Photos: photos,
		Timeline: []models.TimelineEvent{
			newTimelineEvent(models.EventCreated, "Citizen", "Issue reported"),
		},
		Comments: []models.Comment{},
	}
}

func newIssueID(now time.Time) string {
	return fmt.Sprintf("ISS-%d-%03d", now.UnixMilli(), rand.Intn(1000))
}
