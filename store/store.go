package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"civicadmin-be/models"
)

var (
	// ErrIssueNotFound is returned when a mutation targets an unknown issue ID.
	ErrIssueNotFound = errors.New("issue not found")
	// ErrEmptyComment is returned when a comment message is blank after trimming.
	ErrEmptyComment = errors.New("comment message is empty")
)

// Archiver observes every timeline event appended to an issue. Implementations
// must tolerate failure on their own; the store never waits on them.
type Archiver interface {
	RecordEvent(issueID string, event models.TimelineEvent)
}

// IssueStore owns the authoritative in-memory issue collection for the running
// service. All reads observe the most recently completed mutation.
type IssueStore struct {
	mu       sync.RWMutex
	issues   []models.Issue
	index    map[string]int
	archiver Archiver
}

// NewIssueStore seeds a store with the given issues, in order.
func NewIssueStore(seed []models.Issue) *IssueStore {
	s := &IssueStore{index: make(map[string]int)}
	for _, issue := range seed {
		s.index[issue.ID] = len(s.issues)
		s.issues = append(s.issues, issue)
	}
	return s
}

// SetArchiver attaches an audit mirror for appended timeline events.
func (s *IssueStore) SetArchiver(a Archiver) {
	s.mu.Lock()
	s.archiver = a
	s.mu.Unlock()
}

// visibleTo reports whether the issue is in the staff member's scope.
// Visibility is role-exclusive: admins see everything, department roles see
// only issues of their category already assigned to their department, ward
// supervisors see only their ward. Must be called with the lock held.
func visibleTo(user *models.User, issue *models.Issue) bool {
	if user == nil {
		return false
	}
	if dept, ok := user.Role.HomeDepartment(); ok {
		assigned, matched := models.ParseDepartment(issue.AssignedDepartment)
		return issue.Category == dept.Category() && matched && assigned == dept
	}
	switch user.Role {
	case models.RoleMunicipalAdmin:
		return true
	case models.RoleWardSupervisor:
		return issue.Location.Ward == user.Ward
	}
	return false
}

// ListForRole returns deep copies of the issues visible to the staff member,
// in insertion order. It is a pure read; callers may mutate the result freely.
func (s *IssueStore) ListForRole(user *models.User) []models.Issue {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Issue, 0)
	for i := range s.issues {
		if visibleTo(user, &s.issues[i]) {
			result = append(result, copyIssue(&s.issues[i]))
		}
	}
	return result
}

// Get returns a copy of a single issue by ID.
func (s *IssueStore) Get(id string) (models.Issue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return models.Issue{}, ErrIssueNotFound
	}
	return copyIssue(&s.issues[i]), nil
}

// GetForRole is Get restricted to the staff member's visible scope. Issues
// outside the scope are indistinguishable from missing ones.
func (s *IssueStore) GetForRole(id string, user *models.User) (models.Issue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok || !visibleTo(user, &s.issues[i]) {
		return models.Issue{}, ErrIssueNotFound
	}
	return copyIssue(&s.issues[i]), nil
}

// UpdateStatus sets the issue's status and appends exactly one timeline event.
// assignedTo and assignedDepartment are partial-update fields: a nil pointer
// leaves the existing value untouched. The event actor is the acting staff
// member's name, or "System" when no user context is present. A transition to
// the current status still appends an event; the timeline is an audit log of
// attempts, not a diff.
func (s *IssueStore) UpdateStatus(id string, status models.IssueStatus, assignedTo, assignedDepartment *string, actor *models.User) (models.Issue, error) {
	s.mu.Lock()

	i, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return models.Issue{}, ErrIssueNotFound
	}

	issue := &s.issues[i]
	issue.Status = status
	if assignedTo != nil {
		issue.AssignedTo = *assignedTo
	}
	if assignedDepartment != nil {
		issue.AssignedDepartment = *assignedDepartment
	}
	if status == models.StatusResolved && issue.ActualResolution == nil {
		now := time.Now()
		issue.ActualResolution = &now
	}

	event := newTimelineEvent(
		eventTypeForStatus(status),
		actorName(actor, "System"),
		"Status updated to "+status.Display(),
	)
	issue.Timeline = append(issue.Timeline, event)

	updated := copyIssue(issue)
	archiver := s.archiver
	s.mu.Unlock()

	if archiver != nil {
		go archiver.RecordEvent(id, event)
	}
	return updated, nil
}

// AddComment appends one comment to the issue. Blank messages are rejected
// before any state change. Comments never touch status or timeline.
func (s *IssueStore) AddComment(id, message string, actor *models.User) (models.Issue, error) {
	if strings.TrimSpace(message) == "" {
		return models.Issue{}, ErrEmptyComment
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return models.Issue{}, ErrIssueNotFound
	}

	issue := &s.issues[i]
	issue.Comments = append(issue.Comments, models.Comment{
		ID:        newCommentID(),
		User:      actorName(actor, "User"),
		Message:   message,
		Timestamp: time.Now(),
	})
	return copyIssue(issue), nil
}

// Stats computes dashboard counters over the staff member's visible issues.
func (s *IssueStore) Stats(user *models.User) models.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats models.DashboardStats
	for i := range s.issues {
		issue := &s.issues[i]
		if !visibleTo(user, issue) {
			continue
		}
		stats.Total++
		switch issue.Status {
		case models.StatusResolved:
			stats.Resolved++
		case models.StatusNew, models.StatusAssigned:
			stats.Pending++
		case models.StatusInProgress:
			stats.InProgress++
		case models.StatusUnresolved:
			stats.Unresolved++
		}
		if issue.Priority == models.PriorityEmergency {
			stats.Emergency++
		}
	}
	return stats
}

func actorName(user *models.User, fallback string) string {
	if user != nil && user.Name != "" {
		return user.Name
	}
	return fallback
}

// copyIssue deep-copies an issue so store state never escapes by reference.
func copyIssue(src *models.Issue) models.Issue {
	dst := *src
	dst.Photos = append([]string(nil), src.Photos...)
	dst.Timeline = append([]models.TimelineEvent(nil), src.Timeline...)
	dst.Comments = append([]models.Comment(nil), src.Comments...)
	return dst
}
