package models

import (
	"strings"
	"time"
)

// IssueCategory enum
type IssueCategory string

const (
	CategoryWaterSupply IssueCategory = "water_supply"
	CategoryElectricity IssueCategory = "electricity"
	CategoryRoads       IssueCategory = "roads_infrastructure"
	CategorySanitation  IssueCategory = "sanitation"
	CategoryOthers      IssueCategory = "others"
)

// IssuePriority enum
type IssuePriority string

const (
	PriorityEmergency IssuePriority = "emergency"
	PriorityHigh      IssuePriority = "high"
	PriorityMedium    IssuePriority = "medium"
	PriorityLow       IssuePriority = "low"
)

// IssueStatus enum
type IssueStatus string

const (
	StatusNew        IssueStatus = "new"
	StatusAssigned   IssueStatus = "assigned"
	StatusInProgress IssueStatus = "in_progress"
	StatusResolved   IssueStatus = "resolved"
	StatusUnresolved IssueStatus = "unresolved"
)

// Display renders the status for human-readable text ("in_progress" -> "in progress")
func (s IssueStatus) Display() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

// TimelineEventType enum, aligned with status and assignment transitions
type TimelineEventType string

const (
	EventCreated            TimelineEventType = "created"
	EventAssigned           TimelineEventType = "assigned"
	EventDepartmentAssigned TimelineEventType = "department_assigned"
	EventWardAssigned       TimelineEventType = "ward_assigned"
	EventInProgress         TimelineEventType = "in_progress"
	EventResolved           TimelineEventType = "resolved"
	EventUnresolved         TimelineEventType = "unresolved"
)

// Location is where an issue was reported
type Location struct {
	Address   string   `bson:"address" json:"address"`
	Ward      string   `bson:"ward" json:"ward"`
	Sector    string   `bson:"sector" json:"sector"`
	Latitude  *float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude *float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
}

// TimelineEvent is an immutable audit record of one lifecycle change.
// Events are only ever appended to an issue's timeline, never removed or reordered.
type TimelineEvent struct {
	ID          string            `bson:"eventId" json:"id"`
	Type        TimelineEventType `bson:"type" json:"type"`
	Timestamp   time.Time         `bson:"timestamp" json:"timestamp"`
	User        string            `bson:"user" json:"user"`
	Description string            `bson:"description" json:"description"`
}

// Comment is immutable once created
type Comment struct {
	ID        string    `bson:"commentId" json:"id"`
	User      string    `bson:"user" json:"user"`
	Message   string    `bson:"message" json:"message"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// Issue represents a civic issue reported by a citizen and worked by municipal staff
type Issue struct {
	ID                  string          `bson:"_id" json:"id"`
	Title               string          `bson:"title" json:"title"`
	Description         string          `bson:"description" json:"description"`
	Category            IssueCategory   `bson:"category" json:"category"`
	Priority            IssuePriority   `bson:"priority" json:"priority"`
	Status              IssueStatus     `bson:"status" json:"status"`
	ReportedBy          string          `bson:"reportedBy" json:"reportedBy"`
	ReportedDate        time.Time       `bson:"reportedDate" json:"reportedDate"`
	AssignedTo          string          `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	AssignedDepartment  string          `bson:"assignedDepartment,omitempty" json:"assignedDepartment,omitempty"`
	Location            Location        `bson:"location" json:"location"`
	Photos              []string        `bson:"photos" json:"photos"`
	Timeline            []TimelineEvent `bson:"timeline" json:"timeline"`
	Comments            []Comment       `bson:"comments" json:"comments"`
	EstimatedResolution *time.Time      `bson:"estimatedResolution,omitempty" json:"estimatedResolution,omitempty"`
	ActualResolution    *time.Time      `bson:"actualResolution,omitempty" json:"actualResolution,omitempty"`
	ContractorAssigned  string          `bson:"contractorAssigned,omitempty" json:"contractorAssigned,omitempty"`
	FieldWorkerAssigned string          `bson:"fieldWorkerAssigned,omitempty" json:"fieldWorkerAssigned,omitempty"`
}

// Open reports whether the issue still needs work
func (i *Issue) Open() bool {
	return i.Status == StatusNew || i.Status == StatusAssigned || i.Status == StatusInProgress
}
