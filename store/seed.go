package store

import (
	"time"

	"civicadmin-be/models"
)

// SeedIssues returns the demo issue set the dashboard starts with.
func SeedIssues() []models.Issue {
	return []models.Issue{
		{
			ID:                 "ISS-2025-001",
			Title:              "Water leakage on MG Road",
			Description:        "Major water pipe burst causing flooding on MG Road near sector 14",
			Category:           models.CategoryWaterSupply,
			Priority:           models.PriorityEmergency,
			Status:             models.StatusInProgress,
			ReportedBy:         "citizen@email.com",
			ReportedDate:       ts("2025-01-15T10:30:00Z"),
			AssignedTo:         "2",
			AssignedDepartment: string(models.DeptWaterSupply),
			Location: models.Location{
				Address:   "MG Road, Near Sector 14 Market",
				Ward:      "Ward 12",
				Sector:    "Sector 14",
				Latitude:  f(28.6139),
				Longitude: f(77.2090),
			},
			Photos: []string{},
			Timeline: []models.TimelineEvent{
				{ID: "tl1", Type: models.EventCreated, Timestamp: ts("2025-01-15T10:30:00Z"), User: "Citizen", Description: "Issue reported via mobile app"},
				{ID: "tl2", Type: models.EventDepartmentAssigned, Timestamp: ts("2025-01-15T11:00:00Z"), User: "Municipal Commissioner", Description: "Assigned to Water Department"},
				{ID: "tl3", Type: models.EventInProgress, Timestamp: ts("2025-01-15T14:30:00Z"), User: "Water Department Head", Description: "Work started - Emergency repair team deployed"},
			},
			Comments: []models.Comment{
				{ID: "c1", User: "Water Department Head", Message: "Emergency repair team dispatched. Water supply temporarily shut off for repairs.", Timestamp: ts("2025-01-15T14:30:00Z")},
			},
			EstimatedResolution: tp(ts("2025-01-16T18:00:00Z")),
		},
		{
			ID:                 "ISS-2025-002",
			Title:              "Street light not working - Park Avenue",
			Description:        "Multiple street lights not functioning on Park Avenue affecting night visibility",
			Category:           models.CategoryElectricity,
			Priority:           models.PriorityHigh,
			Status:             models.StatusAssigned,
			ReportedBy:         "resident@email.com",
			ReportedDate:       ts("2025-01-14T19:45:00Z"),
			AssignedTo:         "3",
			AssignedDepartment: string(models.DeptElectricity),
			Location: models.Location{
				Address:   "Park Avenue, Sector 15",
				Ward:      "Ward 15",
				Sector:    "Sector 15",
				Latitude:  f(28.6129),
				Longitude: f(77.2100),
			},
			Photos: []string{"https://images.pexels.com/photos/247627/pexels-photo-247627.jpeg?auto=compress&cs=tinysrgb&w=400"},
			Timeline: []models.TimelineEvent{
				{ID: "tl4", Type: models.EventCreated, Timestamp: ts("2025-01-14T19:45:00Z"), User: "Citizen", Description: "Street lighting issue reported"},
				{ID: "tl5", Type: models.EventDepartmentAssigned, Timestamp: ts("2025-01-15T09:00:00Z"), User: "Municipal Commissioner", Description: "Assigned to Electricity Department"},
			},
			Comments:            []models.Comment{},
			EstimatedResolution: tp(ts("2025-01-17T17:00:00Z")),
		},
		{
			ID:           "ISS-2025-003",
			Title:        "Pothole on Main Street",
			Description:  "Large pothole causing traffic issues and vehicle damage on Main Street",
			Category:     models.CategoryRoads,
			Priority:     models.PriorityHigh,
			Status:       models.StatusNew,
			ReportedBy:   "driver@email.com",
			ReportedDate: ts("2025-01-16T08:15:00Z"),
			Location: models.Location{
				Address:   "Main Street, Block A",
				Ward:      "Ward 8",
				Sector:    "Sector 12",
				Latitude:  f(28.6150),
				Longitude: f(77.2080),
			},
			Photos: []string{"https://images.pexels.com/photos/6249504/pexels-photo-6249504.jpeg?auto=compress&cs=tinysrgb&w=400"},
			Timeline: []models.TimelineEvent{
				{ID: "tl6", Type: models.EventCreated, Timestamp: ts("2025-01-16T08:15:00Z"), User: "Citizen", Description: "Road infrastructure issue reported"},
			},
			Comments: []models.Comment{},
		},
		{
			ID:                 "ISS-2025-004",
			Title:              "Garbage collection missed - Rose Garden Society",
			Description:        "Scheduled garbage collection missed for 3 consecutive days in residential area",
			Category:           models.CategorySanitation,
			Priority:           models.PriorityMedium,
			Status:             models.StatusAssigned,
			ReportedBy:         "society@email.com",
			ReportedDate:       ts("2025-01-15T07:00:00Z"),
			AssignedTo:         "5",
			AssignedDepartment: string(models.DeptSanitation),
			Location: models.Location{
				Address:   "Rose Garden Society, Sector 22",
				Ward:      "Ward 22",
				Sector:    "Sector 22",
				Latitude:  f(28.6160),
				Longitude: f(77.2070),
			},
			Photos: []string{"https://images.pexels.com/photos/9324319/pexels-photo-9324319.jpeg?auto=compress&cs=tinysrgb&w=400"},
			Timeline: []models.TimelineEvent{
				{ID: "tl7", Type: models.EventCreated, Timestamp: ts("2025-01-15T07:00:00Z"), User: "Citizen", Description: "Sanitation issue reported"},
				{ID: "tl8", Type: models.EventDepartmentAssigned, Timestamp: ts("2025-01-15T10:30:00Z"), User: "Municipal Commissioner", Description: "Assigned to Sanitation Department"},
			},
			Comments: []models.Comment{
				{ID: "c2", User: "Sanitation Department Head", Message: "Investigating the missed collection schedule. Will coordinate with collection team.", Timestamp: ts("2025-01-15T11:00:00Z")},
			},
		},
		{
			ID:                 "ISS-2025-005",
			Title:              "Water supply disruption - Gandhi Nagar",
			Description:        "No water supply for 2 days in Gandhi Nagar residential area",
			Category:           models.CategoryWaterSupply,
			Priority:           models.PriorityHigh,
			Status:             models.StatusResolved,
			ReportedBy:         "resident2@email.com",
			ReportedDate:       ts("2025-01-12T06:00:00Z"),
			AssignedTo:         "2",
			AssignedDepartment: string(models.DeptWaterSupply),
			Location: models.Location{
				Address:   "Gandhi Nagar, Block C",
				Ward:      "Ward 18",
				Sector:    "Sector 18",
				Latitude:  f(28.6140),
				Longitude: f(77.2110),
			},
			Photos: []string{},
			Timeline: []models.TimelineEvent{
				{ID: "tl9", Type: models.EventCreated, Timestamp: ts("2025-01-12T06:00:00Z"), User: "Citizen", Description: "Water supply issue reported"},
				{ID: "tl10", Type: models.EventResolved, Timestamp: ts("2025-01-14T16:00:00Z"), User: "Water Department Head", Description: "Water supply restored after pipeline repair"},
			},
			Comments: []models.Comment{
				{ID: "c3", User: "Water Department Head", Message: "Pipeline repair completed. Water supply restored to all affected areas.", Timestamp: ts("2025-01-14T16:00:00Z")},
			},
			ActualResolution: tp(ts("2025-01-14T16:00:00Z")),
		},
	}
}

func ts(v string) time.Time {
	parsed, _ := time.Parse(time.RFC3339, v)
	return parsed
}

func f(v float64) *float64 { return &v }

func tp(v time.Time) *time.Time { return &v }
