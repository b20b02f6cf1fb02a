package controllers

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"civicadmin-be/models"
	"civicadmin-be/policy"
	"civicadmin-be/store"

	"github.com/gin-gonic/gin"
)

var validStatuses = map[string]bool{
	"new": true, "assigned": true, "in_progress": true,
	"resolved": true, "unresolved": true,
}

var priorityRank = map[models.IssuePriority]int{
	models.PriorityEmergency: 0,
	models.PriorityHigh:      1,
	models.PriorityMedium:    2,
	models.PriorityLow:       3,
}

// ListIssues returns the caller's visible issues with filtering, sorting and pagination
func ListIssues(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	// Parse query parameters
	status := c.Query("status")
	category := c.Query("category")
	priority := c.Query("priority")
	ward := c.Query("ward")
	search := c.Query("search")
	sortBy := c.DefaultQuery("sort", "newest")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	issues := issueStore.ListForRole(user)

	filtered := make([]models.Issue, 0, len(issues))
	for _, issue := range issues {
		if status != "" && status != "all" && string(issue.Status) != status {
			continue
		}
		if category != "" && category != "all" && string(issue.Category) != category {
			continue
		}
		if priority != "" && priority != "all" && string(issue.Priority) != priority {
			continue
		}
		if ward != "" && ward != "all" && issue.Location.Ward != ward {
			continue
		}
		if search != "" && !matchesSearch(&issue, search) {
			continue
		}
		filtered = append(filtered, issue)
	}

	switch sortBy {
	case "oldest":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].ReportedDate.Before(filtered[j].ReportedDate)
		})
	case "priority":
		sort.SliceStable(filtered, func(i, j int) bool {
			return priorityRank[filtered[i].Priority] < priorityRank[filtered[j].Priority]
		})
	case "newest":
		fallthrough
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].ReportedDate.After(filtered[j].ReportedDate)
		})
	}

	totalCount := len(filtered)
	totalPages := (totalCount + limit - 1) / limit

	start := (page - 1) * limit
	if start > totalCount {
		start = totalCount
	}
	end := start + limit
	if end > totalCount {
		end = totalCount
	}

	c.JSON(http.StatusOK, gin.H{
		"issues":      filtered[start:end],
		"totalIssues": totalCount,
		"totalPages":  totalPages,
		"currentPage": page,
	})
}

func matchesSearch(issue *models.Issue, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(issue.Title), term) ||
		strings.Contains(strings.ToLower(issue.Description), term) ||
		strings.Contains(strings.ToLower(issue.Location.Address), term)
}

// GetIssue retrieves a single issue by ID within the caller's scope
func GetIssue(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	issue, err := issueStore.GetForRole(c.Param("id"), user)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	c.JSON(http.StatusOK, issue)
}

// UpdateIssueStatus changes an issue's status and appends a timeline event
func UpdateIssueStatus(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Status             string  `json:"status" binding:"required"`
		AssignedTo         *string `json:"assignedTo,omitempty"`
		AssignedDepartment *string `json:"assignedDepartment,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !validStatuses[input.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	issue, err := issueStore.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	if !policy.CanEditStatus(user, &issue) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to update this issue"})
		return
	}

	updated, err := issueStore.UpdateStatus(issue.ID, models.IssueStatus(input.Status), input.AssignedTo, input.AssignedDepartment, user)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// AssignIssue assigns an issue to a department, ward, or field worker
func AssignIssue(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		AssignmentType string `json:"assignmentType" binding:"required"`
		Department     string `json:"department,omitempty"`
		Ward           string `json:"ward,omitempty"`
		FieldWorker    string `json:"fieldWorker,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target := policy.AssignmentTarget(input.AssignmentType)
	switch target {
	case policy.TargetDepartment, policy.TargetWard, policy.TargetFieldWorker:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment type"})
		return
	}

	if !policy.CanAssign(user.Role, target) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Your role cannot use this assignment type"})
		return
	}

	var assignedTo, assignedDepartment *string
	switch target {
	case policy.TargetDepartment:
		dept, ok := models.ParseDepartment(input.Department)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No assignment target selected"})
			return
		}
		name := string(dept)
		assignedDepartment = &name
	case policy.TargetWard:
		if input.Ward == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No assignment target selected"})
			return
		}
		assignedTo = &input.Ward
	case policy.TargetFieldWorker:
		fw, ok := policy.FieldWorkerByID(input.FieldWorker)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No assignment target selected"})
			return
		}
		assignedTo = &fw.Name
	}

	updated, err := issueStore.UpdateStatus(c.Param("id"), models.StatusAssigned, assignedTo, assignedDepartment, user)
	if err != nil {
		if errors.Is(err, store.ErrIssueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign issue"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// GetAssignmentOptions returns the assignment targets and catalogs for the caller's role
func GetAssignmentOptions(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	issue, err := issueStore.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	recommended, _ := policy.RecommendedDepartment(&issue)

	departments := make([]gin.H, 0)
	for _, d := range policy.Departments() {
		departments = append(departments, gin.H{
			"name":        d,
			"recommended": d == recommended,
		})
	}

	wards := make([]gin.H, 0)
	for _, w := range policy.Wards() {
		wards = append(wards, gin.H{
			"name":        w,
			"recommended": policy.RecommendedWard(&issue, w),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"assignmentTypes": policy.AssignmentTargets(user.Role),
		"departments":     departments,
		"wards":           wards,
		"fieldWorkers":    policy.FieldWorkers(),
	})
}

// AddComment appends a comment to an issue
func AddComment(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Message string `json:"message" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := issueStore.AddComment(c.Param("id"), input.Message, user)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmptyComment):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Comment message cannot be empty"})
		case errors.Is(err, store.ErrIssueNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// RecentIssues returns the most recent visible issues that carry coordinates
func RecentIssues(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	limit := 19

	issues := issueStore.ListForRole(user)
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].ReportedDate.After(issues[j].ReportedDate)
	})

	type IssuePoint struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		Latitude  float64   `json:"latitude"`
		Longitude float64   `json:"longitude"`
		Address   string    `json:"address"`
		Ward      string    `json:"ward"`
		Category  string    `json:"category,omitempty"`
		CreatedAt time.Time `json:"createdAt,omitempty"`
	}

	points := make([]IssuePoint, 0, limit)
	for _, issue := range issues {
		if issue.Location.Latitude == nil || issue.Location.Longitude == nil {
			continue
		}
		points = append(points, IssuePoint{
			ID:        issue.ID,
			Title:     issue.Title,
			Latitude:  *issue.Location.Latitude,
			Longitude: *issue.Location.Longitude,
			Address:   issue.Location.Address,
			Ward:      issue.Location.Ward,
			Category:  string(issue.Category),
			CreatedAt: issue.ReportedDate,
		})
		if len(points) == limit {
			break
		}
	}

	c.JSON(http.StatusOK, points)
}
