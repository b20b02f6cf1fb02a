package controllers

import (
	"net/http"
	"sort"
	"time"

	"civicadmin-be/models"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns issue counters scoped to the caller's role
func GetDashboardStats(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	c.JSON(http.StatusOK, issueStore.Stats(user))
}

// GetIssueAnalytics returns analytical data about all issues (admin only)
func GetIssueAnalytics(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	if user.Role != models.RoleMunicipalAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Analytics are restricted to municipal admins"})
		return
	}

	issues := issueStore.ListForRole(user)

	// Issues grouped by category
	categoryCounts := map[models.IssueCategory]int{}
	for _, issue := range issues {
		categoryCounts[issue.Category]++
	}
	issuesByCategory := make([]gin.H, 0, len(categoryCounts))
	for _, category := range []models.IssueCategory{
		models.CategoryWaterSupply, models.CategoryElectricity,
		models.CategoryRoads, models.CategorySanitation, models.CategoryOthers,
	} {
		if count, ok := categoryCounts[category]; ok {
			issuesByCategory = append(issuesByCategory, gin.H{
				"name":  category,
				"value": count,
			})
		}
	}

	// Reported counts over the last 7 days
	var last7Days []gin.H
	for i := 6; i >= 0; i-- {
		date := time.Now().AddDate(0, 0, -i)
		date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		nextDate := date.AddDate(0, 0, 1)

		count := 0
		for _, issue := range issues {
			if !issue.ReportedDate.Before(date) && issue.ReportedDate.Before(nextDate) {
				count++
			}
		}

		last7Days = append(last7Days, gin.H{
			"date":  date.Format("2006-01-02"),
			"count": count,
		})
	}

	// Top open issues by priority
	open := make([]models.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.Open() {
			open = append(open, issue)
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		return priorityRank[open[i].Priority] < priorityRank[open[j].Priority]
	})
	if len(open) > 5 {
		open = open[:5]
	}

	type IssueSummary struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Category string `json:"category"`
		Priority string `json:"priority"`
		Status   string `json:"status"`
	}
	topPriorityIssues := make([]IssueSummary, 0, len(open))
	for _, issue := range open {
		topPriorityIssues = append(topPriorityIssues, IssueSummary{
			ID:       issue.ID,
			Title:    issue.Title,
			Category: string(issue.Category),
			Priority: string(issue.Priority),
			Status:   string(issue.Status),
		})
	}

	openIssues := 0
	for _, issue := range issues {
		if issue.Open() {
			openIssues++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"issuesByCategory":  issuesByCategory,
		"last7Days":         last7Days,
		"topPriorityIssues": topPriorityIssues,
		"totalIssues":       len(issues),
		"openIssues":        openIssues,
	})
}
