package routes

import (
	"civicadmin-be/controllers"
	"civicadmin-be/middlewares"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the issue routes
func IssueRoutes(r *gin.Engine) {
	issue := r.Group("/api/issue", middlewares.AuthMiddleware())
	{
		issue.GET("/", controllers.ListIssues)
		issue.GET("/recent", controllers.RecentIssues)
		issue.GET("/:id", controllers.GetIssue)
		issue.PATCH("/:id/status", controllers.UpdateIssueStatus)
		issue.POST("/:id/assign", controllers.AssignIssue)
		issue.GET("/:id/assignment-options", controllers.GetAssignmentOptions)
		issue.POST("/:id/comments", middlewares.CommentRateLimiter(50), controllers.AddComment)
	}
}
