package controllers

import (
	"log"
	"net/http"
	"os"

	"civicadmin-be/models"
	"civicadmin-be/store"
	authUtils "civicadmin-be/utils"

	"github.com/gin-gonic/gin"
)

var (
	issueStore     *store.IssueStore
	staffDirectory *store.StaffDirectory
)

// Init wires the shared stores used by all handlers.
func Init(issues *store.IssueStore, staff *store.StaffDirectory) {
	issueStore = issues
	staffDirectory = staff
}

// currentUser resolves the authenticated staff member from the request
// context. Returns nil when the request carries no valid identity.
func currentUser(c *gin.Context) *models.User {
	userID, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	id, ok := userID.(string)
	if !ok {
		return nil
	}
	user, ok := staffDirectory.ByID(id)
	if !ok {
		return nil
	}
	return user
}

// LoginUser handles staff login
func LoginUser(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := staffDirectory.ByEmail(input.Email)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !user.ComparePassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := authUtils.GenerateAndSetToken(user.ID)
	if err != nil {
		log.Println("Error generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	// For production, don't set domain to allow cross-origin cookies
	if environment == "production" {
		domain = ""
	}

	cookie := &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		MaxAge:   3600,
		Path:     "/",
		Domain:   domain,
		Secure:   environment == "production",
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	}
	http.SetCookie(c.Writer, cookie)

	c.JSON(http.StatusOK, gin.H{
		"id":          user.ID,
		"name":        user.Name,
		"email":       user.Email,
		"role":        user.Role,
		"department":  user.Department,
		"ward":        user.Ward,
		"designation": user.Designation,
		"token":       token,
	})
}

// GetMe retrieves the authenticated staff member's profile
func GetMe(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          user.ID,
		"name":        user.Name,
		"email":       user.Email,
		"role":        user.Role,
		"department":  user.Department,
		"ward":        user.Ward,
		"phone":       user.Phone,
		"designation": user.Designation,
	})
}

// LogoutUser handles logout by clearing the auth_token cookie
func LogoutUser(c *gin.Context) {
	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	c.SetCookie("auth_token", "", -1, "/", domain, environment == "production", true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}
