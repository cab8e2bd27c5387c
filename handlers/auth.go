package handlers

import (
	"errors"
	"net/http"
	"strings"

	"savorybook/config"
	"savorybook/middleware"
	"savorybook/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenHeader carries the session token next to the raw user document
const TokenHeader = "X-Auth-Token"

type RegisterRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required"`
	Role     models.UserRole `json:"role"`
	Phone    string          `json:"phone"`
	Location string          `json:"location"`
}

type LoginRequest struct {
	Email    string          `json:"email" binding:"required"`
	Password string          `json:"password" binding:"required"`
	Role     models.UserRole `json:"role"`
}

// Register creates a new user account
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Role == "" {
		req.Role = models.RoleCustomer
	}
	if req.Role != models.RoleCustomer && req.Role != models.RoleAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: customer or admin"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     email,
		Password:  string(hash),
		Phone:     req.Phone,
		Location:  req.Location,
		Role:      req.Role,
		Favorites: []string{},
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	respondWithSession(c, user)
}

// Login authenticates a user for the role they picked on the login page
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := config.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email)))
	if req.Role != "" {
		query = query.Where("role = ?", req.Role)
	}
	var user models.User
	if err := query.First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	respondWithSession(c, user)
}

// respondWithSession answers with the raw user document; the JWT rides in
// a header so the body keeps the legacy shape.
func respondWithSession(c *gin.Context, user models.User) {
	token, err := middleware.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.Header(TokenHeader, token)
	c.JSON(http.StatusOK, user.Public())
}

// GetProfile returns the authenticated user's profile
func GetProfile(c *gin.Context) {
	var user models.User
	err := config.DB.First(&user, "id = ?", middleware.GetUserID(c)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}
	c.JSON(http.StatusOK, user.Public())
}
