package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"folio-be/internal/apperr"
	"folio-be/internal/middleware"
	"folio-be/internal/models"
	"folio-be/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles POST /users/register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	response, err := ac.authService.Register(&req)
	if err != nil {
		if errors.Is(err, apperr.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{
				"error": apperr.ErrEmailTaken.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to register user",
		})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Login handles POST /users/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	response, err := ac.authService.Login(&req)
	if err != nil {
		// Unknown email and wrong password share this exact shape.
		if errors.Is(err, apperr.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": apperr.ErrInvalidCredentials.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to log in",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Me handles GET /users/me
func (ac *AuthController) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "authorization required",
		})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT /users/profile
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "authorization required",
		})
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	response, err := ac.authService.UpdateProfile(userID, &req)
	if err != nil {
		if errors.Is(err, apperr.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": apperr.ErrUserNotFound.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to update profile",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}
