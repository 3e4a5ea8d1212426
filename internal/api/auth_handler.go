package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"medialocker-backend-go/internal/core"
	"medialocker-backend-go/internal/models"
)

// AuthHandler handles registration and login endpoints.
type AuthHandler struct {
	userService core.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us core.UserService) *AuthHandler {
	return &AuthHandler{userService: us}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrPasswordMismatch):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: core.ErrPasswordMismatch.Error()})
		case errors.Is(err, core.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: core.ErrUsernameTaken.Error()})
		default:
			log.Printf("Register: userService.Register failed for '%s': %v", req.Username, err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register user"})
		}
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "User " + user.Username + " successfully registered"})
}

// Login handles POST /login. On success the response carries a bearer token
// whose sole claim identifies the user.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	_, tok, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
			return
		}
		log.Printf("Login: userService.Login failed for '%s': %v", req.Username, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Message: "ok", Token: tok})
}
