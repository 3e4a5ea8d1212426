package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"medialocker-backend-go/internal/token"
)

// ErrorResponse is a local definition for sending standardized error messages.
// It mirrors the one in internal/api/dto_models.go to avoid import cycles.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// AuthMiddleware provides Gin middleware for bearer token authentication.
type AuthMiddleware struct {
	tokens *token.Manager
}

// NewAuthMiddleware creates a new AuthMiddleware instance. It panics if the
// token manager is nil, as this is a critical setup dependency.
func NewAuthMiddleware(tm *token.Manager) *AuthMiddleware {
	if tm == nil {
		log.Fatal("CRITICAL_ERROR: token manager is not initialized for AuthMiddleware.")
		panic("token manager is not initialized for AuthMiddleware")
	}
	return &AuthMiddleware{tokens: tm}
}

// VerifyToken is a Gin middleware handler function that verifies a bearer
// token from the Authorization header. If valid, it sets the caller's user
// ID in the Gin context under "userID". Downstream handlers must treat this
// value, never a path parameter, as the acting identity.
func (m *AuthMiddleware) VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header is required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header format must be 'Bearer {token}'"})
			return
		}

		userID, err := m.tokens.Parse(parts[1])
		if err != nil {
			// Generic message to the client; the specific parse failure is
			// logged server-side.
			log.Printf("AuthMiddleware: error verifying bearer token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired authentication token"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
