package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"medialocker-backend-go/internal/core"
	"medialocker-backend-go/internal/models"
)

// LockerHandler handles API endpoints related to lockers.
type LockerHandler struct {
	lockerService core.LockerService
}

// NewLockerHandler creates a new LockerHandler.
func NewLockerHandler(ls core.LockerService) *LockerHandler {
	return &LockerHandler{lockerService: ls}
}

// mapLockerErrorToStatus maps errors from core.LockerService to HTTP status
// codes and ErrorResponse. Not-found and forbidden are deliberately kept
// distinguishable (404 vs 403) on every endpoint, including mutations.
func mapLockerErrorToStatus(c *gin.Context, err error) {
	var statusCode int
	var errResponse ErrorResponse

	switch {
	case errors.Is(err, core.ErrLockerNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: core.ErrLockerNotFound.Error()}
	case errors.Is(err, core.ErrForbiddenAccess):
		statusCode = http.StatusForbidden
		errResponse = ErrorResponse{Error: core.ErrForbiddenAccess.Error()}
	case errors.Is(err, core.ErrInvalidItemKind):
		statusCode = http.StatusBadRequest
		errResponse = ErrorResponse{Error: core.ErrInvalidItemKind.Error()}
	default:
		log.Printf("Internal Server Error: %v", err)
		statusCode = http.StatusInternalServerError
		errResponse = ErrorResponse{Error: "An unexpected internal server error occurred."}
	}
	c.JSON(statusCode, errResponse)
}

// callerID extracts the authenticated user ID set by the auth middleware.
// The path :userId segment is never used as the acting identity.
func callerID(c *gin.Context) (string, bool) {
	rawUserID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return "", false
	}
	id, ok := rawUserID.(string)
	if !ok || id == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID format in context"})
		return "", false
	}
	return id, true
}

// CreateLocker handles POST /locker/:userId. The new locker is always owned
// by the authenticated caller.
func (h *LockerHandler) CreateLocker(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	locker, err := h.lockerService.CreateLocker(c.Request.Context(), caller)
	if err != nil {
		mapLockerErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, locker)
}

// GetLocker handles GET /locker/:userId/:lockerId.
func (h *LockerHandler) GetLocker(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	lockerID := c.Param("lockerId")
	if lockerID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Locker ID is required"})
		return
	}

	locker, err := h.lockerService.GetLockerByID(c.Request.Context(), caller, lockerID)
	if err != nil {
		mapLockerErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, locker)
}

// ListLockers handles GET /locker/:userId, returning the lockers owned by
// :userId. The service enforces that only the owner themself may list.
func (h *LockerHandler) ListLockers(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	ownerID := c.Param("userId")
	if ownerID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "User ID is required"})
		return
	}

	lockers, err := h.lockerService.ListByOwner(c.Request.Context(), caller, ownerID)
	if err != nil {
		mapLockerErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, lockers)
}

// AddItem returns the handler for POST /locker/:userId/:lockerId/{games,movies,books}.
// The item reference comes from the request body field matching the kind.
func (h *LockerHandler) AddItem(kind models.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := callerID(c)
		if !ok {
			return
		}
		lockerID := c.Param("lockerId")
		if lockerID == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Locker ID is required"})
			return
		}

		var req models.AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
			return
		}

		itemID := itemIDForKind(kind, req)
		if itemID == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Item ID is required", Details: "expected " + bodyFieldForKind(kind)})
			return
		}

		locker, err := h.lockerService.AddItem(c.Request.Context(), caller, lockerID, kind, itemID)
		if err != nil {
			mapLockerErrorToStatus(c, err)
			return
		}
		c.JSON(http.StatusOK, locker)
	}
}

// RemoveItem returns the handler for
// DELETE /locker/:userId/:lockerId/{games,movies,books}/:itemId. Removing an
// item that is not present still succeeds.
func (h *LockerHandler) RemoveItem(kind models.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := callerID(c)
		if !ok {
			return
		}
		lockerID := c.Param("lockerId")
		itemID := c.Param("itemId")
		if lockerID == "" || itemID == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Locker ID and item ID are required"})
			return
		}

		locker, err := h.lockerService.RemoveItem(c.Request.Context(), caller, lockerID, kind, itemID)
		if err != nil {
			mapLockerErrorToStatus(c, err)
			return
		}
		c.JSON(http.StatusOK, locker)
	}
}

// DeleteLocker handles DELETE /locker/:userId/:lockerId. Responds with the
// deleted document, matching the behavior of the other mutating endpoints.
func (h *LockerHandler) DeleteLocker(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	lockerID := c.Param("lockerId")
	if lockerID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Locker ID is required"})
		return
	}

	deleted, err := h.lockerService.DeleteLocker(c.Request.Context(), caller, lockerID)
	if err != nil {
		mapLockerErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}

func itemIDForKind(kind models.ItemKind, req models.AddItemRequest) string {
	switch kind {
	case models.KindGame:
		return req.GameID
	case models.KindMovie:
		return req.MovieID
	case models.KindBook:
		return req.BookID
	default:
		return ""
	}
}

func bodyFieldForKind(kind models.ItemKind) string {
	switch kind {
	case models.KindGame:
		return "gameId"
	case models.KindMovie:
		return "movieId"
	case models.KindBook:
		return "bookId"
	default:
		return ""
	}
}
