package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"medialocker-backend-go/internal/core"
	"medialocker-backend-go/internal/models"
)

// UserHandler handles endpoints for the locker references kept on the
// authenticated user's own record.
type UserHandler struct {
	userService core.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us core.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

func mapUserErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrUserNotFound.Error()})
	default:
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// GetUserLockers handles GET /user/lockers.
func (h *UserHandler) GetUserLockers(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	lockers, err := h.userService.GetUserLockers(c.Request.Context(), caller)
	if err != nil {
		mapUserErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, LockerRefsResponse{Lockers: lockers})
}

// AttachLocker handles POST /user/lockers.
func (h *UserHandler) AttachLocker(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req models.AttachLockerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	lockers, err := h.userService.AttachLocker(c.Request.Context(), caller, req.LockerID)
	if err != nil {
		mapUserErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, LockerRefsResponse{Lockers: lockers})
}

// DetachLocker handles DELETE /user/lockers/:lockerId.
func (h *UserHandler) DetachLocker(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	lockerRef := c.Param("lockerId")
	if lockerRef == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Locker ID is required"})
		return
	}

	lockers, err := h.userService.DetachLocker(c.Request.Context(), caller, lockerRef)
	if err != nil {
		mapUserErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, LockerRefsResponse{Lockers: lockers})
}
