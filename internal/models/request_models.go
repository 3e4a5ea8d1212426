package models

// RegisterRequest represents the request body for creating a new account.
// Password2 must match Password; the check happens in the service layer so
// the failure surfaces through the same error taxonomy as the rest.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Password2 string `json:"password2" binding:"required"`
}

// LoginRequest represents the request body for authenticating.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AddItemRequest represents the request body for appending an item
// reference to a locker. Exactly one of the fields is expected depending on
// the route; the handler picks the one matching the item kind.
type AddItemRequest struct {
	GameID  string `json:"gameId,omitempty"`
	MovieID string `json:"movieId,omitempty"`
	BookID  string `json:"bookId,omitempty"`
}

// AttachLockerRequest represents the request body for adding a locker
// reference to the caller's own user record.
type AttachLockerRequest struct {
	LockerID string `json:"lockerId" binding:"required"`
}
