package api

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`             // A high-level error message or code
	Details string `json:"details,omitempty"` // More specific details about the error, if available
}

// SuccessResponse is a generic structure for simple success messages.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// TokenResponse is returned by POST /login on success.
type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// LockerRefsResponse wraps the locker reference list kept on a user record.
type LockerRefsResponse struct {
	Lockers []string `json:"lockers"`
}
