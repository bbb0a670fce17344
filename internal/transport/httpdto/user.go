package httpdto

// UserResponse is returned by GET /api/me
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
