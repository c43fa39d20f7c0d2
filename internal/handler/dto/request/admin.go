package request

// LoginRequest only checks presence; an empty string is a wrong credential,
// not a malformed request.
type LoginRequest struct {
	Username *string `json:"username" binding:"required"`
	Password *string `json:"password" binding:"required"`
}
