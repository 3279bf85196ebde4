package models

// User is a staff account. Role is stored for the clients' benefit and is
// not enforced by any handler.
type User struct {
	Email    *string `json:"email" validate:"required,email"`
	Password *string `json:"password" validate:"required,min=6"`
	Role     *string `json:"role" validate:"required"`
	Name     *string `json:"name"`
}

// LoginRequest is the /api/auth/login payload.
type LoginRequest struct {
	Email    *string `json:"email" validate:"required,email"`
	Password *string `json:"password" validate:"required"`
}
