package dto

import "time"

// RegisterRequest creates a user plus an optional role profile in one call.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=Student Employer Admin"`

	// Additional info based on role
	FullName    string `json:"fullName,omitempty"`    // for Student
	CompanyName string `json:"companyName,omitempty"` // for Employer
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

type AuthResponse struct {
	UserID    uint      `json:"userId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type UserResponse struct {
	UserID    uint      `json:"userId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FullName  *string   `json:"fullName,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type UpdateUserRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	FullName *string `json:"fullName,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IsActive bool    `json:"isActive"`
}
