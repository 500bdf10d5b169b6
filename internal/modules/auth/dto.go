package auth

import "clubadmin/internal/domain"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateAdminRequest struct {
	Email    string           `json:"email" binding:"required,email"`
	Password string           `json:"password" binding:"required,min=8"`
	Name     string           `json:"name" binding:"required"`
	Role     domain.AdminRole `json:"role"`
}
