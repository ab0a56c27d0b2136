package auth

import "performx/internal/employee"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=Admin Manager Employee"`
}

type RegisterRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Username   string `json:"username" binding:"required,min=3"`
	Password   string `json:"password" binding:"required,min=8"`
	RoleAccess string `json:"roleAccess" binding:"required,oneof=Admin Manager Employee"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthResponse is the session identity plus the full employee document (no
// password material, which exists only as a bcrypt hash server-side).
type AuthResponse struct {
	UserID   string                    `json:"userId"`
	Role     string                    `json:"role"`
	Employee employee.EmployeeResponse `json:"employee"`
}
