package auth

// User is the authenticated principal as returned by the backend.
type User struct {
	ID           string  `json:"id" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	Name         string  `json:"name" validate:"required"`
	Role         string  `json:"role" validate:"required,oneof=admin employee"`
	Avatar       *string `json:"avatar,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	EmployeeID   *string `json:"employee_id,omitempty"`
}

type AuthResponse struct {
	User         User    `json:"user" validate:"required"`
	Token        string  `json:"token" validate:"required"`
	RefreshToken *string `json:"refresh_token,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}
