package auth

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)
