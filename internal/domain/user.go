package domain

// Role of an authenticated user
type Role string

// User represents the authenticated session user
type User struct {
	LoginID   string
	FirstName string
	LastName  string
	Email     string
	Role      Role
}

// IsAdmin returns true if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
