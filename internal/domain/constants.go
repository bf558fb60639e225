package domain

// MaxTicketsPerBooking is enforced before a booking request is sent
const MaxTicketsPerBooking = 10

// Time format constants
const (
	TimeFormat = "15:04:05"   // HH:MM:SS
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Role names as normalized from the backend (ROLE_ prefix stripped, upper-cased)
const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// DefaultRole is assigned when the backend omits a role
const DefaultRole = RoleUser
