package domain

// UserRole enumerates directory access roles.
type UserRole string

const (
	UserRoleAgent UserRole = "Agent"
	UserRoleAdmin UserRole = "Admin"
	UserRoleUser  UserRole = "User"
)

// User is a directory entry covering requesters, agents and admins.
type User struct {
	ID             string   `json:"id"`
	FullName       string   `json:"full_name"`
	Email          string   `json:"email"`
	PhoneNumber    string   `json:"phone_number"`
	OfficeLocation string   `json:"office_location"`
	Role           UserRole `json:"role"`
}

// RecordID returns the store key.
func (u User) RecordID() string { return u.ID }
