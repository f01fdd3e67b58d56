package dto

import "github.com/spec-kit/helpdesk-service/internal/domain"

// CreateUserRequest payload.
type CreateUserRequest struct {
	FullName       string          `json:"full_name"`
	Email          string          `json:"email"`
	PhoneNumber    string          `json:"phone_number"`
	OfficeLocation string          `json:"office_location"`
	Role           domain.UserRole `json:"role"`
}
