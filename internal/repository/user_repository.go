package repository

import (
	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// UserRepository manages the directory of users.
type UserRepository interface {
	Seed(users []domain.User) bool
	List(match func(domain.User) bool) []domain.User
	GetByID(id string) (domain.User, error)
	Create(user domain.User)
	Patch(id string, patch []byte) (domain.User, error)
	FirstAgent() (domain.User, bool)
	Count() int
}

type userRepository struct {
	crudRepository[domain.User]
}

// NewUserRepository constructs repository.
func NewUserRepository() UserRepository {
	return &userRepository{newCRUDRepository[domain.User]()}
}

// FirstAgent returns the earliest-seeded user with the Agent role. It backs
// the designated-agent fallback of the "My Open Tickets" view.
func (r *userRepository) FirstAgent() (domain.User, bool) {
	agents := r.records.List(func(u domain.User) bool { return u.Role == domain.UserRoleAgent })
	if len(agents) == 0 {
		return domain.User{}, false
	}
	return agents[0], true
}
