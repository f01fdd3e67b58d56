package service

import (
	"errors"
	"strings"
	"sync"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/internal/store"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// UserService coordinates directory operations.
type UserService struct {
	users repository.UserRepository

	fakerMu sync.Mutex
	faker   *gofakeit.Faker
}

// UserCreateInput describes user creation payload.
type UserCreateInput struct {
	FullName       string
	Email          string
	PhoneNumber    string
	OfficeLocation string
	Role           domain.UserRole
}

// NewUserService constructs the service. The faker fills omitted optional
// fields the same way the seeder does.
func NewUserService(users repository.UserRepository, faker *gofakeit.Faker) *UserService {
	return &UserService{users: users, faker: faker}
}

// List returns every user in insertion order.
func (s *UserService) List() []domain.User {
	return s.users.List(nil)
}

// Get returns one user by id.
func (s *UserService) Get(id string) (domain.User, error) {
	user, err := s.users.GetByID(id)
	return user, apperrors.NotFoundAs(err, "User")
}

// Create validates required fields, fills defaults and appends the user.
func (s *UserService) Create(input UserCreateInput) (domain.User, error) {
	if strings.TrimSpace(input.FullName) == "" || strings.TrimSpace(input.Email) == "" {
		return domain.User{}, apperrors.NewValidationError("full_name and email required")
	}

	user := domain.User{
		ID:             uuid.NewString(),
		FullName:       strings.TrimSpace(input.FullName),
		Email:          strings.TrimSpace(input.Email),
		PhoneNumber:    input.PhoneNumber,
		OfficeLocation: input.OfficeLocation,
		Role:           input.Role,
	}
	if user.Role == "" {
		user.Role = domain.UserRoleUser
	}
	s.fakerMu.Lock()
	if user.PhoneNumber == "" {
		user.PhoneNumber = s.faker.Phone()
	}
	if user.OfficeLocation == "" {
		user.OfficeLocation = s.faker.City() + ", " + s.faker.State()
	}
	s.fakerMu.Unlock()

	s.users.Create(user)
	return user, nil
}

// Update shallow-merges the raw JSON patch over the stored user.
func (s *UserService) Update(id string, patch []byte) (domain.User, error) {
	user, err := s.users.Patch(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, apperrors.NewNotFound("User")
		}
		return domain.User{}, apperrors.NewValidationError("invalid payload")
	}
	return user, nil
}
