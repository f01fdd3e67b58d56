package service

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

func newUserService() (*UserService, repository.UserRepository) {
	repo := repository.NewUserRepository()
	return NewUserService(repo, gofakeit.New(7)), repo
}

func TestUserCreateFillsDefaults(t *testing.T) {
	svc, _ := newUserService()
	user, err := svc.Create(UserCreateInput{FullName: "Dana Cruz", Email: "dana@example.com"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.Role != domain.UserRoleUser {
		t.Fatalf("expected default role User, got %s", user.Role)
	}
	if user.PhoneNumber == "" || user.OfficeLocation == "" {
		t.Fatalf("optional fields should be filled: %+v", user)
	}

	stored, err := svc.Get(user.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored != user {
		t.Fatalf("stored user differs: %+v vs %+v", stored, user)
	}
}

func TestUserCreateKeepsSuppliedFields(t *testing.T) {
	svc, _ := newUserService()
	user, err := svc.Create(UserCreateInput{
		FullName:       "Dana Cruz",
		Email:          "dana@example.com",
		PhoneNumber:    "555-0101",
		OfficeLocation: "Building 4",
		Role:           domain.UserRoleAgent,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.PhoneNumber != "555-0101" || user.OfficeLocation != "Building 4" || user.Role != domain.UserRoleAgent {
		t.Fatalf("supplied fields overwritten: %+v", user)
	}
}

func TestUserCreateValidation(t *testing.T) {
	svc, _ := newUserService()
	cases := []UserCreateInput{
		{Email: "dana@example.com"},
		{FullName: "Dana Cruz"},
		{FullName: "  ", Email: "  "},
	}
	for _, input := range cases {
		_, err := svc.Create(input)
		if err == nil {
			t.Fatalf("expected validation error for %+v", input)
		}
		if status := apperrors.ToDomainError(err).HTTPStatus; status != 400 {
			t.Fatalf("expected 400, got %d", status)
		}
	}
}

func TestUserUpdateMerges(t *testing.T) {
	svc, repo := newUserService()
	repo.Seed([]domain.User{{
		ID:       "u1",
		FullName: "Dana Cruz",
		Email:    "dana@example.com",
		Role:     domain.UserRoleUser,
	}})

	updated, err := svc.Update("u1", []byte(`{"office_location":"Building 9"}`))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.OfficeLocation != "Building 9" {
		t.Fatalf("patched field missing: %+v", updated)
	}
	if updated.FullName != "Dana Cruz" || updated.Email != "dana@example.com" {
		t.Fatalf("unsupplied fields must survive the patch: %+v", updated)
	}
}

func TestUserGetAndUpdateNotFound(t *testing.T) {
	svc, _ := newUserService()

	if _, err := svc.Get("ghost"); err == nil {
		t.Fatalf("expected not found on get")
	}
	_, err := svc.Update("ghost", []byte(`{"full_name":"x"}`))
	if err == nil {
		t.Fatalf("expected not found on update")
	}
	domainErr := apperrors.ToDomainError(err)
	if domainErr.HTTPStatus != 404 || domainErr.Message != "User not found" {
		t.Fatalf("unexpected error: %d %q", domainErr.HTTPStatus, domainErr.Message)
	}
}
