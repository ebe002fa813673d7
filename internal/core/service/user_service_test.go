package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/campstead/reservation-api/internal/core/domain"
)

func seedUser(t *testing.T, repo *stubUserRepo, username, password string) *domain.User {
	t.Helper()
	hash, err := hashPassword(password)
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	user, err := repo.Create(context.Background(), &domain.User{
		Username:     username,
		FirstName:    "First",
		LastName:     "Last",
		PasswordHash: hash,
		Role:         domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	return user
}

func TestUserService_GetByUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)
	seeded := seedUser(t, repo, "erin", "pass")

	user, err := svc.GetByUsername(context.Background(), "erin")
	if err != nil {
		t.Fatalf("GetByUsername returned error: %v", err)
	}
	if user.ID != seeded.ID {
		t.Errorf("expected user %d, got %d", seeded.ID, user.ID)
	}

	if _, err := svc.GetByUsername(context.Background(), "nobody"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Update_SelectiveFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)
	user := seedUser(t, repo, "frank", "original")

	updated, err := svc.Update(context.Background(), user.ID, domain.UserUpdate{FirstName: "Franklin"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.FirstName != "Franklin" {
		t.Errorf("expected first name %q, got %q", "Franklin", updated.FirstName)
	}
	if updated.Username != "frank" || updated.LastName != "Last" {
		t.Error("untouched fields changed")
	}
	if updated.PasswordHash != user.PasswordHash {
		t.Error("password hash changed without a new password")
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)
	user := seedUser(t, repo, "grace", "old-pass")

	updated, err := svc.Update(context.Background(), user.ID, domain.UserUpdate{Password: "new-pass"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.PasswordHash == "new-pass" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new-pass")); err != nil {
		t.Fatalf("stored hash does not match new password: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("old-pass")) == nil {
		t.Error("old password still verifies")
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)

	if _, err := svc.Update(context.Background(), 999, domain.UserUpdate{FirstName: "X"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)
	user := seedUser(t, repo, "heidi", "pass")

	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}
