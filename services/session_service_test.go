package services

import (
	"errors"
	"testing"
	"time"

	"stampcard-backend/models"

	"github.com/google/uuid"
)

func newTestAdmin(t *testing.T, svc *SessionService, email string) *models.AdminUser {
	t.Helper()
	user := models.AdminUser{
		Email:        email,
		PasswordHash: "x",
		Role:         models.RoleSuperuser,
	}
	if err := svc.db.Create(&user).Error; err != nil {
		t.Fatalf("create admin: %v", err)
	}
	return &user
}

func TestSessionCreateAndResolve(t *testing.T) {
	db := newTestDB(t)
	sessions := NewSessionService(db)
	user := newTestAdmin(t, sessions, "admin@example.com")

	session, err := sessions.Create(user.ID)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	remaining := time.Until(session.ExpiresAt)
	if remaining < SessionDuration-time.Minute || remaining > SessionDuration {
		t.Errorf("expected ~7 day expiry, got %v", remaining)
	}

	resolved, err := sessions.Resolve(session.ID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.ID != user.ID {
		t.Errorf("resolved wrong user")
	}
}

func TestSessionResolveUnknown(t *testing.T) {
	db := newTestDB(t)
	sessions := NewSessionService(db)

	if _, err := sessions.Resolve(uuid.New()); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestSessionResolveExpired(t *testing.T) {
	db := newTestDB(t)
	sessions := NewSessionService(db)
	user := newTestAdmin(t, sessions, "admin@example.com")

	expired := models.Session{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	if err := db.Create(&expired).Error; err != nil {
		t.Fatalf("create expired session: %v", err)
	}

	if _, err := sessions.Resolve(expired.ID); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expired session must not resolve, got %v", err)
	}
}

func TestSessionDestroyIdempotent(t *testing.T) {
	db := newTestDB(t)
	sessions := NewSessionService(db)
	user := newTestAdmin(t, sessions, "admin@example.com")

	session, err := sessions.Create(user.ID)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	if err := sessions.Destroy(session.ID); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	// Destroying again is a no-op, not an error.
	if err := sessions.Destroy(session.ID); err != nil {
		t.Fatalf("second destroy should be idempotent: %v", err)
	}

	if _, err := sessions.Resolve(session.ID); !errors.Is(err, ErrNoSession) {
		t.Fatalf("destroyed session must not resolve, got %v", err)
	}
}

func TestDeleteExpiredSweepsOnlyExpiredRows(t *testing.T) {
	db := newTestDB(t)
	sessions := NewSessionService(db)
	user := newTestAdmin(t, sessions, "admin@example.com")

	live, err := sessions.Create(user.ID)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	expired := models.Session{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	if err := db.Create(&expired).Error; err != nil {
		t.Fatalf("create expired session: %v", err)
	}

	removed, err := sessions.DeleteExpired()
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if removed != 1 {
		t.Errorf("expected 1 swept session, got %d", removed)
	}

	if _, err := sessions.Resolve(live.ID); err != nil {
		t.Errorf("live session should survive the sweep: %v", err)
	}
}
