// services/session_service.go
package services

import (
	"errors"
	"log"
	"time"

	"stampcard-backend/models"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// SessionDuration is how long a login session lives.
const SessionDuration = 7 * 24 * time.Hour

// ErrNoSession: no live session for the given id.
var ErrNoSession = errors.New("no valid session")

type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

// Create starts a new session for the user, expiring in 7 days.
func (s *SessionService) Create(userID uuid.UUID) (*models.Session, error) {
	session := models.Session{
		UserID:    userID,
		ExpiresAt: time.Now().Add(SessionDuration),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// Resolve returns the admin user behind a non-expired session. Expired rows
// are never returned; they are removed separately by the sweep.
func (s *SessionService) Resolve(sessionID uuid.UUID) (*models.AdminUser, error) {
	var user models.AdminUser
	err := s.db.
		Joins("JOIN sessions ON sessions.user_id = admin_users.id").
		Where("sessions.id = ? AND sessions.expires_at > ?", sessionID, time.Now()).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	return &user, nil
}

// Destroy deletes the session. Deleting a session that does not exist is
// not an error.
func (s *SessionService) Destroy(sessionID uuid.UUID) error {
	return s.db.Delete(&models.Session{}, "id = ?", sessionID).Error
}

// DeleteExpired removes expired session rows and returns how many went.
func (s *SessionService) DeleteExpired() (int64, error) {
	result := s.db.Delete(&models.Session{}, "expires_at <= ?", time.Now())
	return result.RowsAffected, result.Error
}

// StartCleanupScheduler sweeps expired sessions daily. Lookups already
// exclude expired rows, so this is storage hygiene only.
func (s *SessionService) StartCleanupScheduler() *cron.Cron {
	c := cron.New()

	c.AddFunc("0 3 * * *", func() {
		removed, err := s.DeleteExpired()
		if err != nil {
			log.Printf("Session sweep failed: %v", err)
			return
		}
		if removed > 0 {
			log.Printf("Session sweep removed %d expired sessions", removed)
		}
	})

	c.Start()
	log.Println("Session cleanup scheduler started")
	return c
}
