package services

import (
	"errors"
	"strings"
	"time"

	"menucloud/entity"
	"menucloud/repository"
	"menucloud/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService issues and resolves opaque session tokens backed by the
// sessions table.
type AuthService struct {
	userRepo    *repository.UserRepository
	sessionRepo *repository.SessionRepository
	sessionTTL  time.Duration
}

func NewAuthService(userRepo *repository.UserRepository, sessionRepo *repository.SessionRepository, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		sessionTTL:  ttl,
	}
}

// Login verifies credentials and creates a session. Unknown email,
// soft-deleted user and wrong password all collapse into the same error.
func (s *AuthService) Login(email, password string) (*entity.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// burn a compare anyway so the timing doesn't confirm the email
			bcrypt.CompareHashAndPassword([]byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"), []byte(password))
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.NewSessionToken()
	if err != nil {
		return nil, "", err
	}

	session := &entity.Session{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ResolveSession maps a token back to its user. Expired sessions and
// sessions of soft-deleted users resolve to nothing.
func (s *AuthService) ResolveSession(token string) (*entity.User, error) {
	if token == "" {
		return nil, ErrInvalidCredentials
	}

	session, err := s.sessionRepo.FindByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if session.Expired(time.Now()) {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByID(session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}

// Logout deletes the session row. Unknown tokens are not an error.
func (s *AuthService) Logout(token string) error {
	if token == "" {
		return nil
	}
	return s.sessionRepo.DeleteByToken(token)
}

// SweepExpired removes stale session rows; run periodically.
func (s *AuthService) SweepExpired() (int64, error) {
	return s.sessionRepo.DeleteExpired(time.Now())
}

func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}
