package repository

import (
	"time"

	"menucloud/entity"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(s *entity.Session) error {
	return r.DB.Create(s).Error
}

func (r *SessionRepository) FindByToken(token string) (*entity.Session, error) {
	var s entity.Session
	if err := r.DB.Where("token = ?", token).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteByToken is idempotent: deleting an absent token is not an error.
func (r *SessionRepository) DeleteByToken(token string) error {
	return r.DB.Where("token = ?", token).Delete(&entity.Session{}).Error
}

func (r *SessionRepository) DeleteForUser(userID uint) error {
	return r.DB.Where("user_id = ?", userID).Delete(&entity.Session{}).Error
}

func (r *SessionRepository) DeleteExpired(now time.Time) (int64, error) {
	res := r.DB.Where("expires_at <= ?", now).Delete(&entity.Session{})
	return res.RowsAffected, res.Error
}
