package repositories

import (
	"errors"

	"fitstream_backend/internal/models"

	"gorm.io/gorm"
)

var ErrResetTokenNotFound = errors.New("reset token not found")

type ResetTokenRepository interface {
	Create(db *gorm.DB, token *models.PasswordResetToken) error
	FindByToken(db *gorm.DB, token string) (*models.PasswordResetToken, error)
	// DeleteByUserID removes every token for the user so at most one
	// reset token is live at a time.
	DeleteByUserID(db *gorm.DB, userID string) error
	MarkUsed(db *gorm.DB, id string) error
}

type ResetTokenRepositoryImpl struct{}

func NewResetTokenRepository() ResetTokenRepository {
	return &ResetTokenRepositoryImpl{}
}

func (r *ResetTokenRepositoryImpl) Create(db *gorm.DB, token *models.PasswordResetToken) error {
	return db.Create(token).Error
}

func (r *ResetTokenRepositoryImpl) FindByToken(db *gorm.DB, token string) (*models.PasswordResetToken, error) {
	var t models.PasswordResetToken
	err := db.First(&t, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResetTokenNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *ResetTokenRepositoryImpl) DeleteByUserID(db *gorm.DB, userID string) error {
	return db.Where("user_id = ?", userID).Delete(&models.PasswordResetToken{}).Error
}

func (r *ResetTokenRepositoryImpl) MarkUsed(db *gorm.DB, id string) error {
	return db.Model(&models.PasswordResetToken{}).
		Where("id = ?", id).
		Update("used", true).Error
}
