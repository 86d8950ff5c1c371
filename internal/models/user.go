package models

import "time"

type User struct {
	BaseModel
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	AvatarURL    string `json:"avatar_url"`

	ResetTokens []PasswordResetToken `gorm:"foreignKey:UserID" json:"-"`
}

// PasswordResetToken is single-use: issuing a new one deletes prior
// tokens for the user, and Used flips exactly once on a successful
// reset.
type PasswordResetToken struct {
	BaseModel
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Used      bool      `gorm:"default:false" json:"used"`
}
