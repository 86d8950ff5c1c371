package services

import (
	"fmt"
	"time"

	"fitstream_backend/internal/auth"
	"fitstream_backend/internal/config"
	"fitstream_backend/internal/email"
	"fitstream_backend/internal/logger"
	"fitstream_backend/internal/models"
	"fitstream_backend/internal/repositories"
	"fitstream_backend/internal/services/dto"
	"fitstream_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const resetTokenTTL = 1 * time.Hour

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error)
	ForgotPassword(db *gorm.DB, emailAddr string) error
	ResetPassword(db *gorm.DB, token, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo       repositories.UserRepository
	resetTokenRepo repositories.ResetTokenRepository
	emailProvider  email.Provider
	cfg            *config.Config
}

func NewAuthService(
	userRepo repositories.UserRepository,
	resetTokenRepo repositories.ResetTokenRepository,
	emailProvider email.Provider,
	cfg *config.Config,
) AuthService {
	return &AuthServiceImpl{
		userRepo:       userRepo,
		resetTokenRepo: resetTokenRepo,
		emailProvider:  emailProvider,
		cfg:            cfg,
	}
}

func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if len(req.Password) < 6 {
		return nil, apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return s.buildAuthResponse(user)
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Same error as a wrong password: no enumeration signal.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildAuthResponse(user)
}

func (s *AuthServiceImpl) GetProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProfileResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}, nil
}

// ForgotPassword never reports whether the email exists; the handler
// returns the same generic success either way.
func (s *AuthServiceImpl) ForgotPassword(db *gorm.DB, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	resetToken, err := auth.GenerateResetToken()
	if err != nil {
		return apperrors.InternalError(err)
	}

	// A new token supersedes any prior ones for the user.
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.resetTokenRepo.DeleteByUserID(tx, user.ID); err != nil {
			return err
		}
		return s.resetTokenRepo.Create(tx, &models.PasswordResetToken{
			UserID:    user.ID,
			Token:     resetToken,
			ExpiresAt: time.Now().Add(resetTokenTTL),
		})
	})
	if err != nil {
		return apperrors.InternalError(err)
	}

	s.sendPasswordResetEmail(user, resetToken)

	return nil
}

func (s *AuthServiceImpl) ResetPassword(db *gorm.DB, token, newPassword string) error {
	if len(newPassword) < 6 {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	// Password overwrite and token consumption are one logical unit;
	// the transaction re-reads the token so two concurrent resets
	// cannot both succeed.
	err = db.Transaction(func(tx *gorm.DB) error {
		resetToken, err := s.resetTokenRepo.FindByToken(tx, token)
		if err != nil {
			if apperrors.Is(err, repositories.ErrResetTokenNotFound) {
				return apperrors.ErrResetTokenNotFound
			}
			return err
		}

		if resetToken.Used {
			return apperrors.ErrResetTokenUsed
		}
		if time.Now().After(resetToken.ExpiresAt) {
			return apperrors.ErrResetTokenExpired
		}

		if err := s.userRepo.UpdatePassword(tx, resetToken.UserID, hashedPassword); err != nil {
			return err
		}
		return s.resetTokenRepo.MarkUsed(tx, resetToken.ID)
	})
	if err != nil {
		if _, ok := apperrors.AsAppError(err); ok {
			return err
		}
		return apperrors.InternalError(err)
	}

	return nil
}

// --- Helpers ---

func (s *AuthServiceImpl) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	ttl := time.Duration(s.cfg.JWT.TTLHours) * time.Hour
	token, err := auth.GenerateToken(user.ID, user.Email, user.Name, s.cfg.JWT.Secret, ttl)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token: token,
		User: dto.UserDTO{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			AvatarURL: user.AvatarURL,
		},
	}, nil
}

// sendPasswordResetEmail dispatches asynchronously; delivery failures
// are logged and never fail the request.
func (s *AuthServiceImpl) sendPasswordResetEmail(user *models.User, token string) {
	if s.emailProvider == nil {
		return
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.App.FrontendURL, token)

	go func() {
		if err := s.emailProvider.SendPasswordReset(user.Email, user.Name, resetLink, token); err != nil {
			logger.Warn("Failed to send password reset email", "error", err.Error(), "email", user.Email)
		}
	}()
}
