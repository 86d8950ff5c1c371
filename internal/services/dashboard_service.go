package services

import (
	"fitstream_backend/internal/models"
	"fitstream_backend/internal/repositories"
	"fitstream_backend/internal/services/dto"
	"fitstream_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const dashboardEventLimit = 3

type DashboardService interface {
	GetDashboard(db *gorm.DB, userID string) (*dto.DashboardResponse, error)
	ListEvents(db *gorm.DB) ([]dto.DashboardEvent, error)
}

type DashboardServiceImpl struct {
	userRepo       repositories.UserRepository
	eventRepo      repositories.EventRepository
	userCourseRepo repositories.UserCourseRepository
}

func NewDashboardService(
	userRepo repositories.UserRepository,
	eventRepo repositories.EventRepository,
	userCourseRepo repositories.UserCourseRepository,
) DashboardService {
	return &DashboardServiceImpl{
		userRepo:       userRepo,
		eventRepo:      eventRepo,
		userCourseRepo: userCourseRepo,
	}
}

func (s *DashboardServiceImpl) GetDashboard(db *gorm.DB, userID string) (*dto.DashboardResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	events, err := s.eventRepo.FindUpcoming(db, dashboardEventLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	activeCourses, err := s.userCourseRepo.CountByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.DashboardResponse{
		User: dto.DashboardUser{
			Name:      user.Name,
			Email:     user.Email,
			AvatarURL: user.AvatarURL,
		},
		Events: toDashboardEvents(events),
		Stats: dto.DashboardStats{
			ActiveCourses: activeCourses,
		},
	}, nil
}

func (s *DashboardServiceImpl) ListEvents(db *gorm.DB) ([]dto.DashboardEvent, error) {
	events, err := s.eventRepo.FindActive(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toDashboardEvents(events), nil
}

func toDashboardEvents(events []models.Event) []dto.DashboardEvent {
	out := make([]dto.DashboardEvent, 0, len(events))
	for _, e := range events {
		out = append(out, dto.DashboardEvent{
			ID:    e.ID,
			Title: e.Title,
			Date:  e.EventDate,
			Type:  e.EventType,
		})
	}
	return out
}
