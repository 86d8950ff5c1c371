package services

import (
	"time"

	"fitstream_backend/internal/logger"
	"fitstream_backend/internal/models"
	"fitstream_backend/internal/repositories"
	"fitstream_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// LessonService owns all per-(user, lesson) state changes. Every write
// is an upsert: one row per key pair, created lazily on the first
// interaction of any kind and updated in place afterwards.
type LessonService interface {
	ToggleFavorite(db *gorm.DB, userID, lessonID string) (bool, error)
	ToggleLike(db *gorm.DB, userID, lessonID string) (bool, error)
	ToggleComplete(db *gorm.DB, userID, lessonID string) (bool, error)
	UpdatePosition(db *gorm.DB, userID, lessonID string, seconds int) error
	RecomputeProgress(db *gorm.DB, userID, courseID string) error
}

type LessonServiceImpl struct {
	lessonRepo     repositories.LessonRepository
	courseRepo     repositories.CourseRepository
	userLessonRepo repositories.UserLessonRepository
	userCourseRepo repositories.UserCourseRepository
}

func NewLessonService(
	lessonRepo repositories.LessonRepository,
	courseRepo repositories.CourseRepository,
	userLessonRepo repositories.UserLessonRepository,
	userCourseRepo repositories.UserCourseRepository,
) LessonService {
	return &LessonServiceImpl{
		lessonRepo:     lessonRepo,
		courseRepo:     courseRepo,
		userLessonRepo: userLessonRepo,
		userCourseRepo: userCourseRepo,
	}
}

func (s *LessonServiceImpl) ToggleFavorite(db *gorm.DB, userID, lessonID string) (bool, error) {
	newValue, _, err := s.upsertToggle(db, userID, lessonID, func(state *models.UserLesson) bool {
		state.IsFavorite = !state.IsFavorite
		return state.IsFavorite
	})
	return newValue, err
}

func (s *LessonServiceImpl) ToggleLike(db *gorm.DB, userID, lessonID string) (bool, error) {
	newValue, _, err := s.upsertToggle(db, userID, lessonID, func(state *models.UserLesson) bool {
		state.IsLiked = !state.IsLiked
		return state.IsLiked
	})
	return newValue, err
}

// ToggleComplete flips completion, keeps CompletedAt in lockstep with
// the flag and recomputes course progress. A recompute failure is
// logged but never masks the toggle result.
func (s *LessonServiceImpl) ToggleComplete(db *gorm.DB, userID, lessonID string) (bool, error) {
	newValue, lesson, err := s.upsertToggle(db, userID, lessonID, func(state *models.UserLesson) bool {
		state.IsCompleted = !state.IsCompleted
		if state.IsCompleted {
			now := time.Now()
			state.CompletedAt = &now
		} else {
			state.CompletedAt = nil
		}
		return state.IsCompleted
	})
	if err != nil {
		return false, err
	}

	if err := s.RecomputeProgress(db, userID, lesson.CourseID); err != nil {
		logger.Warn("Failed to recompute course progress",
			"error", err.Error(),
			"user_id", userID,
			"course_id", lesson.CourseID,
		)
	}

	return newValue, nil
}

func (s *LessonServiceImpl) UpdatePosition(db *gorm.DB, userID, lessonID string, seconds int) error {
	if _, err := s.lessonRepo.FindByID(db, lessonID); err != nil {
		if apperrors.Is(err, repositories.ErrLessonNotFound) {
			return apperrors.ErrLessonNotFound
		}
		return apperrors.InternalError(err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		state, err := s.userLessonRepo.FindByUserAndLesson(tx, userID, lessonID)
		if err != nil {
			if !apperrors.Is(err, repositories.ErrUserLessonNotFound) {
				return err
			}
			return s.userLessonRepo.Create(tx, &models.UserLesson{
				UserID:              userID,
				LessonID:            lessonID,
				LastPositionSeconds: seconds,
			})
		}

		// Position is set, not toggled: overwrite unconditionally.
		state.LastPositionSeconds = seconds
		return s.userLessonRepo.Save(tx, state)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// RecomputeProgress derives the completion percentage for one (user,
// course) pair from lesson counts and overwrites the progress row.
func (s *LessonServiceImpl) RecomputeProgress(db *gorm.DB, userID, courseID string) error {
	total, err := s.courseRepo.CountLessons(db, courseID)
	if err != nil {
		return err
	}

	var percentage float64
	if total > 0 {
		completed, err := s.userLessonRepo.CountCompletedInCourse(db, userID, courseID)
		if err != nil {
			return err
		}
		percentage = float64(completed) / float64(total) * 100
	}

	return s.userCourseRepo.UpsertProgress(db, userID, courseID, percentage)
}

// upsertToggle runs the shared read-or-create-then-flip sequence in a
// transaction so concurrent togglers for the same key cannot create a
// second row. Returns the new flag value and the affected lesson.
func (s *LessonServiceImpl) upsertToggle(db *gorm.DB, userID, lessonID string, flip func(*models.UserLesson) bool) (bool, *models.Lesson, error) {
	lesson, err := s.lessonRepo.FindByID(db, lessonID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrLessonNotFound) {
			return false, nil, apperrors.ErrLessonNotFound
		}
		return false, nil, apperrors.InternalError(err)
	}

	var newValue bool
	err = db.Transaction(func(tx *gorm.DB) error {
		state, err := s.userLessonRepo.FindByUserAndLesson(tx, userID, lessonID)
		if err != nil {
			if !apperrors.Is(err, repositories.ErrUserLessonNotFound) {
				return err
			}
			state = &models.UserLesson{
				UserID:   userID,
				LessonID: lessonID,
			}
			newValue = flip(state)
			return s.userLessonRepo.Create(tx, state)
		}

		newValue = flip(state)
		return s.userLessonRepo.Save(tx, state)
	})
	if err != nil {
		return false, nil, apperrors.InternalError(err)
	}

	return newValue, lesson, nil
}
