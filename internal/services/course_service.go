package services

import (
	"fitstream_backend/internal/repositories"
	"fitstream_backend/internal/services/dto"
	"fitstream_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// CourseService is the read-only catalog path: courses and lessons
// decorated with the requesting user's state. No writes happen here.
type CourseService interface {
	ListCourses(db *gorm.DB, userID string) ([]repositories.CourseWithState, error)
	GetCourse(db *gorm.DB, userID, courseID string) (*dto.CourseDetailResponse, error)
	GetLesson(db *gorm.DB, userID, lessonID string) (*repositories.LessonWithState, error)
}

type CourseServiceImpl struct {
	courseRepo repositories.CourseRepository
	lessonRepo repositories.LessonRepository
}

func NewCourseService(
	courseRepo repositories.CourseRepository,
	lessonRepo repositories.LessonRepository,
) CourseService {
	return &CourseServiceImpl{
		courseRepo: courseRepo,
		lessonRepo: lessonRepo,
	}
}

func (s *CourseServiceImpl) ListCourses(db *gorm.DB, userID string) ([]repositories.CourseWithState, error) {
	courses, err := s.courseRepo.FindAllForUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return courses, nil
}

func (s *CourseServiceImpl) GetCourse(db *gorm.DB, userID, courseID string) (*dto.CourseDetailResponse, error) {
	course, err := s.courseRepo.FindByIDForUser(db, userID, courseID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	lessons, err := s.lessonRepo.FindByCourseForUser(db, userID, courseID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CourseDetailResponse{
		CourseWithState: *course,
		Lessons:         lessons,
	}, nil
}

func (s *CourseServiceImpl) GetLesson(db *gorm.DB, userID, lessonID string) (*repositories.LessonWithState, error) {
	lesson, err := s.lessonRepo.FindByIDForUser(db, userID, lessonID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrLessonNotFound) {
			return nil, apperrors.ErrLessonNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return lesson, nil
}
