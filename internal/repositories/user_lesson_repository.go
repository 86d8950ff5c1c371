package repositories

import (
	"errors"

	"fitstream_backend/internal/models"

	"gorm.io/gorm"
)

var ErrUserLessonNotFound = errors.New("user lesson state not found")

type UserLessonRepository interface {
	FindByUserAndLesson(db *gorm.DB, userID, lessonID string) (*models.UserLesson, error)
	Create(db *gorm.DB, state *models.UserLesson) error
	Save(db *gorm.DB, state *models.UserLesson) error
	CountCompletedInCourse(db *gorm.DB, userID, courseID string) (int64, error)
}

type UserLessonRepositoryImpl struct{}

func NewUserLessonRepository() UserLessonRepository {
	return &UserLessonRepositoryImpl{}
}

func (r *UserLessonRepositoryImpl) FindByUserAndLesson(db *gorm.DB, userID, lessonID string) (*models.UserLesson, error) {
	var state models.UserLesson
	err := db.First(&state, "user_id = ? AND lesson_id = ?", userID, lessonID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserLessonNotFound
		}
		return nil, err
	}
	return &state, nil
}

func (r *UserLessonRepositoryImpl) Create(db *gorm.DB, state *models.UserLesson) error {
	return db.Create(state).Error
}

func (r *UserLessonRepositoryImpl) Save(db *gorm.DB, state *models.UserLesson) error {
	return db.Save(state).Error
}

func (r *UserLessonRepositoryImpl) CountCompletedInCourse(db *gorm.DB, userID, courseID string) (int64, error) {
	var count int64
	err := db.Model(&models.UserLesson{}).
		Joins("JOIN lessons ON lessons.id = user_lessons.lesson_id").
		Where("user_lessons.user_id = ? AND lessons.course_id = ? AND user_lessons.is_completed = ?", userID, courseID, true).
		Count(&count).Error
	return count, err
}
