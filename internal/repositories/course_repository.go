package repositories

import (
	"errors"

	"fitstream_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCourseNotFound = errors.New("course not found")

// CourseWithState is a course row decorated with the requesting user's
// progress. Absent user state defaults to zero values via COALESCE.
type CourseWithState struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	ThumbnailURL       string  `json:"thumbnail_url"`
	ThumbnailColor     string  `json:"thumbnail_color"`
	Status             string  `json:"status"`
	OrderIndex         int     `json:"order_index"`
	ProgressPercentage float64 `json:"progress_percentage"`
	IsFavorite         bool    `json:"is_favorite"`
}

type CourseRepository interface {
	FindAllForUser(db *gorm.DB, userID string) ([]CourseWithState, error)
	FindByIDForUser(db *gorm.DB, userID, courseID string) (*CourseWithState, error)
	CountLessons(db *gorm.DB, courseID string) (int64, error)
}

type CourseRepositoryImpl struct{}

func NewCourseRepository() CourseRepository {
	return &CourseRepositoryImpl{}
}

const courseStateSelect = `courses.id, courses.title, courses.description,
	courses.thumbnail_url, courses.thumbnail_color, courses.status, courses.order_index,
	COALESCE(uc.progress_percentage, 0) AS progress_percentage,
	COALESCE(uc.is_favorite, false) AS is_favorite`

func (r *CourseRepositoryImpl) FindAllForUser(db *gorm.DB, userID string) ([]CourseWithState, error) {
	var rows []CourseWithState
	err := db.Model(&models.Course{}).
		Select(courseStateSelect).
		Joins("LEFT JOIN user_courses uc ON uc.course_id = courses.id AND uc.user_id = ?", userID).
		Order("courses.order_index ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *CourseRepositoryImpl) FindByIDForUser(db *gorm.DB, userID, courseID string) (*CourseWithState, error) {
	var row CourseWithState
	result := db.Model(&models.Course{}).
		Select(courseStateSelect).
		Joins("LEFT JOIN user_courses uc ON uc.course_id = courses.id AND uc.user_id = ?", userID).
		Where("courses.id = ?", courseID).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrCourseNotFound
	}
	return &row, nil
}

func (r *CourseRepositoryImpl) CountLessons(db *gorm.DB, courseID string) (int64, error) {
	var count int64
	err := db.Model(&models.Lesson{}).Where("course_id = ?", courseID).Count(&count).Error
	return count, err
}
