package repositories

import (
	"errors"

	"fitstream_backend/internal/models"

	"gorm.io/gorm"
)

var ErrLessonNotFound = errors.New("lesson not found")

// LessonWithState is a lesson row decorated with the requesting user's
// interaction flags.
type LessonWithState struct {
	ID                  string `json:"id"`
	CourseID            string `json:"course_id"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	VideoURL            string `json:"video_url"`
	ThumbnailURL        string `json:"thumbnail_url"`
	DurationSeconds     int    `json:"duration_seconds"`
	OrderIndex          int    `json:"order_index"`
	IsFree              bool   `json:"is_free"`
	IsCompleted         bool   `json:"is_completed"`
	IsFavorite          bool   `json:"is_favorite"`
	IsLiked             bool   `json:"is_liked"`
	LastPositionSeconds int    `json:"last_position_seconds"`
}

type LessonRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Lesson, error)
	FindByIDForUser(db *gorm.DB, userID, lessonID string) (*LessonWithState, error)
	FindByCourseForUser(db *gorm.DB, userID, courseID string) ([]LessonWithState, error)
}

type LessonRepositoryImpl struct{}

func NewLessonRepository() LessonRepository {
	return &LessonRepositoryImpl{}
}

const lessonStateSelect = `lessons.id, lessons.course_id, lessons.title, lessons.description,
	lessons.video_url, lessons.thumbnail_url, lessons.duration_seconds, lessons.order_index,
	lessons.is_free,
	COALESCE(ul.is_completed, false) AS is_completed,
	COALESCE(ul.is_favorite, false) AS is_favorite,
	COALESCE(ul.is_liked, false) AS is_liked,
	COALESCE(ul.last_position_seconds, 0) AS last_position_seconds`

func (r *LessonRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Lesson, error) {
	var lesson models.Lesson
	err := db.First(&lesson, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, err
	}
	return &lesson, nil
}

func (r *LessonRepositoryImpl) FindByIDForUser(db *gorm.DB, userID, lessonID string) (*LessonWithState, error) {
	var row LessonWithState
	result := db.Model(&models.Lesson{}).
		Select(lessonStateSelect).
		Joins("LEFT JOIN user_lessons ul ON ul.lesson_id = lessons.id AND ul.user_id = ?", userID).
		Where("lessons.id = ?", lessonID).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrLessonNotFound
	}
	return &row, nil
}

func (r *LessonRepositoryImpl) FindByCourseForUser(db *gorm.DB, userID, courseID string) ([]LessonWithState, error) {
	var rows []LessonWithState
	err := db.Model(&models.Lesson{}).
		Select(lessonStateSelect).
		Joins("LEFT JOIN user_lessons ul ON ul.lesson_id = lessons.id AND ul.user_id = ?", userID).
		Where("lessons.course_id = ?", courseID).
		Order("lessons.order_index ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
