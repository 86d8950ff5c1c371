package repositories

import (
	"errors"

	"fitstream_backend/internal/models"

	"gorm.io/gorm"
)

type UserCourseRepository interface {
	FindByUserAndCourse(db *gorm.DB, userID, courseID string) (*models.UserCourse, error)
	// UpsertProgress overwrites the progress percentage for the
	// (user, course) pair, creating the row on first write.
	UpsertProgress(db *gorm.DB, userID, courseID string, percentage float64) error
	CountByUser(db *gorm.DB, userID string) (int64, error)
}

type UserCourseRepositoryImpl struct{}

func NewUserCourseRepository() UserCourseRepository {
	return &UserCourseRepositoryImpl{}
}

func (r *UserCourseRepositoryImpl) FindByUserAndCourse(db *gorm.DB, userID, courseID string) (*models.UserCourse, error) {
	var uc models.UserCourse
	err := db.First(&uc, "user_id = ? AND course_id = ?", userID, courseID).Error
	if err != nil {
		return nil, err
	}
	return &uc, nil
}

func (r *UserCourseRepositoryImpl) UpsertProgress(db *gorm.DB, userID, courseID string, percentage float64) error {
	var existing models.UserCourse
	err := db.First(&existing, "user_id = ? AND course_id = ?", userID, courseID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return db.Create(&models.UserCourse{
			UserID:             userID,
			CourseID:           courseID,
			ProgressPercentage: percentage,
		}).Error
	}

	return db.Model(&existing).Update("progress_percentage", percentage).Error
}

func (r *UserCourseRepositoryImpl) CountByUser(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.UserCourse{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
