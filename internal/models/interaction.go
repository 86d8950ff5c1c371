package models

import "time"

// UserLesson holds a user's state for one lesson. The composite unique
// index guarantees at most one row per (user, lesson) pair; all writes
// go through an upsert, never an append.
type UserLesson struct {
	BaseModel
	UserID              string     `gorm:"type:uuid;not null;uniqueIndex:idx_user_lesson" json:"user_id"`
	LessonID            string     `gorm:"type:uuid;not null;uniqueIndex:idx_user_lesson" json:"lesson_id"`
	IsFavorite          bool       `gorm:"default:false" json:"is_favorite"`
	IsLiked             bool       `gorm:"default:false" json:"is_liked"`
	IsCompleted         bool       `gorm:"default:false" json:"is_completed"`
	CompletedAt         *time.Time `json:"completed_at"`
	LastPositionSeconds int        `gorm:"default:0" json:"last_position_seconds"`
}

// UserCourse holds the derived progress percentage for one (user,
// course) pair. Recomputed in place on every completion change.
type UserCourse struct {
	BaseModel
	UserID             string  `gorm:"type:uuid;not null;uniqueIndex:idx_user_course" json:"user_id"`
	CourseID           string  `gorm:"type:uuid;not null;uniqueIndex:idx_user_course" json:"course_id"`
	ProgressPercentage float64 `gorm:"default:0" json:"progress_percentage"`
	IsFavorite         bool    `gorm:"default:false" json:"is_favorite"`
}
