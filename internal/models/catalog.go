package models

// Course and Lesson are read-only catalog entities; user state lives in
// UserCourse / UserLesson.

type Course struct {
	BaseModel
	Title          string `gorm:"not null" json:"title"`
	Description    string `json:"description"`
	ThumbnailURL   string `json:"thumbnail_url"`
	ThumbnailColor string `json:"thumbnail_color"`
	Status         string `gorm:"type:varchar(20);default:'published'" json:"status"`
	OrderIndex     int    `gorm:"default:0" json:"order_index"`

	Lessons []Lesson `gorm:"foreignKey:CourseID" json:"lessons,omitempty"`
}

type Lesson struct {
	BaseModel
	CourseID        string `gorm:"type:uuid;not null;index" json:"course_id"`
	Title           string `gorm:"not null" json:"title"`
	Description     string `json:"description"`
	VideoURL        string `json:"video_url"`
	ThumbnailURL    string `json:"thumbnail_url"`
	DurationSeconds int    `gorm:"default:0" json:"duration_seconds"`
	OrderIndex      int    `gorm:"default:0" json:"order_index"`
	IsFree          bool   `gorm:"default:false" json:"is_free"`
}
