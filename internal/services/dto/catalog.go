package dto

import "fitstream_backend/internal/repositories"

// CourseDetailResponse is a decorated course plus its decorated
// lessons.
type CourseDetailResponse struct {
	repositories.CourseWithState
	Lessons []repositories.LessonWithState `json:"lessons"`
}

type UpdatePositionRequest struct {
	PositionSeconds int `json:"position_seconds" binding:"min=0"`
}

// ToggleResponse reports the new value of the flag that was flipped.
type ToggleResponse struct {
	IsFavorite  *bool `json:"is_favorite,omitempty"`
	IsLiked     *bool `json:"is_liked,omitempty"`
	IsCompleted *bool `json:"is_completed,omitempty"`
}

type PositionResponse struct {
	LastPositionSeconds int `json:"last_position_seconds"`
}
