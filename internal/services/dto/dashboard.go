package dto

import "time"

type DashboardResponse struct {
	User   DashboardUser    `json:"user"`
	Events []DashboardEvent `json:"events"`
	Stats  DashboardStats   `json:"stats"`
}

type DashboardUser struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

type DashboardEvent struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
	Type  string    `json:"type"`
}

type DashboardStats struct {
	ActiveCourses int64 `json:"active_courses"`
}
