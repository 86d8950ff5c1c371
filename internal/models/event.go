package models

import "time"

type Event struct {
	BaseModel
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	EventDate   time.Time `gorm:"not null;index" json:"event_date"`
	EventType   string    `gorm:"type:varchar(30)" json:"event_type"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
}
