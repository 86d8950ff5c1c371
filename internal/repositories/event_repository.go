package repositories

import (
	"time"

	"fitstream_backend/internal/models"

	"gorm.io/gorm"
)

type EventRepository interface {
	FindActive(db *gorm.DB) ([]models.Event, error)
	FindUpcoming(db *gorm.DB, limit int) ([]models.Event, error)
}

type EventRepositoryImpl struct{}

func NewEventRepository() EventRepository {
	return &EventRepositoryImpl{}
}

func (r *EventRepositoryImpl) FindActive(db *gorm.DB) ([]models.Event, error) {
	var events []models.Event
	err := db.Where("is_active = ?", true).
		Order("event_date ASC").
		Find(&events).Error
	return events, err
}

func (r *EventRepositoryImpl) FindUpcoming(db *gorm.DB, limit int) ([]models.Event, error) {
	var events []models.Event
	err := db.Where("is_active = ? AND event_date >= ?", true, time.Now()).
		Order("event_date ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}
