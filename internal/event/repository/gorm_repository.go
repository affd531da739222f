package repository

import (
	"errors"
	"time"

	"planner-backend/internal/event/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormEventRepository implements EventRepository using GORM
type gormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GORM-based EventRepository
func NewGormEventRepository(db *gorm.DB) EventRepository {
	return &gormEventRepository{db: db}
}

func (r *gormEventRepository) Create(event *domain.Event) error {
	prepare(event)
	return r.db.Create(event).Error
}

func (r *gormEventRepository) CreateBatch(events []*domain.Event) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, event := range events {
			prepare(event)
			if err := tx.Create(event).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *gormEventRepository) FindByID(userID, id string) (*domain.Event, error) {
	var event domain.Event
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *gormEventRepository) FindByUserID(userID string, filter EventFilter) ([]*domain.Event, error) {
	events := []*domain.Event{}

	query := r.db.Model(&domain.Event{}).Where("user_id = ?", userID)
	if filter.Date != nil {
		query = query.Where("date = ?", *filter.Date)
	}
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Completed != nil {
		query = query.Where("completed = ?", *filter.Completed)
	}

	err := query.Order("date ASC, start_time ASC").Find(&events).Error
	return events, err
}

func (r *gormEventRepository) Update(event *domain.Event) error {
	event.UpdatedAt = time.Now()
	return r.db.Save(event).Error
}

func (r *gormEventRepository) Delete(userID, id string) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Event{})
	return result.RowsAffected > 0, result.Error
}

func prepare(event *domain.Event) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Category == "" {
		event.Category = domain.CategoryWork
	}
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
}
