package rollup

import (
	"context"
	"time"

	"github.com/clubops/club-manager/pkg/model"
	"gorm.io/gorm"
)

func NewRepository(db *gorm.DB) *repository {
	return &repository{db: db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) findAll(ctx context.Context) ([]*model.Event, error) {
	var events []*model.Event
	err := r.db.WithContext(ctx).Find(&events).Error
	return events, err
}

func (r repository) findByDate(ctx context.Context, date time.Time) ([]*model.Event, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	var events []*model.Event
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", day, day.AddDate(0, 0, 1)).
		Find(&events).Error
	return events, err
}
