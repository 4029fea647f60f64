package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/clubops/club-manager/internal/errdef"
	"github.com/clubops/club-manager/pkg/model"
	"gorm.io/gorm"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) create(ctx context.Context, event *model.Event) error {
	err := r.db.WithContext(ctx).Create(event).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errdef.NewDuplicated("event %q already exists", event.Title)
	}
	return err
}

func (r repository) findById(ctx context.Context, id uint) (*model.Event, error) {
	var event *model.Event
	err := r.db.
		WithContext(ctx).
		Preload("Receipts").
		Preload("Expenses").
		Preload("Vendors").
		First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find event with id %d", id)
	}
	return event, err
}

func (r repository) findAll(ctx context.Context, orderByDate bool) ([]*model.Event, error) {
	order := "id"
	if orderByDate {
		order = "date, id"
	}

	var events []*model.Event
	err := r.db.
		WithContext(ctx).
		Preload("Receipts").
		Preload("Expenses").
		Preload("Vendors").
		Order(order).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find all events: %v", err)
	}

	return events, nil
}

// update writes only the named columns so the ledger collections and the
// derived spending survive every edit.
func (r repository) update(ctx context.Context, event *model.Event, columns ...string) error {
	err := r.db.
		WithContext(ctx).
		Model(event).
		Select(columns).
		Updates(event).Error
	if err != nil {
		return fmt.Errorf("failed to update event with id %d: %v", event.ID, err)
	}
	return nil
}

func (r repository) delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("event_id = ?", id).Delete(&model.Attendee{}).Error
		if err != nil {
			return fmt.Errorf("failed to delete roster of event with id %d: %v", id, err)
		}

		db := tx.Unscoped().Delete(&model.Event{}, id)
		if db.Error != nil {
			return fmt.Errorf("failed to delete event with id %d: %v", id, db.Error)
		} else if db.RowsAffected < 1 {
			return errdef.NewNotFound("failed to find event with id %d", id)
		}

		return nil
	})
}
