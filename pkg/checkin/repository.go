package checkin

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

func (r repository) createAttendee(ctx context.Context, attendee *model.Attendee) error {
	return r.db.WithContext(ctx).Create(attendee).Error
}

func (r repository) findAttendee(ctx context.Context, eventID, attendeeID uint) (*model.Attendee, error) {
	var attendee model.Attendee
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		First(&attendee, attendeeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find attendee with id %d on event %d", attendeeID, eventID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find attendee: %v", err)
	}
	return &attendee, nil
}

// findAll returns the roster in insertion order.
func (r repository) findAll(ctx context.Context, eventID uint) ([]*model.Attendee, error) {
	var attendees []*model.Attendee
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("id").
		Find(&attendees).Error
	return attendees, err
}

func (r repository) search(ctx context.Context, eventID uint, term string) ([]*model.Attendee, error) {
	pattern := "%" + term + "%"
	var attendees []*model.Attendee
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Where("name ILIKE ? OR email ILIKE ?", pattern, pattern).
		Order("id").
		Find(&attendees).Error
	return attendees, err
}

func (r repository) saveCheckIn(ctx context.Context, attendee *model.Attendee) error {
	return r.db.WithContext(ctx).
		Model(attendee).
		Select("checked_in", "check_in_time").
		Updates(attendee).Error
}

func (r repository) counts(ctx context.Context, eventID uint) (total, checkedIn int64, err error) {
	err = r.db.WithContext(ctx).
		Model(&model.Attendee{}).
		Where("event_id = ?", eventID).
		Count(&total).Error
	if err != nil {
		return 0, 0, err
	}

	err = r.db.WithContext(ctx).
		Model(&model.Attendee{}).
		Where("event_id = ? AND checked_in = ?", eventID, true).
		Count(&checkedIn).Error
	if err != nil {
		return 0, 0, err
	}

	return total, checkedIn, nil
}
