package ledger

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

func (r repository) findEvent(ctx context.Context, id uint) (*model.Event, error) {
	var event *model.Event
	err := r.db.
		WithContext(ctx).
		Preload("Receipts").
		First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find event with id %d", id)
	}
	return event, err
}

func (r repository) createReceipt(ctx context.Context, receipt *model.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r repository) updateSpending(ctx context.Context, eventID uint, spending float64) error {
	err := r.db.
		WithContext(ctx).
		Model(&model.Event{}).
		Where("id = ?", eventID).
		Update("actual_spending", spending).Error
	if err != nil {
		return fmt.Errorf("failed to update spending of event with id %d: %v", eventID, err)
	}
	return nil
}

func (r repository) findReceipt(ctx context.Context, eventID, receiptID uint) (*model.Receipt, error) {
	var receipt *model.Receipt
	err := r.db.
		WithContext(ctx).
		Where("event_id = ?", eventID).
		First(&receipt, receiptID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find receipt with id %d on event %d", receiptID, eventID)
	}
	return receipt, err
}

func (r repository) updateReceiptImageKey(ctx context.Context, receipt *model.Receipt) error {
	err := r.db.
		WithContext(ctx).
		Model(receipt).
		Select("image_key").
		Updates(receipt).Error
	if err != nil {
		return fmt.Errorf("failed to update image of receipt with id %d: %v", receipt.ID, err)
	}
	return nil
}

func (r repository) createExpense(ctx context.Context, expense *model.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r repository) findExpense(ctx context.Context, eventID, expenseID uint) (*model.Expense, error) {
	var expense *model.Expense
	err := r.db.
		WithContext(ctx).
		Where("event_id = ?", eventID).
		First(&expense, expenseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find expense with id %d on event %d", expenseID, eventID)
	}
	return expense, err
}

func (r repository) updateExpenseStatus(ctx context.Context, expense *model.Expense) error {
	err := r.db.
		WithContext(ctx).
		Model(expense).
		Select("status").
		Updates(expense).Error
	if err != nil {
		return fmt.Errorf("failed to update status of expense with id %d: %v", expense.ID, err)
	}
	return nil
}

func (r repository) createVendor(ctx context.Context, vendor *model.Vendor) error {
	return r.db.WithContext(ctx).Create(vendor).Error
}

func (r repository) findVendor(ctx context.Context, eventID, vendorID uint) (*model.Vendor, error) {
	var vendor *model.Vendor
	err := r.db.
		WithContext(ctx).
		Where("event_id = ?", eventID).
		First(&vendor, vendorID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find vendor with id %d on event %d", vendorID, eventID)
	}
	return vendor, err
}

func (r repository) updateVendorStatus(ctx context.Context, vendor *model.Vendor) error {
	err := r.db.
		WithContext(ctx).
		Model(vendor).
		Select("status").
		Updates(vendor).Error
	if err != nil {
		return fmt.Errorf("failed to update status of vendor with id %d: %v", vendor.ID, err)
	}
	return nil
}
