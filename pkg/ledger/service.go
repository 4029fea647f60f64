package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clubops/club-manager/internal/errdef"
	"github.com/clubops/club-manager/pkg/model"
	"github.com/clubops/club-manager/pkg/notification"
	"github.com/go-mail/mail"
)

func NewService(logger *slog.Logger, repository ledgerRepository, dialer dialer, reimbursements reimbursementPublisher, broker notifier) *Service {
	return &Service{
		logger:         logger,
		repository:     repository,
		dialer:         dialer,
		reimbursements: reimbursements,
		broker:         broker,
	}
}

type ledgerRepository interface {
	findEvent(ctx context.Context, id uint) (*model.Event, error)
	createReceipt(ctx context.Context, receipt *model.Receipt) error
	updateSpending(ctx context.Context, eventID uint, spending float64) error
	createExpense(ctx context.Context, expense *model.Expense) error
	findExpense(ctx context.Context, eventID, expenseID uint) (*model.Expense, error)
	updateExpenseStatus(ctx context.Context, expense *model.Expense) error
	createVendor(ctx context.Context, vendor *model.Vendor) error
	findVendor(ctx context.Context, eventID, vendorID uint) (*model.Vendor, error)
	updateVendorStatus(ctx context.Context, vendor *model.Vendor) error
}

type dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type reimbursementPublisher interface {
	Publish(ctx context.Context, expense model.Expense) error
}

type notifier interface {
	Publish(outcome notification.Outcome)
}

type Service struct {
	logger         *slog.Logger
	repository     ledgerRepository
	dialer         dialer
	reimbursements reimbursementPublisher
	broker         notifier
}

// AddReceipt appends a receipt and synchronously re-derives the event's
// actual spending from the full receipt collection.
func (s Service) AddReceipt(ctx context.Context, eventID uint, name string, amount float64, date time.Time, category string) (*model.Receipt, error) {
	if name == "" {
		return nil, errdef.NewValidation("receipt name is required")
	}
	if amount <= 0 {
		return nil, errdef.NewValidation("receipt amount must be positive")
	}

	event, err := s.repository.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	receipt := &model.Receipt{
		EventID:  event.ID,
		Name:     name,
		Amount:   amount,
		Date:     date,
		Category: category,
	}
	if err := s.repository.createReceipt(ctx, receipt); err != nil {
		return nil, err
	}

	event.Receipts = append(event.Receipts, *receipt)
	if err := s.repository.updateSpending(ctx, event.ID, event.SumReceipts()); err != nil {
		return nil, err
	}

	s.broker.Publish(notification.Outcome{Type: "receipt-added", Message: name})

	return receipt, nil
}

// AddExpense records a reimbursement request. Expenses never contribute to
// the event's actual spending; only receipts do.
func (s Service) AddExpense(ctx context.Context, eventID uint, description string, amount float64, category, submittedBy string) (*model.Expense, error) {
	if description == "" {
		return nil, errdef.NewValidation("expense description is required")
	}
	if amount <= 0 {
		return nil, errdef.NewValidation("expense amount must be positive")
	}
	if submittedBy == "" {
		return nil, errdef.NewValidation("expense submitter is required")
	}

	event, err := s.repository.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	expense := &model.Expense{
		EventID:     event.ID,
		Description: description,
		Amount:      amount,
		Category:    category,
		SubmittedBy: submittedBy,
		Status:      model.ExpensePending,
	}
	if err := s.repository.createExpense(ctx, expense); err != nil {
		return nil, err
	}

	s.broker.Publish(notification.Outcome{Type: "expense-submitted", Message: description})

	return expense, nil
}

// ApproveExpense advances a pending expense to approved and hands it to the
// reimbursement queue. It does not create a receipt; reconciling approved
// expenses into recorded spending is an external workflow.
func (s Service) ApproveExpense(ctx context.Context, eventID, expenseID uint) (*model.Expense, error) {
	expense, err := s.transitionExpense(ctx, eventID, expenseID, model.ExpenseApproved)
	if err != nil {
		return nil, err
	}

	if err := s.reimbursements.Publish(ctx, *expense); err != nil {
		// the approval itself stands; the queue consumer reconciles later
		s.logger.ErrorContext(ctx, "Failed to publish reimbursement request", "expenseId", expense.ID, "error", err)
	}

	s.broker.Publish(notification.Outcome{Type: "expense-approved", Message: expense.Description})

	return expense, nil
}

// RejectExpense advances a pending expense to the terminal rejected status.
func (s Service) RejectExpense(ctx context.Context, eventID, expenseID uint) (*model.Expense, error) {
	expense, err := s.transitionExpense(ctx, eventID, expenseID, model.ExpenseRejected)
	if err != nil {
		return nil, err
	}

	s.broker.Publish(notification.Outcome{Type: "expense-rejected", Message: expense.Description})

	return expense, nil
}

func (s Service) transitionExpense(ctx context.Context, eventID, expenseID uint, next model.ExpenseStatus) (*model.Expense, error) {
	expense, err := s.repository.findExpense(ctx, eventID, expenseID)
	if err != nil {
		return nil, err
	}

	if !expense.Status.CanTransitionTo(next) {
		return nil, errdef.NewConflict("expense with id %d is already %s", expenseID, expense.Status)
	}

	expense.Status = next
	if err := s.repository.updateExpenseStatus(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

// AddVendor invites a vendor to an event and sends the invitation email.
func (s Service) AddVendor(ctx context.Context, eventID uint, name, email, category string) (*model.Vendor, error) {
	if name == "" {
		return nil, errdef.NewValidation("vendor name is required")
	}
	if email == "" {
		return nil, errdef.NewValidation("vendor email is required")
	}

	event, err := s.repository.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	vendor := &model.Vendor{
		EventID:  event.ID,
		Name:     name,
		Email:    email,
		Category: category,
		Status:   model.VendorInvited,
	}

	if err := s.sendInvitationEmail(vendor, event); err != nil {
		return nil, fmt.Errorf("failed to send invitation email: %v", err)
	}

	if err := s.repository.createVendor(ctx, vendor); err != nil {
		return nil, err
	}

	s.broker.Publish(notification.Outcome{Type: "vendor-invited", Message: name})

	return vendor, nil
}

func (s Service) sendInvitationEmail(vendor *model.Vendor, event *model.Event) error {
	m := mail.NewMessage()
	m.SetHeader("From", "Club Manager <no-reply@clubops.io>")
	m.SetHeader("To", vendor.Email)
	m.SetHeader("Subject", fmt.Sprintf("Invitation: %s", event.Title))
	body := fmt.Sprintf("Hello %s, you have been invited to serve %q on %s. Please reply to confirm or decline.",
		vendor.Name, event.Title, event.Date.Format("2006-01-02"))
	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}

// UpdateVendorStatus moves a vendor from invited to confirmed or declined.
// Both target statuses are terminal.
func (s Service) UpdateVendorStatus(ctx context.Context, eventID, vendorID uint, status model.VendorStatus) (*model.Vendor, error) {
	if !status.IsValid() || status == model.VendorInvited {
		return nil, errdef.NewValidation("unknown vendor status %q", status)
	}

	vendor, err := s.repository.findVendor(ctx, eventID, vendorID)
	if err != nil {
		return nil, err
	}

	if !vendor.Status.CanTransitionTo(status) {
		return nil, errdef.NewConflict("vendor with id %d is already %s", vendorID, vendor.Status)
	}

	vendor.Status = status
	if err := s.repository.updateVendorStatus(ctx, vendor); err != nil {
		return nil, err
	}

	s.broker.Publish(notification.Outcome{Type: "vendor-" + string(status), Message: vendor.Name})

	return vendor, nil
}
