package model

import "time"

// EventCategory is the closed set of calendar tags an event can carry.
type EventCategory string

const (
	CategoryMeeting      EventCategory = "meeting"
	CategoryEvent        EventCategory = "event"
	CategoryDeadline     EventCategory = "deadline"
	CategoryDues         EventCategory = "dues"
	CategorySocial       EventCategory = "social"
	CategoryPhilanthropy EventCategory = "philanthropy"
	CategoryFormal       EventCategory = "formal"
)

func (c EventCategory) IsValid() bool {
	switch c {
	case CategoryMeeting, CategoryEvent, CategoryDeadline, CategoryDues, CategorySocial, CategoryPhilanthropy, CategoryFormal:
		return true
	}
	return false
}

// EventStatus is the lifecycle status of an event.
type EventStatus string

const (
	StatusPlanning   EventStatus = "planning"
	StatusInProgress EventStatus = "in-progress"
	StatusCompleted  EventStatus = "completed"
)

func (s EventStatus) IsValid() bool {
	switch s {
	case StatusPlanning, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Event domain object defining a scheduled club activity and its ledger.
// ActualSpending is derived from the receipts and never set directly.
// swagger:model
type Event struct {
	ID                uint          `gorm:"primarykey" json:"id"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
	Title             string        `json:"title"`
	Slug              string        `gorm:"index" json:"slug"`
	Date              time.Time     `gorm:"index" json:"date"`
	StartTime         string        `json:"startTime,omitempty"`
	Category          EventCategory `json:"category"`
	Location          string        `json:"location,omitempty"`
	AttendeesExpected *uint         `json:"attendeesExpected,omitempty"`
	Budget            float64       `json:"budget"`
	ActualSpending    float64       `json:"actualSpending"`
	Description       string        `json:"description,omitempty"`
	Status            EventStatus   `json:"status"`
	BudgetCategory    string        `gorm:"index" json:"budgetCategory"`
	Published         bool          `json:"published"`
	Receipts          []Receipt     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"receipts"`
	Expenses          []Expense     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"expenses"`
	Vendors           []Vendor      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"vendors"`
}

// SumReceipts is the single source of truth for an event's actual spending.
func (e *Event) SumReceipts() float64 {
	var sum float64
	for _, r := range e.Receipts {
		sum += r.Amount
	}
	return sum
}

// Utilization is the raw spending/budget ratio. It may exceed 1 which signals
// overspend; 0 if no budget is set.
func (e *Event) Utilization() float64 {
	if e.Budget == 0 {
		return 0
	}
	return e.ActualSpending / e.Budget
}

// Receipt is a recorded, already-incurred cost line item. Receipts are
// append-only.
// swagger:model
type Receipt struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	EventID   uint      `gorm:"index" json:"eventId"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Category  string    `json:"category,omitempty"`
	ImageKey  string    `json:"imageKey,omitempty"`
}

// ExpenseStatus is the review status of a reimbursement request.
type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "pending"
	ExpenseApproved ExpenseStatus = "approved"
	ExpenseRejected ExpenseStatus = "rejected"
)

// CanTransitionTo reports whether the status machine allows moving to next.
// Approved and rejected are terminal.
func (s ExpenseStatus) CanTransitionTo(next ExpenseStatus) bool {
	switch s {
	case ExpensePending:
		return next == ExpenseApproved || next == ExpenseRejected
	case ExpenseApproved, ExpenseRejected:
		return false
	}
	return false
}

// Expense is a reimbursement request. It is distinct from a receipt and does
// not contribute to the event's actual spending.
// swagger:model
type Expense struct {
	ID          uint          `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time     `json:"createdAt"`
	EventID     uint          `gorm:"index" json:"eventId"`
	Description string        `json:"description"`
	Amount      float64       `json:"amount"`
	Category    string        `json:"category,omitempty"`
	SubmittedBy string        `json:"submittedBy"`
	Status      ExpenseStatus `json:"status"`
}

// VendorStatus is the invitation status of a vendor.
type VendorStatus string

const (
	VendorInvited   VendorStatus = "invited"
	VendorConfirmed VendorStatus = "confirmed"
	VendorDeclined  VendorStatus = "declined"
)

func (s VendorStatus) IsValid() bool {
	switch s {
	case VendorInvited, VendorConfirmed, VendorDeclined:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status machine allows moving to next.
// Confirmed and declined are terminal.
func (s VendorStatus) CanTransitionTo(next VendorStatus) bool {
	switch s {
	case VendorInvited:
		return next == VendorConfirmed || next == VendorDeclined
	case VendorConfirmed, VendorDeclined:
		return false
	}
	return false
}

// Vendor is an external party invited to serve an event.
// swagger:model
type Vendor struct {
	ID        uint         `gorm:"primarykey" json:"id"`
	CreatedAt time.Time    `json:"createdAt"`
	EventID   uint         `gorm:"index" json:"eventId"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Category  string       `json:"category,omitempty"`
	Status    VendorStatus `json:"status"`
}
