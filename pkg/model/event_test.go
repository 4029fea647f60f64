package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent_SumReceipts(t *testing.T) {
	event := &Event{
		Receipts: []Receipt{
			{Amount: 250},
			{Amount: 400},
		},
	}

	assert.Equal(t, float64(650), event.SumReceipts())

	event.Receipts = append(event.Receipts, Receipt{Amount: 500})

	assert.Equal(t, float64(1150), event.SumReceipts())
}

func TestEvent_SumReceipts_Empty(t *testing.T) {
	event := &Event{}

	assert.Equal(t, float64(0), event.SumReceipts())
}

func TestEvent_Utilization(t *testing.T) {
	event := &Event{Budget: 1000, ActualSpending: 650}
	assert.Equal(t, 0.65, event.Utilization())

	overspent := &Event{Budget: 1000, ActualSpending: 1150}
	assert.InDelta(t, 1.15, overspent.Utilization(), 1e-9)

	noBudget := &Event{Budget: 0, ActualSpending: 100}
	assert.Equal(t, float64(0), noBudget.Utilization())
}

func TestEventCategory_IsValid(t *testing.T) {
	for _, c := range []EventCategory{CategoryMeeting, CategoryEvent, CategoryDeadline, CategoryDues, CategorySocial, CategoryPhilanthropy, CategoryFormal} {
		assert.True(t, c.IsValid(), string(c))
	}
	assert.False(t, EventCategory("party").IsValid())
	assert.False(t, EventCategory("").IsValid())
}

func TestEventStatus_IsValid(t *testing.T) {
	for _, s := range []EventStatus{StatusPlanning, StatusInProgress, StatusCompleted} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, EventStatus("done").IsValid())
}

func TestExpenseStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, ExpensePending.CanTransitionTo(ExpenseApproved))
	assert.True(t, ExpensePending.CanTransitionTo(ExpenseRejected))
	assert.False(t, ExpensePending.CanTransitionTo(ExpensePending))
	assert.False(t, ExpenseApproved.CanTransitionTo(ExpenseRejected))
	assert.False(t, ExpenseApproved.CanTransitionTo(ExpenseApproved))
	assert.False(t, ExpenseRejected.CanTransitionTo(ExpenseApproved))
}

func TestVendorStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, VendorInvited.CanTransitionTo(VendorConfirmed))
	assert.True(t, VendorInvited.CanTransitionTo(VendorDeclined))
	assert.False(t, VendorInvited.CanTransitionTo(VendorInvited))
	assert.False(t, VendorConfirmed.CanTransitionTo(VendorDeclined))
	assert.False(t, VendorDeclined.CanTransitionTo(VendorConfirmed))
}

func TestTicketType_IsValid(t *testing.T) {
	for _, tt := range []TicketType{TicketMember, TicketGuest, TicketVIP} {
		assert.True(t, tt.IsValid(), string(tt))
	}
	assert.False(t, TicketType("staff").IsValid())
}
