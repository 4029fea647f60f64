package docs

import (
	"github.com/clubops/club-manager/pkg/model"
)

// swagger:parameters findEventById updateEvent deleteEvent togglePublish addReceipt addExpense addVendor issueToken getCheckInLink scanCheckIn manualCheckIn addAttendee findAllAttendees attendanceRate
type IdParam struct {
	// in: path
	// required: true
	ID uint `json:"id"`
}

// swagger:parameters approveExpense rejectExpense
type ExpenseIdParam struct {
	// in: path
	// required: true
	ExpenseID uint `json:"expenseId"`
}

// swagger:parameters updateVendorStatus
type VendorIdParam struct {
	// in: path
	// required: true
	VendorID uint `json:"vendorId"`
}

// swagger:parameters uploadReceiptImage downloadReceiptImage
type ReceiptIdParam struct {
	// in: path
	// required: true
	ReceiptID uint `json:"receiptId"`
}

// swagger:parameters checkIn checkOut
type AttendeeIdParam struct {
	// in: path
	// required: true
	AttendeeID uint `json:"attendeeId"`
}

// swagger:parameters byDate
type DateParam struct {
	// in: path
	// required: true
	Date string `json:"date"`
}

// swagger:response
type Error struct {
	// The error message
	//in: body
	Message string
}

// swagger:response Events
type Events struct {
	//in: body
	Events []model.Event
}

// swagger:response Attendees
type Attendees struct {
	//in: body
	Attendees []model.Attendee
}
