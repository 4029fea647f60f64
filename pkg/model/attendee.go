package model

import "time"

// TicketType is the closed set of ticket classes an attendee can hold.
type TicketType string

const (
	TicketMember TicketType = "member"
	TicketGuest  TicketType = "guest"
	TicketVIP    TicketType = "vip"
)

func (t TicketType) IsValid() bool {
	switch t {
	case TicketMember, TicketGuest, TicketVIP:
		return true
	}
	return false
}

// Attendee is a member of an event's check-in roster. The roster is keyed by
// event id but separate from the event record so attendance activity never
// mutates the event itself.
// swagger:model
type Attendee struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time  `json:"createdAt"`
	EventID     uint       `gorm:"index" json:"eventId"`
	Name        string     `json:"name"`
	Email       string     `json:"email,omitempty"`
	CheckedIn   bool       `json:"checkedIn"`
	CheckInTime *time.Time `json:"checkInTime,omitempty"`
	TicketType  TicketType `json:"ticketType"`
}
