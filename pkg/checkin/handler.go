package checkin

import (
	"context"
	"net/http"

	"github.com/clubops/club-manager/internal/handler"
	"github.com/clubops/club-manager/pkg/model"
	"github.com/gin-gonic/gin"
)

func NewHandler(checkinService checkinService) Handler {
	return Handler{checkinService}
}

type Handler struct {
	checkinService checkinService
}

type checkinService interface {
	IssueToken(ctx context.Context, eventID uint) (*Session, error)
	GetLink(ctx context.Context, eventID uint) (*Session, error)
	CheckIn(ctx context.Context, eventID, attendeeID uint) (*model.Attendee, error)
	CheckOut(ctx context.Context, eventID, attendeeID uint) (*model.Attendee, error)
	ManualCheckIn(ctx context.Context, eventID uint, nameQuery string) (*model.Attendee, int, error)
	ScanCheckIn(ctx context.Context, eventID uint, token string, attendeeID uint) (*model.Attendee, error)
	AttendanceRate(ctx context.Context, eventID uint) (int, error)
	Search(ctx context.Context, eventID uint, term string) ([]*model.Attendee, error)
	FindAll(ctx context.Context, eventID uint) ([]*model.Attendee, error)
	AddAttendee(ctx context.Context, eventID uint, name, email string, ticketType model.TicketType) (*model.Attendee, error)
}

// IssueToken for event
func (h Handler) IssueToken(c *gin.Context) {
	// swagger:route POST /events/{id}/checkin/token issueToken
	//
	// Issue check-in token
	//
	// Rotate the event's check-in token. Previously issued tokens stop
	// being accepted.
	//
	// responses:
	//   201: Session
	//   400: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	session, err := h.checkinService.IssueToken(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetLink of event
func (h Handler) GetLink(c *gin.Context) {
	// swagger:route GET /events/{id}/checkin/link getCheckInLink
	//
	// Get check-in link
	//
	// responses:
	//   200: Session
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	session, err := h.checkinService.GetLink(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, session)
}

type ScanCheckInRequest struct {
	Token      string `json:"token" binding:"required"`
	AttendeeID uint   `json:"attendeeId" binding:"required"`
}

// ScanCheckIn an attendee
func (h Handler) ScanCheckIn(c *gin.Context) {
	// swagger:route POST /events/{id}/checkin/scan scanCheckIn
	//
	// Check in via token
	//
	// Check in an attendee using the event's current check-in token.
	// Superseded tokens are rejected.
	//
	// responses:
	//   200: Attendee
	//   400: Error
	//   401: Error
	//   404: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request ScanCheckInRequest
	if err := handler.DataBinder(c, &request); err != nil {
		return
	}

	attendee, err := h.checkinService.ScanCheckIn(c.Request.Context(), id, request.Token, request.AttendeeID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, attendee)
}

type ManualCheckInRequest struct {
	Name string `json:"name" binding:"required"`
}

// ManualCheckInResponse carries the resolved attendee and how many roster
// entries matched the query.
// swagger:model
type ManualCheckInResponse struct {
	Attendee *model.Attendee `json:"attendee"`
	Matched  int             `json:"matched"`
}

// ManualCheckIn an attendee by name
func (h Handler) ManualCheckIn(c *gin.Context) {
	// swagger:route POST /events/{id}/checkin/manual manualCheckIn
	//
	// Manual check-in
	//
	// Check in the first roster entry whose name contains the query. With
	// no match a walk-in guest is created already checked in.
	//
	// responses:
	//   200: ManualCheckInResponse
	//   400: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request ManualCheckInRequest
	if err := handler.DataBinder(c, &request); err != nil {
		return
	}

	attendee, matched, err := h.checkinService.ManualCheckIn(c.Request.Context(), id, request.Name)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ManualCheckInResponse{Attendee: attendee, Matched: matched})
}

// CheckIn an attendee
func (h Handler) CheckIn(c *gin.Context) {
	// swagger:route POST /events/{id}/attendees/{attendeeId}/checkin checkIn
	//
	// Check in attendee
	//
	// Idempotent: re-checking in just refreshes the check-in time
	//
	// responses:
	//   200: Attendee
	//   400: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}
	attendeeID, ok := handler.GetPathParameter(c, "attendeeId")
	if !ok {
		return
	}

	attendee, err := h.checkinService.CheckIn(c.Request.Context(), id, attendeeID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, attendee)
}

// CheckOut an attendee
func (h Handler) CheckOut(c *gin.Context) {
	// swagger:route DELETE /events/{id}/attendees/{attendeeId}/checkin checkOut
	//
	// Check out attendee
	//
	// No-op if the attendee is not checked in
	//
	// responses:
	//   200: Attendee
	//   400: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}
	attendeeID, ok := handler.GetPathParameter(c, "attendeeId")
	if !ok {
		return
	}

	attendee, err := h.checkinService.CheckOut(c.Request.Context(), id, attendeeID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, attendee)
}

// AttendanceRateResponse is the rounded percentage of checked-in attendees.
// swagger:model
type AttendanceRateResponse struct {
	Rate int `json:"rate"`
}

// AttendanceRate of event
func (h Handler) AttendanceRate(c *gin.Context) {
	// swagger:route GET /events/{id}/attendance attendanceRate
	//
	// Attendance rate
	//
	// responses:
	//   200: AttendanceRateResponse
	//   400: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	rate, err := h.checkinService.AttendanceRate(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, AttendanceRateResponse{Rate: rate})
}

type AddAttendeeRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"omitempty,email"`
	TicketType string `json:"ticketType" binding:"omitempty,oneof=member guest vip"`
}

// AddAttendee to roster
func (h Handler) AddAttendee(c *gin.Context) {
	// swagger:route POST /events/{id}/attendees addAttendee
	//
	// Add attendee
	//
	// Register an attendee on the event's roster
	//
	// responses:
	//   201: Attendee
	//   400: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request AddAttendeeRequest
	if err := handler.DataBinder(c, &request); err != nil {
		return
	}

	attendee, err := h.checkinService.AddAttendee(c.Request.Context(), id, request.Name, request.Email, model.TicketType(request.TicketType))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, attendee)
}

// FindAllAttendees of event
func (h Handler) FindAllAttendees(c *gin.Context) {
	// swagger:route GET /events/{id}/attendees findAllAttendees
	//
	// List attendees
	//
	// The full roster, or the entries matching ?search= by name or email
	//
	// responses:
	//   200: []Attendee
	//   400: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	term := c.Query("search")

	var attendees []*model.Attendee
	var err error
	if term != "" {
		attendees, err = h.checkinService.Search(c.Request.Context(), id, term)
	} else {
		attendees, err = h.checkinService.FindAll(c.Request.Context(), id)
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, attendees)
}
