package event

import (
	"context"
	"net/http"
	"time"

	"github.com/clubops/club-manager/internal/errdef"
	"github.com/clubops/club-manager/internal/handler"
	"github.com/clubops/club-manager/pkg/model"
	"github.com/gin-gonic/gin"
)

func NewHandler(eventService eventService) Handler {
	return Handler{eventService}
}

type Handler struct {
	eventService eventService
}

type eventService interface {
	Create(ctx context.Context, event *model.Event) error
	Update(ctx context.Context, id uint, updated *model.Event) (*model.Event, error)
	TogglePublish(ctx context.Context, id uint) (*model.Event, error)
	FindById(ctx context.Context, id uint) (*model.Event, error)
	FindAll(ctx context.Context, orderByDate bool) ([]*model.Event, error)
	Delete(ctx context.Context, id uint) error
	Upcoming(ctx context.Context, from time.Time) ([]*model.Event, error)
}

type CreateEventRequest struct {
	Title             string  `json:"title" binding:"required"`
	Date              string  `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime         string  `json:"startTime" binding:"omitempty,hhmm"`
	Category          string  `json:"category" binding:"omitempty,oneof=meeting event deadline dues social philanthropy formal"`
	Location          string  `json:"location"`
	AttendeesExpected *uint   `json:"attendeesExpected"`
	Budget            float64 `json:"budget" binding:"gte=0"`
	Description       string  `json:"description"`
	BudgetCategory    string  `json:"budgetCategory"`
}

// Create event
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /events createEvent
	//
	// Create event
	//
	// Create an event with an empty ledger in status planning
	//
	// responses:
	//   201: Event
	//   400: Error
	//   415: Error
	var request CreateEventRequest

	if err := handler.DataBinder(c, &request); err != nil {
		return
	}

	event, err := toEvent(&request)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.eventService.Create(c.Request.Context(), event); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

func toEvent(request *CreateEventRequest) (*model.Event, error) {
	date, err := time.Parse("2006-01-02", request.Date)
	if err != nil {
		return nil, errdef.NewValidation("failed to parse date %q: %v", request.Date, err)
	}

	return &model.Event{
		Title:             request.Title,
		Date:              date,
		StartTime:         request.StartTime,
		Category:          model.EventCategory(request.Category),
		Location:          request.Location,
		AttendeesExpected: request.AttendeesExpected,
		Budget:            request.Budget,
		Description:       request.Description,
		BudgetCategory:    request.BudgetCategory,
	}, nil
}

type UpdateEventRequest struct {
	CreateEventRequest
	Status    string `json:"status" binding:"omitempty,oneof=planning in-progress completed"`
	Published bool   `json:"published"`
}

// Update event
func (h Handler) Update(c *gin.Context) {
	// swagger:route PUT /events/{id} updateEvent
	//
	// Update event
	//
	// Replace the mutable fields of an event. The receipts, expenses, vendors
	// and the recorded spending are preserved.
	//
	// responses:
	//   200: Event
	//   400: Error
	//   404: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request UpdateEventRequest
	if err := handler.DataBinder(c, &request); err != nil {
		return
	}

	updated, err := toEvent(&request.CreateEventRequest)
	if err != nil {
		_ = c.Error(err)
		return
	}
	updated.Status = model.EventStatus(request.Status)
	updated.Published = request.Published

	event, err := h.eventService.Update(c.Request.Context(), id, updated)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// TogglePublish event
func (h Handler) TogglePublish(c *gin.Context) {
	// swagger:route PUT /events/{id}/publish togglePublish
	//
	// Toggle publish
	//
	// Flip the visibility flag of an event. Budget and ledger state are untouched.
	//
	// responses:
	//   200: Event
	//   400: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.TogglePublish(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// FindById event
func (h Handler) FindById(c *gin.Context) {
	// swagger:route GET /events/{id} findEventById
	//
	// Find event
	//
	// Find an event by id, including its ledger
	//
	// responses:
	//   200: Event
	//   400: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.FindById(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// FindAll events
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /events findAllEvents
	//
	// Find all events
	//
	// List events in insertion order, or by date with ?order=date
	//
	// responses:
	//   200: Events
	//   400: Error
	orderByDate := c.Query("order") == "date"

	events, err := h.eventService.FindAll(c.Request.Context(), orderByDate)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// Upcoming events
func (h Handler) Upcoming(c *gin.Context) {
	// swagger:route GET /events/upcoming upcomingEvents
	//
	// Upcoming events
	//
	// Published events from today onward, ordered by date
	//
	// responses:
	//   200: Events
	events, err := h.eventService.Upcoming(c.Request.Context(), time.Now())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// Delete event
func (h Handler) Delete(c *gin.Context) {
	// swagger:route DELETE /events/{id} deleteEvent
	//
	// Delete event
	//
	// Delete an event, its ledger and its check-in session
	//
	// responses:
	//   204:
	//   400: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
