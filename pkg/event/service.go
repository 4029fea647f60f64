package event

import (
	"context"
	"time"

	"github.com/clubops/club-manager/internal/errdef"
	"github.com/clubops/club-manager/pkg/model"
	"github.com/gosimple/slug"
)

func NewService(repository eventRepository, sessions sessionRemover) *Service {
	return &Service{
		repository: repository,
		sessions:   sessions,
	}
}

type eventRepository interface {
	create(ctx context.Context, event *model.Event) error
	findById(ctx context.Context, id uint) (*model.Event, error)
	findAll(ctx context.Context, orderByDate bool) ([]*model.Event, error)
	update(ctx context.Context, event *model.Event, columns ...string) error
	delete(ctx context.Context, id uint) error
}

// sessionRemover tears down the check-in session of a deleted event.
type sessionRemover interface {
	RemoveSession(eventID uint) error
}

type Service struct {
	repository eventRepository
	sessions   sessionRemover
}

// mutableColumns are the event fields an edit is allowed to replace. Receipts,
// expenses, vendors and the derived spending are deliberately absent.
var mutableColumns = []string{
	"title", "slug", "date", "start_time", "category", "location",
	"attendees_expected", "budget", "description", "status",
	"budget_category", "published",
}

func (s Service) Create(ctx context.Context, event *model.Event) error {
	if err := validate(event); err != nil {
		return err
	}

	if event.Category == "" {
		event.Category = model.CategoryEvent
	}
	event.Slug = slug.Make(event.Title)
	event.Status = model.StatusPlanning
	event.ActualSpending = 0
	event.Receipts = nil
	event.Expenses = nil
	event.Vendors = nil

	return s.repository.create(ctx, event)
}

func validate(event *model.Event) error {
	if event.Title == "" {
		return errdef.NewValidation("title is required")
	}
	if event.Date.IsZero() {
		return errdef.NewValidation("date is required")
	}
	if event.Budget < 0 {
		return errdef.NewValidation("budget can't be negative")
	}
	if event.Category != "" && !event.Category.IsValid() {
		return errdef.NewValidation("unknown category %q", event.Category)
	}
	if event.Status != "" && !event.Status.IsValid() {
		return errdef.NewValidation("unknown status %q", event.Status)
	}
	return nil
}

// Update replaces the mutable fields of an event. Money already recorded
// against the event is never reset by an edit.
func (s Service) Update(ctx context.Context, id uint, updated *model.Event) (*model.Event, error) {
	if err := validate(updated); err != nil {
		return nil, err
	}

	event, err := s.repository.findById(ctx, id)
	if err != nil {
		return nil, err
	}

	event.Title = updated.Title
	event.Slug = slug.Make(updated.Title)
	event.Date = updated.Date
	event.StartTime = updated.StartTime
	event.Category = updated.Category
	event.Location = updated.Location
	event.AttendeesExpected = updated.AttendeesExpected
	event.Budget = updated.Budget
	event.Description = updated.Description
	event.BudgetCategory = updated.BudgetCategory
	event.Published = updated.Published
	if updated.Status != "" {
		event.Status = updated.Status
	}
	if event.Category == "" {
		event.Category = model.CategoryEvent
	}

	err = s.repository.update(ctx, event, mutableColumns...)
	if err != nil {
		return nil, err
	}

	return event, nil
}

// TogglePublish flips the visibility flag and nothing else.
func (s Service) TogglePublish(ctx context.Context, id uint) (*model.Event, error) {
	event, err := s.repository.findById(ctx, id)
	if err != nil {
		return nil, err
	}

	event.Published = !event.Published

	err = s.repository.update(ctx, event, "published")
	if err != nil {
		return nil, err
	}

	return event, nil
}

func (s Service) FindById(ctx context.Context, id uint) (*model.Event, error) {
	return s.repository.findById(ctx, id)
}

func (s Service) FindAll(ctx context.Context, orderByDate bool) ([]*model.Event, error) {
	return s.repository.findAll(ctx, orderByDate)
}

// Delete removes the event, its ledger and its check-in session.
func (s Service) Delete(ctx context.Context, id uint) error {
	err := s.repository.delete(ctx, id)
	if err != nil {
		return err
	}

	return s.sessions.RemoveSession(id)
}

// Upcoming returns published events on or after the given day, soonest first.
func (s Service) Upcoming(ctx context.Context, from time.Time) ([]*model.Event, error) {
	events, err := s.repository.findAll(ctx, true)
	if err != nil {
		return nil, err
	}

	day := from.Truncate(24 * time.Hour)
	upcoming := make([]*model.Event, 0, len(events))
	for _, event := range events {
		if event.Published && !event.Date.Before(day) {
			upcoming = append(upcoming, event)
		}
	}
	return upcoming, nil
}
