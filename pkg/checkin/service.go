package checkin

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/clubops/club-manager/internal/errdef"
	"github.com/clubops/club-manager/pkg/model"
	"github.com/clubops/club-manager/pkg/notification"
)

func NewService(logger *slog.Logger, repository attendeeRepository, tokens tokenStore, broker notifier, baseURL string) *Service {
	return &Service{
		logger:     logger,
		repository: repository,
		tokens:     tokens,
		broker:     broker,
		baseURL:    baseURL,
	}
}

type attendeeRepository interface {
	createAttendee(ctx context.Context, attendee *model.Attendee) error
	findAttendee(ctx context.Context, eventID, attendeeID uint) (*model.Attendee, error)
	findAll(ctx context.Context, eventID uint) ([]*model.Attendee, error)
	search(ctx context.Context, eventID uint, term string) ([]*model.Attendee, error)
	saveCheckIn(ctx context.Context, attendee *model.Attendee) error
	counts(ctx context.Context, eventID uint) (total, checkedIn int64, err error)
}

type tokenStore interface {
	SetCurrentToken(eventID uint, token string, issuedAt time.Time) error
	GetCurrentToken(eventID uint) (string, time.Time, error)
	RemoveSession(eventID uint) error
}

type notifier interface {
	Publish(outcome notification.Outcome)
}

type Service struct {
	logger     *slog.Logger
	repository attendeeRepository
	tokens     tokenStore
	broker     notifier
	baseURL    string
}

// Session is the current self-check-in credential of one event.
// swagger:model
type Session struct {
	EventID  uint      `json:"eventId"`
	Token    string    `json:"token"`
	IssuedAt time.Time `json:"issuedAt"`
	Link     string    `json:"link"`
}

// IssueToken generates a fresh opaque token and records it as the event's
// current one. Any previously issued token is superseded and will be rejected
// by ValidateToken from here on.
func (s Service) IssueToken(ctx context.Context, eventID uint) (*Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	issuedAt := time.Now()
	if err := s.tokens.SetCurrentToken(eventID, token, issuedAt); err != nil {
		return nil, fmt.Errorf("failed to store check-in token for event %d: %v", eventID, err)
	}

	s.broker.Publish(notification.Outcome{Type: "token-issued", Message: fmt.Sprintf("event %d", eventID)})

	return s.session(eventID, token, issuedAt), nil
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate check-in token: %v", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

func (s Service) session(eventID uint, token string, issuedAt time.Time) *Session {
	return &Session{
		EventID:  eventID,
		Token:    token,
		IssuedAt: issuedAt,
		Link:     fmt.Sprintf("%s/checkin/%d/%s", s.baseURL, eventID, token),
	}
}

// GetLink returns the event's current check-in link.
func (s Service) GetLink(ctx context.Context, eventID uint) (*Session, error) {
	token, issuedAt, err := s.tokens.GetCurrentToken(eventID)
	if err != nil {
		return nil, err
	}
	return s.session(eventID, token, issuedAt), nil
}

// ValidateToken rejects any token that is not the event's current one,
// including tokens that were valid before a later IssueToken call.
func (s Service) ValidateToken(ctx context.Context, eventID uint, token string) error {
	current, _, err := s.tokens.GetCurrentToken(eventID)
	if errdef.IsNotFound(err) {
		return errdef.NewUnauthorized("no check-in session is active for event with id %d", eventID)
	}
	if err != nil {
		return err
	}

	if token != current {
		return errdef.NewUnauthorized("check-in token has been superseded")
	}

	return nil
}

// RemoveSession invalidates the event's current token, if any.
func (s Service) RemoveSession(eventID uint) error {
	return s.tokens.RemoveSession(eventID)
}

// CheckIn marks an attendee present. Checking in an attendee who is already
// checked in just refreshes the check-in time.
func (s Service) CheckIn(ctx context.Context, eventID, attendeeID uint) (*model.Attendee, error) {
	attendee, err := s.repository.findAttendee(ctx, eventID, attendeeID)
	if err != nil {
		return nil, err
	}

	if err := s.checkIn(ctx, attendee); err != nil {
		return nil, err
	}

	return attendee, nil
}

func (s Service) checkIn(ctx context.Context, attendee *model.Attendee) error {
	now := time.Now()
	attendee.CheckedIn = true
	attendee.CheckInTime = &now
	if err := s.repository.saveCheckIn(ctx, attendee); err != nil {
		return err
	}

	s.broker.Publish(notification.Outcome{Type: "attendee-checked-in", Message: attendee.Name})

	return nil
}

// CheckOut reverses a check-in. Checking out an attendee who is not checked
// in is a no-op, not an error.
func (s Service) CheckOut(ctx context.Context, eventID, attendeeID uint) (*model.Attendee, error) {
	attendee, err := s.repository.findAttendee(ctx, eventID, attendeeID)
	if err != nil {
		return nil, err
	}

	if !attendee.CheckedIn {
		return attendee, nil
	}

	attendee.CheckedIn = false
	attendee.CheckInTime = nil
	if err := s.repository.saveCheckIn(ctx, attendee); err != nil {
		return nil, err
	}

	s.broker.Publish(notification.Outcome{Type: "attendee-checked-out", Message: attendee.Name})

	return attendee, nil
}

// ManualCheckIn resolves a name query against the roster. The first match in
// roster order is checked in; with no match a walk-in guest is created
// already checked in. The match count is returned so callers can surface
// ambiguous queries.
func (s Service) ManualCheckIn(ctx context.Context, eventID uint, nameQuery string) (*model.Attendee, int, error) {
	if strings.TrimSpace(nameQuery) == "" {
		return nil, 0, errdef.NewValidation("name query is required")
	}

	roster, err := s.repository.findAll(ctx, eventID)
	if err != nil {
		return nil, 0, err
	}

	var matches []*model.Attendee
	query := strings.ToLower(nameQuery)
	for _, attendee := range roster {
		if strings.Contains(strings.ToLower(attendee.Name), query) {
			matches = append(matches, attendee)
		}
	}

	if len(matches) == 0 {
		now := time.Now()
		walkIn := &model.Attendee{
			EventID:     eventID,
			Name:        nameQuery,
			TicketType:  model.TicketGuest,
			CheckedIn:   true,
			CheckInTime: &now,
		}
		if err := s.repository.createAttendee(ctx, walkIn); err != nil {
			return nil, 0, err
		}

		s.broker.Publish(notification.Outcome{Type: "walk-in-checked-in", Message: walkIn.Name})

		return walkIn, 0, nil
	}

	if len(matches) > 1 {
		s.logger.WarnContext(ctx, "Ambiguous manual check-in query", "query", nameQuery, "matches", len(matches))
	}

	attendee := matches[0]
	if err := s.checkIn(ctx, attendee); err != nil {
		return nil, 0, err
	}

	return attendee, len(matches), nil
}

// ScanCheckIn is the operation behind the distributed check-in link. The
// token has to be the event's current one.
func (s Service) ScanCheckIn(ctx context.Context, eventID uint, token string, attendeeID uint) (*model.Attendee, error) {
	if err := s.ValidateToken(ctx, eventID, token); err != nil {
		return nil, err
	}
	return s.CheckIn(ctx, eventID, attendeeID)
}

// AttendanceRate is the rounded percentage of checked-in attendees. An empty
// roster reads as 0.
func (s Service) AttendanceRate(ctx context.Context, eventID uint) (int, error) {
	total, checkedIn, err := s.repository.counts(ctx, eventID)
	if err != nil {
		return 0, err
	}

	if total == 0 {
		return 0, nil
	}

	return int(math.Round(float64(checkedIn) / float64(total) * 100)), nil
}

// Search returns roster entries whose name or email contains the term.
func (s Service) Search(ctx context.Context, eventID uint, term string) ([]*model.Attendee, error) {
	return s.repository.search(ctx, eventID, term)
}

// FindAll returns the event's full roster.
func (s Service) FindAll(ctx context.Context, eventID uint) ([]*model.Attendee, error) {
	return s.repository.findAll(ctx, eventID)
}

// AddAttendee registers an attendee on the roster ahead of the event.
func (s Service) AddAttendee(ctx context.Context, eventID uint, name, email string, ticketType model.TicketType) (*model.Attendee, error) {
	if name == "" {
		return nil, errdef.NewValidation("attendee name is required")
	}
	if ticketType == "" {
		ticketType = model.TicketMember
	}
	if !ticketType.IsValid() {
		return nil, errdef.NewValidation("unknown ticket type %q", ticketType)
	}

	attendee := &model.Attendee{
		EventID:    eventID,
		Name:       name,
		Email:      email,
		TicketType: ticketType,
	}
	if err := s.repository.createAttendee(ctx, attendee); err != nil {
		return nil, err
	}

	return attendee, nil
}
