package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"ceremonia/internal/model"
	"ceremonia/internal/repository"
)

var ErrPlanLimitReached = errors.New("event limit reached for the free plan")

// Defaults applied to optional event fields, matching the public contract.
const (
	defaultEventTime   = "12:00"
	defaultEventTheme  = "classic"
	defaultEventGuests = 50
	defaultEventBudget = 5000
)

// Paris, the default location pin.
var defaultCoordinates = model.Coordinates{Lat: 48.8566, Lng: 2.3522}

// CreateEventParams are the fields accepted at event creation.
type CreateEventParams struct {
	Name     string
	Type     string
	Date     string
	Time     string
	Location string
	Theme    string
	Guests   int
	Budget   float64
}

// EventService handles event creation and listing.
type EventService interface {
	Create(ctx context.Context, userID int, p CreateEventParams) (*model.Event, error)
	// List returns the user's events (optionally filtered by status) and
	// the aggregate budget across them.
	List(ctx context.Context, userID int, status string) ([]model.Event, float64, error)
}

type eventService struct {
	events repository.EventRepository
	users  repository.UserRepository
	logger zerolog.Logger
}

// NewEventService creates a new EventService with a scoped logger.
func NewEventService(events repository.EventRepository, users repository.UserRepository, logger zerolog.Logger) EventService {
	return &eventService{
		events: events,
		users:  users,
		logger: logger.With().Str("service", "EventService").Logger(),
	}
}

// Create applies defaults, enforces the free-plan cap and assigns a
// generated access code.
func (s *eventService) Create(ctx context.Context, userID int, p CreateEventParams) (*model.Event, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if user.Plan == model.PlanFree {
		count, err := s.events.CountByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if count >= 1 {
			return nil, ErrPlanLimitReached
		}
	}

	nowTime := time.Now().UTC()
	event := &model.Event{
		Name:        p.Name,
		Type:        p.Type,
		Date:        p.Date,
		Time:        orDefault(p.Time, defaultEventTime),
		UserID:      userID,
		Plan:        user.Plan,
		Location:    p.Location,
		Coordinates: defaultCoordinates,
		Theme:       orDefault(p.Theme, defaultEventTheme),
		Guests:      p.Guests,
		Budget:      p.Budget,
		Currency:    "USD",
		Status:      model.EventStatusDraft,
		CreatedAt:   nowTime,
		UpdatedAt:   nowTime,
		AccessCode:  typePrefix(p.Type) + timestampSuffix(nowTime, 6),
	}
	if event.Guests == 0 {
		event.Guests = defaultEventGuests
	}
	if event.Budget == 0 {
		event.Budget = defaultEventBudget
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	s.logger.Info().Int("event_id", event.ID).Int("user_id", userID).Str("type", event.Type).Msg("Event created")
	return event, nil
}

func (s *eventService) List(ctx context.Context, userID int, status string) ([]model.Event, float64, error) {
	events, err := s.events.ListByUser(ctx, userID, status)
	if err != nil {
		return nil, 0, err
	}
	if events == nil {
		events = []model.Event{}
	}
	var totalBudget float64
	for _, e := range events {
		totalBudget += e.Budget
	}
	return events, totalBudget, nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
