package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"ceremonia/internal/model"
	"ceremonia/internal/repository"
)

// DashboardSummary is the numeric header of the dashboard.
type DashboardSummary struct {
	TotalEvents  int     `json:"totalEvents"`
	ActiveEvents int     `json:"activeEvents"`
	TotalSpent   float64 `json:"totalSpent"`
	Currency     string  `json:"currency"`
	MediaCount   int     `json:"mediaCount"`
	QRCodes      int     `json:"qrCodes"`
}

// ActivityItem is one entry of the merged recent-activity feed.
type ActivityItem struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount,omitempty"`
	Currency    string    `json:"currency,omitempty"`
	Date        string    `json:"date,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Status      string    `json:"status"`
}

// QuickAction is a suggested next call shown on the dashboard.
type QuickAction struct {
	Label    string `json:"label"`
	Endpoint string `json:"endpoint"`
	Method   string `json:"method"`
}

// DashboardData is the full dashboard payload.
type DashboardData struct {
	User           *model.User         `json:"user"`
	Summary        DashboardSummary    `json:"summary"`
	Subscription   *model.Subscription `json:"subscription"`
	UpcomingEvents []model.Event       `json:"upcomingEvents"`
	RecentActivity []ActivityItem      `json:"recentActivity"`
	QuickActions   []QuickAction       `json:"quickActions"`
}

var quickActions = []QuickAction{
	{Label: "Create an event", Endpoint: "/api/v1/events", Method: "POST"},
	{Label: "Generate QR code", Endpoint: "/api/v1/events/:id/qrcode", Method: "POST"},
	{Label: "View invoices", Endpoint: "/api/v1/invoices", Method: "GET"},
	{Label: "Upgrade plan", Endpoint: "/api/v1/subscriptions/create", Method: "POST"},
}

// DashboardService builds the read-side aggregation for a user.
type DashboardService interface {
	Summary(ctx context.Context, userID int) (*DashboardData, error)
}

type dashboardService struct {
	users    repository.UserRepository
	events   repository.EventRepository
	payments repository.PaymentRepository
	subs     repository.SubscriptionRepository
	media    repository.MediaRepository
	qrCodes  repository.QRCodeRepository
	logger   zerolog.Logger
}

// NewDashboardService creates a new DashboardService with a scoped logger.
func NewDashboardService(
	users repository.UserRepository,
	events repository.EventRepository,
	payments repository.PaymentRepository,
	subs repository.SubscriptionRepository,
	media repository.MediaRepository,
	qrCodes repository.QRCodeRepository,
	logger zerolog.Logger,
) DashboardService {
	return &dashboardService{
		users:    users,
		events:   events,
		payments: payments,
		subs:     subs,
		media:    media,
		qrCodes:  qrCodes,
		logger:   logger.With().Str("service", "DashboardService").Logger(),
	}
}

func (s *dashboardService) Summary(ctx context.Context, userID int) (*DashboardData, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	events, err := s.events.ListByUser(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sub, err := s.subs.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	media, err := s.media.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	eventIDs := make([]int, 0, len(events))
	activeEvents := 0
	for _, e := range events {
		eventIDs = append(eventIDs, e.ID)
		if e.Status == model.EventStatusConfirmed {
			activeEvents++
		}
	}
	qrCount, err := s.qrCodes.CountByEvents(ctx, eventIDs)
	if err != nil {
		return nil, err
	}

	var totalSpent float64
	for _, p := range payments {
		if p.Successful() {
			totalSpent += p.Amount
		}
	}

	return &DashboardData{
		User: user,
		Summary: DashboardSummary{
			TotalEvents:  len(events),
			ActiveEvents: activeEvents,
			TotalSpent:   totalSpent,
			Currency:     "USD",
			MediaCount:   len(media),
			QRCodes:      qrCount,
		},
		Subscription:   sub,
		UpcomingEvents: upcomingEvents(events, time.Now().UTC()),
		RecentActivity: recentActivity(payments, events),
		QuickActions:   quickActions,
	}, nil
}

// upcomingEvents keeps confirmed events whose date is today or later.
func upcomingEvents(events []model.Event, now time.Time) []model.Event {
	today := now.Truncate(24 * time.Hour)
	result := []model.Event{}
	for _, e := range events {
		if e.Status != model.EventStatusConfirmed {
			continue
		}
		date, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			continue
		}
		if !date.Before(today) {
			result = append(result, e)
		}
	}
	return result
}

// recentActivity merges the last 3 payments and last 2 events into a single
// feed sorted by timestamp descending.
func recentActivity(payments []model.Payment, events []model.Event) []ActivityItem {
	feed := []ActivityItem{}
	for _, p := range lastPayments(payments, 3) {
		feed = append(feed, ActivityItem{
			Type:        "payment",
			Description: p.Description,
			Amount:      p.Amount,
			Currency:    p.Currency,
			Timestamp:   p.Timestamp,
			Status:      p.Status,
		})
	}
	for _, e := range lastEvents(events, 2) {
		feed = append(feed, ActivityItem{
			Type:        "event",
			Description: e.Name,
			Date:        e.Date,
			Timestamp:   e.CreatedAt,
			Status:      e.Status,
		})
	}
	sort.Slice(feed, func(i, j int) bool {
		return feed[i].Timestamp.After(feed[j].Timestamp)
	})
	return feed
}

func lastPayments(payments []model.Payment, n int) []model.Payment {
	if len(payments) > n {
		return payments[len(payments)-n:]
	}
	return payments
}

func lastEvents(events []model.Event, n int) []model.Event {
	if len(events) > n {
		return events[len(events)-n:]
	}
	return events
}
