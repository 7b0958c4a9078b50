package store

import (
	"sync"

	"ceremonia/internal/model"
)

// Store is the process-lifetime in-memory database. All state lives here and
// is lost on restart; there is no persistence layer behind it. The embedded
// RWMutex guards every table because net/http serves requests concurrently.
// Repositories take the lock; nothing outside internal/repository should
// touch the tables directly.
type Store struct {
	sync.RWMutex

	Users         []model.User
	Events        []model.Event
	Payments      []model.Payment
	Subscriptions []model.Subscription
	Invoices      []model.Invoice
	QRCodes       []model.QRCode
	Media         []model.Media
}

// New returns an empty store. Tests use this for isolation.
func New() *Store {
	return &Store{}
}

// Counts returns the current number of rows per table, for the health
// endpoint.
func (s *Store) Counts() map[string]int {
	s.RLock()
	defer s.RUnlock()
	return map[string]int{
		"users":         len(s.Users),
		"events":        len(s.Events),
		"payments":      len(s.Payments),
		"subscriptions": len(s.Subscriptions),
		"invoices":      len(s.Invoices),
		"qrCodes":       len(s.QRCodes),
		"media":         len(s.Media),
	}
}
