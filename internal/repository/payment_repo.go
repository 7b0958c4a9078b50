package repository

import (
	"context"

	"ceremonia/internal/model"
	"ceremonia/internal/store"
)

// PaymentRepository defines methods for accessing payments and their derived
// invoices. Invoices live here because they are generated 1:1 with
// successful payments and never written from anywhere else.
type PaymentRepository interface {
	Create(ctx context.Context, p *model.Payment) error
	GetByTransactionID(ctx context.Context, transactionID string) (*model.Payment, error)
	ListByUser(ctx context.Context, userID int) ([]model.Payment, error)
	Count(ctx context.Context) (int, error)

	CreateInvoice(ctx context.Context, inv *model.Invoice) error
	InvoiceCount(ctx context.Context) (int, error)
	ListInvoicesByUser(ctx context.Context, userID int) ([]model.Invoice, error)
}

type paymentRepo struct {
	db *store.Store
}

// NewPaymentRepo creates a new PaymentRepository over the in-memory store.
func NewPaymentRepo(db *store.Store) PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Create(_ context.Context, p *model.Payment) error {
	r.db.Lock()
	defer r.db.Unlock()
	p.ID = len(r.db.Payments) + 1
	r.db.Payments = append(r.db.Payments, *p)
	return nil
}

func (r *paymentRepo) GetByTransactionID(_ context.Context, transactionID string) (*model.Payment, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	for i := range r.db.Payments {
		if r.db.Payments[i].TransactionID == transactionID {
			p := r.db.Payments[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *paymentRepo) ListByUser(_ context.Context, userID int) ([]model.Payment, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	var result []model.Payment
	for i := range r.db.Payments {
		if r.db.Payments[i].UserID == userID {
			result = append(result, r.db.Payments[i])
		}
	}
	return result, nil
}

func (r *paymentRepo) Count(_ context.Context) (int, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	return len(r.db.Payments), nil
}

func (r *paymentRepo) CreateInvoice(_ context.Context, inv *model.Invoice) error {
	r.db.Lock()
	defer r.db.Unlock()
	inv.ID = len(r.db.Invoices) + 1
	r.db.Invoices = append(r.db.Invoices, *inv)
	return nil
}

func (r *paymentRepo) InvoiceCount(_ context.Context) (int, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	return len(r.db.Invoices), nil
}

func (r *paymentRepo) ListInvoicesByUser(_ context.Context, userID int) ([]model.Invoice, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	var result []model.Invoice
	for i := range r.db.Invoices {
		if r.db.Invoices[i].UserID == userID {
			result = append(result, r.db.Invoices[i])
		}
	}
	return result, nil
}
