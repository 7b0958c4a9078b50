package repository

import (
	"context"

	"ceremonia/internal/model"
	"ceremonia/internal/store"
)

// QRCodeRepository defines methods for accessing QR code records. An event
// holds at most one code; Save replaces the existing record in place so a
// regenerated code fully supersedes the old one.
type QRCodeRepository interface {
	GetByEvent(ctx context.Context, eventID int) (*model.QRCode, error)
	Save(ctx context.Context, qr *model.QRCode) error
	CountByEvents(ctx context.Context, eventIDs []int) (int, error)
}

type qrCodeRepo struct {
	db *store.Store
}

// NewQRCodeRepo creates a new QRCodeRepository.
func NewQRCodeRepo(db *store.Store) QRCodeRepository {
	return &qrCodeRepo{db: db}
}

func (r *qrCodeRepo) GetByEvent(_ context.Context, eventID int) (*model.QRCode, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	for i := range r.db.QRCodes {
		if r.db.QRCodes[i].EventID == eventID {
			qr := r.db.QRCodes[i]
			return &qr, nil
		}
	}
	return nil, nil
}

func (r *qrCodeRepo) Save(_ context.Context, qr *model.QRCode) error {
	r.db.Lock()
	defer r.db.Unlock()
	for i := range r.db.QRCodes {
		if r.db.QRCodes[i].EventID == qr.EventID {
			qr.ID = r.db.QRCodes[i].ID
			r.db.QRCodes[i] = *qr
			return nil
		}
	}
	qr.ID = len(r.db.QRCodes) + 1
	r.db.QRCodes = append(r.db.QRCodes, *qr)
	return nil
}

func (r *qrCodeRepo) CountByEvents(_ context.Context, eventIDs []int) (int, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	ids := make(map[int]struct{}, len(eventIDs))
	for _, id := range eventIDs {
		ids[id] = struct{}{}
	}
	count := 0
	for i := range r.db.QRCodes {
		if _, ok := ids[r.db.QRCodes[i].EventID]; ok {
			count++
		}
	}
	return count, nil
}
