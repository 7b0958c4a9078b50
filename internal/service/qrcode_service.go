package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"ceremonia/internal/model"
	"ceremonia/internal/repository"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrPlanFeatureLimited = errors.New("QR code generation requires a paid plan")
)

// QRCodeService generates and regenerates event access QR codes.
type QRCodeService interface {
	// Generate returns the event's QR code. The second result is true when
	// an existing code was returned unchanged; with regenerate set, a new
	// code replaces the old one and the old code is no longer retrievable.
	Generate(ctx context.Context, userID, eventID int, qrType, customCode string, regenerate bool) (*model.QRCode, bool, error)
}

type qrCodeService struct {
	qrCodes repository.QRCodeRepository
	events  repository.EventRepository
	logger  zerolog.Logger
}

// NewQRCodeService creates a new QRCodeService with a scoped logger.
func NewQRCodeService(qrCodes repository.QRCodeRepository, events repository.EventRepository, logger zerolog.Logger) QRCodeService {
	return &qrCodeService{
		qrCodes: qrCodes,
		events:  events,
		logger:  logger.With().Str("service", "QRCodeService").Logger(),
	}
}

func (s *qrCodeService) Generate(ctx context.Context, userID, eventID int, qrType, customCode string, regenerate bool) (*model.QRCode, bool, error) {
	event, err := s.events.GetOwned(ctx, eventID, userID)
	if err != nil {
		return nil, false, err
	}
	if event == nil {
		return nil, false, ErrEventNotFound
	}
	if event.Plan == model.PlanFree {
		return nil, false, ErrPlanFeatureLimited
	}

	existing, err := s.qrCodes.GetByEvent(ctx, eventID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil && !regenerate {
		return existing, true, nil
	}

	nowTime := time.Now().UTC()
	code := customCode
	if code == "" {
		code = fmt.Sprintf("%s%d%s", typePrefix(event.Type), eventID, timestampSuffix(nowTime, 4))
	}
	shortCode := "CE" + strings.ToUpper(randHex(3))
	eventURL := "https://ceremonia.com/e/" + code

	qr := &model.QRCode{
		EventID:    eventID,
		Code:       code,
		Type:       orDefault(qrType, "event_access"),
		URL:        eventURL,
		ShortURL:   "https://ce.re/" + shortCode,
		QRImage:    "https://qr.ceremonia.com/v1/generate?data=" + url.QueryEscape(eventURL) + "&size=400&format=png",
		DynamicURL: "https://api.ceremonia.com/qr/" + code + "/redirect",
		Scans:      0,
		CreatedAt:  nowTime,
		ExpiresAt:  nowTime.AddDate(1, 0, 0),
		Status:     "active",
		Metadata: &model.QRCodeMetadata{
			EventName:   event.Name,
			EventDate:   event.Date,
			Plan:        event.Plan,
			GeneratedBy: userID,
		},
	}
	if err := s.qrCodes.Save(ctx, qr); err != nil {
		return nil, false, err
	}

	s.logger.Info().Int("event_id", eventID).Str("code", code).Bool("regenerated", existing != nil).Msg("QR code generated")
	return qr, false, nil
}
