package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"ceremonia/internal/api/v1/dto"
	"ceremonia/internal/service"
)

// MediaHandler handles simulated media uploads.
type MediaHandler struct {
	mediaService service.MediaService
	validate     *validator.Validate
	logger       zerolog.Logger
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(mediaService service.MediaService, v *validator.Validate, logger zerolog.Logger) *MediaHandler {
	return &MediaHandler{mediaService: mediaService, validate: v, logger: logger}
}

// RegisterRoutes mounts the media endpoints behind the auth middleware.
func (h *MediaHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/media/upload", authMw(http.HandlerFunc(h.upload)))
}

// upload godoc
// @Summary Upload a media item
// @Description Records a gallery item (metadata only, no file transfer) and
// @Description enforces the plan's photo quota.
// @Tags media
// @Accept json
// @Produce json
// @Param media body dto.MediaUploadRequest true "Media item"
// @Security BearerAuth
// @Success 200 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope "photo quota reached"
// @Failure 404 {object} dto.Envelope "event not found"
// @Router /media/upload [post]
func (h *MediaHandler) upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
		return
	}
	userID, ok := userFromContext(w, r)
	if !ok {
		return
	}
	var req dto.MediaUploadRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	item, info, err := h.mediaService.Upload(r.Context(), userID, service.UploadMediaParams{
		EventID:  req.EventID,
		Type:     req.Type,
		FileName: req.FileName,
		FileSize: req.FileSize,
		Author:   req.Author,
		Metadata: req.Metadata,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			writeError(w, http.StatusNotFound, "Event not found", "EVENT_NOT_FOUND")
		case errors.Is(err, service.ErrStorageLimitReached):
			writeErrorDetails(w, http.StatusForbidden,
				fmt.Sprintf("Photo limit reached for your plan (%d)", info.PhotoLimit),
				"STORAGE_LIMIT_REACHED",
				map[string]any{"upgradeUrl": "https://ceremonia.com/pricing"})
		default:
			h.logger.Error().Err(err).Msg("Media upload failed")
			writeError(w, http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
		}
		return
	}

	remaining := "Unlimited"
	if info.Subscribed && info.PhotoLimit > 0 {
		remaining = fmt.Sprintf("Limit: %d photos", info.PhotoLimit)
	}
	writeData(w, http.StatusOK, dto.MediaUploadResponse{
		Media: *item,
		StorageInfo: dto.StorageInfo{
			Used:      fmt.Sprintf("%d files", info.UsedFiles),
			EventID:   req.EventID,
			Remaining: remaining,
		},
		Message: "Media uploaded successfully",
	})
}
