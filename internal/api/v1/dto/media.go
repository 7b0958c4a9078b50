package dto

import "ceremonia/internal/model"

// MediaUploadRequest is the body of POST /media/upload.
type MediaUploadRequest struct {
	EventID  int            `json:"eventId" validate:"required"`
	Type     string         `json:"type" validate:"required"`
	FileName string         `json:"fileName" validate:"required"`
	FileSize int64          `json:"fileSize"`
	Author   string         `json:"author"`
	Metadata map[string]any `json:"metadata"`
}

// StorageInfo summarizes quota usage after an upload.
type StorageInfo struct {
	Used      string `json:"used"`
	EventID   int    `json:"eventId"`
	Remaining string `json:"remaining"`
}

// MediaUploadResponse is the data payload of a successful upload.
type MediaUploadResponse struct {
	Media       model.Media `json:"media"`
	StorageInfo StorageInfo `json:"storageInfo"`
	Message     string      `json:"message"`
}
