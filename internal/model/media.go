package model

import "time"

// MediaPermissions flags what viewers may do with an item.
type MediaPermissions struct {
	View     bool `json:"view"`
	Download bool `json:"download"`
	Share    bool `json:"share"`
}

// Media is an uploaded gallery item attached to an event. Photos count
// against the owner's plan quota.
type Media struct {
	ID           int              `json:"id"`
	MediaID      string           `json:"mediaId"`
	EventID      int              `json:"eventId"`
	UserID       int              `json:"userId"`
	Type         string           `json:"type"`
	FileName     string           `json:"fileName"`
	FileSize     int64            `json:"fileSize"`
	FileType     string           `json:"fileType"`
	MimeType     string           `json:"mimeType"`
	URL          string           `json:"url"`
	ThumbnailURL string           `json:"thumbnailUrl"`
	Author       string           `json:"author"`
	UploadedAt   time.Time        `json:"uploadedAt"`
	Status       string           `json:"status"`
	Metadata     map[string]any   `json:"metadata,omitempty"`
	Permissions  MediaPermissions `json:"permissions"`
}
