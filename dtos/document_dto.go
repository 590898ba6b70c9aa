package dtos

import (
	"time"

	"github.com/google/uuid"
)

type DocumentDTO struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Path        string    `json:"path"`
	SignedURL   string    `json:"signedUrl,omitempty"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"createdAt"`
}

type DocumentUpload struct {
	UserID      string
	FileName    string
	ContentType string
	Size        int64
	CodeCheckID *uuid.UUID
}

type StoredObject struct {
	Name      string     `json:"name"`
	Size      int64      `json:"size"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type DocumentExistsRequest struct {
	Address string `json:"address" query:"address" validate:"required"`
}

type DocumentExistsResponse struct {
	Exists bool     `json:"exists"`
	Paths  []string `json:"paths"`
}

type ListDocumentsRequest struct {
	Path string `json:"path" query:"path" validate:"required"`
}

type RemoteDocument struct {
	Name string `json:"name"`
	Path string `json:"path"`
	URL  string `json:"url,omitempty"`
}

type ExtractTextRequest struct {
	URL string `json:"url" validate:"required"`
}

type ExtractTextResponse struct {
	Text string `json:"text"`
	// local when the analysis backend failed and the pdf was parsed in process
	Source string `json:"source"`
}

type CitationResponse struct {
	Text string `json:"text"`
}
