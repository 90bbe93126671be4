package handler

import (
	"time"

	"KreyolCollector/internal/asr"
	"KreyolCollector/internal/config"
	"KreyolCollector/internal/storage"
)

// Handler carries the dependencies shared by every endpoint.
type Handler struct {
	cfg   *config.Config
	store *storage.Store
	asr   asr.Transcriber
	start time.Time
}

func New(cfg *config.Config, store *storage.Store, transcriber asr.Transcriber) *Handler {
	return &Handler{
		cfg:   cfg,
		store: store,
		asr:   transcriber,
		start: time.Now(),
	}
}

// ErrorResponse is the JSON body for every failed request.
type ErrorResponse struct {
	Ok      bool     `json:"ok" example:"false"`
	Error   string   `json:"error" example:"validation_error"`
	Message string   `json:"message,omitempty" example:"what went wrong"`
	Missing []string `json:"missingFields,omitempty"`
}
