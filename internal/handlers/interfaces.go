package handlers

import (
	"context"

	"epos-support-agent/internal/dynamo"
	"epos-support-agent/internal/models"
)

// ObjectStorage is the slice of the media bucket the handlers need.
type ObjectStorage interface {
	PresignUpload(ctx context.Context, key string) (string, error)
	PresignDownload(ctx context.Context, key string) (string, error)
	Download(ctx context.Context, key string) ([]byte, error)
}

// SpeechService transcribes media and drafts ticket text from it.
type SpeechService interface {
	Transcribe(ctx context.Context, filePath string) (string, error)
	ChatCompletion(ctx context.Context, system, user string) (string, error)
}

// TicketStore persists and reads ticket records.
type TicketStore interface {
	PutTicket(ctx context.Context, in dynamo.PutTicketInput) error
	ListTickets(ctx context.Context, storeID string) ([]models.Ticket, error)
	UpdateStatus(ctx context.Context, id string, status models.TicketStatus) error
}
