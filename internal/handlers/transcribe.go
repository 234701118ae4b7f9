package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"epos-support-agent/internal/draft"
	"epos-support-agent/internal/groq"
	"epos-support-agent/internal/models"
	"epos-support-agent/internal/storage"
)

type TranscribeHandler struct {
	storage ObjectStorage
	speech  SpeechService
}

func NewTranscribeHandler(storage ObjectStorage, speech SpeechService) *TranscribeHandler {
	return &TranscribeHandler{
		storage: storage,
		speech:  speech,
	}
}

// Transcribe godoc
// @Summary     Transcribe a ticket video and draft its content
// @Description Downloads the uploaded video, transcribes it, and asks the model for a {header, description} draft. A malformed model reply yields a null jiraContent, not an error.
// @Tags        tickets
// @Accept      json
// @Produce     json
// @Param       request body models.TranscribeRequest true "Ticket and store identifiers"
// @Success     200 {object} models.TranscribeResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /transcribe [post]
func (h *TranscribeHandler) Transcribe(c *gin.Context) {
	var req models.TranscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	if req.TicketID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "No ticketId Exists."})
		return
	}

	ctx := c.Request.Context()
	videoKey := storage.VideoKey(req.StoreID, req.TicketID.String())

	// Kept for the response payload; the download below goes through the
	// storage client directly.
	videoURL, err := h.storage.PresignDownload(ctx, videoKey)
	if err != nil {
		log.Printf("Audio Transcription Error====> %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Something went wrong"})
		return
	}

	data, err := h.storage.Download(ctx, videoKey)
	if err != nil {
		log.Printf("Audio Transcription Error====> %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "No valid response. Body might be empty."})
		return
	}

	// Private per-request scratch file: two in-flight requests for the same
	// ticket must not share a path, and the file must not outlive the request.
	scratch := filepath.Join(os.TempDir(), fmt.Sprintf("%s_%s_%s_video.mp4", req.StoreID, req.TicketID, uuid.NewString()))
	if err := os.WriteFile(scratch, data, 0o600); err != nil {
		log.Printf("Audio Transcription Error====> %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Something went wrong"})
		return
	}
	defer os.Remove(scratch)

	transcript, err := h.speech.Transcribe(ctx, scratch)
	if err != nil {
		log.Printf("Audio Transcription Error====> %v", err)
		respondUpstreamError(c, err)
		return
	}

	if strings.TrimSpace(transcript) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "No valid transcription. Audio might be empty."})
		return
	}

	reply, err := h.speech.ChatCompletion(ctx, draft.SystemInstruction, draft.Prompt(transcript))
	if err != nil {
		log.Printf("Content Conversion Error====> %v", err)
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.TranscribeResponse{
		Success:     true,
		StoreID:     req.StoreID,
		TicketID:    req.TicketID.String(),
		VideoURL:    videoURL,
		JiraContent: draft.Parse(reply),
	})
}

// respondUpstreamError forwards an upstream 400 verbatim and collapses
// everything else to a generic 500.
func respondUpstreamError(c *gin.Context, err error) {
	var apiErr *groq.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: apiErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Something went wrong"})
}
