package handlers

import (
	"log"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"epos-support-agent/internal/models"
	"epos-support-agent/internal/storage"
)

// ticketIDRange bounds the random ticket id. Collisions are accepted, not
// mitigated; the table key is last-write-wins.
const ticketIDRange = 1000000

type UploadURLHandler struct {
	storage ObjectStorage
}

func NewUploadURLHandler(storage ObjectStorage) *UploadURLHandler {
	return &UploadURLHandler{storage: storage}
}

// GetPresignedURL godoc
// @Summary     Issue upload URLs for ticket media
// @Description Generates a ticket id and returns time-limited PUT URLs for the audio and video objects.
// @Tags        tickets
// @Produce     json
// @Param       storeId query string false "Store identifier"
// @Success     200 {object} models.UploadURLResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /get-presigned-url [get]
func (h *UploadURLHandler) GetPresignedURL(c *gin.Context) {
	storeID := c.Query("storeId")
	ticketID := rand.Intn(ticketIDRange)

	audioKey := storage.AudioKey(storeID, strconv.Itoa(ticketID))
	videoKey := storage.VideoKey(storeID, strconv.Itoa(ticketID))

	audioURL, err := h.storage.PresignUpload(c.Request.Context(), audioKey)
	if err != nil {
		log.Printf("Error generating presigned URL: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate presigned URL"})
		return
	}

	videoURL, err := h.storage.PresignUpload(c.Request.Context(), videoKey)
	if err != nil {
		log.Printf("Error generating presigned URL: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate presigned URL"})
		return
	}

	c.JSON(http.StatusOK, models.UploadURLResponse{
		Success:        true,
		StoreID:        storeID,
		TicketID:       ticketID,
		AudioUploadURL: audioURL,
		VideoUploadURL: videoURL,
	})
}
