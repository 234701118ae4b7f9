package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"epos-support-agent/internal/dynamo"
	"epos-support-agent/internal/models"
)

type TicketsHandler struct {
	store TicketStore
}

func NewTicketsHandler(store TicketStore) *TicketsHandler {
	return &TicketsHandler{store: store}
}

// CreateTicket godoc
// @Summary     Create a ticket record
// @Description Persists a ticket. createdAt and status are server-set; client values for them are ignored.
// @Tags        tickets
// @Accept      json
// @Produce     json
// @Param       request body models.CreateTicketRequest true "Ticket fields"
// @Success     200 {object} models.CreateTicketResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /createTicket [post]
func (h *TicketsHandler) CreateTicket(c *gin.Context) {
	var req models.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	if req.TicketID == "" || req.StoreID == "" || req.Summary == "" || req.Description == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Missing required fields"})
		return
	}

	// The table's uniqueness key: explicit id wins, ticketId is the fallback.
	itemID := req.ID.String()
	if itemID == "" {
		itemID = req.TicketID.String()
	}

	in := dynamo.PutTicketInput{
		ID:          itemID,
		StoreID:     req.StoreID,
		TicketID:    req.TicketID.String(),
		Summary:     req.Summary,
		Description: req.Description,
		DeviceInfo:  req.DeviceInfo,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		Status:      models.StatusUnderReview,
	}
	if req.VideoURL != "" {
		in.VideoLink = &req.VideoURL
	}
	if req.AudioURL != "" {
		in.AudioLink = &req.AudioURL
	}

	if err := h.store.PutTicket(c.Request.Context(), in); err != nil {
		log.Printf("DynamoDB error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create ticket"})
		return
	}

	c.JSON(http.StatusOK, models.CreateTicketResponse{
		Success:  true,
		Message:  "Ticket created successfully",
		TicketID: req.TicketID.String(),
		StoreID:  req.StoreID,
	})
}

// ListTickets godoc
// @Summary     List tickets
// @Description Scans the ticket table, following pagination until exhausted. Optionally filtered by store.
// @Tags        tickets
// @Produce     json
// @Param       storeId query string false "Store identifier filter"
// @Success     200 {object} models.ListTicketsResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /listTickets [get]
func (h *TicketsHandler) ListTickets(c *gin.Context) {
	storeID := c.Query("storeId")

	tickets, err := h.store.ListTickets(c.Request.Context(), storeID)
	if err != nil {
		log.Printf("DynamoDB error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list tickets"})
		return
	}

	c.JSON(http.StatusOK, models.ListTicketsResponse{
		Success: true,
		Tickets: tickets,
		Count:   len(tickets),
	})
}

// UpdateTicket godoc
// @Summary     Update a ticket's status
// @Description Overwrites the status attribute of one record. Status must be one of the recognized values.
// @Tags        tickets
// @Accept      json
// @Produce     json
// @Param       request body models.UpdateTicketRequest true "Ticket id and new status"
// @Success     200 {object} models.UpdateTicketResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /updateTicket [post]
func (h *TicketsHandler) UpdateTicket(c *gin.Context) {
	var req models.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	if req.TicketID == "" || req.Status == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Missing required fields"})
		return
	}

	status := models.TicketStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid status",
			Message: "status must be one of: Under Review, Resolved, Not Doing",
		})
		return
	}

	if err := h.store.UpdateStatus(c.Request.Context(), req.TicketID.String(), status); err != nil {
		log.Printf("DynamoDB error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update ticket"})
		return
	}

	c.JSON(http.StatusOK, models.UpdateTicketResponse{
		Success:   true,
		Message:   "Ticket updated successfully",
		TicketID:  req.TicketID.String(),
		NewStatus: req.Status,
	})
}
