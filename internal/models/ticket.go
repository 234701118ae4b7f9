package models

// TicketStatus is the review state of a ticket. Only the values below are
// accepted by the update endpoint; anything else is rejected at the boundary.
type TicketStatus string

const (
	StatusUnderReview TicketStatus = "Under Review"
	StatusResolved    TicketStatus = "Resolved"
	StatusNotDoing    TicketStatus = "Not Doing"
)

func (s TicketStatus) Valid() bool {
	switch s {
	case StatusUnderReview, StatusResolved, StatusNotDoing:
		return true
	}
	return false
}

// Ticket is the persisted bug-report record as returned to the dashboard.
type Ticket struct {
	StoreID     string                 `json:"storeId"`
	TicketID    string                 `json:"ticketId"`
	Summary     string                 `json:"summary"`
	Description string                 `json:"description"`
	AudioLink   string                 `json:"audioLink,omitempty"`
	VideoLink   string                 `json:"videoLink,omitempty"`
	CreatedAt   string                 `json:"createdAt"`
	DeviceInfo  map[string]interface{} `json:"deviceInfo"`
	Status      string                 `json:"status"`
}

// DraftContent is the {header, description} pair drafted by the
// chat-completion model from a transcript.
type DraftContent struct {
	Header      string `json:"header"`
	Description string `json:"description"`
}
