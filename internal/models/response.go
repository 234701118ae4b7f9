package models

type UploadURLResponse struct {
	Success        bool   `json:"success"`
	StoreID        string `json:"storeId"`
	TicketID       int    `json:"ticketId"`
	AudioUploadURL string `json:"audiopresignedURL"`
	VideoUploadURL string `json:"videoPresignedURL"`
}

type TranscribeResponse struct {
	Success     bool          `json:"success"`
	StoreID     string        `json:"storeId"`
	TicketID    string        `json:"ticketId"`
	VideoURL    string        `json:"videogetpresignedURL"`
	JiraContent *DraftContent `json:"jiraContent"`
}

type CreateTicketResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	TicketID string `json:"ticketId"`
	StoreID  string `json:"storeId"`
}

type ListTicketsResponse struct {
	Success bool     `json:"success"`
	Tickets []Ticket `json:"tickets"`
	Count   int      `json:"count"`
}

type UpdateTicketResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	TicketID  string `json:"ticketId"`
	NewStatus string `json:"newStatus"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
