package models

type TranscribeRequest struct {
	TicketID FlexString `json:"ticketId" swaggertype:"string" example:"482913"`
	StoreID  string     `json:"storeId" example:"store-042"`
}

type CreateTicketRequest struct {
	TicketID    FlexString             `json:"ticketId" swaggertype:"string" example:"482913"`
	StoreID     string                 `json:"storeId" example:"store-042"`
	Summary     string                 `json:"summary" example:"Till crashes on save"`
	Description string                 `json:"description"`
	DeviceInfo  map[string]interface{} `json:"deviceInfo,omitempty"`
	VideoURL    string                 `json:"videogetpresignedURL,omitempty"`
	AudioURL    string                 `json:"audiogetpresignedURL,omitempty"`
	// ID overrides the record key when set; otherwise ticketId is used.
	ID FlexString `json:"id,omitempty" swaggertype:"string"`
}

type UpdateTicketRequest struct {
	TicketID FlexString `json:"ticketId" swaggertype:"string" example:"482913"`
	Status   string     `json:"status" example:"Resolved"`
}
