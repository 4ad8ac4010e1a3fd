package domain

// URLRegistration is the inbound body for registering C2B callback URLs.
type URLRegistration struct {
	ConfirmationURL string `json:"confirmationURL" binding:"required,url"`
	ValidationURL   string `json:"validationURL" binding:"required,url"`
}

// C2BRegisterRequest is the registration payload submitted to the gateway.
type C2BRegisterRequest struct {
	ShortCode       string `json:"ShortCode"`
	ResponseType    string `json:"ResponseType"`
	ConfirmationURL string `json:"ConfirmationURL"`
	ValidationURL   string `json:"ValidationURL"`
}

// C2BRegisterResponse is the gateway's answer to a registration request,
// returned to the caller verbatim.
type C2BRegisterResponse struct {
	OriginatorConversationID string `json:"OriginatorConversationID,omitempty"`
	ConversationID           string `json:"ConversationID,omitempty"`
	ResponseDescription      string `json:"ResponseDescription,omitempty"`
}
