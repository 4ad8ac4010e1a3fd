package domain

// PaymentRequest is the inbound body for a B2C payout.
type PaymentRequest struct {
	PhoneNumber string  `json:"phoneNumber"`
	Amount      float64 `json:"amount"`
	Remarks     string  `json:"remarks"`
}

// B2CPaymentRequest is the payload submitted to the gateway. Field names
// follow the Daraja wire format.
type B2CPaymentRequest struct {
	InitiatorName      string  `json:"InitiatorName"`
	SecurityCredential string  `json:"SecurityCredential"`
	CommandID          string  `json:"CommandID"`
	Amount             float64 `json:"Amount"`
	PartyA             string  `json:"PartyA"`
	PartyB             string  `json:"PartyB"`
	Remarks            string  `json:"Remarks"`
	QueueTimeOutURL    string  `json:"QueueTimeOutURL"`
	ResultURL          string  `json:"ResultURL"`
	Occasion           string  `json:"Occasion"`
}

// B2CResponse is the gateway acknowledgment of a submitted payment request.
// It only confirms the request was accepted for asynchronous processing; the
// final outcome arrives later on the result callback.
type B2CResponse struct {
	ConversationID           string `json:"ConversationID,omitempty"`
	OriginatorConversationID string `json:"OriginatorConversationID,omitempty"`
	ResponseCode             string `json:"ResponseCode,omitempty"`
	ResponseDescription      string `json:"ResponseDescription,omitempty"`
}
