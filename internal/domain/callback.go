package domain

// B2CResultCallback is the asynchronous notification the gateway POSTs to the
// result URL once a submitted payment reaches a final state.
type B2CResultCallback struct {
	Result B2CResult `json:"Result"`
}

// B2CResult carries the final outcome of a payment request. ResultCode is
// typed loosely because the gateway emits both JSON numbers and alphanumeric
// strings (e.g. "SFC_IC0003").
type B2CResult struct {
	ResultType               int              `json:"ResultType"`
	ResultCode               any              `json:"ResultCode"`
	ResultDesc               string           `json:"ResultDesc"`
	OriginatorConversationID string           `json:"OriginatorConversationID"`
	ConversationID           string           `json:"ConversationID"`
	TransactionID            string           `json:"TransactionID,omitempty"`
	ResultParameters         ResultParameters `json:"ResultParameters,omitempty"`
}

type ResultParameters struct {
	ResultParameter []ResultParameter `json:"ResultParameter"`
}

type ResultParameter struct {
	Key   string `json:"Key"`
	Value any    `json:"Value"`
}

// B2CResultSummary is the flattened view of a result notification after code
// lookup and parameter extraction.
type B2CResultSummary struct {
	Code           string
	Description    string
	ConversationID string
	TransactionID  string
	Amount         string
	Receipt        string
	ReceiverName   string
	CompletedAt    string
}

func (s B2CResultSummary) Successful() bool {
	return s.Code == "0"
}

// CallbackAck is the fixed acknowledgment returned to the gateway. Anything
// other than a 200 with this shape makes the gateway redeliver the callback.
type CallbackAck struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

// C2BTransaction is the body of a C2B confirmation or validation request.
type C2BTransaction struct {
	TransactionType   string `json:"TransactionType"`
	TransID           string `json:"TransID"`
	TransTime         string `json:"TransTime"`
	TransAmount       string `json:"TransAmount"`
	BusinessShortCode string `json:"BusinessShortCode"`
	BillRefNumber     string `json:"BillRefNumber"`
	InvoiceNumber     string `json:"InvoiceNumber"`
	MSISDN            string `json:"MSISDN"`
	FirstName         string `json:"FirstName"`
}
