package service

import (
	"log/slog"

	"mpesa-bridge/internal/domain"

	"github.com/spf13/cast"
)

// b2cResultCodes maps the result codes the gateway is known to emit to
// human-readable descriptions. Unknown codes fall back to the
// gateway-supplied ResultDesc.
var b2cResultCodes = map[string]string{
	"0":          "Transaction successful",
	"1":          "Insufficient balance",
	"2":          "Below minimum transaction limit",
	"3":          "Above maximum transaction limit",
	"4":          "Exceeded daily transfer limit",
	"8":          "Exceeded maximum account balance",
	"11":         "B2C account not active",
	"21":         "Initiator lacks B2C role",
	"2001":       "Invalid initiator credentials",
	"2006":       "Account status does not allow transaction",
	"2028":       "Shortcode not permitted for B2C",
	"2040":       "Recipient not supported (unregistered)",
	"8006":       "Security credential locked",
	"SFC_IC0003": "Invalid phone number / operator does not exist",
}

// Result parameter keys as they appear on the wire.
const (
	paramAmount        = "TransactionAmount"
	paramReceipt       = "TransactionReceipt"
	paramReceiverName  = "ReceiverPartyPublicName"
	paramCompletedAt   = "TransactionCompletedDateTime"
	paramTransactionID = "TransactionID"
)

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Describe resolves a result code against the known-code table.
func Describe(code string) (string, bool) {
	desc, ok := b2cResultCodes[code]
	return desc, ok
}

// ProcessB2CResult flattens a result notification: the code is coerced to a
// string (the gateway sends numbers and alphanumeric codes alike), resolved
// against the code table, and the named transaction parameters are pulled out
// of the key/value list. It never fails; the caller acknowledges the callback
// regardless.
func (s *Service) ProcessB2CResult(res domain.B2CResult) domain.B2CResultSummary {
	code := cast.ToString(res.ResultCode)

	desc, ok := Describe(code)
	if !ok {
		desc = res.ResultDesc
	}

	params := res.ResultParameters.ResultParameter
	summary := domain.B2CResultSummary{
		Code:           code,
		Description:    desc,
		ConversationID: res.ConversationID,
		TransactionID:  cast.ToString(resultParam(params, paramTransactionID)),
		Amount:         cast.ToString(resultParam(params, paramAmount)),
		Receipt:        cast.ToString(resultParam(params, paramReceipt)),
		ReceiverName:   cast.ToString(resultParam(params, paramReceiverName)),
		CompletedAt:    cast.ToString(resultParam(params, paramCompletedAt)),
	}
	if summary.TransactionID == "" {
		summary.TransactionID = res.TransactionID
	}

	// TODO: persist the outcome and match it by ConversationID once a store
	// is injected.
	if summary.Successful() {
		s.logger.Info("B2C payment succeeded",
			slog.String("receipt", summary.Receipt),
			slog.String("amount", summary.Amount),
			slog.String("receiver", summary.ReceiverName),
			slog.String("completed_at", summary.CompletedAt),
			slog.String("conversation_id", summary.ConversationID),
			slog.String("transaction_id", summary.TransactionID))
	} else {
		s.logger.Error("B2C payment failed",
			slog.String("code", summary.Code),
			slog.String("message", summary.Description),
			slog.String("conversation_id", summary.ConversationID))
	}

	return summary
}

func resultParam(params []domain.ResultParameter, key string) any {
	for _, p := range params {
		if p.Key == key {
			return p.Value
		}
	}
	return nil
}
