package tests

import (
	"encoding/json"
	"log"

	"mpesa-bridge/internal/domain"
)

var (
	B2CAckInstance = domain.B2CResponse{
		ConversationID:           "AG_001",
		OriginatorConversationID: "OC_001",
	}
	B2CAckString string

	// SuccessResultInstance mirrors a decoded result callback: JSON numbers
	// arrive as float64.
	SuccessResultInstance = domain.B2CResultCallback{
		Result: domain.B2CResult{
			ResultType:               0,
			ResultCode:               float64(0),
			ResultDesc:               "The service request is processed successfully.",
			OriginatorConversationID: "10571-7910404-1",
			ConversationID:           "AG_20251231_00006c6fe45d2a171c52",
			TransactionID:            "SLK61SVKC1",
			ResultParameters: domain.ResultParameters{
				ResultParameter: []domain.ResultParameter{
					{Key: "TransactionAmount", Value: float64(500)},
					{Key: "TransactionReceipt", Value: "SLK61SVKC1"},
					{Key: "ReceiverPartyPublicName", Value: "254712345678 - John Doe"},
					{Key: "TransactionCompletedDateTime", Value: "31.12.2025 14:30:45"},
					{Key: "B2CUtilityAccountAvailableFunds", Value: float64(10116)},
				},
			},
		},
	}
	SuccessResultString string

	FailedResultInstance = domain.B2CResultCallback{
		Result: domain.B2CResult{
			ResultType:               0,
			ResultCode:               float64(2001),
			ResultDesc:               "The initiator information is invalid.",
			OriginatorConversationID: "10571-7910404-2",
			ConversationID:           "AG_20251231_00007c6fe45d2a171c53",
		},
	}
	FailedResultString string

	ConfirmationString = `{"TransactionType":"Pay Bill","TransID":"RKTQDM7W6S","TransTime":"20251231143045","TransAmount":"100.00","BusinessShortCode":"600638","BillRefNumber":"invoice008","MSISDN":"254708374149","FirstName":"John"}`
)

func init() {
	ackJSON, err := json.Marshal(B2CAckInstance)
	if err != nil {
		log.Fatalf("failed to marshal B2CAckInstance: %s", err)
	}
	B2CAckString = string(ackJSON)

	successJSON, err := json.Marshal(SuccessResultInstance)
	if err != nil {
		log.Fatalf("failed to marshal SuccessResultInstance: %s", err)
	}
	SuccessResultString = string(successJSON)

	failedJSON, err := json.Marshal(FailedResultInstance)
	if err != nil {
		log.Fatalf("failed to marshal FailedResultInstance: %s", err)
	}
	FailedResultString = string(failedJSON)
}
