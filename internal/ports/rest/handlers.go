package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"mpesa-bridge/internal/domain"
	"mpesa-bridge/pkg/e"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go

// Gateway is the outbound side of the bridge: every initiating handler goes
// through it, callbacks never do.
type Gateway interface {
	InitiateB2C(ctx context.Context, phoneNumber string, amount float64, remarks string) (domain.B2CResponse, error)
	RegisterC2BURLs(ctx context.Context, confirmationURL, validationURL string) (domain.C2BRegisterResponse, error)
}

type ResultProcessor interface {
	ProcessB2CResult(res domain.B2CResult) domain.B2CResultSummary
}

type Handler struct {
	gateway Gateway
	results ResultProcessor
	logger  *slog.Logger
}

func NewHandler(logger *slog.Logger, gateway Gateway, results ResultProcessor) *Handler {
	return &Handler{
		gateway: gateway,
		results: results,
		logger:  logger,
	}
}

const defaultRemarks = "B2C Payment"

// c2bRejectMissingBillRef is the gateway rejection code for a transaction
// without a bill reference. Validation currently accepts everything; this is
// the documented hook for turning rejection on.
const c2bRejectMissingBillRef = "C2B00012"

// PayB2C godoc
// @Summary Initiate a B2C payout
// @Description Submit a business payment to a phone number. The response only acknowledges acceptance; the final outcome arrives on the result callback.
// @ID initiate-b2c
// @Accept json
// @Produce json
// @Param payment body domain.PaymentRequest true "Payout to initiate"
// @Success 200 {object} map[string]interface{} "Request accepted by the gateway"
// @Failure 400 {object} map[string]string "Missing phoneNumber or amount"
// @Failure 500 {object} map[string]interface{} "Gateway or network failure"
// @Router /b2c/pay [post]
func (h *Handler) PayB2C(c *gin.Context) {
	var req domain.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("failed to bind payment request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"message": "phoneNumber and amount are required"})
		return
	}

	if req.PhoneNumber == "" || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "phoneNumber and amount are required"})
		return
	}

	remarks := req.Remarks
	if remarks == "" {
		remarks = defaultRemarks
	}

	result, err := h.gateway.InitiateB2C(c, req.PhoneNumber, req.Amount, remarks)
	if err != nil {
		h.logger.Error("failed to initiate B2C", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to initiate B2C", "error": e.Detail(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "B2C request sent", "data": result})
}

// B2CResult godoc
// @Summary Receive the final outcome of a submitted payment
// @Description Gateway-facing callback. Always acknowledged with 200; any other status makes the gateway redeliver.
// @ID b2c-result
// @Accept json
// @Produce json
// @Success 200 {object} domain.CallbackAck
// @Router /b2c/result [post]
func (h *Handler) B2CResult(c *gin.Context) {
	var payload domain.B2CResultCallback
	if err := c.ShouldBindJSON(&payload); err != nil {
		// a broken body is still acknowledged, otherwise the gateway
		// keeps redelivering it
		h.logger.Error("failed to decode B2C result", slog.String("error", err.Error()))
	} else {
		h.results.ProcessB2CResult(payload.Result)
	}

	c.JSON(http.StatusOK, domain.CallbackAck{ResultCode: 0, ResultDesc: "Accepted"})
}

// B2CTimeout godoc
// @Summary Receive a queue-timeout notification
// @ID b2c-timeout
// @Produce json
// @Success 200 {object} domain.CallbackAck
// @Router /b2c/timeout [post]
func (h *Handler) B2CTimeout(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.logger.Error("failed to read B2C timeout body", slog.String("error", err.Error()))
	} else {
		h.logger.Error("B2C timeout received", slog.String("body", string(body)))
	}

	c.JSON(http.StatusOK, domain.CallbackAck{ResultCode: 0, ResultDesc: "Timeout received"})
}

// RegisterC2B godoc
// @Summary Register C2B confirmation and validation URLs
// @ID register-c2b
// @Accept json
// @Produce json
// @Param registration body domain.URLRegistration true "Callback URLs to register"
// @Success 200 {object} domain.C2BRegisterResponse
// @Failure 400 {object} map[string]string "Invalid body"
// @Failure 500 {object} map[string]interface{} "Gateway or network failure"
// @Router /c2b/register [post]
func (h *Handler) RegisterC2B(c *gin.Context) {
	var req domain.URLRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			for _, fe := range vErrs {
				h.logger.Error("invalid registration field",
					slog.String("field", fe.Field()),
					slog.String("rule", fe.Tag()))
			}
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "confirmationURL and validationURL are required"})
		return
	}

	result, err := h.gateway.RegisterC2BURLs(c, req.ConfirmationURL, req.ValidationURL)
	if err != nil {
		h.logger.Error("failed to register C2B URLs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register C2B URLs", "error": e.Detail(err)})
		return
	}

	c.JSON(http.StatusOK, result)
}

// C2BConfirmation godoc
// @Summary Receive a completed C2B transaction
// @ID c2b-confirmation
// @Accept json
// @Produce json
// @Success 200 {object} domain.CallbackAck
// @Router /c2b/confirmation [post]
func (h *Handler) C2BConfirmation(c *gin.Context) {
	var tx domain.C2BTransaction
	if err := c.ShouldBindJSON(&tx); err != nil {
		h.logger.Error("failed to decode C2B confirmation", slog.String("error", err.Error()))
	} else {
		h.logger.Info("C2B confirmation received",
			slog.String("trans_id", tx.TransID),
			slog.String("amount", tx.TransAmount),
			slog.String("msisdn", tx.MSISDN),
			slog.String("bill_ref", tx.BillRefNumber))
	}

	c.JSON(http.StatusOK, domain.CallbackAck{ResultCode: 0, ResultDesc: "Received successfully"})
}

// C2BValidation godoc
// @Summary Validate an incoming C2B transaction
// @Description Accepts every transaction. Rejection by bill reference is a deliberate extension point.
// @ID c2b-validation
// @Accept json
// @Produce json
// @Success 200 {object} domain.CallbackAck
// @Router /c2b/validation [post]
func (h *Handler) C2BValidation(c *gin.Context) {
	var tx domain.C2BTransaction
	if err := c.ShouldBindJSON(&tx); err != nil {
		h.logger.Error("failed to decode C2B validation request", slog.String("error", err.Error()))
	} else {
		h.logger.Info("C2B validation request",
			slog.String("amount", tx.TransAmount),
			slog.String("bill_ref", tx.BillRefNumber))
	}

	// To reject transactions without a bill reference, respond here with
	// c2bRejectMissingBillRef instead of accepting.
	c.JSON(http.StatusOK, domain.CallbackAck{ResultCode: 0, ResultDesc: "Accepted"})
}
