package daraja

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"mpesa-bridge/internal/config"
	"mpesa-bridge/internal/domain"
	"mpesa-bridge/pkg/e"
)

const (
	tokenPath       = "/oauth/v1/generate?grant_type=client_credentials"
	b2cPaymentPath  = "/mpesa/b2c/v1/paymentrequest"
	c2bRegisterPath = "/mpesa/c2b/v2/registerurl"

	commandBusinessPayment = "BusinessPayment"
	defaultOccasion        = "Payout"
	responseTypeCompleted  = "Completed"
)

// Client talks to the Daraja gateway. Every initiating call performs a fresh
// token exchange; tokens are not cached.
type Client struct {
	cfg        config.DarajaConfig
	logger     *slog.Logger
	httpClient *http.Client
}

func NewClient(cfg config.DarajaConfig, logger *slog.Logger) *Client {
	return &Client{
		cfg:        cfg,
		logger:     logger,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

// AccessToken exchanges the consumer key/secret for a bearer token using
// HTTP basic authentication.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+tokenPath, nil)
	if err != nil {
		return "", e.Wrap("daraja.AccessToken", err)
	}

	auth := base64.StdEncoding.EncodeToString([]byte(c.cfg.ConsumerKey + ":" + c.cfg.ConsumerSecret))
	req.Header.Set("Authorization", "Basic "+auth)

	var token tokenResponse
	if err := c.do(req, &token); err != nil {
		return "", e.Wrap("daraja.AccessToken", err)
	}

	return token.AccessToken, nil
}

// InitiateB2C submits a business payment to the given phone number and
// returns the gateway's acknowledgment.
func (c *Client) InitiateB2C(ctx context.Context, phoneNumber string, amount float64, remarks string) (domain.B2CResponse, error) {
	var result domain.B2CResponse

	token, err := c.AccessToken(ctx)
	if err != nil {
		return result, err
	}

	payload := domain.B2CPaymentRequest{
		InitiatorName:      c.cfg.InitiatorName,
		SecurityCredential: c.cfg.SecurityCredential,
		CommandID:          commandBusinessPayment,
		Amount:             amount,
		PartyA:             c.cfg.Shortcode,
		PartyB:             phoneNumber,
		Remarks:            remarks,
		QueueTimeOutURL:    c.cfg.CallbackBaseURL + "/b2c/timeout",
		ResultURL:          c.cfg.CallbackBaseURL + "/b2c/result",
		Occasion:           defaultOccasion,
	}

	if err := c.post(ctx, b2cPaymentPath, token, payload, &result); err != nil {
		return result, e.Wrap("daraja.InitiateB2C", err)
	}

	c.logger.Info("B2C payment request accepted",
		slog.String("conversation_id", result.ConversationID),
		slog.String("originator_conversation_id", result.OriginatorConversationID))

	return result, nil
}

// RegisterC2BURLs associates the confirmation and validation URLs with the
// merchant shortcode.
func (c *Client) RegisterC2BURLs(ctx context.Context, confirmationURL, validationURL string) (domain.C2BRegisterResponse, error) {
	var result domain.C2BRegisterResponse

	token, err := c.AccessToken(ctx)
	if err != nil {
		return result, err
	}

	payload := domain.C2BRegisterRequest{
		ShortCode:       c.cfg.Shortcode,
		ResponseType:    responseTypeCompleted,
		ConfirmationURL: confirmationURL,
		ValidationURL:   validationURL,
	}

	if err := c.post(ctx, c2bRegisterPath, token, payload, &result); err != nil {
		return result, e.Wrap("daraja.RegisterC2BURLs", err)
	}

	return result, nil
}

func (c *Client) post(ctx context.Context, path, token string, body, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("gateway call failed",
			slog.String("url", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(raw)))
		return newAPIError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return e.Wrap("decode gateway response", err)
	}

	return nil
}
