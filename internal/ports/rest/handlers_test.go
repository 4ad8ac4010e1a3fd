package rest

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mpesa-bridge/internal/daraja"
	"mpesa-bridge/internal/domain"
	handler_mocks "mpesa-bridge/internal/ports/rest/mocks"
	"mpesa-bridge/pkg/e"
	"mpesa-bridge/pkg/logger"
	"mpesa-bridge/tests"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func newTestHandler(t *testing.T) (*Handler, *handler_mocks.MockGateway, *handler_mocks.MockResultProcessor) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockGateway := handler_mocks.NewMockGateway(ctrl)
	mockResults := handler_mocks.NewMockResultProcessor(ctrl)

	return NewHandler(logger.SetupPrettySlog(), mockGateway, mockResults), mockGateway, mockResults
}

func Test_PayB2CHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type mockBehavior func(r *handler_mocks.MockGateway)
	testCases := []struct {
		name               string
		requestBody        string
		mockBehavior       mockBehavior
		expectedStatusCode int
		expectedResponse   string
	}{
		{
			name:        "OK",
			requestBody: `{"phoneNumber":"254712345678","amount":500,"remarks":"Payout"}`,
			mockBehavior: func(r *handler_mocks.MockGateway) {
				r.EXPECT().InitiateB2C(gomock.Any(), "254712345678", 500.0, "Payout").Return(tests.B2CAckInstance, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedResponse:   `{"message":"B2C request sent","data":{"ConversationID":"AG_001","OriginatorConversationID":"OC_001"}}`,
		},
		{
			name:        "Default remarks",
			requestBody: `{"phoneNumber":"254712345678","amount":200}`,
			mockBehavior: func(r *handler_mocks.MockGateway) {
				r.EXPECT().InitiateB2C(gomock.Any(), "254712345678", 200.0, "B2C Payment").Return(domain.B2CResponse{}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedResponse:   `{"message":"B2C request sent","data":{}}`,
		},
		{
			name:               "Missing phoneNumber",
			requestBody:        `{"amount":100}`,
			expectedStatusCode: http.StatusBadRequest,
			expectedResponse:   `{"message":"phoneNumber and amount are required"}`,
		},
		{
			name:               "Missing amount",
			requestBody:        `{"phoneNumber":"254712345678"}`,
			expectedStatusCode: http.StatusBadRequest,
			expectedResponse:   `{"message":"phoneNumber and amount are required"}`,
		},
		{
			name:               "Missing both",
			requestBody:        `{}`,
			expectedStatusCode: http.StatusBadRequest,
			expectedResponse:   `{"message":"phoneNumber and amount are required"}`,
		},
		{
			name:        "Gateway error with structured body",
			requestBody: `{"phoneNumber":"254712345678","amount":100}`,
			mockBehavior: func(r *handler_mocks.MockGateway) {
				apiErr := &daraja.APIError{
					StatusCode:   http.StatusInternalServerError,
					ErrorCode:    "500.001.1001",
					ErrorMessage: "Unable to lock subscriber",
				}
				r.EXPECT().InitiateB2C(gomock.Any(), "254712345678", 100.0, "B2C Payment").
					Return(domain.B2CResponse{}, e.Wrap("daraja.InitiateB2C", apiErr))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedResponse:   `{"message":"Failed to initiate B2C","error":{"errorCode":"500.001.1001","errorMessage":"Unable to lock subscriber"}}`,
		},
		{
			name:        "Gateway error without structured body",
			requestBody: `{"phoneNumber":"254712345678","amount":100}`,
			mockBehavior: func(r *handler_mocks.MockGateway) {
				r.EXPECT().InitiateB2C(gomock.Any(), "254712345678", 100.0, "B2C Payment").
					Return(domain.B2CResponse{}, errors.New("Network error"))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedResponse:   `{"message":"Failed to initiate B2C","error":"Network error"}`,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			handler, mockGateway, _ := newTestHandler(t)
			if testCase.mockBehavior != nil {
				testCase.mockBehavior(mockGateway)
			}

			r := gin.New()
			r.POST("/b2c/pay", handler.PayB2C)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/b2c/pay", bytes.NewBufferString(testCase.requestBody))
			req.Header.Set("Content-Type", "application/json")

			r.ServeHTTP(w, req)

			assert.Equal(t, testCase.expectedStatusCode, w.Code)
			assert.JSONEq(t, testCase.expectedResponse, w.Body.String())
		})
	}
}

func Test_B2CResultHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type mockBehavior func(r *handler_mocks.MockResultProcessor)
	testCases := []struct {
		name         string
		requestBody  string
		mockBehavior mockBehavior
	}{
		{
			name:        "Successful payment",
			requestBody: tests.SuccessResultString,
			mockBehavior: func(r *handler_mocks.MockResultProcessor) {
				r.EXPECT().ProcessB2CResult(tests.SuccessResultInstance.Result).Return(domain.B2CResultSummary{Code: "0"})
			},
		},
		{
			name:        "Failed payment",
			requestBody: tests.FailedResultString,
			mockBehavior: func(r *handler_mocks.MockResultProcessor) {
				r.EXPECT().ProcessB2CResult(tests.FailedResultInstance.Result).Return(domain.B2CResultSummary{Code: "2001"})
			},
		},
		{
			name:        "Malformed body is still acknowledged",
			requestBody: `{not json`,
		},
		{
			name:        "Empty body is still acknowledged",
			requestBody: ``,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			handler, _, mockResults := newTestHandler(t)
			if testCase.mockBehavior != nil {
				testCase.mockBehavior(mockResults)
			}

			r := gin.New()
			r.POST("/b2c/result", handler.B2CResult)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/b2c/result", bytes.NewBufferString(testCase.requestBody))
			req.Header.Set("Content-Type", "application/json")

			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"ResultCode":0,"ResultDesc":"Accepted"}`, w.Body.String())
		})
	}
}

func Test_B2CTimeoutHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, body := range []string{`{"Result":{"ResultType":1}}`, `garbage`, ``} {
		handler, _, _ := newTestHandler(t)

		r := gin.New()
		r.POST("/b2c/timeout", handler.B2CTimeout)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/b2c/timeout", bytes.NewBufferString(body))

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ResultCode":0,"ResultDesc":"Timeout received"}`, w.Body.String())
	}
}

func Test_RegisterC2BHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type mockBehavior func(r *handler_mocks.MockGateway)
	testCases := []struct {
		name               string
		requestBody        string
		mockBehavior       mockBehavior
		expectedStatusCode int
		expectedResponse   string
	}{
		{
			name:        "OK",
			requestBody: `{"confirmationURL":"https://merchant.example/c2b/confirmation","validationURL":"https://merchant.example/c2b/validation"}`,
			mockBehavior: func(r *handler_mocks.MockGateway) {
				r.EXPECT().
					RegisterC2BURLs(gomock.Any(), "https://merchant.example/c2b/confirmation", "https://merchant.example/c2b/validation").
					Return(domain.C2BRegisterResponse{
						OriginatorConversationID: "OC_777",
						ConversationID:           "AG_777",
						ResponseDescription:      "Success",
					}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedResponse:   `{"OriginatorConversationID":"OC_777","ConversationID":"AG_777","ResponseDescription":"Success"}`,
		},
		{
			name:               "Missing URLs",
			requestBody:        `{}`,
			expectedStatusCode: http.StatusBadRequest,
			expectedResponse:   `{"message":"confirmationURL and validationURL are required"}`,
		},
		{
			name:        "Gateway error",
			requestBody: `{"confirmationURL":"https://merchant.example/c2b/confirmation","validationURL":"https://merchant.example/c2b/validation"}`,
			mockBehavior: func(r *handler_mocks.MockGateway) {
				apiErr := &daraja.APIError{
					StatusCode:   http.StatusBadRequest,
					ErrorCode:    "400.003.01",
					ErrorMessage: "Short code already registered",
				}
				r.EXPECT().
					RegisterC2BURLs(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.C2BRegisterResponse{}, e.Wrap("daraja.RegisterC2BURLs", apiErr))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedResponse:   `{"message":"Failed to register C2B URLs","error":{"errorCode":"400.003.01","errorMessage":"Short code already registered"}}`,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			handler, mockGateway, _ := newTestHandler(t)
			if testCase.mockBehavior != nil {
				testCase.mockBehavior(mockGateway)
			}

			r := gin.New()
			r.POST("/c2b/register", handler.RegisterC2B)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/c2b/register", bytes.NewBufferString(testCase.requestBody))
			req.Header.Set("Content-Type", "application/json")

			r.ServeHTTP(w, req)

			assert.Equal(t, testCase.expectedStatusCode, w.Code)
			assert.JSONEq(t, testCase.expectedResponse, w.Body.String())
		})
	}
}

func Test_C2BConfirmationHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, body := range []string{tests.ConfirmationString, `broken`, ``} {
		handler, _, _ := newTestHandler(t)

		r := gin.New()
		r.POST("/c2b/confirmation", handler.C2BConfirmation)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/c2b/confirmation", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ResultCode":0,"ResultDesc":"Received successfully"}`, w.Body.String())
	}
}

func Test_C2BValidationHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	bodies := []string{
		tests.ConfirmationString,
		`{"TransAmount":"50.00"}`, // no BillRefNumber: still accepted
		``,
	}
	for _, body := range bodies {
		handler, _, _ := newTestHandler(t)

		r := gin.New()
		r.POST("/c2b/validation", handler.C2BValidation)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/c2b/validation", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ResultCode":0,"ResultDesc":"Accepted"}`, w.Body.String())
	}
}
