package payment_gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"net/http"
	"sync"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/responses"
	"telecare-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type razorpayService struct {
	InternalConfig *config.InternalConfig
	HTTPClient     *http.Client
	Log            *zap.Logger
}

var (
	razorpayServiceInstance contracts.PaymentGatewayService
	onceRazorpayService     sync.Once
)

func NewRazorpayService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	onceRazorpayService.Do(func() {
		razorpayServiceInstance = &razorpayService{
			InternalConfig: internalConfig,
			HTTPClient: &http.Client{
				Timeout: time.Duration(internalConfig.PaymentGateway.RequestTimeoutInSeconds) * time.Second,
			},
			Log: logger,
		}
	})
	return razorpayServiceInstance
}

type razorpayOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type razorpayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func (s *razorpayService) CreateOrder(ctx context.Context, amount float64, currency string) (*responses.PaymentOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("razorpayService.CreateOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Float64(constvars.LoggingAmountKey, amount),
	)

	amountInPaise := int64(math.Round(amount * constvars.RazorpayPaisePerRupee))
	payload := razorpayOrderRequest{
		Amount:   amountInPaise,
		Currency: currency,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	url := s.InternalConfig.PaymentGateway.BaseUrl + constvars.RazorpayOrdersEndpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		s.Log.Error("razorpayService.CreateOrder error building HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.SetBasicAuth(s.InternalConfig.PaymentGateway.KeyID, s.InternalConfig.PaymentGateway.KeySecret)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		s.Log.Error("razorpayService.CreateOrder error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err := fmt.Errorf("gateway returned status %d", resp.StatusCode)
		s.Log.Error("razorpayService.CreateOrder unexpected gateway status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrPaymentGatewayUnavailable(err)
	}

	var orderResponse razorpayOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&orderResponse); err != nil {
		s.Log.Error("razorpayService.CreateOrder error decoding gateway response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPaymentGatewayUnavailable(err)
	}

	s.Log.Info("razorpayService.CreateOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderResponse.ID),
	)
	return &responses.PaymentOrder{
		OrderID:  orderResponse.ID,
		Amount:   orderResponse.Amount,
		Currency: orderResponse.Currency,
		KeyID:    s.InternalConfig.PaymentGateway.KeyID,
	}, nil
}

// VerifySignature checks the checkout callback signature: hex-encoded
// HMAC-SHA256 over "orderID|paymentID" keyed with the gateway secret.
func (s *razorpayService) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.InternalConfig.PaymentGateway.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
