package fast2sms

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type fast2SMSClient struct {
	InternalConfig *config.InternalConfig
	HTTPClient     *http.Client
	Limiter        *rate.Limiter
	Log            *zap.Logger
}

var (
	fast2SMSClientInstance contracts.MessagingClient
	onceFast2SMSClient     sync.Once
)

func NewFast2SMSClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.MessagingClient {
	onceFast2SMSClient.Do(func() {
		sendsPerSecond := internalConfig.WhatsApp.SendsPerSecond
		if sendsPerSecond <= 0 {
			sendsPerSecond = 1
		}
		fast2SMSClientInstance = &fast2SMSClient{
			InternalConfig: internalConfig,
			HTTPClient: &http.Client{
				Timeout: time.Duration(internalConfig.WhatsApp.RequestTimeoutInSeconds) * time.Second,
			},
			Limiter: rate.NewLimiter(rate.Limit(sendsPerSecond), 1),
			Log:     logger,
		}
	})
	return fast2SMSClientInstance
}

// Send delivers one text via the Fast2SMS bulkV2 endpoint. When no API key is
// configured the send is skipped, which keeps local environments from needing
// provider credentials.
func (c *fast2SMSClient) Send(ctx context.Context, phoneNumber, message string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if c.InternalConfig.WhatsApp.Fast2SMSApiKey == "" {
		c.Log.Info("fast2SMSClient.Send skipped, no API key configured",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil
	}

	if err := c.Limiter.Wait(ctx); err != nil {
		return err
	}

	localNumber := utils.NormalizeLocalPhoneNumber(phoneNumber)
	if localNumber == "" {
		c.Log.Warn("fast2SMSClient.Send skipped, phone number unusable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPhoneNumberKey, phoneNumber),
		)
		return nil
	}

	form := url.Values{}
	form.Set("route", "q")
	form.Set("numbers", localNumber)
	form.Set("message", message)
	if senderID := c.InternalConfig.WhatsApp.Fast2SMSSenderID; senderID != "" {
		form.Set("sender_id", senderID)
	}

	endpoint := c.InternalConfig.WhatsApp.Fast2SMSBaseUrl
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		c.Log.Error("fast2SMSClient.Send error building HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)
	req.Header.Set("authorization", c.InternalConfig.WhatsApp.Fast2SMSApiKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("fast2SMSClient.Send error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err := fmt.Errorf("fast2sms returned status %d", resp.StatusCode)
		c.Log.Error("fast2SMSClient.Send unexpected provider status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}

	c.Log.Info("fast2SMSClient.Send succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhoneNumberKey, localNumber),
	)
	return nil
}
