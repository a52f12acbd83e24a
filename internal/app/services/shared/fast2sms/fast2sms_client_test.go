package fast2sms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"telecare-service/internal/app/config"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func newTestFast2SMSClient(internalConfig *config.InternalConfig) *fast2SMSClient {
	return &fast2SMSClient{
		InternalConfig: internalConfig,
		HTTPClient:     &http.Client{Timeout: time.Second},
		Limiter:        rate.NewLimiter(rate.Inf, 1),
		Log:            zap.NewNop(),
	}
}

func TestFast2SMSClient_Send(t *testing.T) {
	t.Run("posts the form with sender id and API key", func(t *testing.T) {
		var gotForm url.Values
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotForm = r.PostForm
			gotAuth = r.Header.Get("authorization")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newTestFast2SMSClient(&config.InternalConfig{
			WhatsApp: config.WhatsApp{
				Fast2SMSBaseUrl:  server.URL,
				Fast2SMSApiKey:   "test-key",
				Fast2SMSSenderID: "TLCARE",
			},
		})

		err := client.Send(context.Background(), "+91 98765 43210", "Your appointment is confirmed")
		require.NoError(t, err)

		assert.Equal(t, "test-key", gotAuth)
		assert.Equal(t, "q", gotForm.Get("route"))
		assert.Equal(t, "9876543210", gotForm.Get("numbers"))
		assert.Equal(t, "TLCARE", gotForm.Get("sender_id"))
		assert.Equal(t, "Your appointment is confirmed", gotForm.Get("message"))
	})

	t.Run("omits sender id when not configured", func(t *testing.T) {
		var gotForm url.Values
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotForm = r.PostForm
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newTestFast2SMSClient(&config.InternalConfig{
			WhatsApp: config.WhatsApp{
				Fast2SMSBaseUrl: server.URL,
				Fast2SMSApiKey:  "test-key",
			},
		})

		err := client.Send(context.Background(), "9876543210", "hello")
		require.NoError(t, err)
		assert.Empty(t, gotForm.Get("sender_id"))
	})

	t.Run("skips the send without an API key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should reach the provider")
		}))
		defer server.Close()

		client := newTestFast2SMSClient(&config.InternalConfig{
			WhatsApp: config.WhatsApp{Fast2SMSBaseUrl: server.URL},
		})

		err := client.Send(context.Background(), "9876543210", "hello")
		require.NoError(t, err)
	})

	t.Run("provider error status surfaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := newTestFast2SMSClient(&config.InternalConfig{
			WhatsApp: config.WhatsApp{
				Fast2SMSBaseUrl: server.URL,
				Fast2SMSApiKey:  "test-key",
			},
		})

		err := client.Send(context.Background(), "9876543210", "hello")
		require.Error(t, err)
	})
}
