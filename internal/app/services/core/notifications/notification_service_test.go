package notifications

import (
	"context"
	"errors"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockWhatsAppService struct {
	mock.Mock
}

func (m *MockWhatsAppService) SendMessage(ctx context.Context, request *requests.WhatsAppMessage) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func confirmedAppointment() *models.Appointment {
	return &models.Appointment{
		ID:                  "appt_1",
		ProfessionalID:      "prof_1",
		AppointmentDatetime: time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC),
		PatientFirstName:    "Asha",
		PatientLastName:     "Nair",
		PatientPhone:        "9876543210",
		PatientAge:          32,
		IssueDetail:         "Recurring migraines",
		MeetingLink:         "https://meet.google.com/mock-abcd1234",
		PaymentStatus:       models.PaymentCompleted,
	}
}

func notifiedProfessional() *models.Professional {
	return &models.Professional{
		ID:        "prof_1",
		FirstName: "Priya",
		LastName:  "Sharma",
		Phone:     "9123456780",
	}
}

func TestNotificationService_NotifyPatient(t *testing.T) {
	t.Run("sends confirmation to the patient's number", func(t *testing.T) {
		whatsAppService := new(MockWhatsAppService)

		var captured *requests.WhatsAppMessage
		whatsAppService.On("SendMessage", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			captured = args.Get(1).(*requests.WhatsAppMessage)
		}).Return(nil)

		service := &notificationService{WhatsAppService: whatsAppService, Log: zap.NewNop()}
		service.NotifyPatient(context.Background(), confirmedAppointment(), notifiedProfessional())

		require.NotNil(t, captured)
		assert.Equal(t, "9876543210", captured.PhoneNumber)
		assert.Contains(t, captured.Message, "Hi Asha")
		assert.Contains(t, captured.Message, "Dr. Priya Sharma")
		assert.Contains(t, captured.Message, "https://meet.google.com/mock-abcd1234")
	})

	t.Run("swallows queue failures", func(t *testing.T) {
		whatsAppService := new(MockWhatsAppService)
		whatsAppService.On("SendMessage", mock.Anything, mock.Anything).Return(errors.New("broker unreachable"))

		service := &notificationService{WhatsAppService: whatsAppService, Log: zap.NewNop()}

		assert.NotPanics(t, func() {
			service.NotifyPatient(context.Background(), confirmedAppointment(), notifiedProfessional())
		})
	})
}

func TestNotificationService_NotifyProfessional(t *testing.T) {
	whatsAppService := new(MockWhatsAppService)

	var captured *requests.WhatsAppMessage
	whatsAppService.On("SendMessage", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(*requests.WhatsAppMessage)
	}).Return(nil)

	service := &notificationService{WhatsAppService: whatsAppService, Log: zap.NewNop()}
	service.NotifyProfessional(context.Background(), confirmedAppointment(), notifiedProfessional())

	require.NotNil(t, captured)
	assert.Equal(t, "9123456780", captured.PhoneNumber)
	assert.Contains(t, captured.Message, "Asha Nair (age 32)")
	assert.Contains(t, captured.Message, "Recurring migraines")
	assert.Contains(t, captured.Message, "https://meet.google.com/mock-abcd1234")
}
