package contracts

import (
	"context"
	"io"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
)

// PaymentGatewayService is the narrow seam to the payment gateway. Order
// amounts are rupees; the adapter converts to the gateway's smallest unit.
type PaymentGatewayService interface {
	CreateOrder(ctx context.Context, amount float64, currency string) (*responses.PaymentOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

// MeetService provisions a video meeting link for a settled appointment.
type MeetService interface {
	CreateMeeting(ctx context.Context, appointment *models.Appointment, professional *models.Professional) (string, error)
}

// WhatsAppService queues an outbound message for asynchronous delivery.
type WhatsAppService interface {
	SendMessage(ctx context.Context, request *requests.WhatsAppMessage) error
}

// MessagingClient talks to the SMS/WhatsApp provider itself; the worker is
// its only caller.
type MessagingClient interface {
	Send(ctx context.Context, phoneNumber, message string) error
}

// NotificationService formats and dispatches booking notifications. Both
// methods are best-effort: failures are logged, never returned, because a
// missed message must not undo a completed settlement.
type NotificationService interface {
	NotifyPatient(ctx context.Context, appointment *models.Appointment, professional *models.Professional)
	NotifyProfessional(ctx context.Context, appointment *models.Appointment, professional *models.Professional)
}

type StorageService interface {
	UploadObject(ctx context.Context, objectName, contentType string, reader io.Reader, size int64) (string, error)
}
