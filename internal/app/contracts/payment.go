package contracts

import (
	"context"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
)

type PaymentRepository interface {
	// CreatePayment appends an immutable ledger row. Implementations rely
	// on the unique index on appointment_id to refuse a second row for the
	// same appointment.
	CreatePayment(ctx context.Context, payment *models.Payment) error
	FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Payment, error)
	Totals(ctx context.Context) (*models.PaymentTotals, error)
}

type PaymentUsecase interface {
	CreateOrder(ctx context.Context, request *requests.CreatePaymentOrder) (*responses.PaymentOrder, error)
	CompletePayment(ctx context.Context, request *requests.CompletePayment) (*responses.SettlementResult, error)
}

type AnalyticsUsecase interface {
	Overview(ctx context.Context) (*responses.Analytics, error)
}
