package contracts

import (
	"context"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
)

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByProfessionalID(ctx context.Context, professionalID string) ([]models.Appointment, error)
	// SettlePayment flips payment_status from pending to completed and
	// records the payment reference and meeting link in one conditional
	// update. It reports false when no pending row matched, which means a
	// concurrent caller settled the appointment first.
	SettlePayment(ctx context.Context, appointmentID, paymentRef, meetingLink string) (bool, error)
	CountAll(ctx context.Context) (int, error)
	CountByPaymentStatus(ctx context.Context, status models.AppointmentPaymentStatus) (int, error)
}

type AppointmentUsecase interface {
	Book(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*responses.Appointment, error)
	FindByProfessional(ctx context.Context, professionalID string) ([]responses.Appointment, error)
}
