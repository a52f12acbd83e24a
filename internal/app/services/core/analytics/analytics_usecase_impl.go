package analytics

import (
	"context"
	"sync"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type analyticsUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	PaymentRepository     contracts.PaymentRepository
	Log                   *zap.Logger
}

var (
	analyticsUsecaseInstance contracts.AnalyticsUsecase
	onceAnalyticsUsecase     sync.Once
)

func NewAnalyticsUsecase(
	appointmentRepository contracts.AppointmentRepository,
	paymentRepository contracts.PaymentRepository,
	logger *zap.Logger,
) contracts.AnalyticsUsecase {
	onceAnalyticsUsecase.Do(func() {
		analyticsUsecaseInstance = &analyticsUsecase{
			AppointmentRepository: appointmentRepository,
			PaymentRepository:     paymentRepository,
			Log:                   logger,
		}
	})
	return analyticsUsecaseInstance
}

func (uc *analyticsUsecase) Overview(ctx context.Context) (*responses.Analytics, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("analyticsUsecase.Overview called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	totalAppointments, err := uc.AppointmentRepository.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	completedAppointments, err := uc.AppointmentRepository.CountByPaymentStatus(ctx, models.PaymentCompleted)
	if err != nil {
		return nil, err
	}

	totals, err := uc.PaymentRepository.Totals(ctx)
	if err != nil {
		return nil, err
	}

	return &responses.Analytics{
		TotalAppointments:     totalAppointments,
		CompletedAppointments: completedAppointments,
		TotalPayments:         totals.Count,
		GrossRevenue:          totals.Gross,
		PlatformRevenue:       totals.PlatformFees,
		DoctorPayouts:         totals.DoctorAmount,
	}, nil
}
