package payments

import (
	"context"
	"fmt"
	"sync"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const settlementLockTTL = 30 * time.Second

type paymentUsecase struct {
	AppointmentRepository  contracts.AppointmentRepository
	ProfessionalRepository contracts.ProfessionalRepository
	PaymentRepository      contracts.PaymentRepository
	PaymentGateway         contracts.PaymentGatewayService
	MeetService            contracts.MeetService
	NotificationService    contracts.NotificationService
	LockerService          contracts.LockerService
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	professionalRepository contracts.ProfessionalRepository,
	paymentRepository contracts.PaymentRepository,
	paymentGateway contracts.PaymentGatewayService,
	meetService contracts.MeetService,
	notificationService contracts.NotificationService,
	lockerService contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			AppointmentRepository:  appointmentRepository,
			ProfessionalRepository: professionalRepository,
			PaymentRepository:      paymentRepository,
			PaymentGateway:         paymentGateway,
			MeetService:            meetService,
			NotificationService:    notificationService,
			LockerService:          lockerService,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
	})
	return paymentUsecaseInstance
}

func (uc *paymentUsecase) CreateOrder(ctx context.Context, request *requests.CreatePaymentOrder) (*responses.PaymentOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreateOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	professional, err := uc.ProfessionalRepository.FindByID(ctx, appointment.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, exceptions.ErrProfessionalNotFound(nil)
	}

	order, err := uc.PaymentGateway.CreateOrder(ctx, professional.ConsultingFees, constvars.DefaultCurrency)
	if err != nil {
		if !uc.InternalConfig.PaymentGateway.AllowMockOrder {
			uc.Log.Error("paymentUsecase.CreateOrder gateway unavailable and mock orders disabled",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPaymentGatewayUnavailable(err)
		}

		// Degraded path for non-live environments: hand out a synthetic
		// order so the checkout flow stays testable without the gateway.
		order = &responses.PaymentOrder{
			OrderID:  utils.GenerateID(constvars.IDPrefixOrder),
			Amount:   int64(professional.ConsultingFees * constvars.RazorpayPaisePerRupee),
			Currency: constvars.DefaultCurrency,
			KeyID:    uc.InternalConfig.PaymentGateway.KeyID,
			Mock:     true,
		}
		uc.Log.Warn("paymentUsecase.CreateOrder synthesized mock order",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, order.OrderID),
			zap.Error(err),
		)
	}

	uc.Log.Info("paymentUsecase.CreateOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, order.OrderID),
	)
	return order, nil
}

// CompletePayment settles an appointment exactly once. The conditional
// repository update is the authoritative guard; the Redis lock only narrows
// the window where two callers do duplicate side-effect work.
func (uc *paymentUsecase) CompletePayment(ctx context.Context, request *requests.CompletePayment) (*responses.SettlementResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CompletePayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
		zap.String(constvars.LoggingPaymentIDKey, request.RazorpayPaymentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if appointment.IsSettled() {
		return uc.settledResult(ctx, appointment, request)
	}

	if request.RazorpaySignature != "" {
		if !uc.PaymentGateway.VerifySignature(request.RazorpayOrderID, request.RazorpayPaymentID, request.RazorpaySignature) {
			uc.Log.Warn("paymentUsecase.CompletePayment signature mismatch",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingOrderIDKey, request.RazorpayOrderID),
			)
			return nil, exceptions.ErrInvalidPaymentSignature(nil)
		}
	}

	lockKey := fmt.Sprintf(constvars.RedisKeySettlementLockFormat, request.AppointmentID)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, settlementLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		// Someone else is mid-settlement. Re-read so a finished settlement
		// still returns success rather than a conflict.
		appointment, err = uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
		if err != nil {
			return nil, err
		}
		if appointment != nil && appointment.IsSettled() {
			return uc.settledResult(ctx, appointment, request)
		}
		return nil, exceptions.ErrSettlementInProgress(nil)
	}
	defer func() {
		if err := uc.LockerService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Error("paymentUsecase.CompletePayment error releasing settlement lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}()

	professional, err := uc.ProfessionalRepository.FindByID(ctx, appointment.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, exceptions.ErrProfessionalNotFound(nil)
	}

	meetingLink, err := uc.MeetService.CreateMeeting(ctx, appointment, professional)
	if err != nil {
		// The meeting must never block money movement. Fall back to the
		// deterministic placeholder room.
		uc.Log.Warn("paymentUsecase.CompletePayment meeting provisioning failed, using placeholder",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		meetingLink = fmt.Sprintf("https://meet.google.com/mock-%s", utils.GenerateMeetCode(appointment.ID))
	}

	applied, err := uc.AppointmentRepository.SettlePayment(ctx, appointment.ID, request.RazorpayPaymentID, meetingLink)
	if err != nil {
		return nil, err
	}
	if !applied {
		appointment, err = uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
		if err != nil {
			return nil, err
		}
		if appointment == nil {
			return nil, exceptions.ErrAppointmentNotFound(nil)
		}
		uc.Log.Info("paymentUsecase.CompletePayment already settled by concurrent caller",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		)
		return uc.settledResult(ctx, appointment, request)
	}

	platformFee, doctorAmount := SplitFee(professional.ConsultingFees, uc.InternalConfig.Fee.PlatformPercent)
	payment := &models.Payment{
		ID:                utils.GenerateID(constvars.IDPrefixPayment),
		AppointmentID:     appointment.ID,
		ProfessionalID:    professional.ID,
		RazorpayPaymentID: request.RazorpayPaymentID,
		RazorpayOrderID:   request.RazorpayOrderID,
		Amount:            professional.ConsultingFees,
		PlatformFee:       platformFee,
		DoctorAmount:      doctorAmount,
		Status:            constvars.PaymentStatusCompleted,
		CreatedAt:         time.Now().UTC(),
	}
	if err := uc.PaymentRepository.CreatePayment(ctx, payment); err != nil {
		uc.Log.Error("paymentUsecase.CompletePayment error inserting ledger row",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
		return nil, err
	}

	appointment.PaymentStatus = models.PaymentCompleted
	appointment.PaymentID = request.RazorpayPaymentID
	appointment.MeetingLink = meetingLink

	// Notifications run detached from the request so a slow broker cannot
	// fail a settlement that already happened.
	notifyCtx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
	notifyAppointment := *appointment
	notifyProfessional := *professional
	go func() {
		uc.NotificationService.NotifyPatient(notifyCtx, &notifyAppointment, &notifyProfessional)
		uc.NotificationService.NotifyProfessional(notifyCtx, &notifyAppointment, &notifyProfessional)
	}()

	uc.Log.Info("paymentUsecase.CompletePayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingPaymentIDKey, payment.ID),
		zap.String(constvars.LoggingMeetingLinkKey, meetingLink),
	)
	return &responses.SettlementResult{
		AppointmentID: appointment.ID,
		PaymentID:     request.RazorpayPaymentID,
		MeetingLink:   meetingLink,
	}, nil
}

// settledResult answers a settlement request for an appointment that is
// already completed. Before answering it makes sure the ledger row exists:
// an earlier caller may have flipped the appointment and then crashed before
// its payment insert, and without the repair every retry would report
// success while the ledger stays empty.
func (uc *paymentUsecase) settledResult(ctx context.Context, appointment *models.Appointment, request *requests.CompletePayment) (*responses.SettlementResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	existing, err := uc.PaymentRepository.FindByAppointmentID(ctx, appointment.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		professional, err := uc.ProfessionalRepository.FindByID(ctx, appointment.ProfessionalID)
		if err != nil {
			return nil, err
		}
		if professional == nil {
			return nil, exceptions.ErrProfessionalNotFound(nil)
		}

		platformFee, doctorAmount := SplitFee(professional.ConsultingFees, uc.InternalConfig.Fee.PlatformPercent)
		payment := &models.Payment{
			ID:                utils.GenerateID(constvars.IDPrefixPayment),
			AppointmentID:     appointment.ID,
			ProfessionalID:    professional.ID,
			RazorpayPaymentID: appointment.PaymentID,
			RazorpayOrderID:   request.RazorpayOrderID,
			Amount:            professional.ConsultingFees,
			PlatformFee:       platformFee,
			DoctorAmount:      doctorAmount,
			Status:            constvars.PaymentStatusCompleted,
			CreatedAt:         time.Now().UTC(),
		}
		if err := uc.PaymentRepository.CreatePayment(ctx, payment); err != nil {
			// A concurrent repair may have won the unique index on
			// appointment_id. Only a genuinely absent row is a failure.
			existing, findErr := uc.PaymentRepository.FindByAppointmentID(ctx, appointment.ID)
			if findErr != nil || existing == nil {
				uc.Log.Error("paymentUsecase.CompletePayment error restoring ledger row",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
					zap.Error(err),
				)
				return nil, err
			}
		} else {
			uc.Log.Info("paymentUsecase.CompletePayment restored missing ledger row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
				zap.String(constvars.LoggingPaymentIDKey, payment.ID),
			)
		}
	}

	return &responses.SettlementResult{
		AppointmentID:  appointment.ID,
		PaymentID:      appointment.PaymentID,
		MeetingLink:    appointment.MeetingLink,
		AlreadySettled: true,
	}, nil
}
