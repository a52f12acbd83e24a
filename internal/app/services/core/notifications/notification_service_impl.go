package notifications

import (
	"context"
	"fmt"
	"sync"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

// notificationService formats confirmation texts and hands them to the
// WhatsApp queue. Every failure is logged and swallowed: a settled payment
// must stay settled even when the broker is down.
type notificationService struct {
	WhatsAppService contracts.WhatsAppService
	Log             *zap.Logger
}

var (
	notificationServiceInstance contracts.NotificationService
	onceNotificationService     sync.Once
)

func NewNotificationService(whatsAppService contracts.WhatsAppService, logger *zap.Logger) contracts.NotificationService {
	onceNotificationService.Do(func() {
		notificationServiceInstance = &notificationService{
			WhatsAppService: whatsAppService,
			Log:             logger,
		}
	})
	return notificationServiceInstance
}

func (s *notificationService) NotifyPatient(ctx context.Context, appointment *models.Appointment, professional *models.Professional) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	message := fmt.Sprintf(
		"Hi %s, your appointment with Dr. %s on %s is confirmed. Join the consultation here: %s",
		appointment.PatientFirstName,
		professional.FullName(),
		appointment.AppointmentDatetime.Format(constvars.NotificationTimeLayout),
		appointment.MeetingLink,
	)

	err := s.WhatsAppService.SendMessage(ctx, &requests.WhatsAppMessage{
		PhoneNumber: appointment.PatientPhone,
		Message:     message,
	})
	if err != nil {
		s.Log.Error("notificationService.NotifyPatient error queueing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
		return
	}

	s.Log.Info("notificationService.NotifyPatient queued message",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
}

func (s *notificationService) NotifyProfessional(ctx context.Context, appointment *models.Appointment, professional *models.Professional) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	message := fmt.Sprintf(
		"New paid consultation: %s %s (age %d) on %s. Concern: %s. Meeting link: %s",
		appointment.PatientFirstName,
		appointment.PatientLastName,
		appointment.PatientAge,
		appointment.AppointmentDatetime.Format(constvars.NotificationTimeLayout),
		appointment.IssueDetail,
		appointment.MeetingLink,
	)

	err := s.WhatsAppService.SendMessage(ctx, &requests.WhatsAppMessage{
		PhoneNumber: professional.Phone,
		Message:     message,
	})
	if err != nil {
		s.Log.Error("notificationService.NotifyProfessional error queueing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
		return
	}

	s.Log.Info("notificationService.NotifyProfessional queued message",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
}
