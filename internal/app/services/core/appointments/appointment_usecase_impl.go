package appointments

import (
	"context"
	"fmt"
	"sync"
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

// acceptedDatetimeLayouts lists the formats bookings arrive in. Clients send
// RFC 3339; the admin dashboard still posts the second form.
var acceptedDatetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

type appointmentUsecase struct {
	AppointmentRepository  contracts.AppointmentRepository
	PatientRepository      contracts.PatientRepository
	ProfessionalRepository contracts.ProfessionalRepository
	Log                    *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	patientRepository contracts.PatientRepository,
	professionalRepository contracts.ProfessionalRepository,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository:  appointmentRepository,
			PatientRepository:      patientRepository,
			ProfessionalRepository: professionalRepository,
			Log:                    logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) Book(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfessionalIDKey, request.ProfessionalID),
	)

	appointmentDatetime, err := parseAppointmentDatetime(request.AppointmentDatetime)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	professional, err := uc.ProfessionalRepository.FindByID(ctx, request.ProfessionalID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Book error calling ProfessionalRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if professional == nil || !professional.IsApproved() {
		// A rejected or pending professional cannot take bookings, and the
		// caller is not told which of the two it was.
		return nil, exceptions.ErrProfessionalNotFound(nil)
	}

	now := time.Now().UTC()
	patient := &models.Patient{
		ID:        utils.GenerateID(constvars.IDPrefixPatient),
		FirstName: request.PatientFirstName,
		LastName:  request.PatientLastName,
		Phone:     request.PatientPhone,
		Email:     request.PatientEmail,
		Gender:    request.PatientGender,
		Age:       request.PatientAge,
		CreatedAt: now,
	}
	if err := uc.PatientRepository.CreatePatient(ctx, patient); err != nil {
		uc.Log.Error("appointmentUsecase.Book error calling PatientRepository.CreatePatient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	appointment := &models.Appointment{
		ID:                  utils.GenerateID(constvars.IDPrefixAppointment),
		ProfessionalID:      professional.ID,
		PatientID:           patient.ID,
		AppointmentDatetime: appointmentDatetime,
		PatientFirstName:    patient.FirstName,
		PatientLastName:     patient.LastName,
		PatientPhone:        patient.Phone,
		PatientEmail:        patient.Email,
		PatientGender:       patient.Gender,
		PatientAge:          patient.Age,
		ReferralSource:      request.ReferralSource,
		IssueDetail:         request.IssueDetail,
		Status:              models.AppointmentScheduled,
		PaymentStatus:       models.PaymentPending,
		CreatedAt:           now,
	}
	if err := uc.AppointmentRepository.CreateAppointment(ctx, appointment); err != nil {
		uc.Log.Error("appointmentUsecase.Book error calling AppointmentRepository.CreateAppointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.Book succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return buildAppointmentResponse(appointment), nil
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindByID error calling AppointmentRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	return buildAppointmentResponse(appointment), nil
}

func (uc *appointmentUsecase) FindByProfessional(ctx context.Context, professionalID string) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	professional, err := uc.ProfessionalRepository.FindByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, exceptions.ErrProfessionalNotFound(nil)
	}

	appointments, err := uc.AppointmentRepository.FindByProfessionalID(ctx, professionalID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindByProfessional error calling AppointmentRepository.FindByProfessionalID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		result = append(result, *buildAppointmentResponse(&appointments[i]))
	}
	return result, nil
}

func parseAppointmentDatetime(raw string) (time.Time, error) {
	for _, layout := range acceptedDatetimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized appointment_datetime %q", raw)
}

func buildAppointmentResponse(appointment *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		ID:                  appointment.ID,
		ProfessionalID:      appointment.ProfessionalID,
		PatientID:           appointment.PatientID,
		AppointmentDatetime: appointment.AppointmentDatetime,
		PatientFirstName:    appointment.PatientFirstName,
		PatientLastName:     appointment.PatientLastName,
		PatientPhone:        appointment.PatientPhone,
		PatientEmail:        appointment.PatientEmail,
		Status:              string(appointment.Status),
		PaymentStatus:       string(appointment.PaymentStatus),
		MeetingLink:         appointment.MeetingLink,
		PaymentID:           appointment.PaymentID,
		CreatedAt:           appointment.CreatedAt,
	}
}
