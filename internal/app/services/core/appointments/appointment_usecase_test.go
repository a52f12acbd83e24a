package appointments

import (
	"context"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if appointment, ok := args.Get(0).(*models.Appointment); ok {
		return appointment, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAppointmentRepository) FindByProfessionalID(ctx context.Context, professionalID string) ([]models.Appointment, error) {
	args := m.Called(ctx, professionalID)
	if appointments, ok := args.Get(0).([]models.Appointment); ok {
		return appointments, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAppointmentRepository) SettlePayment(ctx context.Context, appointmentID, paymentRef, meetingLink string) (bool, error) {
	args := m.Called(ctx, appointmentID, paymentRef, meetingLink)
	return args.Bool(0), args.Error(1)
}

func (m *MockAppointmentRepository) CountAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockAppointmentRepository) CountByPaymentStatus(ctx context.Context, status models.AppointmentPaymentStatus) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

type MockProfessionalRepository struct {
	mock.Mock
}

func (m *MockProfessionalRepository) CreateProfessional(ctx context.Context, professional *models.Professional) error {
	args := m.Called(ctx, professional)
	return args.Error(0)
}

func (m *MockProfessionalRepository) FindByID(ctx context.Context, professionalID string) (*models.Professional, error) {
	args := m.Called(ctx, professionalID)
	if professional, ok := args.Get(0).(*models.Professional); ok {
		return professional, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfessionalRepository) FindBySubdomain(ctx context.Context, subdomain string) (*models.Professional, error) {
	args := m.Called(ctx, subdomain)
	if professional, ok := args.Get(0).(*models.Professional); ok {
		return professional, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfessionalRepository) FindByStatus(ctx context.Context, status models.ProfessionalStatus) ([]models.Professional, error) {
	args := m.Called(ctx, status)
	if professionals, ok := args.Get(0).([]models.Professional); ok {
		return professionals, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfessionalRepository) SubdomainExists(ctx context.Context, subdomain string) (bool, error) {
	args := m.Called(ctx, subdomain)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfessionalRepository) UpdateStatus(ctx context.Context, professionalID string, status models.ProfessionalStatus) (bool, error) {
	args := m.Called(ctx, professionalID, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfessionalRepository) UpdateProfilePhoto(ctx context.Context, professionalID, profilePhoto string) (bool, error) {
	args := m.Called(ctx, professionalID, profilePhoto)
	return args.Bool(0), args.Error(1)
}

func newTestAppointmentUsecase(
	appointmentRepo *MockAppointmentRepository,
	patientRepo *MockPatientRepository,
	professionalRepo *MockProfessionalRepository,
) *appointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository:  appointmentRepo,
		PatientRepository:      patientRepo,
		ProfessionalRepository: professionalRepo,
		Log:                    zap.NewNop(),
	}
}

func bookingRequest() *requests.CreateAppointment {
	return &requests.CreateAppointment{
		ProfessionalID:      "prof_1",
		AppointmentDatetime: "2026-09-10T15:00:00Z",
		PatientFirstName:    "Asha",
		PatientLastName:     "Nair",
		PatientPhone:        "9876543210",
		PatientEmail:        "asha@example.com",
		PatientGender:       "female",
		PatientAge:          32,
		ReferralSource:      "instagram",
		IssueDetail:         "Recurring migraines",
	}
}

func TestAppointmentUsecase_Book(t *testing.T) {
	t.Run("creates patient and scheduled appointment", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		patientRepo := new(MockPatientRepository)
		professionalRepo := new(MockProfessionalRepository)

		professionalRepo.On("FindByID", mock.Anything, "prof_1").Return(&models.Professional{
			ID:     "prof_1",
			Status: models.ProfessionalApproved,
		}, nil)
		patientRepo.On("CreatePatient", mock.Anything, mock.MatchedBy(func(patient *models.Patient) bool {
			return patient.FirstName == "Asha" && patient.Age == 32 && patient.ID != ""
		})).Return(nil)
		appointmentRepo.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(appointment *models.Appointment) bool {
			return appointment.ProfessionalID == "prof_1" &&
				appointment.Status == models.AppointmentScheduled &&
				appointment.PaymentStatus == models.PaymentPending &&
				appointment.PatientFirstName == "Asha" &&
				appointment.AppointmentDatetime.Equal(time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC))
		})).Return(nil)

		uc := newTestAppointmentUsecase(appointmentRepo, patientRepo, professionalRepo)

		response, err := uc.Book(context.Background(), bookingRequest())
		require.NoError(t, err)
		assert.Equal(t, "scheduled", response.Status)
		assert.Equal(t, "pending", response.PaymentStatus)
		assert.NotEmpty(t, response.ID)
		assert.NotEmpty(t, response.PatientID)

		appointmentRepo.AssertExpectations(t)
		patientRepo.AssertExpectations(t)
	})

	t.Run("accepts dashboard datetime format", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		patientRepo := new(MockPatientRepository)
		professionalRepo := new(MockProfessionalRepository)

		professionalRepo.On("FindByID", mock.Anything, "prof_1").Return(&models.Professional{
			ID:     "prof_1",
			Status: models.ProfessionalApproved,
		}, nil)
		patientRepo.On("CreatePatient", mock.Anything, mock.Anything).Return(nil)
		appointmentRepo.On("CreateAppointment", mock.Anything, mock.Anything).Return(nil)

		uc := newTestAppointmentUsecase(appointmentRepo, patientRepo, professionalRepo)

		request := bookingRequest()
		request.AppointmentDatetime = "2026-09-10 15:00:00"

		_, err := uc.Book(context.Background(), request)
		require.NoError(t, err)
	})

	t.Run("rejects unparseable datetime", func(t *testing.T) {
		uc := newTestAppointmentUsecase(new(MockAppointmentRepository), new(MockPatientRepository), new(MockProfessionalRepository))

		request := bookingRequest()
		request.AppointmentDatetime = "next tuesday"

		_, err := uc.Book(context.Background(), request)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("rejects unknown professional", func(t *testing.T) {
		professionalRepo := new(MockProfessionalRepository)
		professionalRepo.On("FindByID", mock.Anything, "prof_1").Return(nil, nil)

		uc := newTestAppointmentUsecase(new(MockAppointmentRepository), new(MockPatientRepository), professionalRepo)

		_, err := uc.Book(context.Background(), bookingRequest())
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("rejects professional pending approval", func(t *testing.T) {
		professionalRepo := new(MockProfessionalRepository)
		professionalRepo.On("FindByID", mock.Anything, "prof_1").Return(&models.Professional{
			ID:     "prof_1",
			Status: models.ProfessionalPending,
		}, nil)

		patientRepo := new(MockPatientRepository)
		uc := newTestAppointmentUsecase(new(MockAppointmentRepository), patientRepo, professionalRepo)

		_, err := uc.Book(context.Background(), bookingRequest())
		require.Error(t, err)
		patientRepo.AssertNotCalled(t, "CreatePatient", mock.Anything, mock.Anything)
	})
}

func TestAppointmentUsecase_FindByID(t *testing.T) {
	t.Run("returns mapped appointment", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		appointmentRepo.On("FindByID", mock.Anything, "appt_1").Return(&models.Appointment{
			ID:            "appt_1",
			Status:        models.AppointmentScheduled,
			PaymentStatus: models.PaymentCompleted,
			MeetingLink:   "https://meet.google.com/mock-abcd1234",
		}, nil)

		uc := newTestAppointmentUsecase(appointmentRepo, new(MockPatientRepository), new(MockProfessionalRepository))

		response, err := uc.FindByID(context.Background(), "appt_1")
		require.NoError(t, err)
		assert.Equal(t, "completed", response.PaymentStatus)
		assert.Equal(t, "https://meet.google.com/mock-abcd1234", response.MeetingLink)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		appointmentRepo.On("FindByID", mock.Anything, "appt_missing").Return(nil, nil)

		uc := newTestAppointmentUsecase(appointmentRepo, new(MockPatientRepository), new(MockProfessionalRepository))

		_, err := uc.FindByID(context.Background(), "appt_missing")
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestAppointmentUsecase_FindByProfessional(t *testing.T) {
	t.Run("lists appointments for a known professional", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		professionalRepo := new(MockProfessionalRepository)

		professionalRepo.On("FindByID", mock.Anything, "prof_1").Return(&models.Professional{
			ID:     "prof_1",
			Status: models.ProfessionalApproved,
		}, nil)
		appointmentRepo.On("FindByProfessionalID", mock.Anything, "prof_1").Return([]models.Appointment{
			{ID: "appt_1", ProfessionalID: "prof_1"},
			{ID: "appt_2", ProfessionalID: "prof_1"},
		}, nil)

		uc := newTestAppointmentUsecase(appointmentRepo, new(MockPatientRepository), professionalRepo)

		appointments, err := uc.FindByProfessional(context.Background(), "prof_1")
		require.NoError(t, err)
		require.Len(t, appointments, 2)
		assert.Equal(t, "appt_1", appointments[0].ID)
	})

	t.Run("unknown professional", func(t *testing.T) {
		professionalRepo := new(MockProfessionalRepository)
		professionalRepo.On("FindByID", mock.Anything, "prof_missing").Return(nil, nil)

		uc := newTestAppointmentUsecase(new(MockAppointmentRepository), new(MockPatientRepository), professionalRepo)

		_, err := uc.FindByProfessional(context.Background(), "prof_missing")
		require.Error(t, err)
	})
}

func TestParseAppointmentDatetime(t *testing.T) {
	parsed, err := parseAppointmentDatetime("2026-09-10T15:04")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())

	_, err = parseAppointmentDatetime("")
	assert.Error(t, err)
}
