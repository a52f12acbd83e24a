package professionals

import (
	"context"
	"io"
	"strings"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

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

type MockStorageService struct {
	mock.Mock
}

func (m *MockStorageService) UploadObject(ctx context.Context, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	args := m.Called(ctx, objectName, contentType, reader, size)
	return args.String(0), args.Error(1)
}

func newTestProfessionalUsecase(professionalRepo *MockProfessionalRepository, storageService *MockStorageService) *professionalUsecase {
	return &professionalUsecase{
		ProfessionalRepository: professionalRepo,
		StorageService:         storageService,
		InternalConfig: &config.InternalConfig{
			App: config.App{BaseDomain: "telecare.in"},
		},
		Log: zap.NewNop(),
	}
}

func TestProfessionalUsecase_Create(t *testing.T) {
	t.Run("registers pending professional with generated subdomain", func(t *testing.T) {
		professionalRepo := new(MockProfessionalRepository)
		professionalRepo.On("SubdomainExists", mock.Anything, "priyasharma").Return(false, nil)
		professionalRepo.On("CreateProfessional", mock.Anything, mock.MatchedBy(func(professional *models.Professional) bool {
			return professional.Subdomain == "priyasharma" &&
				professional.Status == models.ProfessionalPending &&
				professional.ID != ""
		})).Return(nil)

		uc := newTestProfessionalUsecase(professionalRepo, new(MockStorageService))

		response, err := uc.Create(context.Background(), &requests.CreateProfessional{
			FirstName:      "Priya",
			LastName:       "Sharma",
			Email:          "priya@example.com",
			Phone:          "9123456780",
			Specialization: "Dermatology",
			ConsultingFees: 500,
		})
		require.NoError(t, err)
		assert.Equal(t, "priyasharma", response.Subdomain)
		assert.Equal(t, "pending", response.Status)
		// No landing page until the profile is approved.
		assert.Empty(t, response.LandingPageURL)

		professionalRepo.AssertExpectations(t)
	})

	t.Run("falls back to numbered subdomain on collision", func(t *testing.T) {
		professionalRepo := new(MockProfessionalRepository)
		professionalRepo.On("SubdomainExists", mock.Anything, "priyasharma").Return(true, nil)
		professionalRepo.On("SubdomainExists", mock.Anything, "priyasharma1").Return(false, nil)
		professionalRepo.On("CreateProfessional", mock.Anything, mock.Anything).Return(nil)

		uc := newTestProfessionalUsecase(professionalRepo, new(MockStorageService))

		response, err := uc.Create(context.Background(), &requests.CreateProfessional{
			FirstName:      "Priya",
			LastName:       "Sharma",
			Email:          "priya@example.com",
			Phone:          "9123456780",
			Specialization: "Dermatology",
			ConsultingFees: 500,
		})
		require.NoError(t, err)
		assert.Equal(t, "priyasharma1", response.Subdomain)
	})
}

func TestProfessionalUsecase_FindBySubdomain(t *testing.T) {
	t.Run("returns approved profile with landing page", func(t *testing.T) {
		professionalRepo := new(MockProfessionalRepository)
		professionalRepo.On("FindBySubdomain", mock.Anything, "priyasharma").Return(&models.Professional{
			ID:        "prof_1",
			FirstName: "Priya",
			LastName:  "Sharma",
			Subdomain: "priyasharma",
			Status:    models.ProfessionalApproved,
		}, nil)

		uc := newTestProfessionalUsecase(professionalRepo, new(MockStorageService))

		response, err := uc.FindBySubdomain(context.Background(), "priyasharma")
		require.NoError(t, err)
		assert.Equal(t, "https://priyasharma.telecare.in", response.LandingPageURL)
	})

	t.Run("hides unapproved profile", func(t *testing.T) {
		professionalRepo := new(MockProfessionalRepository)
		professionalRepo.On("FindBySubdomain", mock.Anything, "priyasharma").Return(&models.Professional{
			ID:        "prof_1",
			Subdomain: "priyasharma",
			Status:    models.ProfessionalPending,
		}, nil)

		uc := newTestProfessionalUsecase(professionalRepo, new(MockStorageService))

		_, err := uc.FindBySubdomain(context.Background(), "priyasharma")
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestProfessionalUsecase_UpdateStatus(t *testing.T) {
	t.Run("approves a pending professional", func(t *testing.T) {
		professionalRepo := new(MockProfessionalRepository)
		professionalRepo.On("UpdateStatus", mock.Anything, "prof_1", models.ProfessionalApproved).Return(true, nil)
		professionalRepo.On("FindByID", mock.Anything, "prof_1").Return(&models.Professional{
			ID:        "prof_1",
			Subdomain: "priyasharma",
			Status:    models.ProfessionalApproved,
		}, nil)

		uc := newTestProfessionalUsecase(professionalRepo, new(MockStorageService))

		response, err := uc.UpdateStatus(context.Background(), "prof_1", &requests.UpdateProfessionalStatus{Status: "approved"})
		require.NoError(t, err)
		assert.Equal(t, "approved", response.Status)
		assert.NotEmpty(t, response.LandingPageURL)
	})

	t.Run("rejects statuses outside the review verdicts", func(t *testing.T) {
		uc := newTestProfessionalUsecase(new(MockProfessionalRepository), new(MockStorageService))

		_, err := uc.UpdateStatus(context.Background(), "prof_1", &requests.UpdateProfessionalStatus{Status: "pending"})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("unknown professional", func(t *testing.T) {
		professionalRepo := new(MockProfessionalRepository)
		professionalRepo.On("UpdateStatus", mock.Anything, "prof_missing", models.ProfessionalRejected).Return(false, nil)

		uc := newTestProfessionalUsecase(professionalRepo, new(MockStorageService))

		_, err := uc.UpdateStatus(context.Background(), "prof_missing", &requests.UpdateProfessionalStatus{Status: "rejected"})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestProfessionalUsecase_UploadProfilePhoto(t *testing.T) {
	professionalRepo := new(MockProfessionalRepository)
	storageService := new(MockStorageService)

	professionalRepo.On("FindByID", mock.Anything, "prof_1").Return(&models.Professional{ID: "prof_1"}, nil)
	storageService.On("UploadObject", mock.Anything, "profile-photos/prof_1.png", "image/png", mock.Anything, int64(4)).
		Return("profile-photos/prof_1.png", nil)
	professionalRepo.On("UpdateProfilePhoto", mock.Anything, "prof_1", "profile-photos/prof_1.png").Return(true, nil)

	uc := newTestProfessionalUsecase(professionalRepo, storageService)

	storedName, err := uc.UploadProfilePhoto(context.Background(), "prof_1", "me.png", "image/png", strings.NewReader("data"), 4)
	require.NoError(t, err)
	assert.Equal(t, "profile-photos/prof_1.png", storedName)

	storageService.AssertExpectations(t)
	professionalRepo.AssertExpectations(t)
}
