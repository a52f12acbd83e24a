package professionals

import (
	"context"
	"fmt"
	"io"
	"path"
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

type professionalUsecase struct {
	ProfessionalRepository contracts.ProfessionalRepository
	StorageService         contracts.StorageService
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

var (
	professionalUsecaseInstance contracts.ProfessionalUsecase
	onceProfessionalUsecase     sync.Once
)

func NewProfessionalUsecase(
	professionalRepository contracts.ProfessionalRepository,
	storageService contracts.StorageService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ProfessionalUsecase {
	onceProfessionalUsecase.Do(func() {
		professionalUsecaseInstance = &professionalUsecase{
			ProfessionalRepository: professionalRepository,
			StorageService:         storageService,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
	})
	return professionalUsecaseInstance
}

func (uc *professionalUsecase) Create(ctx context.Context, request *requests.CreateProfessional) (*responses.Professional, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("professionalUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	seed := request.FirstName + " " + request.LastName
	subdomain, err := utils.GenerateSubdomain(ctx, seed, uc.ProfessionalRepository.SubdomainExists)
	if err != nil {
		uc.Log.Error("professionalUsecase.Create error generating subdomain",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if _, ok := err.(*exceptions.CustomError); ok {
			return nil, err
		}
		return nil, exceptions.ErrSubdomainExhausted(err)
	}

	professional := &models.Professional{
		ID:             utils.GenerateID(constvars.IDPrefixProfessional),
		FirstName:      request.FirstName,
		LastName:       request.LastName,
		Email:          request.Email,
		Phone:          request.Phone,
		Specialization: request.Specialization,
		Qualification:  request.Qualification,
		ConsultingFees: request.ConsultingFees,
		Subdomain:      subdomain,
		Status:         models.ProfessionalPending,
		CreatedAt:      time.Now().UTC(),
	}

	if err := uc.ProfessionalRepository.CreateProfessional(ctx, professional); err != nil {
		uc.Log.Error("professionalUsecase.Create error calling ProfessionalRepository.CreateProfessional",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("professionalUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfessionalIDKey, professional.ID),
		zap.String(constvars.LoggingSubdomainKey, professional.Subdomain),
	)
	return uc.buildResponse(professional), nil
}

func (uc *professionalUsecase) FindApproved(ctx context.Context) ([]responses.Professional, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	professionals, err := uc.ProfessionalRepository.FindByStatus(ctx, models.ProfessionalApproved)
	if err != nil {
		uc.Log.Error("professionalUsecase.FindApproved error calling ProfessionalRepository.FindByStatus",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.Professional, 0, len(professionals))
	for i := range professionals {
		result = append(result, *uc.buildResponse(&professionals[i]))
	}
	return result, nil
}

func (uc *professionalUsecase) FindBySubdomain(ctx context.Context, subdomain string) (*responses.Professional, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("professionalUsecase.FindBySubdomain called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubdomainKey, subdomain),
	)

	professional, err := uc.ProfessionalRepository.FindBySubdomain(ctx, subdomain)
	if err != nil {
		uc.Log.Error("professionalUsecase.FindBySubdomain error calling ProfessionalRepository.FindBySubdomain",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if professional == nil || !professional.IsApproved() {
		// Unapproved profiles stay invisible on public surfaces.
		return nil, exceptions.ErrProfessionalNotFound(nil)
	}

	return uc.buildResponse(professional), nil
}

func (uc *professionalUsecase) UpdateStatus(ctx context.Context, professionalID string, request *requests.UpdateProfessionalStatus) (*responses.Professional, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("professionalUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfessionalIDKey, professionalID),
		zap.String("status", request.Status),
	)

	status := models.ProfessionalStatus(request.Status)
	if status != models.ProfessionalApproved && status != models.ProfessionalRejected {
		return nil, exceptions.ErrInvalidProfessionalStatus(fmt.Errorf("status %q not allowed", request.Status))
	}

	updated, err := uc.ProfessionalRepository.UpdateStatus(ctx, professionalID, status)
	if err != nil {
		uc.Log.Error("professionalUsecase.UpdateStatus error calling ProfessionalRepository.UpdateStatus",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !updated {
		return nil, exceptions.ErrProfessionalNotFound(nil)
	}

	professional, err := uc.ProfessionalRepository.FindByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, exceptions.ErrProfessionalNotFound(nil)
	}

	uc.Log.Info("professionalUsecase.UpdateStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfessionalIDKey, professionalID),
	)
	return uc.buildResponse(professional), nil
}

func (uc *professionalUsecase) UploadProfilePhoto(ctx context.Context, professionalID, fileName, contentType string, file io.Reader, size int64) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("professionalUsecase.UploadProfilePhoto called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfessionalIDKey, professionalID),
	)

	professional, err := uc.ProfessionalRepository.FindByID(ctx, professionalID)
	if err != nil {
		return "", err
	}
	if professional == nil {
		return "", exceptions.ErrProfessionalNotFound(nil)
	}

	objectName := fmt.Sprintf("profile-photos/%s%s", professionalID, path.Ext(fileName))
	storedName, err := uc.StorageService.UploadObject(ctx, objectName, contentType, file, size)
	if err != nil {
		uc.Log.Error("professionalUsecase.UploadProfilePhoto error calling StorageService.UploadObject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	if _, err := uc.ProfessionalRepository.UpdateProfilePhoto(ctx, professionalID, storedName); err != nil {
		uc.Log.Error("professionalUsecase.UploadProfilePhoto error calling ProfessionalRepository.UpdateProfilePhoto",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	uc.Log.Info("professionalUsecase.UploadProfilePhoto succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfessionalIDKey, professionalID),
	)
	return storedName, nil
}

func (uc *professionalUsecase) buildResponse(professional *models.Professional) *responses.Professional {
	response := &responses.Professional{
		ID:             professional.ID,
		FirstName:      professional.FirstName,
		LastName:       professional.LastName,
		Email:          professional.Email,
		Phone:          professional.Phone,
		Specialization: professional.Specialization,
		Qualification:  professional.Qualification,
		ConsultingFees: professional.ConsultingFees,
		ProfilePhoto:   professional.ProfilePhoto,
		Subdomain:      professional.Subdomain,
		Status:         string(professional.Status),
	}
	if professional.IsApproved() {
		response.LandingPageURL = fmt.Sprintf("https://%s.%s", professional.Subdomain, uc.InternalConfig.App.BaseDomain)
	}
	return response
}
