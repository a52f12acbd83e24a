package contracts

import (
	"context"
	"io"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
)

type ProfessionalRepository interface {
	CreateProfessional(ctx context.Context, professional *models.Professional) error
	FindByID(ctx context.Context, professionalID string) (*models.Professional, error)
	FindBySubdomain(ctx context.Context, subdomain string) (*models.Professional, error)
	FindByStatus(ctx context.Context, status models.ProfessionalStatus) ([]models.Professional, error)
	SubdomainExists(ctx context.Context, subdomain string) (bool, error)
	UpdateStatus(ctx context.Context, professionalID string, status models.ProfessionalStatus) (bool, error)
	UpdateProfilePhoto(ctx context.Context, professionalID, profilePhoto string) (bool, error)
}

type ProfessionalUsecase interface {
	Create(ctx context.Context, request *requests.CreateProfessional) (*responses.Professional, error)
	FindApproved(ctx context.Context) ([]responses.Professional, error)
	FindBySubdomain(ctx context.Context, subdomain string) (*responses.Professional, error)
	UpdateStatus(ctx context.Context, professionalID string, request *requests.UpdateProfessionalStatus) (*responses.Professional, error)
	UploadProfilePhoto(ctx context.Context, professionalID, fileName, contentType string, file io.Reader, size int64) (string, error)
}
