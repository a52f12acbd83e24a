package contracts

import (
	"context"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
)

type AdminUserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	CreateAdminUser(ctx context.Context, admin *models.AdminUser) error
}

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.AdminLogin) (*responses.AdminLogin, error)
	// VerifyToken returns the admin username the token was issued to.
	VerifyToken(ctx context.Context, token string) (string, error)
}
