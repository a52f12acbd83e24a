package auth

import (
	"context"
	"sync"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	AdminUserRepository contracts.AdminUserRepository
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	adminUserRepository contracts.AdminUserRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			AdminUserRepository: adminUserRepository,
			InternalConfig:      internalConfig,
			Log:                 logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.AdminLogin) (*responses.AdminLogin, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAdminUsernameKey, request.Username),
	)

	admin, err := uc.AdminUserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling AdminUserRepository.FindByUsername",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if admin == nil {
		uc.Log.Info("authUsecase.Login unknown username",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAdminUsernameKey, request.Username),
		)
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, admin.PasswordHash) {
		uc.Log.Info("authUsecase.Login password mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAdminUsernameKey, request.Username),
		)
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	token, err := utils.GenerateAdminJWT(admin.Username, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		uc.Log.Error("authUsecase.Login error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAdminUsernameKey, admin.Username),
	)
	return &responses.AdminLogin{
		Token:    token,
		Username: admin.Username,
	}, nil
}

func (uc *authUsecase) VerifyToken(ctx context.Context, token string) (string, error) {
	username, err := utils.ParseAdminJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return "", err
	}
	return username, nil
}
