package auth

import (
	"context"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAdminUserRepository struct {
	mock.Mock
}

func (m *MockAdminUserRepository) FindByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	args := m.Called(ctx, username)
	if admin, ok := args.Get(0).(*models.AdminUser); ok {
		return admin, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdminUserRepository) CreateAdminUser(ctx context.Context, admin *models.AdminUser) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func newTestAuthUsecase(adminUserRepo *MockAdminUserRepository) *authUsecase {
	return &authUsecase{
		AdminUserRepository: adminUserRepo,
		InternalConfig: &config.InternalConfig{
			JWT: config.JWT{
				Secret:        "test-secret",
				ExpTimeInHour: 1,
			},
		},
		Log: zap.NewNop(),
	}
}

func storedAdmin(t *testing.T, password string) *models.AdminUser {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &models.AdminUser{
		Username:     "admin",
		PasswordHash: hash,
	}
}

func TestAuthUsecase_Login(t *testing.T) {
	t.Run("issues token for valid credentials", func(t *testing.T) {
		adminUserRepo := new(MockAdminUserRepository)
		adminUserRepo.On("FindByUsername", mock.Anything, "admin").Return(storedAdmin(t, "s3cret"), nil)

		uc := newTestAuthUsecase(adminUserRepo)

		response, err := uc.Login(context.Background(), &requests.AdminLogin{Username: "admin", Password: "s3cret"})
		require.NoError(t, err)
		assert.Equal(t, "admin", response.Username)
		assert.NotEmpty(t, response.Token)

		// The token it hands out must verify.
		username, err := uc.VerifyToken(context.Background(), response.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin", username)
	})

	t.Run("unknown username", func(t *testing.T) {
		adminUserRepo := new(MockAdminUserRepository)
		adminUserRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, nil)

		uc := newTestAuthUsecase(adminUserRepo)

		_, err := uc.Login(context.Background(), &requests.AdminLogin{Username: "ghost", Password: "whatever"})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientInvalidUsernameOrPassword, customErr.ClientMessage)
	})

	t.Run("wrong password", func(t *testing.T) {
		adminUserRepo := new(MockAdminUserRepository)
		adminUserRepo.On("FindByUsername", mock.Anything, "admin").Return(storedAdmin(t, "s3cret"), nil)

		uc := newTestAuthUsecase(adminUserRepo)

		_, err := uc.Login(context.Background(), &requests.AdminLogin{Username: "admin", Password: "wrong"})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		// Same client message as an unknown user so the two cases cannot be
		// told apart by a caller probing for usernames.
		assert.Equal(t, constvars.ErrClientInvalidUsernameOrPassword, customErr.ClientMessage)
	})
}

func TestAuthUsecase_VerifyToken(t *testing.T) {
	uc := newTestAuthUsecase(new(MockAdminUserRepository))

	_, err := uc.VerifyToken(context.Background(), "not-a-token")
	require.Error(t, err)

	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
}
