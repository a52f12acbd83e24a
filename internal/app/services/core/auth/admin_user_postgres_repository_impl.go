package auth

import (
	"context"
	"database/sql"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/exceptions"
)

type AdminUserPostgresRepository struct {
	DB *sql.DB
}

func NewAdminUserPostgresRepository(db *sql.DB) contracts.AdminUserRepository {
	return &AdminUserPostgresRepository{DB: db}
}

func (r *AdminUserPostgresRepository) FindByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	query := `SELECT username, password_hash, created_at FROM admins WHERE username = $1`

	var admin models.AdminUser
	err := r.DB.QueryRowContext(ctx, query, username).Scan(&admin.Username, &admin.PasswordHash, &admin.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &admin, nil
}

func (r *AdminUserPostgresRepository) CreateAdminUser(ctx context.Context, admin *models.AdminUser) error {
	query := `INSERT INTO admins (username, password_hash, created_at) VALUES ($1, $2, $3)`

	_, err := r.DB.ExecContext(ctx, query, admin.Username, admin.PasswordHash, admin.CreatedAt)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}
