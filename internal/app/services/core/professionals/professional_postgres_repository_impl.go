package professionals

import (
	"context"
	"database/sql"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/exceptions"
)

type ProfessionalPostgresRepository struct {
	DB *sql.DB
}

func NewProfessionalPostgresRepository(db *sql.DB) contracts.ProfessionalRepository {
	return &ProfessionalPostgresRepository{DB: db}
}

const professionalColumns = `id, first_name, last_name, email, phone, specialization, qualification, consulting_fees, COALESCE(profile_photo, ''), subdomain, status, created_at`

func scanProfessional(row interface{ Scan(...interface{}) error }) (*models.Professional, error) {
	var professional models.Professional
	err := row.Scan(
		&professional.ID,
		&professional.FirstName,
		&professional.LastName,
		&professional.Email,
		&professional.Phone,
		&professional.Specialization,
		&professional.Qualification,
		&professional.ConsultingFees,
		&professional.ProfilePhoto,
		&professional.Subdomain,
		&professional.Status,
		&professional.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &professional, nil
}

func (r *ProfessionalPostgresRepository) CreateProfessional(ctx context.Context, professional *models.Professional) error {
	query := `
		INSERT INTO professionals (id, first_name, last_name, email, phone, specialization, qualification, consulting_fees, subdomain, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.DB.ExecContext(ctx, query,
		professional.ID,
		professional.FirstName,
		professional.LastName,
		professional.Email,
		professional.Phone,
		professional.Specialization,
		professional.Qualification,
		professional.ConsultingFees,
		professional.Subdomain,
		professional.Status,
		professional.CreatedAt,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (r *ProfessionalPostgresRepository) FindByID(ctx context.Context, professionalID string) (*models.Professional, error) {
	query := `SELECT ` + professionalColumns + ` FROM professionals WHERE id = $1`

	professional, err := scanProfessional(r.DB.QueryRowContext(ctx, query, professionalID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return professional, nil
}

func (r *ProfessionalPostgresRepository) FindBySubdomain(ctx context.Context, subdomain string) (*models.Professional, error) {
	query := `SELECT ` + professionalColumns + ` FROM professionals WHERE subdomain = $1`

	professional, err := scanProfessional(r.DB.QueryRowContext(ctx, query, subdomain))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return professional, nil
}

func (r *ProfessionalPostgresRepository) FindByStatus(ctx context.Context, status models.ProfessionalStatus) ([]models.Professional, error) {
	query := `SELECT ` + professionalColumns + ` FROM professionals WHERE status = $1 ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, status)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var professionals []models.Professional
	for rows.Next() {
		professional, err := scanProfessional(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		professionals = append(professionals, *professional)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return professionals, nil
}

func (r *ProfessionalPostgresRepository) SubdomainExists(ctx context.Context, subdomain string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM professionals WHERE subdomain = $1)`

	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, subdomain).Scan(&exists); err != nil {
		return false, exceptions.ErrPostgresDBFindData(err)
	}
	return exists, nil
}

func (r *ProfessionalPostgresRepository) UpdateStatus(ctx context.Context, professionalID string, status models.ProfessionalStatus) (bool, error) {
	query := `UPDATE professionals SET status = $2 WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query, professionalID, status)
	if err != nil {
		return false, exceptions.ErrPostgresDBUpdateData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, exceptions.ErrPostgresDBUpdateData(err)
	}
	return affected > 0, nil
}

func (r *ProfessionalPostgresRepository) UpdateProfilePhoto(ctx context.Context, professionalID, profilePhoto string) (bool, error) {
	query := `UPDATE professionals SET profile_photo = $2 WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query, professionalID, profilePhoto)
	if err != nil {
		return false, exceptions.ErrPostgresDBUpdateData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, exceptions.ErrPostgresDBUpdateData(err)
	}
	return affected > 0, nil
}
