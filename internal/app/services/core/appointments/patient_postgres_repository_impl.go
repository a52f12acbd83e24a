package appointments

import (
	"context"
	"database/sql"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/exceptions"
)

type PatientPostgresRepository struct {
	DB *sql.DB
}

func NewPatientPostgresRepository(db *sql.DB) contracts.PatientRepository {
	return &PatientPostgresRepository{DB: db}
}

func (r *PatientPostgresRepository) CreatePatient(ctx context.Context, patient *models.Patient) error {
	query := `
		INSERT INTO patients (id, first_name, last_name, phone, email, gender, age, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.DB.ExecContext(ctx, query,
		patient.ID,
		patient.FirstName,
		patient.LastName,
		patient.Phone,
		patient.Email,
		patient.Gender,
		patient.Age,
		patient.CreatedAt,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}
