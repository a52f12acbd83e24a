package contracts

import (
	"context"
	"telecare-service/internal/app/models"
)

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) error
}
