package appointments

import (
	"context"
	"database/sql"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"
)

type AppointmentPostgresRepository struct {
	DB *sql.DB
}

func NewAppointmentPostgresRepository(db *sql.DB) contracts.AppointmentRepository {
	return &AppointmentPostgresRepository{DB: db}
}

const appointmentColumns = `id, professional_id, patient_id, appointment_datetime, patient_first_name, patient_last_name, patient_phone, patient_email, patient_gender, patient_age, referral_source, issue_detail, status, payment_status, COALESCE(payment_id, ''), COALESCE(meeting_link, ''), whatsapp_sent, reminder_sent, created_at`

func scanAppointment(row interface{ Scan(...interface{}) error }) (*models.Appointment, error) {
	var appointment models.Appointment
	err := row.Scan(
		&appointment.ID,
		&appointment.ProfessionalID,
		&appointment.PatientID,
		&appointment.AppointmentDatetime,
		&appointment.PatientFirstName,
		&appointment.PatientLastName,
		&appointment.PatientPhone,
		&appointment.PatientEmail,
		&appointment.PatientGender,
		&appointment.PatientAge,
		&appointment.ReferralSource,
		&appointment.IssueDetail,
		&appointment.Status,
		&appointment.PaymentStatus,
		&appointment.PaymentID,
		&appointment.MeetingLink,
		&appointment.WhatsAppSent,
		&appointment.ReminderSent,
		&appointment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *AppointmentPostgresRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) error {
	query := `
		INSERT INTO appointments (id, professional_id, patient_id, appointment_datetime, patient_first_name, patient_last_name, patient_phone, patient_email, patient_gender, patient_age, referral_source, issue_detail, status, payment_status, whatsapp_sent, reminder_sent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := r.DB.ExecContext(ctx, query,
		appointment.ID,
		appointment.ProfessionalID,
		appointment.PatientID,
		appointment.AppointmentDatetime,
		appointment.PatientFirstName,
		appointment.PatientLastName,
		appointment.PatientPhone,
		appointment.PatientEmail,
		appointment.PatientGender,
		appointment.PatientAge,
		appointment.ReferralSource,
		appointment.IssueDetail,
		appointment.Status,
		appointment.PaymentStatus,
		appointment.WhatsAppSent,
		appointment.ReminderSent,
		appointment.CreatedAt,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (r *AppointmentPostgresRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	appointment, err := scanAppointment(r.DB.QueryRowContext(ctx, query, appointmentID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return appointment, nil
}

func (r *AppointmentPostgresRepository) FindByProfessionalID(ctx context.Context, professionalID string) ([]models.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE professional_id = $1 ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, professionalID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var appointments []models.Appointment
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		appointments = append(appointments, *appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return appointments, nil
}

// SettlePayment relies on the WHERE clause for idempotency: once the row is
// completed a rerun updates zero rows.
func (r *AppointmentPostgresRepository) SettlePayment(ctx context.Context, appointmentID, paymentRef, meetingLink string) (bool, error) {
	query := `
		UPDATE appointments
		SET payment_status = $2, payment_id = $3, meeting_link = $4, whatsapp_sent = TRUE
		WHERE id = $1 AND payment_status = $5`

	result, err := r.DB.ExecContext(ctx, query,
		appointmentID,
		constvars.PaymentStatusCompleted,
		paymentRef,
		meetingLink,
		constvars.PaymentStatusPending,
	)
	if err != nil {
		return false, exceptions.ErrPostgresDBUpdateData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, exceptions.ErrPostgresDBUpdateData(err)
	}
	return affected > 0, nil
}

func (r *AppointmentPostgresRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM appointments`).Scan(&count); err != nil {
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return count, nil
}

func (r *AppointmentPostgresRepository) CountByPaymentStatus(ctx context.Context, status models.AppointmentPaymentStatus) (int, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM appointments WHERE payment_status = $1`, status).Scan(&count); err != nil {
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return count, nil
}
