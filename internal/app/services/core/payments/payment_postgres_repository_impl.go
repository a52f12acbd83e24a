package payments

import (
	"context"
	"database/sql"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/exceptions"
)

type PaymentPostgresRepository struct {
	DB *sql.DB
}

func NewPaymentPostgresRepository(db *sql.DB) contracts.PaymentRepository {
	return &PaymentPostgresRepository{DB: db}
}

func (r *PaymentPostgresRepository) CreatePayment(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (id, appointment_id, professional_id, razorpay_payment_id, razorpay_order_id, amount, platform_fee, doctor_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.DB.ExecContext(ctx, query,
		payment.ID,
		payment.AppointmentID,
		payment.ProfessionalID,
		payment.RazorpayPaymentID,
		payment.RazorpayOrderID,
		payment.Amount,
		payment.PlatformFee,
		payment.DoctorAmount,
		payment.Status,
		payment.CreatedAt,
	)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (r *PaymentPostgresRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Payment, error) {
	query := `
		SELECT id, appointment_id, professional_id, razorpay_payment_id, razorpay_order_id, amount, platform_fee, doctor_amount, status, created_at
		FROM payments WHERE appointment_id = $1`

	var payment models.Payment
	err := r.DB.QueryRowContext(ctx, query, appointmentID).Scan(
		&payment.ID,
		&payment.AppointmentID,
		&payment.ProfessionalID,
		&payment.RazorpayPaymentID,
		&payment.RazorpayOrderID,
		&payment.Amount,
		&payment.PlatformFee,
		&payment.DoctorAmount,
		&payment.Status,
		&payment.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &payment, nil
}

func (r *PaymentPostgresRepository) Totals(ctx context.Context) (*models.PaymentTotals, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(amount), 0), COALESCE(SUM(platform_fee), 0), COALESCE(SUM(doctor_amount), 0)
		FROM payments`

	var totals models.PaymentTotals
	err := r.DB.QueryRowContext(ctx, query).Scan(&totals.Count, &totals.Gross, &totals.PlatformFees, &totals.DoctorAmount)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &totals, nil
}
