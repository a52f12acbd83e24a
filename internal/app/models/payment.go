package models

import "time"

// Payment is an append-only ledger row, one per settled appointment. The
// unique index on appointment_id is what makes settlement happen at most
// once; rows are never updated after insert.
type Payment struct {
	ID                string    `json:"id" bson:"id"`
	AppointmentID     string    `json:"appointment_id" bson:"appointment_id"`
	ProfessionalID    string    `json:"professional_id" bson:"professional_id"`
	RazorpayPaymentID string    `json:"razorpay_payment_id" bson:"razorpay_payment_id"`
	RazorpayOrderID   string    `json:"razorpay_order_id" bson:"razorpay_order_id"`
	Amount            float64   `json:"amount" bson:"amount"`
	PlatformFee       float64   `json:"platform_fee" bson:"platform_fee"`
	DoctorAmount      float64   `json:"doctor_amount" bson:"doctor_amount"`
	Status            string    `json:"status" bson:"status"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
}
