package models

import "time"

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

type AppointmentPaymentStatus string

const (
	PaymentPending   AppointmentPaymentStatus = "pending"
	PaymentCompleted AppointmentPaymentStatus = "completed"
	PaymentFailed    AppointmentPaymentStatus = "failed"
)

// Appointment is the central aggregate. The patient contact fields are
// denormalized from the Patient snapshot so notifications need no join.
type Appointment struct {
	ID                  string                   `json:"id" bson:"id"`
	ProfessionalID      string                   `json:"professional_id" bson:"professional_id"`
	PatientID           string                   `json:"patient_id" bson:"patient_id"`
	AppointmentDatetime time.Time                `json:"appointment_datetime" bson:"appointment_datetime"`
	PatientFirstName    string                   `json:"patient_first_name" bson:"patient_first_name"`
	PatientLastName     string                   `json:"patient_last_name" bson:"patient_last_name"`
	PatientPhone        string                   `json:"patient_phone" bson:"patient_phone"`
	PatientEmail        string                   `json:"patient_email" bson:"patient_email"`
	PatientGender       string                   `json:"patient_gender" bson:"patient_gender"`
	PatientAge          int                      `json:"patient_age" bson:"patient_age"`
	ReferralSource      string                   `json:"referral_source" bson:"referral_source"`
	IssueDetail         string                   `json:"issue_detail" bson:"issue_detail"`
	Status              AppointmentStatus        `json:"status" bson:"status"`
	PaymentStatus       AppointmentPaymentStatus `json:"payment_status" bson:"payment_status"`
	PaymentID           string                   `json:"payment_id,omitempty" bson:"payment_id,omitempty"`
	MeetingLink         string                   `json:"meeting_link,omitempty" bson:"meeting_link,omitempty"`
	WhatsAppSent        bool                     `json:"whatsapp_sent" bson:"whatsapp_sent"`
	ReminderSent        bool                     `json:"reminder_sent" bson:"reminder_sent"`
	CreatedAt           time.Time                `json:"created_at" bson:"created_at"`
}

func (a *Appointment) IsSettled() bool {
	return a.PaymentStatus == PaymentCompleted
}
