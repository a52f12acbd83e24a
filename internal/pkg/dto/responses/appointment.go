package responses

import "time"

type Appointment struct {
	ID                  string    `json:"id"`
	ProfessionalID      string    `json:"professional_id"`
	PatientID           string    `json:"patient_id"`
	AppointmentDatetime time.Time `json:"appointment_datetime"`
	PatientFirstName    string    `json:"patient_first_name"`
	PatientLastName     string    `json:"patient_last_name"`
	PatientPhone        string    `json:"patient_phone"`
	PatientEmail        string    `json:"patient_email"`
	Status              string    `json:"status"`
	PaymentStatus       string    `json:"payment_status"`
	MeetingLink         string    `json:"meeting_link,omitempty"`
	PaymentID           string    `json:"payment_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}
