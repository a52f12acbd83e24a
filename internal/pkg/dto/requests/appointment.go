package requests

type CreateAppointment struct {
	ProfessionalID      string `json:"professional_id" validate:"required"`
	AppointmentDatetime string `json:"appointment_datetime" validate:"required"`
	PatientFirstName    string `json:"patient_first_name" validate:"required"`
	PatientLastName     string `json:"patient_last_name" validate:"required"`
	PatientPhone        string `json:"patient_phone" validate:"required,phone_number"`
	PatientEmail        string `json:"patient_email" validate:"required,email"`
	PatientGender       string `json:"patient_gender" validate:"required"`
	PatientAge          int    `json:"patient_age" validate:"required,gt=0"`
	ReferralSource      string `json:"referral_source" validate:"required"`
	IssueDetail         string `json:"issue_detail" validate:"required"`
}
