package requests

type CreateProfessional struct {
	FirstName      string  `json:"first_name" validate:"required"`
	LastName       string  `json:"last_name" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	Phone          string  `json:"phone" validate:"required,phone_number"`
	Specialization string  `json:"specialization" validate:"required"`
	Qualification  string  `json:"qualification"`
	ConsultingFees float64 `json:"consulting_fees" validate:"required,gt=0"`
}

type UpdateProfessionalStatus struct {
	Status string `json:"status" validate:"required,professional_status"`
}
