package responses

type Professional struct {
	ID             string  `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Specialization string  `json:"specialization"`
	Qualification  string  `json:"qualification,omitempty"`
	ConsultingFees float64 `json:"consulting_fees"`
	ProfilePhoto   string  `json:"profile_photo,omitempty"`
	Subdomain      string  `json:"subdomain"`
	Status         string  `json:"status"`
	LandingPageURL string  `json:"landing_page_url,omitempty"`
}
