package responses

type Analytics struct {
	TotalAppointments     int     `json:"total_appointments"`
	CompletedAppointments int     `json:"completed_appointments"`
	TotalPayments         int     `json:"total_payments"`
	GrossRevenue          float64 `json:"gross_revenue"`
	PlatformRevenue       float64 `json:"platform_revenue"`
	DoctorPayouts         float64 `json:"doctor_payouts"`
}
