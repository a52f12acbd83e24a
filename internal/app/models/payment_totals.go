package models

// PaymentTotals is the aggregate the admin analytics endpoint reports.
type PaymentTotals struct {
	Count        int     `json:"count" bson:"count"`
	Gross        float64 `json:"gross" bson:"gross"`
	PlatformFees float64 `json:"platform_fees" bson:"platform_fees"`
	DoctorAmount float64 `json:"doctor_amount" bson:"doctor_amount"`
}
