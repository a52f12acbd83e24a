package requests

type CreatePaymentOrder struct {
	AppointmentID string `json:"appointment_id" validate:"required"`
}

type CompletePayment struct {
	AppointmentID     string `json:"appointment_id" validate:"required"`
	RazorpayPaymentID string `json:"payment_id" validate:"required"`
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature,omitempty"`
}
