package constvars

const (
	RazorpayOrdersEndpoint = "/v1/orders"

	// Razorpay amounts are integers in the smallest currency unit.
	RazorpayPaisePerRupee = 100

	RazorpayPaymentCaptured = "captured"
)
