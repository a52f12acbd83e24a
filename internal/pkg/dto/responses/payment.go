package responses

// PaymentOrder is the handle the client needs to start a gateway checkout.
// Mock is set when the gateway was unavailable and the order was synthesized
// locally, so callers can tell the handle is non-authoritative.
type PaymentOrder struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
	Mock     bool   `json:"mock,omitempty"`
}

type SettlementResult struct {
	AppointmentID  string `json:"appointment_id"`
	PaymentID      string `json:"payment_id"`
	MeetingLink    string `json:"meeting_link"`
	AlreadySettled bool   `json:"already_settled,omitempty"`
}
