package requests

// WhatsAppMessage is the payload published to the notification queue and
// consumed by the messaging worker.
type WhatsAppMessage struct {
	PhoneNumber string `json:"phone_number"`
	Message     string `json:"message"`
}
