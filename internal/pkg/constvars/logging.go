package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingResponseLengthKey = "response_length"
	LoggingQueryParamsKey    = "query_params"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingAppointmentIDKey  = "appointment_id"
	LoggingProfessionalIDKey = "professional_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingPaymentIDKey      = "payment_id"
	LoggingOrderIDKey        = "order_id"
	LoggingSubdomainKey      = "subdomain"
	LoggingAdminUsernameKey  = "admin_username"
	LoggingMeetingLinkKey    = "meeting_link"
	LoggingAmountKey         = "amount"
	LoggingPhoneNumberKey    = "phone_number"
	LoggingQueueNameKey      = "queue_name"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
)
