package constvars

// Client-facing messages. Kept deliberately vague so internals never leak.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientInvalidUsernameOrPassword     = "Invalid username or password"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientProfessionalNotFound          = "Professional not found"
	ErrClientPaymentNotFound               = "Payment not found"
	ErrClientSubdomainTaken                = "The requested subdomain is not available"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again later"
	ErrClientPaymentGatewayUnavailable     = "Payment service is temporarily unavailable, please try again later"
	ErrClientPaymentVerificationFailed     = "Payment verification failed, please contact support"
)

// Developer-facing messages, logged but only exposed outside production.
const (
	ErrDevValidationFailed           = "Request validation failed"
	ErrDevURLParamMissing            = "Required URL parameter %s is missing"
	ErrDevCannotParseJSON            = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON          = "Failed to marshal value to JSON"
	ErrDevCannotParseMultipartForm   = "Failed to parse multipart form"
	ErrDevServerDeadlineExceeded     = "Server deadline exceeded"
	ErrDevServerProcess              = "Server failed to process the request"
	ErrDevMissingRequestID           = "Request ID not found in request context"
	ErrDevMissingAdminIdentity       = "Admin identity not found in request context"
	ErrDevInvalidCredentials         = "Username or password does not match any admin account"
	ErrDevFailedToHashPassword       = "Failed to hash password"
	ErrDevAuthTokenMissing           = "Authorization token is missing from the request"
	ErrDevAuthGenerateToken          = "Failed to generate auth token"
	ErrDevAuthTokenInvalid           = "Auth token signature is invalid"
	ErrDevAuthTokenExpired           = "Auth token is expired"
	ErrDevAuthTokenInvalidOrExpired  = "Auth token is invalid or expired"
	ErrDevAuthSigningMethod          = "Unexpected auth token signing method"
	ErrDevAppointmentNotFound        = "Appointment does not exist in storage"
	ErrDevProfessionalNotFound       = "Professional does not exist or is not approved"
	ErrDevProfessionalNotApproved    = "Professional exists but is not in approved status"
	ErrDevSubdomainExhausted         = "Subdomain allocation exceeded the attempt bound"
	ErrDevPaymentAlreadySettled      = "Appointment payment is already settled"
	ErrDevPaymentGatewayCreateOrder  = "Payment gateway failed to create an order"
	ErrDevPaymentGatewayUnavailable  = "Payment gateway is unavailable and mock orders are disabled"
	ErrDevMeetProvisioningFailed     = "Meeting provisioning failed, placeholder link used"
	ErrDevPaymentSignatureMismatch   = "Payment gateway signature does not match the order and payment pair"
	ErrDevSettlementInProgress       = "Another settlement for this appointment is in flight"
	ErrDevInvalidProfessionalStatus  = "Professional status must be approved or rejected"
	ErrDevMongoDBFindDocument        = "MongoDB failed to find document"
	ErrDevMongoDBInsertDocument      = "MongoDB failed to insert document"
	ErrDevMongoDBUpdateDocument      = "MongoDB failed to update document"
	ErrDevMongoDBIterateDocuments    = "MongoDB failed to iterate documents"
	ErrDevPostgresDBFindData         = "Postgres failed to find data"
	ErrDevPostgresDBInsertData       = "Postgres failed to insert data"
	ErrDevPostgresDBUpdateData       = "Postgres failed to update data"
	ErrDevPostgresDBIterateDataset   = "Postgres failed to iterate dataset"
	ErrDevRedisGetData               = "Redis failed to get data"
	ErrDevRedisSetData               = "Redis failed to set data"
	ErrDevRedisDeleteData            = "Redis failed to delete data"
	ErrDevRedisSetNX                 = "Redis failed to set data with NX"
	ErrDevRedisUnlock                = "Redis failed to release lock"
	ErrDevRabbitMQPublishMessage     = "RabbitMQ failed to publish message to queue %s"
	ErrDevRabbitMQConsumeMessage     = "RabbitMQ failed to consume from queue %s"
	ErrDevMinioCreateObject          = "Minio failed to create object in bucket %s"
	ErrDevCreateHTTPRequest          = "Failed to create HTTP request"
	ErrDevSendHTTPRequest            = "Failed to send HTTP request"
	ErrDevMessagingProviderRejected  = "Messaging provider rejected the send request"
	ErrDevMessagingProviderNoAPIKey  = "Messaging provider API key is not configured"
)
