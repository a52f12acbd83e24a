package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           = contextKey("requestID")
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY = contextKey("isClientRequestID")
	CONTEXT_ADMIN_USERNAME_KEY       = contextKey("adminUsername")
)

const (
	DBDriverMongo    = "mongo"
	DBDriverPostgres = "postgres"
)

const (
	MongoCollectionProfessionals = "professionals"
	MongoCollectionPatients      = "patients"
	MongoCollectionAppointments  = "appointments"
	MongoCollectionPayments      = "payments"
	MongoCollectionAdmins        = "admins"
)

const (
	IDPrefixProfessional = "prof"
	IDPrefixPatient      = "pat"
	IDPrefixAppointment  = "appt"
	IDPrefixPayment      = "pay"
	IDPrefixOrder        = "order"
)

const (
	RedisKeySettlementLockFormat = "settlement:%s"
)

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"

	ProfessionalStatusPending  = "pending"
	ProfessionalStatusApproved = "approved"
	ProfessionalStatusRejected = "rejected"
)

const (
	DefaultCurrency = "INR"

	// Notification message timestamp layout, e.g. "02 Jan 2026, 04:30 PM".
	NotificationTimeLayout = "02 Jan 2006, 03:04 PM"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&pageSize=%d"
)
