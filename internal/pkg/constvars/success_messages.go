package constvars

const (
	LoginSuccessMessage = "Successfully logged in"

	CreateAppointmentSuccessMessage = "Successfully created appointment"
	GetAppointmentSuccessMessage    = "Successfully retrieved appointment"
	GetAppointmentsSuccessMessage   = "Successfully retrieved appointments"

	CreatePaymentOrderSuccessMessage = "Successfully created payment order"
	CompletePaymentSuccessMessage    = "Successfully completed payment"

	CreateProfessionalSuccessMessage       = "Successfully created professional"
	GetProfessionalSuccessMessage          = "Successfully retrieved professional"
	GetProfessionalsSuccessMessage         = "Successfully retrieved professionals"
	UpdateProfessionalStatusSuccessMessage = "Successfully updated professional status"
	UploadProfilePhotoSuccessMessage       = "Successfully uploaded profile photo"

	GetAnalyticsSuccessMessage = "Successfully retrieved analytics"
)
