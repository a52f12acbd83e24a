package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("professional_status", validateProfessionalStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	phoneNumber := fl.Field().String()
	re := regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	return re.MatchString(phoneNumber)
}

func validateProfessionalStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "approved" || value == "rejected"
}
