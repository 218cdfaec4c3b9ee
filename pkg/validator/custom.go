package validator

import "github.com/go-playground/validator/v10"

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("alert_status", validateAlertStatus)
	validate.RegisterValidation("session_status", validateSessionStatus)
	validate.RegisterValidation("cancel_reason", validateCancelReason)
}

func validateAlertStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "active", "responded", "resolved", "cancelled", "false_alarm":
		return true
	}
	return false
}

func validateSessionStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "active", "completed", "emergency":
		return true
	}
	return false
}

func validateCancelReason(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "accidental", "too_far", "no_longer_needed", "safety_concern", "other":
		return true
	}
	return false
}
