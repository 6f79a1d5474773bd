package exceptions

import (
	"conexperto-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatAllValidationErrors flattens every field violation into one
// client-facing sentence so a single round trip surfaces the full list.
func FormatAllValidationErrors(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return constvars.ErrDevInvalidInput
	}

	var messages []string
	for _, fieldErr := range validationErrors {
		fieldName := strings.ToLower(fieldErr.Field())
		tag := fieldErr.Tag()
		customMessage, known := constvars.CustomValidationErrorMessages[tag]
		if tag == "phone_number" {
			messages = append(messages, customMessage)
			continue
		}
		if !known {
			customMessage = "is invalid"
		}
		if constvars.TagsWithParams[tag] {
			if tag == "oneof" {
				customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
			} else {
				customMessage = strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
			}
		}
		messages = append(messages, fieldName+" "+customMessage)
	}
	return strings.Join(messages, ", ")
}
