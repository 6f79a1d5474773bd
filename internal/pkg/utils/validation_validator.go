package utils

import (
	"regexp"

	"conexperto-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("payment_method", validatePaymentMethod)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("currency_code", validateCurrencyCode)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.PaymentMethodBankRedirect,
		constvars.PaymentMethodWalletNequi,
		constvars.PaymentMethodWalletDavi,
		constvars.PaymentMethodCard:
		return true
	}
	return false
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	_, err := NormalizeWalletPhone(fl.Field().String())
	return err == nil
}

var reCurrencyCode = regexp.MustCompile(`^[A-Z]{3}$`)

func validateCurrencyCode(fl validator.FieldLevel) bool {
	return reCurrencyCode.MatchString(fl.Field().String())
}
