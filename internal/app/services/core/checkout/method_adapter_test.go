package checkout

import (
	"testing"

	"conexperto-service/internal/pkg/constvars"
	"conexperto-service/internal/pkg/dto/requests"
	"conexperto-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

func TestBuildGatewayMethodPayload(t *testing.T) {
	t.Run("Bank redirect builds full payload", func(t *testing.T) {
		payload, err := BuildGatewayMethodPayload(&requests.PaymentMethodRequest{
			Type:            constvars.PaymentMethodBankRedirect,
			NationalID:      "1.234.567-8",
			Email:           "client@example.com",
			InstitutionCode: "1007",
			Description:     "Career coaching session",
		}, "60-minute consultation")
		assert.NoError(t, err)
		assert.Equal(t, constvars.PaymentMethodBankRedirect, payload.Type)
		assert.NotNil(t, payload.BankRedirect)
		assert.Nil(t, payload.Nequi)
		assert.Nil(t, payload.Daviplata)
		assert.Equal(t, "12345678", payload.BankRedirect.NationalID)
		assert.Equal(t, "1007", payload.BankRedirect.InstitutionCode)
		assert.Equal(t, "Career coaching session", payload.BankRedirect.PaymentDescription)
	})

	t.Run("Bank redirect description defaults to service title", func(t *testing.T) {
		payload, err := BuildGatewayMethodPayload(&requests.PaymentMethodRequest{
			Type:            constvars.PaymentMethodBankRedirect,
			NationalID:      "12345678",
			Email:           "client@example.com",
			InstitutionCode: "1007",
		}, "60-minute consultation")
		assert.NoError(t, err)
		assert.Equal(t, "60-minute consultation", payload.BankRedirect.PaymentDescription)
	})

	t.Run("Bank redirect requires institution", func(t *testing.T) {
		_, err := BuildGatewayMethodPayload(&requests.PaymentMethodRequest{
			Type:       constvars.PaymentMethodBankRedirect,
			NationalID: "12345678",
			Email:      "client@example.com",
		}, "title")
		assert.Error(t, err)
	})

	t.Run("Bank redirect requires valid email", func(t *testing.T) {
		_, err := BuildGatewayMethodPayload(&requests.PaymentMethodRequest{
			Type:            constvars.PaymentMethodBankRedirect,
			NationalID:      "12345678",
			Email:           "not-an-email",
			InstitutionCode: "1007",
		}, "title")
		assert.Error(t, err)
	})

	t.Run("Bank redirect enumerates every violation", func(t *testing.T) {
		_, err := BuildGatewayMethodPayload(&requests.PaymentMethodRequest{
			Type:  constvars.PaymentMethodBankRedirect,
			Email: "not-an-email",
		}, "title")
		assert.Error(t, err)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Contains(t, customErr.ClientMessage, "document number is required")
		assert.Contains(t, customErr.ClientMessage, "a valid email is required")
		assert.Contains(t, customErr.ClientMessage, "a financial institution must be selected")
	})

	t.Run("Daviplata enumerates every violation", func(t *testing.T) {
		_, err := BuildGatewayMethodPayload(&requests.PaymentMethodRequest{
			Type:  constvars.PaymentMethodWalletDavi,
			Phone: "12345",
		}, "title")
		assert.Error(t, err)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Contains(t, customErr.ClientMessage, "document type is required")
		assert.Contains(t, customErr.ClientMessage, "document number is required")
		assert.Contains(t, customErr.ClientMessage, "phone")
	})

	t.Run("Nequi normalizes the phone", func(t *testing.T) {
		payload, err := BuildGatewayMethodPayload(&requests.PaymentMethodRequest{
			Type:  constvars.PaymentMethodWalletNequi,
			Phone: "3001234567",
		}, "title")
		assert.NoError(t, err)
		assert.NotNil(t, payload.Nequi)
		assert.Equal(t, "573001234567", payload.Nequi.Phone)
	})

	t.Run("Nequi rejects malformed phone", func(t *testing.T) {
		_, err := BuildGatewayMethodPayload(&requests.PaymentMethodRequest{
			Type:  constvars.PaymentMethodWalletNequi,
			Phone: "12345",
		}, "title")
		assert.Error(t, err)
	})

	t.Run("Daviplata builds document and phone", func(t *testing.T) {
		payload, err := BuildGatewayMethodPayload(&requests.PaymentMethodRequest{
			Type:           constvars.PaymentMethodWalletDavi,
			DocumentType:   "cc",
			DocumentNumber: "9.876.543-2",
			Phone:          "573001234567",
		}, "title")
		assert.NoError(t, err)
		assert.NotNil(t, payload.Daviplata)
		assert.Equal(t, "CC", payload.Daviplata.DocumentType, "document type is upper-cased")
		assert.Equal(t, "98765432", payload.Daviplata.DocumentNumber)
		assert.Equal(t, "573001234567", payload.Daviplata.Phone)
	})

	t.Run("Daviplata requires document type", func(t *testing.T) {
		_, err := BuildGatewayMethodPayload(&requests.PaymentMethodRequest{
			Type:           constvars.PaymentMethodWalletDavi,
			DocumentNumber: "98765432",
			Phone:          "3001234567",
		}, "title")
		assert.Error(t, err)
	})

	t.Run("Card is recognized but rejected", func(t *testing.T) {
		_, err := BuildGatewayMethodPayload(&requests.PaymentMethodRequest{
			Type: constvars.PaymentMethodCard,
		}, "title")
		assert.Error(t, err)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientCardNotEnabled, customErr.ClientMessage)
	})

	t.Run("Unknown method is rejected", func(t *testing.T) {
		_, err := BuildGatewayMethodPayload(&requests.PaymentMethodRequest{
			Type: "crypto",
		}, "title")
		assert.Error(t, err)
	})
}
