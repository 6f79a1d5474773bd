package checkout

import (
	"errors"
	"fmt"
	"strings"

	"conexperto-service/internal/pkg/constvars"
	"conexperto-service/internal/pkg/dto/requests"
	"conexperto-service/internal/pkg/exceptions"
	"conexperto-service/internal/pkg/utils"
)

// BuildGatewayMethodPayload translates the user's chosen payment method into
// the gateway's wire shape, validating and normalizing the variant-specific
// fields. All violations for a variant are collected and reported in one
// error. serviceTitle fills the payment description when the caller left it
// blank.
func BuildGatewayMethodPayload(method *requests.PaymentMethodRequest, serviceTitle string) (*requests.GatewayMethodPayload, error) {
	switch method.Type {
	case constvars.PaymentMethodBankRedirect:
		return buildBankRedirectPayload(method, serviceTitle)
	case constvars.PaymentMethodWalletNequi:
		return buildNequiPayload(method)
	case constvars.PaymentMethodWalletDavi:
		return buildDaviplataPayload(method)
	case constvars.PaymentMethodCard:
		return nil, exceptions.ErrCardNotEnabled(nil)
	default:
		return nil, exceptions.ErrClientCustomMessage(fmt.Errorf("unsupported payment method %q", method.Type))
	}
}

func methodViolations(violations []string) error {
	return exceptions.ErrClientCustomMessage(errors.New(strings.Join(violations, ", ")))
}

func buildBankRedirectPayload(method *requests.PaymentMethodRequest, serviceTitle string) (*requests.GatewayMethodPayload, error) {
	var violations []string

	nationalID, err := utils.NormalizeDocumentNumber(method.NationalID)
	if err != nil {
		violations = append(violations, "national id: "+err.Error())
	}
	email := strings.TrimSpace(method.Email)
	if email == "" || !strings.Contains(email, "@") {
		violations = append(violations, "a valid email is required for bank redirect payments")
	}
	institutionCode := strings.TrimSpace(method.InstitutionCode)
	if institutionCode == "" {
		violations = append(violations, "a financial institution must be selected")
	}
	if len(violations) > 0 {
		return nil, methodViolations(violations)
	}

	description := strings.TrimSpace(method.Description)
	if description == "" {
		description = serviceTitle
	}

	return &requests.GatewayMethodPayload{
		Type: constvars.PaymentMethodBankRedirect,
		BankRedirect: &requests.BankRedirectPayload{
			NationalID:         nationalID,
			Email:              email,
			InstitutionCode:    institutionCode,
			PaymentDescription: description,
		},
	}, nil
}

func buildNequiPayload(method *requests.PaymentMethodRequest) (*requests.GatewayMethodPayload, error) {
	phone, err := utils.NormalizeWalletPhone(method.Phone)
	if err != nil {
		return nil, methodViolations([]string{err.Error()})
	}
	return &requests.GatewayMethodPayload{
		Type: constvars.PaymentMethodWalletNequi,
		Nequi: &requests.NequiPayload{
			Phone: phone,
		},
	}, nil
}

func buildDaviplataPayload(method *requests.PaymentMethodRequest) (*requests.GatewayMethodPayload, error) {
	var violations []string

	documentType := strings.ToUpper(strings.TrimSpace(method.DocumentType))
	if documentType == "" {
		violations = append(violations, "document type is required for daviplata payments")
	}
	documentNumber, err := utils.NormalizeDocumentNumber(method.DocumentNumber)
	if err != nil {
		violations = append(violations, err.Error())
	}
	phone, err := utils.NormalizeWalletPhone(method.Phone)
	if err != nil {
		violations = append(violations, err.Error())
	}
	if len(violations) > 0 {
		return nil, methodViolations(violations)
	}

	return &requests.GatewayMethodPayload{
		Type: constvars.PaymentMethodWalletDavi,
		Daviplata: &requests.DaviplataPayload{
			DocumentType:   documentType,
			DocumentNumber: documentNumber,
			Phone:          phone,
		},
	}, nil
}
