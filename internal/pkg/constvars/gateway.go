package constvars

// Payment method identifiers accepted by the checkout pipeline. They form a
// closed set; card is recognized but rejected at selection time while the
// card product track is still gated.
const (
	PaymentMethodBankRedirect = "bank_redirect"
	PaymentMethodWalletNequi  = "nequi"
	PaymentMethodWalletDavi   = "daviplata"
	PaymentMethodCard         = "card"
)

// GatewayPaymentStatus is a typed payment status reported by the gateway on
// the reconciliation callback.
type GatewayPaymentStatus string

const (
	GatewayPaymentStatusCreated    GatewayPaymentStatus = "CREATED"
	GatewayPaymentStatusPending    GatewayPaymentStatus = "PENDING"
	GatewayPaymentStatusApproved   GatewayPaymentStatus = "APPROVED"
	GatewayPaymentStatusDeclined   GatewayPaymentStatus = "DECLINED"
	GatewayPaymentStatusVoided     GatewayPaymentStatus = "VOIDED"
	GatewayPaymentStatusExpired    GatewayPaymentStatus = "EXPIRED"
	GatewayPaymentStatusError      GatewayPaymentStatus = "ERROR"
	GatewayPaymentStatusInProgress GatewayPaymentStatus = "PAYMENT_IN_PROGRESS"
)

const (
	// SettlementCurrency is the single currency the gateway accepts.
	SettlementCurrency = "COP"
	// SettlementCurrencyMinorDigits is the display precision of the
	// settlement currency; COP quotes whole pesos.
	SettlementCurrencyMinorDigits = 0
	// PhoneCountryPrefix is the international dialing prefix applied to
	// 10-digit local wallet phone numbers.
	PhoneCountryPrefix = "57"
	// LocalPhoneDigits is the length of a national mobile number without
	// the dialing prefix.
	LocalPhoneDigits = 10
)

// RateSource tags which exchange-rate source produced a conversion so callers
// can disclose it to the user.
type RateSource string

const (
	RateSourceLive      RateSource = "live"
	RateSourceReference RateSource = "reference"
)

const (
	RedisKeyReferenceRateFormat = "fx:reference:%s:%s"
	RedisKeyBankListKey         = "gateway:banks"
)
