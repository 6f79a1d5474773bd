package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingPrincipalKey      = "principal"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseCountKey  = "response_count"
	LoggingEndpointKey       = "endpoint"
	LoggingMethodKey         = "method"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingErrorTypeKey      = "error_type"
	LoggingBookingIDKey      = "booking_id"
	LoggingServiceIDKey      = "service_id"
	LoggingExpertIDKey       = "expert_id"
	LoggingClientIDKey       = "client_id"
	LoggingAmountKey         = "amount"
	LoggingCurrencyKey       = "currency"
	LoggingRateSourceKey     = "rate_source"
	LoggingPaymentMethodKey  = "payment_method"
	LoggingPaymentStatusKey  = "payment_status"
	LoggingTransactionIDKey  = "transaction_id"
	LoggingBookingStatusKey  = "booking_status"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingExpiredCountKey   = "expired_count"
)
