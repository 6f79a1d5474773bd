package constvars

// Client-facing messages. These are the only strings a caller ever sees for
// the matching failure; dev messages stay in the logs.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please re-check the inputs"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
	ErrClientServiceNotFound               = "The requested service could not be found"
	ErrClientBookingNotFound               = "The requested booking could not be found"
	ErrClientSlotUnavailable               = "The selected time is no longer available, please pick another time"
	ErrClientInvalidSlot                   = "The selected date and time are incomplete or invalid"
	ErrClientRateUnavailable               = "Currency rates are temporarily unavailable, please try again later"
	ErrClientBookingExpired                = "This booking reservation has expired, please start a new booking"
	ErrClientCardNotEnabled                = "Card payments are not enabled yet, please choose another method"
	ErrClientBookingNotPayable             = "This booking can no longer be paid"
)

// Dev messages, logged only.
const (
	ErrDevValidationFailed           = "Request validation failed"
	ErrDevURLParamIDValidation       = "URL parameter %s failed validation"
	ErrDevCannotParseJSON            = "Failed to parse JSON payload"
	ErrDevCannotParseDate            = "Failed to parse date or time input"
	ErrDevCannotMarshalJSON          = "Failed to marshal value into JSON"
	ErrDevServerDeadlineExceeded     = "Server deadline exceeded while processing request"
	ErrDevMissingRequestID           = "Request ID missing from request context"
	ErrDevMissingPrincipal           = "Authenticated principal missing from request context"
	ErrDevTokenInvalidOrExpired      = "Bearer token is invalid or expired"
	ErrDevServiceNotFound            = "Service not found or inactive in catalog"
	ErrDevBookingNotFound            = "Booking not found"
	ErrDevBookingNotPending          = "Booking is not in pending status"
	ErrDevBookingExpired             = "Booking hold has expired"
	ErrDevSlotUnavailable            = "Slot uniqueness constraint violated for expert/date/time"
	ErrDevInvalidSlot                = "Booking date or time missing from reservation request"
	ErrDevRateUnavailable            = "No live or reference exchange rate available for pair"
	ErrDevExchangeRateLookup         = "Live exchange-rate lookup failed"
	ErrDevGatewayCreateTransaction   = "Gateway transaction creation failed"
	ErrDevGatewayBankList            = "Gateway financial-institution list fetch failed"
	ErrDevCreateHTTPRequest          = "Failed to build outbound HTTP request"
	ErrDevSendHTTPRequest            = "Failed to send outbound HTTP request"
	ErrDevDecodeResponse             = "Failed to decode outbound HTTP response"
	ErrDevDBFailedToFindData         = "Database failed to find data"
	ErrDevDBFailedToInsertData       = "Database failed to insert data"
	ErrDevDBFailedToUpdateData       = "Database failed to update data"
	ErrDevDBFailedToIterateDataset   = "Database failed to iterate over result set"
	ErrDevDBFailedToBeginTransaction = "Database failed to begin transaction"
	ErrDevDBFailedToCommit           = "Database failed to commit transaction"
	ErrDevRedisGetData               = "Redis failed to get data"
	ErrDevRedisSetData               = "Redis failed to set data"
	ErrDevRedisDeleteData            = "Redis failed to delete data"
	ErrDevRedisGetNoData             = "Redis has no data for key %s"
	ErrDevRedisUnlock                = "Redis lock release failed"
	ErrDevRabbitMQPublish            = "RabbitMQ failed to publish message to %s"
	ErrDevTimezoneLoad               = "Failed to load IANA timezone"
	ErrDevAddonNotFound              = "One or more selected add-ons not found or inactive"
	ErrDevInvalidInput               = "Invalid input"
)
