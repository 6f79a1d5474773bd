package constvars

const (
	ResponseSuccess                      = "Success"
	CheckoutSuccessMessage               = "Checkout created successfully"
	BookingPaymentRetrySuccessMessage    = "Payment attempt created successfully"
	PaymentCallbackSuccessfullyProcessed = "Payment callback processed"
	BookingsRetrievedSuccessfully        = "Bookings retrieved successfully"
	BankListRetrievedSuccessfully        = "Financial institutions retrieved successfully"
)
