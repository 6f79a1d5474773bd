package payments

import (
	"context"
	"sync"
	"time"

	"conexperto-service/internal/app/contracts"
	"conexperto-service/internal/app/models"
	"conexperto-service/internal/app/services/shared/metrics"
	"conexperto-service/internal/pkg/constvars"
	"conexperto-service/internal/pkg/dto/requests"
	"conexperto-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type paymentUsecase struct {
	BookingRepository contracts.BookingRepository
	EventPublisher    contracts.EventPublisher
	Metrics           *metrics.Registry
	Log               *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	bookingRepository contracts.BookingRepository,
	eventPublisher contracts.EventPublisher,
	metricsRegistry *metrics.Registry,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		instance := &paymentUsecase{
			BookingRepository: bookingRepository,
			EventPublisher:    eventPublisher,
			Metrics:           metricsRegistry,
			Log:               logger,
		}
		paymentUsecaseInstance = instance
	})
	return paymentUsecaseInstance
}

// PaymentCallback reconciles one gateway outcome into booking state. The
// transition out of pending happens through a compare-and-swap, so
// duplicate and out-of-order callbacks collapse to a single effective
// transition and already-terminal bookings are left untouched. Unknown
// references and expired holds are logged and swallowed; the gateway is
// acknowledged either way.
func (uc *paymentUsecase) PaymentCallback(ctx context.Context, request *requests.PaymentCallback) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.PaymentCallback called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, request.Reference),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
		zap.String(constvars.LoggingPaymentStatusKey, request.PaymentStatus),
	)

	booking, err := uc.BookingRepository.FindByID(ctx, request.Reference)
	if err != nil {
		uc.Log.Error("paymentUsecase.PaymentCallback error fetching booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if booking == nil {
		uc.Log.Warn("paymentUsecase.PaymentCallback unknown booking reference",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, request.Reference),
		)
		uc.Metrics.PaymentCallbacks.WithLabelValues("unknown").Inc()
		return nil
	}

	target, terminal := targetStatus(request.PaymentStatus)
	if !terminal {
		uc.Log.Info("paymentUsecase.PaymentCallback non-terminal status, ignoring",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentStatusKey, request.PaymentStatus),
		)
		uc.Metrics.PaymentCallbacks.WithLabelValues("ignored").Inc()
		return nil
	}

	if target == models.BookingStatusConfirmed && !booking.CanBeConfirmedAt(time.Now().UTC()) {
		uc.Log.Warn("paymentUsecase.PaymentCallback booking not confirmable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.String(constvars.LoggingBookingStatusKey, string(booking.Status)),
			zap.Time("expires_at", booking.ExpiresAt),
		)
		uc.Metrics.PaymentCallbacks.WithLabelValues("not_confirmable").Inc()
		return nil
	}

	swapped, err := uc.BookingRepository.UpdateStatus(ctx, booking.ID, models.BookingStatusPending, target)
	if err != nil {
		uc.Log.Error("paymentUsecase.PaymentCallback error updating status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !swapped {
		uc.Log.Info("paymentUsecase.PaymentCallback booking already terminal, no-op",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.String(constvars.LoggingBookingStatusKey, string(booking.Status)),
		)
		uc.Metrics.PaymentCallbacks.WithLabelValues("duplicate").Inc()
		return nil
	}
	uc.Metrics.PaymentCallbacks.WithLabelValues(string(target)).Inc()

	if target == models.BookingStatusConfirmed {
		meetingRef := utils.GenerateMeetingRef()
		if err := uc.BookingRepository.UpdateMeetingRef(ctx, booking.ID, meetingRef); err != nil {
			// Confirmation already happened; the meeting resource can be
			// re-provisioned by the downstream consumer.
			uc.Log.Error("paymentUsecase.PaymentCallback error storing meeting ref",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	event := &contracts.BookingEvent{
		Event:      "booking." + string(target),
		BookingID:  booking.ID,
		ClientID:   booking.ClientID,
		ExpertID:   booking.ExpertID,
		Status:     string(target),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := uc.EventPublisher.PublishBookingEvent(ctx, event); err != nil {
		// Downstream reactions are not part of payment correctness; the
		// gateway must still be acknowledged.
		uc.Log.Error("paymentUsecase.PaymentCallback error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("paymentUsecase.PaymentCallback succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, booking.ID),
		zap.String(constvars.LoggingBookingStatusKey, string(target)),
	)
	return nil
}

// targetStatus maps a gateway payment status onto the booking transition it
// implies. Non-terminal gateway statuses imply no transition.
func targetStatus(paymentStatus string) (models.BookingStatus, bool) {
	switch constvars.GatewayPaymentStatus(paymentStatus) {
	case constvars.GatewayPaymentStatusApproved:
		return models.BookingStatusConfirmed, true
	case constvars.GatewayPaymentStatusDeclined,
		constvars.GatewayPaymentStatusVoided,
		constvars.GatewayPaymentStatusExpired,
		constvars.GatewayPaymentStatusError:
		return models.BookingStatusCancelled, true
	default:
		return "", false
	}
}
