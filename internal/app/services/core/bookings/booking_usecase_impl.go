package bookings

import (
	"context"
	"sync"
	"time"

	"conexperto-service/internal/app/config"
	"conexperto-service/internal/app/contracts"
	"conexperto-service/internal/app/models"
	"conexperto-service/internal/pkg/constvars"
	"conexperto-service/internal/pkg/dto/requests"
	"conexperto-service/internal/pkg/exceptions"
	"conexperto-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingRepository contracts.BookingRepository
	ExpertRepository  contracts.ExpertRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	expertRepository contracts.ExpertRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		instance := &bookingUsecase{
			BookingRepository: bookingRepository,
			ExpertRepository:  expertRepository,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
		bookingUsecaseInstance = instance
	})
	return bookingUsecaseInstance
}

// ReserveSlot creates one pending booking holding the requested slot until
// the expiration instant. Slot exclusivity is enforced by the storage
// layer, so two concurrent reservations for the same expert and instant
// resolve to exactly one winner.
func (uc *bookingUsecase) ReserveSlot(ctx context.Context, input *contracts.ReserveSlotInput) (*models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.ReserveSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceIDKey, input.ServiceID),
		zap.String(constvars.LoggingExpertIDKey, input.ExpertID),
	)

	// Stored profile preference wins over whatever the browser detected.
	clientTimezone := input.Principal.Timezone
	if clientTimezone == "" {
		clientTimezone = input.BrowserTimezone
	}
	if clientTimezone == "" {
		clientTimezone = uc.InternalConfig.App.DefaultClientTimezone
	}

	startAtUTC, err := utils.ResolveScheduledInstant(input.Date, input.Time, clientTimezone)
	if err != nil {
		uc.Log.Warn("bookingUsecase.ReserveSlot invalid scheduled slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInvalidSlot(err)
	}

	now := time.Now().UTC()
	if !startAtUTC.After(now) {
		uc.Log.Warn("bookingUsecase.ReserveSlot slot is in the past",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Time("start_at_utc", startAtUTC),
		)
		return nil, exceptions.ErrInvalidSlot(nil)
	}

	expertTimezone, err := uc.ExpertRepository.FindTimezoneByID(ctx, input.ExpertID)
	if err != nil {
		uc.Log.Error("bookingUsecase.ReserveSlot error fetching expert timezone",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if expertTimezone == "" {
		expertTimezone = uc.InternalConfig.App.DefaultClientTimezone
	}

	holdDuration := time.Duration(uc.InternalConfig.App.BookingHoldTimeInMinutes) * time.Minute
	booking := &models.Booking{
		ID:             utils.GenerateBookingID(),
		ClientID:       input.ClientID,
		ExpertID:       input.ExpertID,
		ServiceID:      input.ServiceID,
		Status:         models.BookingStatusPending,
		Price:          input.Authorized.Price,
		Currency:       input.Authorized.Currency,
		ScheduledDate:  input.Date,
		ScheduledTime:  input.Time,
		ClientTimezone: clientTimezone,
		ExpertTimezone: expertTimezone,
		StartAtUTC:     startAtUTC,
		ExpiresAt:      now.Add(holdDuration),
	}

	bookingAddons := make([]models.BookingAddon, 0, len(input.Authorized.Addons))
	for _, addon := range input.Authorized.Addons {
		bookingAddons = append(bookingAddons, models.BookingAddon{
			BookingID: booking.ID,
			AddonID:   addon.ID,
			Price:     addon.Price,
			Currency:  addon.Currency,
		})
	}

	created, err := uc.BookingRepository.CreateWithAddons(ctx, booking, bookingAddons)
	if err != nil {
		uc.Log.Error("bookingUsecase.ReserveSlot error creating booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("bookingUsecase.ReserveSlot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, created.ID),
		zap.Time("expires_at", created.ExpiresAt),
	)
	return created, nil
}

func (uc *bookingUsecase) FindByID(ctx context.Context, principal *models.Principal, bookingID string) (*models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		uc.Log.Error("bookingUsecase.FindByID error fetching booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotFound(nil)
	}
	if !principalOwnsBooking(principal, booking) {
		uc.Log.Warn("bookingUsecase.FindByID principal is not a booking party",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, bookingID),
		)
		return nil, exceptions.ErrNotResourceOwner(nil)
	}
	return booking, nil
}

func (uc *bookingUsecase) FindAll(ctx context.Context, principal *models.Principal, params *requests.QueryParams) ([]models.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, params),
	)

	// Listing is always scoped to the caller regardless of what the query
	// string asked for.
	if principal.IsExpert() {
		params.ExpertID = principal.UserID
		params.ClientID = ""
	} else {
		params.ClientID = principal.UserID
		params.ExpertID = ""
	}

	bookings, err := uc.BookingRepository.FindAll(ctx, params)
	if err != nil {
		uc.Log.Error("bookingUsecase.FindAll error fetching bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("bookingUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(bookings)),
	)
	return bookings, nil
}

func principalOwnsBooking(principal *models.Principal, booking *models.Booking) bool {
	if principal.Role == models.RoleAdmin {
		return true
	}
	return principal.UserID == booking.ClientID || principal.UserID == booking.ExpertID
}
