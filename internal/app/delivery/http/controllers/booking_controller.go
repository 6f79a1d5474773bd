package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"conexperto-service/internal/app/contracts"
	"conexperto-service/internal/app/models"
	"conexperto-service/internal/pkg/constvars"
	"conexperto-service/internal/pkg/dto/requests"
	"conexperto-service/internal/pkg/dto/responses"
	"conexperto-service/internal/pkg/exceptions"
	"conexperto-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
}

var (
	bookingControllerInstance *BookingController
	onceBookingController     sync.Once
)

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase) *BookingController {
	onceBookingController.Do(func() {
		instance := &BookingController{
			Log:            logger,
			BookingUsecase: bookingUsecase,
		}
		bookingControllerInstance = instance
	})
	return bookingControllerInstance
}

func (ctrl *BookingController) FindBookingByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	principal, ok := r.Context().Value(constvars.CONTEXT_PRINCIPAL_KEY).(*models.Principal)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingPrincipal(nil))
		return
	}

	bookingID := chi.URLParam(r, "bookingID")
	if bookingID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "bookingID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	booking, err := ctrl.BookingUsecase.FindByID(ctx, principal, bookingID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingsRetrievedSuccessfully, buildBookingResponse(booking))
}

func (ctrl *BookingController) FindAllBookings(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	principal, ok := r.Context().Value(constvars.CONTEXT_PRINCIPAL_KEY).(*models.Principal)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingPrincipal(nil))
		return
	}

	params := &requests.QueryParams{
		Status: r.URL.Query().Get("status"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bookings, err := ctrl.BookingUsecase.FindAll(ctx, principal, params)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	projections := make([]responses.Booking, 0, len(bookings))
	for i := range bookings {
		projections = append(projections, *buildBookingResponse(&bookings[i]))
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingsRetrievedSuccessfully, projections)
}

func buildBookingResponse(booking *models.Booking) *responses.Booking {
	return &responses.Booking{
		ID:             booking.ID,
		Status:         string(booking.Status),
		ServiceID:      booking.ServiceID,
		ClientID:       booking.ClientID,
		ExpertID:       booking.ExpertID,
		Price:          booking.Price.String(),
		Currency:       booking.Currency,
		ScheduledDate:  booking.ScheduledDate,
		ScheduledTime:  booking.ScheduledTime,
		ClientTimezone: booking.ClientTimezone,
		ExpertTimezone: booking.ExpertTimezone,
		StartAtUTC:     booking.StartAtUTC,
		PaymentLink:    booking.PaymentLink,
		ExpiresAt:      booking.ExpiresAt,
	}
}
