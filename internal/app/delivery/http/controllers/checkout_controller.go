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
	"conexperto-service/internal/pkg/exceptions"
	"conexperto-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type CheckoutController struct {
	Log             *zap.Logger
	CheckoutUsecase contracts.CheckoutUsecase
}

var (
	checkoutControllerInstance *CheckoutController
	onceCheckoutController     sync.Once
)

func NewCheckoutController(logger *zap.Logger, checkoutUsecase contracts.CheckoutUsecase) *CheckoutController {
	onceCheckoutController.Do(func() {
		instance := &CheckoutController{
			Log:             logger,
			CheckoutUsecase: checkoutUsecase,
		}
		checkoutControllerInstance = instance
	})
	return checkoutControllerInstance
}

func (ctrl *CheckoutController) Checkout(w http.ResponseWriter, r *http.Request) {
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

	request := new(requests.CheckoutRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse checkout request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ClientID = principal.UserID

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.CheckoutUsecase.Checkout(ctx, principal, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "checkout_created", requestID,
		zap.String(constvars.LoggingBookingIDKey, response.BookingID),
		zap.String(constvars.LoggingRateSourceKey, response.RateSource),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CheckoutSuccessMessage, response)
}

func (ctrl *CheckoutController) RetryPayment(w http.ResponseWriter, r *http.Request) {
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

	request := new(requests.RetryPaymentRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse retry payment request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.BookingID = bookingID

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.CheckoutUsecase.RetryPayment(ctx, principal, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "payment_retry_created", requestID,
		zap.String(constvars.LoggingBookingIDKey, response.BookingID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BookingPaymentRetrySuccessMessage, response)
}
