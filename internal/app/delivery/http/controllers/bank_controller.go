package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"conexperto-service/internal/app/contracts"
	"conexperto-service/internal/pkg/constvars"
	"conexperto-service/internal/pkg/exceptions"
	"conexperto-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type BankController struct {
	Log         *zap.Logger
	BankUsecase contracts.BankUsecase
}

var (
	bankControllerInstance *BankController
	onceBankController     sync.Once
)

func NewBankController(logger *zap.Logger, bankUsecase contracts.BankUsecase) *BankController {
	onceBankController.Do(func() {
		instance := &BankController{
			Log:         logger,
			BankUsecase: bankUsecase,
		}
		bankControllerInstance = instance
	})
	return bankControllerInstance
}

func (ctrl *BankController) ListFinancialInstitutions(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	institutions, err := ctrl.BankUsecase.ListFinancialInstitutions(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BankListRetrievedSuccessfully, institutions)
}
