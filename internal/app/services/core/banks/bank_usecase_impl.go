package banks

import (
	"context"
	"sync"
	"time"

	"conexperto-service/internal/app/contracts"
	"conexperto-service/internal/pkg/constvars"
	"conexperto-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// bankListCacheTTL bounds staleness of the institution selector; the list
// changes rarely and a fetch per request would hammer the gateway.
const bankListCacheTTL = 6 * time.Hour

type bankUsecase struct {
	PaymentGatewayService contracts.PaymentGatewayService
	RedisRepository       contracts.RedisRepository
	Log                   *zap.Logger
}

var (
	bankUsecaseInstance contracts.BankUsecase
	onceBankUsecase     sync.Once
)

func NewBankUsecase(
	paymentGatewayService contracts.PaymentGatewayService,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.BankUsecase {
	onceBankUsecase.Do(func() {
		instance := &bankUsecase{
			PaymentGatewayService: paymentGatewayService,
			RedisRepository:       redisRepository,
			Log:                   logger,
		}
		bankUsecaseInstance = instance
	})
	return bankUsecaseInstance
}

func (uc *bankUsecase) ListFinancialInstitutions(ctx context.Context) ([]responses.FinancialInstitution, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bankUsecase.ListFinancialInstitutions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyBankListKey)
	if err == nil && cached != "" {
		var institutions []responses.FinancialInstitution
		if unmarshalErr := json.Unmarshal([]byte(cached), &institutions); unmarshalErr == nil {
			uc.Log.Info("bankUsecase.ListFinancialInstitutions served from cache",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingResponseCountKey, len(institutions)),
			)
			return institutions, nil
		}
	}

	institutions, err := uc.PaymentGatewayService.ListFinancialInstitutions(ctx)
	if err != nil {
		uc.Log.Error("bankUsecase.ListFinancialInstitutions gateway error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyBankListKey, institutions, bankListCacheTTL); err != nil {
		uc.Log.Warn("bankUsecase.ListFinancialInstitutions error caching list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("bankUsecase.ListFinancialInstitutions succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(institutions)),
	)
	return institutions, nil
}
