package exchange

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"conexperto-service/internal/app/config"
	"conexperto-service/internal/app/contracts"
	"conexperto-service/internal/pkg/constvars"
	"conexperto-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	exchangeRateServiceInstance contracts.ExchangeRateService
	onceExchangeRateService     sync.Once
)

type exchangeRateService struct {
	BaseUrl          string
	HttpClient       *http.Client
	RedisRepo        contracts.RedisRepository
	ReferenceRateTTL time.Duration
	Log              *zap.Logger
}

func NewExchangeRateService(internalConfig *config.InternalConfig, redisRepo contracts.RedisRepository, logger *zap.Logger) contracts.ExchangeRateService {
	onceExchangeRateService.Do(func() {
		instance := &exchangeRateService{
			BaseUrl: internalConfig.Exchange.BaseUrl,
			HttpClient: &http.Client{
				Timeout: time.Duration(internalConfig.Exchange.TimeoutInSeconds) * time.Second,
			},
			RedisRepo:        redisRepo,
			ReferenceRateTTL: time.Duration(internalConfig.Exchange.ReferenceRateTTLHours) * time.Hour,
			Log:              logger,
		}
		exchangeRateServiceInstance = instance
	})
	return exchangeRateServiceInstance
}

type liveRateResponse struct {
	Success bool               `json:"success"`
	Rates   map[string]float64 `json:"rates"`
}

func (s *exchangeRateService) FetchLiveRate(ctx context.Context, fromCurrency, toCurrency string) (float64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("exchangeRateService.FetchLiveRate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("from_currency", fromCurrency),
		zap.String("to_currency", toCurrency),
	)

	endpoint := fmt.Sprintf("%s/latest?base=%s&symbols=%s",
		s.BaseUrl, url.QueryEscape(fromCurrency), url.QueryEscape(toCurrency))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, exceptions.ErrCreateHTTPRequest(err)
	}

	resp, err := s.HttpClient.Do(req)
	if err != nil {
		s.Log.Warn("exchangeRateService.FetchLiveRate request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("exchange endpoint returned status %d", resp.StatusCode)
		return 0, exceptions.ErrSendHTTPRequest(err)
	}

	var payload liveRateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, exceptions.ErrDecodeResponse(err)
	}

	rate, ok := payload.Rates[toCurrency]
	if !ok || rate <= 0 {
		err := fmt.Errorf("no usable rate for %s/%s in response", fromCurrency, toCurrency)
		return 0, exceptions.ErrDecodeResponse(err)
	}

	s.Log.Info("exchangeRateService.FetchLiveRate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Float64("rate", rate),
	)
	return rate, nil
}

func (s *exchangeRateService) ReferenceRate(ctx context.Context, fromCurrency, toCurrency string) (float64, error) {
	key := fmt.Sprintf(constvars.RedisKeyReferenceRateFormat, fromCurrency, toCurrency)
	stored, err := s.RedisRepo.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if stored == "" {
		return 0, fmt.Errorf("no reference rate cached for %s/%s", fromCurrency, toCurrency)
	}

	rate, err := strconv.ParseFloat(stored, 64)
	if err != nil {
		return 0, fmt.Errorf("reference rate for %s/%s is corrupt: %w", fromCurrency, toCurrency, err)
	}
	if rate <= 0 {
		return 0, fmt.Errorf("reference rate for %s/%s is not positive", fromCurrency, toCurrency)
	}
	return rate, nil
}

func (s *exchangeRateService) StoreReferenceRate(ctx context.Context, fromCurrency, toCurrency string, rate float64) error {
	key := fmt.Sprintf(constvars.RedisKeyReferenceRateFormat, fromCurrency, toCurrency)
	return s.RedisRepo.Set(ctx, key, rate, s.ReferenceRateTTL)
}
