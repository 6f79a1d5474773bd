package payment_gateway

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"conexperto-service/internal/app/config"
	"conexperto-service/internal/app/contracts"
	"conexperto-service/internal/pkg/constvars"
	"conexperto-service/internal/pkg/dto/requests"
	"conexperto-service/internal/pkg/dto/responses"
	"conexperto-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	gatewayServiceInstance contracts.PaymentGatewayService
	onceGatewayService     sync.Once
)

type gatewayService struct {
	BaseUrl    string
	PublicKey  string
	PrivateKey string
	HttpClient *http.Client
	Log        *zap.Logger
}

func NewGatewayService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	onceGatewayService.Do(func() {
		instance := &gatewayService{
			BaseUrl:    internalConfig.PaymentGateway.BaseUrl,
			PublicKey:  internalConfig.PaymentGateway.PublicKey,
			PrivateKey: internalConfig.PaymentGateway.PrivateKey,
			HttpClient: &http.Client{
				Timeout: time.Duration(internalConfig.PaymentGateway.TimeoutInSeconds) * time.Second,
			},
			Log: logger,
		}
		gatewayServiceInstance = instance
	})
	return gatewayServiceInstance
}

type gatewayErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"reason"`
	} `json:"error"`
}

func (s *gatewayService) CreateTransaction(ctx context.Context, request *requests.GatewayTransactionRequest) (*responses.GatewayTransactionResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("gatewayService.CreateTransaction called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, request.Reference),
		zap.Int64(constvars.LoggingAmountKey, request.AmountInCents),
		zap.String(constvars.LoggingPaymentMethodKey, request.Method.Type),
	)

	body, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseUrl+"/transactions", bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	httpRequest.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	httpRequest.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.PrivateKey)

	httpResponse, err := s.HttpClient.Do(httpRequest)
	if err != nil {
		s.Log.Error("gatewayService.CreateTransaction request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode >= 400 {
		var gatewayError gatewayErrorResponse
		if decodeErr := json.NewDecoder(httpResponse.Body).Decode(&gatewayError); decodeErr != nil || gatewayError.Error.Message == "" {
			gatewayError.Error.Message = fmt.Sprintf("gateway rejected the transaction (status %d)", httpResponse.StatusCode)
		}
		s.Log.Error("gatewayService.CreateTransaction gateway rejected transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, httpResponse.StatusCode),
			zap.String("gateway_message", gatewayError.Error.Message),
		)
		return nil, exceptions.ErrGatewayCreateTransaction(
			fmt.Errorf("status %d: %s", httpResponse.StatusCode, gatewayError.Error.Message),
			gatewayError.Error.Message,
		)
	}

	response := new(responses.GatewayTransactionResponse)
	if err := json.NewDecoder(httpResponse.Body).Decode(response); err != nil {
		return nil, exceptions.ErrDecodeResponse(err)
	}

	s.Log.Info("gatewayService.CreateTransaction succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, response.TransactionID),
	)
	return response, nil
}

type institutionListResponse struct {
	Data []responses.FinancialInstitution `json:"data"`
}

func (s *gatewayService) ListFinancialInstitutions(ctx context.Context) ([]responses.FinancialInstitution, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("gatewayService.ListFinancialInstitutions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseUrl+"/pse/financial_institutions", nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	httpRequest.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.PublicKey)

	httpResponse, err := s.HttpClient.Do(httpRequest)
	if err != nil {
		return nil, exceptions.ErrGatewayBankList(err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		return nil, exceptions.ErrGatewayBankList(fmt.Errorf("gateway returned status %d", httpResponse.StatusCode))
	}

	var payload institutionListResponse
	if err := json.NewDecoder(httpResponse.Body).Decode(&payload); err != nil {
		return nil, exceptions.ErrDecodeResponse(err)
	}

	s.Log.Info("gatewayService.ListFinancialInstitutions succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(payload.Data)),
	)
	return payload.Data, nil
}
