package payment_gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"conexperto-service/internal/pkg/dto/requests"
	"conexperto-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newGatewayForTest(serverURL string) *gatewayService {
	return &gatewayService{
		BaseUrl:    serverURL,
		PublicKey:  "pub_test_key",
		PrivateKey: "prv_test_key",
		HttpClient: http.DefaultClient,
		Log:        zap.NewNop(),
	}
}

func testTransactionRequest() *requests.GatewayTransactionRequest {
	return &requests.GatewayTransactionRequest{
		AmountInCents: 20000000,
		Currency:      "COP",
		Reference:     "b1",
		CustomerEmail: "client@example.com",
		Method: requests.GatewayMethodPayload{
			Type:  "nequi",
			Nequi: &requests.NequiPayload{Phone: "573001234567"},
		},
		RedirectURL: "https://app.example/checkout/return",
	}
}

func TestCreateTransaction(t *testing.T) {
	t.Run("Posts with private key and decodes response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/transactions", r.URL.Path)
			assert.Equal(t, "Bearer prv_test_key", r.Header.Get("Authorization"))

			var received requests.GatewayTransactionRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			assert.Equal(t, int64(20000000), received.AmountInCents)
			assert.Equal(t, "b1", received.Reference)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"transaction_id":"trx-1","reference":"b1","amount_in_cents":20000000,"redirect_url":"https://gw.example/r/trx-1"}`))
		}))
		defer server.Close()

		response, err := newGatewayForTest(server.URL).CreateTransaction(context.Background(), testTransactionRequest())
		assert.NoError(t, err)
		assert.Equal(t, "trx-1", response.TransactionID)
		assert.Equal(t, "https://gw.example/r/trx-1", response.RedirectURL)
	})

	t.Run("Gateway rejection surfaces its reason verbatim", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"error":{"type":"INPUT_VALIDATION_ERROR","reason":"phone_number is not a valid Nequi account"}}`))
		}))
		defer server.Close()

		_, err := newGatewayForTest(server.URL).CreateTransaction(context.Background(), testTransactionRequest())
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 502, customErr.StatusCode)
		assert.Equal(t, "phone_number is not a valid Nequi account", customErr.ClientMessage)
	})

	t.Run("Undecodable rejection gets a generic message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`upstream exploded`))
		}))
		defer server.Close()

		_, err := newGatewayForTest(server.URL).CreateTransaction(context.Background(), testTransactionRequest())
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 502, customErr.StatusCode)
		assert.Contains(t, customErr.ClientMessage, "status 502")
	})
}

func TestListFinancialInstitutions(t *testing.T) {
	t.Run("Fetches with public key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/pse/financial_institutions", r.URL.Path)
			assert.Equal(t, "Bearer pub_test_key", r.Header.Get("Authorization"))
			w.Write([]byte(`{"data":[{"financial_institution_code":"1007","financial_institution_name":"Bancolombia"},{"financial_institution_code":"1019","financial_institution_name":"Scotiabank"}]}`))
		}))
		defer server.Close()

		institutions, err := newGatewayForTest(server.URL).ListFinancialInstitutions(context.Background())
		assert.NoError(t, err)
		assert.Len(t, institutions, 2)
		assert.Equal(t, "1007", institutions[0].Code)
		assert.Equal(t, "Bancolombia", institutions[0].Name)
	})

	t.Run("Non-200 fails the fetch", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := newGatewayForTest(server.URL).ListFinancialInstitutions(context.Background())
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 502, customErr.StatusCode)
	})
}
