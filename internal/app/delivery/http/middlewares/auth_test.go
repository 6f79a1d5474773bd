package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"conexperto-service/internal/app/config"
	"conexperto-service/internal/app/models"
	"conexperto-service/internal/pkg/constvars"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testJWTSecret = "test-secret"

func signTestToken(t *testing.T, role string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": "user-1",
		"role":    role,
		"email":   "user@example.com",
		"exp":     time.Now().Add(expiresIn).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	assert.NoError(t, err)
	return token
}

func newMiddlewaresForTest() *Middlewares {
	return &Middlewares{
		Log: zap.NewNop(),
		InternalConfig: &config.InternalConfig{
			JWT: config.JWT{Secret: testJWTSecret},
		},
	}
}

func TestAuthenticate(t *testing.T) {
	middlewares := newMiddlewaresForTest()

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := r.Context().Value(constvars.CONTEXT_PRINCIPAL_KEY).(*models.Principal)
		assert.True(t, ok, "principal should be resolved on the context")
		assert.Equal(t, "user-1", principal.UserID)
		assert.Equal(t, "user@example.com", principal.Email)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Valid token resolves principal", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/bookings", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+signTestToken(t, models.RoleClient, time.Hour))

		rr := httptest.NewRecorder()
		middlewares.Authenticate(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/bookings", nil)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Expired token is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/bookings", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+signTestToken(t, models.RoleClient, -time.Hour))

		rr := httptest.NewRecorder()
		middlewares.Authenticate(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Garbage token is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/bookings", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not.a.token")

		rr := httptest.NewRecorder()
		middlewares.Authenticate(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequireClient(t *testing.T) {
	middlewares := newMiddlewaresForTest()

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	chain := middlewares.Authenticate(middlewares.RequireClient(okHandler))

	t.Run("Client role passes", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/checkout", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+signTestToken(t, models.RoleClient, time.Hour))

		rr := httptest.NewRecorder()
		chain.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Expert role is forbidden", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/checkout", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+signTestToken(t, models.RoleExpert, time.Hour))

		rr := httptest.NewRecorder()
		chain.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
