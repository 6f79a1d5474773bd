package middlewares

import (
	"context"
	"net/http"
	"strings"

	"conexperto-service/internal/app/models"
	"conexperto-service/internal/pkg/constvars"
	"conexperto-service/internal/pkg/exceptions"
	"conexperto-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate verifies the bearer token and resolves the caller into a
// Principal on the request context. Session issuance lives in the identity
// service; this API only verifies.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		header := r.Header.Get(constvars.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.LogSecurityEvent(m.Log, "missing_bearer_token", requestID, "warning",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingPrincipal(nil))
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := utils.ParsePrincipalJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.LogSecurityEvent(m.Log, "invalid_bearer_token", requestID, "warning",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		principal := &models.Principal{
			UserID:   claims.UserID,
			Role:     claims.Role,
			Email:    claims.Email,
			Timezone: claims.Timezone,
		}
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_PRINCIPAL_KEY, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireClient gates endpoints that only the client side of the
// marketplace may call.
func (m *Middlewares) RequireClient(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := r.Context().Value(constvars.CONTEXT_PRINCIPAL_KEY).(*models.Principal)
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingPrincipal(nil))
			return
		}
		if principal.IsNotClient() {
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			utils.LogSecurityEvent(m.Log, "role_not_permitted", requestID, "warning",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String("role", principal.Role),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotResourceOwner(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}
