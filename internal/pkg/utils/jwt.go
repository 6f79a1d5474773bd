package utils

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// PrincipalClaims is the subset of the identity provider's token the
// pipeline cares about. Identity issuance lives in a separate service; this
// API only verifies and extracts.
type PrincipalClaims struct {
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	Timezone string `json:"timezone,omitempty"`
	jwt.RegisteredClaims
}

func ParsePrincipalJWT(tokenString, secret string) (*PrincipalClaims, error) {
	claims := &PrincipalClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	return claims, nil
}
