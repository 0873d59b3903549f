package auth

import (
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultTokenTTLHours = 24
	defaultIssuer        = "foodcourt-api"
)

// JWTIssuer mints HS256 bearer tokens for logged-in clients.
type JWTIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewJWTIssuerFromEnv reads JWT_SECRET and JWT_TTL_HOURS. The default
// secret is only suitable for local runs.
func NewJWTIssuerFromEnv() *JWTIssuer {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "local-dev-secret"
	}
	ttlHours := defaultTokenTTLHours
	if v := os.Getenv("JWT_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttlHours = n
		}
	}
	return &JWTIssuer{
		secret: []byte(secret),
		issuer: defaultIssuer,
		ttl:    time.Duration(ttlHours) * time.Hour,
	}
}

func (i *JWTIssuer) Issue(username string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		Issuer:    i.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}
