package account

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenTTL = 1 * time.Hour

type TokenClaims struct {
	Guid     string
	Nik      string
	FullName string
	Email    string
	Roles    []string
}

type TokenIssuer interface {
	Issue(claims TokenClaims) (string, error)
}

type jwtIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTIssuer(secret string, ttl time.Duration) TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &jwtIssuer{secret: []byte(secret), ttl: ttl}
}

func (i *jwtIssuer) Issue(claims TokenClaims) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"guid":      claims.Guid,
		"nik":       claims.Nik,
		"full_name": claims.FullName,
		"email":     claims.Email,
		"roles":     claims.Roles,
		"iat":       now.Unix(),
		"exp":       now.Add(i.ttl).Unix(),
	})

	return token.SignedString(i.secret)
}
