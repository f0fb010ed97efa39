package account_test

import (
	"testing"
	"time"

	"go-booking/internal/account"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestJWTIssuer_Issue(t *testing.T) {
	issuer := account.NewJWTIssuer("test-secret", 30*time.Minute)

	tokenString, err := issuer.Issue(account.TokenClaims{
		Guid:     "guid-1",
		Nik:      "111111",
		FullName: "Budi Santoso",
		Email:    "budi@example.com",
		Roles:    []string{"User", "Admin"},
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	assert.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "guid-1", claims["guid"])
	assert.Equal(t, "111111", claims["nik"])
	assert.Equal(t, "Budi Santoso", claims["full_name"])
	assert.Equal(t, "budi@example.com", claims["email"])

	roles := claims["roles"].([]interface{})
	assert.Len(t, roles, 2)

	exp := int64(claims["exp"].(float64))
	assert.InDelta(t, time.Now().Add(30*time.Minute).Unix(), exp, 5)
}
