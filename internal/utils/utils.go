package utils

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rafflehouse/raffle-backend/internal/config"
)

// Token roles carried in JWT claims
const (
	RolePlayer   = "player"
	RoleOperator = "operator"
)

// codeAlphabet excludes characters that read ambiguously on printed tickets
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateGameCode generates a random public game code of the given length
func GenerateGameCode(length int) string {
	code := make([]byte, length)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is broken
			panic(err)
		}
		code[i] = codeAlphabet[n.Int64()]
	}
	return string(code)
}

// GenerateJWT issues a signed bearer token for a subject with a role claim
func GenerateJWT(subject, role string, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  time.Now().Add(time.Second * time.Duration(cfg.JWT.ExpiresIn)).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}
