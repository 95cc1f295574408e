package utils

import (
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rafflehouse/raffle-backend/internal/config"
)

func TestGenerateGameCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := GenerateGameCode(6)
		if len(code) != 6 {
			t.Fatalf("code length = %d, want 6", len(code))
		}
		for _, c := range code {
			if !strings.ContainsRune(codeAlphabet, c) {
				t.Fatalf("code %q contains %q, not in alphabet", code, c)
			}
		}
		seen[code] = true
	}
	// 100 draws from a 32^6 space should essentially never collide
	if len(seen) < 99 {
		t.Errorf("expected near-unique codes, got %d distinct out of 100", len(seen))
	}
}

func TestGenerateJWT(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600}}

	signed, err := GenerateJWT("subject-1", RoleOperator, cfg)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		t.Fatal("expected valid claims")
	}
	if claims["sub"] != "subject-1" {
		t.Errorf("sub = %v, want subject-1", claims["sub"])
	}
	if claims["role"] != RoleOperator {
		t.Errorf("role = %v, want %s", claims["role"], RoleOperator)
	}
}
