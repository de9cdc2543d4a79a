package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"magangku_backend/internals/configs"
)

func TestCreateAccessToken_ClaimsAndExpiry(t *testing.T) {
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = "" })

	userID := uuid.New()
	tokenString, err := CreateAccessToken(userID, "intern")
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims["sub"] != userID.String() {
		t.Fatalf("sub = %v, want %s", claims["sub"], userID)
	}
	if claims["role"] != "intern" {
		t.Fatalf("role = %v, want intern", claims["role"])
	}

	exp := TokenExpiry(tokenString)
	wantExp := time.Now().Add(accessTokenTTL)
	if diff := wantExp.Sub(exp); diff > time.Minute || diff < -time.Minute {
		t.Fatalf("expiry = %v, want sekitar %v", exp, wantExp)
	}
}

func TestCreateAccessToken_MissingSecret(t *testing.T) {
	configs.JWTSecret = ""
	if _, err := CreateAccessToken(uuid.New(), "intern"); err == nil {
		t.Fatal("expected error saat JWT_SECRET kosong")
	}
}

func TestTokenExpiry_GarbageTokenFallsBack(t *testing.T) {
	exp := TokenExpiry("bukan-jwt")
	if time.Until(exp) < 23*time.Hour {
		t.Fatalf("fallback expiry terlalu dekat: %v", exp)
	}
}
