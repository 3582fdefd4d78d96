package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/quizmaster/quizmaster-backend/internal/config"
	"github.com/quizmaster/quizmaster-backend/internal/model"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:   "test-secret",
		JWTIssuer:   "quizmaster",
		JWTAudience: "quizmaster-api",
		JWTExpiry:   time.Hour,
		BcryptCost:  4,
	}
}

func signTestToken(t *testing.T, cfg *config.Config, user *model.User, expiry time.Duration, secret string) string {
	t.Helper()

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   user.ID.String(),
			Issuer:    cfg.JWTIssuer,
			Audience:  jwt.ClaimStrings{cfg.JWTAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestPasswordHashing(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), nil)

	hash, err := svc.HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword returned %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash equals plaintext")
	}

	if err := svc.CheckPassword(hash, "s3cret-pass"); err != nil {
		t.Errorf("CheckPassword rejected the correct password: %v", err)
	}
	if err := svc.CheckPassword(hash, "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("CheckPassword with wrong password returned %v, want ErrInvalidCredentials", err)
	}
}

func TestValidateToken(t *testing.T) {
	cfg := testAuthConfig()
	svc := NewAuthService(cfg, nil)
	user := &model.User{
		ID:    uuid.New(),
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Role:  model.RoleTeacher,
	}

	t.Run("valid token round-trips claims", func(t *testing.T) {
		token := signTestToken(t, cfg, user, time.Hour, cfg.JWTSecret)

		claims, err := svc.ValidateToken(token)
		if err != nil {
			t.Fatalf("ValidateToken returned %v", err)
		}
		if claims.UserID != user.ID {
			t.Errorf("user id = %s, want %s", claims.UserID, user.ID)
		}
		if claims.Email != user.Email {
			t.Errorf("email = %s, want %s", claims.Email, user.Email)
		}
		if claims.Role != model.RoleTeacher {
			t.Errorf("role = %s, want %s", claims.Role, model.RoleTeacher)
		}
		if claims.ID == "" {
			t.Error("token has no JTI")
		}
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token := signTestToken(t, cfg, user, -time.Minute, cfg.JWTSecret)

		if _, err := svc.ValidateToken(token); err == nil {
			t.Fatal("ValidateToken accepted an expired token")
		}
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token := signTestToken(t, cfg, user, time.Hour, "other-secret")

		if _, err := svc.ValidateToken(token); err == nil {
			t.Fatal("ValidateToken accepted a token signed with another secret")
		}
	})

	t.Run("wrong issuer is rejected", func(t *testing.T) {
		other := testAuthConfig()
		other.JWTIssuer = "someone-else"
		token := signTestToken(t, other, user, time.Hour, cfg.JWTSecret)

		if _, err := svc.ValidateToken(token); err == nil {
			t.Fatal("ValidateToken accepted a token from another issuer")
		}
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		if _, err := svc.ValidateToken("not-a-token"); err == nil {
			t.Fatal("ValidateToken accepted garbage input")
		}
	})
}
