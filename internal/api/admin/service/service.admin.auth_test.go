// Package adminvc - Test đăng nhập admin và JWT.
package adminvc

import (
	"errors"
	"testing"

	jwt "github.com/dgrijalva/jwt-go"

	"github.com/khulnastore11/khulnastore/config"
	"github.com/khulnastore11/khulnastore/internal/api/middleware"
	"github.com/khulnastore11/khulnastore/internal/common"
)

func newTestAuthService() *AuthService {
	return NewAuthService(&config.Configuration{
		AdminEmail:     "admin@khulnastore.local",
		AdminPassword:  "secret123",
		JwtSecret:      "test-secret",
		JwtExpiryHours: 1,
	})
}

func TestLogin_ThanhCongTraTokenGiaiMaDuoc(t *testing.T) {
	svc := newTestAuthService()

	token, expiresAt, err := svc.Login("admin@khulnastore.local", "secret123")
	if err != nil {
		t.Fatalf("Login lỗi: %v", err)
	}
	if token == "" {
		t.Fatal("token rỗng")
	}
	if expiresAt <= 0 {
		t.Errorf("expiresAt = %d, phải dương", expiresAt)
	}

	claims := &middleware.AdminClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token không giải mã được: %v", err)
	}
	if claims.Email != "admin@khulnastore.local" {
		t.Errorf("claims.Email = %q, muốn admin@khulnastore.local", claims.Email)
	}
}

func TestLogin_SaiMatKhau(t *testing.T) {
	svc := newTestAuthService()
	_, _, err := svc.Login("admin@khulnastore.local", "sai-mat-khau")
	if !errors.Is(err, common.ErrInvalidCredentials) {
		t.Errorf("sai mật khẩu phải trả ErrInvalidCredentials, nhận: %v", err)
	}
}

func TestLogin_SaiEmail(t *testing.T) {
	svc := newTestAuthService()
	_, _, err := svc.Login("khac@khulnastore.local", "secret123")
	if !errors.Is(err, common.ErrInvalidCredentials) {
		t.Errorf("sai email phải trả ErrInvalidCredentials, nhận: %v", err)
	}
}
