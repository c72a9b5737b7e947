// Package adminvc - Service xác thực và thống kê cho admin.
package adminvc

import (
	"crypto/subtle"
	"time"

	jwt "github.com/dgrijalva/jwt-go"

	"github.com/khulnastore11/khulnastore/config"
	"github.com/khulnastore11/khulnastore/internal/api/middleware"
	"github.com/khulnastore11/khulnastore/internal/common"
	"github.com/khulnastore11/khulnastore/internal/logger"
	"github.com/khulnastore11/khulnastore/internal/utility"
)

// AuthService xác thực admin bằng credentials cấu hình và cấp JWT.
// Cửa hàng chỉ có một tài khoản admin, không có bảng user.
type AuthService struct {
	adminEmail    string
	adminPassword string
	jwtSecret     string
	expiry        time.Duration
}

// NewAuthService tạo AuthService từ config.
func NewAuthService(cfg *config.Configuration) *AuthService {
	if err := utility.ValidateEmail(cfg.AdminEmail); err != nil {
		logger.GetAppLogger().WithField("email", cfg.AdminEmail).
			Warn("ADMIN_EMAIL không đúng định dạng email, đăng nhập admin sẽ luôn thất bại")
	}
	return &AuthService{
		adminEmail:    cfg.AdminEmail,
		adminPassword: cfg.AdminPassword,
		jwtSecret:     cfg.JwtSecret,
		expiry:        time.Duration(cfg.JwtExpiryHours) * time.Hour,
	}
}

// Login kiểm tra email/password và trả về JWT HS256 kèm hạn dùng (Unix milli).
func (s *AuthService) Login(email, password string) (string, int64, error) {
	log := logger.GetAuditLogger()

	emailOk := subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) == 1
	passwordOk := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
	if !emailOk || !passwordOk {
		log.WithField("email", email).Warn("🔐 [AUTH] Đăng nhập admin thất bại")
		return "", 0, common.ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.expiry)
	claims := middleware.AdminClaims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: expiresAt.Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", 0, err
	}

	log.WithField("email", email).Info("🔐 [AUTH] Admin đăng nhập thành công")
	return token, expiresAt.UnixMilli(), nil
}
