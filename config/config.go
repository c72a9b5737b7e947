package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng
type Configuration struct {
	Address            string `env:"ADDRESS" envDefault:":8080"`      // Địa chỉ server
	JwtSecret          string `env:"JWT_SECRET,required"`             // Bí mật JWT
	MongoConnectionURI string `env:"MONGODB_CONNECTION_URI,required"` // URL kết nối cơ sở dữ liệu
	MongoDBName        string `env:"MONGODB_DBNAME" envDefault:"khulnastore"` // Tên cơ sở dữ liệu

	// Admin đăng nhập dashboard
	AdminEmail    string `env:"ADMIN_EMAIL,required"`    // Email tài khoản admin
	AdminPassword string `env:"ADMIN_PASSWORD,required"` // Mật khẩu tài khoản admin
	JwtExpiryHours int   `env:"JWT_EXPIRY_HOURS" envDefault:"24"` // Thời hạn token (giờ)

	// Nghiệp vụ đặt hàng
	DeliveryFee       int    `env:"DELIVERY_FEE" envDefault:"60"`        // Phí giao hàng cố định
	OrderIdPrefix     string `env:"ORDER_ID_PREFIX" envDefault:"KS"`     // Prefix mã đơn hàng công khai
	OrderIdMaxRetries int    `env:"ORDER_ID_MAX_RETRIES" envDefault:"5"` // Số lần thử cấp mã tối đa
	BkashNumber       string `env:"BKASH_MERCHANT_NUMBER" envDefault:"01700000000"` // Số merchant bKash
	NagadNumber       string `env:"NAGAD_MERCHANT_NUMBER" envDefault:"01800000000"` // Số merchant Nagad

	// Image hosting (unsigned preset upload)
	UploadEndpoint string `env:"UPLOAD_ENDPOINT"`                          // URL API upload ảnh
	UploadPreset   string `env:"UPLOAD_PRESET" envDefault:"khulna-sign"`   // Preset upload không ký

	// CORS / Rate limit
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)

	// Frontend URL (dùng cho CORS và link trong response)
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env bằng cách đi lên từ thư mục hiện tại
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			envPath := filepath.Join(envDir, fmt.Sprintf("%s.env", env))
			return envPath
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc dữ liệu cấu hình từ file env theo GO_ENV
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
