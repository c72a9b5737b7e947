package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/khulnastore11/khulnastore/config"
	"github.com/khulnastore11/khulnastore/internal/registry"
)

// StoreCollectionName chứa tên các collection của cửa hàng
type StoreCollectionName struct {
	Products    string // Danh mục sản phẩm
	Orders      string // Đơn hàng
	Carts       string // Giỏ hàng theo client token
	Preferences string // Tuỳ chọn giao diện theo client token
}

// Các biến toàn cục của ứng dụng, được khởi tạo trong cmd/server
var (
	// Validate là instance validator dùng chung
	Validate *validator.Validate

	// MongoDB_Session là client MongoDB dùng chung
	MongoDB_Session *mongo.Client

	// MongoDB_ServerConfig là cấu hình server
	MongoDB_ServerConfig *config.Configuration

	// MongoDB_ColNames chứa tên các collection (gán trong initColNames)
	MongoDB_ColNames StoreCollectionName

	// RegistryCollections quản lý các collection đã khởi tạo
	RegistryCollections = registry.NewRegistry[*mongo.Collection]()
)
