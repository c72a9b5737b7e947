// Package catalogvc - Service sản phẩm (products).
package catalogvc

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/khulnastore11/khulnastore/internal/api/base/models"
	basesvc "github.com/khulnastore11/khulnastore/internal/api/base/service"
	catalogdto "github.com/khulnastore11/khulnastore/internal/api/catalog/dto"
	catalogmodels "github.com/khulnastore11/khulnastore/internal/api/catalog/models"
	"github.com/khulnastore11/khulnastore/internal/common"
	"github.com/khulnastore11/khulnastore/internal/global"
	"github.com/khulnastore11/khulnastore/internal/logger"
)

// ProductService xử lý CRUD sản phẩm và trừ stock khi checkout.
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Product]
}

// NewProductService tạo ProductService mới.
func NewProductService() (*ProductService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Products, common.ErrNotFound)
	}
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Product](coll),
	}, nil
}

// CreateProduct tạo sản phẩm mới từ input admin.
func (s *ProductService) CreateProduct(ctx context.Context, input *catalogdto.ProductCreateInput) (*catalogmodels.Product, error) {
	doc := catalogmodels.Product{
		Name:          input.Name,
		Price:         input.Price,
		Unit:          input.Unit,
		Stock:         input.Stock,
		Images:        input.Images,
		FeaturedIndex: input.FeaturedIndex,
		Category:      input.Category,
		Desc:          input.Desc,
	}
	if doc.Images == nil {
		doc.Images = []string{}
	}
	product, err := s.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct cập nhật sản phẩm theo input admin (chỉ set các field được gửi lên).
// Ghi đè vô điều kiện, không có optimistic-concurrency (last-write-wins).
func (s *ProductService) UpdateProduct(ctx context.Context, id primitive.ObjectID, input *catalogdto.ProductUpdateInput) (*catalogmodels.Product, error) {
	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Price != nil {
		set["price"] = *input.Price
	}
	if input.Unit != nil {
		set["unit"] = *input.Unit
	}
	if input.Stock != nil {
		set["stock"] = *input.Stock
	}
	if input.Images != nil {
		set["images"] = *input.Images
	}
	if input.FeaturedIndex != nil {
		set["featuredIndex"] = *input.FeaturedIndex
	}
	if input.Category != nil {
		set["category"] = *input.Category
	}
	if input.Desc != nil {
		set["desc"] = *input.Desc
	}
	if len(set) == 0 {
		return nil, common.ErrInvalidInput
	}

	product, err := s.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}, nil)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts trả về danh sách sản phẩm có phân trang, tuỳ chọn lọc theo
// tên (substring, không phân biệt hoa thường) và category.
func (s *ProductService) ListProducts(ctx context.Context, search, category string, page, limit int64) (*basemodels.PaginateResult[catalogmodels.Product], error) {
	filter := bson.M{}
	if search != "" {
		filter["name"] = bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}
	}
	if category != "" {
		filter["category"] = category
	}
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// ClampStock tính stock mới sau khi trừ quantity, không bao giờ âm.
func ClampStock(current, quantity int64) int64 {
	newStock := current - quantity
	if newStock < 0 {
		return 0
	}
	return newStock
}

// DecrementStock đọc lại stock hiện tại và ghi max(stock - quantity, 0).
// Đây là thao tác read-modify-write không atomic: đơn hàng được ưu tiên hơn
// độ chính xác tồn kho, lỗi ở đây do caller quyết định bỏ qua.
func (s *ProductService) DecrementStock(ctx context.Context, id primitive.ObjectID, quantity int64) error {
	product, err := s.FindOne(ctx, bson.M{"_id": id}, nil)
	if err != nil {
		return err
	}

	newStock := ClampStock(product.Stock, quantity)
	_, err = s.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"stock": newStock}}, nil)
	if err != nil {
		return err
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"productId": id.Hex(),
		"quantity":  quantity,
		"oldStock":  product.Stock,
		"newStock":  newStock,
	}).Debug("Đã trừ stock sản phẩm")
	return nil
}
