// Package cartvc - Service giỏ hàng (carts).
package cartvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/khulnastore11/khulnastore/internal/api/base/service"
	cartmodels "github.com/khulnastore11/khulnastore/internal/api/cart/models"
	catalogvc "github.com/khulnastore11/khulnastore/internal/api/catalog/service"
	"github.com/khulnastore11/khulnastore/internal/common"
	"github.com/khulnastore11/khulnastore/internal/global"
)

// CartService xử lý giỏ hàng server-side theo token của client.
// Mọi thao tác là read-modify-write trên document giỏ: giỏ hàng chỉ có
// một writer là chính client sở hữu token nên không cần atomic update.
type CartService struct {
	*basesvc.BaseServiceMongoImpl[cartmodels.Cart]
	ProductService *catalogvc.ProductService
}

// NewCartService tạo CartService mới.
func NewCartService() (*CartService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Carts)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Carts, common.ErrNotFound)
	}
	productSvc, err := catalogvc.NewProductService()
	if err != nil {
		return nil, err
	}
	return &CartService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[cartmodels.Cart](coll),
		ProductService:       productSvc,
	}, nil
}

// GetOrCreate trả về giỏ hàng của token, tạo giỏ rỗng nếu chưa có.
func (s *CartService) GetOrCreate(ctx context.Context, token string) (*cartmodels.Cart, error) {
	if token == "" {
		return nil, common.ErrRequiredField
	}
	cart, err := s.FindOne(ctx, bson.M{"token": token}, nil)
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	created, err := s.InsertOne(ctx, cartmodels.Cart{Token: token, Items: []cartmodels.CartLine{}})
	if err != nil {
		// Hai request đầu tiên của cùng token có thể đua nhau tạo giỏ
		if errors.Is(err, common.ErrMongoDuplicate) || errors.Is(err, common.ErrDuplicate) {
			cart, err = s.FindOne(ctx, bson.M{"token": token}, nil)
			if err != nil {
				return nil, err
			}
			return &cart, nil
		}
		return nil, err
	}
	return &created, nil
}

// applyDecrease giảm 1 ở dòng idx, xoá hẳn dòng nếu số lượng về dưới 1.
func applyDecrease(items []cartmodels.CartLine, idx int) []cartmodels.CartLine {
	if items[idx].Quantity <= 1 {
		return append(items[:idx], items[idx+1:]...)
	}
	items[idx].Quantity--
	return items
}

// removeLine xoá dòng idx khỏi danh sách.
func removeLine(items []cartmodels.CartLine, idx int) []cartmodels.CartLine {
	return append(items[:idx], items[idx+1:]...)
}

// saveItems ghi lại danh sách dòng của giỏ và trả về giỏ sau khi ghi.
func (s *CartService) saveItems(ctx context.Context, cart *cartmodels.Cart, items []cartmodels.CartLine) (*cartmodels.Cart, error) {
	if items == nil {
		items = []cartmodels.CartLine{}
	}
	updated, err := s.UpdateOne(ctx, bson.M{"_id": cart.ID}, bson.M{"$set": bson.M{"items": items}}, nil)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// AddItem thêm sản phẩm vào giỏ. Nếu sản phẩm đã có trong giỏ thì cộng dồn
// số lượng, nếu chưa thì tạo dòng mới với snapshot tên/giá/đơn vị/ảnh.
func (s *CartService) AddItem(ctx context.Context, token string, productId primitive.ObjectID, quantity int64) (*cartmodels.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	cart, err := s.GetOrCreate(ctx, token)
	if err != nil {
		return nil, err
	}

	items := cart.Items
	if idx := cart.FindLine(productId); idx >= 0 {
		items[idx].Quantity += quantity
		return s.saveItems(ctx, cart, items)
	}

	product, err := s.ProductService.FindOneById(ctx, productId)
	if err != nil {
		return nil, err
	}
	items = append(items, cartmodels.CartLine{
		ProductId: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Unit:      product.Unit,
		ImageRef:  product.FeaturedImage(),
		Quantity:  quantity,
	})
	return s.saveItems(ctx, cart, items)
}

// IncreaseItem tăng số lượng của một dòng thêm 1, không giới hạn trên.
func (s *CartService) IncreaseItem(ctx context.Context, token string, productId primitive.ObjectID) (*cartmodels.Cart, error) {
	cart, err := s.GetOrCreate(ctx, token)
	if err != nil {
		return nil, err
	}
	idx := cart.FindLine(productId)
	if idx < 0 {
		return nil, common.ErrNotFound
	}
	cart.Items[idx].Quantity++
	return s.saveItems(ctx, cart, cart.Items)
}

// DecreaseItem giảm số lượng của một dòng đi 1.
// Giảm xuống dưới 1 thì xoá hẳn dòng khỏi giỏ.
func (s *CartService) DecreaseItem(ctx context.Context, token string, productId primitive.ObjectID) (*cartmodels.Cart, error) {
	cart, err := s.GetOrCreate(ctx, token)
	if err != nil {
		return nil, err
	}
	idx := cart.FindLine(productId)
	if idx < 0 {
		return nil, common.ErrNotFound
	}
	return s.saveItems(ctx, cart, applyDecrease(cart.Items, idx))
}

// RemoveItem xoá một dòng khỏi giỏ bất kể số lượng.
func (s *CartService) RemoveItem(ctx context.Context, token string, productId primitive.ObjectID) (*cartmodels.Cart, error) {
	cart, err := s.GetOrCreate(ctx, token)
	if err != nil {
		return nil, err
	}
	idx := cart.FindLine(productId)
	if idx < 0 {
		return nil, common.ErrNotFound
	}
	return s.saveItems(ctx, cart, removeLine(cart.Items, idx))
}

// ClearCart xoá toàn bộ dòng trong giỏ (giữ lại document giỏ).
func (s *CartService) ClearCart(ctx context.Context, token string) (*cartmodels.Cart, error) {
	cart, err := s.GetOrCreate(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.saveItems(ctx, cart, []cartmodels.CartLine{})
}
