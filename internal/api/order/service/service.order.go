// Package ordervc - Service đơn hàng: checkout, tra cứu và quản trị.
package ordervc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/khulnastore11/khulnastore/internal/api/base/models"
	basesvc "github.com/khulnastore11/khulnastore/internal/api/base/service"
	cartvc "github.com/khulnastore11/khulnastore/internal/api/cart/service"
	orderdto "github.com/khulnastore11/khulnastore/internal/api/order/dto"
	ordermodels "github.com/khulnastore11/khulnastore/internal/api/order/models"
	"github.com/khulnastore11/khulnastore/internal/common"
	"github.com/khulnastore11/khulnastore/internal/global"
	"github.com/khulnastore11/khulnastore/internal/logger"
	"github.com/khulnastore11/khulnastore/internal/utility"
)

// OrderService xử lý vòng đời đơn hàng.
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[ordermodels.Order]
	CartService *cartvc.CartService

	deliveryFee  float64
	idPrefix     string
	idMaxRetries int
}

// NewOrderService tạo OrderService mới.
func NewOrderService() (*OrderService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Orders, common.ErrNotFound)
	}
	cartSvc, err := cartvc.NewCartService()
	if err != nil {
		return nil, err
	}
	cfg := global.MongoDB_ServerConfig
	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[ordermodels.Order](coll),
		CartService:          cartSvc,
		deliveryFee:          float64(cfg.DeliveryFee),
		idPrefix:             cfg.OrderIdPrefix,
		idMaxRetries:         cfg.OrderIdMaxRetries,
	}, nil
}

// ValidatePayment kiểm tra thông tin thanh toán theo phương thức.
// COD không cần gì thêm; bkash/nagad bắt buộc cả số điện thoại người trả
// lẫn mã giao dịch.
func ValidatePayment(payment *orderdto.PaymentInput) error {
	if !ordermodels.RequiresPaymentProof(payment.Method) {
		return nil
	}
	if payment.PayerNumber == "" || payment.TrxId == "" {
		return common.ErrInvalidPayment
	}
	return nil
}

// publicIdExists kiểm tra mã đơn đã được dùng chưa.
func (s *OrderService) publicIdExists(ctx context.Context, publicId string) (bool, error) {
	return s.DocumentExists(ctx, bson.M{"publicId": publicId})
}

// Checkout tạo đơn hàng từ giỏ của token.
// Thứ tự: kiểm tra giỏ và thanh toán, cấp mã đơn, ghi đơn (Pending),
// rồi mới trừ stock và xoá giỏ. Hai bước cuối là best-effort: đơn đã
// ghi thành công thì lỗi ở đó chỉ được log, không huỷ đơn.
func (s *OrderService) Checkout(ctx context.Context, token string, input *orderdto.CheckoutInput) (*ordermodels.Order, error) {
	log := logger.GetAppLogger()

	cart, err := s.CartService.GetOrCreate(ctx, token)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, common.ErrEmptyCart
	}

	if err := utility.ValidatePhone(input.Customer.Phone); err != nil {
		return nil, err
	}
	if err := ValidatePayment(&input.Payment); err != nil {
		return nil, err
	}

	publicId, err := GeneratePublicId(ctx, s.idPrefix, s.idMaxRetries, s.publicIdExists)
	if err != nil {
		return nil, err
	}

	subtotal := cart.Subtotal()
	order := ordermodels.Order{
		PublicId: publicId,
		Customer: ordermodels.Customer{
			Name:    input.Customer.Name,
			Phone:   input.Customer.Phone,
			Address: input.Customer.Address,
		},
		Items:       cart.Items,
		Subtotal:    subtotal,
		DeliveryFee: s.deliveryFee,
		Total:       subtotal + s.deliveryFee,
		Payment: ordermodels.Payment{
			Method:      input.Payment.Method,
			PayerNumber: input.Payment.PayerNumber,
			TrxId:       input.Payment.TrxId,
		},
		Status: ordermodels.StatusPending,
	}

	created, err := s.InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}

	// Trừ stock sau khi đơn đã được ghi. Stock là con số tham khảo,
	// không chặn bán: lỗi trừ stock không làm hỏng đơn.
	for i := range created.Items {
		line := &created.Items[i]
		if err := s.CartService.ProductService.DecrementStock(ctx, line.ProductId, line.Quantity); err != nil {
			log.WithError(err).WithFields(map[string]interface{}{
				"publicId":  created.PublicId,
				"productId": line.ProductId.Hex(),
			}).Warn("Không trừ được stock sau checkout")
		}
	}

	if _, err := s.CartService.ClearCart(ctx, token); err != nil {
		log.WithError(err).WithField("publicId", created.PublicId).Warn("Không xoá được giỏ sau checkout")
	}

	log.WithFields(map[string]interface{}{
		"publicId": created.PublicId,
		"total":    created.Total,
		"method":   created.Payment.Method,
	}).Info("Đã tạo đơn hàng mới")
	return &created, nil
}

// GetByPublicId tra cứu đơn theo mã công khai.
// Mã không tồn tại trả về ErrNotFound (404), phân biệt với lỗi hệ thống.
func (s *OrderService) GetByPublicId(ctx context.Context, publicId string) (*ordermodels.Order, error) {
	order, err := s.FindOne(ctx, bson.M{"publicId": publicId}, nil)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders trả về danh sách đơn có phân trang, mới nhất trước,
// tuỳ chọn lọc theo trạng thái.
func (s *OrderService) ListOrders(ctx context.Context, status string, page, limit int64) (*basemodels.PaginateResult[ordermodels.Order], error) {
	filter := bson.M{}
	if status != "" {
		if !ordermodels.IsValidStatus(status) {
			return nil, common.ErrInvalidStatus
		}
		filter["status"] = status
	}
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// UpdateStatus đổi trạng thái đơn. Mọi bước chuyển giữa các trạng thái
// hợp lệ đều được phép.
func (s *OrderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*ordermodels.Order, error) {
	if !ordermodels.IsValidStatus(status) {
		return nil, common.ErrInvalidStatus
	}
	order, err := s.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}}, nil)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// SetAdminNote ghi đè ghi chú nội bộ của đơn. Ghi cùng nội dung nhiều
// lần cho cùng kết quả, ghi chuỗi rỗng để xoá ghi chú.
func (s *OrderService) SetAdminNote(ctx context.Context, id primitive.ObjectID, note string) (*ordermodels.Order, error) {
	order, err := s.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"adminNote": note}}, nil)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
