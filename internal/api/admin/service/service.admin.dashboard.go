// Package adminvc - Thống kê tổng quan cho dashboard.
package adminvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	admindto "github.com/khulnastore11/khulnastore/internal/api/admin/dto"
	ordermodels "github.com/khulnastore11/khulnastore/internal/api/order/models"
	"github.com/khulnastore11/khulnastore/internal/common"
	"github.com/khulnastore11/khulnastore/internal/global"
)

// DashboardService tổng hợp số liệu từ products và orders.
type DashboardService struct {
	products *mongo.Collection
	orders   *mongo.Collection
}

// NewDashboardService tạo DashboardService mới.
func NewDashboardService() (*DashboardService, error) {
	products, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Products, common.ErrNotFound)
	}
	orders, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Orders, common.ErrNotFound)
	}
	return &DashboardService{products: products, orders: orders}, nil
}

// statusGroup là kết quả $group theo status.
type statusGroup struct {
	Status  string  `bson:"_id"`
	Count   int64   `bson:"count"`
	Revenue float64 `bson:"revenue"`
}

// Stats trả về các số liệu dashboard: số sản phẩm, số đơn, doanh thu
// (tổng total của mọi đơn) và số đơn theo từng trạng thái.
func (s *DashboardService) Stats(ctx context.Context) (*admindto.DashboardResponse, error) {
	productCount, err := s.products.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":     "$status",
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$total"},
		}}},
	}
	cursor, err := s.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var groups []statusGroup
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	result := &admindto.DashboardResponse{
		ProductCount: productCount,
		StatusCounts: map[string]int64{},
	}
	// Trạng thái chưa có đơn nào vẫn xuất hiện với count 0
	for _, status := range ordermodels.AllStatuses {
		result.StatusCounts[status] = 0
	}
	for _, g := range groups {
		result.OrderCount += g.Count
		result.Revenue += g.Revenue
		result.StatusCounts[g.Status] = g.Count
	}
	return result, nil
}
