// Script seed dữ liệu sản phẩm mẫu cho môi trường development.
// Bỏ qua sản phẩm đã tồn tại (so theo name) nên chạy lại nhiều lần an toàn.
//
// Chạy: go run scripts/seed_products.go
// Cần: MONGODB_CONNECTION_URI, MONGODB_DBNAME (từ .env hoặc env vars)
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seedProduct struct {
	Name     string
	Price    float64
	Unit     string
	Stock    int64
	Category string
	Desc     string
}

var seedProducts = []seedProduct{
	{Name: "Gạo thơm", Price: 85, Unit: "kg", Stock: 200, Category: "grocery", Desc: "Gạo thơm hạt dài"},
	{Name: "Dầu ăn", Price: 190, Unit: "lít", Stock: 80, Category: "grocery", Desc: "Dầu hướng dương"},
	{Name: "Trứng gà", Price: 12, Unit: "quả", Stock: 500, Category: "fresh"},
	{Name: "Cá rô phi", Price: 220, Unit: "kg", Stock: 35, Category: "fresh", Desc: "Cá tươi trong ngày"},
	{Name: "Hành tím", Price: 60, Unit: "kg", Stock: 120, Category: "vegetable"},
	{Name: "Khoai tây", Price: 30, Unit: "kg", Stock: 150, Category: "vegetable"},
}

func loadScriptConfig() (uri, dbName string) {
	// Thử load .env từ nhiều vị trí
	tryPaths := []string{
		".env",
		"config/env/development.env",
	}
	cwd, _ := os.Getwd()
	for _, p := range tryPaths {
		full := filepath.Join(cwd, p)
		if _, err := os.Stat(full); err == nil {
			_ = godotenv.Load(full)
			break
		}
		// Thử từ thư mục cha (khi chạy từ scripts/)
		parent := filepath.Dir(cwd)
		full = filepath.Join(parent, p)
		if _, err := os.Stat(full); err == nil {
			_ = godotenv.Load(full)
			break
		}
	}
	uri = os.Getenv("MONGODB_CONNECTION_URI")
	dbName = os.Getenv("MONGODB_DBNAME")
	if dbName == "" {
		dbName = "khulnastore"
	}
	return uri, dbName
}

func main() {
	fmt.Println("=== Seed Sản Phẩm Mẫu ===")

	uri, dbName := loadScriptConfig()
	if uri == "" {
		log.Fatal("Cần set MONGODB_CONNECTION_URI (trong .env hoặc env vars).\n" +
			"Ví dụ: MONGODB_CONNECTION_URI=mongodb://localhost:27017")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("Không thể kết nối MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Không thể ping MongoDB: %v", err)
	}

	products := client.Database(dbName).Collection("products")

	inserted, skipped := 0, 0
	for _, p := range seedProducts {
		count, err := products.CountDocuments(ctx, bson.M{"name": p.Name})
		if err != nil {
			log.Fatalf("Lỗi kiểm tra sản phẩm %q: %v", p.Name, err)
		}
		if count > 0 {
			skipped++
			continue
		}

		now := time.Now().UnixMilli()
		doc := bson.M{
			"name":          p.Name,
			"price":         p.Price,
			"unit":          p.Unit,
			"stock":         p.Stock,
			"images":        []string{},
			"featuredIndex": 0,
			"category":      p.Category,
			"createdAt":     now,
			"updatedAt":     now,
		}
		if p.Desc != "" {
			doc["desc"] = p.Desc
		}

		if _, err := products.InsertOne(ctx, doc); err != nil {
			log.Fatalf("Lỗi insert sản phẩm %q: %v", p.Name, err)
		}
		inserted++
		fmt.Printf("  + %s (%v/%s)\n", p.Name, p.Price, p.Unit)
	}

	fmt.Printf("Hoàn tất: %d sản phẩm mới, %d đã tồn tại.\n", inserted, skipped)
}
