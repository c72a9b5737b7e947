// Package cataloghdl - Handler sản phẩm cho storefront và admin dashboard.
package cataloghdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/khulnastore11/khulnastore/internal/api/base/handler"
	catalogdto "github.com/khulnastore11/khulnastore/internal/api/catalog/dto"
	catalogmodels "github.com/khulnastore11/khulnastore/internal/api/catalog/models"
	catalogvc "github.com/khulnastore11/khulnastore/internal/api/catalog/service"
	"github.com/khulnastore11/khulnastore/internal/common"
	"github.com/khulnastore11/khulnastore/internal/global"
)

// ProductHandler xử lý các route sản phẩm (public đọc, admin ghi).
type ProductHandler struct {
	ProductService *catalogvc.ProductService
	UploadService  *catalogvc.ImageUploadService
}

// NewProductHandler tạo ProductHandler mới.
func NewProductHandler() (*ProductHandler, error) {
	productSvc, err := catalogvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("tạo ProductService: %w", err)
	}
	return &ProductHandler{
		ProductService: productSvc,
		UploadService:  catalogvc.NewImageUploadService(global.MongoDB_ServerConfig),
	}, nil
}

// HandleListProducts xử lý GET /products.
// Query: search (substring tên), category, page, limit.
func (h *ProductHandler) HandleListProducts(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		page := parseInt64Query(c, "page", 1)
		limit := parseInt64Query(c, "limit", 20)
		result, err := h.ProductService.ListProducts(c.Context(), c.Query("search"), c.Query("category"), page, limit)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		items := make([]catalogdto.ProductResponse, 0, len(result.Items))
		for i := range result.Items {
			items = append(items, *toProductResponse(&result.Items[i]))
		}
		basehdl.HandleResponse(c, fiber.Map{
			"items":     items,
			"page":      result.Page,
			"limit":     result.Limit,
			"total":     result.Total,
			"totalPage": result.TotalPage,
		}, nil)
		return nil
	})
}

// HandleGetProduct xử lý GET /products/:id.
func (h *ProductHandler) HandleGetProduct(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationFormat.Code, "message": "id sản phẩm không hợp lệ", "status": "error",
			})
			return nil
		}
		product, err := h.ProductService.FindOneById(c.Context(), id)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, toProductResponse(&product), nil)
		return nil
	})
}

// HandleCreateProduct xử lý POST /admin/products.
func (h *ProductHandler) HandleCreateProduct(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input catalogdto.ProductCreateInput
		if err := c.Bind().Body(&input); err != nil {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationFormat.Code, "message": "Dữ liệu gửi lên không đúng định dạng JSON", "status": "error",
			})
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationInput.Code, "message": common.MsgValidationError, "details": err.Error(), "status": "error",
			})
			return nil
		}

		product, err := h.ProductService.CreateProduct(c.Context(), &input)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleCreated(c, toProductResponse(product))
		return nil
	})
}

// HandleUpdateProduct xử lý PUT /admin/products/:id.
func (h *ProductHandler) HandleUpdateProduct(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationFormat.Code, "message": "id sản phẩm không hợp lệ", "status": "error",
			})
			return nil
		}
		var input catalogdto.ProductUpdateInput
		if err := c.Bind().Body(&input); err != nil {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationFormat.Code, "message": "Dữ liệu gửi lên không đúng định dạng JSON", "status": "error",
			})
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationInput.Code, "message": common.MsgValidationError, "details": err.Error(), "status": "error",
			})
			return nil
		}

		product, err := h.ProductService.UpdateProduct(c.Context(), id, &input)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, toProductResponse(product), nil)
		return nil
	})
}

// HandleDeleteProduct xử lý DELETE /admin/products/:id.
func (h *ProductHandler) HandleDeleteProduct(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationFormat.Code, "message": "id sản phẩm không hợp lệ", "status": "error",
			})
			return nil
		}
		if err := h.ProductService.DeleteById(c.Context(), id); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, nil, nil)
		return nil
	})
}

// HandleUploadImage xử lý POST /admin/products/upload-image (multipart, field "file").
func (h *ProductHandler) HandleUploadImage(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationInput.Code, "message": "Thiếu file ảnh (field \"file\")", "status": "error",
			})
			return nil
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code": common.ErrCodeValidationFormat.Code, "message": "Không đọc được file ảnh", "status": "error",
			})
			return nil
		}
		defer file.Close()

		url, err := h.UploadService.Upload(c.Context(), fileHeader.Filename, file)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, catalogdto.ImageUploadResponse{URL: url}, nil)
		return nil
	})
}

func toProductResponse(p *catalogmodels.Product) *catalogdto.ProductResponse {
	if p == nil {
		return nil
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return &catalogdto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		Unit:          p.Unit,
		Stock:         p.Stock,
		Images:        images,
		FeaturedIndex: p.FeaturedIndex,
		FeaturedImage: p.FeaturedImage(),
		Category:      p.Category,
		Desc:          p.Desc,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// parseInt64Query đọc query param số, trả về defaultValue nếu thiếu hoặc không hợp lệ.
func parseInt64Query(c fiber.Ctx, name string, defaultValue int64) int64 {
	if s := c.Query(name); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
