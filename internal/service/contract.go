package service

import (
	"context"

	"github.com/distromart/product-service/internal/domain"
	"github.com/distromart/product-service/internal/dto"
	pkgdto "github.com/distromart/product-service/pkg/dto"
)

// ImageStore is the remote blob store holding product images.
type ImageStore interface {
	Upload(ctx context.Context, data []byte, contentType string, folder string) (domain.ProductImage, error)
	Delete(ctx context.Context, publicID string) error
}

// EventPublisher emits product change events after successful writes.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data interface{}) error
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, eventType string, data interface{}) error {
	return nil
}

type ProductService interface {
	GetProducts(ctx context.Context, filter pkgdto.Filter) (data dto.ProductListData, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	AddProduct(ctx context.Context, payload dto.ProductRequest, upload *dto.ImageUpload) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, id string, payload dto.ProductRequest, upload *dto.ImageUpload) (product domain.Product, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	GetProductOptions() dto.OptionsData
	GetProductsByCategory(ctx context.Context, category string, filter pkgdto.Filter) (data dto.CategoryListData, err error)
	GetProductStats(ctx context.Context) (data dto.StatsData, err error)
}
