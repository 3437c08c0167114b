package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/distromart/product-service/internal/domain"
	pkgdto "github.com/distromart/product-service/pkg/dto"
)

type MongoDBProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context, param pkgdto.Filter) (data []domain.Product, err error)
	CountProducts(ctx context.Context, param pkgdto.Filter) (count int64, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
	GetCategoryStats(ctx context.Context) (stats []domain.CategoryCount, err error)
}
