package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/distromart/product-service/config"
	"github.com/distromart/product-service/internal/domain"
	"github.com/distromart/product-service/internal/dto"
	"github.com/distromart/product-service/internal/repository"
	pkgdto "github.com/distromart/product-service/pkg/dto"
	"github.com/distromart/product-service/pkg/errs"
)

type ProductServiceImpl struct {
	mongoDBRepo repository.MongoDBProductRepository
	config      config.Config
	imageStore  ImageStore
	publisher   EventPublisher
}

func CreateProductService(mongoDBRepo repository.MongoDBProductRepository, config config.Config, imageStore ImageStore, publisher EventPublisher) ProductService {
	return &ProductServiceImpl{mongoDBRepo: mongoDBRepo, config: config, imageStore: imageStore, publisher: publisher}
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (data dto.ProductListData, err error) {
	filter.Normalize()

	total, err := s.mongoDBRepo.CountProducts(ctx, filter)
	if err != nil {
		return
	}

	products, err := s.mongoDBRepo.GetProducts(ctx, filter)
	if err != nil {
		return
	}

	return dto.ProductListData{
		Products:   products,
		Pagination: pkgdto.BuildPagination(filter.Page, filter.Limit, total),
		Filters: dto.FilterOptions{
			Categories: domain.Categories,
			Uoms:       domain.UOMs,
			Statuses:   domain.Statuses,
		},
	}, nil
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	return s.mongoDBRepo.GetProductByID(ctx, id)
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, payload dto.ProductRequest, upload *dto.ImageUpload) (product domain.Product, err error) {
	image := domain.ProductImage{}
	if upload != nil {
		image, err = s.imageStore.Upload(ctx, upload.Data, upload.ContentType, s.config.ObjectStorageConfig.Folder)
		if err != nil {
			return
		}
	}

	now := time.Now().UTC()

	product = domain.Product{
		Name:            strings.TrimSpace(payload.Name),
		Category:        payload.Category,
		Mrp:             *payload.Mrp,
		DistributorRate: *payload.DistributorRate,
		RetailerPrice:   *payload.RetailerPrice,
		Uom:             payload.Uom,
		Unit:            *payload.Unit,
		Crt:             *payload.Crt,
		Image:           image,
		Weight:          payload.Weight,
		WeightUnit:      domain.DefaultWeightUnit,
		Status:          domain.StatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if payload.WeightUnit != nil {
		product.WeightUnit = *payload.WeightUnit
	}
	if payload.Status != nil {
		product.Status = *payload.Status
	}

	productID, err := s.mongoDBRepo.AddProduct(ctx, product)
	if err != nil {
		return
	}

	product.ID = productID

	if err := s.publisher.Publish(ctx, dto.EventProductCreated, product); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("failed to publish product event")
	}

	return product, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, id string, payload dto.ProductRequest, upload *dto.ImageUpload) (product domain.Product, err error) {
	product, err = s.mongoDBRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	if upload != nil {
		// The old blob is removed before the replacement upload. If the
		// record save below fails, the old image is already gone while the
		// new reference never persists; accepted inconsistency window.
		if product.Image.PublicID != "" {
			if err = s.imageStore.Delete(ctx, product.Image.PublicID); err != nil {
				return
			}
		}

		product.Image, err = s.imageStore.Upload(ctx, upload.Data, upload.ContentType, s.config.ObjectStorageConfig.Folder)
		if err != nil {
			return
		}
	}

	product.Name = strings.TrimSpace(payload.Name)
	product.Category = payload.Category
	product.Mrp = *payload.Mrp
	product.DistributorRate = *payload.DistributorRate
	product.RetailerPrice = *payload.RetailerPrice
	product.Uom = payload.Uom
	product.Unit = *payload.Unit
	product.Crt = *payload.Crt

	if payload.Weight != nil {
		product.Weight = payload.Weight
	}
	if payload.WeightUnit != nil {
		product.WeightUnit = *payload.WeightUnit
	}
	if payload.Status != nil {
		product.Status = *payload.Status
	}

	product.UpdatedAt = time.Now().UTC()

	if err = s.mongoDBRepo.UpdateProduct(ctx, product); err != nil {
		return
	}

	if err := s.publisher.Publish(ctx, dto.EventProductUpdated, product); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("failed to publish product event")
	}

	return product, nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	product, err := s.mongoDBRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	if product.Image.PublicID != "" {
		if err = s.imageStore.Delete(ctx, product.Image.PublicID); err != nil {
			return
		}
	}

	if err = s.mongoDBRepo.DeleteProduct(ctx, id); err != nil {
		return
	}

	if err := s.publisher.Publish(ctx, dto.EventProductDeleted, product); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("failed to publish product event")
	}

	return nil
}

func (s *ProductServiceImpl) GetProductOptions() dto.OptionsData {
	return dto.OptionsData{
		Categories:  domain.Categories,
		Uoms:        domain.UOMs,
		WeightUnits: domain.WeightUnits,
		Statuses:    domain.Statuses,
	}
}

func (s *ProductServiceImpl) GetProductsByCategory(ctx context.Context, category string, filter pkgdto.Filter) (data dto.CategoryListData, err error) {
	if !domain.ValidCategory(category) {
		return data, errs.ErrInvalidCategory
	}

	filter.Normalize()
	filter.Category = category
	filter.Status = ""
	filter.Search = ""

	total, err := s.mongoDBRepo.CountProducts(ctx, filter)
	if err != nil {
		return
	}

	products, err := s.mongoDBRepo.GetProducts(ctx, filter)
	if err != nil {
		return
	}

	pagination := pkgdto.BuildPagination(filter.Page, filter.Limit, total)

	return dto.CategoryListData{
		Products: products,
		Pagination: dto.CategoryPagination{
			CurrentPage:  pagination.CurrentPage,
			TotalPages:   pagination.TotalPages,
			TotalItems:   pagination.TotalItems,
			ItemsPerPage: pagination.ItemsPerPage,
		},
		Category: category,
	}, nil
}

func (s *ProductServiceImpl) GetProductStats(ctx context.Context) (data dto.StatsData, err error) {
	total, err := s.mongoDBRepo.CountProducts(ctx, pkgdto.Filter{})
	if err != nil {
		return
	}

	active, err := s.mongoDBRepo.CountProducts(ctx, pkgdto.Filter{Status: domain.StatusActive})
	if err != nil {
		return
	}

	inactive, err := s.mongoDBRepo.CountProducts(ctx, pkgdto.Filter{Status: domain.StatusInactive})
	if err != nil {
		return
	}

	stats, err := s.mongoDBRepo.GetCategoryStats(ctx)
	if err != nil {
		return
	}

	return dto.StatsData{
		TotalProducts:    total,
		ActiveProducts:   active,
		InactiveProducts: inactive,
		CategoryStats:    stats,
	}, nil
}
