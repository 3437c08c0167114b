package repository

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/distromart/product-service/internal/domain"
	pkgdto "github.com/distromart/product-service/pkg/dto"
	"github.com/distromart/product-service/pkg/errs"
)

const productCollection = "products"

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBRepository(db *mongo.Database) MongoDBProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

// buildFilter translates the list query parameters into a Mongo filter.
// Category and status are exact matches, search is a case-insensitive
// substring match on the product name.
func buildFilter(param pkgdto.Filter) bson.M {
	filter := bson.M{}

	if param.Category != "" {
		filter["category"] = param.Category
	}

	if param.Status != "" {
		filter["status"] = param.Status
	}

	if param.Search != "" {
		filter["name"] = primitive.Regex{Pattern: param.Search, Options: "i"}
	}

	return filter
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(productCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context, param pkgdto.Filter) (data []domain.Product, err error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(param.Skip()).
		SetLimit(param.Limit)

	cursor, err := r.db.Collection(productCollection).Find(ctx, buildFilter(param), opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if data == nil {
		data = []domain.Product{}
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) CountProducts(ctx context.Context, param pkgdto.Filter) (count int64, err error) {
	count, err = r.db.Collection(productCollection).CountDocuments(ctx, buildFilter(param))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountProducts").Msg("")
		return
	}

	return count, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return product, errs.ErrInvalidID
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	err = r.db.Collection(productCollection).FindOne(ctx, filter).Decode(&product)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrNotFound
		}

		return product, err
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}

	// Allow-listed merge. The identifier and creation timestamp are never
	// touched.
	fields := bson.M{
		"name":            data.Name,
		"category":        data.Category,
		"mrp":             data.Mrp,
		"distributorRate": data.DistributorRate,
		"retailerPrice":   data.RetailerPrice,
		"uom":             data.Uom,
		"unit":            data.Unit,
		"crt":             data.Crt,
		"image":           data.Image,
		"weightUnit":      data.WeightUnit,
		"status":          data.Status,
		"updatedAt":       data.UpdatedAt,
	}
	if data.Weight != nil {
		fields["weight"] = *data.Weight
	}

	result, err := r.db.Collection(productCollection).UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("Failed to update product")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return errs.ErrInvalidID
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	result, err := r.db.Collection(productCollection).DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return
}

func (r *MongoDBProductRepositoryImpl) GetCategoryStats(ctx context.Context) (stats []domain.CategoryCount, err error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cursor, err := r.db.Collection(productCollection).Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategoryStats").Msg("")
		return
	}

	if err = cursor.All(ctx, &stats); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategoryStats").Msg("")
		return
	}

	if stats == nil {
		stats = []domain.CategoryCount{}
	}

	return stats, nil
}
