package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	pkgdto "github.com/distromart/product-service/pkg/dto"
)

func TestBuildFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, buildFilter(pkgdto.Filter{}))

	assert.Equal(t, bson.M{
		"category": "Snacks",
		"status":   "active",
	}, buildFilter(pkgdto.Filter{Category: "Snacks", Status: "active"}))

	assert.Equal(t, bson.M{
		"name": primitive.Regex{Pattern: "tea", Options: "i"},
	}, buildFilter(pkgdto.Filter{Search: "tea"}))
}
