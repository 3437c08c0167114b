package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enum value sets for the product schema. These are the single source of
// truth consulted by validation, filtering and the options endpoint.
// Read-only after startup.
var (
	Categories = []string{"Daily", "Bakery", "Beverages", "Snacks", "Dairy", "Frozen", "Personal Care", "Household", "Other"}

	UOMs = []string{"Pieces", "Kg", "Liter", "Grams", "Ml", "Box", "Packet", "Bottle", "Can", "Carton"}

	WeightUnits = []string{"gms", "ml", "kg", "liter", "mg"}

	Statuses = []string{"active", "inactive"}
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"

	DefaultWeightUnit = "gms"
)

type ProductImage struct {
	URL      string `bson:"url" json:"url"`
	PublicID string `bson:"publicId" json:"publicId"`
}

type Product struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Category        string             `bson:"category" json:"category"`
	Mrp             float64            `bson:"mrp" json:"mrp"`
	DistributorRate float64            `bson:"distributorRate" json:"distributorRate"`
	RetailerPrice   float64            `bson:"retailerPrice" json:"retailerPrice"`
	Uom             string             `bson:"uom" json:"uom"`
	Unit            int64              `bson:"unit" json:"unit"`
	Crt             float64            `bson:"crt" json:"crt"`
	Image           ProductImage       `bson:"image" json:"image"`
	Weight          *float64           `bson:"weight,omitempty" json:"weight,omitempty"`
	WeightUnit      string             `bson:"weightUnit" json:"weightUnit"`
	Status          string             `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CategoryCount is one row of the per-category aggregation.
type CategoryCount struct {
	Category string `bson:"_id" json:"category"`
	Count    int64  `bson:"count" json:"count"`
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

func ValidCategory(v string) bool   { return contains(Categories, v) }
func ValidUOM(v string) bool        { return contains(UOMs, v) }
func ValidWeightUnit(v string) bool { return contains(WeightUnits, v) }
func ValidStatus(v string) bool     { return contains(Statuses, v) }
