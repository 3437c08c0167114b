package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/distromart/product-service/internal/dto"
	"github.com/distromart/product-service/pkg/response"
	"github.com/distromart/product-service/pkg/validation"
)

func float64Ptr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64       { return &v }
func stringPtr(v string) *string    { return &v }

func validRequest() dto.ProductRequest {
	return dto.ProductRequest{
		Name:            "Tea",
		Category:        "Beverages",
		Mrp:             float64Ptr(100),
		DistributorRate: float64Ptr(80),
		RetailerPrice:   float64Ptr(90),
		Uom:             "Packet",
		Unit:            int64Ptr(1),
		Crt:             float64Ptr(5),
	}
}

func TestValidRequest(t *testing.T) {
	assert.Nil(t, validation.Struct(validRequest()))
}

func TestZeroPricesAreValid(t *testing.T) {
	payload := validRequest()
	payload.Mrp = float64Ptr(0)
	payload.DistributorRate = float64Ptr(0)
	payload.RetailerPrice = float64Ptr(0)
	payload.Crt = float64Ptr(0)

	assert.Nil(t, validation.Struct(payload))
}

func TestMissingRequiredFields(t *testing.T) {
	fieldErrs := validation.Struct(dto.ProductRequest{})

	assert.Len(t, fieldErrs, 8)
	assert.Equal(t, response.FieldError{Field: "name", Message: "Name is required"}, fieldErrs[0])
	assert.Equal(t, response.FieldError{Field: "category", Message: "Category is required"}, fieldErrs[1])
	assert.Equal(t, response.FieldError{Field: "mrp", Message: "MRP must be a positive number"}, fieldErrs[2])
	assert.Equal(t, response.FieldError{Field: "distributorRate", Message: "Distributor rate must be a positive number"}, fieldErrs[3])
	assert.Equal(t, response.FieldError{Field: "retailerPrice", Message: "Retailer price must be a positive number"}, fieldErrs[4])
	assert.Equal(t, response.FieldError{Field: "uom", Message: "UOM is required"}, fieldErrs[5])
	assert.Equal(t, response.FieldError{Field: "unit", Message: "Unit must be at least 1"}, fieldErrs[6])
	assert.Equal(t, response.FieldError{Field: "crt", Message: "CRT must be a positive number"}, fieldErrs[7])
}

func TestEnumMembership(t *testing.T) {
	type TestCase struct {
		Name            string
		Mutate          func(r *dto.ProductRequest)
		ExpectedField   string
		ExpectedMessage string
	}

	testCases := []TestCase{
		{
			Name:            "unknown category",
			Mutate:          func(r *dto.ProductRequest) { r.Category = "Electronics" },
			ExpectedField:   "category",
			ExpectedMessage: "Category must be one of: Daily, Bakery, Beverages, Snacks, Dairy, Frozen, Personal Care, Household, Other",
		},
		{
			Name:            "unknown uom",
			Mutate:          func(r *dto.ProductRequest) { r.Uom = "Dozen" },
			ExpectedField:   "uom",
			ExpectedMessage: "UOM must be one of: Pieces, Kg, Liter, Grams, Ml, Box, Packet, Bottle, Can, Carton",
		},
		{
			Name:            "unknown weight unit",
			Mutate:          func(r *dto.ProductRequest) { r.WeightUnit = stringPtr("tons") },
			ExpectedField:   "weightUnit",
			ExpectedMessage: "Invalid weight unit",
		},
		{
			Name:            "unknown status",
			Mutate:          func(r *dto.ProductRequest) { r.Status = stringPtr("archived") },
			ExpectedField:   "status",
			ExpectedMessage: "Status must be either active or inactive",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			payload := validRequest()
			tc.Mutate(&payload)

			fieldErrs := validation.Struct(payload)
			assert.Len(t, fieldErrs, 1)
			assert.Equal(t, tc.ExpectedField, fieldErrs[0].Field)
			assert.Equal(t, tc.ExpectedMessage, fieldErrs[0].Message)
		})
	}
}

func TestNumericBounds(t *testing.T) {
	payload := validRequest()
	payload.Mrp = float64Ptr(-1)
	payload.Unit = int64Ptr(0)
	payload.Weight = float64Ptr(-5)

	fieldErrs := validation.Struct(payload)
	assert.Len(t, fieldErrs, 3)
	assert.Equal(t, response.FieldError{Field: "mrp", Message: "MRP must be a positive number"}, fieldErrs[0])
	assert.Equal(t, response.FieldError{Field: "unit", Message: "Unit must be at least 1"}, fieldErrs[1])
	assert.Equal(t, response.FieldError{Field: "weight", Message: "Weight must be positive"}, fieldErrs[2])
}

func TestOptionalFieldsAccepted(t *testing.T) {
	payload := validRequest()
	payload.Weight = float64Ptr(250)
	payload.WeightUnit = stringPtr("gms")
	payload.Status = stringPtr("inactive")

	assert.Nil(t, validation.Struct(payload))
}
