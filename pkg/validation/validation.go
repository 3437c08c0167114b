package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/distromart/product-service/internal/domain"
	"github.com/distromart/product-service/pkg/response"
)

var validate = validator.New()

func init() {
	// Report fields by their json name so validation errors line up with
	// the wire format.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return domain.ValidCategory(fl.Field().String())
	})
	validate.RegisterValidation("uom", func(fl validator.FieldLevel) bool {
		return domain.ValidUOM(fl.Field().String())
	})
	validate.RegisterValidation("weightunit", func(fl validator.FieldLevel) bool {
		return domain.ValidWeightUnit(fl.Field().String())
	})
	validate.RegisterValidation("productstatus", func(fl validator.FieldLevel) bool {
		return domain.ValidStatus(fl.Field().String())
	})
}

// Struct validates v and returns one entry per violated rule, in struct
// field order. A nil result means the value is valid.
func Struct(v interface{}) []response.FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []response.FieldError{{Field: "", Message: err.Error()}}
	}

	fieldErrs := make([]response.FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fieldErrs = append(fieldErrs, response.FieldError{
			Field:   fieldErr.Field(),
			Message: fieldMessage(fieldErr),
		})
	}

	return fieldErrs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "name":
		return "Name is required"
	case "category":
		if fe.Tag() == "required" {
			return "Category is required"
		}
		return fmt.Sprintf("Category must be one of: %s", strings.Join(domain.Categories, ", "))
	case "mrp":
		return "MRP must be a positive number"
	case "distributorRate":
		return "Distributor rate must be a positive number"
	case "retailerPrice":
		return "Retailer price must be a positive number"
	case "uom":
		if fe.Tag() == "required" {
			return "UOM is required"
		}
		return fmt.Sprintf("UOM must be one of: %s", strings.Join(domain.UOMs, ", "))
	case "unit":
		return "Unit must be at least 1"
	case "crt":
		return "CRT must be a positive number"
	case "weight":
		return "Weight must be positive"
	case "weightUnit":
		return "Invalid weight unit"
	case "status":
		return "Status must be either active or inactive"
	}

	return fmt.Sprintf("Invalid value for %s", fe.Field())
}
