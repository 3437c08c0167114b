package dto

// ProductRequest is the create/update payload. Bound from JSON or
// multipart form fields. Numeric required fields are pointers so that a
// legitimate zero survives the required check.
type ProductRequest struct {
	Name            string   `json:"name" form:"name" validate:"required"`
	Category        string   `json:"category" form:"category" validate:"required,category"`
	Mrp             *float64 `json:"mrp" form:"mrp" validate:"required,gte=0"`
	DistributorRate *float64 `json:"distributorRate" form:"distributorRate" validate:"required,gte=0"`
	RetailerPrice   *float64 `json:"retailerPrice" form:"retailerPrice" validate:"required,gte=0"`
	Uom             string   `json:"uom" form:"uom" validate:"required,uom"`
	Unit            *int64   `json:"unit" form:"unit" validate:"required,gte=1"`
	Crt             *float64 `json:"crt" form:"crt" validate:"required,gte=0"`
	Weight          *float64 `json:"weight" form:"weight" validate:"omitempty,gte=0"`
	WeightUnit      *string  `json:"weightUnit" form:"weightUnit" validate:"omitempty,weightunit"`
	Status          *string  `json:"status" form:"status" validate:"omitempty,productstatus"`
}

// ImageUpload is the raw file attached to a create/update request.
type ImageUpload struct {
	Data        []byte
	ContentType string
}
