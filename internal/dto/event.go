package dto

// Event types published on the product topic.
const (
	EventProductCreated = "product_created"
	EventProductUpdated = "product_updated"
	EventProductDeleted = "product_deleted"
)

type ProductEvent struct {
	EventType string      `json:"eventType"`
	Data      interface{} `json:"data"`
}
