package dto

import (
	"github.com/distromart/product-service/internal/domain"
	pkgdto "github.com/distromart/product-service/pkg/dto"
)

type FilterOptions struct {
	Categories []string `json:"categories"`
	Uoms       []string `json:"uoms"`
	Statuses   []string `json:"statuses"`
}

type ProductListData struct {
	Products   []domain.Product  `json:"products"`
	Pagination pkgdto.Pagination `json:"pagination"`
	Filters    FilterOptions     `json:"filters"`
}

// CategoryPagination is the reduced pagination block of the by-category
// endpoint.
type CategoryPagination struct {
	CurrentPage  int64 `json:"currentPage"`
	TotalPages   int64 `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int64 `json:"itemsPerPage"`
}

type CategoryListData struct {
	Products   []domain.Product   `json:"products"`
	Pagination CategoryPagination `json:"pagination"`
	Category   string             `json:"category"`
}

type OptionsData struct {
	Categories  []string `json:"categories"`
	Uoms        []string `json:"uoms"`
	WeightUnits []string `json:"weightUnits"`
	Statuses    []string `json:"statuses"`
}

type StatsData struct {
	TotalProducts    int64                  `json:"totalProducts"`
	ActiveProducts   int64                  `json:"activeProducts"`
	InactiveProducts int64                  `json:"inactiveProducts"`
	CategoryStats    []domain.CategoryCount `json:"categoryStats"`
}
