package dto

// Pagination is the metadata block returned alongside every paginated list.
// NextPage and PrevPage are null when there is no such page.
type Pagination struct {
	CurrentPage  int64  `json:"currentPage"`
	TotalPages   int64  `json:"totalPages"`
	TotalItems   int64  `json:"totalItems"`
	ItemsPerPage int64  `json:"itemsPerPage"`
	HasNext      bool   `json:"hasNext"`
	HasPrev      bool   `json:"hasPrev"`
	NextPage     *int64 `json:"nextPage"`
	PrevPage     *int64 `json:"prevPage"`
}

func BuildPagination(page, limit, total int64) Pagination {
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	p := Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
		HasNext:      page < totalPages,
		HasPrev:      page > 1,
	}

	if p.HasNext {
		next := page + 1
		p.NextPage = &next
	}
	if p.HasPrev {
		prev := page - 1
		p.PrevPage = &prev
	}

	return p
}
