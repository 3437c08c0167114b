package dto

// Filter carries the list query parameters. Page and Limit fall back to
// 1 and 10 when absent or out of range.
type Filter struct {
	Page     int64  `query:"page"`
	Limit    int64  `query:"limit"`
	Category string `query:"category"`
	Status   string `query:"status"`
	Search   string `query:"search"`
}

func (f *Filter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
}

func (f Filter) Skip() int64 {
	return (f.Page - 1) * f.Limit
}
