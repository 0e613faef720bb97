package entity

// Pagination is the page metadata shared by every paged discovery endpoint.
type Pagination struct {
	Total       int64 `json:"total"`
	PerPage     int   `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
}

// NewPagination builds page metadata from a single-query total count.
func NewPagination(total int64, pageSize, currentPage int) Pagination {
	return Pagination{
		Total:       max(total, 0),
		PerPage:     pageSize,
		CurrentPage: currentPage,
		TotalPages:  TotalPages(total, pageSize),
	}
}

// TotalPages returns ceil(total / pageSize), and 0 when there is nothing to page.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}

	size := int64(pageSize)

	return int((total + size - 1) / size)
}

// OffsetMeta is the metadata of limit/offset paged endpoints.
type OffsetMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewOffsetMeta derives the page number from limit and offset.
func NewOffsetMeta(total int64, limit, offset int) OffsetMeta {
	page := 1
	if limit > 0 {
		page = offset/limit + 1
	}

	return OffsetMeta{
		Page:       page,
		Limit:      limit,
		Offset:     offset,
		Total:      max(total, 0),
		TotalPages: TotalPages(total, limit),
	}
}
