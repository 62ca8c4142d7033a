package response

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

// SinglePage membungkus hasil yang sudah dibatasi di query (limit saja, tanpa offset).
func SinglePage(pageSize, count int) *Pagination {
	return &Pagination{
		Page:       1,
		PageSize:   pageSize,
		TotalPages: 1,
		TotalItems: int64(count),
		From:       1,
		To:         count,
	}
}
