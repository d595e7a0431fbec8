package domain

// PageQuery carries page/limit pagination params as parsed from the request.
type PageQuery struct {
	Page  int64
	Limit int64
}

// Offset converts the 1-based page number into a row offset.
func (p PageQuery) Offset() int64 {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// PageInfo describes one page of a paginated result set.
type PageInfo struct {
	Total      int64 `json:"total"`
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

// NewPageInfo computes totalPages = ceil(total/limit).
func NewPageInfo(total int64, q PageQuery) PageInfo {
	info := PageInfo{
		Total: total,
		Page:  q.Page,
		Limit: q.Limit,
	}
	if q.Limit > 0 {
		info.TotalPages = (total + q.Limit - 1) / q.Limit
	}
	return info
}
