package domain

// PaginationParams pages the catalog and story listings. All listings use
// offset pagination; search ranking is paged by the caller instead.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset of the current page. Page numbers below 1
// clamp to the first page.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}
