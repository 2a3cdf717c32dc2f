package models

type SortingOrder string

const (
	SortingOrderAsc  SortingOrder = "ASC"
	SortingOrderDesc SortingOrder = "DESC"
)

const DefaultHistoryLimit = 100

// PaginationAndSorting carries the offset/limit window and the optional
// property ordering of a history query. OrderBy is a mapped property name,
// not a column name.
type PaginationAndSorting struct {
	OrderBy string
	Order   SortingOrder
	Offset  int
	Limit   int
}

func WithDefaultPagination(p PaginationAndSorting) PaginationAndSorting {
	if p.Limit <= 0 {
		p.Limit = DefaultHistoryLimit
	}
	if p.Order == "" {
		p.Order = SortingOrderAsc
	}
	return p
}
