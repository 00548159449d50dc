package filter

import "fmt"

const maxPageSize = 100

// Limit holds the page size selected via nArtikelProSeite, clamped to a
// sane range.
type Limit struct {
	pageSize int
}

func NewLimit(ctx FilterContext) *Limit {
	size := ctx.DefaultPageSize
	if size < 1 {
		size = 20
	}
	return &Limit{pageSize: size}
}

func (l *Limit) Set(size int) *Limit {
	if size >= 1 && size <= maxPageSize {
		l.pageSize = size
	}
	return l
}

func (l *Limit) PageSize() int { return l.pageSize }

// SQL renders a LIMIT/OFFSET clause for listing-mode queries.
func (l *Limit) SQL(page int) string {
	if page < 1 {
		page = 1
	}
	return fmt.Sprintf("LIMIT %d OFFSET %d", l.pageSize, (page-1)*l.pageSize)
}
