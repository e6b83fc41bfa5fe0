package filtros

import (
	"net/url"
	"strconv"
)

// Pagina describes one page of a list
type Pagina struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
	Pages    int   `json:"pages"`
}

// ParsePage reads the page query parameter. Missing or invalid values give page 1.
func ParsePage(q url.Values) int {
	n, err := strconv.Atoi(q.Get("page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// NewPagina clamps page into the available range for total items
func NewPagina(page int, total int64, size int) Pagina {
	pages := int((total + int64(size) - 1) / int64(size))
	if pages < 1 {
		pages = 1
	}
	if page > pages {
		page = pages
	}
	if page < 1 {
		page = 1
	}
	return Pagina{Page: page, PageSize: size, Total: total, Pages: pages}
}

// Offset is the number of rows to skip for this page
func (p Pagina) Offset() int {
	return (p.Page - 1) * p.PageSize
}
