package catalog

import "github.com/ogomesoffensivesec/catalogo-client-bmimports/src/lib/config"

// Page describes a page of a list.
type Page struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
	Total      int `json:"total"`

	// Start and End are the bounds of the page in the list: list[Start:End]
	Start int `json:"-"`
	End   int `json:"-"`
}

// Paginate clamps the page into range and returns its bounds.
func Paginate(total, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = config.DefaultPageSize
	}

	total = max(total, 0)
	totalPages := max(1, (total+pageSize-1)/pageSize)
	page = min(max(1, page), totalPages)

	start := (page - 1) * pageSize

	return Page{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Total:      total,
		Start:      min(start, total),
		End:        min(start+pageSize, total),
	}
}

// PageLink is an entry of the pagination control.
type PageLink struct {
	Page     int  `json:"page,omitempty"`
	Active   bool `json:"active,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// windowSize is the number of pages that are always listed in full.
const windowSize = 7

// PageWindow returns the pages to show for the current page. Long lists
// show the first two, the neighbours of the current page and the last two
// pages with ellipses in the gaps.
func PageWindow(page, totalPages int) []PageLink {
	links := []PageLink{}

	if totalPages <= windowSize {
		for i := 1; i <= totalPages; i++ {
			links = append(links, PageLink{Page: i, Active: i == page})
		}

		return links
	}

	show := map[int]bool{
		1: true, 2: true,
		page - 1: true, page: true, page + 1: true,
		totalPages - 1: true, totalPages: true,
	}

	last := 0

	for i := 1; i <= totalPages; i++ {
		if !show[i] {
			continue
		}

		if last != 0 && i-last > 1 {
			links = append(links, PageLink{Ellipsis: true})
		}

		links = append(links, PageLink{Page: i, Active: i == page})
		last = i
	}

	return links
}
