package utils

type Page struct {
	Number int
	IsLink bool
}

// Pagination is the view model consumed by _pagination.html.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	HasPrev     bool
	HasNext     bool
	PrevPage    int
	NextPage    int
	Pages       []Page
}

// TotalPages returns how many pages of pageSize items total needs.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// GeneratePagination generates a list of pages for a pagination component.
// It shows a limited number of pages around the current page, plus the first
// and last pages. Zero-numbered pages are ellipses. Nil means there is only
// one page.
func GeneratePagination(currentPage, totalPages int) *Pagination {
	if totalPages <= 1 {
		return nil
	}

	var pages []Page
	window := 2 // Number of pages to show on each side of the current page

	pages = append(pages, Page{Number: 1, IsLink: true})

	if currentPage > window+2 {
		pages = append(pages, Page{Number: 0, IsLink: false})
	}

	start := max(2, currentPage-window)
	end := min(totalPages-1, currentPage+window)
	for i := start; i <= end; i++ {
		pages = append(pages, Page{Number: i, IsLink: true})
	}

	if currentPage < totalPages-(window+1) {
		pages = append(pages, Page{Number: 0, IsLink: false})
	}

	pages = append(pages, Page{Number: totalPages, IsLink: true})

	// Remove duplicates that might occur if window is large
	finalPages := []Page{}
	seen := make(map[int]bool)
	for _, p := range pages {
		if p.Number == currentPage {
			p.IsLink = false
		}
		if p.Number == 0 {
			finalPages = append(finalPages, p)
			continue
		}
		if !seen[p.Number] {
			finalPages = append(finalPages, p)
			seen[p.Number] = true
		}
	}

	return &Pagination{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		HasPrev:     currentPage > 1,
		HasNext:     currentPage < totalPages,
		PrevPage:    currentPage - 1,
		NextPage:    currentPage + 1,
		Pages:       finalPages,
	}
}

// Paginate returns the slice of items that falls on page.
func Paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return items
	}
	start := (page - 1) * pageSize
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := min(start+pageSize, len(items))
	return items[start:end]
}
