package entity

// Sort orders a list query by a single column.
// Column must already be validated against the repository's whitelist.
type Sort struct {
	Column string
	Desc   bool
}

// Page is a 1-based offset/limit window
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of rows to skip
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

// TotalPages returns how many pages of this size hold total rows
func (p Page) TotalPages(total int64) int {
	if p.Size <= 0 {
		return 0
	}
	return int((total + int64(p.Size) - 1) / int64(p.Size))
}
