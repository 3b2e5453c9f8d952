package repository

// Page describes an offset-paginated window. Zero or negative inputs
// fall back to the defaults (page 1, 20 items).
type Page struct {
	Number int
	Size   int
}

// NewPage clamps the raw query values into a usable window.
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = 20
	}
	return Page{Number: number, Size: size}
}

// Limit returns the LIMIT argument for the window.
func (p Page) Limit() int { return p.Size }

// Offset returns the OFFSET argument: (page-1)*pageSize.
func (p Page) Offset() int { return (p.Number - 1) * p.Size }

// TotalPages returns ceil(total/size) for the window size.
func TotalPages(total int64, size int) int {
	if size < 1 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
