package blog

import "inkwell/internal/models"

// PageSize is the number of posts on one listing page.
const PageSize = 5

// Page is one slice of a paginated post listing.
type Page struct {
	Posts       []models.Post `json:"post_list"`
	Number      int           `json:"number"`
	NumPages    int           `json:"num_pages"`
	Count       int           `json:"count"`
	HasNext     bool          `json:"has_next"`
	HasPrevious bool          `json:"has_previous"`
}

// Paginate returns page number (1-based) of posts. Numbers outside the
// valid range are clamped to the first or last page. An empty listing has
// a single empty page.
func Paginate(posts []models.Post, number int) Page {
	count := len(posts)
	numPages := (count + PageSize - 1) / PageSize
	if numPages == 0 {
		numPages = 1
	}

	if number < 1 {
		number = 1
	}
	if number > numPages {
		number = numPages
	}

	start := (number - 1) * PageSize
	end := min(start+PageSize, count)

	items := make([]models.Post, 0, end-start)
	items = append(items, posts[start:end]...)

	return Page{
		Posts:       items,
		Number:      number,
		NumPages:    numPages,
		Count:       count,
		HasNext:     number < numPages,
		HasPrevious: number > 1,
	}
}
