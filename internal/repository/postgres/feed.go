package postgres

import "github.com/google/uuid"

// FeedFilter narrows the feed to one of the four views. At most one field is
// set; the zero value means the global feed.
type FeedFilter struct {
	GroupID    *int64
	AuthorID   *uuid.UUID
	FollowerID *uuid.UUID
}

// TotalPages reports how many pages a result set of total items occupies.
// An empty set still renders as a single empty page.
func TotalPages(total int64, size int) int {
	if total <= 0 {
		return 1
	}

	return int((total + int64(size) - 1) / int64(size))
}

// ClampPage clips an out-of-range page number to the nearest valid page.
func ClampPage(page int, total int64, size int) int {
	if page < 1 {
		return 1
	}

	if last := TotalPages(total, size); page > last {
		return last
	}

	return page
}
