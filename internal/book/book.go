package book

import (
	"errors"
)

var (
	// ErrNotFound is returned when no book matches a lookup.
	ErrNotFound = errors.New("book not found")
	// ErrReviewNotFound is returned when a book has no review by the given user.
	ErrReviewNotFound = errors.New("review not found")
	// ErrValidation is returned when a review request is missing required fields.
	ErrValidation = errors.New("username and review are required")
)

// Book represents a catalog entry together with its reviews.
type Book struct {
	ID      int      `json:"id" yaml:"id"`
	Title   string   `json:"title" yaml:"title"`
	Author  string   `json:"author" yaml:"author"`
	ISBN    string   `json:"ISBN" yaml:"isbn"`
	Reviews []Review `json:"reviews" yaml:"-"`
}

// Review is a single user's comment on a book. A book holds at most one
// review per username.
type Review struct {
	Username string `json:"username"`
	Review   string `json:"review"`
}

// clone returns a copy of b that shares no review storage with it.
func (b Book) clone() Book {
	reviews := make([]Review, len(b.Reviews))
	copy(reviews, b.Reviews)
	b.Reviews = reviews
	return b
}
