package book

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MemoryRepo keeps the catalog in process memory. Books are listed in the
// order they were seeded and looked up by ISBN through an index.
type MemoryRepo struct {
	mu     sync.RWMutex
	books  []*Book
	byISBN map[string]*Book
}

// NewMemoryRepo builds a repository from seed books. Seed reviews are copied
// so later mutations never touch the caller's slice.
func NewMemoryRepo(seed []Book) (*MemoryRepo, error) {
	r := &MemoryRepo{
		books:  make([]*Book, 0, len(seed)),
		byISBN: make(map[string]*Book, len(seed)),
	}
	for _, b := range seed {
		if b.ISBN == "" {
			return nil, fmt.Errorf("seed book %d: missing ISBN", b.ID)
		}
		if _, exists := r.byISBN[b.ISBN]; exists {
			return nil, fmt.Errorf("seed book %d: duplicate ISBN %q", b.ID, b.ISBN)
		}
		stored := b.clone()
		r.books = append(r.books, &stored)
		r.byISBN[stored.ISBN] = &stored
	}
	return r, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Book, error) {
	return r.filter(func(b *Book) bool { return true }), nil
}

// FindByTitle matches title substrings case-insensitively.
func (r *MemoryRepo) FindByTitle(ctx context.Context, title string) ([]Book, error) {
	needle := strings.ToLower(title)
	return r.filter(func(b *Book) bool {
		return strings.Contains(strings.ToLower(b.Title), needle)
	}), nil
}

// FindByAuthor matches the full author name case-insensitively.
func (r *MemoryRepo) FindByAuthor(ctx context.Context, author string) ([]Book, error) {
	needle := strings.ToLower(author)
	return r.filter(func(b *Book) bool {
		return strings.ToLower(b.Author) == needle
	}), nil
}

func (r *MemoryRepo) FindByISBN(ctx context.Context, isbn string) ([]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byISBN[isbn]
	if !ok {
		return []Book{}, nil
	}
	return []Book{b.clone()}, nil
}

func (r *MemoryRepo) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byISBN[isbn]
	if !ok {
		return Book{}, ErrNotFound
	}
	return b.clone(), nil
}

// UpsertReview replaces the review left by review.Username in place, or
// appends it when the user has not reviewed the book yet.
func (r *MemoryRepo) UpsertReview(ctx context.Context, isbn string, review Review) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byISBN[isbn]
	if !ok {
		return Book{}, ErrNotFound
	}
	if i := reviewIndex(b.Reviews, review.Username); i >= 0 {
		b.Reviews[i].Review = review.Review
	} else {
		b.Reviews = append(b.Reviews, review)
	}
	return b.clone(), nil
}

func (r *MemoryRepo) DeleteReview(ctx context.Context, isbn, username string) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byISBN[isbn]
	if !ok {
		return Book{}, ErrNotFound
	}
	i := reviewIndex(b.Reviews, username)
	if i < 0 {
		return Book{}, ErrReviewNotFound
	}
	b.Reviews = append(b.Reviews[:i], b.Reviews[i+1:]...)
	return b.clone(), nil
}

func (r *MemoryRepo) filter(match func(*Book) bool) []Book {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Book, 0, len(r.books))
	for _, b := range r.books {
		if match(b) {
			out = append(out, b.clone())
		}
	}
	return out
}

func reviewIndex(reviews []Review, username string) int {
	for i, rv := range reviews {
		if rv.Username == username {
			return i
		}
	}
	return -1
}
