package book

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// DefaultAsyncDelay is how long ListDelayed waits before reading the catalog.
const DefaultAsyncDelay = time.Second

type Service struct {
	repo       Repository
	asyncDelay time.Duration
	log        zerolog.Logger
}

func NewService(repo Repository, asyncDelay time.Duration, log zerolog.Logger) *Service {
	if asyncDelay < 0 {
		asyncDelay = DefaultAsyncDelay
	}
	return &Service{
		repo:       repo,
		asyncDelay: asyncDelay,
		log:        log.With().Str("component", "book").Logger(),
	}
}

func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

// FindByTitle returns ErrNotFound when no title contains the query.
func (s *Service) FindByTitle(ctx context.Context, title string) ([]Book, error) {
	return nonEmpty(s.repo.FindByTitle(ctx, title))
}

// FindByAuthor returns ErrNotFound when no author matches exactly.
func (s *Service) FindByAuthor(ctx context.Context, author string) ([]Book, error) {
	return nonEmpty(s.repo.FindByAuthor(ctx, author))
}

func (s *Service) FindByISBN(ctx context.Context, isbn string) ([]Book, error) {
	return nonEmpty(s.repo.FindByISBN(ctx, isbn))
}

// Reviews returns the reviews of the book with the given ISBN. A known book
// without reviews yields an empty, non-nil slice.
func (s *Service) Reviews(ctx context.Context, isbn string) ([]Review, error) {
	b, err := s.repo.GetByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}
	if b.Reviews == nil {
		return []Review{}, nil
	}
	return b.Reviews, nil
}

func (s *Service) UpsertReview(ctx context.Context, isbn, username, text string) (Book, error) {
	if username == "" || text == "" {
		return Book{}, ErrValidation
	}
	b, err := s.repo.UpsertReview(ctx, isbn, Review{Username: username, Review: text})
	if err != nil {
		return Book{}, err
	}
	s.log.Debug().Str("isbn", isbn).Str("username", username).Msg("review saved")
	return b, nil
}

func (s *Service) DeleteReview(ctx context.Context, isbn, username string) (Book, error) {
	b, err := s.repo.DeleteReview(ctx, isbn, username)
	if err != nil {
		return Book{}, err
	}
	s.log.Debug().Str("isbn", isbn).Str("username", username).Msg("review deleted")
	return b, nil
}

type listResult struct {
	books []Book
	err   error
}

// ListDelayed lists the catalog from a background task that only starts
// reading after the configured delay. Cancelling ctx abandons the wait.
func (s *Service) ListDelayed(ctx context.Context) ([]Book, error) {
	done := make(chan listResult, 1)

	go func() {
		timer := time.NewTimer(s.asyncDelay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			done <- listResult{err: ctx.Err()}
			return
		case <-timer.C:
		}

		books, err := s.repo.List(ctx)
		done <- listResult{books: books, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("delayed list: %w", res.err)
		}
		return res.books, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("delayed list: %w", ctx.Err())
	}
}

func nonEmpty(books []Book, err error) ([]Book, error) {
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, ErrNotFound
	}
	return books, nil
}
