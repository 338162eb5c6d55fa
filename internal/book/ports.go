package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository_test.go -package=book

// Repository defines the contract for book storage.
type Repository interface {
	List(ctx context.Context) ([]Book, error)
	FindByTitle(ctx context.Context, title string) ([]Book, error)
	FindByAuthor(ctx context.Context, author string) ([]Book, error)
	FindByISBN(ctx context.Context, isbn string) ([]Book, error)
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	UpsertReview(ctx context.Context, isbn string, review Review) (Book, error)
	DeleteReview(ctx context.Context, isbn, username string) (Book, error)
}
