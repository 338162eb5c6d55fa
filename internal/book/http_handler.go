package book

import (
	"errors"
	"net/http"

	"bookcatalog/internal/httpx"

	"github.com/rs/zerolog"
)

const (
	msgNoTitleMatch   = "No books found with the specified title"
	msgNoAuthorMatch  = "No books found by the specified author"
	msgNoISBNMatch    = "No books found with the specified ISBN"
	msgUnknownISBN    = "No book found with the specified ISBN"
	msgNoUserReview   = "No review found for the specified user"
	msgReviewRequired = "Username and review are required"
	msgInvalidBody    = "Invalid request body"
	msgInternalError  = "Internal server error"
	msgReviewSaved    = "Review added or modified successfully"
	msgReviewDeleted  = "Review deleted successfully"
)

type HTTPHandler struct {
	service *Service
	log     zerolog.Logger
}

func NewHTTPHandler(service *Service, log zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

// List handles GET /books
// @Summary List books
// @Description Get all books with their reviews
// @Tags books
// @Produce json
// @Success 200 {array} Book
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	httpx.JSONOK(w, books)
}

// ListAsync handles GET /books/async
// @Summary List books (delayed)
// @Description Same as GET /books, answered after a fixed delay
// @Tags books
// @Produce json
// @Success 200 {array} Book
// @Failure 500 {object} httpx.ErrorResponse
// @Router /books/async [get]
func (h *HTTPHandler) ListAsync(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ListDelayed(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	httpx.JSONOK(w, books)
}

// FindByTitle handles GET /books/title/{title}
// @Summary Search books by title
// @Description Case-insensitive substring match on the title
// @Tags books
// @Produce json
// @Param title path string true "Title fragment"
// @Success 200 {array} Book
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/title/{title} [get]
func (h *HTTPHandler) FindByTitle(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.FindByTitle(r.Context(), r.PathValue("title"))
	if err != nil {
		h.writeError(w, r, err, msgNoTitleMatch)
		return
	}
	httpx.JSONOK(w, books)
}

// FindByAuthor handles GET /books/author/{author}
// @Summary Search books by author
// @Description Case-insensitive exact match on the author name
// @Tags books
// @Produce json
// @Param author path string true "Author name"
// @Success 200 {array} Book
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/author/{author} [get]
func (h *HTTPHandler) FindByAuthor(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.FindByAuthor(r.Context(), r.PathValue("author"))
	if err != nil {
		h.writeError(w, r, err, msgNoAuthorMatch)
		return
	}
	httpx.JSONOK(w, books)
}

// FindByISBN handles GET /books/{isbn}
// @Summary Get books by ISBN
// @Tags books
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {array} Book
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{isbn} [get]
func (h *HTTPHandler) FindByISBN(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.FindByISBN(r.Context(), r.PathValue("isbn"))
	if err != nil {
		h.writeError(w, r, err, msgNoISBNMatch)
		return
	}
	httpx.JSONOK(w, books)
}

// Reviews handles GET /books/review/{isbn}
// @Summary List reviews of a book
// @Tags reviews
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Success 200 {array} Review
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/review/{isbn} [get]
func (h *HTTPHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.Reviews(r.Context(), r.PathValue("isbn"))
	if err != nil {
		h.writeError(w, r, err, msgUnknownISBN)
		return
	}
	httpx.JSONOK(w, reviews)
}

type reviewReq struct {
	Username string `json:"username" validate:"required"`
	Review   string `json:"review" validate:"required"`
}

// UpsertReview handles POST /books/review/{isbn}
// @Summary Add or modify a review
// @Description Replaces the user's existing review of the book, or adds one
// @Tags reviews
// @Accept json
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Param request body reviewReq true "Review"
// @Success 200 {object} httpx.MessageResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/review/{isbn} [post]
func (h *HTTPHandler) UpsertReview(w http.ResponseWriter, r *http.Request) {
	var req reviewReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONDecodeError(w, err, msgInvalidBody)
		return
	}
	if len(httpx.ValidateStruct(req)) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, msgReviewRequired)
		return
	}

	b, err := h.service.UpsertReview(r.Context(), r.PathValue("isbn"), req.Username, req.Review)
	if err != nil {
		h.writeError(w, r, err, msgUnknownISBN)
		return
	}
	httpx.JSONOK(w, httpx.MessageResponse{"message": msgReviewSaved, "book": b})
}

// DeleteReview handles DELETE /books/review/{isbn}/{username}
// @Summary Delete a review
// @Tags reviews
// @Produce json
// @Param isbn path string true "Book ISBN"
// @Param username path string true "Review author"
// @Success 200 {object} httpx.MessageResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/review/{isbn}/{username} [delete]
func (h *HTTPHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.DeleteReview(r.Context(), r.PathValue("isbn"), r.PathValue("username"))
	if err != nil {
		h.writeError(w, r, err, msgUnknownISBN)
		return
	}
	httpx.JSONOK(w, httpx.MessageResponse{"message": msgReviewDeleted, "book": b})
}

// writeError maps service errors to responses. notFound is the message used
// for ErrNotFound, which differs per route.
func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, notFound)
	case errors.Is(err, ErrReviewNotFound):
		httpx.JSONError(w, http.StatusNotFound, msgNoUserReview)
	case errors.Is(err, ErrValidation):
		httpx.JSONError(w, http.StatusBadRequest, msgReviewRequired)
	default:
		h.internalError(w, r, err)
	}
}

func (h *HTTPHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg("request failed")
	httpx.JSONError(w, http.StatusInternalServerError, msgInternalError)
}

// RegisterRoutes mounts the book and review endpoints on mux.
func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("GET /books/async", h.ListAsync)
	mux.HandleFunc("GET /books/title/{title}", h.FindByTitle)
	mux.HandleFunc("GET /books/author/{author}", h.FindByAuthor)
	mux.HandleFunc("GET /books/review/{isbn}", h.Reviews)
	mux.HandleFunc("POST /books/review/{isbn}", h.UpsertReview)
	mux.HandleFunc("DELETE /books/review/{isbn}/{username}", h.DeleteReview)
	mux.HandleFunc("GET /books/{isbn}", h.FindByISBN)
}
