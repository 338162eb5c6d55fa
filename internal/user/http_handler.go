package user

import (
	"errors"
	"net/http"

	"bookcatalog/internal/httpx"

	"github.com/rs/zerolog"
)

const (
	msgCredentialsRequired = "Username and password are required"
	msgUsernameTaken       = "Username is already taken"
	msgInvalidCredentials  = "Invalid username or password"
	msgInvalidBody         = "Invalid request body"
	msgInternalError       = "Internal server error"
)

type HTTPHandler struct {
	service *Service
	log     zerolog.Logger
}

func NewHTTPHandler(service *Service, log zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

type credentialsReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterUser handles POST /register
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body credentialsReq true "Registration request"
// @Success 201 {object} httpx.MessageResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /register [post]
func (h *HTTPHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	newUser, err := h.service.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	httpx.JSONCreated(w, httpx.MessageResponse{
		"message": "User registered successfully",
		"user":    newUser,
	})
}

// LoginUser handles POST /login
// @Summary Log in
// @Tags users
// @Accept json
// @Produce json
// @Param request body credentialsReq true "Login credentials"
// @Success 200 {object} httpx.MessageResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /login [post]
func (h *HTTPHandler) LoginUser(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	u, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	httpx.JSONOK(w, httpx.MessageResponse{
		"message": "Login successful",
		"user":    u,
	})
}

// RegisterRoutes mounts the account endpoints on mux.
func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /register", h.RegisterUser)
	mux.HandleFunc("POST /login", h.LoginUser)
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (credentialsReq, bool) {
	var req credentialsReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONDecodeError(w, err, msgInvalidBody)
		return req, false
	}
	if len(httpx.ValidateStruct(req)) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, msgCredentialsRequired)
		return req, false
	}
	return req, true
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		httpx.JSONError(w, http.StatusBadRequest, msgCredentialsRequired)
	case errors.Is(err, ErrAlreadyExists):
		httpx.JSONError(w, http.StatusConflict, msgUsernameTaken)
	case errors.Is(err, ErrInvalidCredentials):
		httpx.JSONError(w, http.StatusUnauthorized, msgInvalidCredentials)
	default:
		h.log.Error().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg("request failed")
		httpx.JSONError(w, http.StatusInternalServerError, msgInternalError)
	}
}
