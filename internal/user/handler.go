package user

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abgdnv/monapi/pkg/web"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service UserService
	logger  *slog.Logger
}

func NewHandler(service UserService, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With("component", "users"),
	}
}

// RegisterRoutes registers the user routes on a router mounted at the users prefix.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.Register)
	r.Get("/{email}", h.FindByEmail)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto UserCreateDto
	if err := web.DecodeJSON(r.Body, &dto); err != nil {
		h.respondFailure(w, r, fmt.Errorf("%w: %v", ErrMalformedBody, err))
		return
	}

	created, err := h.service.Register(r.Context(), dto)
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	h.logger.InfoContext(r.Context(), "User registered", "ID", created.ID, "role", created.Role)
	web.RespondSuccess(w, h.logger, http.StatusCreated, "user created", created)
}

func (h *Handler) FindByEmail(w http.ResponseWriter, r *http.Request) {
	found, err := h.service.FindByEmail(r.Context(), r.PathValue("email"))
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	web.RespondSuccess(w, h.logger, http.StatusOK, "user found", found)
}

func (h *Handler) respondFailure(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		h.logger.WarnContext(r.Context(), "User not found", "error", err)
		web.RespondError(w, h.logger, http.StatusNotFound, ErrUserNotFound.Error())
	case errors.Is(err, ErrInvalidUser):
		h.logger.WarnContext(r.Context(), "Validation errors occurred", "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidUser.Error())
	case errors.Is(err, ErrMalformedBody):
		h.logger.WarnContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, ErrMalformedBody.Error())
	case errors.Is(err, ErrUserAlreadyExists):
		h.logger.WarnContext(r.Context(), "Duplicate registration", "error", err)
		web.RespondError(w, h.logger, http.StatusConflict, ErrUserAlreadyExists.Error())
	case errors.Is(err, ErrUnavailable):
		h.logger.ErrorContext(r.Context(), "User store unavailable", "error", err)
		web.RespondError(w, h.logger, http.StatusServiceUnavailable, ErrUnavailable.Error())
	default:
		h.logger.ErrorContext(r.Context(), "User operation failed", "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
