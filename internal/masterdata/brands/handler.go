package brands

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/botica-real/botica/internal/platform/httpx"
)

type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	brands, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list brands failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if brands == nil {
		brands = []Brand{}
	}
	httpx.JSON(w, http.StatusOK, brands)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBrandRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create brand failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}
