package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/botica-real/botica/internal/platform/httpx"
)

// Handler wires HTTP endpoints for the token flows.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance. A nil logger discards output.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
	}
}

// MountRoutes registers auth routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/token", h.issueToken)
	r.Get("/verify_token/{token}", h.verifyToken)
}

type credentialsForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// TokenResponse is the body returned by POST /auth/token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// VerifyResponse is the body returned by GET /auth/verify_token/{token}.
type VerifyResponse struct {
	Valid    bool   `json:"valid"`
	Username string `json:"username"`
}

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed form body")
		return
	}

	form := credentialsForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	if err := h.validator.Struct(form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "username and password are required")
		return
	}

	token, err := h.service.IssueToken(r.Context(), form.Username, form.Password)
	if err != nil {
		h.logger.Warn("token issue refused", slog.String("username", form.Username))
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *Handler) verifyToken(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "token")
	user, err := h.service.VerifyToken(r.Context(), raw)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, VerifyResponse{Valid: true, Username: user.Username})
}
