package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/violintec/common-login/internal"
	"github.com/violintec/common-login/internal/transport"
	"github.com/violintec/common-login/pkg/logger"
)

type ServiceAPI interface {
	Login(dto LoginDTO) (*LoginResult, error)
	Signup(dto SignupDTO) error
	ValidateToken(tokenString string) (*Claims, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Service.Login(dto)
	if err != nil {
		h.Logger.Warn("login failed", "error", err)
		h.writeLoginError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}

// writeLoginError keeps the status labels the login clients already
// depend on: inactive accounts report status "inactive", everything
// else reports "error".
func (h *Handler) writeLoginError(w http.ResponseWriter, err error) {
	appErr, ok := internal.IsAppError(err)
	if !ok {
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	status := "error"
	if appErr.Code == internal.ErrCodeUserInactive {
		status = "inactive"
	}

	h.WriteJSON(w, appErr.StatusCode, map[string]string{
		"status":  status,
		"message": appErr.Message,
	})
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var dto SignupDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.Signup(dto); err != nil {
		h.Logger.Warn("signup failed", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Account created successfully",
	})
}
