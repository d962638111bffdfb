package project

import (
	"log/slog"
	"net/http"

	"github.com/violintec/common-login/internal/transport"
	"github.com/violintec/common-login/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Repo Repository
}

func NewHandler(repo Repository) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Repo:        repo,
	}
}

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Repo.List()
	if err != nil {
		h.Logger.Error("ListProjects: repository error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"projects": projects,
	})
}
