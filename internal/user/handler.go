package user

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/violintec/common-login/internal/transport"
	"github.com/violintec/common-login/pkg/logger"
)

type ServiceAPI interface {
	GetUsername(empID string) (string, error)
	GetFullName(empID string) (*FullName, error)
	GetDepartment(empID string) (*string, error)
	GetLeftDate(empID string) (*time.Time, error)
	GetUser(empID string) (*User, error)
	ListUsers() ([]*User, error)
	UpdateUser(empID string, dto UpdateUserDTO) error
	ReconcileLifecycle() (int, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) GetUsername(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "id")

	username, err := h.Service.GetUsername(empID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"username": username})
}

func (h *Handler) GetFullName(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "id")

	fullName, err := h.Service.GetFullName(empID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, fullName)
}

func (h *Handler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "id")

	department, err := h.Service.GetDepartment(empID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]*string{"department": department})
}

func (h *Handler) GetLeftDate(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "id")

	leftDate, err := h.Service.GetLeftDate(empID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	resp := map[string]*string{"left_date": nil}
	if leftDate != nil {
		formatted := leftDate.Format("2006-01-02")
		resp["left_date"] = &formatted
	}
	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "id")

	u, err := h.Service.GetUser(empID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.ListUsers()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, users)
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "id")

	var dto UpdateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateUser: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.UpdateUser(empID, dto); err != nil {
		h.Logger.Error("UpdateUser: service error", "error", err, "employee_id", empID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "User updated successfully"})
}

func (h *Handler) ReconcileLifecycle(w http.ResponseWriter, r *http.Request) {
	updated, err := h.Service.ReconcileLifecycle()
	if err != nil {
		h.Logger.Error("ReconcileLifecycle: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "User status updated successfully",
		"deactivated": updated,
	})
}
