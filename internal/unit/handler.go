package unit

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/violintec/common-login/internal/transport"
	"github.com/violintec/common-login/pkg/logger"
)

type ServiceAPI interface {
	ListUnits(empID string) ([]string, error)
	AddUnits(empID string, codes []string) error
	RemoveUnits(empID string, codes []string) error
	GetDescription(unitCode string) (string, error)
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

type unitsDTO struct {
	Units []string `json:"units"`
}

func (h *Handler) ListUnits(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "empID")

	units, err := h.Service.ListUnits(empID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"emp_id": empID,
		"units":  units,
	})
}

func (h *Handler) AddUnits(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "empID")

	var dto unitsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil || dto.Units == nil {
		h.WriteError(w, http.StatusBadRequest, "units list is required")
		return
	}

	if err := h.Service.AddUnits(empID, dto.Units); err != nil {
		h.Logger.Error("AddUnits: service error", "error", err, "emp_id", empID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Units added successfully"})
}

func (h *Handler) RemoveUnits(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "empID")

	var dto unitsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil || dto.Units == nil {
		h.WriteError(w, http.StatusBadRequest, "units list is required")
		return
	}

	if err := h.Service.RemoveUnits(empID, dto.Units); err != nil {
		h.Logger.Error("RemoveUnits: service error", "error", err, "emp_id", empID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Units removed successfully"})
}

func (h *Handler) GetDescription(w http.ResponseWriter, r *http.Request) {
	unitCode := chi.URLParam(r, "unitCode")

	description, err := h.Service.GetDescription(unitCode)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{
		"unit_code":   unitCode,
		"description": description,
	})
}
