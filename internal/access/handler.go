package access

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/violintec/common-login/internal/transport"
	"github.com/violintec/common-login/pkg/logger"
)

type ServiceAPI interface {
	ListGrants(empID, project string) ([]Grant, error)
	IsAllowed(empID, project string) (bool, error)
	Grant(empID, project, authType string) error
	GetAccess(employeeID, projectCode string) (*Record, error)
	SetAccess(employeeID, projectCode, authType string) (bool, error)
	Revoke(employeeID, projectCode string) error
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

func (h *Handler) ListGrants(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "empID")
	project := chi.URLParam(r, "project")

	grants, err := h.Service.ListGrants(empID, project)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"emp_id":   empID,
		"project":  project,
		"accesses": grants,
	})
}

func (h *Handler) IsAllowed(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "empID")
	project := chi.URLParam(r, "project")

	allowed, err := h.Service.IsAllowed(empID, project)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"emp_id":  empID,
		"project": project,
		"allowed": allowed,
	})
}

type grantDTO struct {
	EmpID    string `json:"emp_id"`
	Project  string `json:"project"`
	AuthType string `json:"auth_type"`
}

func (h *Handler) Grant(w http.ResponseWriter, r *http.Request) {
	var dto grantDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if dto.EmpID == "" || dto.Project == "" || dto.AuthType == "" {
		h.WriteError(w, http.StatusBadRequest, "employee ID, project, and auth type are required")
		return
	}

	if err := h.Service.Grant(dto.EmpID, dto.Project, dto.AuthType); err != nil {
		h.Logger.Error("Grant: service error", "error", err, "emp_id", dto.EmpID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Project access granted successfully"})
}

func (h *Handler) GetAccess(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	projectCode := chi.URLParam(r, "projectCode")

	record, err := h.Service.GetAccess(employeeID, projectCode)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"access": record,
	})
}

type setAccessDTO struct {
	EmployeeID  string `json:"employee_id"`
	ProjectCode string `json:"project_code"`
	AuthType    string `json:"auth_type"`
}

func (h *Handler) SetAccess(w http.ResponseWriter, r *http.Request) {
	var dto setAccessDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if dto.EmployeeID == "" || dto.ProjectCode == "" || dto.AuthType == "" {
		h.WriteError(w, http.StatusBadRequest, "employee ID, project code, and auth type are required")
		return
	}

	created, err := h.Service.SetAccess(dto.EmployeeID, dto.ProjectCode, dto.AuthType)
	if err != nil {
		h.Logger.Error("SetAccess: service error", "error", err, "employee_id", dto.EmployeeID)
		h.HandleServiceError(w, err)
		return
	}

	message := "Access updated successfully to " + dto.AuthType
	if created {
		message = "Access created successfully as " + dto.AuthType
	}
	h.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": message,
	})
}

func (h *Handler) Revoke(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	projectCode := chi.URLParam(r, "projectCode")

	if err := h.Service.Revoke(employeeID, projectCode); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Access removed successfully",
	})
}
