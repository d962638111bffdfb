package access

import (
	"log/slog"

	"github.com/violintec/common-login/internal"
)

// ProjectNamer resolves a project code to its display name.
type ProjectNamer interface {
	GetName(projectCode string) (string, error)
}

// Service handles access grant business logic over both grant tables.
type Service struct {
	repo     Repository
	projects ProjectNamer
	logger   *slog.Logger
}

func NewService(repo Repository, projects ProjectNamer, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		projects: projects,
		logger:   logger,
	}
}

func (s *Service) ListGrants(empID, project string) ([]Grant, error) {
	return s.repo.ListGrants(empID, project)
}

func (s *Service) ListAllGrants(empID string) ([]Grant, error) {
	return s.repo.ListAllGrants(empID)
}

// IsAllowed reports whether at least one grant exists for the pair,
// regardless of auth type.
func (s *Service) IsAllowed(empID, project string) (bool, error) {
	count, err := s.repo.CountGrants(empID, project)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Grant upserts on the full (employee, project, auth type) triple:
// granting the same triple twice leaves one row, granting a different
// auth type adds a second row next to the first.
func (s *Service) Grant(empID, project, authType string) error {
	if err := s.repo.UpsertGrant(empID, project, authType); err != nil {
		s.logger.Error("grant failed", "error", err,
			"emp_id", empID, "project", project, "auth_type", authType)
		return err
	}

	s.logger.Info("project access granted",
		"emp_id", empID, "project", project, "auth_type", authType)
	return nil
}

// GetAccess fetches the pair-keyed authentication record, enriched with
// the project name when the catalog knows the code.
func (s *Service) GetAccess(employeeID, projectCode string) (*Record, error) {
	record, err := s.repo.GetRecord(employeeID, projectCode)
	if err != nil {
		return nil, err
	}

	if name, err := s.projects.GetName(projectCode); err == nil {
		record.ProjectName = name
	}
	return record, nil
}

// SetAccess overwrites the auth type for the pair, inserting an active
// record when none exists. Returns whether a record was created.
func (s *Service) SetAccess(employeeID, projectCode, authType string) (bool, error) {
	created, err := s.repo.SetRecord(employeeID, projectCode, authType)
	if err != nil {
		s.logger.Error("set access failed", "error", err,
			"employee_id", employeeID, "project_code", projectCode)
		return false, err
	}

	s.logger.Info("access record written",
		"employee_id", employeeID, "project_code", projectCode,
		"auth_type", authType, "created", created)
	return created, nil
}

// SeedAccess inserts an active authentication record without the
// pair-overwrite semantics; used when provisioning a fresh account.
func (s *Service) SeedAccess(employeeID, projectCode, authType string) error {
	return s.repo.CreateRecord(employeeID, projectCode, authType, true)
}

// Revoke deletes the pair-keyed record and reports not-found when no
// row matched.
func (s *Service) Revoke(employeeID, projectCode string) error {
	found, err := s.repo.DeleteRecord(employeeID, projectCode)
	if err != nil {
		s.logger.Error("revoke failed", "error", err,
			"employee_id", employeeID, "project_code", projectCode)
		return err
	}
	if !found {
		return internal.ErrAccessNotFound
	}

	s.logger.Info("access revoked", "employee_id", employeeID, "project_code", projectCode)
	return nil
}
