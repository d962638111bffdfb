package user

import (
	"log/slog"
	"time"

	"github.com/violintec/common-login/internal"
)

// Service handles user directory business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetUsername(empID string) (string, error) {
	return s.repo.GetUsername(empID)
}

func (s *Service) GetFullName(empID string) (*FullName, error) {
	return s.repo.GetFullName(empID)
}

func (s *Service) GetDepartment(empID string) (*string, error) {
	return s.repo.GetDepartment(empID)
}

func (s *Service) GetLeftDate(empID string) (*time.Time, error) {
	return s.repo.GetLeftDate(empID)
}

func (s *Service) GetUser(empID string) (*User, error) {
	return s.repo.GetByEmployeeID(empID)
}

func (s *Service) ListUsers() ([]*User, error) {
	return s.repo.List()
}

// UpdateUser applies a partial update. A payload that carries no
// updatable field is rejected rather than treated as a silent no-op.
func (s *Service) UpdateUser(empID string, dto UpdateUserDTO) error {
	columns, err := dto.Columns()
	if err != nil {
		return err
	}
	if len(columns) == 0 {
		s.logger.Warn("update user: no updatable fields supplied", "employee_id", empID)
		return internal.NewValidationError("no updatable fields supplied", internal.ErrCodeEmptyFieldset)
	}

	if err := s.repo.Update(empID, columns); err != nil {
		s.logger.Error("update user failed", "error", err, "employee_id", empID)
		return err
	}

	s.logger.Info("user updated", "employee_id", empID, "fields", len(columns))
	return nil
}

// ReconcileLifecycle deactivates every active user whose left date has
// passed. Per-row failures are logged and skipped so one bad row does
// not abort the scan. Returns the number of users deactivated.
func (s *Service) ReconcileLifecycle() (int, error) {
	users, err := s.repo.ListPendingDeparture()
	if err != nil {
		s.logger.Error("lifecycle reconciliation: scan failed", "error", err)
		return 0, err
	}

	today := time.Now()
	updated := 0
	for _, u := range users {
		if !u.ActiveStatus || !u.HasLeft(today) {
			continue
		}
		if err := s.repo.Deactivate(u.EmployeeID); err != nil {
			s.logger.Error("lifecycle reconciliation: deactivate failed",
				"error", err, "employee_id", u.EmployeeID)
			continue
		}
		updated++
	}

	s.logger.Info("lifecycle reconciliation finished", "deactivated", updated)
	return updated, nil
}
