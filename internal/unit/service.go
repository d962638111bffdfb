package unit

import (
	"log/slog"
)

// Service handles unit membership and unit catalog business logic.
type Service struct {
	memberships MembershipRepository
	catalog     CatalogRepository
	logger      *slog.Logger
}

func NewService(memberships MembershipRepository, catalog CatalogRepository, logger *slog.Logger) *Service {
	return &Service{
		memberships: memberships,
		catalog:     catalog,
		logger:      logger,
	}
}

// ListUnits returns the employee's unit codes in stored order.
func (s *Service) ListUnits(empID string) ([]string, error) {
	stored, err := s.memberships.GetUnits(empID)
	if err != nil {
		return nil, err
	}
	return SplitCodes(stored), nil
}

// AddUnits unions the requested codes into the employee's membership.
// Requesting codes that are already members is not an error.
func (s *Service) AddUnits(empID string, codes []string) error {
	if err := s.memberships.AddUnits(empID, codes); err != nil {
		s.logger.Error("add units failed", "error", err, "emp_id", empID)
		return err
	}

	s.logger.Info("units added", "emp_id", empID, "codes", codes)
	return nil
}

// RemoveUnits drops the requested codes from the employee's membership.
// Codes the employee does not hold are silently ignored, and an employee
// with no membership row is a trivial success.
func (s *Service) RemoveUnits(empID string, codes []string) error {
	if err := s.memberships.RemoveUnits(empID, codes); err != nil {
		s.logger.Error("remove units failed", "error", err, "emp_id", empID)
		return err
	}

	s.logger.Info("units removed", "emp_id", empID, "codes", codes)
	return nil
}

// GetDescription resolves a unit code through the catalog.
func (s *Service) GetDescription(unitCode string) (string, error) {
	return s.catalog.GetDescription(unitCode)
}
