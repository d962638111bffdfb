package auth

import (
	"log/slog"
	"strings"
	"time"

	"github.com/violintec/common-login/internal"
	"github.com/violintec/common-login/internal/access"
	"github.com/violintec/common-login/internal/user"
)

// Service resolves login identities and provisions new accounts.
type Service struct {
	users          UserRepository
	units          UnitLister
	grants         GrantLister
	seeder         AccessSeeder
	tokenGenerator *JWTTokenGenerator
	logger         *slog.Logger
}

func NewService(users UserRepository, units UnitLister, grants GrantLister,
	seeder AccessSeeder, tokenGen *JWTTokenGenerator, logger *slog.Logger) *Service {
	return &Service{
		users:          users,
		units:          units,
		grants:         grants,
		seeder:         seeder,
		tokenGenerator: tokenGen,
		logger:         logger,
	}
}

// Login walks a single attempt through its terminal states: malformed
// request, invalid credentials, inactive account, shared email, or
// success with the aggregated profile.
func (s *Service) Login(dto LoginDTO) (*LoginResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	identifier := strings.TrimSpace(dto.Identifier)
	isEmail := strings.Contains(identifier, "@")

	if isEmail && !IsCorporateEmail(identifier) {
		return nil, internal.NewValidationError("email must be in @violintec.com domain", internal.ErrCodeInvalidEmail)
	}

	var (
		u   *user.User
		err error
	)
	if isEmail {
		u, err = s.users.GetByEmail(identifier)
	} else {
		u, err = s.users.GetByEmployeeID(identifier)
	}
	if err != nil {
		if appErr, ok := internal.IsAppError(err); ok && appErr.Type == internal.ErrorTypeNotFound {
			return nil, internal.ErrInvalidCredentials
		}
		s.logger.Error("login: user resolution failed", "error", err)
		return nil, err
	}

	if !u.ActiveStatus {
		return nil, internal.ErrUserInactive
	}

	if u.HasLeft(time.Now()) {
		// flip the row now rather than waiting for the next
		// reconciliation sweep; losing the write does not change
		// the decision
		if err := s.users.Deactivate(u.EmployeeID); err != nil {
			s.logger.Error("login: lazy deactivation failed",
				"error", err, "employee_id", u.EmployeeID)
		}
		return nil, internal.ErrUserInactive
	}

	if isEmail {
		count, err := s.users.CountByEmail(identifier)
		if err != nil {
			s.logger.Error("login: shared email check failed", "error", err)
			return nil, err
		}
		if count > 1 {
			return &LoginResult{
				Status:  StatusSharedEmail,
				Message: "Multiple accounts detected with this email. Please use your Employee ID to login instead.",
			}, nil
		}
	}

	if HashPassword(dto.Password) != u.PasswordHash {
		return nil, internal.ErrInvalidCredentials
	}

	profile, err := s.buildProfile(u)
	if err != nil {
		return nil, err
	}

	token, err := s.tokenGenerator.GenerateToken(u.EmployeeID, u.Email)
	if err != nil {
		s.logger.Error("login: token generation failed", "error", err, "employee_id", u.EmployeeID)
		return nil, internal.NewInternalError("failed to issue session token", err)
	}

	s.logger.Info("login successful", "employee_id", u.EmployeeID)
	return &LoginResult{
		Status:  StatusSuccess,
		Message: "Login successful",
		Data:    profile,
		Token:   token,
	}, nil
}

func (s *Service) buildProfile(u *user.User) (*Profile, error) {
	units, err := s.units.ListUnits(u.EmployeeID)
	if err != nil {
		if appErr, ok := internal.IsAppError(err); ok && appErr.Type == internal.ErrorTypeNotFound {
			units = []string{}
		} else {
			s.logger.Error("login: unit aggregation failed", "error", err, "employee_id", u.EmployeeID)
			return nil, err
		}
	}

	grants, err := s.grants.ListAllGrants(u.EmployeeID)
	if err != nil {
		s.logger.Error("login: grant aggregation failed", "error", err, "employee_id", u.EmployeeID)
		return nil, err
	}
	if grants == nil {
		grants = []access.Grant{}
	}

	return &Profile{
		EmployeeID: u.EmployeeID,
		Title:      u.Title,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Department: u.Department,
		Units:      units,
		Access:     grants,
	}, nil
}

// Signup provisions a fresh account. Duplicate employee IDs and emails
// are rejected by explicit pre-checks rather than by poking at the
// store's duplicate-entry error text.
func (s *Service) Signup(dto SignupDTO) error {
	if err := dto.Validate(); err != nil {
		return internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	empID := strings.TrimSpace(dto.EmpID)
	email := strings.TrimSpace(dto.Email)

	exists, err := s.users.ExistsByEmployeeID(empID)
	if err != nil {
		s.logger.Error("signup: employee id check failed", "error", err)
		return err
	}
	if exists {
		return internal.ErrEmployeeIDExists
	}

	exists, err = s.users.ExistsByEmail(email)
	if err != nil {
		s.logger.Error("signup: email check failed", "error", err)
		return err
	}
	if exists {
		return internal.ErrEmailExists
	}

	now := time.Now()
	newUser := &user.User{
		EmployeeID:   empID,
		Username:     "emp_" + empID,
		Title:        strings.TrimSpace(dto.Title),
		FirstName:    strings.TrimSpace(dto.FirstName),
		LastName:     strings.TrimSpace(dto.LastName),
		Email:        email,
		PasswordHash: HashPassword(dto.Password),
		Department:   "General",
		ActiveStatus: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(newUser); err != nil {
		s.logger.Error("signup: insert failed", "error", err, "employee_id", empID)
		return err
	}

	// initial access records are best effort: a failed item is logged
	// and skipped, the account itself stands
	for _, item := range dto.Access {
		if item.ProjectCode == "" || item.AuthType == "" {
			continue
		}
		if err := s.seeder.SeedAccess(empID, item.ProjectCode, item.AuthType); err != nil {
			s.logger.Error("signup: access seeding failed",
				"error", err, "employee_id", empID, "project_code", item.ProjectCode)
		}
	}

	s.logger.Info("account created", "employee_id", empID)
	return nil
}

// ValidateToken checks a session token issued at login.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}
