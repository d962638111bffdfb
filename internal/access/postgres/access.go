package postgres

import (
	"time"

	"github.com/violintec/common-login/internal"
	"github.com/violintec/common-login/internal/access"
	"gorm.io/gorm"
)

// AccessRepository implements the access.Repository interface using GORM
type AccessRepository struct {
	db *gorm.DB
}

func NewAccessRepository(db *gorm.DB) access.Repository {
	return &AccessRepository{db: db}
}

func (r *AccessRepository) ListGrants(empID, project string) ([]access.Grant, error) {
	var grants []access.Grant
	err := r.db.Where("emp_id = ? AND project = ?", empID, project).Find(&grants).Error
	if err != nil {
		return nil, internal.NewUnavailableError("grant listing failed", err)
	}
	return grants, nil
}

func (r *AccessRepository) ListAllGrants(empID string) ([]access.Grant, error) {
	var grants []access.Grant
	err := r.db.Where("emp_id = ?", empID).Find(&grants).Error
	if err != nil {
		return nil, internal.NewUnavailableError("grant listing failed", err)
	}
	return grants, nil
}

func (r *AccessRepository) CountGrants(empID, project string) (int64, error) {
	var count int64
	err := r.db.Model(&access.Grant{}).
		Where("emp_id = ? AND project = ?", empID, project).
		Count(&count).Error
	if err != nil {
		return 0, internal.NewUnavailableError("grant count failed", err)
	}
	return count, nil
}

// UpsertGrant is keyed on the full triple: an existing row is rewritten
// in place (a no-op), a missing one is inserted. Distinct auth types
// for the same pair therefore accumulate.
func (r *AccessRepository) UpsertGrant(empID, project, authType string) error {
	var existing access.Grant
	err := r.db.Where("emp_id = ? AND project = ? AND auth_type = ?", empID, project, authType).
		First(&existing).Error

	if err == nil {
		res := r.db.Model(&access.Grant{}).
			Where("emp_id = ? AND project = ? AND auth_type = ?", empID, project, authType).
			Update("auth_type", authType)
		if res.Error != nil {
			return internal.NewUnavailableError("grant update failed", res.Error)
		}
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return internal.NewUnavailableError("grant lookup failed", err)
	}

	grant := access.Grant{EmpID: empID, Project: project, AuthType: authType}
	if err := r.db.Create(&grant).Error; err != nil {
		return internal.NewUnavailableError("grant insert failed", err)
	}
	return nil
}

func (r *AccessRepository) GetRecord(employeeID, projectCode string) (*access.Record, error) {
	var record access.Record
	err := r.db.Where("employee_id = ? AND project_code = ?", employeeID, projectCode).
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrAccessNotFound
		}
		return nil, internal.NewUnavailableError("access lookup failed", err)
	}
	return &record, nil
}

// SetRecord is keyed on the (employee, project) pair: any existing row
// gets its auth type overwritten, otherwise a fresh active record is
// inserted.
func (r *AccessRepository) SetRecord(employeeID, projectCode, authType string) (bool, error) {
	var existing access.Record
	err := r.db.Where("employee_id = ? AND project_code = ?", employeeID, projectCode).
		First(&existing).Error

	if err == nil {
		res := r.db.Model(&access.Record{}).
			Where("employee_id = ? AND project_code = ?", employeeID, projectCode).
			Updates(map[string]interface{}{
				"auth_type":  authType,
				"created_at": time.Now(),
			})
		if res.Error != nil {
			return false, internal.NewUnavailableError("access update failed", res.Error)
		}
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, internal.NewUnavailableError("access lookup failed", err)
	}

	record := access.Record{
		EmployeeID:  employeeID,
		ProjectCode: projectCode,
		AuthType:    authType,
		Status:      true,
		CreatedAt:   time.Now(),
	}
	if err := r.db.Create(&record).Error; err != nil {
		return false, internal.NewUnavailableError("access insert failed", err)
	}
	return true, nil
}

func (r *AccessRepository) CreateRecord(employeeID, projectCode, authType string, status bool) error {
	record := access.Record{
		EmployeeID:  employeeID,
		ProjectCode: projectCode,
		AuthType:    authType,
		Status:      status,
		CreatedAt:   time.Now(),
	}
	if err := r.db.Create(&record).Error; err != nil {
		return internal.NewUnavailableError("access insert failed", err)
	}
	return nil
}

func (r *AccessRepository) DeleteRecord(employeeID, projectCode string) (bool, error) {
	res := r.db.Where("employee_id = ? AND project_code = ?", employeeID, projectCode).
		Delete(&access.Record{})
	if res.Error != nil {
		return false, internal.NewUnavailableError("access delete failed", res.Error)
	}
	return res.RowsAffected > 0, nil
}
