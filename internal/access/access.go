package access

import (
	"time"
)

// Grant maps a row of the app_access table. Grants are keyed by the
// full (emp_id, project, auth_type) triple, so an employee can hold
// several auth types for the same project.
type Grant struct {
	ID       int64  `json:"-" gorm:"primaryKey"`
	EmpID    string `json:"emp_id" gorm:"column:emp_id"`
	Project  string `json:"project" gorm:"column:project"`
	AuthType string `json:"auth_type" gorm:"column:auth_type"`
}

func (Grant) TableName() string {
	return "app_access"
}

// Record maps a row of the authentication table. Records are keyed by
// the (employee_id, project_code) pair: setting a new auth type for the
// pair overwrites the previous one.
type Record struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	EmployeeID  string    `json:"employee_id" gorm:"column:employee_id"`
	ProjectCode string    `json:"project_code" gorm:"column:project_code"`
	AuthType    string    `json:"auth_type" gorm:"column:auth_type"`
	Status      bool      `json:"status" gorm:"column:status"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	ProjectName string    `json:"project_name,omitempty" gorm:"-"`
}

func (Record) TableName() string {
	return "authentication"
}

// Repository is the data access contract for both grant tables.
type Repository interface {
	ListGrants(empID, project string) ([]Grant, error)
	ListAllGrants(empID string) ([]Grant, error)
	CountGrants(empID, project string) (int64, error)
	UpsertGrant(empID, project, authType string) error

	GetRecord(employeeID, projectCode string) (*Record, error)
	SetRecord(employeeID, projectCode, authType string) (created bool, err error)
	CreateRecord(employeeID, projectCode, authType string, status bool) error
	DeleteRecord(employeeID, projectCode string) (found bool, err error)
}
