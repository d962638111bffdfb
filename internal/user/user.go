package user

import (
	"time"
)

// User maps a row of the user_master table.
type User struct {
	EmployeeID   string     `json:"employee_id" gorm:"column:employee_id;primaryKey"`
	Username     string     `json:"username" gorm:"column:username"`
	Title        string     `json:"title" gorm:"column:title"`
	FirstName    string     `json:"first_name" gorm:"column:first_name"`
	LastName     string     `json:"last_name" gorm:"column:last_name"`
	Email        string     `json:"email" gorm:"column:email"`
	PasswordHash string     `json:"-" gorm:"column:password_hash"`
	Department   string     `json:"department" gorm:"column:department"`
	LeftDate     *time.Time `json:"left_date,omitempty" gorm:"column:left_date;type:date"`
	ActiveStatus bool       `json:"active_status" gorm:"column:active_status"`
	CreatedAt    time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "user_master"
}

// HasLeft reports whether the employee's left date has passed relative
// to the given day. A nil left date means the employee has not left.
func (u *User) HasLeft(today time.Time) bool {
	if u.LeftDate == nil {
		return false
	}
	y, m, d := today.Date()
	dayEnd := time.Date(y, m, d, 23, 59, 59, 0, today.Location())
	return !u.LeftDate.After(dayEnd)
}

type FullName struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Repository is the data access contract for the user directory.
type Repository interface {
	GetByEmployeeID(empID string) (*User, error)
	List() ([]*User, error)
	GetUsername(empID string) (string, error)
	GetFullName(empID string) (*FullName, error)
	GetDepartment(empID string) (*string, error)
	GetLeftDate(empID string) (*time.Time, error)
	Update(empID string, columns map[string]interface{}) error
	ListPendingDeparture() ([]*User, error)
	Deactivate(empID string) error
}
