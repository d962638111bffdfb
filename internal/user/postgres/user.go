package postgres

import (
	"database/sql"
	"time"

	"github.com/violintec/common-login/internal"
	"github.com/violintec/common-login/internal/user"
	"gorm.io/gorm"
)

// UserRepository implements the user.Repository interface using GORM
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmployeeID(empID string) (*user.User, error) {
	var u user.User
	err := r.db.Where("employee_id = ?", empID).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrUserNotFound
		}
		return nil, internal.NewUnavailableError("user lookup failed", err)
	}
	return &u, nil
}

func (r *UserRepository) List() ([]*user.User, error) {
	var users []*user.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, internal.NewUnavailableError("user listing failed", err)
	}
	return users, nil
}

func (r *UserRepository) GetUsername(empID string) (string, error) {
	var username string
	row := r.db.Raw(`SELECT username FROM user_master WHERE employee_id = ?`, empID).Row()
	if err := row.Scan(&username); err != nil {
		if err == sql.ErrNoRows {
			return "", internal.ErrUserNotFound
		}
		return "", internal.NewUnavailableError("username lookup failed", err)
	}
	return username, nil
}

func (r *UserRepository) GetFullName(empID string) (*user.FullName, error) {
	var fn user.FullName
	row := r.db.Raw(`SELECT first_name, last_name FROM user_master WHERE employee_id = ?`, empID).Row()
	if err := row.Scan(&fn.FirstName, &fn.LastName); err != nil {
		if err == sql.ErrNoRows {
			return nil, internal.ErrUserNotFound
		}
		return nil, internal.NewUnavailableError("full name lookup failed", err)
	}
	return &fn, nil
}

// GetDepartment distinguishes a missing row from a row whose department
// column is NULL: the former is a not-found error, the latter returns a
// nil string pointer.
func (r *UserRepository) GetDepartment(empID string) (*string, error) {
	var department sql.NullString
	row := r.db.Raw(`SELECT department FROM user_master WHERE employee_id = ?`, empID).Row()
	if err := row.Scan(&department); err != nil {
		if err == sql.ErrNoRows {
			return nil, internal.ErrUserNotFound
		}
		return nil, internal.NewUnavailableError("department lookup failed", err)
	}
	if !department.Valid {
		return nil, nil
	}
	return &department.String, nil
}

func (r *UserRepository) GetLeftDate(empID string) (*time.Time, error) {
	var leftDate sql.NullTime
	row := r.db.Raw(`SELECT left_date FROM user_master WHERE employee_id = ?`, empID).Row()
	if err := row.Scan(&leftDate); err != nil {
		if err == sql.ErrNoRows {
			return nil, internal.ErrUserNotFound
		}
		return nil, internal.NewUnavailableError("left date lookup failed", err)
	}
	if !leftDate.Valid {
		return nil, nil
	}
	return &leftDate.Time, nil
}

// Update applies the pre-validated column map in a single SET clause.
func (r *UserRepository) Update(empID string, columns map[string]interface{}) error {
	columns["updated_at"] = time.Now()

	res := r.db.Model(&user.User{}).Where("employee_id = ?", empID).Updates(columns)
	if res.Error != nil {
		return internal.NewUnavailableError("user update failed", res.Error)
	}
	if res.RowsAffected == 0 {
		return internal.ErrUserNotFound
	}
	return nil
}

// ListPendingDeparture returns active users with a left date on record.
func (r *UserRepository) ListPendingDeparture() ([]*user.User, error) {
	var users []*user.User
	err := r.db.Where("left_date IS NOT NULL AND active_status = ?", true).Find(&users).Error
	if err != nil {
		return nil, internal.NewUnavailableError("departure scan failed", err)
	}
	return users, nil
}

func (r *UserRepository) Deactivate(empID string) error {
	res := r.db.Model(&user.User{}).
		Where("employee_id = ?", empID).
		Updates(map[string]interface{}{
			"active_status": false,
			"updated_at":    time.Now(),
		})
	if res.Error != nil {
		return internal.NewUnavailableError("user deactivation failed", res.Error)
	}
	return nil
}
