package postgres

import (
	"github.com/violintec/common-login/internal"
	"github.com/violintec/common-login/internal/auth"
	"github.com/violintec/common-login/internal/user"
	"gorm.io/gorm"
)

// AuthRepository implements the auth.UserRepository interface using GORM
type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) auth.UserRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) GetByEmployeeID(empID string) (*user.User, error) {
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

func (r *AuthRepository) GetByEmail(email string) (*user.User, error) {
	var u user.User
	err := r.db.Where("email = ?", email).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrUserNotFound
		}
		return nil, internal.NewUnavailableError("user lookup failed", err)
	}
	return &u, nil
}

func (r *AuthRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.db.Model(&user.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return 0, internal.NewUnavailableError("email count failed", err)
	}
	return count, nil
}

func (r *AuthRepository) Deactivate(empID string) error {
	res := r.db.Model(&user.User{}).
		Where("employee_id = ?", empID).
		Update("active_status", false)
	if res.Error != nil {
		return internal.NewUnavailableError("user deactivation failed", res.Error)
	}
	return nil
}

func (r *AuthRepository) ExistsByEmployeeID(empID string) (bool, error) {
	var count int64
	err := r.db.Model(&user.User{}).Where("employee_id = ?", empID).Count(&count).Error
	if err != nil {
		return false, internal.NewUnavailableError("employee id check failed", err)
	}
	return count > 0, nil
}

func (r *AuthRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&user.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, internal.NewUnavailableError("email check failed", err)
	}
	return count > 0, nil
}

func (r *AuthRepository) Create(u *user.User) error {
	if err := r.db.Create(u).Error; err != nil {
		return internal.NewUnavailableError("user insert failed", err)
	}
	return nil
}
