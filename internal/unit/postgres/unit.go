package postgres

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/violintec/common-login/internal"
	"github.com/violintec/common-login/internal/unit"
	"gorm.io/gorm"
)

// mutateRetries bounds the optimistic read-modify-write loop on the
// serialized membership string.
const mutateRetries = 3

// MembershipRepository implements unit.MembershipRepository using GORM
type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) unit.MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) GetUnits(empID string) (string, error) {
	var m unit.Membership
	err := r.db.Where("emp_id = ?", empID).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", internal.ErrEmployeeNotFound
		}
		return "", internal.NewUnavailableError("unit membership lookup failed", err)
	}
	return m.Units, nil
}

func (r *MembershipRepository) AddUnits(empID string, codes []string) error {
	return r.mutate(empID, func(current []string) []string {
		return unit.MergeCodes(current, codes)
	})
}

func (r *MembershipRepository) RemoveUnits(empID string, codes []string) error {
	return r.mutate(empID, func(current []string) []string {
		return unit.RemoveCodes(current, codes)
	})
}

// mutate runs the read-modify-write cycle with a compare-and-swap on
// the previous units value, so a concurrent writer forces a re-read
// instead of a lost update. A missing membership row is a no-op
// success: membership rows are provisioned with the employee.
func (r *MembershipRepository) mutate(empID string, apply func([]string) []string) error {
	for attempt := 0; attempt < mutateRetries; attempt++ {
		var m unit.Membership
		err := r.db.Where("emp_id = ?", empID).First(&m).Error
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		if err != nil {
			return internal.NewUnavailableError("unit membership lookup failed", err)
		}

		next := unit.JoinCodes(apply(unit.SplitCodes(m.Units)))
		if next == m.Units {
			return nil
		}

		res := r.db.Model(&unit.Membership{}).
			Where("emp_id = ? AND units = ?", empID, m.Units).
			Update("units", next)
		if res.Error != nil {
			return internal.NewUnavailableError("unit membership update failed", res.Error)
		}
		if res.RowsAffected > 0 {
			return nil
		}
		// lost the race against a concurrent writer; re-read and retry
	}
	return internal.NewInternalError("unit membership update contention", nil)
}

// CatalogRepository implements unit.CatalogRepository over sqlx.
type CatalogRepository struct {
	db *sqlx.DB
}

func NewCatalogRepository(db *sqlx.DB) unit.CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) GetDescription(unitCode string) (string, error) {
	var u unit.Unit
	err := r.db.Get(&u, `SELECT unit_code, description FROM unit_master WHERE unit_code = $1`, unitCode)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", internal.ErrUnitNotFound
		}
		return "", internal.NewUnavailableError("unit description lookup failed", err)
	}
	return u.Description, nil
}
