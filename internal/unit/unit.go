package unit

import (
	"strings"
)

// Delimiter joins unit codes inside the employee_unit.units column.
const Delimiter = "|"

// Membership maps a row of the employee_unit table: one row per
// employee, unit codes serialized into a single delimited string.
type Membership struct {
	EmpID string `json:"emp_id" gorm:"column:emp_id;primaryKey"`
	Units string `json:"units" gorm:"column:units"`
}

func (Membership) TableName() string {
	return "employee_unit"
}

// Unit maps a row of the unit_master catalog.
type Unit struct {
	UnitCode    string `json:"unit_code" db:"unit_code"`
	Description string `json:"description" db:"description"`
}

// SplitCodes parses the stored delimited string. An empty string yields
// an empty slice, not a one-element slice holding "".
func SplitCodes(stored string) []string {
	if stored == "" {
		return []string{}
	}
	return strings.Split(stored, Delimiter)
}

// JoinCodes serializes codes back into the stored representation.
func JoinCodes(codes []string) string {
	return strings.Join(codes, Delimiter)
}

// MergeCodes unions toAdd into current, preserving order of first
// appearance and skipping codes already present.
func MergeCodes(current, toAdd []string) []string {
	merged := make([]string, 0, len(current)+len(toAdd))
	seen := make(map[string]struct{}, len(current)+len(toAdd))

	for _, code := range current {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		merged = append(merged, code)
	}
	for _, code := range toAdd {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		merged = append(merged, code)
	}
	return merged
}

// RemoveCodes drops every code in toRemove from current. Codes that are
// not members are ignored.
func RemoveCodes(current, toRemove []string) []string {
	drop := make(map[string]struct{}, len(toRemove))
	for _, code := range toRemove {
		drop[code] = struct{}{}
	}

	remaining := make([]string, 0, len(current))
	for _, code := range current {
		if _, ok := drop[code]; ok {
			continue
		}
		remaining = append(remaining, code)
	}
	return remaining
}

// MembershipRepository is the data access contract for the per-employee
// unit membership string.
type MembershipRepository interface {
	GetUnits(empID string) (string, error)
	AddUnits(empID string, codes []string) error
	RemoveUnits(empID string, codes []string) error
}

// CatalogRepository resolves unit codes to their descriptions.
type CatalogRepository interface {
	GetDescription(unitCode string) (string, error)
}
