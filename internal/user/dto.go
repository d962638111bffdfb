package user

import (
	"time"

	"github.com/violintec/common-login/internal"
)

// UpdateUserDTO is the partial-update payload. Every field is optional;
// only non-nil fields make it into the UPDATE statement. Unknown JSON
// keys are dropped during decoding, which keeps the column allow-list
// closed.
type UpdateUserDTO struct {
	Username     *string `json:"username,omitempty"`
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	Department   *string `json:"department,omitempty"`
	LeftDate     *string `json:"left_date,omitempty"`
	ActiveStatus *bool   `json:"active_status,omitempty"`
}

const leftDateLayout = "2006-01-02"

// Columns maps the supplied fields onto their user_master columns.
// An empty result means the request carried nothing updatable.
func (d UpdateUserDTO) Columns() (map[string]interface{}, error) {
	columns := make(map[string]interface{})

	if d.Username != nil {
		columns["username"] = *d.Username
	}
	if d.FirstName != nil {
		columns["first_name"] = *d.FirstName
	}
	if d.LastName != nil {
		columns["last_name"] = *d.LastName
	}
	if d.Department != nil {
		columns["department"] = *d.Department
	}
	if d.LeftDate != nil {
		if *d.LeftDate == "" {
			columns["left_date"] = nil
		} else {
			parsed, err := time.Parse(leftDateLayout, *d.LeftDate)
			if err != nil {
				return nil, internal.NewValidationError("left_date must be formatted as YYYY-MM-DD", internal.ErrCodeValidationFailed)
			}
			columns["left_date"] = parsed
		}
	}
	if d.ActiveStatus != nil {
		columns["active_status"] = *d.ActiveStatus
	}

	return columns, nil
}
