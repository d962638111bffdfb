package auth

import "strings"

// LoginDTO is the transport shape for login requests. The identifier is
// either an employee ID or a corporate email address.
type LoginDTO struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d LoginDTO) Validate() error {
	if strings.TrimSpace(d.Identifier) == "" {
		return ValidationError{Msg: "identifier is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	return nil
}

// AccessItemDTO is one optional initial access record on signup.
type AccessItemDTO struct {
	ProjectCode string `json:"projectCode"`
	AuthType    string `json:"authType"`
}

// SignupDTO is the transport shape for account creation.
type SignupDTO struct {
	EmpID     string          `json:"empId"`
	Title     string          `json:"title"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email"`
	Password  string          `json:"password"`
	Access    []AccessItemDTO `json:"access,omitempty"`
}

func (d SignupDTO) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"empId", d.EmpID},
		{"title", d.Title},
		{"firstName", d.FirstName},
		{"lastName", d.LastName},
		{"email", d.Email},
		{"password", d.Password},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return ValidationError{Msg: field.name + " is required"}
		}
	}
	if !IsCorporateEmail(strings.TrimSpace(d.Email)) {
		return ValidationError{Msg: "email must be in @violintec.com domain"}
	}
	return nil
}
