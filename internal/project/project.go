package project

// Project maps a row of the project_master catalog.
type Project struct {
	ProjectCode string `json:"project_code" db:"project_code"`
	ProjectName string `json:"project_name" db:"project_name"`
}

// Repository is the data access contract for the project catalog.
type Repository interface {
	List() ([]Project, error)
	GetName(projectCode string) (string, error)
}
