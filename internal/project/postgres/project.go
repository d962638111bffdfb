package postgres

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/violintec/common-login/internal"
	"github.com/violintec/common-login/internal/project"
)

// ProjectRepository implements project.Repository over sqlx.
type ProjectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) project.Repository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) List() ([]project.Project, error) {
	projects := []project.Project{}
	err := r.db.Select(&projects, `SELECT project_code, project_name FROM project_master ORDER BY project_name ASC`)
	if err != nil {
		return nil, internal.NewUnavailableError("project listing failed", err)
	}
	return projects, nil
}

func (r *ProjectRepository) GetName(projectCode string) (string, error) {
	var name string
	err := r.db.Get(&name, `SELECT project_name FROM project_master WHERE project_code = $1`, projectCode)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", internal.NewNotFoundError("Project not found", internal.ErrCodeProjectNotFound)
		}
		return "", internal.NewUnavailableError("project lookup failed", err)
	}
	return name, nil
}
