package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/violintec/common-login/internal/auth"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		_, db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		seedUnits(db)
		seedProjects(db)
		seedUsers(db)
		seedMemberships(db)
		seedGrants(db)

		fmt.Println("Database seeded successfully")
	},
}

func seedUnits(db *gorm.DB) {
	units := []struct {
		Code string
		Desc string
	}{
		{"HR", "Human Resources"},
		{"FIN", "Finance and Accounting"},
		{"OPS", "Operations"},
		{"ENG", "Engineering"},
		{"SALES", "Sales and Business Development"},
	}

	for _, u := range units {
		var exists int
		if err := db.Raw("SELECT 1 FROM unit_master WHERE unit_code = ?", u.Code).Row().Scan(&exists); err == nil {
			continue
		}
		if err := db.Exec("INSERT INTO unit_master (unit_code, description) VALUES (?, ?)", u.Code, u.Desc).Error; err != nil {
			log.Fatalf("failed to insert unit %s: %v", u.Code, err)
		}
		fmt.Printf("Seeded unit: %s\n", u.Code)
	}
}

func seedProjects(db *gorm.DB) {
	projects := []struct {
		Code string
		Name string
	}{
		{"PAYROLL", "Payroll Portal"},
		{"TIMESHEET", "Timesheet Tracker"},
		{"HELPDESK", "IT Helpdesk"},
		{"CRM", "Customer Relationship Manager"},
	}

	for _, p := range projects {
		var exists int
		if err := db.Raw("SELECT 1 FROM project_master WHERE project_code = ?", p.Code).Row().Scan(&exists); err == nil {
			continue
		}
		if err := db.Exec("INSERT INTO project_master (project_code, project_name) VALUES (?, ?)", p.Code, p.Name).Error; err != nil {
			log.Fatalf("failed to insert project %s: %v", p.Code, err)
		}
		fmt.Printf("Seeded project: %s\n", p.Code)
	}
}

func seedUsers(db *gorm.DB) {
	hash := auth.HashPassword("password")

	users := []struct {
		EmpID     string
		Title     string
		FirstName string
		LastName  string
		Email     string
		Dept      string
	}{
		{"E1001", "Mr", "Arjun", "Mehta", "arjun.mehta@violintec.com", "Engineering"},
		{"E1002", "Ms", "Priya", "Sharma", "priya.sharma@violintec.com", "Human Resources"},
		{"E1003", "Mr", "Rahul", "Verma", "rahul.verma@violintec.com", "Finance"},
	}

	for _, u := range users {
		var exists int
		if err := db.Raw("SELECT 1 FROM user_master WHERE employee_id = ?", u.EmpID).Row().Scan(&exists); err == nil {
			fmt.Printf("user %s already exists; skipping\n", u.EmpID)
			continue
		}
		if err := db.Exec(`INSERT INTO user_master
			(employee_id, username, title, first_name, last_name, email, password_hash, department, active_status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, true, now(), now())`,
			u.EmpID, "emp_"+u.EmpID, u.Title, u.FirstName, u.LastName, u.Email, hash, u.Dept).Error; err != nil {
			log.Fatalf("failed to insert user %s: %v", u.EmpID, err)
		}
		fmt.Printf("Seeded user: %s\n", u.EmpID)
	}
}

func seedMemberships(db *gorm.DB) {
	memberships := []struct {
		EmpID string
		Units string
	}{
		{"E1001", "ENG"},
		{"E1002", "HR|OPS"},
		{"E1003", "FIN"},
	}

	for _, m := range memberships {
		var exists int
		if err := db.Raw("SELECT 1 FROM employee_unit WHERE emp_id = ?", m.EmpID).Row().Scan(&exists); err == nil {
			continue
		}
		if err := db.Exec("INSERT INTO employee_unit (emp_id, units) VALUES (?, ?)", m.EmpID, m.Units).Error; err != nil {
			log.Fatalf("failed to insert membership for %s: %v", m.EmpID, err)
		}
		fmt.Printf("Seeded unit membership: %s -> %s\n", m.EmpID, m.Units)
	}
}

func seedGrants(db *gorm.DB) {
	grants := []struct {
		EmpID    string
		Project  string
		AuthType string
	}{
		{"E1001", "TIMESHEET", "user"},
		{"E1002", "PAYROLL", "admin"},
		{"E1002", "TIMESHEET", "admin"},
		{"E1003", "PAYROLL", "user"},
	}

	for _, g := range grants {
		var exists int
		if err := db.Raw("SELECT 1 FROM app_access WHERE emp_id = ? AND project = ? AND auth_type = ?",
			g.EmpID, g.Project, g.AuthType).Row().Scan(&exists); err == nil {
			continue
		}
		if err := db.Exec("INSERT INTO app_access (emp_id, project, auth_type) VALUES (?, ?, ?)",
			g.EmpID, g.Project, g.AuthType).Error; err != nil {
			log.Fatalf("failed to insert grant %s/%s: %v", g.EmpID, g.Project, err)
		}

		if err := db.Raw("SELECT 1 FROM authentication WHERE employee_id = ? AND project_code = ?",
			g.EmpID, g.Project).Row().Scan(&exists); err == nil {
			continue
		}
		if err := db.Exec(`INSERT INTO authentication (employee_id, project_code, auth_type, status, created_at)
			VALUES (?, ?, ?, true, now())`, g.EmpID, g.Project, g.AuthType).Error; err != nil {
			log.Fatalf("failed to insert access record %s/%s: %v", g.EmpID, g.Project, err)
		}
		fmt.Printf("Seeded access grant: %s -> %s (%s)\n", g.EmpID, g.Project, g.AuthType)
	}
}
