package postgres_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/violintec/common-login/internal"
	"github.com/violintec/common-login/internal/user"
	userPostgres "github.com/violintec/common-login/internal/user/postgres"
)

func TestUserRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Repository Suite")
}

var _ = Describe("User Repository", func() {
	var (
		db   *gorm.DB
		repo user.Repository
	)

	BeforeEach(func() {
		var err error
		// Use SQLite in-memory database for testing
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&user.User{})
		Expect(err).NotTo(HaveOccurred())

		repo = userPostgres.NewUserRepository(db)
	})

	seed := func(u *user.User) {
		Expect(db.Create(u).Error).NotTo(HaveOccurred())
	}

	newUser := func(empID string) *user.User {
		return &user.User{
			EmployeeID:   empID,
			Username:     "emp_" + empID,
			Title:        "Ms",
			FirstName:    "Priya",
			LastName:     "Sharma",
			Email:        "priya.sharma@violintec.com",
			PasswordHash: "digest",
			Department:   "Engineering",
			ActiveStatus: true,
		}
	}

	Describe("GetByEmployeeID", func() {
		It("should return the full row", func() {
			seed(newUser("E1001"))

			u, err := repo.GetByEmployeeID("E1001")
			Expect(err).NotTo(HaveOccurred())
			Expect(u.Username).To(Equal("emp_E1001"))
			Expect(u.ActiveStatus).To(BeTrue())
		})

		It("should return not found for an unknown employee", func() {
			_, err := repo.GetByEmployeeID("nobody")
			Expect(err).To(MatchError(internal.ErrUserNotFound))
		})
	})

	Describe("narrow projections", func() {
		BeforeEach(func() {
			seed(newUser("E1001"))
		})

		It("should fetch the username", func() {
			name, err := repo.GetUsername("E1001")
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(Equal("emp_E1001"))
		})

		It("should fetch the full name", func() {
			fn, err := repo.GetFullName("E1001")
			Expect(err).NotTo(HaveOccurred())
			Expect(fn.FirstName).To(Equal("Priya"))
			Expect(fn.LastName).To(Equal("Sharma"))
		})

		It("should fetch the department", func() {
			dept, err := repo.GetDepartment("E1001")
			Expect(err).NotTo(HaveOccurred())
			Expect(dept).NotTo(BeNil())
			Expect(*dept).To(Equal("Engineering"))
		})

		It("should return a nil pointer for a NULL department", func() {
			Expect(db.Exec(
				`UPDATE user_master SET department = NULL WHERE employee_id = ?`, "E1001",
			).Error).NotTo(HaveOccurred())

			dept, err := repo.GetDepartment("E1001")
			Expect(err).NotTo(HaveOccurred())
			Expect(dept).To(BeNil())
		})

		It("should return a nil pointer when no left date is set", func() {
			left, err := repo.GetLeftDate("E1001")
			Expect(err).NotTo(HaveOccurred())
			Expect(left).To(BeNil())
		})

		It("should return not found rather than nil for a missing row", func() {
			_, err := repo.GetUsername("nobody")
			Expect(err).To(MatchError(internal.ErrUserNotFound))

			_, err = repo.GetDepartment("nobody")
			Expect(err).To(MatchError(internal.ErrUserNotFound))

			_, err = repo.GetLeftDate("nobody")
			Expect(err).To(MatchError(internal.ErrUserNotFound))
		})
	})

	Describe("Update", func() {
		BeforeEach(func() {
			seed(newUser("E1001"))
		})

		It("should apply the column map and bump updated_at", func() {
			err := repo.Update("E1001", map[string]interface{}{
				"first_name": "Rani",
				"department": "Operations",
			})
			Expect(err).NotTo(HaveOccurred())

			u, err := repo.GetByEmployeeID("E1001")
			Expect(err).NotTo(HaveOccurred())
			Expect(u.FirstName).To(Equal("Rani"))
			Expect(u.Department).To(Equal("Operations"))
			Expect(u.UpdatedAt).To(BeTemporally("~", time.Now(), time.Minute))
		})

		It("should return not found for an unknown employee", func() {
			err := repo.Update("nobody", map[string]interface{}{"first_name": "x"})
			Expect(err).To(MatchError(internal.ErrUserNotFound))
		})
	})

	Describe("lifecycle", func() {
		It("should list only active users with a left date", func() {
			left := time.Now().AddDate(0, 0, -1)

			departing := newUser("E1001")
			departing.LeftDate = &left
			seed(departing)

			staying := newUser("E1002")
			staying.Email = "arjun.mehta@violintec.com"
			seed(staying)

			gone := newUser("E1003")
			gone.Email = "rahul.verma@violintec.com"
			gone.LeftDate = &left
			gone.ActiveStatus = false
			seed(gone)

			pending, err := repo.ListPendingDeparture()
			Expect(err).NotTo(HaveOccurred())
			Expect(pending).To(HaveLen(1))
			Expect(pending[0].EmployeeID).To(Equal("E1001"))
		})

		It("should deactivate a user", func() {
			seed(newUser("E1001"))

			Expect(repo.Deactivate("E1001")).To(Succeed())

			u, err := repo.GetByEmployeeID("E1001")
			Expect(err).NotTo(HaveOccurred())
			Expect(u.ActiveStatus).To(BeFalse())
		})
	})
})
