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
	"github.com/violintec/common-login/internal/access"
	accessPostgres "github.com/violintec/common-login/internal/access/postgres"
)

func TestAccessRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Access Repository Suite")
}

var _ = Describe("Access Repository", func() {
	var (
		db   *gorm.DB
		repo access.Repository
	)

	BeforeEach(func() {
		var err error
		// Use SQLite in-memory database for testing
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&access.Grant{}, &access.Record{})
		Expect(err).NotTo(HaveOccurred())

		repo = accessPostgres.NewAccessRepository(db)
	})

	Describe("UpsertGrant", func() {
		It("should insert a fresh grant", func() {
			Expect(repo.UpsertGrant("E1001", "PAYROLL", "user")).To(Succeed())

			count, err := repo.CountGrants("E1001", "PAYROLL")
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(1)))
		})

		It("should leave one row when the same triple is granted twice", func() {
			Expect(repo.UpsertGrant("E1001", "PAYROLL", "user")).To(Succeed())
			Expect(repo.UpsertGrant("E1001", "PAYROLL", "user")).To(Succeed())

			count, err := repo.CountGrants("E1001", "PAYROLL")
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(1)))
		})

		It("should accumulate distinct auth types for the same pair", func() {
			Expect(repo.UpsertGrant("E1001", "PAYROLL", "user")).To(Succeed())
			Expect(repo.UpsertGrant("E1001", "PAYROLL", "admin")).To(Succeed())

			grants, err := repo.ListGrants("E1001", "PAYROLL")
			Expect(err).NotTo(HaveOccurred())
			Expect(grants).To(HaveLen(2))
		})
	})

	Describe("ListAllGrants", func() {
		It("should return grants across projects for one employee only", func() {
			Expect(repo.UpsertGrant("E1001", "PAYROLL", "user")).To(Succeed())
			Expect(repo.UpsertGrant("E1001", "TIMESHEET", "admin")).To(Succeed())
			Expect(repo.UpsertGrant("E1002", "PAYROLL", "user")).To(Succeed())

			grants, err := repo.ListAllGrants("E1001")
			Expect(err).NotTo(HaveOccurred())
			Expect(grants).To(HaveLen(2))
		})
	})

	Describe("SetRecord", func() {
		It("should create an active record for a fresh pair", func() {
			created, err := repo.SetRecord("E1001", "PAYROLL", "user")
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeTrue())

			rec, err := repo.GetRecord("E1001", "PAYROLL")
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.AuthType).To(Equal("user"))
			Expect(rec.Status).To(BeTrue())
		})

		It("should overwrite the auth type for an existing pair", func() {
			_, err := repo.SetRecord("E1001", "PAYROLL", "user")
			Expect(err).NotTo(HaveOccurred())

			created, err := repo.SetRecord("E1001", "PAYROLL", "admin")
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeFalse())

			rec, err := repo.GetRecord("E1001", "PAYROLL")
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.AuthType).To(Equal("admin"))

			var count int64
			Expect(db.Model(&access.Record{}).Count(&count).Error).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(1)))
		})
	})

	Describe("CreateRecord", func() {
		It("should insert a record with the given status", func() {
			Expect(repo.CreateRecord("E1001", "PAYROLL", "user", true)).To(Succeed())

			rec, err := repo.GetRecord("E1001", "PAYROLL")
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.Status).To(BeTrue())
			Expect(rec.CreatedAt).To(BeTemporally("~", time.Now(), time.Minute))
		})
	})

	Describe("GetRecord", func() {
		It("should return not found for a missing pair", func() {
			_, err := repo.GetRecord("E1001", "PAYROLL")
			Expect(err).To(MatchError(internal.ErrAccessNotFound))
		})
	})

	Describe("DeleteRecord", func() {
		It("should delete an existing record and report it", func() {
			_, err := repo.SetRecord("E1001", "PAYROLL", "user")
			Expect(err).NotTo(HaveOccurred())

			found, err := repo.DeleteRecord("E1001", "PAYROLL")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())

			_, err = repo.GetRecord("E1001", "PAYROLL")
			Expect(err).To(MatchError(internal.ErrAccessNotFound))
		})

		It("should report not found when no row matches", func() {
			found, err := repo.DeleteRecord("E1001", "PAYROLL")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())
		})
	})
})
