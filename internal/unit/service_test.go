package unit_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/violintec/common-login/internal"
	"github.com/violintec/common-login/internal/unit"
)

func TestUnitService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Unit Service Suite")
}

// Mock membership repository reproducing the delimited-string column
// semantics in memory.
type mockMembershipRepository struct {
	rows        map[string]string
	getError    error
	addError    error
	removeError error
}

func newMockMembershipRepository() *mockMembershipRepository {
	return &mockMembershipRepository{rows: make(map[string]string)}
}

func (m *mockMembershipRepository) GetUnits(empID string) (string, error) {
	if m.getError != nil {
		return "", m.getError
	}
	stored, ok := m.rows[empID]
	if !ok {
		return "", internal.ErrEmployeeNotFound
	}
	return stored, nil
}

func (m *mockMembershipRepository) AddUnits(empID string, codes []string) error {
	if m.addError != nil {
		return m.addError
	}
	stored, ok := m.rows[empID]
	if !ok {
		return nil
	}
	m.rows[empID] = unit.JoinCodes(unit.MergeCodes(unit.SplitCodes(stored), codes))
	return nil
}

func (m *mockMembershipRepository) RemoveUnits(empID string, codes []string) error {
	if m.removeError != nil {
		return m.removeError
	}
	stored, ok := m.rows[empID]
	if !ok {
		return nil
	}
	m.rows[empID] = unit.JoinCodes(unit.RemoveCodes(unit.SplitCodes(stored), codes))
	return nil
}

type mockCatalogRepository struct {
	descriptions map[string]string
	getError     error
}

func newMockCatalogRepository() *mockCatalogRepository {
	return &mockCatalogRepository{descriptions: make(map[string]string)}
}

func (m *mockCatalogRepository) GetDescription(unitCode string) (string, error) {
	if m.getError != nil {
		return "", m.getError
	}
	desc, ok := m.descriptions[unitCode]
	if !ok {
		return "", internal.ErrUnitNotFound
	}
	return desc, nil
}

var _ = Describe("UnitService", func() {
	var (
		svc         *unit.Service
		memberships *mockMembershipRepository
		catalog     *mockCatalogRepository
		logger      *slog.Logger
	)

	BeforeEach(func() {
		memberships = newMockMembershipRepository()
		catalog = newMockCatalogRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		svc = unit.NewService(memberships, catalog, logger)
	})

	Describe("ListUnits", func() {
		It("should split the stored string into codes", func() {
			memberships.rows["E1001"] = "HR|FIN"

			units, err := svc.ListUnits("E1001")
			Expect(err).ToNot(HaveOccurred())
			Expect(units).To(Equal([]string{"HR", "FIN"}))
		})

		It("should return an empty slice for an empty membership string", func() {
			memberships.rows["E1001"] = ""

			units, err := svc.ListUnits("E1001")
			Expect(err).ToNot(HaveOccurred())
			Expect(units).To(BeEmpty())
			Expect(units).ToNot(BeNil())
		})

		It("should return not found for an unknown employee", func() {
			_, err := svc.ListUnits("nobody")
			Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
		})
	})

	Describe("AddUnits", func() {
		It("should union new codes into the membership", func() {
			memberships.rows["E1001"] = "HR"

			err := svc.AddUnits("E1001", []string{"FIN"})
			Expect(err).ToNot(HaveOccurred())
			Expect(memberships.rows["E1001"]).To(Equal("HR|FIN"))
		})

		It("should be idempotent for codes already present", func() {
			memberships.rows["E1001"] = "HR|FIN"

			err := svc.AddUnits("E1001", []string{"FIN"})
			Expect(err).ToNot(HaveOccurred())
			Expect(memberships.rows["E1001"]).To(Equal("HR|FIN"))
		})

		It("should succeed without effect when the employee has no membership row", func() {
			err := svc.AddUnits("nobody", []string{"HR"})
			Expect(err).ToNot(HaveOccurred())
			Expect(memberships.rows).ToNot(HaveKey("nobody"))
		})

		It("should propagate repository failures", func() {
			memberships.addError = internal.NewInternalError("db down", nil)

			err := svc.AddUnits("E1001", []string{"HR"})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("RemoveUnits", func() {
		It("should drop held codes and ignore absent ones", func() {
			memberships.rows["E1001"] = "HR|FIN"

			err := svc.RemoveUnits("E1001", []string{"FIN", "OPS"})
			Expect(err).ToNot(HaveOccurred())
			Expect(memberships.rows["E1001"]).To(Equal("HR"))
		})

		It("should succeed without effect when the employee has no membership row", func() {
			err := svc.RemoveUnits("nobody", []string{"HR"})
			Expect(err).ToNot(HaveOccurred())
		})

		It("should restore the original membership after add then remove", func() {
			memberships.rows["E1001"] = "HR"

			Expect(svc.AddUnits("E1001", []string{"FIN", "OPS"})).To(Succeed())
			Expect(svc.RemoveUnits("E1001", []string{"FIN", "OPS"})).To(Succeed())
			Expect(memberships.rows["E1001"]).To(Equal("HR"))
		})
	})

	Describe("GetDescription", func() {
		It("should resolve a known unit code", func() {
			catalog.descriptions["HR"] = "Human Resources"

			desc, err := svc.GetDescription("HR")
			Expect(err).ToNot(HaveOccurred())
			Expect(desc).To(Equal("Human Resources"))
		})

		It("should return not found for an unknown code", func() {
			_, err := svc.GetDescription("XX")
			Expect(err).To(MatchError(internal.ErrUnitNotFound))
		})
	})
})
