package unit_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/violintec/common-login/internal/unit"
	unitPostgres "github.com/violintec/common-login/internal/unit/postgres"
)

var _ = Describe("Unit Handler Integration", func() {
	var (
		db      *gorm.DB
		router  *chi.Mux
		catalog *mockCatalogRepository
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&unit.Membership{})
		Expect(err).NotTo(HaveOccurred())

		catalog = newMockCatalogRepository()
		catalog.descriptions["HR"] = "Human Resources"

		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := unit.NewService(unitPostgres.NewMembershipRepository(db), catalog, slogger)
		handler := unit.NewHandler(service)

		router = chi.NewRouter()
		router.Route("/employees/{empID}/units", func(r chi.Router) {
			r.Get("/", handler.ListUnits)
			r.Put("/", handler.AddUnits)
			r.Put("/remove", handler.RemoveUnits)
		})
		router.Get("/units/{unitCode}/description", handler.GetDescription)

		Expect(db.Create(&unit.Membership{EmpID: "E1001", Units: "HR|FIN"}).Error).NotTo(HaveOccurred())
	})

	It("should list an employee's units", func() {
		req := httptest.NewRequest(http.MethodGet, "/employees/E1001/units", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var response struct {
			EmpID string   `json:"emp_id"`
			Units []string `json:"units"`
		}
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response.EmpID).To(Equal("E1001"))
		Expect(response.Units).To(Equal([]string{"HR", "FIN"}))
	})

	It("should return 404 for an employee without a membership row", func() {
		req := httptest.NewRequest(http.MethodGet, "/employees/nobody/units", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should add units through the membership endpoint", func() {
		body := strings.NewReader(`{"units":["OPS","HR"]}`)
		req := httptest.NewRequest(http.MethodPut, "/employees/E1001/units", body)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var m unit.Membership
		Expect(db.Where("emp_id = ?", "E1001").First(&m).Error).NotTo(HaveOccurred())
		Expect(m.Units).To(Equal("HR|FIN|OPS"))
	})

	It("should remove units through the membership endpoint", func() {
		body := strings.NewReader(`{"units":["FIN","OPS"]}`)
		req := httptest.NewRequest(http.MethodPut, "/employees/E1001/units/remove", body)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var m unit.Membership
		Expect(db.Where("emp_id = ?", "E1001").First(&m).Error).NotTo(HaveOccurred())
		Expect(m.Units).To(Equal("HR"))
	})

	It("should reject a payload without a units list", func() {
		body := strings.NewReader(`{}`)
		req := httptest.NewRequest(http.MethodPut, "/employees/E1001/units", body)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should resolve a unit description", func() {
		req := httptest.NewRequest(http.MethodGet, "/units/HR/description", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var response map[string]string
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response["description"]).To(Equal("Human Resources"))
	})

	It("should return 404 for an unknown unit code", func() {
		req := httptest.NewRequest(http.MethodGet, "/units/XX/description", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
