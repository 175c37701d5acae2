package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/KelvenKs/SGTE/internal/assignment"
	"github.com/KelvenKs/SGTE/internal/config"
	"github.com/KelvenKs/SGTE/internal/middleware"
	"github.com/KelvenKs/SGTE/internal/models"
	"github.com/KelvenKs/SGTE/internal/routes"
)

// env is a fully wired API instance backed by an in-memory database.
type env struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *middleware.Auth
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	// One connection keeps the in-memory database shared across goroutines.
	sqlDB.SetMaxOpenConns(1)
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	auth := middleware.NewAuth("test-secret", time.Hour)
	router := routes.SetupRouter(routes.Deps{
		DB:     db,
		Auth:   auth,
		Engine: assignment.NewEngine(db),
		Cfg:    config.Config{UploadDir: t.TempDir()},
	})
	return &env{router: router, db: db, auth: auth}
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%s@test.local", prefix, uuid.NewString()[:8])
}

func (e *env) createUser(t *testing.T, name, email, password, role string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{Name: name, Email: email, Password: string(hash), Role: role}
	if err := e.db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func (e *env) token(t *testing.T, user models.User) string {
	t.Helper()
	token, err := e.auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// adminToken creates a fresh administrator account and returns its token.
func (e *env) adminToken(t *testing.T) string {
	t.Helper()
	admin := e.createUser(t, "Admin", uniqueEmail("admin"), "pass", models.RoleAdmin)
	return e.token(t, admin)
}

func (e *env) seedStudent(t *testing.T) (models.Student, models.User) {
	t.Helper()
	user := e.createUser(t, "Student", uniqueEmail("student"), "pass", models.RoleStudent)
	student := models.Student{
		UserID:          user.ID,
		Age:             12,
		GuardianContact: "841234567",
		Grade:           "7",
		Section:         "A",
	}
	if err := e.db.Create(&student).Error; err != nil {
		t.Fatalf("create student: %v", err)
	}
	return student, user
}

func (e *env) seedDriver(t *testing.T) (models.Driver, models.User) {
	t.Helper()
	user := e.createUser(t, "Driver", uniqueEmail("driver"), "pass", models.RoleDriver)
	driver := models.Driver{
		UserID:         user.ID,
		License:        "L-100",
		CriminalRecord: "clean",
		Contact:        "847654321",
	}
	if err := e.db.Create(&driver).Error; err != nil {
		t.Fatalf("create driver: %v", err)
	}
	return driver, user
}

func (e *env) seedVehicle(t *testing.T, capacity int, driverID *uuid.UUID) models.Vehicle {
	t.Helper()
	vehicle := models.Vehicle{
		Plate:      "ABC-" + uuid.NewString()[:8],
		Make:       "Toyota",
		Inspection: "valid",
		Insurance:  "valid",
		Capacity:   capacity,
		DriverID:   driverID,
	}
	if err := e.db.Create(&vehicle).Error; err != nil {
		t.Fatalf("create vehicle: %v", err)
	}
	return vehicle
}

// do sends a JSON request through the router.
func (e *env) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// payload returns the "data" object of a response.
func payload(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	data, ok := decode(t, w)["data"].(map[string]any)
	if !ok {
		t.Fatalf("response %q has no data object", w.Body.String())
	}
	return data
}

func count(t *testing.T, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	q := db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
