package controllers_test

import (
	"net/http"
	"testing"

	"github.com/KelvenKs/SGTE/internal/models"
)

func TestCreateStudentRoundTrip(t *testing.T) {
	e := newEnv(t)
	admin := e.adminToken(t)
	email := uniqueEmail("aluno")

	w := e.do(t, http.MethodPost, "/estudante", admin, map[string]any{
		"nome":                 "Joana",
		"email":                email,
		"password":             "secret123",
		"idade":                11,
		"contacto_responsavel": "841112223",
		"classe":               "6",
		"turma":                "B",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body)
	}
	id, _ := payload(t, w)["id"].(string)
	if id == "" {
		t.Fatal("create response has no id")
	}

	w = e.do(t, http.MethodGet, "/estudante/"+id, admin, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d, body %s", w.Code, w.Body)
	}
	data := payload(t, w)
	if data["classe"] != "6" || data["turma"] != "B" {
		t.Errorf("classe/turma = %v/%v, want 6/B", data["classe"], data["turma"])
	}
	if data["contacto_responsavel"] != "841112223" {
		t.Errorf("contacto_responsavel = %v", data["contacto_responsavel"])
	}

	// The backing account carries the role and the email.
	var user models.User
	if err := e.db.First(&user, "email = ?", email).Error; err != nil {
		t.Fatalf("backing user not created: %v", err)
	}
	if user.Role != models.RoleStudent {
		t.Errorf("backing user role = %q, want %q", user.Role, models.RoleStudent)
	}
	if user.Password == "secret123" {
		t.Error("password stored in clear")
	}
}

func TestCreateStudentValidation(t *testing.T) {
	e := newEnv(t)
	admin := e.adminToken(t)

	base := map[string]any{
		"nome":                 "Joana",
		"email":                uniqueEmail("aluno"),
		"password":             "secret123",
		"idade":                11,
		"contacto_responsavel": "841112223",
		"classe":               "6",
		"turma":                "B",
	}

	bad := func(key string, value any) map[string]any {
		body := map[string]any{}
		for k, v := range base {
			body[k] = v
		}
		body[key] = value
		return body
	}

	if w := e.do(t, http.MethodPost, "/estudante", admin, bad("contacto_responsavel", "12345")); w.Code != http.StatusBadRequest {
		t.Errorf("short contact: status = %d, want 400", w.Code)
	}
	if w := e.do(t, http.MethodPost, "/estudante", admin, bad("contacto_responsavel", "84111222a")); w.Code != http.StatusBadRequest {
		t.Errorf("non-digit contact: status = %d, want 400", w.Code)
	}
	if w := e.do(t, http.MethodPost, "/estudante", admin, bad("idade", -3)); w.Code != http.StatusBadRequest {
		t.Errorf("negative age: status = %d, want 400", w.Code)
	}
	if w := e.do(t, http.MethodPost, "/estudante", admin, bad("email", "nope")); w.Code != http.StatusBadRequest {
		t.Errorf("bad email: status = %d, want 400", w.Code)
	}
}

// A duplicate email must roll back the whole creation, leaving no orphan
// student row behind.
func TestCreateStudentDuplicateEmailRollsBack(t *testing.T) {
	e := newEnv(t)
	admin := e.adminToken(t)
	email := uniqueEmail("taken")
	e.createUser(t, "Existing", email, "pass", models.RoleDriver)

	before := count(t, e.db, &models.Student{}, "")
	w := e.do(t, http.MethodPost, "/estudante", admin, map[string]any{
		"nome":                 "Joana",
		"email":                email,
		"password":             "secret123",
		"idade":                11,
		"contacto_responsavel": "841112223",
		"classe":               "6",
		"turma":                "B",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409, body %s", w.Code, w.Body)
	}
	if after := count(t, e.db, &models.Student{}, ""); after != before {
		t.Errorf("student rows = %d, want %d (rollback)", after, before)
	}
}

func TestUpdateStudentPartialMerge(t *testing.T) {
	e := newEnv(t)
	admin := e.adminToken(t)
	student, user := e.seedStudent(t)

	w := e.do(t, http.MethodPut, "/estudante/"+student.ID.String(), admin, map[string]any{
		"classe": "8",
		"nome":   "Renamed",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}

	var got models.Student
	if err := e.db.First(&got, "id = ?", student.ID).Error; err != nil {
		t.Fatalf("reload student: %v", err)
	}
	if got.Grade != "8" {
		t.Errorf("classe = %q, want 8", got.Grade)
	}
	if got.Section != student.Section {
		t.Errorf("turma changed to %q on partial update", got.Section)
	}

	var gotUser models.User
	if err := e.db.First(&gotUser, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if gotUser.Name != "Renamed" {
		t.Errorf("backing user name = %q, want Renamed", gotUser.Name)
	}
}

func TestDeleteStudentCascades(t *testing.T) {
	e := newEnv(t)
	admin := e.adminToken(t)
	student, _ := e.seedStudent(t)
	driver, _ := e.seedDriver(t)
	vehicle := e.seedVehicle(t, 5, nil)

	seed := []any{
		&models.Evaluation{StudentID: student.ID, DriverID: driver.ID, Rating: 4},
		&models.Assignment{StudentID: student.ID, VehicleID: vehicle.ID},
	}
	for _, row := range seed {
		if err := e.db.Create(row).Error; err != nil {
			t.Fatalf("seed row: %v", err)
		}
	}

	w := e.do(t, http.MethodDelete, "/estudante/"+student.ID.String(), admin, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}
	if n := count(t, e.db, &models.Student{}, "id = ?", student.ID); n != 0 {
		t.Error("student row survived the delete")
	}
	if n := count(t, e.db, &models.Evaluation{}, "student_id = ?", student.ID); n != 0 {
		t.Error("evaluations survived the delete")
	}
	if n := count(t, e.db, &models.Assignment{}, "student_id = ?", student.ID); n != 0 {
		t.Error("assignments survived the delete")
	}
}

func TestDeleteStudentNotFound(t *testing.T) {
	e := newEnv(t)
	admin := e.adminToken(t)

	w := e.do(t, http.MethodDelete, "/estudante/b4f4f3f0-0000-0000-0000-000000000000", admin, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
