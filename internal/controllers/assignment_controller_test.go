package controllers_test

import (
	"net/http"
	"testing"

	"github.com/KelvenKs/SGTE/internal/models"
)

// The end-to-end seat booking workflow: two seats fill, the third request
// bounces, and a student already seated cannot book a second vehicle.
func TestSelectVehicleScenario(t *testing.T) {
	e := newEnv(t)
	admin := e.adminToken(t)
	v1 := e.seedVehicle(t, 2, nil)
	v2 := e.seedVehicle(t, 2, nil)
	s1, _ := e.seedStudent(t)
	s2, _ := e.seedStudent(t)
	s3, _ := e.seedStudent(t)

	book := func(student, vehicle string) int {
		w := e.do(t, http.MethodPost, "/selecionar-viatura", admin, map[string]any{
			"estudante_id": student,
			"viatura_id":   vehicle,
		})
		return w.Code
	}

	if code := book(s1.ID.String(), v1.ID.String()); code != http.StatusCreated {
		t.Fatalf("s1 booking: status = %d", code)
	}
	if code := book(s2.ID.String(), v1.ID.String()); code != http.StatusCreated {
		t.Fatalf("s2 booking: status = %d", code)
	}
	if code := book(s3.ID.String(), v1.ID.String()); code != http.StatusBadRequest {
		t.Errorf("s3 booking on full vehicle: status = %d, want 400", code)
	}
	if code := book(s1.ID.String(), v2.ID.String()); code != http.StatusBadRequest {
		t.Errorf("s1 double booking: status = %d, want 400", code)
	}

	if n := count(t, e.db, &models.Assignment{}, "vehicle_id = ?", v1.ID); n != 2 {
		t.Errorf("v1 occupancy = %d, want 2", n)
	}
}

func TestReselectMovesStudent(t *testing.T) {
	e := newEnv(t)
	admin := e.adminToken(t)
	v1 := e.seedVehicle(t, 1, nil)
	v2 := e.seedVehicle(t, 1, nil)
	student, _ := e.seedStudent(t)

	w := e.do(t, http.MethodPost, "/selecionar-viatura", admin, map[string]any{
		"estudante_id": student.ID.String(),
		"viatura_id":   v1.ID.String(),
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("initial booking: status = %d, body %s", w.Code, w.Body)
	}

	w = e.do(t, http.MethodPut, "/selecionar-viatura", admin, map[string]any{
		"estudante_id": student.ID.String(),
		"viatura_id":   v2.ID.String(),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("reselect: status = %d, body %s", w.Code, w.Body)
	}

	if n := count(t, e.db, &models.Assignment{}, "vehicle_id = ?", v1.ID); n != 0 {
		t.Errorf("v1 occupancy after move = %d, want 0", n)
	}
	if n := count(t, e.db, &models.Assignment{}, "vehicle_id = ?", v2.ID); n != 1 {
		t.Errorf("v2 occupancy after move = %d, want 1", n)
	}
}

func TestStudentSelectsOnlyForSelf(t *testing.T) {
	e := newEnv(t)
	vehicle := e.seedVehicle(t, 5, nil)
	self, selfUser := e.seedStudent(t)
	other, _ := e.seedStudent(t)
	token := e.token(t, selfUser)

	w := e.do(t, http.MethodPost, "/selecionar-viatura", token, map[string]any{
		"estudante_id": other.ID.String(),
		"viatura_id":   vehicle.ID.String(),
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("booking for another student: status = %d, want 403", w.Code)
	}

	w = e.do(t, http.MethodPost, "/selecionar-viatura", token, map[string]any{
		"estudante_id": self.ID.String(),
		"viatura_id":   vehicle.ID.String(),
	})
	if w.Code != http.StatusCreated {
		t.Errorf("booking for self: status = %d, want 201, body %s", w.Code, w.Body)
	}
}

func TestSelectVehicleRejectsDrivers(t *testing.T) {
	e := newEnv(t)
	vehicle := e.seedVehicle(t, 5, nil)
	student, _ := e.seedStudent(t)
	_, driverUser := e.seedDriver(t)

	w := e.do(t, http.MethodPost, "/selecionar-viatura", e.token(t, driverUser), map[string]any{
		"estudante_id": student.ID.String(),
		"viatura_id":   vehicle.ID.String(),
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("driver booking: status = %d, want 403", w.Code)
	}
}

// Listing is scoped by role: drivers see only their vehicle's seats,
// students only their own row.
func TestAssignmentListScopes(t *testing.T) {
	e := newEnv(t)
	driver, driverUser := e.seedDriver(t)
	mine := e.seedVehicle(t, 5, &driver.ID)
	theirs := e.seedVehicle(t, 5, nil)
	s1, s1User := e.seedStudent(t)
	s2, _ := e.seedStudent(t)

	for _, row := range []models.Assignment{
		{StudentID: s1.ID, VehicleID: mine.ID},
		{StudentID: s2.ID, VehicleID: theirs.ID},
	} {
		if err := e.db.Create(&row).Error; err != nil {
			t.Fatalf("seed assignment: %v", err)
		}
	}

	listLen := func(token string) int {
		w := e.do(t, http.MethodGet, "/motorista_estudante", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("list: status = %d, body %s", w.Code, w.Body)
		}
		data, _ := decode(t, w)["data"].([]any)
		return len(data)
	}

	if n := listLen(e.adminToken(t)); n != 2 {
		t.Errorf("admin sees %d assignments, want 2", n)
	}
	if n := listLen(e.token(t, driverUser)); n != 1 {
		t.Errorf("driver sees %d assignments, want 1", n)
	}
	if n := listLen(e.token(t, s1User)); n != 1 {
		t.Errorf("student sees %d assignments, want 1", n)
	}
}

func TestAssignmentDelete(t *testing.T) {
	e := newEnv(t)
	vehicle := e.seedVehicle(t, 5, nil)
	self, selfUser := e.seedStudent(t)
	other, otherUser := e.seedStudent(t)

	rows := []models.Assignment{
		{StudentID: self.ID, VehicleID: vehicle.ID},
		{StudentID: other.ID, VehicleID: vehicle.ID},
	}
	for i := range rows {
		if err := e.db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed assignment: %v", err)
		}
	}

	// A student cannot release someone else's seat.
	w := e.do(t, http.MethodDelete, "/motorista_estudante/"+rows[0].ID.String(), e.token(t, otherUser), nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("foreign seat: status = %d, want 403", w.Code)
	}

	w = e.do(t, http.MethodDelete, "/motorista_estudante/"+rows[0].ID.String(), e.token(t, selfUser), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("own seat: status = %d, body %s", w.Code, w.Body)
	}
	if n := count(t, e.db, &models.Assignment{}, "student_id = ?", self.ID); n != 0 {
		t.Error("assignment survived the delete")
	}

	w = e.do(t, http.MethodDelete, "/motorista_estudante/"+rows[0].ID.String(), e.adminToken(t), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("absent assignment: status = %d, want 404", w.Code)
	}
}
