package controllers_test

import (
	"net/http"
	"testing"
)

func TestAttendanceRecordingAndFilters(t *testing.T) {
	e := newEnv(t)
	_, driverUser := e.seedDriver(t)
	token := e.token(t, driverUser)
	s1, _ := e.seedStudent(t)
	s2, _ := e.seedStudent(t)
	v1 := e.seedVehicle(t, 5, nil)
	v2 := e.seedVehicle(t, 5, nil)

	record := func(student, vehicle, date string) {
		w := e.do(t, http.MethodPost, "/presenca", token, map[string]any{
			"estudante_id": student,
			"viatura_id":   vehicle,
			"data":         date,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("record attendance: status = %d, body %s", w.Code, w.Body)
		}
	}
	record(s1.ID.String(), v1.ID.String(), "2026-03-02")
	record(s2.ID.String(), v1.ID.String(), "2026-03-03")
	record(s2.ID.String(), v2.ID.String(), "2026-03-02")

	listLen := func(path string) int {
		w := e.do(t, http.MethodGet, path, token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("list %s: status = %d, body %s", path, w.Code, w.Body)
		}
		data, _ := decode(t, w)["data"].([]any)
		return len(data)
	}

	if n := listLen("/presenca"); n != 3 {
		t.Errorf("unfiltered list has %d rows, want 3", n)
	}
	if n := listLen("/presenca?viatura_id=" + v1.ID.String()); n != 2 {
		t.Errorf("vehicle filter has %d rows, want 2", n)
	}
	if n := listLen("/presenca?data=2026-03-02"); n != 2 {
		t.Errorf("date filter has %d rows, want 2", n)
	}
	if n := listLen("/presenca?viatura_id=" + v1.ID.String() + "&data=2026-03-02"); n != 1 {
		t.Errorf("combined filter has %d rows, want 1", n)
	}
}

func TestAttendanceValidation(t *testing.T) {
	e := newEnv(t)
	_, driverUser := e.seedDriver(t)
	token := e.token(t, driverUser)
	student, _ := e.seedStudent(t)
	vehicle := e.seedVehicle(t, 5, nil)

	w := e.do(t, http.MethodPost, "/presenca", token, map[string]any{
		"estudante_id": student.ID.String(),
		"viatura_id":   vehicle.ID.String(),
		"data":         "02-03-2026",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad date format: status = %d, want 400", w.Code)
	}

	w = e.do(t, http.MethodPost, "/presenca", token, map[string]any{
		"estudante_id": "b4f4f3f0-0000-0000-0000-000000000000",
		"viatura_id":   vehicle.ID.String(),
		"data":         "2026-03-02",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown student: status = %d, want 404", w.Code)
	}

	if w := e.do(t, http.MethodGet, "/presenca?viatura_id=nope", token, nil); w.Code != http.StatusBadRequest {
		t.Errorf("bad filter: status = %d, want 400", w.Code)
	}
}

// Recording boardings is restricted to drivers and administrators.
func TestAttendanceWritesRejectStudents(t *testing.T) {
	e := newEnv(t)
	student, studentUser := e.seedStudent(t)
	vehicle := e.seedVehicle(t, 5, nil)

	w := e.do(t, http.MethodPost, "/presenca", e.token(t, studentUser), map[string]any{
		"estudante_id": student.ID.String(),
		"viatura_id":   vehicle.ID.String(),
		"data":         "2026-03-02",
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("student write: status = %d, want 403", w.Code)
	}
}
