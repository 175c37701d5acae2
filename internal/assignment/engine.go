// Package assignment implements the student-to-vehicle binding workflow.
// Every seat booking goes through Engine so the capacity and uniqueness
// invariants hold even under concurrent requests.
package assignment

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KelvenKs/SGTE/internal/apperr"
	"github.com/KelvenKs/SGTE/internal/models"
)

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrVehicleFull     = errors.New("vehicle is full")
	ErrAlreadyAssigned = errors.New("student already assigned to a vehicle")
	ErrNotAssigned     = errors.New("student has no assignment")
)

type Engine struct {
	db      *gorm.DB
	locking bool
}

func NewEngine(db *gorm.DB) *Engine {
	// SQLite rejects FOR UPDATE and serializes writers on its own; every
	// other supported store needs the explicit row lock.
	return &Engine{db: db, locking: db.Dialector.Name() != "sqlite"}
}

// Assign books a seat on the vehicle for the student. The vehicle row is
// locked for the duration of the transaction, so concurrent requests for the
// same vehicle serialize and exactly one of two last-seat racers succeeds.
// The unique index on Assignment.StudentID backstops the one-assignment-per-
// student invariant against races across different vehicles.
func (e *Engine) Assign(studentID, vehicleID uuid.UUID) (*models.Assignment, error) {
	var created models.Assignment

	err := e.db.Transaction(func(tx *gorm.DB) error {
		vehicle, err := e.lockVehicle(tx, vehicleID)
		if err != nil {
			return err
		}
		if err := studentExists(tx, studentID); err != nil {
			return err
		}

		var occupancy int64
		if err := tx.Model(&models.Assignment{}).
			Where("vehicle_id = ?", vehicleID).
			Count(&occupancy).Error; err != nil {
			return err
		}
		if occupancy >= int64(vehicle.Capacity) {
			return ErrVehicleFull
		}

		var existing models.Assignment
		err = tx.Where("student_id = ?", studentID).First(&existing).Error
		if err == nil {
			return ErrAlreadyAssigned
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		created = models.Assignment{StudentID: studentID, VehicleID: vehicleID}
		if err := tx.Create(&created).Error; err != nil {
			if apperr.IsDuplicate(err) {
				return ErrAlreadyAssigned
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Unassign removes the student's current assignment.
func (e *Engine) Unassign(studentID uuid.UUID) error {
	result := e.db.Where("student_id = ?", studentID).Delete(&models.Assignment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotAssigned
	}
	return nil
}

// Reassign moves the student onto another vehicle. Removal of the old row
// and insertion of the new one happen in a single transaction, with the
// target vehicle locked for the capacity check. A student without a current
// assignment is simply assigned.
func (e *Engine) Reassign(studentID, vehicleID uuid.UUID) (*models.Assignment, error) {
	var created models.Assignment

	err := e.db.Transaction(func(tx *gorm.DB) error {
		vehicle, err := e.lockVehicle(tx, vehicleID)
		if err != nil {
			return err
		}
		if err := studentExists(tx, studentID); err != nil {
			return err
		}

		// Occupancy excluding the student's own seat: moving within the
		// same vehicle must not count against its capacity.
		var occupancy int64
		if err := tx.Model(&models.Assignment{}).
			Where("vehicle_id = ? AND student_id <> ?", vehicleID, studentID).
			Count(&occupancy).Error; err != nil {
			return err
		}
		if occupancy >= int64(vehicle.Capacity) {
			return ErrVehicleFull
		}

		if err := tx.Where("student_id = ?", studentID).
			Delete(&models.Assignment{}).Error; err != nil {
			return err
		}

		created = models.Assignment{StudentID: studentID, VehicleID: vehicleID}
		return tx.Create(&created).Error
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (e *Engine) lockVehicle(tx *gorm.DB, vehicleID uuid.UUID) (*models.Vehicle, error) {
	query := tx
	if e.locking {
		query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var vehicle models.Vehicle
	if err := query.First(&vehicle, "id = ?", vehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

func studentExists(tx *gorm.DB, studentID uuid.UUID) error {
	var student models.Student
	if err := tx.First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}
	return nil
}
