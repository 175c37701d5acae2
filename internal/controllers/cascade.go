package controllers

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KelvenKs/SGTE/internal/models"
)

// The foreign-key policies (cascade vs. set-null) are declared on the models
// for Postgres, and executed explicitly here inside the delete transactions
// so the behavior is identical on every store the API runs against.

func deleteStudentCascade(tx *gorm.DB, studentID uuid.UUID) error {
	if err := tx.Where("student_id = ?", studentID).Delete(&models.Evaluation{}).Error; err != nil {
		return err
	}
	if err := tx.Where("student_id = ?", studentID).Delete(&models.Assignment{}).Error; err != nil {
		return err
	}
	if err := tx.Where("student_id = ?", studentID).Delete(&models.Attendance{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Student{}, "id = ?", studentID).Error
}

func deleteDriverCascade(tx *gorm.DB, driverID uuid.UUID) error {
	// Vehicles survive their driver; only the reference is cleared.
	if err := tx.Model(&models.Vehicle{}).
		Where("driver_id = ?", driverID).
		Update("driver_id", nil).Error; err != nil {
		return err
	}
	if err := tx.Where("driver_id = ?", driverID).Delete(&models.Evaluation{}).Error; err != nil {
		return err
	}
	if err := tx.Where("driver_id = ?", driverID).Delete(&models.DriverRoute{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Driver{}, "id = ?", driverID).Error
}

func deleteVehicleCascade(tx *gorm.DB, vehicleID uuid.UUID) error {
	if err := tx.Model(&models.Route{}).
		Where("vehicle_id = ?", vehicleID).
		Update("vehicle_id", nil).Error; err != nil {
		return err
	}
	if err := tx.Where("vehicle_id = ?", vehicleID).Delete(&models.Assignment{}).Error; err != nil {
		return err
	}
	if err := tx.Where("vehicle_id = ?", vehicleID).Delete(&models.Attendance{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Vehicle{}, "id = ?", vehicleID).Error
}

func deleteRouteCascade(tx *gorm.DB, routeID uuid.UUID) error {
	if err := tx.Where("route_id = ?", routeID).Delete(&models.DriverRoute{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Route{}, "id = ?", routeID).Error
}
