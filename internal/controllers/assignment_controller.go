package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KelvenKs/SGTE/internal/apperr"
	"github.com/KelvenKs/SGTE/internal/assignment"
	"github.com/KelvenKs/SGTE/internal/middleware"
	"github.com/KelvenKs/SGTE/internal/models"
)

type AssignmentController struct {
	DB     *gorm.DB
	Engine *assignment.Engine
}

type selectVehicleInput struct {
	StudentID string `json:"estudante_id" binding:"required,uuid"`
	VehicleID string `json:"viatura_id" binding:"required,uuid"`
}

// SelectVehicle books a seat for a student through the assignment engine.
func (ac *AssignmentController) SelectVehicle(c *gin.Context) {
	studentID, vehicleID, ok := ac.bindSelection(c)
	if !ok {
		return
	}

	created, err := ac.Engine.Assign(studentID, vehicleID)
	if err != nil {
		ac.replyEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": created})
}

// Reselect moves a student onto another vehicle atomically.
func (ac *AssignmentController) Reselect(c *gin.Context) {
	studentID, vehicleID, ok := ac.bindSelection(c)
	if !ok {
		return
	}

	created, err := ac.Engine.Reassign(studentID, vehicleID)
	if err != nil {
		ac.replyEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": created})
}

// List returns assignments scoped to the caller: administrators see all,
// drivers only the students riding their vehicles, students only their own.
func (ac *AssignmentController) List(c *gin.Context) {
	ident, _ := middleware.CurrentIdentity(c)

	query := ac.DB.Model(&models.Assignment{}).Preload("Student").Preload("Vehicle")

	switch ident.Role {
	case models.RoleDriver:
		driver, ok := ac.driverProfile(c, ident)
		if !ok {
			return
		}
		query = query.
			Select("assignments.*").
			Joins("JOIN vehicles ON vehicles.id = assignments.vehicle_id").
			Where("vehicles.driver_id = ?", driver.ID)
	case models.RoleStudent:
		student, ok := ac.studentProfile(c, ident)
		if !ok {
			return
		}
		query = query.Where("assignments.student_id = ?", student.ID)
	}

	var assignments []models.Assignment
	if err := query.Find(&assignments).Error; err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not list assignments", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": assignments})
}

// Delete removes an assignment by id. Drivers may only release seats on
// their own vehicle; students only their own seat.
func (ac *AssignmentController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var assign models.Assignment
	if err := ac.DB.First(&assign, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "assignment not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch assignment", err))
		return
	}

	ident, _ := middleware.CurrentIdentity(c)
	switch ident.Role {
	case models.RoleDriver:
		driver, ok := ac.driverProfile(c, ident)
		if !ok {
			return
		}
		var vehicle models.Vehicle
		if err := ac.DB.First(&vehicle, "id = ?", assign.VehicleID).Error; err != nil {
			apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch vehicle", err))
			return
		}
		if vehicle.DriverID == nil || *vehicle.DriverID != driver.ID {
			c.JSON(http.StatusForbidden, gin.H{"error": "assignment is not on your vehicle"})
			return
		}
	case models.RoleStudent:
		student, ok := ac.studentProfile(c, ident)
		if !ok {
			return
		}
		if assign.StudentID != student.ID {
			c.JSON(http.StatusForbidden, gin.H{"error": "assignment does not belong to you"})
			return
		}
	}

	if err := ac.Engine.Unassign(assign.StudentID); err != nil {
		ac.replyEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "assignment deleted"})
}

// bindSelection parses the request body and enforces that students can only
// act on their own profile.
func (ac *AssignmentController) bindSelection(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	var input selectVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return uuid.Nil, uuid.Nil, false
	}

	studentID := uuid.MustParse(input.StudentID)
	vehicleID := uuid.MustParse(input.VehicleID)

	ident, _ := middleware.CurrentIdentity(c)
	if ident.Role == models.RoleStudent {
		student, ok := ac.studentProfile(c, ident)
		if !ok {
			return uuid.Nil, uuid.Nil, false
		}
		if student.ID != studentID {
			c.JSON(http.StatusForbidden, gin.H{"error": "students may only select a vehicle for themselves"})
			return uuid.Nil, uuid.Nil, false
		}
	}
	return studentID, vehicleID, true
}

func (ac *AssignmentController) driverProfile(c *gin.Context, ident middleware.Identity) (*models.Driver, bool) {
	var driver models.Driver
	if err := ac.DB.First(&driver, "user_id = ?", ident.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"error": "no driver profile for this account"})
			return nil, false
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch driver profile", err))
		return nil, false
	}
	return &driver, true
}

func (ac *AssignmentController) studentProfile(c *gin.Context, ident middleware.Identity) (*models.Student, bool) {
	var student models.Student
	if err := ac.DB.First(&student, "user_id = ?", ident.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"error": "no student profile for this account"})
			return nil, false
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch student profile", err))
		return nil, false
	}
	return &student, true
}

// replyEngineError maps engine failures to the API's status codes. Capacity
// and duplicate-assignment failures report 400 to match the original surface.
func (ac *AssignmentController) replyEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assignment.ErrVehicleNotFound),
		errors.Is(err, assignment.ErrStudentNotFound),
		errors.Is(err, assignment.ErrNotAssigned):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, assignment.ErrVehicleFull),
		errors.Is(err, assignment.ErrAlreadyAssigned):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "assignment operation failed", err))
	}
}
