package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KelvenKs/SGTE/internal/apperr"
	"github.com/KelvenKs/SGTE/internal/models"
)

type AttendanceController struct {
	DB *gorm.DB
}

type createAttendanceInput struct {
	StudentID string `json:"estudante_id" binding:"required,uuid"`
	VehicleID string `json:"viatura_id" binding:"required,uuid"`
	Date      string `json:"data" binding:"required"`
}

// List returns attendance records, optionally filtered by viatura_id and/or
// data (YYYY-MM-DD) query parameters.
func (ac *AttendanceController) List(c *gin.Context) {
	query := ac.DB.Model(&models.Attendance{})

	if raw := c.Query("viatura_id"); raw != "" {
		vehicleID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid viatura_id format"})
			return
		}
		query = query.Where("vehicle_id = ?", vehicleID)
	}
	if raw := c.Query("data"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid data format, expected YYYY-MM-DD"})
			return
		}
		query = query.Where("date = ?", date)
	}

	var attendances []models.Attendance
	if err := query.Find(&attendances).Error; err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not list attendances", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": attendances})
}

func (ac *AttendanceController) Create(c *gin.Context) {
	var input createAttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid data format, expected YYYY-MM-DD"})
		return
	}

	studentID := uuid.MustParse(input.StudentID)
	vehicleID := uuid.MustParse(input.VehicleID)

	var student models.Student
	if err := ac.DB.First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch student", err))
		return
	}
	var vehicle models.Vehicle
	if err := ac.DB.First(&vehicle, "id = ?", vehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch vehicle", err))
		return
	}

	attendance := models.Attendance{
		StudentID: studentID,
		VehicleID: vehicleID,
		Date:      date,
	}
	if err := ac.DB.Create(&attendance).Error; err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not create attendance", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": attendance})
}

func (ac *AttendanceController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result := ac.DB.Delete(&models.Attendance{}, "id = ?", id)
	if result.Error != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not delete attendance", result.Error))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "attendance not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "attendance deleted"})
}
