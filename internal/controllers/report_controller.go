package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KelvenKs/SGTE/internal/apperr"
	"github.com/KelvenKs/SGTE/internal/models"
)

type ReportController struct {
	DB *gorm.DB
}

type createReportInput struct {
	Type string `json:"tipo" binding:"required"`
	Data string `json:"dados" binding:"required"`
}

type updateReportInput struct {
	Type *string `json:"tipo"`
	Data *string `json:"dados"`
}

func (rc *ReportController) List(c *gin.Context) {
	var reports []models.Report
	if err := rc.DB.Find(&reports).Error; err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not list reports", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": reports})
}

func (rc *ReportController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var report models.Report
	if err := rc.DB.First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch report", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": report})
}

func (rc *ReportController) Create(c *gin.Context) {
	var input createReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := models.Report{Type: input.Type, Data: input.Data}
	if err := rc.DB.Create(&report).Error; err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not create report", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": report})
}

func (rc *ReportController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input updateReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var report models.Report
	if err := rc.DB.First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch report", err))
		return
	}

	if input.Type != nil {
		report.Type = *input.Type
	}
	if input.Data != nil {
		report.Data = *input.Data
	}

	if err := rc.DB.Save(&report).Error; err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not update report", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": report})
}

func (rc *ReportController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result := rc.DB.Delete(&models.Report{}, "id = ?", id)
	if result.Error != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not delete report", result.Error))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "report deleted"})
}
