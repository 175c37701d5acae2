package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KelvenKs/SGTE/internal/apperr"
	"github.com/KelvenKs/SGTE/internal/middleware"
	"github.com/KelvenKs/SGTE/internal/models"
)

type EvaluationController struct {
	DB *gorm.DB
}

type createEvaluationInput struct {
	StudentID string `json:"estudante_id" binding:"required,uuid"`
	DriverID  string `json:"motorista_id" binding:"required,uuid"`
	Rating    int    `json:"avaliacao" binding:"required"`
	Comment   string `json:"comentario"`
}

type updateEvaluationInput struct {
	Rating  *int    `json:"avaliacao"`
	Comment *string `json:"comentario"`
}

func validRating(r int) bool { return r >= 1 && r <= 5 }

func (ec *EvaluationController) List(c *gin.Context) {
	var evaluations []models.Evaluation
	if err := ec.DB.Find(&evaluations).Error; err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not list evaluations", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": evaluations})
}

func (ec *EvaluationController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var evaluation models.Evaluation
	if err := ec.DB.First(&evaluation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "evaluation not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch evaluation", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": evaluation})
}

// Create stores a rating a student gives a driver. A caller with the
// estudante role may only author evaluations for their own profile.
func (ec *EvaluationController) Create(c *gin.Context) {
	var input createEvaluationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validRating(input.Rating) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avaliacao must be between 1 and 5"})
		return
	}

	studentID := uuid.MustParse(input.StudentID)
	driverID := uuid.MustParse(input.DriverID)

	var student models.Student
	if err := ec.DB.First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch student", err))
		return
	}

	ident, _ := middleware.CurrentIdentity(c)
	if ident.Role == models.RoleStudent && student.UserID != ident.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "students may only evaluate as themselves"})
		return
	}

	var driver models.Driver
	if err := ec.DB.First(&driver, "id = ?", driverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "driver not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch driver", err))
		return
	}

	evaluation := models.Evaluation{
		StudentID: studentID,
		DriverID:  driverID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}
	if err := ec.DB.Create(&evaluation).Error; err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not create evaluation", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": evaluation})
}

func (ec *EvaluationController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input updateEvaluationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Rating != nil && !validRating(*input.Rating) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avaliacao must be between 1 and 5"})
		return
	}

	var evaluation models.Evaluation
	if err := ec.DB.First(&evaluation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "evaluation not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch evaluation", err))
		return
	}

	if input.Rating != nil {
		evaluation.Rating = *input.Rating
	}
	if input.Comment != nil {
		evaluation.Comment = *input.Comment
	}

	if err := ec.DB.Save(&evaluation).Error; err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not update evaluation", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": evaluation})
}

func (ec *EvaluationController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result := ec.DB.Delete(&models.Evaluation{}, "id = ?", id)
	if result.Error != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not delete evaluation", result.Error))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "evaluation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "evaluation deleted"})
}
