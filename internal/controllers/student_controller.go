package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KelvenKs/SGTE/internal/apperr"
	"github.com/KelvenKs/SGTE/internal/models"
)

type StudentController struct {
	DB        *gorm.DB
	UploadDir string
}

type createStudentInput struct {
	Name            string `form:"nome" json:"nome" binding:"required"`
	Email           string `form:"email" json:"email" binding:"required,email"`
	Password        string `form:"password" json:"password" binding:"required"`
	Age             int    `form:"idade" json:"idade" binding:"required"`
	GuardianContact string `form:"contacto_responsavel" json:"contacto_responsavel" binding:"required"`
	Grade           string `form:"classe" json:"classe" binding:"required"`
	Section         string `form:"turma" json:"turma" binding:"required"`
}

type updateStudentInput struct {
	Name            *string `form:"nome" json:"nome"`
	Email           *string `form:"email" json:"email"`
	Password        *string `form:"password" json:"password"`
	Age             *int    `form:"idade" json:"idade"`
	GuardianContact *string `form:"contacto_responsavel" json:"contacto_responsavel"`
	Grade           *string `form:"classe" json:"classe"`
	Section         *string `form:"turma" json:"turma"`
}

func (sc *StudentController) List(c *gin.Context) {
	var students []models.Student
	if err := sc.DB.Preload("User").Find(&students).Error; err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not list students", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": students})
}

func (sc *StudentController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var student models.Student
	if err := sc.DB.Preload("User").First(&student, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch student", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": student})
}

// Create inserts the backing User and the Student profile in one
// transaction; a failure on either side leaves no partial rows behind.
func (sc *StudentController) Create(c *gin.Context) {
	var input createStudentInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Age <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "idade must be a positive integer"})
		return
	}
	if !validContact(input.GuardianContact) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contacto_responsavel must be exactly 9 digits"})
		return
	}

	photo, err := savePhoto(c, sc.UploadDir)
	if err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not store photo", err))
		return
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not hash password", err))
		return
	}

	var student models.Student
	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Name:     input.Name,
			Email:    input.Email,
			Password: hashed,
			Role:     models.RoleStudent,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		student = models.Student{
			UserID:          user.ID,
			Age:             input.Age,
			GuardianContact: input.GuardianContact,
			Grade:           input.Grade,
			Section:         input.Section,
			Photo:           photo,
		}
		return tx.Create(&student).Error
	})
	if err != nil {
		if apperr.IsDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not create student", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": student})
}

func (sc *StudentController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input updateStudentInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Age != nil && *input.Age <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "idade must be a positive integer"})
		return
	}
	if input.GuardianContact != nil && !validContact(*input.GuardianContact) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contacto_responsavel must be exactly 9 digits"})
		return
	}

	photo, err := savePhoto(c, sc.UploadDir)
	if err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not store photo", err))
		return
	}

	var student models.Student
	if err := sc.DB.Preload("User").First(&student, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch student", err))
		return
	}

	if input.Age != nil {
		student.Age = *input.Age
	}
	if input.GuardianContact != nil {
		student.GuardianContact = *input.GuardianContact
	}
	if input.Grade != nil {
		student.Grade = *input.Grade
	}
	if input.Section != nil {
		student.Section = *input.Section
	}
	if photo != "" {
		student.Photo = photo
	}

	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		if student.User != nil {
			if input.Name != nil {
				student.User.Name = *input.Name
			}
			if input.Email != nil {
				student.User.Email = *input.Email
			}
			if input.Password != nil {
				hashed, err := hashPassword(*input.Password)
				if err != nil {
					return err
				}
				student.User.Password = hashed
			}
			if err := tx.Save(student.User).Error; err != nil {
				return err
			}
		}
		return tx.Save(&student).Error
	})
	if err != nil {
		if apperr.IsDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not update student", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": student})
}

func (sc *StudentController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := sc.DB.Transaction(func(tx *gorm.DB) error {
		var student models.Student
		if err := tx.First(&student, "id = ?", id).Error; err != nil {
			return err
		}
		return deleteStudentCascade(tx, student.ID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not delete student", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "student deleted"})
}
