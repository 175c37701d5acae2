package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KelvenKs/SGTE/internal/apperr"
	"github.com/KelvenKs/SGTE/internal/models"
)

type UserController struct {
	DB *gorm.DB
}

type createUserInput struct {
	Name     string `json:"nome" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"nivel_acesso" binding:"required"`
}

type updateUserInput struct {
	Name     *string `json:"nome"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"nivel_acesso"`
}

func (uc *UserController) List(c *gin.Context) {
	var users []models.User
	if err := uc.DB.Find(&users).Error; err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not list users", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

func (uc *UserController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var user models.User
	if err := uc.DB.Preload("Student").Preload("Driver").First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch user", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

func (uc *UserController) Create(c *gin.Context) {
	var input createUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidRole(input.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid nivel_acesso"})
		return
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not hash password", err))
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Role:     input.Role,
	}
	if err := uc.DB.Create(&user).Error; err != nil {
		if apperr.IsDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not create user", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": user})
}

// Update applies a partial merge: only supplied fields change.
func (uc *UserController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input updateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Role != nil && !models.ValidRole(*input.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid nivel_acesso"})
		return
	}

	var user models.User
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch user", err))
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Password != nil {
		hashed, err := hashPassword(*input.Password)
		if err != nil {
			apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not hash password", err))
			return
		}
		user.Password = hashed
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		if apperr.IsDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not update user", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

// Delete removes the user and its role-specific profile in one transaction.
func (uc *UserController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := uc.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Preload("Student").Preload("Driver").First(&user, "id = ?", id).Error; err != nil {
			return err
		}
		if user.Student != nil {
			if err := deleteStudentCascade(tx, user.Student.ID); err != nil {
				return err
			}
		}
		if user.Driver != nil {
			if err := deleteDriverCascade(tx, user.Driver.ID); err != nil {
				return err
			}
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not delete user", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
