package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KelvenKs/SGTE/internal/apperr"
	"github.com/KelvenKs/SGTE/internal/models"
)

type DriverController struct {
	DB        *gorm.DB
	UploadDir string
}

type createDriverInput struct {
	Name           string `form:"nome" json:"nome" binding:"required"`
	Email          string `form:"email" json:"email" binding:"required,email"`
	Password       string `form:"password" json:"password" binding:"required"`
	License        string `form:"licenca" json:"licenca" binding:"required"`
	CriminalRecord string `form:"registo_criminal" json:"registo_criminal" binding:"required"`
	Contact        string `form:"contacto" json:"contacto" binding:"required"`
}

// updateDriverInput covers both driver fields and the backing user's fields.
type updateDriverInput struct {
	Name           *string `form:"nome" json:"nome"`
	Email          *string `form:"email" json:"email"`
	Password       *string `form:"password" json:"password"`
	License        *string `form:"licenca" json:"licenca"`
	CriminalRecord *string `form:"registo_criminal" json:"registo_criminal"`
	Contact        *string `form:"contacto" json:"contacto"`
}

func (dc *DriverController) List(c *gin.Context) {
	var drivers []models.Driver
	if err := dc.DB.Preload("User").Find(&drivers).Error; err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not list drivers", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": drivers})
}

func (dc *DriverController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var driver models.Driver
	if err := dc.DB.Preload("User").First(&driver, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "driver not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch driver", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": driver})
}

// Create inserts the backing User and the Driver profile in one transaction;
// a failure on either side leaves no partial rows behind.
func (dc *DriverController) Create(c *gin.Context) {
	var input createDriverInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validContact(input.Contact) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contacto must be exactly 9 digits"})
		return
	}

	photo, err := savePhoto(c, dc.UploadDir)
	if err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not store photo", err))
		return
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not hash password", err))
		return
	}

	var driver models.Driver
	err = dc.DB.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Name:     input.Name,
			Email:    input.Email,
			Password: hashed,
			Role:     models.RoleDriver,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		driver = models.Driver{
			UserID:         user.ID,
			License:        input.License,
			CriminalRecord: input.CriminalRecord,
			Contact:        input.Contact,
			Photo:          photo,
		}
		return tx.Create(&driver).Error
	})
	if err != nil {
		if apperr.IsDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not create driver", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": driver})
}

func (dc *DriverController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input updateDriverInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Contact != nil && !validContact(*input.Contact) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contacto must be exactly 9 digits"})
		return
	}

	photo, err := savePhoto(c, dc.UploadDir)
	if err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not store photo", err))
		return
	}

	var driver models.Driver
	if err := dc.DB.Preload("User").First(&driver, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "driver not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch driver", err))
		return
	}

	if input.License != nil {
		driver.License = *input.License
	}
	if input.CriminalRecord != nil {
		driver.CriminalRecord = *input.CriminalRecord
	}
	if input.Contact != nil {
		driver.Contact = *input.Contact
	}
	if photo != "" {
		driver.Photo = photo
	}

	err = dc.DB.Transaction(func(tx *gorm.DB) error {
		if driver.User != nil {
			if input.Name != nil {
				driver.User.Name = *input.Name
			}
			if input.Email != nil {
				driver.User.Email = *input.Email
			}
			if input.Password != nil {
				hashed, err := hashPassword(*input.Password)
				if err != nil {
					return err
				}
				driver.User.Password = hashed
			}
			if err := tx.Save(driver.User).Error; err != nil {
				return err
			}
		}
		return tx.Save(&driver).Error
	})
	if err != nil {
		if apperr.IsDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not update driver", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": driver})
}

func (dc *DriverController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := dc.DB.Transaction(func(tx *gorm.DB) error {
		var driver models.Driver
		if err := tx.First(&driver, "id = ?", id).Error; err != nil {
			return err
		}
		return deleteDriverCascade(tx, driver.ID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "driver not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not delete driver", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "driver deleted"})
}
