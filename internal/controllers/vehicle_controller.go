package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KelvenKs/SGTE/internal/apperr"
	"github.com/KelvenKs/SGTE/internal/models"
)

type VehicleController struct {
	DB        *gorm.DB
	UploadDir string
}

type createVehicleInput struct {
	Plate      string `form:"matricula" json:"matricula" binding:"required"`
	Make       string `form:"marca" json:"marca" binding:"required"`
	Inspection string `form:"inspeccao" json:"inspeccao" binding:"required"`
	Insurance  string `form:"seguro" json:"seguro" binding:"required"`
	Capacity   int    `form:"lotacao" json:"lotacao"`
	DriverID   string `form:"motorista_id" json:"motorista_id"`
}

type updateVehicleInput struct {
	Plate      *string `form:"matricula" json:"matricula"`
	Make       *string `form:"marca" json:"marca"`
	Inspection *string `form:"inspeccao" json:"inspeccao"`
	Insurance  *string `form:"seguro" json:"seguro"`
	Capacity   *int    `form:"lotacao" json:"lotacao"`
	DriverID   *string `form:"motorista_id" json:"motorista_id"`
}

func (vc *VehicleController) List(c *gin.Context) {
	var vehicles []models.Vehicle
	if err := vc.DB.Preload("Driver").Find(&vehicles).Error; err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not list vehicles", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": vehicles})
}

func (vc *VehicleController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var vehicle models.Vehicle
	if err := vc.DB.Preload("Driver").First(&vehicle, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch vehicle", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": vehicle})
}

func (vc *VehicleController) Create(c *gin.Context) {
	var input createVehicleInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Capacity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lotacao must not be negative"})
		return
	}

	driverID, ok := vc.resolveDriver(c, input.DriverID)
	if !ok {
		return
	}

	photo, err := savePhoto(c, vc.UploadDir)
	if err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not store photo", err))
		return
	}

	vehicle := models.Vehicle{
		Plate:      input.Plate,
		Make:       input.Make,
		Inspection: input.Inspection,
		Insurance:  input.Insurance,
		Photo:      photo,
		Capacity:   input.Capacity,
		DriverID:   driverID,
	}
	if err := vc.DB.Create(&vehicle).Error; err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not create vehicle", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": vehicle})
}

func (vc *VehicleController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input updateVehicleInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Capacity != nil && *input.Capacity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lotacao must be a positive integer"})
		return
	}

	var vehicle models.Vehicle
	if err := vc.DB.First(&vehicle, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch vehicle", err))
		return
	}

	if input.Plate != nil {
		vehicle.Plate = *input.Plate
	}
	if input.Make != nil {
		vehicle.Make = *input.Make
	}
	if input.Inspection != nil {
		vehicle.Inspection = *input.Inspection
	}
	if input.Insurance != nil {
		vehicle.Insurance = *input.Insurance
	}
	if input.Capacity != nil {
		vehicle.Capacity = *input.Capacity
	}
	if input.DriverID != nil {
		driverID, ok := vc.resolveDriver(c, *input.DriverID)
		if !ok {
			return
		}
		vehicle.DriverID = driverID
	}

	photo, err := savePhoto(c, vc.UploadDir)
	if err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not store photo", err))
		return
	}
	if photo != "" {
		vehicle.Photo = photo
	}

	if err := vc.DB.Save(&vehicle).Error; err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not update vehicle", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": vehicle})
}

func (vc *VehicleController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := vc.DB.Transaction(func(tx *gorm.DB) error {
		var vehicle models.Vehicle
		if err := tx.First(&vehicle, "id = ?", id).Error; err != nil {
			return err
		}
		return deleteVehicleCascade(tx, vehicle.ID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not delete vehicle", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted"})
}

// resolveDriver validates an optional motorista_id, replying 400/404 itself
// on failure. An empty raw value clears the reference.
func (vc *VehicleController) resolveDriver(c *gin.Context, raw string) (*uuid.UUID, bool) {
	if raw == "" {
		return nil, true
	}
	driverID, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid motorista_id format"})
		return nil, false
	}
	var driver models.Driver
	if err := vc.DB.First(&driver, "id = ?", driverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "driver not found"})
			return nil, false
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch driver", err))
		return nil, false
	}
	return &driverID, true
}
