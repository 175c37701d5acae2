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

type DriverRouteController struct {
	DB *gorm.DB
}

type createDriverRouteInput struct {
	DriverID string `json:"motorista_id" binding:"required,uuid"`
	RouteID  string `json:"rota_id" binding:"required,uuid"`
}

func (dc *DriverRouteController) List(c *gin.Context) {
	var links []models.DriverRoute
	if err := dc.DB.Preload("Driver").Preload("Route").Find(&links).Error; err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not list driver routes", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": links})
}

func (dc *DriverRouteController) Create(c *gin.Context) {
	var input createDriverRouteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driverID := uuid.MustParse(input.DriverID)
	routeID := uuid.MustParse(input.RouteID)

	var driver models.Driver
	if err := dc.DB.First(&driver, "id = ?", driverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "driver not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch driver", err))
		return
	}
	var route models.Route
	if err := dc.DB.First(&route, "id = ?", routeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch route", err))
		return
	}

	link := models.DriverRoute{DriverID: driverID, RouteID: routeID}
	if err := dc.DB.Create(&link).Error; err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not create driver route", err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": link})
}

func (dc *DriverRouteController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result := dc.DB.Delete(&models.DriverRoute{}, "id = ?", id)
	if result.Error != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not delete driver route", result.Error))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "driver route not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "driver route deleted"})
}
