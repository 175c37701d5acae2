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

type RouteController struct {
	DB *gorm.DB
}

type createRouteInput struct {
	ArrivalTime   string `json:"hora_chegada" binding:"required"`
	DepartureTime string `json:"hora_partida" binding:"required"`
	Description   string `json:"descricao" binding:"required"`
	VehicleID     string `json:"viatura_id"`
}

type updateRouteInput struct {
	ArrivalTime   *string `json:"hora_chegada"`
	DepartureTime *string `json:"hora_partida"`
	Description   *string `json:"descricao"`
	VehicleID     *string `json:"viatura_id"`
}

func (rc *RouteController) List(c *gin.Context) {
	var routes []models.Route
	if err := rc.DB.Preload("Vehicle").Find(&routes).Error; err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not list routes", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": routes})
}

func (rc *RouteController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var route models.Route
	if err := rc.DB.Preload("Vehicle").First(&route, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch route", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": route})
}

func (rc *RouteController) Create(c *gin.Context) {
	var input createRouteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicleID, ok := rc.resolveVehicle(c, input.VehicleID)
	if !ok {
		return
	}

	route := models.Route{
		ArrivalTime:   input.ArrivalTime,
		DepartureTime: input.DepartureTime,
		Description:   input.Description,
		VehicleID:     vehicleID,
	}
	if err := rc.DB.Create(&route).Error; err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not create route", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": route})
}

func (rc *RouteController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input updateRouteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var route models.Route
	if err := rc.DB.First(&route, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch route", err))
		return
	}

	if input.ArrivalTime != nil {
		route.ArrivalTime = *input.ArrivalTime
	}
	if input.DepartureTime != nil {
		route.DepartureTime = *input.DepartureTime
	}
	if input.Description != nil {
		route.Description = *input.Description
	}
	if input.VehicleID != nil {
		vehicleID, ok := rc.resolveVehicle(c, *input.VehicleID)
		if !ok {
			return
		}
		route.VehicleID = vehicleID
	}

	if err := rc.DB.Save(&route).Error; err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not update route", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": route})
}

func (rc *RouteController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := rc.DB.Transaction(func(tx *gorm.DB) error {
		var route models.Route
		if err := tx.First(&route, "id = ?", id).Error; err != nil {
			return err
		}
		return deleteRouteCascade(tx, route.ID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not delete route", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "route deleted"})
}

func (rc *RouteController) resolveVehicle(c *gin.Context, raw string) (*uuid.UUID, bool) {
	if raw == "" {
		return nil, true
	}
	vehicleID, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid viatura_id format"})
		return nil, false
	}
	var vehicle models.Vehicle
	if err := rc.DB.First(&vehicle, "id = ?", vehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
			return nil, false
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not fetch vehicle", err))
		return nil, false
	}
	return &vehicleID, true
}
