package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/ecomap-dev/ecomap/db"
	"github.com/ecomap-dev/ecomap/internal/models"
	"github.com/ecomap-dev/ecomap/internal/ratings"
	"github.com/ecomap-dev/ecomap/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreatePointRequest struct {
	Name      string  `json:"name" binding:"required"`
	WasteType string  `json:"waste_type" binding:"required"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func ListPoints(ctx *gin.Context) {
	var points []models.RecyclingPoint

	if err := db.DB.Preload("Owner").Order("created_at DESC").Find(&points).Error; err != nil {
		log.Printf("Failed to retrieve points: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve points"})
		return
	}

	response, err := buildPointResponses(points)

	if err != nil {
		log.Printf("Failed to build point responses: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve points"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func GetPoint(ctx *gin.Context) {
	pointID, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid point ID"})
		return
	}

	var point models.RecyclingPoint

	if err := db.DB.Preload("Owner").First(&point, pointID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Point not found"})
		} else {
			log.Printf("Failed to retrieve point %d: %v", pointID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve point"})
		}
		return
	}

	summary, err := pointSummary(point.ID)

	if err != nil {
		log.Printf("Failed to compute rating summary for point %d: %v", point.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve point"})
		return
	}

	ctx.JSON(http.StatusOK, toPointResponse(point, summary))
}

func CreatePoint(ctx *gin.Context) {
	var body CreatePointRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Name and waste type are required"})
		return
	}

	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	point := models.RecyclingPoint{
		OwnerID:   currentUser.ID,
		Name:      body.Name,
		WasteType: body.WasteType,
		Address:   body.Address,
		Latitude:  body.Latitude,
		Longitude: body.Longitude,
	}

	if err := db.DB.Create(&point).Error; err != nil {
		log.Printf("Failed to create point: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create point"})
		return
	}

	point.Owner = models.User{
		Model: gorm.Model{ID: currentUser.ID},
		Name:  currentUser.Name,
		Email: currentUser.Email,
	}

	// A fresh point has no comments yet, so the aggregate is zero.
	ctx.JSON(http.StatusCreated, toPointResponse(point, ratings.Summary{}))
}

func DeletePoint(ctx *gin.Context) {
	pointID, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid point ID"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var point models.RecyclingPoint

	if err := db.DB.First(&point, pointID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Point not found"})
		} else {
			log.Printf("Failed to retrieve point %d: %v", pointID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve point"})
		}
		return
	}

	if point.OwnerID != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only the owner can delete this point"})
		return
	}

	// The point's comments go with it, in the same transaction.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("point_id = ?", point.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&point).Error
	})

	if err != nil {
		log.Printf("Failed to delete point %d: %v", point.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete point"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Point deleted successfully"})
}
