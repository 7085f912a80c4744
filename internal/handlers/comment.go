package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/ecomap-dev/ecomap/db"
	"github.com/ecomap-dev/ecomap/internal/models"
	"github.com/ecomap-dev/ecomap/internal/types"
	"github.com/ecomap-dev/ecomap/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateCommentRequest struct {
	PointID uint   `json:"point_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Body    string `json:"body"`
}

func ListComments(ctx *gin.Context) {
	pointID, err := utils.GetIDParam(ctx, "punto_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid point ID"})
		return
	}

	var comments []models.Comment

	if err := db.DB.Preload("User").Where("point_id = ?", pointID).Order("created_at DESC").Find(&comments).Error; err != nil {
		log.Printf("Failed to retrieve comments for point %d: %v", pointID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comments"})
		return
	}

	response := make([]types.CommentResponse, 0, len(comments))

	for _, comment := range comments {
		response = append(response, types.CommentResponse{
			ID:        comment.ID,
			PointID:   comment.PointID,
			Body:      comment.Body,
			Rating:    comment.Rating,
			Author:    comment.User.Name,
			CreatedAt: comment.CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

func CreateComment(ctx *gin.Context) {
	var body CreateCommentRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Point ID and a rating between 1 and 5 are required"})
		return
	}

	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var point models.RecyclingPoint

	if err := db.DB.First(&point, body.PointID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Point not found"})
		} else {
			log.Printf("Failed to retrieve point %d: %v", body.PointID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		}
		return
	}

	comment := models.Comment{
		UserID:  currentUser.ID,
		PointID: point.ID,
		Body:    body.Body,
		Rating:  body.Rating,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		log.Printf("Failed to create comment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	summary, err := pointSummary(point.ID)

	if err != nil {
		log.Printf("Failed to compute rating summary for point %d: %v", point.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"comment": types.CommentResponse{
			ID:        comment.ID,
			PointID:   comment.PointID,
			Body:      comment.Body,
			Rating:    comment.Rating,
			Author:    currentUser.Name,
			CreatedAt: comment.CreatedAt,
		},
		"average_rating": summary.Average,
		"comment_count":  summary.Count,
	})
}

func DeleteComment(ctx *gin.Context) {
	commentID, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var comment models.Comment

	if err := db.DB.First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		} else {
			log.Printf("Failed to retrieve comment %d: %v", commentID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		}
		return
	}

	if comment.UserID != userID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only the author can delete this comment"})
		return
	}

	if err := db.DB.Delete(&comment).Error; err != nil {
		log.Printf("Failed to delete comment %d: %v", comment.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	summary, err := pointSummary(comment.PointID)

	if err != nil {
		log.Printf("Failed to compute rating summary for point %d: %v", comment.PointID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":        "Comment deleted successfully",
		"average_rating": summary.Average,
		"comment_count":  summary.Count,
	})
}

// MyComments lists the authenticated user's comments with the name of the
// point each one targets, for the profile view.
func MyComments(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var comments []models.Comment

	if err := db.DB.Preload("Point").Where("user_id = ?", userID).Order("created_at DESC").Find(&comments).Error; err != nil {
		log.Printf("Failed to retrieve comments for user %d: %v", userID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comments"})
		return
	}

	response := make([]types.CommentResponse, 0, len(comments))

	for _, comment := range comments {
		response = append(response, types.CommentResponse{
			ID:        comment.ID,
			PointID:   comment.PointID,
			Body:      comment.Body,
			Rating:    comment.Rating,
			PointName: comment.Point.Name,
			CreatedAt: comment.CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, response)
}
