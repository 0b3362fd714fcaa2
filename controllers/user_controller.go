package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pest-report/api-go/config"
	"github.com/pest-report/api-go/logger"
	"github.com/pest-report/api-go/models"
	"github.com/pest-report/api-go/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewUserController(db *gorm.DB, cfg *config.Config) *UserController {
	return &UserController{DB: db, Cfg: cfg}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: Invalid token"})
		return
	}

	var user models.User
	if err := uc.DB.First(&user, claims.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfile replaces the profile fields wholesale. A submission identical
// to the stored record is a no-op: no write, no log rows. Note that the
// client controls total_points and rank here, outside the review workflow's
// award path; see DESIGN.md before tightening this.
func (uc *UserController) UpdateProfile(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: Invalid token"})
		return
	}

	var input struct {
		Username    string `json:"username" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		Phone       string `json:"phone" binding:"required"`
		TotalPoints int    `json:"total_points"`
		Rank        string `json:"rank"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var existing models.User
	if err := uc.DB.First(&existing, claims.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	if existing.Username == input.Username &&
		existing.Email == input.Email &&
		existing.Phone == input.Phone &&
		existing.TotalPoints == input.TotalPoints &&
		existing.Rank == input.Rank {
		c.JSON(http.StatusOK, gin.H{"message": "No changes detected", "user": existing})
		return
	}

	updates := map[string]interface{}{
		"username":     input.Username,
		"email":        input.Email,
		"phone":        input.Phone,
		"total_points": input.TotalPoints,
		"rank":         input.Rank,
	}
	if err := uc.DB.Model(&models.User{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update profile"})
		return
	}

	if err := uc.DB.Create(&models.UserLog{
		UserID:  existing.ID,
		Action:  models.ActionProfileUpdated,
		Details: fmt.Sprintf("Updated profile: username=%s, email=%s, phone=%s", input.Username, input.Email, input.Phone),
	}).Error; err != nil {
		logger.L().Warn("writing profile update log failed", zap.Uint("user_id", existing.ID), zap.Error(err))
	}

	if existing.Rank != input.Rank || existing.TotalPoints != input.TotalPoints {
		if err := uc.DB.Create(&models.UserLog{
			UserID:       existing.ID,
			Action:       models.ActionRankUpdated,
			PointsChange: input.TotalPoints - existing.TotalPoints,
			OldRank:      existing.Rank,
			NewRank:      input.Rank,
			Details:      fmt.Sprintf("Rank changed from %s to %s", existing.Rank, input.Rank),
		}).Error; err != nil {
			logger.L().Warn("writing rank update log failed", zap.Uint("user_id", existing.ID), zap.Error(err))
		}
	}

	var updated models.User
	if err := uc.DB.First(&updated, existing.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": updated})
}
