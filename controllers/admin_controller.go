package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pest-report/api-go/config"
	"github.com/pest-report/api-go/logger"
	"github.com/pest-report/api-go/models"
	"github.com/pest-report/api-go/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAdminController(db *gorm.DB, cfg *config.Config) *AdminController {
	return &AdminController{DB: db, Cfg: cfg}
}

func (ac *AdminController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide email and password."})
		return
	}

	if ac.Cfg.JWTSecret == "" {
		logger.L().Error("JWT secret is not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server configuration error"})
		return
	}

	var admin models.Admin
	if err := ac.DB.Where("email = ?", input.Email).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials."})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials."})
		return
	}

	token, err := utils.GenerateAdminToken(admin.ID, admin.Email, ac.Cfg.JWTSecret)
	if err != nil {
		logger.L().Error("signing admin token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (ac *AdminController) GetAllReports(c *gin.Context) {
	params := pageParams{Page: 1, Limit: 12}
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if params.Limit == 0 {
		params.Limit = 12
	}

	reports := []models.PestReport{}
	if err := ac.DB.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "email")
		}).
		Order("submitted_at desc").
		Offset(params.offset()).
		Limit(params.Limit).
		Find(&reports).Error; err != nil {
		logger.L().Error("listing reports failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	var totalCount int64
	if err := ac.DB.Model(&models.PestReport{}).Count(&totalCount).Error; err != nil {
		logger.L().Error("counting reports failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reports":     reports,
		"currentPage": params.Page,
		"totalPages":  totalPages(totalCount, params.Limit),
		"totalCount":  totalCount,
	})
}

// UpdateReportStatus is the review workflow. Pending -> Verified or
// Pending -> Invalid, both terminal. A Verified transition awards the owner
// five points and recomputes their rank over the new total. The user write
// and the report write are deliberately independent: a failed award is
// logged, never returned, and never blocks the status change.
func (ac *AdminController) UpdateReportStatus(c *gin.Context) {
	admin := utils.GetAdmin(c)
	if admin == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value provided."})
		return
	}
	if input.Status != models.StatusVerified && input.Status != models.StatusInvalid {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value provided."})
		return
	}

	reportID, err := strconv.ParseUint(c.Param("reportId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid report ID format."})
		return
	}

	var report models.PestReport
	if err := ac.DB.First(&report, uint(reportID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Report not found."})
		return
	}

	if report.Status == input.Status {
		c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("Report is already marked as %s.", input.Status)})
		return
	}

	report.Status = input.Status
	report.VerifiedBy = &admin.AdminID

	if input.Status == models.StatusVerified {
		ac.awardPoints(&report)
	}

	// The report write goes through regardless of how the award went.
	if err := ac.DB.Save(&report).Error; err != nil {
		logger.L().Error("saving report status failed", zap.Uint("report_id", report.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	if err := ac.DB.Create(&models.AdminAction{
		AdminID:  admin.AdminID,
		ReportID: report.ID,
		Action:   input.Status,
	}).Error; err != nil {
		logger.L().Warn("writing admin action audit failed", zap.Uint("report_id", report.ID), zap.Error(err))
	}

	c.JSON(http.StatusOK, report)
}

// awardPoints credits the report owner for a verified report. Every failure
// path here is operational only: missing owner is a warning, a failed write
// is an error, and neither reaches the caller.
func (ac *AdminController) awardPoints(report *models.PestReport) {
	var user models.User
	if err := ac.DB.First(&user, report.UserID).Error; err != nil {
		logger.L().Warn("report owner not found for point award",
			zap.Uint("report_id", report.ID),
			zap.Uint("user_id", report.UserID),
		)
		return
	}

	oldRank := user.Rank
	oldPoints := user.TotalPoints
	user.TotalPoints += models.PointsPerVerifiedReport
	user.Rank = models.RankForPoints(user.TotalPoints)

	if err := ac.DB.Save(&user).Error; err != nil {
		logger.L().Error("point award write failed after report verification",
			zap.Uint("report_id", report.ID),
			zap.Uint("user_id", user.ID),
			zap.Error(err),
		)
		return
	}

	if err := ac.DB.Create(&models.UserLog{
		UserID:       user.ID,
		Action:       models.ActionRankUpdated,
		PointsChange: user.TotalPoints - oldPoints,
		OldRank:      oldRank,
		NewRank:      user.Rank,
		Details:      fmt.Sprintf("Awarded %d points for verified report %d", models.PointsPerVerifiedReport, report.ID),
	}).Error; err != nil {
		logger.L().Warn("writing rank update log failed", zap.Uint("user_id", user.ID), zap.Error(err))
	}
}

func (ac *AdminController) GetUserRankings(c *gin.Context) {
	order := "total_points asc"
	if c.Query("sort") == "desc" {
		order = "total_points desc"
	}

	users := []models.User{}
	if err := ac.DB.
		Select("id", "username", "email", "total_points", "rank").
		Order(order).
		Find(&users).Error; err != nil {
		logger.L().Error("listing rankings failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUserByID distinguishes a malformed id (400) from a well-formed id that
// matches nothing (404).
func (ac *AdminController) GetUserByID(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID format."})
		return
	}

	var user models.User
	if err := ac.DB.First(&user, uint(userID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (ac *AdminController) GetActivityLogs(c *gin.Context) {
	params := pageParams{Page: 1, Limit: 20}
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if params.Limit == 0 {
		params.Limit = 20
	}

	logs := []models.UserLog{}
	if err := ac.DB.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "email")
		}).
		Order("timestamp desc").
		Offset(params.offset()).
		Limit(params.Limit).
		Find(&logs).Error; err != nil {
		logger.L().Error("listing activity logs failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	var totalCount int64
	if err := ac.DB.Model(&models.UserLog{}).Count(&totalCount).Error; err != nil {
		logger.L().Error("counting activity logs failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs":        logs,
		"currentPage": params.Page,
		"totalPages":  totalPages(totalCount, params.Limit),
		"totalCount":  totalCount,
	})
}
