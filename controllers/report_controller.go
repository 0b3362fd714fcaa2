package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pest-report/api-go/config"
	"github.com/pest-report/api-go/logger"
	"github.com/pest-report/api-go/models"
	"github.com/pest-report/api-go/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ReportController struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Storage PhotoStorage
}

func NewReportController(db *gorm.DB, cfg *config.Config, storage PhotoStorage) *ReportController {
	return &ReportController{DB: db, Cfg: cfg, Storage: storage}
}

// parsePestTypes accepts either repeated pestTypes form values or a single
// value holding a JSON array.
func parsePestTypes(values []string) ([]string, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("at least one pest type is required")
	}
	if len(values) == 1 && strings.HasPrefix(strings.TrimSpace(values[0]), "[") {
		var parsed []string
		if err := json.Unmarshal([]byte(values[0]), &parsed); err != nil {
			return nil, fmt.Errorf("invalid pestTypes value")
		}
		values = parsed
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("at least one pest type is required")
	}
	return values, nil
}

// CreateReport handles the multipart submission. All photo constraints are
// checked before anything is written, so a rejected upload leaves no report
// and no files behind.
func (rc *ReportController) CreateReport(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: Missing user ID"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid multipart form"})
		return
	}

	location := c.PostForm("location")
	description := c.PostForm("description")
	if location == "" || description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Location and description are required"})
		return
	}

	pestTypes, err := parsePestTypes(form.Value["pestTypes"])
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	files := form.File["photos"]
	if len(files) > models.MaxReportPhotos {
		c.JSON(http.StatusBadRequest, gin.H{"message": "You can upload a maximum of 5 images"})
		return
	}
	for _, file := range files {
		if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Only image files are allowed"})
			return
		}
		if file.Size > models.MaxPhotoSizeBytes {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Each image must be 5MB or smaller"})
			return
		}
	}

	photos := make([]string, 0, len(files))
	for _, file := range files {
		path, err := rc.Storage.SavePhoto(c.Request.Context(), file, claims.UserID)
		if err != nil {
			logger.L().Error("storing report photo failed", zap.Uint("user_id", claims.UserID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		photos = append(photos, path)
	}

	report := models.PestReport{
		UserID:      claims.UserID,
		Location:    location,
		PestTypes:   pestTypes,
		Description: description,
		Photos:      photos,
		Status:      models.StatusPending,
	}

	if err := rc.DB.Create(&report).Error; err != nil {
		logger.L().Error("creating report failed", zap.Uint("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	if err := rc.DB.Create(&models.UserLog{
		UserID:  claims.UserID,
		Action:  models.ActionReportSubmitted,
		Details: fmt.Sprintf("Submitted report %d for %s", report.ID, location),
	}).Error; err != nil {
		logger.L().Warn("writing report submission log failed", zap.Uint("user_id", claims.UserID), zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Report submitted successfully", "report": report})
}

// GetMyReports lists the caller's reports, newest submission first. The
// listing is intentionally unpaginated; only the admin view pages.
func (rc *ReportController) GetMyReports(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: Missing user ID"})
		return
	}

	reports := []models.PestReport{}
	if err := rc.DB.Where("user_id = ?", claims.UserID).
		Order("submitted_at desc").
		Find(&reports).Error; err != nil {
		logger.L().Error("listing user reports failed", zap.Uint("user_id", claims.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, reports)
}
