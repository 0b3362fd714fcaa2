package controllers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/pest-report/api-go/config"
	"github.com/pest-report/api-go/logger"
	"github.com/pest-report/api-go/models"
	"github.com/pest-report/api-go/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

type AuthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

func (ac *AuthController) setTokenCookie(c *gin.Context, token string) {
	secure := ac.Cfg.Environment == "production"
	c.SetCookie("token", token, int(utils.UserTokenTTL.Seconds()), "/", "", secure, true)
}

func (ac *AuthController) Signup(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Phone    string `json:"phone" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if len(input.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be at least 6 characters long"})
		return
	}
	if !phonePattern.MatchString(input.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Phone number must be exactly 10 digits"})
		return
	}

	var existing models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.L().Error("hashing password failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
		Phone:    input.Phone,
		Rank:     models.RankNovice,
	}

	// Unique indexes on username and phone catch the remaining duplicates.
	if err := ac.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username, email or phone already registered"})
		return
	}

	token, err := utils.GenerateUserToken(user.ID, ac.Cfg.JWTSecret)
	if err != nil {
		logger.L().Error("signing user token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	ac.setTokenCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
		"token":   token,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	// Unknown email and wrong password take the same exit so the response
	// reveals nothing about which one it was.
	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateUserToken(user.ID, ac.Cfg.JWTSecret)
	if err != nil {
		logger.L().Error("signing user token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	if err := ac.DB.Create(&models.UserLog{
		UserID:  user.ID,
		Action:  models.ActionLogin,
		Details: "User logged in",
	}).Error; err != nil {
		logger.L().Warn("writing login log failed", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	ac.setTokenCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
}

func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", ac.Cfg.Environment == "production", true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
