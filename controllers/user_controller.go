package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"newsandniche/models"
	"newsandniche/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var googleOauthConfig *oauth2.Config

func InitGoogleOAuth() {
	googleOauthConfig = &oauth2.Config{
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URI"),
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
		Endpoint:     google.Endpoint,
	}
}

type UserController struct {
	RDB *redis.Client
}

func NewUserController(rdb *redis.Client) *UserController {
	return &UserController{RDB: rdb}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

// POST /api/auth/register
func (uc *UserController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid request"})
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	db := utils.GetDB()
	var count int64
	db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "User already exists"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to create user"})
		return
	}
	user := models.User{
		Email:     &email,
		Password:  hash,
		Name:      &req.Name,
		Role:      models.RoleUser,
		Confirmed: true,
	}
	if err := db.Create(&user).Error; err != nil {
		utils.LogError(err, "user register")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to create user"})
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Role, os.Getenv("JWT_SECRET"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to generate token"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "result": gin.H{"token": token, "user": toUserItem(user)}})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (uc *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid request"})
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	db := utils.GetDB()
	var user models.User
	if err := db.Where("email = ? AND confirmed = ?", email, true).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "User not found"})
		return
	}
	if user.GoogleID != nil && *user.GoogleID != "" && user.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "This account uses Google sign-in"})
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "result": nil, "error": "Invalid password"})
		return
	}
	token, err := utils.GenerateJWT(user.ID, user.Role, os.Getenv("JWT_SECRET"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"token": token, "user": toUserItem(user)}})
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /api/auth/forgot-password
// Mails a 6-digit reset code that lives in redis for 10 minutes.
func (uc *UserController) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid request"})
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	db := utils.GetDB()
	var count int64
	db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count == 0 {
		// Same reply either way, so the endpoint cannot be used to probe
		// which addresses have accounts.
		c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"status": "reset code sent"}})
		return
	}

	redisKey := "reset:" + email
	if ok, msg := utils.CanSendOTP(uc.RDB, redisKey); !ok {
		c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "result": nil, "error": msg})
		return
	}
	otp := utils.GenerateOTP()
	utils.MarkOTPSent(uc.RDB, redisKey)
	uc.RDB.Set(context.Background(), redisKey+":otp", otp, 10*time.Minute)

	body := fmt.Sprintf("Your News&Niche password reset code is: %s\nThe code expires in 10 minutes.", otp)
	if err := utils.SendEmail(email, "News&Niche: password reset code", body,
		os.Getenv("SMTP_HOST"), os.Getenv("SMTP_PORT"), os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS")); err != nil {
		utils.LogError(err, "forgot password mail")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to send email"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"status": "reset code sent"}})
}

type ResetPasswordRequest struct {
	Email    string `json:"email" binding:"required,email"`
	OTP      string `json:"otp" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// POST /api/auth/reset-password
func (uc *UserController) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid request"})
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx := context.Background()
	stored, err := uc.RDB.Get(ctx, "reset:"+email+":otp").Result()
	if err != nil || stored != req.OTP {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "Invalid or expired code"})
		return
	}

	db := utils.GetDB()
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "User not found"})
		return
	}
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to reset password"})
		return
	}
	user.Password = hash
	if err := db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to reset password"})
		return
	}
	uc.RDB.Del(ctx, "reset:"+email+":otp")
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"status": "password updated"}})
}

// GET /api/auth/google
func (uc *UserController) GoogleLogin(c *gin.Context) {
	url := googleOauthConfig.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GET /api/auth/google/callback
func (uc *UserController) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "missing code"})
		return
	}
	tok, err := googleOauthConfig.Exchange(context.Background(), code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "result": nil, "error": "OAuth exchange failed"})
		return
	}
	client := googleOauthConfig.Client(context.Background(), tok)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch user info"})
		return
	}
	defer resp.Body.Close()

	var info struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil || info.Email == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to parse user info"})
		return
	}

	email := strings.ToLower(info.Email)
	db := utils.GetDB()
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		user = models.User{
			Email:     &email,
			Name:      &info.Name,
			Role:      models.RoleUser,
			Confirmed: true,
			GoogleID:  &info.ID,
		}
		if err := db.Create(&user).Error; err != nil {
			utils.LogError(err, "google user create")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to create user"})
			return
		}
	} else if user.GoogleID == nil || *user.GoogleID == "" {
		user.GoogleID = &info.ID
		db.Save(&user)
	}

	jwt, err := utils.GenerateJWT(user.ID, user.Role, os.Getenv("JWT_SECRET"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"token": jwt, "user": toUserItem(user)}})
}

func toUserItem(u models.User) gin.H {
	item := gin.H{
		"id":        u.ID,
		"role":      u.Role,
		"confirmed": u.Confirmed,
	}
	if u.Email != nil {
		item["email"] = *u.Email
	}
	if u.Name != nil {
		item["name"] = *u.Name
	}
	if u.Avatar != nil {
		item["avatar"] = *u.Avatar
	}
	if u.Bio != nil {
		item["bio"] = *u.Bio
	}
	return item
}
