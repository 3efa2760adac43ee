// internal/handlers/auth.go
package handlers

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/warehouse414/catalog-backend/internal/config"
	"github.com/warehouse414/catalog-backend/internal/utils"
)

// AuthHandler authenticates the single back-office account. There is no
// user table; the credential lives in configuration as a bcrypt hash.
type AuthHandler struct {
	config *config.Config
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{config: cfg}
}

// POST /admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	emailMatch := subtle.ConstantTimeCompare([]byte(req.Email), []byte(h.config.Admin.Email)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(h.config.Admin.PasswordHash), []byte(req.Password))

	if !emailMatch || passwordErr != nil {
		logrus.WithField("email", req.Email).Warn("failed admin login attempt")
		utils.UnauthorizedResponse(c, "Invalid credentials")
		return
	}

	token, err := utils.GenerateAdminJWT(h.config.Admin.Email, h.config.JWT.AccessTokenTTL)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to issue token")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"token":      token,
		"expires_in": h.config.JWT.AccessTokenTTL * 3600,
	})
}

// GET /admin/me
func (h *AuthHandler) Me(c *gin.Context) {
	email, ok := utils.GetAdminEmailFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{"email": email})
}
