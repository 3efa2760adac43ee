// internal/handlers/auth_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/warehouse414/catalog-backend/internal/config"
	"github.com/warehouse414/catalog-backend/internal/middleware"
	"github.com/warehouse414/catalog-backend/internal/utils"
)

type AuthTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *AuthTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	utils.SetJWTSecret("test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse battery"), bcrypt.MinCost)
	suite.Require().NoError(err)

	cfg := &config.Config{
		Admin: config.AdminConfig{
			Email:        "admin@warehouse414.com",
			PasswordHash: string(hash),
		},
		JWT: config.JWTConfig{AccessTokenTTL: 1},
	}

	authHandler := NewAuthHandler(cfg)

	suite.router = gin.New()
	admin := suite.router.Group("/admin")
	{
		admin.POST("/login", authHandler.Login)
		admin.GET("/me", middleware.AdminRequired(), authHandler.Me)
	}
}

func (suite *AuthTestSuite) login(email, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(gin.H{"email": email, "password": password})
	req, _ := http.NewRequest("POST", "/admin/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthTestSuite) TestLoginSuccess() {
	w := suite.login("admin@warehouse414.com", "correct horse battery")

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), response["success"].(bool))

	data := response["data"].(map[string]interface{})
	assert.NotEmpty(suite.T(), data["token"])
}

func (suite *AuthTestSuite) TestLoginWrongPassword() {
	w := suite.login("admin@warehouse414.com", "incorrect")

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *AuthTestSuite) TestLoginWrongEmail() {
	w := suite.login("intruder@example.com", "correct horse battery")

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *AuthTestSuite) TestMeRequiresToken() {
	req, _ := http.NewRequest("GET", "/admin/me", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *AuthTestSuite) TestMeWithToken() {
	loginResp := suite.login("admin@warehouse414.com", "correct horse battery")
	suite.Require().Equal(http.StatusOK, loginResp.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(loginResp.Body.Bytes(), &response))
	token := response["data"].(map[string]interface{})["token"].(string)

	req, _ := http.NewRequest("GET", "/admin/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "admin@warehouse414.com")
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}
