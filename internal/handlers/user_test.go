package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hiboard/hiboard-api/internal/identity"
	"github.com/hiboard/hiboard-api/internal/middleware"
	"github.com/hiboard/hiboard-api/internal/models"
	"github.com/hiboard/hiboard-api/internal/repository"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	db          *gorm.DB
	identitySrv *httptest.Server
	identityOK  bool
	router      *gin.Engine
}

// SetupTest runs before each test
func (suite *UserHandlerTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.Company{},
		&models.User{},
		&models.Activity{},
		&models.UserActivity{},
		&models.Template{},
	)
	suite.Require().NoError(err)

	suite.identityOK = true
	suite.identitySrv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !suite.identityOK {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"idToken":"token","refreshToken":"refresh","localId":"uid"}`))
	}))

	userRepo := repository.NewUserRepository(suite.db, identity.NewClient(suite.identitySrv.URL, "test-key"))
	handler := NewUserHandler(userRepo)

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	users := suite.router.Group("/api/users")
	{
		users.GET("", handler.GetUserByEmail)
		users.POST("", handler.CreateUser)
		users.GET("/:userId", handler.GetUser)
		users.GET("/:userId/employees", handler.ListEmployees)
		users.PATCH("/:userId", middleware.RequireBearerToken(), handler.UpdateUser)
		users.DELETE("/:userId", handler.DeleteUser)
	}
}

// TearDownTest runs after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.identitySrv.Close()
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *UserHandlerTestSuite) request(method, url string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *UserHandlerTestSuite) createTestUser(email string) *models.User {
	user := &models.User{
		Email:      email,
		FirstName:  "Test",
		LastName:   "User",
		Department: "Engineering",
		CompanyID:  1,
	}
	suite.db.Create(user)
	return user
}

func (suite *UserHandlerTestSuite) TestGetUserByEmail_ReturnsCountsInEnvelope() {
	user := suite.createTestUser("a@x.com")
	suite.db.Create(&models.UserActivity{ActivityID: 1, UserID: user.ID, Status: models.StatusDone})

	w := suite.request("GET", "/api/users?email=a@x.com", nil, nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Data struct {
			ID                  uint64 `json:"id"`
			TotalActivities     int64  `json:"total_activities"`
			CompletedActivities int64  `json:"completed_activities"`
		} `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), user.ID, response.Data.ID)
	assert.Equal(suite.T(), int64(1), response.Data.TotalActivities)
	assert.Equal(suite.T(), int64(1), response.Data.CompletedActivities)
}

func (suite *UserHandlerTestSuite) TestCreate_DuplicateEmailIs409() {
	suite.createTestUser("dup@example.com")
	body, _ := json.Marshal(map[string]interface{}{
		"email":      "dup@example.com",
		"password":   "secret",
		"company_id": 1,
	})

	w := suite.request("POST", "/api/users", body, nil)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *UserHandlerTestSuite) TestCreate_ProviderFailureIs502() {
	suite.identityOK = false
	body, _ := json.Marshal(map[string]interface{}{
		"email":      "new@example.com",
		"password":   "secret",
		"company_id": 1,
	})

	w := suite.request("POST", "/api/users", body, nil)

	assert.Equal(suite.T(), http.StatusBadGateway, w.Code)

	var count int64
	suite.db.Model(&models.User{}).Count(&count)
	assert.Zero(suite.T(), count)
}

func (suite *UserHandlerTestSuite) TestUpdate_WithoutBearerTokenIs401() {
	user := suite.createTestUser("a@x.com")
	body, _ := json.Marshal(map[string]interface{}{"first_name": "New"})

	w := suite.request("PATCH", fmt.Sprintf("/api/users/%d", user.ID), body, nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *UserHandlerTestSuite) TestUpdate_WithBearerToken() {
	user := suite.createTestUser("a@x.com")
	body, _ := json.Marshal(map[string]interface{}{
		"email":      "a@x.com",
		"first_name": "Renamed",
	})

	w := suite.request("PATCH", fmt.Sprintf("/api/users/%d", user.ID), body,
		map[string]string{"Authorization": "Bearer token-abc"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var stored models.User
	suite.db.First(&stored, user.ID)
	assert.Equal(suite.T(), "Renamed", stored.FirstName)
}

func (suite *UserHandlerTestSuite) TestDelete_Returns204Then404() {
	user := suite.createTestUser("bye@example.com")

	w := suite.request("DELETE", fmt.Sprintf("/api/users/%d", user.ID), nil, nil)
	assert.Equal(suite.T(), http.StatusNoContent, w.Code)

	second := suite.request("DELETE", fmt.Sprintf("/api/users/%d", user.ID), nil, nil)
	assert.Equal(suite.T(), http.StatusNotFound, second.Code)
}

func (suite *UserHandlerTestSuite) TestListEmployees_ReturnsEnvelope() {
	manager := suite.createTestUser("boss@example.com")
	employee := suite.createTestUser("emp@example.com")
	suite.db.Model(employee).Update("manager_id", manager.ID)

	w := suite.request("GET", fmt.Sprintf("/api/users/%d/employees", manager.ID), nil, nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Data []struct {
			Email string `json:"email"`
		} `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Data, 1)
	assert.Equal(suite.T(), "emp@example.com", response.Data[0].Email)
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
