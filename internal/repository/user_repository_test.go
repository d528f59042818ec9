package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hiboard/hiboard-api/internal/dto"
	"github.com/hiboard/hiboard-api/internal/identity"
	"github.com/hiboard/hiboard-api/internal/models"
)

// fakeIdentityServer counts identity-provider calls and can be switched to
// fail every request.
type fakeIdentityServer struct {
	srv   *httptest.Server
	calls int
	fail  bool
}

func newFakeIdentityServer() *fakeIdentityServer {
	f := &fakeIdentityServer{}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls++
		if f.fail {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"message":"OPERATION_NOT_ALLOWED"}}`))
			return
		}
		w.Write([]byte(`{"idToken":"token","refreshToken":"refresh","localId":"uid"}`))
	}))
	return f
}

// UserRepositoryTestSuite defines the test suite for GormUserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	db       *gorm.DB
	identity *fakeIdentityServer
	repo     UserRepository
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
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

	suite.identity = newFakeIdentityServer()
	suite.repo = NewUserRepository(suite.db, identity.NewClient(suite.identity.srv.URL, "test-key"))
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.identity.srv.Close()
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *UserRepositoryTestSuite) createTestCompany() *models.Company {
	company := &models.Company{
		Name:        "Test Co",
		Departments: models.StringList{"Engineering", "Sales"},
	}
	suite.db.Create(company)
	return company
}

func (suite *UserRepositoryTestSuite) createTestUser(email string, managerID *uint64) *models.User {
	company := suite.createTestCompany()
	user := &models.User{
		Email:      email,
		FirstName:  "Test",
		LastName:   "User",
		Department: "Engineering",
		CompanyID:  company.ID,
		ManagerID:  managerID,
	}
	suite.db.Create(user)
	return user
}

func (suite *UserRepositoryTestSuite) createUserActivity(userID uint64, status models.ActivityStatus) {
	suite.db.Create(&models.UserActivity{
		ActivityID: 1,
		UserID:     userID,
		Status:     status,
	})
}

func (suite *UserRepositoryTestSuite) TestListEmployeesOf_AnnotatesCounts() {
	manager := suite.createTestUser("boss@example.com", nil)
	employee := suite.createTestUser("emp@example.com", &manager.ID)

	suite.createUserActivity(employee.ID, models.StatusPending)
	suite.createUserActivity(employee.ID, models.StatusDone)
	suite.createUserActivity(employee.ID, models.StatusDone)

	employees, err := suite.repo.ListEmployeesOf(context.Background(), manager.ID)

	suite.Require().NoError(err)
	suite.Require().Len(employees, 1)
	assert.Equal(suite.T(), employee.ID, employees[0].ID)
	assert.Equal(suite.T(), int64(3), employees[0].TotalActivities)
	assert.Equal(suite.T(), int64(2), employees[0].CompletedActivities)
	assert.LessOrEqual(suite.T(), employees[0].CompletedActivities, employees[0].TotalActivities)
}

func (suite *UserRepositoryTestSuite) TestListEmployeesOf_ExcludesSoftDeleted() {
	manager := suite.createTestUser("boss@example.com", nil)
	kept := suite.createTestUser("kept@example.com", &manager.ID)
	gone := suite.createTestUser("gone@example.com", &manager.ID)

	suite.Require().NoError(suite.repo.Delete(context.Background(), gone.ID))

	employees, err := suite.repo.ListEmployeesOf(context.Background(), manager.ID)

	suite.Require().NoError(err)
	suite.Require().Len(employees, 1)
	assert.Equal(suite.T(), kept.ID, employees[0].ID)
}

func (suite *UserRepositoryTestSuite) TestListEmployeesOf_EmptyIsNotAnError() {
	employees, err := suite.repo.ListEmployeesOf(context.Background(), 999)

	suite.Require().NoError(err)
	assert.Empty(suite.T(), employees)
}

func (suite *UserRepositoryTestSuite) TestFindByEmail_AnnotatesCounts() {
	user := suite.createTestUser("a@x.com", nil)
	suite.createUserActivity(user.ID, models.StatusDone)
	suite.createUserActivity(user.ID, models.StatusPending)

	found, err := suite.repo.FindByEmail(context.Background(), "a@x.com")

	suite.Require().NoError(err)
	assert.Equal(suite.T(), user.ID, found.ID)
	assert.Equal(suite.T(), int64(2), found.TotalActivities)
	assert.Equal(suite.T(), int64(1), found.CompletedActivities)
}

func (suite *UserRepositoryTestSuite) TestFindByEmail_NotFound() {
	_, err := suite.repo.FindByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(suite.T(), err, ErrUserNotFound)
}

func (suite *UserRepositoryTestSuite) TestFindByID_NotFound() {
	_, err := suite.repo.FindByID(context.Background(), 42)
	assert.ErrorIs(suite.T(), err, ErrUserNotFound)
}

func (suite *UserRepositoryTestSuite) TestCreate_RegistersAccountAndPersists() {
	company := suite.createTestCompany()

	created, err := suite.repo.Create(context.Background(), dto.UserDTO{
		Email:      "new@example.com",
		Password:   "secret",
		FirstName:  "New",
		LastName:   "Hire",
		Department: "Engineering",
		CompanyID:  company.ID,
	}, 7)

	suite.Require().NoError(err)
	assert.NotZero(suite.T(), created.ID)
	suite.Require().NotNil(created.ManagerID)
	assert.Equal(suite.T(), uint64(7), *created.ManagerID)
	assert.Equal(suite.T(), 1, suite.identity.calls)

	var count int64
	suite.db.Model(&models.User{}).Where("email = ?", "new@example.com").Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *UserRepositoryTestSuite) TestCreate_DuplicateEmailSkipsProvider() {
	existing := suite.createTestUser("dup@example.com", nil)

	_, err := suite.repo.Create(context.Background(), dto.UserDTO{
		Email:     "dup@example.com",
		Password:  "secret",
		CompanyID: existing.CompanyID,
	}, 0)

	assert.ErrorIs(suite.T(), err, ErrUserAlreadyExists)
	assert.Zero(suite.T(), suite.identity.calls)

	var count int64
	suite.db.Model(&models.User{}).Where("email = ?", "dup@example.com").Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *UserRepositoryTestSuite) TestCreate_ProviderFailureLeavesNoRow() {
	company := suite.createTestCompany()
	suite.identity.fail = true

	_, err := suite.repo.Create(context.Background(), dto.UserDTO{
		Email:     "fail@example.com",
		Password:  "secret",
		CompanyID: company.ID,
	}, 0)

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, identity.ErrUpstream)

	var count int64
	suite.db.Model(&models.User{}).Where("email = ?", "fail@example.com").Count(&count)
	assert.Zero(suite.T(), count)
}

func (suite *UserRepositoryTestSuite) TestUpdate_NonSecurityFieldsSkipProvider() {
	user := suite.createTestUser("same@example.com", nil)

	updated, err := suite.repo.Update(context.Background(), user.ID, dto.UserDTO{
		Email:     "same@example.com",
		FirstName: "Renamed",
		LastName:  "Person",
	}, "token")

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Renamed", updated.FirstName)
	assert.Zero(suite.T(), suite.identity.calls)
}

func (suite *UserRepositoryTestSuite) TestUpdate_NewPasswordCallsProvider() {
	user := suite.createTestUser("pw@example.com", nil)

	_, err := suite.repo.Update(context.Background(), user.ID, dto.UserDTO{
		Email:       "pw@example.com",
		NewPassword: "changed",
	}, "token")

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 1, suite.identity.calls)
}

func (suite *UserRepositoryTestSuite) TestUpdate_ChangedEmailCallsProviderAndPersists() {
	user := suite.createTestUser("old@example.com", nil)

	updated, err := suite.repo.Update(context.Background(), user.ID, dto.UserDTO{
		Email: "new@example.com",
	}, "token")

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "new@example.com", updated.Email)
	assert.Equal(suite.T(), 1, suite.identity.calls)
}

func (suite *UserRepositoryTestSuite) TestUpdate_ProviderFailureAbortsLocalWrite() {
	user := suite.createTestUser("keep@example.com", nil)
	suite.identity.fail = true

	_, err := suite.repo.Update(context.Background(), user.ID, dto.UserDTO{
		Email:     "other@example.com",
		FirstName: "Should Not Persist",
	}, "token")

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, identity.ErrUpstream)

	var stored models.User
	suite.db.First(&stored, user.ID)
	assert.Equal(suite.T(), "keep@example.com", stored.Email)
	assert.Equal(suite.T(), "Test", stored.FirstName)
}

func (suite *UserRepositoryTestSuite) TestUpdate_NotFound() {
	_, err := suite.repo.Update(context.Background(), 42, dto.UserDTO{}, "token")
	assert.ErrorIs(suite.T(), err, ErrUserNotFound)
}

func (suite *UserRepositoryTestSuite) TestDelete_IsIdempotentInEffect() {
	user := suite.createTestUser("bye@example.com", nil)

	suite.Require().NoError(suite.repo.Delete(context.Background(), user.ID))

	_, err := suite.repo.FindByID(context.Background(), user.ID)
	assert.ErrorIs(suite.T(), err, ErrUserNotFound)

	err = suite.repo.Delete(context.Background(), user.ID)
	assert.ErrorIs(suite.T(), err, ErrUserNotFound)

	// The row still exists physically, only flagged
	var count int64
	suite.db.Unscoped().Model(&models.User{}).Where("email = ?", "bye@example.com").Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
