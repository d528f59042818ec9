package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiboard/hiboard-api/internal/models"
)

func TestToUserModel_DropsPasswords(t *testing.T) {
	managerID := uint64(7)
	user := ToUserModel(UserDTO{
		ID:          3,
		Email:       "a@x.com",
		Password:    "secret",
		NewPassword: "changed",
		FirstName:   "Ada",
		Role:        models.RoleManager,
		CompanyID:   1,
		ManagerID:   &managerID,
	})

	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, models.RoleManager, user.Role)
	require.NotNil(t, user.ManagerID)
	assert.Equal(t, uint64(7), *user.ManagerID)
}

func TestUserDTO_PasswordsNeverSerializedWhenEmpty(t *testing.T) {
	dto := ToUserDTO(models.User{ID: 3, Email: "a@x.com"})

	data, err := json.Marshal(dto)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "password")
	assert.NotContains(t, string(data), "new_password")
}

func TestToUserDTO_RoundTripsCoreFields(t *testing.T) {
	dto := ToUserDTO(models.User{
		ID:         3,
		Email:      "a@x.com",
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Department: "Engineering",
		CompanyID:  1,
	})

	assert.Equal(t, uint64(3), dto.ID)
	assert.Equal(t, "Ada", dto.FirstName)
	assert.Equal(t, "Lovelace", dto.LastName)
	assert.Equal(t, "Engineering", dto.Department)
	assert.Empty(t, dto.Password)
}
