package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"fitstream_backend/internal/auth"
	"fitstream_backend/internal/models"
	"fitstream_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	registerBody := map[string]interface{}{
		"name":     "Alice Trainer",
		"email":    "alice@test.com",
		"password": "super_password123",
	}

	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBodyStr, `"token"`)
	assert.Contains(t, regBodyStr, "alice@test.com")
	assert.NotContains(t, regBodyStr, "password")

	loginBody := map[string]interface{}{
		"email":    "alice@test.com",
		"password": "super_password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, logRes.StatusCode)
	assert.Contains(t, logBodyStr, `"token"`)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	err := helpers.CreateUser(t, ts.DB, &models.User{
		Name:         "User One",
		Email:        "duplicate@test.com",
		PasswordHash: "pass123456",
	})
	require.NoError(t, err)

	duplicateBody := map[string]interface{}{
		"name":     "User Two",
		"email":    "duplicate@test.com",
		"password": "password_is_long_enough",
	}
	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", duplicateBody)

	assert.Equal(t, http.StatusConflict, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "already registered")

	var count int64
	ts.DB.Model(&models.User{}).Where("email = ?", "duplicate@test.com").Count(&count)
	assert.Equal(t, int64(1), count, "Duplicate registration must not create a second row")
}

func TestRegister_ShortPassword(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	body := map[string]interface{}{
		"name":     "Short Pass",
		"email":    "short@test.com",
		"password": "abc",
	}
	res, _ := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

// Unknown email and wrong password must be indistinguishable from the
// client's point of view.
func TestLogin_NoEnumerationSignal(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	helpers.CreateAndLoginUser(t, ts, ts.DB, "Known User", "known@test.com", "correct_password")

	unknownRes, unknownBody := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "nobody@test.com",
		"password": "whatever123",
	})
	wrongRes, wrongBody := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "known@test.com",
		"password": "wrong_password",
	})

	assert.Equal(t, http.StatusUnauthorized, unknownRes.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, wrongRes.StatusCode)
	assert.Equal(t, unknownBody, wrongBody, "Both failures must produce the identical response body")
}

func TestGetProfile(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, user := helpers.CreateAndLoginUser(t, ts, ts.DB, "Profile User", "profile@test.com", "password123")

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/auth/profile", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, user.Email)
	assert.Contains(t, bodyStr, user.Name)

	noTokenRes, _ := ts.SendRequest(t, "GET", "/api/v1/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, noTokenRes.StatusCode)

	badTokenRes, _ := ts.SendRequest(t, "GET", "/api/v1/auth/profile", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, badTokenRes.StatusCode)
}

func TestGetProfile_ExpiredToken(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, user := helpers.CreateAndLoginUser(t, ts, ts.DB, "Expired User", "expired@test.com", "password123")

	expiredToken, err := auth.GenerateToken(user.ID, user.Email, user.Name, "test_secret_key_for_integration_12345", -time.Hour)
	require.NoError(t, err)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/auth/profile", expiredToken, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "expired")
}

// The forgot-password response must be identical whether or not the
// email is registered.
func TestForgotPassword_UniformResponse(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	helpers.CreateAndLoginUser(t, ts, ts.DB, "Reset User", "reset@test.com", "password123")

	knownRes, knownBody := ts.SendRequest(t, "POST", "/api/v1/auth/forgot-password", "", map[string]interface{}{
		"email": "reset@test.com",
	})
	unknownRes, unknownBody := ts.SendRequest(t, "POST", "/api/v1/auth/forgot-password", "", map[string]interface{}{
		"email": "ghost@test.com",
	})

	assert.Equal(t, http.StatusOK, knownRes.StatusCode)
	assert.Equal(t, http.StatusOK, unknownRes.StatusCode)
	assert.Equal(t, knownBody, unknownBody)

	var knownCount, unknownCount int64
	ts.DB.Model(&models.PasswordResetToken{}).
		Joins("JOIN users ON users.id = password_reset_tokens.user_id").
		Where("users.email = ?", "reset@test.com").
		Count(&knownCount)
	ts.DB.Model(&models.PasswordResetToken{}).Count(&unknownCount)

	assert.Equal(t, int64(1), knownCount, "A token row must exist for the registered email")
	assert.Equal(t, int64(1), unknownCount, "No token row may exist for the unknown email")
}

func TestResetPassword_Flow(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, user := helpers.CreateAndLoginUser(t, ts, ts.DB, "Flow User", "flow@test.com", "old_password1")

	resetToken := models.PasswordResetToken{
		UserID:    user.ID,
		Token:     "fixed-reset-token-for-test",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, ts.DB.Create(&resetToken).Error)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/auth/reset-password", "", map[string]interface{}{
		"token":        "fixed-reset-token-for-test",
		"new_password": "new_password1",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	oldLoginRes, _ := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "flow@test.com",
		"password": "old_password1",
	})
	assert.Equal(t, http.StatusUnauthorized, oldLoginRes.StatusCode)

	newLoginRes, _ := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "flow@test.com",
		"password": "new_password1",
	})
	assert.Equal(t, http.StatusOK, newLoginRes.StatusCode)

	// Second use of the same token must be rejected.
	reuseRes, reuseBody := ts.SendRequest(t, "POST", "/api/v1/auth/reset-password", "", map[string]interface{}{
		"token":        "fixed-reset-token-for-test",
		"new_password": "another_password1",
	})
	assert.Equal(t, http.StatusUnauthorized, reuseRes.StatusCode)
	assert.Contains(t, reuseBody, "already used")
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, user := helpers.CreateAndLoginUser(t, ts, ts.DB, "Late User", "late@test.com", "password123")

	resetToken := models.PasswordResetToken{
		UserID:    user.ID,
		Token:     "expired-reset-token",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, ts.DB.Create(&resetToken).Error)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/reset-password", "", map[string]interface{}{
		"token":        "expired-reset-token",
		"new_password": "new_password1",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "expired")
}

func TestRegister_ResponseEnvelope(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Envelope User",
		"email":    "envelope@test.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
			User  struct {
				ID    string `json:"id"`
				Email string `json:"email"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &envelope))
	assert.True(t, envelope.Success)
	assert.NotEmpty(t, envelope.Data.Token)
	assert.NotEmpty(t, envelope.Data.User.ID)
	assert.Equal(t, "envelope@test.com", envelope.Data.User.Email)
}
