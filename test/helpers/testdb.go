package helpers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"fitstream_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user, hashing the raw password placed in
// PasswordHash when needed.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && user.PasswordHash[0] != '$' {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Failed to hash password: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("Failed to create user %s: %v", user.Email, result.Error)
		return result.Error
	}

	return nil
}

// CreateAndLoginUser creates a user and logs in through the API,
// returning the session token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, db *gorm.DB, name, email, password string) (string, *models.User) {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password,
	}
	err := CreateUser(t, db, user)
	require.NoError(t, err, "Creating a test user must not fail")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "Login must succeed. Response: "+bodyStr)

	var loginResponse struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	require.NoError(t, err, "Failed to parse login response")
	require.NotEmpty(t, loginResponse.Data.Token, "Token must not be empty")

	return loginResponse.Data.Token, user
}

func CreateTestCourse(t *testing.T, db *gorm.DB, title string, orderIndex int) models.Course {
	course := models.Course{
		Title:       title,
		Description: "Test course description",
		Status:      "published",
		OrderIndex:  orderIndex,
	}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("Failed to create test course: %v", err)
	}
	return course
}

func CreateTestLesson(t *testing.T, db *gorm.DB, courseID, title string, orderIndex int) models.Lesson {
	lesson := models.Lesson{
		CourseID:        courseID,
		Title:           title,
		Description:     "Test lesson description",
		VideoURL:        "https://videos.test.local/" + title + ".mp4",
		DurationSeconds: 600,
		OrderIndex:      orderIndex,
	}
	if err := db.Create(&lesson).Error; err != nil {
		t.Fatalf("Failed to create test lesson: %v", err)
	}
	return lesson
}

func CreateTestEvent(t *testing.T, db *gorm.DB, title string, eventDate time.Time, isActive bool) models.Event {
	event := models.Event{
		Title:       title,
		Description: "Test event description",
		EventDate:   eventDate,
		EventType:   "live",
		IsActive:    isActive,
	}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}
	return event
}
