package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"fitstream_backend/internal/models"
	"fitstream_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type toggleEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		IsFavorite  *bool `json:"is_favorite"`
		IsLiked     *bool `json:"is_liked"`
		IsCompleted *bool `json:"is_completed"`
	} `json:"data"`
}

func decodeToggle(t *testing.T, bodyStr string) toggleEnvelope {
	var envelope toggleEnvelope
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &envelope))
	return envelope
}

func courseProgress(t *testing.T, ts *helpers.TestServer, userID, courseID string) float64 {
	var uc models.UserCourse
	err := ts.DB.First(&uc, "user_id = ? AND course_id = ?", userID, courseID).Error
	require.NoError(t, err)
	return uc.ProgressPercentage
}

func TestToggleFavorite_FlipsAndKeepsOneRow(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, user := helpers.CreateAndLoginUser(t, ts, ts.DB, "Fav User", "fav@test.com", "password123")
	course := helpers.CreateTestCourse(t, ts.DB, "Mobility", 1)
	lesson := helpers.CreateTestLesson(t, ts.DB, course.ID, "Hips", 1)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/lessons/"+lesson.ID+"/favorite", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	envelope := decodeToggle(t, bodyStr)
	require.NotNil(t, envelope.Data.IsFavorite)
	assert.True(t, *envelope.Data.IsFavorite)

	// Second toggle returns to the original state.
	res, bodyStr = ts.SendRequest(t, "POST", "/api/v1/lessons/"+lesson.ID+"/favorite", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	envelope = decodeToggle(t, bodyStr)
	require.NotNil(t, envelope.Data.IsFavorite)
	assert.False(t, *envelope.Data.IsFavorite)

	var count int64
	ts.DB.Model(&models.UserLesson{}).
		Where("user_id = ? AND lesson_id = ?", user.ID, lesson.ID).
		Count(&count)
	assert.Equal(t, int64(1), count, "Repeated toggles must reuse the single state row")
}

func TestToggleLike_IndependentOfFavorite(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, user := helpers.CreateAndLoginUser(t, ts, ts.DB, "Like User", "like@test.com", "password123")
	course := helpers.CreateTestCourse(t, ts.DB, "Cardio", 1)
	lesson := helpers.CreateTestLesson(t, ts.DB, course.ID, "Sprints", 1)

	_, bodyStr := ts.SendRequest(t, "POST", "/api/v1/lessons/"+lesson.ID+"/like", token, nil)
	envelope := decodeToggle(t, bodyStr)
	require.NotNil(t, envelope.Data.IsLiked)
	assert.True(t, *envelope.Data.IsLiked)

	var state models.UserLesson
	require.NoError(t, ts.DB.First(&state, "user_id = ? AND lesson_id = ?", user.ID, lesson.ID).Error)
	assert.True(t, state.IsLiked)
	assert.False(t, state.IsFavorite)
	assert.False(t, state.IsCompleted)
}

func TestToggleComplete_TracksCompletedAtAndProgress(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, user := helpers.CreateAndLoginUser(t, ts, ts.DB, "Done User", "done@test.com", "password123")
	course := helpers.CreateTestCourse(t, ts.DB, "Full Program", 1)

	lessons := make([]models.Lesson, 0, 4)
	for i, title := range []string{"L1", "L2", "L3", "L4"} {
		lessons = append(lessons, helpers.CreateTestLesson(t, ts.DB, course.ID, title, i+1))
	}

	// Completing one of four lessons yields 25 percent.
	_, bodyStr := ts.SendRequest(t, "POST", "/api/v1/lessons/"+lessons[0].ID+"/complete", token, nil)
	envelope := decodeToggle(t, bodyStr)
	require.NotNil(t, envelope.Data.IsCompleted)
	assert.True(t, *envelope.Data.IsCompleted)
	assert.Equal(t, float64(25), courseProgress(t, ts, user.ID, course.ID))

	var state models.UserLesson
	require.NoError(t, ts.DB.First(&state, "user_id = ? AND lesson_id = ?", user.ID, lessons[0].ID).Error)
	require.NotNil(t, state.CompletedAt, "CompletedAt must be set while the lesson is completed")

	// A second completed lesson raises it to 50 percent.
	ts.SendRequest(t, "POST", "/api/v1/lessons/"+lessons[1].ID+"/complete", token, nil)
	assert.Equal(t, float64(50), courseProgress(t, ts, user.ID, course.ID))

	// Un-completing drops it back to 25 and clears the timestamp.
	_, bodyStr = ts.SendRequest(t, "POST", "/api/v1/lessons/"+lessons[1].ID+"/complete", token, nil)
	envelope = decodeToggle(t, bodyStr)
	require.NotNil(t, envelope.Data.IsCompleted)
	assert.False(t, *envelope.Data.IsCompleted)
	assert.Equal(t, float64(25), courseProgress(t, ts, user.ID, course.ID))

	require.NoError(t, ts.DB.First(&state, "user_id = ? AND lesson_id = ?", user.ID, lessons[1].ID).Error)
	assert.Nil(t, state.CompletedAt, "CompletedAt must be cleared when completion is revoked")
}

func TestUpdatePosition_Overwrites(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, user := helpers.CreateAndLoginUser(t, ts, ts.DB, "Pos User", "pos@test.com", "password123")
	course := helpers.CreateTestCourse(t, ts.DB, "Stretching", 1)
	lesson := helpers.CreateTestLesson(t, ts.DB, course.ID, "Hamstrings", 1)

	res, _ := ts.SendRequest(t, "PUT", "/api/v1/lessons/"+lesson.ID+"/position", token, map[string]interface{}{
		"position_seconds": 90,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/lessons/"+lesson.ID+"/position", token, map[string]interface{}{
		"position_seconds": 30,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"last_position_seconds":30`)

	var state models.UserLesson
	require.NoError(t, ts.DB.First(&state, "user_id = ? AND lesson_id = ?", user.ID, lesson.ID).Error)
	assert.Equal(t, 30, state.LastPositionSeconds, "Position is overwritten, never maxed")
}

func TestToggle_UnknownLesson(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := helpers.CreateAndLoginUser(t, ts, ts.DB, "Ghost User", "ghost@test.com", "password123")

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/lessons/no-such-lesson/favorite", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "Lesson not found")

	var count int64
	ts.DB.Model(&models.UserLesson{}).Count(&count)
	assert.Equal(t, int64(0), count, "No state row may be created for an unknown lesson")
}

func TestProgress_VisibleInCourseList(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := helpers.CreateAndLoginUser(t, ts, ts.DB, "Seen User", "seen@test.com", "password123")
	course := helpers.CreateTestCourse(t, ts.DB, "Visible Progress", 1)
	lessonA := helpers.CreateTestLesson(t, ts.DB, course.ID, "A", 1)
	helpers.CreateTestLesson(t, ts.DB, course.ID, "B", 2)

	ts.SendRequest(t, "POST", "/api/v1/lessons/"+lessonA.ID+"/complete", token, nil)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/courses", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var envelope courseListEnvelope
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, float64(50), envelope.Data[0].ProgressPercentage)
}
