package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"fitstream_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		User struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
		Events []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"events"`
		Stats struct {
			ActiveCourses int64 `json:"active_courses"`
		} `json:"stats"`
	} `json:"data"`
}

func TestDashboard(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, user := helpers.CreateAndLoginUser(t, ts, ts.DB, "Dash User", "dash@test.com", "password123")

	// One started course via a completed lesson.
	course := helpers.CreateTestCourse(t, ts.DB, "Started Course", 1)
	lesson := helpers.CreateTestLesson(t, ts.DB, course.ID, "Intro", 1)
	ts.SendRequest(t, "POST", "/api/v1/lessons/"+lesson.ID+"/complete", token, nil)

	// Four upcoming events, one past, one inactive.
	now := time.Now()
	for i, title := range []string{"E1", "E2", "E3", "E4"} {
		helpers.CreateTestEvent(t, ts.DB, title, now.Add(time.Duration(i+1)*24*time.Hour), true)
	}
	helpers.CreateTestEvent(t, ts.DB, "Past Event", now.Add(-24*time.Hour), true)
	helpers.CreateTestEvent(t, ts.DB, "Inactive Event", now.Add(48*time.Hour), false)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/dashboard", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var envelope dashboardEnvelope
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &envelope))

	assert.Equal(t, user.Name, envelope.Data.User.Name)
	assert.Equal(t, user.Email, envelope.Data.User.Email)
	assert.Equal(t, int64(1), envelope.Data.Stats.ActiveCourses)

	// Only the three nearest upcoming active events appear.
	require.Len(t, envelope.Data.Events, 3)
	assert.Equal(t, "E1", envelope.Data.Events[0].Title)
	assert.Equal(t, "E2", envelope.Data.Events[1].Title)
	assert.Equal(t, "E3", envelope.Data.Events[2].Title)
}

func TestListEvents_OnlyActive(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := helpers.CreateAndLoginUser(t, ts, ts.DB, "Events User", "events@test.com", "password123")

	now := time.Now()
	helpers.CreateTestEvent(t, ts.DB, "Active Event", now.Add(24*time.Hour), true)
	helpers.CreateTestEvent(t, ts.DB, "Hidden Event", now.Add(24*time.Hour), false)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/events", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Active Event")
	assert.NotContains(t, bodyStr, "Hidden Event")
}

func TestDashboard_RequiresAuth(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	res, _ := ts.SendRequest(t, "GET", "/api/v1/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
