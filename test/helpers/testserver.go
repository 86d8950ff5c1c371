package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitstream_backend/database"
	"fitstream_backend/internal/app"
	"fitstream_backend/internal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer boots the full router against an in-memory SQLite
// database so the suite needs no external services.
func NewTestServer(t *testing.T) *TestServer {
	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database (%s): %v", dsn, err)
	}

	// The shared-cache in-memory database disappears once the last
	// connection closes; pin a single connection for the suite.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get *sql.DB from GORM: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	log.Printf("Test server started, database %s ready", dsn)

	return &TestServer{
		Server: server,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// ClearTables wipes all rows between tests.
func (ts *TestServer) ClearTables() {
	tables := []string{
		"user_lessons",
		"user_courses",
		"password_reset_tokens",
		"lessons",
		"courses",
		"events",
		"users",
	}
	for _, table := range tables {
		if err := ts.DB.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("Failed to clear table %s: %v", table, err)
		}
	}
}

func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Failed to build HTTP request: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Failed to send HTTP request: %v", err)
	}

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
