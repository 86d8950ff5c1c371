package integration_test

import (
	"log"
	"os"
	"sync"
	"testing"

	"fitstream_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer lazily boots one shared server for the whole suite.
func GetTestServer(t *testing.T) *helpers.TestServer {
	serverOnce.Do(func() {
		os.Setenv("SERVER_PORT", "4001")
		os.Setenv("SERVER_ENV", "test")
		os.Setenv("DATABASE_URL", "file:fitstream_test?mode=memory&cache=shared")
		os.Setenv("JWT_SECRET", "test_secret_key_for_integration_12345")

		log.Println("--- [GetTestServer] Initializing test server... ---")
		globalTestServer = helpers.NewTestServer(t)
		log.Println("--- [GetTestServer] Test server ready ---")
	})
	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		globalTestServer.Close()
	}

	os.Exit(code)
}
