package app

import (
	"fitstream_backend/internal/logger"
)

// MockEmailProvider logs outbound mail instead of sending it. Used
// when SMTP credentials are absent (local development, tests).
type MockEmailProvider struct{}

func (m *MockEmailProvider) SendPasswordReset(to, name, resetLink, token string) error {
	logger.Info("[MOCK EMAIL] password reset",
		"to", to,
		"name", name,
		"reset_link", resetLink,
	)
	return nil
}
